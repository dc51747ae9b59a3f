package main

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vortex-fintech/go-phone/foundation/logger"
	"github.com/vortex-fintech/go-phone/phone"
	"github.com/vortex-fintech/go-phone/phone/prommetrics"
)

// app is the state shared by subcommands once the root has loaded settings.
type app struct {
	v        *viper.Viper
	bindErr  error
	cfgPath  string
	settings settings
	log      *logger.Logger
	engine   *phone.Engine
	registry *prometheus.Registry
	metrics  phone.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper()}

	root := &cobra.Command{
		Use:   "phonefield",
		Short: "Replay phone input edits and inspect the country table",
		Long: `phonefield drives the phone input engine from the command line.

Examples:
  phonefield guess 12025550123
  phonefield replay session.txt other.txt
  PHONEFIELD_PHONE_MAX_LENGTH=12 phonefield replay < session.txt`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				a.log.SafeSync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML config file")
	pf.String("countries", "", "YAML country table replacing the built-in one")
	pf.String("log-env", "production", "logger profile: production, development or debug")
	pf.Bool("metrics", false, "log edit and history counters when done")
	a.bindErr = errors.Join(
		a.v.BindPFlag("countries", pf.Lookup("countries")),
		a.v.BindPFlag("log_env", pf.Lookup("log-env")),
		a.v.BindPFlag("metrics", pf.Lookup("metrics")),
	)

	root.AddCommand(newReplayCmd(a), newGuessCmd(a), newCountriesCmd(a))
	return root
}

func (a *app) setup(*cobra.Command, []string) error {
	if a.bindErr != nil {
		return a.bindErr
	}

	s, err := loadSettings(a.v, a.cfgPath)
	if err != nil {
		return err
	}
	a.settings = s

	l, err := logger.New("phonefield", s.LogEnv)
	if err != nil {
		return err
	}
	a.log = l

	if s.Metrics {
		a.registry = prometheus.NewRegistry()
		pm, err := prommetrics.New(a.registry, "phonefield", "field")
		if err != nil {
			return err
		}
		a.metrics = pm
	}

	e, err := buildEngine(s, phone.WithLogger(l))
	if err != nil {
		l.Errorw("phonefield setup failed", "error", err)
		return err
	}
	a.engine = e
	return nil
}

// reportMetrics logs every counter sample gathered from the registry.
func (a *app) reportMetrics() {
	if a.registry == nil {
		return
	}
	families, err := a.registry.Gather()
	if err != nil {
		a.log.Warnw("gather metrics", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			kv := []any{"metric", mf.GetName(), "value", m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				kv = append(kv, lp.GetName(), lp.GetValue())
			}
			a.log.Infow("phonefield metric", kv...)
		}
	}
}
