package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vortex-fintech/go-phone/foundation/logger"
	"github.com/vortex-fintech/go-phone/phone"
)

// record is one output line of replay.
type record struct {
	Script  string `json:"script"`
	Line    int    `json:"line"`
	Value   string `json:"value"`
	Digits  string `json:"digits"`
	Country string `json:"country,omitempty"`
	E164    string `json:"e164,omitempty"`
	CanUndo bool   `json:"can_undo"`
	CanRedo bool   `json:"can_redo"`
}

func newReplayCmd(a *app) *cobra.Command {
	var initial string

	cmd := &cobra.Command{
		Use:   "replay [script...]",
		Short: "Replay edit scripts and print every resulting state as JSON",
		Long: `Replay edit scripts, one field per script. With no script, or "-",
the script is read from stdin.

Script lines:
  +TEXT      insertion, the field text becomes TEXT
  -TEXT      deletion, the field text becomes TEXT
  undo       undo
  redo       redo
  key COMBO  key press, e.g. key ctrl+shift+z`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			err := a.replay(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), initial, args)
			a.reportMetrics()
			return err
		},
	}
	cmd.Flags().StringVar(&initial, "initial", "", "initial field value")
	return cmd
}

// replay runs every script concurrently on its own Field and writes the
// results in argument order.
func (a *app) replay(ctx context.Context, stdin io.Reader, out io.Writer, initial string, scripts []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	bufs := make([]bytes.Buffer, len(scripts))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range scripts {
		g.Go(func() error {
			steps, err := readScript(name, stdin)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return a.runScript(ctx, name, initial, steps, &bufs[i])
		})
	}
	if err := g.Wait(); err != nil {
		a.log.Errorw("phonefield replay failed", "error", err)
		return err
	}

	for i := range bufs {
		if _, err := bufs[i].WriteTo(out); err != nil {
			return err
		}
	}
	return nil
}

func readScript(name string, stdin io.Reader) ([]step, error) {
	if name == "-" {
		return parseScript(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseScript(f)
}

func (a *app) runScript(ctx context.Context, name, initial string, steps []step, w io.Writer) error {
	session := filepath.Base(name)
	field := phone.NewField(a.engine, initial,
		phone.WithContext(logger.ContextWithSessionID(ctx, session)),
		phone.WithMetrics(a.metrics),
	)

	feed := phone.NewFeed()
	unbind := field.Bind(feed)
	defer unbind()

	enc := json.NewEncoder(w)
	for _, st := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch st.op {
		case "undo":
			field.Undo()
		case "redo":
			field.Redo()
		default:
			feed.Emit(st.ev)
		}

		if err := enc.Encode(newRecord(session, st.line, field)); err != nil {
			return err
		}
	}

	a.log.Infow("phonefield script replayed",
		"session_id", session,
		"field_id", field.ID(),
		"steps", len(steps),
	)
	return nil
}

func newRecord(script string, line int, f *phone.Field) record {
	s := f.State()
	r := record{
		Script:  script,
		Line:    line,
		Value:   s.Value,
		Digits:  s.Digits,
		Country: s.ISO2(),
		CanUndo: f.CanUndo(),
		CanRedo: f.CanRedo(),
	}
	if e, err := s.E164(); err == nil {
		r.E164 = e
	}
	return r
}
