package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/vortex-fintech/go-phone/foundation/errx"
	"github.com/vortex-fintech/go-phone/foundation/geo"
	"github.com/vortex-fintech/go-phone/phone"
)

const envPrefix = "PHONEFIELD"

// settings is everything the commands read from flags, environment and the
// optional config file.
type settings struct {
	Phone     phone.Config `mapstructure:"phone"`
	Countries string       `mapstructure:"countries"`
	LogEnv    string       `mapstructure:"log_env"`
	Metrics   bool         `mapstructure:"metrics"`
}

func newViper() *viper.Viper {
	v := viper.New()

	def := phone.DefaultConfig()
	v.SetDefault("phone.prefix", def.Prefix)
	v.SetDefault("phone.mask_char", def.MaskChar)
	v.SetDefault("phone.insert_space_after_dial_code", def.InsertSpaceAfterDialCode)
	v.SetDefault("phone.max_length", def.MaxLength)
	v.SetDefault("phone.history_capacity", def.HistoryCapacity)
	v.SetDefault("countries", "")
	v.SetDefault("log_env", "production")
	v.SetDefault("metrics", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// loadSettings reads path (if set) into v and decodes the result.
func loadSettings(v *viper.Viper, path string) (settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return settings{}, errx.Configf(err, "read %s", path)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, errx.Configf(err, "decode settings")
	}
	return s, nil
}

// buildEngine loads the country table named by s and validates the phone
// config against it.
func buildEngine(s settings, opts ...phone.EngineOption) (*phone.Engine, error) {
	var table *geo.Table
	if s.Countries != "" {
		t, err := geo.LoadFile(s.Countries)
		if err != nil {
			return nil, fmt.Errorf("countries: %w", err)
		}
		table = t
	}
	return phone.NewEngine(s.Phone, table, opts...)
}
