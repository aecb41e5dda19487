// Package ozone implements the ozone command-line tool: a thin cobra-based
// front end over the store/field/ingest/serialize packages, built and
// configured the way the teacher's cmd/ctl packages build and configure the
// pilosa binary (cobra command tree, viper/pflag-bound flags, a toml-tagged
// config struct).
package ozone

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/killzin666/ozone/toml"
)

// Config is ozone's top-level configuration shape, printable via `ozone
// config` and loadable via --config. None of the core engine needs
// configuring, but the CLI carries the same toml-tagged struct the teacher
// always carries for its commands.
type Config struct {
	Delimiter string        `toml:"delimiter"`
	Quote     string        `toml:"quote"`
	Timeout   toml.Duration `toml:"timeout"`
	Verbose   bool          `toml:"verbose"`
}

// NewConfig returns a Config populated with ozone's defaults, matching the
// defaults registered on the root and build commands' flags.
func NewConfig() *Config {
	return &Config{
		Delimiter: ",",
		Quote:     "\"",
		Timeout:   toml.Duration(0),
	}
}

// setAllConfig layers flag/env/config-file values onto v, the same
// priority order and envPrefix-replacer idiom as the teacher's
// cmd/root.go setAllConfig: flags win, then environment, then the config
// file, then the flag defaults already registered on flags.
func setAllConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	v.SetEnvPrefix("OZONE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	configFile := v.GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading configuration file %q: %v", configFile, err)
		}
	}

	var flagErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if flagErr != nil || f.Changed {
			return
		}
		if v.IsSet(f.Name) {
			flagErr = f.Value.Set(v.GetString(f.Name))
		}
	})
	return flagErr
}
