// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Defaults for every tunable. A bound command line flag or a
// .bioanalyzer.yaml settings file overrides them.
const (
	// DefaultK is the k-mer length indexes are built with
	DefaultK = 3

	// DefaultMinOverlap is the shortest suffix-prefix overlap
	// counted during assembly
	DefaultMinOverlap = 3

	// DefaultSuffixMaxLen is the longest sequence a suffix array
	// is built for
	DefaultSuffixMaxLen = 10000

	// DefaultGCWindow is the window width of the GC content plot
	DefaultGCWindow = 5
)

// Config is the root-level settings struct and is a mix
// of settings available in .bioanalyzer.yaml and those
// available from the command line
type Config struct {
	// the k-mer length indexes are built with
	K int `mapstructure:"k"`

	// the minimum overlap length between two reads during assembly
	MinOverlap int `mapstructure:"min-overlap"`

	// the longest sequence a suffix array is built for
	SuffixMaxLen int `mapstructure:"suffix-max-len"`

	// the window width of the GC content plot
	GCWindow int `mapstructure:"gc-window"`
}

// Setup registers the defaults for every setting and reads in the
// optional .bioanalyzer.yaml settings file. Called once via
// cobra.OnInitialize before any command runs
func Setup() {
	viper.SetDefault("k", DefaultK)
	viper.SetDefault("min-overlap", DefaultMinOverlap)
	viper.SetDefault("suffix-max-len", DefaultSuffixMaxLen)
	viper.SetDefault("gc-window", DefaultGCWindow)

	viper.SetConfigName(".bioanalyzer")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		// the settings file is optional, a missing one is fine
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("failed to read the settings file, %v", err)
		}
	}
}

// New returns a new Config struct populated by
// Viper settings (either from the local .bioanalyzer.yaml)
// and/or command line arguments
func New() Config {
	var c Config

	err := viper.Unmarshal(&c)
	if err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	return c
}
