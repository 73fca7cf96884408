package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/trand"
	"github.com/tutils/trand/entropy"
)

var (
	cfgFile string

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trand",
	Short: "Pseudo-random numbers seeded from an entropy authority.",
	Long: `Pseudo-random numbers seeded from an entropy authority.
Repo: https://github.com/tutils/trand
Run an authority and draw numbers seeded from it, For example:
  trand serve --listen=0.0.0.0:8080 --rate=50 --burst=100
  trand gen --bits=32 --count=5 --authority=http://127.0.0.1:8080
  trand seed --authority=ws://127.0.0.1:8080/stream`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(viper.GetString("log-level"))
		if err != nil {
			return err
		}
		logger = logger.Level(level)
		trand.SetLogger(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("trand")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.trand.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("authority", "", "entropy authority: http(s)://host:port, ws(s)://host:port/stream or system")
	flags.Duration("timeout", entropy.DefaultTimeout, "entropy authority timeout")
	flags.Int("fetch-size", entropy.DefaultSize, "bytes requested from the authority")
	for _, key := range []string{"log-level", "authority", "timeout", "fetch-size"} {
		viper.BindPFlag(key, flags.Lookup(key))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// a missing .env is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn().Err(err).Msg("load .env")
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			logger.Error().Err(err).Msg("home directory")
			os.Exit(1)
		}

		// Search config in home directory with name ".trand" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".trand")
	}

	viper.SetEnvPrefix("trand")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logger.Info().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	}
}
