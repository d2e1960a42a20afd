// Package cli implements the lictool command surface: interactive license
// initialization, non-interactive adding, listing, details display, and
// shell completion generation.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lictool/spdx"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lictool",
	Short: "Fetch open-source licenses and fill in their placeholders",
	Long: `lictool picks an open-source license from the SPDX registry, fills in
placeholders like the copyright year and owner, and writes the result
to a file without overwriting anything that already exists.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. The caller is responsible for displaying
// the returned error and choosing the exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lictool.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("registry-url", "", "license registry base URL (default https://spdx.org)")
	rootCmd.PersistentFlags().String("cache-dir", "", "HTTP response cache directory")

	_ = viper.BindPFlag("registry_url", rootCmd.PersistentFlags().Lookup("registry-url"))
	_ = viper.BindPFlag("cache_dir", rootCmd.PersistentFlags().Lookup("cache-dir"))

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(initCmd, addCmd, listCmd, infoCmd, completionsCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigName(".lictool")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("LICTOOL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional; only an unreadable explicit file is worth a word.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" && !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Warning: could not read config file: %v\n", err)
		}
	}

	if verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
}

// newClient builds the registry client from configuration.
func newClient() (*spdx.Client, error) {
	var opts []spdx.Option
	if u := viper.GetString("registry_url"); u != "" {
		opts = append(opts, spdx.WithBaseURL(u))
	}
	if dir := viper.GetString("cache_dir"); dir != "" {
		opts = append(opts, spdx.WithCacheDir(dir))
	}
	return spdx.New(opts...)
}
