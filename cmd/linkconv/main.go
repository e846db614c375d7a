// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the linkconv CLI, which turns
// internet-shortcut files (.url, .desktop, .webloc) into HTML redirect pages.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/linkconv/internal/history"
	"github.com/pdiddy/linkconv/internal/settings"
	"github.com/pdiddy/linkconv/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from --log-level before any command runs.
var logger = zap.NewNop()

// rootCmd is the base command for the linkconv CLI.
var rootCmd = &cobra.Command{
	Use:   "linkconv",
	Short: "Convert internet shortcuts into HTML redirect pages",
	Long: `linkconv scans a folder for internet-shortcut files (.url, .desktop,
.webloc), extracts the target URL from each, and writes an HTML page next to
it that redirects the browser to that URL.

The last folder converted is remembered, so running convert without an
argument picks up where the previous run left off.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(viper.GetString("log_level"))
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./linkconv.yaml or ~/.config/linkconv/linkconv.yaml)")
	flags.String("log-level", "warn", "diagnostic log level: debug, info, warn, error")
	flags.String("settings-file", "", "JSON file remembering the last folder (default: ~/"+settings.DefaultFileName+")")
	flags.String("history-db", "", "SQLite database of conversion runs (default: ~/.config/linkconv/"+history.DefaultFile+")")

	viper.BindPFlag("log_level", flags.Lookup("log-level"))
	viper.BindPFlag("settings_file", flags.Lookup("settings-file"))
	viper.BindPFlag("history_db", flags.Lookup("history-db"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("linkconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "linkconv"))
		}
	}

	viper.SetEnvPrefix("LINKCONV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig collects settings from flags, environment, and config file.
func loadConfig() types.Config {
	return types.Config{
		SettingsFile: viper.GetString("settings_file"),
		HistoryDB:    viper.GetString("history_db"),
		LogLevel:     viper.GetString("log_level"),
		Conversion: types.ConversionConfig{
			StripExecArgs: viper.GetBool("strip_exec_args"),
			SkipHidden:    viper.GetBool("skip_hidden"),
		},
	}
}

// newLogger builds a console logger on stderr at the given level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.Encoding = "console"
	zcfg.Sampling = nil
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}

// settingsProvider opens the last-folder settings file named in cfg, or
// the default one in the home directory.
func settingsProvider(cfg types.Config) (*settings.FileProvider, error) {
	path := cfg.SettingsFile
	if path == "" {
		p, err := settings.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return settings.NewFileProvider(path)
}

// openHistory opens the history database named in cfg, or the default one.
func openHistory(cfg types.Config) (*history.Store, error) {
	path := cfg.HistoryDB
	if path == "" {
		p, err := history.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return history.NewStore(path)
}

func main() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
