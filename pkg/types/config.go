// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ConversionConfig holds settings for a folder conversion run.
type ConversionConfig struct {
	// StripExecArgs removes trailing field codes (e.g. "%u") from URLs
	// found in Exec= lines of .desktop files. Off by default, which keeps
	// the line value verbatim.
	StripExecArgs bool `json:"strip_exec_args" yaml:"strip_exec_args"`

	// SkipHidden skips dot-directories and dot-files during the walk.
	SkipHidden bool `json:"skip_hidden" yaml:"skip_hidden"`
}

// Config groups the settings read from linkconv.yaml, the environment,
// and command-line flags.
type Config struct {
	// SettingsFile is the JSON file that remembers the last-used folder
	// (default ~/.convert_links_config.json).
	SettingsFile string `json:"settings_file" yaml:"settings_file"`

	// HistoryDB is the SQLite database recording conversion runs
	// (default ~/.config/linkconv/history.db).
	HistoryDB string `json:"history_db" yaml:"history_db"`

	// LogLevel is the zap level for diagnostic output: debug, info, warn, error.
	LogLevel string `json:"log_level" yaml:"log_level"`

	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
}
