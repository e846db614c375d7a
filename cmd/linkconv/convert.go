// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/linkconv/internal/convert"
	"github.com/pdiddy/linkconv/internal/shortcut"
	"github.com/pdiddy/linkconv/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [folder]",
	Short: "Convert every shortcut under a folder into HTML redirects",
	Long: `Convert walks the folder recursively and, for every .url, .desktop and
.webloc file holding a URL, writes <name>.html next to it (spaces in the name
become underscores). Existing HTML files of the same name are overwritten.

Without a folder argument the last converted folder is used. The folder is
remembered for the next run once it has been validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().Bool("strip-exec-args", false, "drop trailing field codes (%u, %F, ...) from .desktop Exec= URLs")
	convertCmd.Flags().Bool("skip-hidden", false, "skip dot-directories and dot-files")
	convertCmd.Flags().Bool("no-history", false, "do not record this run in the history database")

	viper.BindPFlag("strip_exec_args", convertCmd.Flags().Lookup("strip-exec-args"))
	viper.BindPFlag("skip_hidden", convertCmd.Flags().Lookup("skip-hidden"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	prov, err := settingsProvider(cfg)
	if err != nil {
		return err
	}

	var folder string
	if len(args) > 0 {
		folder = args[0]
	} else {
		saved, ok, err := prov.SavedFolder()
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no folder given and no last folder remembered in %s", prov.Path())
		}
		folder = saved
		fmt.Fprintf(os.Stderr, "Using last folder: %s\n", folder)
	}

	if abs, err := filepath.Abs(folder); err == nil {
		folder = abs
	}
	if err := convert.ValidateRoot(folder); err != nil {
		return err
	}

	if err := prov.SaveLastFolder(folder); err != nil {
		logger.Warn("could not remember folder", zap.String("settings", prov.Path()), zap.Error(err))
	}

	ex := shortcut.NewExtractor(shortcut.Options{StripExecArgs: cfg.Conversion.StripExecArgs}, logger)
	conv := convert.New(ex, cfg.Conversion, logger, cmd.OutOrStdout())

	started := time.Now()
	result, err := conv.ConvertFolder(folder)
	if err != nil {
		return err
	}

	noHistory, _ := cmd.Flags().GetBool("no-history")
	if !noHistory {
		recordRun(cfg, types.Run{
			Folder:      folder,
			Converted:   result.Converted,
			NoURL:       result.NoURL,
			Unsupported: result.Unsupported,
			StartedAt:   started.UTC(),
			Duration:    time.Since(started),
		})
	}
	return nil
}

// recordRun saves run to the history database. Failures are logged and
// never fail the conversion.
func recordRun(cfg types.Config, run types.Run) {
	store, err := openHistory(cfg)
	if err != nil {
		logger.Warn("history unavailable", zap.Error(err))
		return
	}
	defer store.Close()

	if _, err := store.Record(context.Background(), run); err != nil {
		logger.Warn("could not record run", zap.Error(err))
	}
}
