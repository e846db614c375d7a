// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/linkconv/internal/shortcut"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>...",
	Short: "Print the URL stored in shortcut files",
	Long: `Extract reads each shortcut file and prints the URL it points to,
without writing any HTML. Files that are not shortcuts, or that hold no
URL, are reported as "no URL found".`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strip := loadConfig().Conversion.StripExecArgs
		if cmd.Flags().Changed("strip-exec-args") {
			strip, _ = cmd.Flags().GetBool("strip-exec-args")
		}
		ex := shortcut.NewExtractor(shortcut.Options{StripExecArgs: strip}, logger)

		out := cmd.OutOrStdout()
		for _, path := range args {
			if url, ok := ex.Extract(path); ok {
				fmt.Fprintf(out, "%s: %s\n", path, url)
			} else {
				fmt.Fprintf(out, "%s: no URL found\n", path)
			}
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().Bool("strip-exec-args", false, "drop trailing field codes (%u, %F, ...) from .desktop Exec= URLs")

	rootCmd.AddCommand(extractCmd)
}
