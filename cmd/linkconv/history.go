// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/linkconv/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversion runs",
	Long: `History lists the conversion runs recorded in the local SQLite
history database, newest first. Use the export subcommand to write the full
history to YAML or JSON.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := openHistory(loadConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.Recent(context.Background(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(cmd, runs, jsonOutput)
}

func formatHistoryOutput(cmd *cobra.Command, runs []types.Run, jsonOutput bool) error {
	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded.")
		return nil
	}

	fmt.Fprintf(out, "%-5s  %-20s  %-9s  %-6s  %-11s  %s\n",
		"ID", "Started", "Converted", "No URL", "Unsupported", "Folder")
	fmt.Fprintln(out, strings.Repeat("-", 90))
	for _, r := range runs {
		fmt.Fprintf(out, "%-5d  %-20s  %-9d  %-6d  %-11d  %s\n",
			r.ID, r.StartedAt.Local().Format(time.DateTime), r.Converted, r.NoURL, r.Unsupported, r.Folder)
	}
	return nil
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the conversion history to YAML or JSON",
	RunE:  runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	path, _ := cmd.Flags().GetString("out")

	store, err := openHistory(loadConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	switch format {
	case "yaml", "":
		if path == "" {
			path = "linkconv-history.yaml"
		}
		err = store.ExportYAML(context.Background(), path)
	case "json":
		if path == "" {
			path = "linkconv-history.json"
		}
		err = store.ExportJSON(context.Background(), path)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Exported to", path)
	return nil
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyCmd.Flags().Bool("json", false, "output runs as JSON")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().String("out", "", "output file (default: linkconv-history.<format>)")

	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}
