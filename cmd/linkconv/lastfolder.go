// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lastFolderCmd = &cobra.Command{
	Use:   "last-folder",
	Short: "Print the folder convert uses when none is given",
	RunE: func(cmd *cobra.Command, args []string) error {
		prov, err := settingsProvider(loadConfig())
		if err != nil {
			return err
		}
		folder, err := prov.LastFolder()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), folder)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lastFolderCmd)
}
