package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snapcheck/internal/directive"
)

var directivesCmd = &cobra.Command{
	Use:   "directives [artifact...]",
	Short: "List the inline directives of test artifacts",
	Long: `Parses each artifact for // NAME: value directives and prints them
in order. Several artifacts accumulate into one listing, the way a
multi-file test unit is parsed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dirs := directive.New()
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			directive.ParseInto(string(data), dirs)
		}
		for _, e := range dirs.Entries() {
			fmt.Println(e.Text())
		}
		return nil
	},
}
