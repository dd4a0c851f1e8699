package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <test-file.py>",
	Short: "Analyze one Python test file and print the report",
	Long: `Runs a single file through the same pipeline as the HTTP service and
prints the report to stdout. Useful for CI hooks and quick checks.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		_, svc, err := newService(cmd.Context())
		if err != nil {
			return err
		}

		report := svc.Handle(cmd.Context(), string(code))
		fmt.Println("Status:", report.Status)
		fmt.Println(report.Result)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
