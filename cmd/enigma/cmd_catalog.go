package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"enigma/internal/format"
)

var catalogFlags struct {
	markdown bool
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the known rotor and reflector types",
	RunE:  runCatalog,
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogFlags.markdown, "markdown", false, "Render as Markdown tables")
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	mode := format.ASCII
	if catalogFlags.markdown {
		mode = format.Markdown
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, format.RotorCatalog(mode))
	fmt.Fprintln(out)
	fmt.Fprintln(out, format.ReflectorCatalog(mode))
	return nil
}
