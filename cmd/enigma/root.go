// enigma is the command-line front end for the rotor cipher machine.
//
// Usage:
//
//	enigma cypher --rotors II:A:X,I:B:M,III:L:V --reflector A --plugboard "AM FI NV" GCDSE AHUGW
//	enigma cypher --config settings.yaml < message.txt
//	enigma batch -f messages.yaml --parallel 4
//	enigma catalog
//	enigma serve
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"enigma/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "enigma",
	Short: "Three-rotor Enigma cipher machine",
	Long: "enigma simulates the wartime three-rotor Enigma: plugboard, rotors with\n" +
		"ring settings and double stepping, and a reflector. The same settings\n" +
		"encrypt and decrypt.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initLogging,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(cypherCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func initLogging(cmd *cobra.Command, _ []string) error {
	level, err := logging.ParseLevel(rootFlags.logLevel)
	if err != nil {
		return err
	}
	if !logging.ValidFormat(rootFlags.logFormat) {
		return fmt.Errorf("unknown log format %q (want text or json)", rootFlags.logFormat)
	}
	if tracing(cmd) && level > slog.LevelInfo {
		level = slog.LevelInfo
	}
	logging.Init(level, rootFlags.logFormat, cmd.ErrOrStderr())
	return nil
}

// tracing reports whether cmd was run with --trace. The machine trace is
// logged at info, so it lowers the log level to at most info.
func tracing(cmd *cobra.Command) bool {
	f := cmd.Flags().Lookup("trace")
	return f != nil && f.Value.String() == "true"
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
