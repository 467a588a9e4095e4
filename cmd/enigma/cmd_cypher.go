package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"enigma/internal/logging"
)

var cypherFlags struct {
	machineFlags
	positions bool
}

var cypherCmd = &cobra.Command{
	Use:   "cypher [text...]",
	Short: "Encrypt or decrypt text",
	Long: `Runs text through one configured machine. Arguments are joined with spaces
and cyphered as one message. Without arguments, stdin is cyphered line by
line and the rotors keep turning from one line to the next.

Only letters and spaces are accepted; letters are uppercased and the
surrounding whitespace of each message is dropped.`,
	Example: `  enigma cypher --reflector B --rotors I:A:A,II:A:A,III:A:A hello world
  enigma cypher -c settings.yaml < message.txt`,
	RunE: runCypher,
}

func init() {
	cypherFlags.register(cypherCmd)
	cypherCmd.Flags().BoolVar(&cypherFlags.positions, "positions", false, "Print the rotor windows to stderr when done")
}

func runCypher(cmd *cobra.Command, args []string) error {
	machine, err := cypherFlags.newMachine(cmd)
	if err != nil {
		return err
	}
	logger := logging.New("cypher")
	logger.Info("machine ready", "positions", machine.Positions())

	out := cmd.OutOrStdout()
	if len(args) > 0 {
		text, err := machine.Cypher(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
	} else {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		line := 0
		for scanner.Scan() {
			line++
			text, err := machine.Cypher(scanner.Text())
			if err != nil {
				return fmt.Errorf("line %d: %w", line, err)
			}
			fmt.Fprintln(out, text)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		logger.Info("stream done", "lines", line)
	}

	if cypherFlags.positions {
		fmt.Fprintf(cmd.ErrOrStderr(), "positions: %s\n", machine.Positions())
	}
	return nil
}
