package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"enigma/internal/logging"
	"enigma/internal/settings"
	"enigma/pkg/enigma"
)

// machineFlags are shared by commands that configure a single machine.
type machineFlags struct {
	config    string
	plugboard string
	reflector string
	rotors    string
	trace     bool
}

func (m *machineFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&m.config, "config", "c", "", "Settings file (YAML or JSON)")
	f.StringVar(&m.plugboard, "plugboard", "", `Plugboard pairs, e.g. "AM FI NV" (default: none, or the settings file)`)
	f.StringVar(&m.reflector, "reflector", "", "Reflector type: A, B, C, B Thin or C Thin")
	f.StringVar(&m.rotors, "rotors", "", "Rotors left to right as type:position:offset, e.g. II:A:X,I:B:M,III:L:V")
	f.BoolVar(&m.trace, "trace", false, "Log every substitution and rotor step (at info level)")
}

// settings merges the settings file with flag overrides. Without a settings
// file an unset --plugboard means no cables.
func (m *machineFlags) settings(cmd *cobra.Command) (enigma.Settings, error) {
	var s enigma.Settings
	if m.config != "" {
		loaded, err := settings.LoadFromPath(m.config)
		if err != nil {
			return s, err
		}
		s = loaded
	} else {
		s.Plugboard = []string{}
	}

	f := cmd.Flags()
	var o settings.Overrides
	if f.Changed("plugboard") {
		o.Plugboard = &m.plugboard
	}
	if f.Changed("reflector") {
		o.Reflector = &m.reflector
	}
	if f.Changed("rotors") {
		o.Rotors = &m.rotors
	}
	return o.Apply(s)
}

// machineLogger returns the logger a machine should trace to.
func (m *machineFlags) machineLogger() enigma.Logger {
	if m.trace {
		return logging.New("machine")
	}
	return logging.Discard()
}

// newMachine builds and configures a machine from flags.
func (m *machineFlags) newMachine(cmd *cobra.Command) (*enigma.Machine, error) {
	s, err := m.settings(cmd)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	machine := enigma.New(enigma.WithLogger(m.machineLogger()))
	if err := machine.Configure(s); err != nil {
		return nil, fmt.Errorf("configure: %w", err)
	}
	return machine, nil
}
