// Package format renders catalog listings and batch reports as terminal or
// Markdown tables.
package format

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"enigma/internal/batch"
	"enigma/pkg/enigma"
)

// Mode selects the table output.
type Mode int

const (
	ASCII    Mode = iota // box-drawn terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// textWidth caps message columns in batch reports.
const textWidth = 48

// newTable starts a go-pretty writer for mode with the given header.
func newTable(m Mode, header ...any) table.Writer {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	w.AppendHeader(table.Row(header))
	return w
}

func render(w table.Writer, m Mode) string {
	if m == Markdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}

// RotorCatalog lists every known rotor with its wiring and turnover letters.
// Turnover letters are centred since they are one or two characters wide.
func RotorCatalog(m Mode) string {
	w := newTable(m, "Rotor", "Wiring", "Turnover")
	for _, r := range enigma.RotorTypes() {
		w.AppendRow(table.Row{r.Type, r.Wiring, r.Turnover})
	}
	w.SetColumnConfigs([]table.ColumnConfig{{Number: 3, Align: text.AlignCenter}})
	return render(w, m)
}

// ReflectorCatalog lists every known reflector with its letter pairs.
func ReflectorCatalog(m Mode) string {
	w := newTable(m, "Reflector", "Pairs")
	for _, r := range enigma.ReflectorTypes() {
		w.AppendRow(table.Row{r.Type, strings.Join(r.Pairs, " ")})
	}
	return render(w, m)
}

// BatchResults renders one row per job with a footer counting successes.
// Failed jobs show their error in the output column.
func BatchResults(results []batch.Result, m Mode) string {
	w := newTable(m, "ID", "OK", "Input", "Output", "Rotors")
	ok := 0
	for _, r := range results {
		output := r.Output
		if r.Err != nil {
			output = r.Err.Error()
		} else {
			ok++
		}
		w.AppendRow(table.Row{r.ID, BoolMark(r.Err == nil), r.Input, output, r.Positions})
	}
	w.AppendFooter(table.Row{"", "", "", "succeeded", ok})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignCenter},
		{Number: 3, WidthMax: textWidth, Transformer: truncating},
		{Number: 4, WidthMax: textWidth, Transformer: truncating},
		{Number: 5, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	return render(w, m)
}

// truncating shortens long messages instead of letting go-pretty wrap them.
func truncating(val any) string {
	s, _ := val.(string)
	return Truncate(s, textWidth)
}
