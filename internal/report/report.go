package report

import (
	"fmt"
	"io"

	"rotxor/internal/rotxor"
)

// Format selects how a state is written.
type Format string

const (
	Decimal Format = "decimal"
	Hex     Format = "hex"
)

// Sequence is a named input to fold.
type Sequence struct {
	Name  string
	Bytes []byte
}

// Result is the final state after folding a Sequence.
type Result struct {
	Name  string
	State byte
}

// Reference holds the two fixed sequences of the reference run.
var Reference = []Sequence{
	{Name: "ns1", Bytes: []byte{0x01, 0x00}},
	{Name: "ns2", Bytes: []byte{0x01, 0x01}},
}

// Run folds every sequence from rotxor.InitialState. Sequences are
// independent; results keep the input order.
func Run(seqs []Sequence) []Result {
	results := make([]Result, 0, len(seqs))
	for _, seq := range seqs {
		results = append(results, Result{
			Name:  seq.Name,
			State: rotxor.Fold(rotxor.InitialState, seq.Bytes),
		})
	}
	return results
}

// Write prints one state per line.
func Write(w io.Writer, results []Result, format Format) error {
	for _, r := range results {
		if err := WriteState(w, r.State, format); err != nil {
			return fmt.Errorf("failed to write result '%s': %w", r.Name, err)
		}
	}
	return nil
}

func WriteState(w io.Writer, state byte, format Format) error {
	var err error
	switch format {
	case Hex:
		_, err = fmt.Fprintf(w, "0x%02x\n", state)
	case Decimal, "":
		_, err = fmt.Fprintf(w, "%d\n", state)
	default:
		return fmt.Errorf("unknown format '%s'", format)
	}
	return err
}
