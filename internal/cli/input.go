package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"nucleo-core/alphabet"
	"nucleo-core/fasta"
	"nucleo-core/molecule"
)

// inputOptions select the molecule a command works on.
type inputOptions struct {
	Seq      string
	Fasta    string
	Name     string
	RNA      bool
	Circular bool
}

func (o *inputOptions) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&o.Seq, "seq", "s", "", "raw sequence [*]")
	fs.StringVar(&o.Fasta, "fasta", "", "FASTA file; the first record is used ('-' = stdin) [*]")
	fs.StringVarP(&o.Name, "name", "n", "", "molecule name (default: FASTA id or \"seq\")")
	fs.BoolVar(&o.RNA, "rna", false, "treat the sequence as RNA (A C G U N)")
	fs.BoolVarP(&o.Circular, "circular", "c", false, "circular molecule (sites may wrap)")
	cmd.MarkFlagsMutuallyExclusive("seq", "fasta")
	cmd.MarkFlagsOneRequired("seq", "fasta")
}

func (o inputOptions) kind() alphabet.Kind {
	if o.RNA {
		return alphabet.RNA
	}
	return alphabet.DNA
}

func (o inputOptions) shape() molecule.Shape {
	if o.Circular {
		return molecule.Circular
	}
	return molecule.Linear
}

// loadMolecule builds the molecule described by o.
func (a *app) loadMolecule(ctx context.Context, o inputOptions) (molecule.NucleicAcid, error) {
	raw, name := o.Seq, o.Name
	if o.Fasta != "" {
		rec, err := fasta.First(ctx, o.Fasta)
		if err != nil {
			if errors.Is(err, fasta.ErrNoRecord) {
				return nil, fmt.Errorf("%s: no sequence found", o.Fasta)
			}
			return nil, err
		}
		raw = string(rec.Seq)
		if name == "" {
			name = rec.ID
		}
	}
	if name == "" {
		name = "seq"
	}
	m, err := molecule.New(o.kind(), name, raw, o.shape(), molecule.WithObserver(slogObserver{a.log}))
	if err != nil {
		return nil, fmt.Errorf("sequence %q: %w", name, err)
	}
	return m, nil
}

// slogObserver forwards construction diagnostics to the log file.
type slogObserver struct{ log *slog.Logger }

func (o slogObserver) Created(kind alphabet.Kind, name string, length int) {
	o.log.Debug("molecule created", "kind", kind.String(), "name", name, "length", length)
}

func (o slogObserver) Rejected(kind alphabet.Kind, name string, err error) {
	o.log.Warn("molecule rejected", "kind", kind.String(), "name", name, "error", err)
}

// splitNames flattens repeated and comma-separated enzyme flags.
func splitNames(in []string) []string {
	var out []string
	for _, s := range in {
		for _, n := range strings.Split(s, ",") {
			if n = strings.TrimSpace(n); n != "" {
				out = append(out, n)
			}
		}
	}
	return out
}
