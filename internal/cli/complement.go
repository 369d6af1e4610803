package cli

import (
	"github.com/spf13/cobra"

	"nucleo/internal/writers"
	"nucleo/pkg/api"
)

func (a *app) newComplementCmd() *cobra.Command {
	var in inputOptions
	cmd := &cobra.Command{
		Use:   "complement",
		Short: "Print the complement strand of a DNA or RNA sequence",
		Long: `Complement every base position for position (A<->T or A<->U, C<->G, N<->N).
The output is uppercase; the 5' and 3' columns name the bottom-strand ends.`,
		Example: `  nucleo complement --seq ACGGT
  nucleo complement --rna --seq AUNGC -f json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := a.loadMolecule(cmd.Context(), in)
			if err != nil {
				return err
			}
			comp, err := m.ComplementRawSequence()
			if err != nil {
				return err
			}
			five, err := m.FivePrimeBottom()
			if err != nil {
				return err
			}
			three, err := m.ThreePrimeBottom()
			if err != nil {
				return err
			}
			row := api.ComplementV1{
				SequenceID: m.Name(),
				Kind:       m.Kind().String(),
				Shape:      m.Shape().String(),
				Length:     m.Len(),
				Sequence:   m.RawSequence(),
				Complement: comp,
				FivePrime:  five.String(),
				ThreePrime: three.String(),
			}
			return emit(a, cmd, writers.Complements, []api.ComplementV1{row})
		},
	}
	in.register(cmd)
	return cmd
}
