package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nucleo-core/digest"
	"nucleo-core/site"
	"nucleo/internal/writers"
	"nucleo/pkg/api"
)

type digestOptions struct {
	input   inputOptions
	enzymes []string
	min     int
	max     int
	seqs    bool
}

func (a *app) newDigestCmd() *cobra.Command {
	var o digestOptions
	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Cut a sequence with one or more enzymes and list the fragments",
		Long: `Cut the top strand at every recognition site of the given enzymes and
report the resulting fragments. On a circular molecule the fragment that
spans the origin is flagged as wrapping.`,
		Example: `  nucleo digest --seq GAATTCAGGATCC -e EcoRI,BamHI
  nucleo digest --fasta pUC19.fa --circular -e EcoRI --min 100 --seqs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := splitNames(o.enzymes)
			if len(names) == 0 {
				return fmt.Errorf("at least one --enzyme is required")
			}
			if o.max > 0 && o.min > o.max {
				return fmt.Errorf("--min (%d) is greater than --max (%d)", o.min, o.max)
			}
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			patterns, err := cat.LookupAll(names)
			if err != nil {
				return err
			}
			m, err := a.loadMolecule(cmd.Context(), o.input)
			if err != nil {
				return err
			}
			results, err := site.Scan(cmd.Context(), m, patterns, a.v.GetInt(workersConfigKey))
			if err != nil {
				return err
			}
			var cuts []int
			for _, r := range results {
				cuts = append(cuts, r.Cuts...)
			}
			frags := digest.Filter(digest.Fragments(m.Len(), m.Shape(), cuts), o.min, o.max)
			a.log.Info("digest finished", "sequence", m.Name(), "cuts", len(cuts), "fragments", len(frags))

			rows := make([]api.FragmentV1, 0, len(frags))
			for _, f := range frags {
				row := api.FragmentV1{
					SequenceID: m.Name(),
					Start:      f.Start,
					End:        f.End,
					Length:     f.Length,
					Wraps:      f.Wraps,
				}
				if o.seqs {
					row.Seq = digest.Sequence(m.RawSequence(), f)
				}
				rows = append(rows, row)
			}
			return emit(a, cmd, writers.Fragments, rows)
		},
	}
	o.input.register(cmd)
	fs := cmd.Flags()
	fs.StringSliceVarP(&o.enzymes, "enzyme", "e", nil, "enzyme name or unique fragment (repeatable, comma-separated) [*]")
	fs.IntVar(&o.min, "min", 0, "minimum fragment length")
	fs.IntVar(&o.max, "max", 0, "maximum fragment length (0 = unbounded)")
	fs.BoolVar(&o.seqs, "seqs", false, "include fragment sequences")
	return cmd
}
