package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nucleo-core/molecule"
	"nucleo-core/site"
	"nucleo/internal/pretty"
	"nucleo/internal/writers"
	"nucleo/pkg/api"
)

type sitesOptions struct {
	input   inputOptions
	enzymes []string
	pretty  bool
	width   int
}

func (a *app) newSitesCmd() *cobra.Command {
	var o sitesOptions
	cmd := &cobra.Command{
		Use:   "sites",
		Short: "Find restriction-enzyme recognition sites",
		Long: `Scan a sequence for the recognition sites of one or more enzymes.
Start is the 0-based offset of the hit; End is exclusive and wraps past the
origin on circular molecules. Cut is the top-strand cut coordinate.`,
		Example: `  nucleo sites --seq GAATTCAGAATTC -e EcoRI
  nucleo sites --fasta plasmid.fa --circular -e hind,bamhi --pretty`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := splitNames(o.enzymes)
			if len(names) == 0 {
				return fmt.Errorf("at least one --enzyme is required")
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
			rows := siteRows(m, results)
			a.log.Info("scan finished", "sequence", m.Name(), "enzymes", len(patterns), "hits", len(rows))

			if o.pretty {
				out := cmd.OutOrStdout()
				_, err := fmt.Fprint(out, pretty.RenderSiteMap(m.RawSequence(), rows, pretty.Options{
					Width: o.width,
					Color: isTTY(out),
				}))
				if err != nil && !writers.IsBrokenPipe(err) {
					return err
				}
				return nil
			}
			return emit(a, cmd, writers.Sites, rows)
		},
	}
	o.input.register(cmd)
	cmd.Flags().StringSliceVarP(&o.enzymes, "enzyme", "e", nil, "enzyme name or unique fragment (repeatable, comma-separated) [*]")
	cmd.Flags().BoolVar(&o.pretty, "pretty", false, "draw an ASCII site map instead of rows")
	cmd.Flags().IntVar(&o.width, "width", pretty.DefaultOptions.Width, "bases per row in --pretty output")
	return cmd
}

// siteRows flattens scan results into one row per hit, in pattern order.
func siteRows(m molecule.NucleicAcid, results []site.Result) []api.SiteV1 {
	n := m.Len()
	raw := m.RawSequence()
	circular := m.Shape() == molecule.Circular
	var rows []api.SiteV1
	for _, r := range results {
		k := r.Pattern.Len()
		for _, off := range r.Offsets {
			end := off + k
			wraps := end > n
			var match string
			if wraps {
				end %= n
				match = raw[off:] + raw[:end]
			} else {
				match = raw[off:end]
			}
			cut := off + r.Pattern.CutOffset
			if circular && cut >= n {
				cut -= n
			}
			rows = append(rows, api.SiteV1{
				SequenceID: m.Name(),
				Enzyme:     r.Pattern.Name,
				Site:       r.Pattern.Recognition(),
				Start:      off,
				End:        end,
				Cut:        cut,
				Wraps:      wraps,
				Match:      match,
			})
		}
	}
	return rows
}
