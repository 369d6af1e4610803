package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"nucleo/internal/writers"
	"nucleo/pkg/api"
)

func (a *app) newEnzymesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enzymes [filter]",
		Short: "List the enzyme catalog",
		Long: `List every known enzyme with its recognition site and cut offset.
An optional filter keeps names containing it, ignoring case.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}
			filter := ""
			if len(args) == 1 {
				filter = strings.ToLower(strings.TrimSpace(args[0]))
			}
			var rows []api.EnzymeV1
			for _, e := range cat.Enzymes() {
				if filter != "" && !strings.Contains(strings.ToLower(e.Name), filter) {
					continue
				}
				p, err := e.Pattern()
				if err != nil {
					return err
				}
				rows = append(rows, api.EnzymeV1{
					Name:        e.Name,
					Recognition: p.Recognition(),
					Site:        p.Site,
					Cut:         p.CutOffset,
					Palindromic: p.IsPalindromic(),
				})
			}
			return emit(a, cmd, writers.Enzymes, rows)
		},
	}
}
