package cli

import (
	"github.com/spf13/cobra"

	"nucleo/internal/writers"
)

// emit renders rows to the command's stdout in the configured format.
func emit[T any](a *app, cmd *cobra.Command, reg *writers.Registry[T], rows []T) error {
	format := a.v.GetString(formatConfigKey)
	opt := writers.Options{Header: !a.v.GetBool(noHeaderConfigKey)}
	a.log.Debug("writing output", "format", format, "rows", len(rows))
	return reg.Write(format, cmd.OutOrStdout(), rows, opt)
}
