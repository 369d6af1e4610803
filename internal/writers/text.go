package writers

import (
	"bufio"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// textWriter prints one tab-separated line per row.
func textWriter[T any](cols Columns[T]) WriteFunc[T] {
	return func(w io.Writer, rows []T, opt Options) error {
		bw := bufio.NewWriter(w)
		if opt.Header {
			if _, err := bw.WriteString("# " + strings.Join(cols.Header, "\t") + "\n"); err != nil {
				return err
			}
		}
		for _, r := range rows {
			if _, err := bw.WriteString(strings.Join(cols.Row(r), "\t") + "\n"); err != nil {
				return err
			}
		}
		return bw.Flush()
	}
}

// tableWriter renders an aligned, borderless table.
func tableWriter[T any](cols Columns[T]) WriteFunc[T] {
	return func(w io.Writer, rows []T, opt Options) error {
		table := tablewriter.NewWriter(w)
		if opt.Header {
			table.SetHeader(cols.Header)
		}
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnSeparator(" ")
		table.SetAutoWrapText(false)
		table.SetAutoFormatHeaders(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, r := range rows {
			table.Append(cols.Row(r))
		}
		table.Render()
		return nil
	}
}
