// Package pretty draws an ASCII site map: the sequence in fixed-width rows
// with a caret track marking cut positions and the recognition sites
// highlighted.
package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"nucleo/pkg/api"
)

// Options control the ASCII rendering.
type Options struct {
	// Bases per row. If <=0, use default (60).
	Width int

	// Highlight recognition sites with terminal colors.
	Color bool

	CaretGlyph string // default "^"
}

// DefaultOptions is plain output at 60 bases per row.
var DefaultOptions = Options{Width: 60, CaretGlyph: "^"}

const linePrefix = "# "

var siteStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

// RenderSiteMap renders seq with the given hits. A caret sits under the
// first base after each cut. Hits may wrap on circular molecules.
func RenderSiteMap(seq string, sites []api.SiteV1, opt Options) string {
	n := len(seq)
	if n == 0 {
		return ""
	}
	width := opt.Width
	if width <= 0 {
		width = DefaultOptions.Width
	}
	caret := opt.CaretGlyph
	if caret == "" {
		caret = DefaultOptions.CaretGlyph
	}

	covered := make([]bool, n)
	cutAt := make([]bool, n)
	for _, s := range sites {
		span := len(s.Site) - strings.Count(s.Site, "^")
		for j := 0; j < span; j++ {
			covered[(s.Start+j)%n] = true
		}
		if s.Cut >= 0 && s.Cut < n {
			cutAt[s.Cut] = true
		}
	}

	digits := len(strconv.Itoa(n))
	pad := strings.Repeat(" ", digits+1)
	var b strings.Builder
	for off := 0; off < n; off += width {
		end := off + width
		if end > n {
			end = n
		}
		fmt.Fprintf(&b, "%s%*d ", linePrefix, digits, off+1)
		writeRow(&b, seq[off:end], covered[off:end], opt.Color)
		b.WriteByte('\n')

		var marks strings.Builder
		for i := off; i < end; i++ {
			if cutAt[i] {
				marks.WriteString(caret)
			} else {
				marks.WriteByte(' ')
			}
		}
		if m := strings.TrimRight(marks.String(), " "); m != "" {
			b.WriteString(linePrefix + pad + m + "\n")
		}
	}
	for _, s := range sites {
		fmt.Fprintf(&b, "%s%s cut %d (%s at %d)\n", linePrefix, s.Enzyme, s.Cut, s.Site, s.Start)
	}
	return b.String()
}

// writeRow emits row, styling each run of covered bases when color is on.
func writeRow(b *strings.Builder, row string, covered []bool, color bool) {
	if !color {
		b.WriteString(row)
		return
	}
	for i := 0; i < len(row); {
		j := i
		for j < len(row) && covered[j] == covered[i] {
			j++
		}
		if covered[i] {
			b.WriteString(siteStyle.Render(row[i:j]))
		} else {
			b.WriteString(row[i:j])
		}
		i = j
	}
}
