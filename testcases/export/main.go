// Command export writes an SVG review sheet of all sector test cases.
// Run from the module root directory; the sheet ends up in
// testdata/sectors.svg and can be inspected in any browser.
package main

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"seehuhn.de/go/sector/testcases"
)

const (
	columns = 4
	pad     = 8
	label   = 14 // vertical space for the case name
)

func main() {
	type cell struct {
		name string
		svg  string
		w, h int
	}
	var cells []cell

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			outline, err := tc.Spec.Outline()
			if err != nil {
				panic(fmt.Errorf("%s_%s: %w", category, tc.Name, err))
			}
			cells = append(cells, cell{
				name: category + "_" + tc.Name,
				svg:  outline.SVG(),
				w:    tc.Width,
				h:    tc.Height,
			})
		}
	}

	cellW, cellH := 0, 0
	for _, c := range cells {
		cellW = max(cellW, c.w+pad)
		cellH = max(cellH, c.h+pad+label)
	}
	rows := (len(cells) + columns - 1) / columns

	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\">\n",
		columns*cellW, rows*cellH)
	for i, c := range cells {
		x := (i % columns) * cellW
		y := (i / columns) * cellH
		fmt.Fprintf(&b, "  <g transform=\"translate(%d,%d)\">\n", x, y)
		fmt.Fprintf(&b, "    <rect width=\"%d\" height=\"%d\" fill=\"none\" stroke=\"#ccc\"/>\n",
			c.w, c.h)
		fmt.Fprintf(&b, "    <path d=\"%s\" fill=\"#4682b4\" stroke=\"#1c3d5a\"/>\n", c.svg)
		fmt.Fprintf(&b, "    <text x=\"2\" y=\"%d\" font-size=\"10\" font-family=\"monospace\">%s</text>\n",
			c.h+label-3, c.name)
		fmt.Fprintf(&b, "  </g>\n")
	}
	b.WriteString("</svg>\n")

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	if err := os.WriteFile("testdata/sectors.svg", []byte(b.String()), 0644); err != nil {
		panic(err)
	}
}
