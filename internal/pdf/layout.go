// Package pdf turns composed page text into a binary PDF artifact. Layout is
// intentionally simple and fully deterministic: fixed margins, fixed line
// height, monospace-style width estimation, page break on overflow.
package pdf

import "strings"

// Layout holds the fixed page geometry used for generated documents.
// All dimensions are PDF points.
type Layout struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	FontSize   float64
	LineHeight float64
}

// DefaultLayout is A4 with one-inch margins, the geometry the dashboard uses
// for every generated document.
func DefaultLayout() Layout {
	return Layout{
		PageWidth:  595.28,
		PageHeight: 841.89,
		Margin:     72,
		FontSize:   12,
		LineHeight: 18,
	}
}

// maxCharsPerLine estimates how many characters fit on one printed line.
// The 0.6 factor approximates average glyph width relative to font size;
// keeping it a constant is what makes pagination deterministic.
func (l Layout) maxCharsPerLine() int {
	printable := l.PageWidth - 2*l.Margin
	n := int(printable / (l.FontSize * 0.6))
	if n < 1 {
		return 1
	}
	return n
}

// linesPerPage returns how many lines fit in the printable height.
func (l Layout) linesPerPage() int {
	printable := l.PageHeight - 2*l.Margin
	n := int(printable / l.LineHeight)
	if n < 1 {
		return 1
	}
	return n
}

// Wrap splits text into printed lines: explicit newlines are respected, and
// each resulting line is word-wrapped to the printable width. Words longer
// than a full line are hard-split.
func (l Layout) Wrap(text string) []string {
	width := l.maxCharsPerLine()
	var out []string
	for _, raw := range strings.Split(text, "\n") {
		out = append(out, wrapLine(raw, width)...)
	}
	return out
}

func wrapLine(line string, width int) []string {
	if len([]rune(line)) <= width {
		return []string{line}
	}

	var out []string
	var cur []rune
	for _, word := range strings.Split(line, " ") {
		runes := []rune(word)
		for len(runes) > width {
			// Hard split for words wider than a full line.
			if len(cur) > 0 {
				out = append(out, string(cur))
				cur = nil
			}
			out = append(out, string(runes[:width]))
			runes = runes[width:]
		}
		switch {
		case len(cur) == 0:
			cur = runes
		case len(cur)+1+len(runes) <= width:
			cur = append(cur, ' ')
			cur = append(cur, runes...)
		default:
			out = append(out, string(cur))
			cur = runes
		}
	}
	out = append(out, string(cur))
	return out
}

// Paginate lays out the composed pages. Each input page starts on a fresh
// output page; within a page, lines overflow onto continuation pages once the
// cumulative line height exceeds the printable height. Identical input always
// yields identical page breaks.
func (l Layout) Paginate(pages []string) [][]string {
	perPage := l.linesPerPage()
	var out [][]string
	for _, page := range pages {
		lines := l.Wrap(page)
		if len(lines) == 0 {
			lines = []string{""}
		}
		for start := 0; start < len(lines); start += perPage {
			end := start + perPage
			if end > len(lines) {
				end = len(lines)
			}
			out = append(out, lines[start:end])
		}
	}
	return out
}

// LineY returns the vertical position of the i-th line on a page, measured
// from the page bottom as pdfcpu expects.
func (l Layout) LineY(i int) float64 {
	return l.PageHeight - l.Margin - float64(i+1)*l.LineHeight
}
