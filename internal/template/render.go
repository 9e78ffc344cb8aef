package template

import "wakili/internal/pdf"

// Boxes converts the template's placement records into renderable text boxes,
// one output page per template page. The same records back SeedText, so the
// seeded prose and the rendered artifact can never drift apart.
func (t *Template) Boxes() [][]pdf.Box {
	pages := make([][]pdf.Box, len(t.Pages))
	for i, page := range t.Pages {
		for _, p := range page {
			pages[i] = append(pages[i], pdf.Box{
				X:    p.X,
				Y:    p.Y,
				Text: p.Text,
				Font: p.Style.Font,
				Size: p.Style.Size,
			})
		}
	}
	return pages
}

// Render produces a PDF artifact directly from the template's placements.
func (t *Template) Render() ([]byte, error) {
	return pdf.Render(t.Boxes())
}
