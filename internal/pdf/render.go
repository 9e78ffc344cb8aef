package pdf

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Box is one positioned piece of text on an output page. Coordinates are PDF
// points from the lower-left corner.
type Box struct {
	X    float64
	Y    float64
	Text string
	Font string
	Size float64
}

// DefaultFont is used when a box does not name one.
const DefaultFont = "Helvetica"

// create-form JSON shapes consumed by pdfcpu's declarative create API.
type createForm struct {
	Paper  string                `json:"papersize"`
	Origin string                `json:"origin"`
	Pages  map[string]createPage `json:"pages"`
}

type createPage struct {
	Content createContent `json:"content"`
}

type createContent struct {
	Text []createTextBox `json:"text"`
}

type createTextBox struct {
	Value    string     `json:"value"`
	Position [2]float64 `json:"position"`
	Font     createFont `json:"font"`
}

type createFont struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

// Render serializes the given pages of text boxes into a PDF artifact.
func Render(pages [][]Box) ([]byte, error) {
	if len(pages) == 0 {
		return nil, fmt.Errorf("render: no pages")
	}

	form := createForm{
		Paper:  "A4",
		Origin: "lowerLeft",
		Pages:  make(map[string]createPage, len(pages)),
	}
	for i, boxes := range pages {
		page := createPage{}
		for _, b := range boxes {
			if b.Text == "" {
				continue
			}
			font := b.Font
			if font == "" {
				font = DefaultFont
			}
			size := int(b.Size)
			if size <= 0 {
				size = 12
			}
			page.Content.Text = append(page.Content.Text, createTextBox{
				Value:    b.Text,
				Position: [2]float64{b.X, b.Y},
				Font:     createFont{Name: font, Size: size},
			})
		}
		if len(page.Content.Text) == 0 {
			// A blank composed page still has to occupy an output page.
			page.Content.Text = []createTextBox{{
				Value:    " ",
				Position: [2]float64{72, 72},
				Font:     createFont{Name: DefaultFont, Size: 12},
			}}
		}
		form.Pages[fmt.Sprintf("%d", i+1)] = page
	}

	payload, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("marshal create form: %w", err)
	}

	var buf bytes.Buffer
	if err := api.Create(nil, bytes.NewReader(payload), &buf, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("create pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderLines lays the paginated lines onto pages using the layout's fixed
// geometry and renders the artifact.
func RenderLines(l Layout, pages [][]string) ([]byte, error) {
	boxes := make([][]Box, len(pages))
	for i, lines := range pages {
		for j, line := range lines {
			if line == "" {
				continue
			}
			boxes[i] = append(boxes[i], Box{
				X:    l.Margin,
				Y:    l.LineY(j),
				Text: line,
				Font: DefaultFont,
				Size: l.FontSize,
			})
		}
	}
	return Render(boxes)
}

// PageCount reports the number of pages in a rendered artifact.
func PageCount(artifact []byte) (int, error) {
	return api.PageCount(bytes.NewReader(artifact), model.NewDefaultConfiguration())
}
