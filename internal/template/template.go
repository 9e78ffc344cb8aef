// Package template exposes the fixed catalog of document templates. A template
// is a declarative list of text placement records per page; the same records
// drive both seed-text extraction for the composer and PDF rendering.
package template

// Style describes how a placement is drawn.
type Style struct {
	Font string
	Size float64
}

// Placement is a single piece of text positioned on a template page.
// Coordinates are PDF points from the lower-left corner.
type Placement struct {
	X, Y  float64
	Text  string
	Style Style
}

// Template is static catalog data baked into the client. Templates are never
// created, updated, or deleted by users.
type Template struct {
	ID          string
	Name        string
	Description string
	Pages       [][]Placement
}
