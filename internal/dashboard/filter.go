// Package dashboard holds the view models behind the case-document screens:
// the list/filter view, the guarded deletion flow, and UI settings.
package dashboard

import (
	"strconv"
	"strings"

	"wakili/internal/model"
)

// Filter returns the subset of docs whose document name or stringified case id
// contains term, case-insensitively. An empty term matches everything. The
// input set is never mutated; filtering is purely derived.
func Filter(docs []model.CaseDocument, term string) []model.CaseDocument {
	if term == "" {
		return docs
	}
	needle := strings.ToLower(term)
	var out []model.CaseDocument
	for _, d := range docs {
		if strings.Contains(strings.ToLower(d.DocumentName), needle) {
			out = append(out, d)
			continue
		}
		if d.CaseID != nil && strings.Contains(strconv.FormatInt(*d.CaseID, 10), needle) {
			out = append(out, d)
		}
	}
	return out
}
