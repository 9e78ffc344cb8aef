package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wakili/internal/pdf"
)

func TestListStableOrder(t *testing.T) {
	a, b := NewRegistry().List(), NewRegistry().List()
	require.Equal(t, len(a), len(b))
	assert.NotEmpty(t, a)
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
	}
}

func TestCatalogEntries(t *testing.T) {
	r := NewRegistry()
	for _, tpl := range r.List() {
		t.Run(tpl.ID, func(t *testing.T) {
			assert.NotEmpty(t, tpl.Name)
			assert.NotEmpty(t, tpl.Description)
			require.NotEmpty(t, tpl.Pages)
			for _, page := range tpl.Pages {
				assert.NotEmpty(t, page)
			}
		})
	}
}

func TestGet(t *testing.T) {
	r := NewRegistry()

	tpl, err := r.Get("affidavit")
	require.NoError(t, err)
	assert.Equal(t, "affidavit", tpl.ID)

	_, err = r.Get("missing")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestSeedText(t *testing.T) {
	r := NewRegistry()

	seed, err := r.SeedText("affidavit")
	require.NoError(t, err)
	assert.NotEmpty(t, seed)

	// Seed text is the placement texts, in placement order.
	tpl, err := r.Get("affidavit")
	require.NoError(t, err)
	lines := strings.Split(seed, "\n")
	var n int
	for _, page := range tpl.Pages {
		n += len(page)
	}
	assert.Len(t, lines, n)
	assert.Equal(t, tpl.Pages[0][0].Text, lines[0])

	// Deterministic across registries.
	again, err := NewRegistry().SeedText("affidavit")
	require.NoError(t, err)
	assert.Equal(t, seed, again)

	_, err = r.SeedText("missing")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestRender(t *testing.T) {
	tpl, err := NewRegistry().Get("summons")
	require.NoError(t, err)

	artifact, err := tpl.Render()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(artifact), "%PDF-"))

	pages, err := pdf.PageCount(artifact)
	require.NoError(t, err)
	assert.Equal(t, len(tpl.Pages), pages)
}
