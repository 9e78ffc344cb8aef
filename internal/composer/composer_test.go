package composer

import (
	"bytes"
	"compress/zlib"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wakili/internal/client"
	"wakili/internal/composer/mocks"
	"wakili/internal/model"
	"wakili/internal/pdf"
	"wakili/internal/template"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newComposer(t *testing.T, opts Options) (*Composer, *mocks.MockRepository, *mocks.MockLogSink) {
	t.Helper()
	repo := new(mocks.MockRepository)
	logs := new(mocks.MockLogSink)
	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}
	return New(repo, logs, template.NewRegistry(), opts), repo, logs
}

func TestModesAreExclusive(t *testing.T) {
	c, _, _ := newComposer(t, Options{})

	require.NoError(t, c.ChooseTemplate("affidavit"))
	assert.Equal(t, ModeEditing, c.Mode())
	assert.NotEmpty(t, c.Pages()[0])

	// Choosing a file discards the template and its pages.
	require.NoError(t, c.ChooseFile(File{Name: "scan.pdf", MimeType: "application/pdf", Content: []byte("x")}))
	assert.Equal(t, ModeUploading, c.Mode())
	assert.Empty(t, c.TemplateID())
	assert.Equal(t, []string{""}, c.Pages())

	// Going back to a template discards the file.
	require.NoError(t, c.ChooseTemplate("summons"))
	assert.Nil(t, c.File())
	assert.Equal(t, "summons", c.TemplateID())
}

func TestChooseTemplateUnknown(t *testing.T) {
	c, _, _ := newComposer(t, Options{})
	assert.ErrorIs(t, c.ChooseTemplate("nope"), template.ErrTemplateNotFound)
	assert.Equal(t, ModeIdle, c.Mode())
}

func TestEditPageFromIdle(t *testing.T) {
	c, _, _ := newComposer(t, Options{})

	require.NoError(t, c.EditPage(0, "hand-written page"))
	assert.Equal(t, ModeEditing, c.Mode())
	assert.Equal(t, []string{"hand-written page"}, c.Pages())

	assert.ErrorIs(t, c.EditPage(3, "x"), ErrPageIndex)
	assert.ErrorIs(t, c.EditPage(-1, "x"), ErrPageIndex)
}

func TestAddPageRequiresEditing(t *testing.T) {
	c, _, _ := newComposer(t, Options{})
	assert.ErrorIs(t, c.AddPage(), ErrNotEditing)

	require.NoError(t, c.ChooseTemplate("contract"))
	require.NoError(t, c.AddPage())
	assert.Len(t, c.Pages(), 2)
	assert.Empty(t, c.Pages()[1])
}

func TestSubmitUploadWithoutFile(t *testing.T) {
	c, repo, _ := newComposer(t, Options{})

	_, err := c.SubmitUpload(context.Background())
	assert.ErrorIs(t, err, ErrNotUploading)

	// Validation failures never reach the repository.
	repo.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything)
}

func TestSubmitUploadRequiresCase(t *testing.T) {
	c, repo, _ := newComposer(t, Options{RequireCase: true})

	require.NoError(t, c.ChooseFile(File{Name: "scan.pdf", MimeType: "application/pdf", Content: []byte("x")}))

	_, err := c.SubmitUpload(context.Background())
	assert.True(t, client.IsValidation(err))
	assert.Contains(t, err.Error(), "select a case")
	repo.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything)

	// The chosen file survives the failed attempt.
	assert.Equal(t, ModeUploading, c.Mode())
	require.NotNil(t, c.File())
	assert.Equal(t, "scan.pdf", c.File().Name)
}

func TestSubmitUpload(t *testing.T) {
	c, repo, logs := newComposer(t, Options{})
	ctx := context.Background()

	caseID := int64(7)
	require.NoError(t, c.SetCase(&caseID))
	require.NoError(t, c.ChooseFile(File{Name: "scan.pdf", MimeType: "application/pdf", Content: []byte("raw")}))

	created := &model.CaseDocument{DocumentID: 1, DocumentName: "scan.pdf"}
	repo.On("CreateDocument", ctx, mock.MatchedBy(func(cmd model.CreateDocument) bool {
		return cmd.DocumentName == "scan.pdf" && cmd.CaseID != nil && *cmd.CaseID == 7 && cmd.Size == 3
	})).Return(created, nil)
	logs.On("RecordLog", ctx, "Uploaded document: scan.pdf").Return(nil)

	doc, err := c.SubmitUpload(ctx)
	require.NoError(t, err)
	assert.Equal(t, created, doc)
	assert.Equal(t, ModeIdle, c.Mode())
	assert.Nil(t, c.File())
	repo.AssertExpectations(t)
	logs.AssertExpectations(t)
}

func TestSubmitUploadFailureRestoresMode(t *testing.T) {
	c, repo, _ := newComposer(t, Options{})
	ctx := context.Background()

	require.NoError(t, c.ChooseFile(File{Name: "scan.pdf", MimeType: "application/pdf", Content: []byte("raw")}))
	repo.On("CreateDocument", ctx, mock.Anything).Return(nil, assert.AnError)

	_, err := c.SubmitUpload(ctx)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, ModeUploading, c.Mode())
	require.NotNil(t, c.File())
}

func TestSubmitGenerateEmpty(t *testing.T) {
	c, repo, _ := newComposer(t, Options{})

	_, err := c.SubmitGenerate(context.Background())
	assert.True(t, client.IsValidation(err))
	assert.Contains(t, err.Error(), "empty document")
	repo.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything)

	// Whitespace-only pages count as empty too.
	require.NoError(t, c.EditPage(0, "   \n\t"))
	_, err = c.SubmitGenerate(context.Background())
	assert.True(t, client.IsValidation(err))
}

// decodedStreams inflates every Flate-compressed stream in the artifact and
// returns the contents concatenated in file order. Content streams are
// compressed on write, so printed text is not visible in the raw bytes.
func decodedStreams(t *testing.T, artifact []byte) string {
	t.Helper()
	var out strings.Builder
	rest := artifact
	for {
		i := bytes.Index(rest, []byte("stream"))
		if i < 0 {
			break
		}
		body := bytes.TrimLeft(rest[i+len("stream"):], "\r\n")
		if j := bytes.Index(body, []byte("endstream")); j >= 0 {
			body = body[:j]
		}
		if zr, err := zlib.NewReader(bytes.NewReader(body)); err == nil {
			if decoded, err := io.ReadAll(zr); err == nil {
				out.Write(decoded)
			}
			zr.Close()
		}
		rest = rest[i+len("stream"):]
	}
	return out.String()
}

func TestSubmitGenerateFromTemplate(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	c, repo, logs := newComposer(t, Options{Now: func() time.Time { return fixed }})
	ctx := context.Background()

	require.NoError(t, c.ChooseTemplate("affidavit"))
	require.NoError(t, c.AddPage())
	const appended = "Further deposed on the second page."
	require.NoError(t, c.EditPage(1, appended))

	// Page one carries the template's seed text, page two the edit.
	seed, err := template.NewRegistry().SeedText("affidavit")
	require.NoError(t, err)
	require.Equal(t, []string{seed, appended}, c.Pages())

	var submitted model.CreateDocument
	repo.On("CreateDocument", ctx, mock.MatchedBy(func(cmd model.CreateDocument) bool {
		submitted = cmd
		return strings.HasSuffix(cmd.DocumentName, ".pdf") && cmd.MimeType == "application/pdf"
	})).Return(&model.CaseDocument{DocumentID: 2, DocumentName: "Affidavit.pdf"}, nil)
	logs.On("RecordLog", ctx, "Created document: Affidavit.pdf").Return(nil)

	doc, err := c.SubmitGenerate(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), doc.DocumentID)
	assert.Equal(t, ModeIdle, c.Mode())

	// The artifact is a real PDF with at least one page per composed page.
	artifact, err := io.ReadAll(submitted.Content)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(artifact), "%PDF-"))
	pages, err := pdf.PageCount(artifact)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pages, 2)

	// The printed text survives into the artifact: seed lines first, the
	// appended page after them. Snippets are shorter than the wrap width so
	// each lands intact inside a single text primitive.
	text := decodedStreams(t, artifact)
	assert.Contains(t, text, "AFFIDAVIT")
	assert.Contains(t, text, "REPUBLIC OF KENYA")
	assert.Contains(t, text, "COMMISSIONER FOR OATHS")
	assert.Contains(t, text, appended)
	assert.Less(t, strings.Index(text, "REPUBLIC OF KENYA"), strings.Index(text, appended))

	repo.AssertExpectations(t)
	logs.AssertExpectations(t)
}

func TestSubmitGenerateDefaultName(t *testing.T) {
	fixed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	c, repo, logs := newComposer(t, Options{Now: func() time.Time { return fixed }})
	ctx := context.Background()

	require.NoError(t, c.EditPage(0, "Free-form note."))

	repo.On("CreateDocument", ctx, mock.MatchedBy(func(cmd model.CreateDocument) bool {
		return cmd.DocumentName == "document-20260314-093000.pdf"
	})).Return(&model.CaseDocument{DocumentID: 3, DocumentName: "document-20260314-093000.pdf"}, nil)
	logs.On("RecordLog", ctx, mock.Anything).Return(nil)

	_, err := c.SubmitGenerate(ctx)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAuditFailureDoesNotPropagate(t *testing.T) {
	c, repo, logs := newComposer(t, Options{})
	ctx := context.Background()

	require.NoError(t, c.ChooseFile(File{Name: "scan.pdf", MimeType: "application/pdf", Content: []byte("raw")}))
	repo.On("CreateDocument", ctx, mock.Anything).
		Return(&model.CaseDocument{DocumentID: 4, DocumentName: "scan.pdf"}, nil)
	logs.On("RecordLog", ctx, mock.Anything).Return(assert.AnError)

	doc, err := c.SubmitUpload(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), doc.DocumentID)
	assert.Equal(t, ModeIdle, c.Mode())
}

func TestResetDiscardsState(t *testing.T) {
	c, _, _ := newComposer(t, Options{})
	caseID := int64(9)
	require.NoError(t, c.SetCase(&caseID))
	require.NoError(t, c.ChooseTemplate("summons"))

	c.Reset()
	assert.Equal(t, ModeIdle, c.Mode())
	assert.Empty(t, c.TemplateID())
	assert.Equal(t, []string{""}, c.Pages())
}
