// Package composer manages the ephemeral editing session that produces a new
// document artifact, either from a raw chosen file or from template-seeded
// free-text pages rendered to PDF. Nothing here is persisted: state lives in
// memory until a successful submission hands it to the repository client.
package composer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"wakili/internal/client"
	"wakili/internal/model"
	"wakili/internal/pdf"
	"wakili/internal/template"
)

// Mode is the composer's current session state.
type Mode string

const (
	// ModeIdle: no file chosen, no template chosen, one empty page.
	ModeIdle Mode = "idle"
	// ModeUploading: a raw file has been chosen.
	ModeUploading Mode = "uploading"
	// ModeEditing: free-text pages exist, optionally template-seeded.
	ModeEditing Mode = "editing"
	// ModeSubmitting: a create request is in flight.
	ModeSubmitting Mode = "submitting"
)

var (
	ErrNotUploading   = errors.New("no file chosen for upload")
	ErrNotEditing     = errors.New("composer has no editable pages")
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	ErrPageIndex      = errors.New("page index out of range")
)

// Repository is the slice of the repository client the composer needs.
type Repository interface {
	CreateDocument(ctx context.Context, cmd model.CreateDocument) (*model.CaseDocument, error)
}

// LogSink records audit entries best-effort after successful creation.
type LogSink interface {
	RecordLog(ctx context.Context, action string) error
}

// File is a raw file chosen for upload. Content is held in memory so a failed
// submission can be retried without re-choosing the file.
type File struct {
	Name     string
	MimeType string
	Content  []byte
}

// Options configure a composer session.
type Options struct {
	// RequireCase makes submissions fail validation unless a case is selected.
	// Set for case-scoped dashboard entry points.
	RequireCase bool
	Layout      pdf.Layout
	Logger      *slog.Logger
	// Now is overridable in tests for default artifact names.
	Now func() time.Time
}

// Composer is the editing session state machine. It is not safe for
// concurrent use; a session belongs to one interactive flow.
type Composer struct {
	repo     Repository
	logs     LogSink
	registry *template.Registry

	requireCase bool
	layout      pdf.Layout
	logger      *slog.Logger
	now         func() time.Time

	mode       Mode
	caseID     *int64
	file       *File
	templateID string
	pages      []string
}

// New creates an idle composer session.
func New(repo Repository, logs LogSink, registry *template.Registry, opts Options) *Composer {
	layout := opts.Layout
	if layout == (pdf.Layout{}) {
		layout = pdf.DefaultLayout()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Composer{
		repo:        repo,
		logs:        logs,
		registry:    registry,
		requireCase: opts.RequireCase,
		layout:      layout,
		logger:      logger,
		now:         now,
		mode:        ModeIdle,
		pages:       []string{""},
	}
}

// Mode returns the current session state.
func (c *Composer) Mode() Mode { return c.mode }

// Pages returns the current page contents.
func (c *Composer) Pages() []string { return append([]string(nil), c.pages...) }

// TemplateID returns the selected template id, or "".
func (c *Composer) TemplateID() string { return c.templateID }

// File returns the chosen upload file, or nil.
func (c *Composer) File() *File { return c.file }

// SetCase selects the target case for the next submission. Nil targets a
// general (non-case) document.
func (c *Composer) SetCase(caseID *int64) error {
	if c.mode == ModeSubmitting {
		return ErrSubmitInFlight
	}
	c.caseID = caseID
	return nil
}

// ChooseFile switches the session to upload mode. The two composition modes
// are exclusive: any template selection and page content are cleared.
func (c *Composer) ChooseFile(f File) error {
	if c.mode == ModeSubmitting {
		return ErrSubmitInFlight
	}
	c.file = &f
	c.templateID = ""
	c.pages = []string{""}
	c.mode = ModeUploading
	return nil
}

// ChooseTemplate switches the session to editing mode with a single page
// seeded from the template's placeholder prose. Any chosen file is cleared.
func (c *Composer) ChooseTemplate(id string) error {
	if c.mode == ModeSubmitting {
		return ErrSubmitInFlight
	}
	seed, err := c.registry.SeedText(id)
	if err != nil {
		return err
	}
	c.file = nil
	c.templateID = id
	c.pages = []string{seed}
	c.mode = ModeEditing
	return nil
}

// AddPage appends one empty page.
func (c *Composer) AddPage() error {
	switch c.mode {
	case ModeSubmitting:
		return ErrSubmitInFlight
	case ModeEditing:
	default:
		return ErrNotEditing
	}
	c.pages = append(c.pages, "")
	return nil
}

// EditPage replaces the content of one page. Editing from idle enters editing
// mode with the initial empty page; editing clears any chosen file.
func (c *Composer) EditPage(index int, text string) error {
	switch c.mode {
	case ModeSubmitting:
		return ErrSubmitInFlight
	case ModeIdle:
		c.mode = ModeEditing
	case ModeEditing:
	default:
		return ErrNotEditing
	}
	if index < 0 || index >= len(c.pages) {
		return ErrPageIndex
	}
	c.pages[index] = text
	return nil
}

// Reset returns the session to idle, discarding all ephemeral state.
func (c *Composer) Reset() {
	c.mode = ModeIdle
	c.caseID = nil
	c.file = nil
	c.templateID = ""
	c.pages = []string{""}
}

type uploadSubmission struct {
	File        *File
	CaseID      *int64
	RequireCase bool
}

func (s uploadSubmission) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.File, validation.Required.Error("choose a document")),
		validation.Field(&s.CaseID, validation.Required.When(s.RequireCase).Error("select a case")),
	)
}

// SubmitUpload submits the chosen raw file. Validation failures are local and
// never reach the network. On success the session resets to idle; on failure
// it returns to upload mode so the user can retry without re-choosing.
func (c *Composer) SubmitUpload(ctx context.Context) (*model.CaseDocument, error) {
	if c.mode == ModeSubmitting {
		return nil, ErrSubmitInFlight
	}
	if c.mode != ModeUploading {
		return nil, ErrNotUploading
	}
	sub := uploadSubmission{File: c.file, CaseID: c.caseID, RequireCase: c.requireCase}
	if err := sub.Validate(); err != nil {
		return nil, client.NewValidationError(err.Error())
	}

	c.mode = ModeSubmitting
	doc, err := c.repo.CreateDocument(ctx, model.CreateDocument{
		CaseID:       c.caseID,
		DocumentName: c.file.Name,
		MimeType:     c.file.MimeType,
		Size:         int64(len(c.file.Content)),
		Content:      bytes.NewReader(c.file.Content),
	})
	if err != nil {
		c.mode = ModeUploading
		return nil, err
	}

	c.audit(ctx, fmt.Sprintf("Uploaded document: %s", doc.DocumentName))
	c.Reset()
	return doc, nil
}

// SubmitGenerate renders the composed pages into a PDF artifact and submits
// it. The artifact is rebuilt on every attempt; a failed upload discards it.
func (c *Composer) SubmitGenerate(ctx context.Context) (*model.CaseDocument, error) {
	if c.mode == ModeSubmitting {
		return nil, ErrSubmitInFlight
	}
	if c.mode != ModeEditing && c.mode != ModeIdle {
		return nil, ErrNotEditing
	}
	if blankPages(c.pages) {
		return nil, client.NewValidationError("cannot submit empty document")
	}
	if c.requireCase && c.caseID == nil {
		return nil, client.NewValidationError("select a case")
	}

	artifact, err := pdf.RenderLines(c.layout, c.layout.Paginate(c.pages))
	if err != nil {
		return nil, fmt.Errorf("generate artifact: %w", err)
	}

	prev := c.mode
	c.mode = ModeSubmitting
	doc, err := c.repo.CreateDocument(ctx, model.CreateDocument{
		CaseID:       c.caseID,
		DocumentName: c.artifactName(),
		MimeType:     "application/pdf",
		Size:         int64(len(artifact)),
		Content:      bytes.NewReader(artifact),
	})
	if err != nil {
		c.mode = prev
		return nil, err
	}

	c.audit(ctx, fmt.Sprintf("Created document: %s", doc.DocumentName))
	c.Reset()
	return doc, nil
}

// artifactName derives the generated document's name from the selected
// template, falling back to a timestamp-based default.
func (c *Composer) artifactName() string {
	if c.templateID != "" {
		if t, err := c.registry.Get(c.templateID); err == nil {
			return t.Name + ".pdf"
		}
	}
	return "document-" + c.now().Format("20060102-150405") + ".pdf"
}

// audit records the action best-effort. A log sink failure must never roll
// back or block the already-successful document creation.
func (c *Composer) audit(ctx context.Context, action string) {
	if c.logs == nil {
		return
	}
	if err := c.logs.RecordLog(ctx, action); err != nil {
		c.logger.Warn("audit log failed", "action", action, "error", err)
	}
}

func blankPages(pages []string) bool {
	for _, p := range pages {
		if strings.TrimSpace(p) != "" {
			return false
		}
	}
	return true
}
