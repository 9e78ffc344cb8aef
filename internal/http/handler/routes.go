package handler

import (
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v2"

	"wakili/internal/model"
	"wakili/internal/service"
)

// RegisterRoutes attaches the document manager's REST surface to the provided
// Fiber app. Handlers stay thin; business rules live in the service layer.
func RegisterRoutes(app *fiber.App, docSvc service.DocumentService, caseSvc service.CaseService, logSvc service.LogService) {
	app.Get("/healthz", LivenessProbe())

	app.Get("/documents", ListDocuments(docSvc))
	app.Post("/documents", UploadDocument(docSvc))
	app.Get("/documents/by-case/:case_id", ListByCase(docSvc))
	app.Get("/documents/:id", GetDocument(docSvc))
	app.Put("/documents/:id", UpdateDocument(docSvc))
	app.Delete("/documents/:id", DeleteDocument(docSvc))

	app.Get("/files/+", OpenFile(docSvc))

	app.Get("/cases", ListCases(caseSvc))
	app.Post("/logs", RecordLog(logSvc))
	app.Get("/logs", ListLogs(logSvc))
}

// LivenessProbe is a simple liveness check; the dev backend has no external
// dependencies to verify.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// ListDocuments returns every document, in creation order.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		if docs == nil {
			docs = []model.CaseDocument{}
		}
		return c.JSON(docs)
	}
}

// GetDocument returns one document by id.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// ListByCase returns the documents scoped to one case. A case with no
// documents is a 404, which clients treat as an empty result.
func ListByCase(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caseID, err := parseID(c.Params("case_id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_CASE_ID", "invalid case id format")
		}
		docs, err := svc.ListByCase(c.UserContext(), caseID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(docs)
	}
}

// UploadDocument accepts multipart/form-data with fields case_id (optional),
// document_name (optional, defaults to the file name), and file (required).
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		var caseID *int64
		if v := c.FormValue("case_id"); v != "" {
			id, err := strconv.ParseInt(v, 10, 64)
			if err != nil || id <= 0 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_CASE_ID", "invalid case id")
			}
			caseID = &id
		}

		name := c.FormValue("document_name")
		if name == "" {
			name = fh.Filename
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		doc, err := svc.Create(c.UserContext(), model.CreateDocument{
			CaseID:       caseID,
			DocumentName: name,
			MimeType:     ct,
			Size:         fh.Size,
			Content:      f,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// updateRequest is the PUT /documents/:id body: a partial update of the
// mutable fields.
type updateRequest struct {
	DocumentName *string `json:"document_name"`
	DocumentURL  *string `json:"document_url"`
}

func (r updateRequest) Validate() error {
	if r.DocumentName == nil && r.DocumentURL == nil {
		return validation.NewError("validation_no_fields", "at least one field must be provided")
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.DocumentName, validation.NilOrNotEmpty.Error("document name cannot be empty")),
		validation.Field(&r.DocumentURL, validation.NilOrNotEmpty.Error("document url cannot be empty")),
	)
}

// UpdateDocument applies a partial update of name and/or url reference.
func UpdateDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var req updateRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		if err := req.Validate(); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		}

		doc, err := svc.Update(c.UserContext(), id, model.UpdateDocument{
			DocumentName: req.DocumentName,
			DocumentURL:  req.DocumentURL,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// DeleteDocument removes a document and acknowledges with the deleted id.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c.Params("id"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		res, err := svc.Delete(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// OpenFile streams a stored blob; document_url values point here.
func OpenFile(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := strings.TrimPrefix(c.Path(), "/files/")
		rc, info, err := svc.Open(c.UserContext(), key)
		if err != nil {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "file not found")
		}
		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		return c.SendStream(rc, int(info.Size))
	}
}

// ListCases returns the read-only case catalog for case pickers.
func ListCases(svc service.CaseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cases, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(cases)
	}
}

// logRequest is the POST /logs body.
type logRequest struct {
	Action string `json:"action"`
}

func (r logRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Action, validation.Required.Error("action is required")),
	)
}

// RecordLog appends an audit entry.
func RecordLog(svc service.LogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req logRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		if err := req.Validate(); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		}
		entry, err := svc.Record(c.UserContext(), req.Action)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(entry)
	}
}

// ListLogs returns the recorded audit entries, oldest first.
func ListLogs(svc service.LogService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		if entries == nil {
			entries = []model.LogEntry{}
		}
		return c.JSON(entries)
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
