package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"wakili/internal/client"
	"wakili/internal/composer"
	"wakili/internal/dashboard"
	"wakili/internal/model"
	"wakili/internal/template"
)

type cli struct {
	repo     *client.Client
	registry *template.Registry
	settings dashboard.Settings
	out      io.Writer
	in       io.Reader
}

func (a *cli) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	caseID := fs.Int64("case", 0, "restrict to one case")
	filter := fs.String("filter", "", "substring filter over name and case id")
	fs.Parse(args)

	var view *dashboard.DocumentList
	if *caseID > 0 {
		view = dashboard.NewCaseList(a.repo, *caseID)
	} else {
		view = dashboard.NewDocumentList(a.repo)
	}
	if err := view.Load(ctx); err != nil {
		return err
	}
	view.SetSearch(*filter)

	docs := view.Visible()
	if len(docs) == 0 {
		fmt.Fprintln(a.out, "no documents")
		return nil
	}
	for _, d := range docs {
		a.printRow(d)
	}
	return nil
}

func (a *cli) printRow(d model.CaseDocument) {
	caseRef := "-"
	if d.CaseID != nil {
		caseRef = fmt.Sprintf("case %d", *d.CaseID)
	}
	fmt.Fprintf(a.out, "%6d  %-40s  %-10s  %8d bytes  %s  %s\n",
		d.DocumentID, d.DocumentName, caseRef, d.FileSize,
		d.UpdatedAt.Format("2006-01-02 15:04"), d.DocumentURL)
}

func (a *cli) cases(ctx context.Context) error {
	cases, err := a.repo.ListCases(ctx)
	if err != nil {
		return err
	}
	for _, cs := range cases {
		fmt.Fprintf(a.out, "%6d  %-18s  %-16s  %s\n",
			cs.CaseID, cs.CaseNumber, cs.CaseTrackNumber, cs.CaseDescription)
	}
	return nil
}

func (a *cli) templates(args []string) error {
	fs := flag.NewFlagSet("templates", flag.ExitOnError)
	preview := fs.String("preview", "", "render this template to a PDF file")
	out := fs.String("out", "", "output path for -preview (default <id>.pdf)")
	fs.Parse(args)

	if *preview == "" {
		for _, t := range a.registry.List() {
			fmt.Fprintf(a.out, "%-18s  %-20s  %s\n", t.ID, t.Name, t.Description)
		}
		return nil
	}

	t, err := a.registry.Get(*preview)
	if err != nil {
		return err
	}
	artifact, err := t.Render()
	if err != nil {
		return err
	}
	path := *out
	if path == "" {
		path = t.ID + ".pdf"
	}
	if err := os.WriteFile(path, artifact, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "wrote %s (%d bytes)\n", path, len(artifact))
	return nil
}

func (a *cli) upload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	file := fs.String("file", "", "path of the file to upload")
	caseID := fs.Int64("case", 0, "owning case (omit for a general document)")
	name := fs.String("name", "", "document name (default: file name)")
	fs.Parse(args)

	if *file == "" {
		return client.NewValidationError("choose a document")
	}
	content, err := os.ReadFile(*file)
	if err != nil {
		return err
	}
	docName := *name
	if docName == "" {
		docName = filepath.Base(*file)
	}

	sess := composer.New(a.repo, a.repo, a.registry, composer.Options{})
	if *caseID > 0 {
		id := *caseID
		if err := sess.SetCase(&id); err != nil {
			return err
		}
	}
	if err := sess.ChooseFile(composer.File{
		Name:     docName,
		MimeType: mimeFromName(docName),
		Content:  content,
	}); err != nil {
		return err
	}

	doc, err := sess.SubmitUpload(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "uploaded document %d: %s\n", doc.DocumentID, doc.DocumentName)
	return nil
}

func (a *cli) generate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	templateID := fs.String("template", "", "seed the first page from this template")
	caseID := fs.Int64("case", 0, "owning case (omit for a general document)")
	var pageFiles stringList
	fs.Var(&pageFiles, "page", "text file appended as one page (repeatable)")
	fs.Parse(args)

	sess := composer.New(a.repo, a.repo, a.registry, composer.Options{})
	if *caseID > 0 {
		id := *caseID
		if err := sess.SetCase(&id); err != nil {
			return err
		}
	}
	if *templateID != "" {
		if err := sess.ChooseTemplate(*templateID); err != nil {
			return err
		}
	}
	for i, path := range pageFiles {
		text, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if i == 0 && *templateID == "" {
			if err := sess.EditPage(0, string(text)); err != nil {
				return err
			}
			continue
		}
		if err := sess.AddPage(); err != nil {
			return err
		}
		if err := sess.EditPage(len(sess.Pages())-1, string(text)); err != nil {
			return err
		}
	}

	doc, err := sess.SubmitGenerate(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created document %d: %s\n", doc.DocumentID, doc.DocumentName)
	return nil
}

func (a *cli) update(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ExitOnError)
	id := fs.Int64("id", 0, "document id")
	name := fs.String("name", "", "new document name")
	url := fs.String("url", "", "new url reference")
	fs.Parse(args)

	if *id <= 0 {
		return client.NewValidationError("document id is required")
	}
	cmd := model.UpdateDocument{}
	if *name != "" {
		cmd.DocumentName = name
	}
	if *url != "" {
		cmd.DocumentURL = url
	}

	doc, err := a.repo.UpdateDocument(ctx, *id, cmd)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "updated document %d: %s\n", doc.DocumentID, doc.DocumentName)
	return nil
}

func (a *cli) delete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "document id")
	yes := fs.Bool("yes", false, "skip the interactive prompt")
	fs.Parse(args)

	if *id <= 0 {
		return client.NewValidationError("document id is required")
	}

	view := dashboard.NewDocumentList(a.repo)
	if err := view.Load(ctx); err != nil {
		return err
	}
	confirm, err := view.ConfirmDelete(*id)
	if err != nil {
		return err
	}

	// The confirmation prompt always renders the target's identifying fields.
	target := confirm.Target()
	fmt.Fprintln(a.out, "about to delete:")
	a.printRow(target)

	if !*yes {
		fmt.Fprint(a.out, "delete this document? [y/N] ")
		answer, _ := bufio.NewReader(a.in).ReadString('\n')
		if strings.ToLower(strings.TrimSpace(answer)) != "y" {
			confirm.Cancel()
			fmt.Fprintln(a.out, "cancelled")
			return nil
		}
	}

	res, err := confirm.Confirm(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "deleted document %d\n", res.DocumentID)
	return nil
}

func (a *cli) open(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("open", flag.ExitOnError)
	id := fs.Int64("id", 0, "document id")
	fs.Parse(args)

	if *id <= 0 {
		return client.NewValidationError("document id is required")
	}
	doc, err := a.repo.GetDocument(ctx, *id)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, doc.DocumentURL)
	return nil
}

// stringList collects repeatable flag values.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func mimeFromName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".doc", ".docx":
		return "application/msword"
	default:
		return "application/octet-stream"
	}
}
