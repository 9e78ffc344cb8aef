package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"wakili/internal/client"
	"wakili/internal/config"
	"wakili/internal/dashboard"
	"wakili/internal/template"
)

const usage = `wakili - case document manager

Usage:
  wakili <command> [flags]

Commands:
  list       list documents (optionally case-scoped, with substring filter)
  cases      list available cases
  templates  list document templates (or preview one to a PDF file)
  upload     upload a raw file as a new document
  generate   compose a document from a template and free-text pages
  update     rename a document or repoint its url reference
  delete     delete a document (asks for confirmation)
  open       print the document's url

Environment:
  WAKILI_API_URL          backend base url (default http://localhost:8080)
  WAKILI_API_TIMEOUT_SEC  request timeout
  WAKILI_DARK_MODE        dashboard display preference
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	repo := client.New(cfg.API.BaseURL, client.Options{
		Timeout: cfg.API.Timeout(),
		Trace:   cfg.API.TraceRequests,
	})
	registry := template.NewRegistry()
	settings := dashboard.Settings{DarkMode: cfg.UI.DarkMode}

	app := &cli{repo: repo, registry: registry, settings: settings, out: os.Stdout, in: os.Stdin}

	ctx := context.Background()
	var err error
	switch os.Args[1] {
	case "list":
		err = app.list(ctx, os.Args[2:])
	case "cases":
		err = app.cases(ctx)
	case "templates":
		err = app.templates(os.Args[2:])
	case "upload":
		err = app.upload(ctx, os.Args[2:])
	case "generate":
		err = app.generate(ctx, os.Args[2:])
	case "update":
		err = app.update(ctx, os.Args[2:])
	case "delete":
		err = app.delete(ctx, os.Args[2:])
	case "open":
		err = app.open(ctx, os.Args[2:])
	case "help", "-h", "--help":
		fmt.Fprint(os.Stdout, usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
