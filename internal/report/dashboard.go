package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.New("report").
	Funcs(template.FuncMap{"displayURL": displayURL}).
	ParseFS(templatesFS, "templates/*.tmpl"))

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Dashboard renders the narrative summary as a standalone HTML page.
type Dashboard struct{}

func (Dashboard) Name() string { return "dashboard" }
func (Dashboard) File() string { return "dashboard.html" }

func (Dashboard) Render(in Input) (Rendered, error) {
	md, err := SummaryMarkdown(in)
	if err != nil {
		return Rendered{}, err
	}
	var body bytes.Buffer
	if err := markdown.Convert([]byte(md), &body); err != nil {
		return Rendered{}, fmt.Errorf("converting markdown: %w", err)
	}

	var out bytes.Buffer
	err = templates.ExecuteTemplate(&out, "dashboard.html.tmpl", struct {
		Title       string
		Body        template.HTML
		GeneratedAt string
	}{
		Title:       in.Deck.Title + " Financial Dashboard",
		Body:        template.HTML(body.String()), //nolint:gosec // goldmark output without raw HTML passthrough
		GeneratedAt: in.GeneratedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return Rendered{}, fmt.Errorf("executing dashboard template: %w", err)
	}
	return Rendered{Data: out.Bytes()}, nil
}
