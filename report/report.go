// Package report renders simulations for people: a rounded JSON view, a
// Portuguese markdown report and its HTML conversion.
package report

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"consorcio-simulator/domain"
	"consorcio-simulator/format"
)

//go:embed templates/*.md
var templatesFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"brl": format.BRL,
	"pct": format.Percent,
	"dec": format.Decimal2,
}).ParseFS(templatesFS, "templates/*.md"))

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// Markdown writes the full simulation report.
func Markdown(w io.Writer, sim domain.Simulation) error {
	return templates.ExecuteTemplate(w, "simulation.md", sim)
}

// Scenarios writes the contemplation comparison as a markdown table.
func Scenarios(w io.Writer, res domain.ScenarioResult) error {
	return templates.ExecuteTemplate(w, "scenarios.md", res)
}

// HTML writes the simulation report as a standalone HTML page.
func HTML(w io.Writer, sim domain.Simulation) error {
	var md bytes.Buffer
	if err := Markdown(&md, sim); err != nil {
		return err
	}
	var body bytes.Buffer
	if err := markdown.Convert(md.Bytes(), &body); err != nil {
		return fmt.Errorf("converting report to html: %w", err)
	}
	_, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"pt-BR\">\n<head><meta charset=\"utf-8\"><title>Simulação %s</title></head>\n<body>\n%s</body>\n</html>\n", sim.ID, body.String())
	return err
}
