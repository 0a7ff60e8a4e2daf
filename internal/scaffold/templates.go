package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"github.com/bspy-dev/bspy/internal/toolchain"
)

//go:embed templates
var templateFS embed.FS

// Embedded template paths.
const (
	pyprojectTemplate = "templates/pyproject.toml.tmpl"
	flake8Template    = "templates/flake8.tmpl"
	readmeTemplate    = "templates/README.md.tmpl"
)

// templateData holds all variables available to the embedded templates.
type templateData struct {
	Project     ProjectSpec
	Author      toolchain.Author
	AuthorTable string // TOML inline table for [project].authors, empty if no author
	Year        int
}

var tomlEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// tomlString quotes s as a TOML basic string.
func tomlString(s string) string {
	return `"` + tomlEscaper.Replace(s) + `"`
}

// authorTable renders the author as a TOML inline table, leaving out empty fields.
func authorTable(a toolchain.Author) string {
	var fields []string
	if a.Name != "" {
		fields = append(fields, "name = "+tomlString(a.Name))
	}
	if a.Email != "" {
		fields = append(fields, "email = "+tomlString(a.Email))
	}
	if len(fields) == 0 {
		return ""
	}
	return "{" + strings.Join(fields, ", ") + "}"
}

var funcs = template.FuncMap{
	"toml": tomlString,
}

// render executes the embedded template at tmplPath with data.
func render(tmplPath string, data *templateData) ([]byte, error) {
	tmplBytes, err := fs.ReadFile(templateFS, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(path.Base(tmplPath)).Funcs(funcs).Parse(string(tmplBytes))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", tmplPath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", tmplPath, err)
	}
	return buf.Bytes(), nil
}
