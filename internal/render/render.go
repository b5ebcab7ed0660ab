// Package render turns table descriptors into generated source text using
// the built-in template of a target language.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"unicode/utf8"

	"golang.org/x/tools/imports"

	"benritz/ormgen/internal/assemble"
	"benritz/ormgen/internal/errs"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DefaultPackage is the package clause of generated Go files.
const DefaultPackage = "models"

var formatOptions = &imports.Options{
	Fragment:   true,
	FormatOnly: true,
	Comments:   true,
	TabIndent:  true,
	TabWidth:   8,
}

// Template is a compiled target template. It defines a "header" rendered
// once per output and a "table" rendered once per table.
type Template struct {
	name   string
	tmpl   *template.Template
	format bool
}

// HeaderData is the data of the header template.
type HeaderData struct {
	Package string
}

// Compile loads and parses the built-in template of target.
func Compile(target string) (*Template, error) {
	src, err := templateFS.ReadFile("templates/" + target + ".tmpl")
	if err != nil {
		return nil, errs.NewConfigError("target", target, "no built-in template")
	}
	return parse(target, string(src), target == "go")
}

func parse(name, src string, format bool) (*Template, error) {
	tmpl, err := template.New(name).
		Option("missingkey=error").
		Funcs(funcs).
		Parse(src)
	if err != nil {
		return nil, errs.NewTemplateError(name, "compile", err)
	}
	for _, def := range []string{"header", "table"} {
		if tmpl.Lookup(def) == nil {
			return nil, errs.NewTemplateError(name, "compile", fmt.Errorf("template %q is not defined", def))
		}
	}
	return &Template{name: name, tmpl: tmpl, format: format}, nil
}

// Name returns the target the template was compiled for.
func (t *Template) Name() string { return t.name }

// Header renders the per-output preamble. It may be empty.
func (t *Template) Header(data HeaderData) (string, error) {
	if data.Package == "" {
		data.Package = DefaultPackage
	}
	return t.execute("header", data)
}

// Render renders tables in order, one block each.
func (t *Template) Render(tables []assemble.Table) (string, error) {
	var out strings.Builder
	for _, table := range tables {
		s, err := t.execute("table", table)
		if err != nil {
			return "", err
		}
		out.WriteString(s)
	}
	return out.String(), nil
}

func (t *Template) execute(def string, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.ExecuteTemplate(&buf, def, data); err != nil {
		return "", errs.NewTemplateError(t.name, "execute", err)
	}
	out := buf.Bytes()
	if off := invalidOffset(out); off >= 0 {
		return "", &errs.EncodingError{Template: t.name, Offset: off}
	}
	if t.format && len(bytes.TrimSpace(out)) > 0 {
		formatted, err := imports.Process("", out, formatOptions)
		if err != nil {
			return "", errs.NewTemplateError(t.name, "format", err)
		}
		out = formatted
	}
	return string(out), nil
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence
// in b, or -1.
func invalidOffset(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

var funcs = template.FuncMap{
	"goType": goType,
	"tag":    tag,
}

func goType(name string) string {
	if name == "" {
		return "any"
	}
	return name
}

// tag builds a struct tag with one key per derive, each carrying the column
// name.
func tag(keys []string, column string) string {
	if len(keys) == 0 {
		return ""
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ":" + strconv.Quote(column)
	}
	return " `" + strings.Join(parts, " ") + "`"
}
