// Package generate runs the introspect, assemble and render pipeline for
// every table of a database catalog.
package generate

import (
	"context"
	"fmt"
	"go/token"
	"io"
	"log/slog"
	"os"
	"path"
	"slices"
	"strings"

	"benritz/ormgen/internal/assemble"
	"benritz/ormgen/internal/catalog"
	"benritz/ormgen/internal/dialect"
	"benritz/ormgen/internal/driver"
	"benritz/ormgen/internal/errs"
	"benritz/ormgen/internal/render"
	"benritz/ormgen/internal/report"
	"benritz/ormgen/internal/typemap"
)

type Generator struct {
	source      dialect.Source
	dialectName string
	targetName  string
	derives     []string
	qualified   bool
	sortTables  bool
	include     []string
	exclude     []string
	pkg         string
	describe    bool
	out         io.Writer
	logger      *slog.Logger
	session     driver.Session

	dialect dialect.Dialect
	target  *typemap.Target
	dsn     string
}

type Option func(*Generator)

// New applies opts and validates the result. Every problem found here is a
// ConfigError and no database work has been attempted.
func New(opts ...Option) (*Generator, error) {
	g := Generator{
		targetName: typemap.Rust.Name(),
		qualified:  true,
		pkg:        render.DefaultPackage,
	}

	for _, opt := range opts {
		opt(&g)
	}

	if g.source.URL == "" && g.session == nil {
		return nil, errs.NewConfigError("conn", nil, "missing source database connection URL")
	}

	name := g.dialectName
	if name == "" {
		name = DetectDialect(g.source.URL)
		if name == "" {
			return nil, errs.NewConfigError("dialect", nil,
				"cannot infer dialect from connection URL, want one of "+strings.Join(Dialects(), ", "))
		}
	}
	d, err := LookupDialect(name)
	if err != nil {
		return nil, errs.NewConfigError("dialect", name, err.Error())
	}
	g.dialect = d

	t, err := typemap.Lookup(g.targetName)
	if err != nil {
		return nil, errs.NewConfigError("target", g.targetName, err.Error())
	}
	g.target = t

	for _, p := range slices.Concat(g.include, g.exclude) {
		if _, err := path.Match(p, ""); err != nil {
			return nil, errs.NewConfigError("tables", p, "invalid table pattern")
		}
	}

	if !token.IsIdentifier(g.pkg) {
		return nil, errs.NewConfigError("package", g.pkg, "not a valid Go package name")
	}

	if g.session == nil {
		dsn, err := d.DSN(g.source)
		if err != nil {
			return nil, errs.NewConfigError("conn", nil, err.Error())
		}
		g.dsn = dsn
	}

	if g.out == nil {
		g.out = os.Stdout
	}
	if g.logger == nil {
		g.logger = slog.New(slog.DiscardHandler)
	}

	return &g, nil
}

func WithSourceURL(u string) Option {
	return func(g *Generator) {
		g.source.URL = u
	}
}
func WithUsername(u string) Option {
	return func(g *Generator) {
		g.source.Username = u
	}
}
func WithPassword(p string) Option {
	return func(g *Generator) {
		g.source.Password = p
	}
}

// WithDialect selects the catalog dialect. When unset it is inferred from
// the connection URL.
func WithDialect(name string) Option {
	return func(g *Generator) {
		g.dialectName = name
	}
}

func WithTarget(name string) Option {
	return func(g *Generator) {
		g.targetName = name
	}
}

func WithDerives(names ...string) Option {
	return func(g *Generator) {
		g.derives = append([]string(nil), names...)
	}
}

// WithQualifiedFields controls whether field names carry the table name as a
// prefix. Defaults to true.
func WithQualifiedFields(v bool) Option {
	return func(g *Generator) {
		g.qualified = v
	}
}

// WithSortTables re-sorts the listed tables case-insensitively.
func WithSortTables(v bool) Option {
	return func(g *Generator) {
		g.sortTables = v
	}
}

// WithInclude keeps only tables matching at least one path.Match pattern.
func WithInclude(patterns ...string) Option {
	return func(g *Generator) {
		g.include = append(g.include, patterns...)
	}
}

// WithExclude drops tables matching any path.Match pattern.
func WithExclude(patterns ...string) Option {
	return func(g *Generator) {
		g.exclude = append(g.exclude, patterns...)
	}
}

func WithPackage(name string) Option {
	return func(g *Generator) {
		g.pkg = name
	}
}

// WithDescribe prints the buffered describe rows of each table instead of
// generating code.
func WithDescribe(v bool) Option {
	return func(g *Generator) {
		g.describe = v
	}
}

func WithOutput(w io.Writer) Option {
	return func(g *Generator) {
		g.out = w
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// WithSession uses an already open session instead of dialing the source.
// The caller keeps ownership and closes it.
func WithSession(s driver.Session) Option {
	return func(g *Generator) {
		g.session = s
	}
}

// Run introspects the catalog and writes one block per table to the output,
// each as soon as it is rendered. On error, blocks already written stand.
func (g *Generator) Run(ctx context.Context) error {
	var tmpl *render.Template
	if !g.describe {
		t, err := render.Compile(g.target.Name())
		if err != nil {
			return err
		}
		tmpl = t
	}

	session := g.session
	if session == nil {
		s, err := g.dialect.Open(ctx, g.dsn)
		if err != nil {
			return errs.NewDriverError("connect", "", err)
		}
		defer s.Close(ctx)
		session = s
	}
	g.logger.Debug("connected", "dialect", g.dialect.Name())

	reader := catalog.NewReader(session, g.dialect, g.logger)
	tables, err := reader.ListTables(ctx)
	if err != nil {
		return err
	}
	tables = g.selectTables(tables)

	asm := assemble.New(g.target,
		assemble.WithQualifiedFields(g.qualified),
		assemble.WithDerives(g.derives...),
	)

	w := &blockWriter{out: g.out}
	for _, name := range tables {
		logger := g.logger.With("table", name)

		rs, err := reader.DescribeRows(ctx, name)
		if err != nil {
			return err
		}

		if g.describe {
			if err := w.block(func(out io.Writer) error { return report.Write(out, name, rs) }); err != nil {
				return err
			}
			continue
		}

		table, err := asm.Assemble(name, rs)
		if err != nil {
			return err
		}
		text, err := tmpl.Render([]assemble.Table{table})
		if err != nil {
			return err
		}

		if w.n == 0 {
			header, err := tmpl.Header(render.HeaderData{Package: g.pkg})
			if err != nil {
				return err
			}
			if err := w.write(header); err != nil {
				return err
			}
		}
		if err := w.block(func(out io.Writer) error {
			_, err := io.WriteString(out, text)
			return err
		}); err != nil {
			return err
		}
		nullable := 0
		for _, f := range table.Fields {
			if f.IsNullable() {
				nullable++
			}
		}
		logger.Debug("rendered table", "template", tmpl.Name(), "fields", len(table.Fields), "nullable", nullable)
	}

	g.logger.Info("done", "tables", w.n)
	return nil
}

// selectTables applies the include and exclude patterns and the optional
// re-sort.
func (g *Generator) selectTables(tables []string) []string {
	out := make([]string, 0, len(tables))
	for _, t := range tables {
		if len(g.include) > 0 && !matchAny(g.include, t) {
			continue
		}
		if matchAny(g.exclude, t) {
			g.logger.Debug("excluded table", "table", t)
			continue
		}
		out = append(out, t)
	}
	if g.sortTables {
		slices.SortStableFunc(out, func(a, b string) int {
			return strings.Compare(strings.ToLower(a), strings.ToLower(b))
		})
	}
	return out
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		// patterns were validated in New
		if ok, _ := path.Match(p, name); ok {
			return true
		}
	}
	return false
}

// blockWriter separates consecutive blocks with a blank line.
type blockWriter struct {
	out     io.Writer
	n       int
	pending bool
}

func (w *blockWriter) write(s string) error {
	if s == "" {
		return nil
	}
	if _, err := io.WriteString(w.out, s); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	w.pending = true
	return nil
}

func (w *blockWriter) block(fn func(io.Writer) error) error {
	if w.pending {
		if _, err := io.WriteString(w.out, "\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	if err := fn(w.out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	w.n++
	w.pending = true
	return nil
}
