package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"benritz/ormgen/internal/config"
	"benritz/ormgen/internal/errs"
	"benritz/ormgen/internal/generate"
)

type flags struct {
	configPath string
	conn       string
	user       string
	password   string
	dialect    string
	target     string
	derive     string
	pkg        string
	include    string
	exclude    string
	sort       bool
	bareFields bool
	describe   bool
	verbose    bool
	set        map[string]struct{}
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	f := &flags{set: map[string]struct{}{}}
	fs := flag.NewFlagSet("ormgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "Config file")
	fs.StringVar(&f.conn, "conn", "", "Source database connection URL (required unless set in config)")
	fs.StringVar(&f.user, "user", "", "Database username")
	fs.StringVar(&f.password, "password", "", "Database password")
	fs.StringVar(&f.dialect, "dialect", "", "Catalog dialect: "+strings.Join(generate.Dialects(), ", ")+" (inferred from -conn when unset)")
	fs.StringVar(&f.target, "target", "", "Generated language: rust (default) or go")
	fs.StringVar(&f.derive, "derive", "", "Comma separated derives (rust) or struct tag keys (go)")
	fs.StringVar(&f.pkg, "package", "", "Package clause of generated Go code")
	fs.StringVar(&f.include, "include", "", "Comma separated table name patterns to include")
	fs.StringVar(&f.exclude, "exclude", "", "Comma separated table name patterns to exclude")
	fs.BoolVar(&f.sort, "sort", false, "Sort tables case-insensitively")
	fs.BoolVar(&f.bareFields, "bare-fields", false, "Do not prefix field names with the table name")
	fs.BoolVar(&f.describe, "describe", false, "Print the describe rows of each table instead of generating code")
	fs.BoolVar(&f.verbose, "v", false, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, errs.NewConfigError("flags", nil, err.Error())
	}
	fs.Visit(func(fl *flag.Flag) {
		f.set[fl.Name] = struct{}{}
	})
	return f, nil
}

func (f *flags) isSet(name string) bool {
	_, ok := f.set[name]
	return ok
}

// options layers flag values over the config file.
func (f *flags) options() ([]generate.Option, error) {
	var opts []generate.Option

	if f.configPath != "" {
		cfg, err := config.LoadFile(f.configPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cfg.Options()...)
	}

	if f.conn != "" {
		opts = append(opts, generate.WithSourceURL(f.conn))
	}
	if f.user != "" {
		opts = append(opts, generate.WithUsername(f.user))
	}
	if f.password != "" {
		opts = append(opts, generate.WithPassword(f.password))
	}
	if f.dialect != "" {
		opts = append(opts, generate.WithDialect(f.dialect))
	}
	if f.target != "" {
		opts = append(opts, generate.WithTarget(f.target))
	}
	if f.isSet("derive") {
		opts = append(opts, generate.WithDerives(splitList(f.derive)...))
	}
	if f.pkg != "" {
		opts = append(opts, generate.WithPackage(f.pkg))
	}
	if f.include != "" {
		opts = append(opts, generate.WithInclude(splitList(f.include)...))
	}
	if f.exclude != "" {
		opts = append(opts, generate.WithExclude(splitList(f.exclude)...))
	}
	if f.isSet("sort") {
		opts = append(opts, generate.WithSortTables(f.sort))
	}
	if f.isSet("bare-fields") {
		opts = append(opts, generate.WithQualifiedFields(!f.bareFields))
	}
	if f.describe {
		opts = append(opts, generate.WithDescribe(true))
	}
	return opts, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errs.ErrConfig):
		return 2
	default:
		return 1
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts, err := f.options()
	if err != nil {
		return err
	}
	opts = append(opts, generate.WithOutput(stdout), generate.WithLogger(logger))

	g, err := generate.New(opts...)
	if err != nil {
		return err
	}
	return g.Run(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		switch {
		case errors.Is(err, errs.ErrConfig):
			fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		default:
			fmt.Fprintf(os.Stderr, "ormgen: %v\n", err)
		}
	}
	stop()
	os.Exit(exitCode(err))
}
