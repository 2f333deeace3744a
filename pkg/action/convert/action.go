package convert

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cmmoran/prismaconvert/pkg/parser"
)

// Generate converts opts.Input and writes the result to opts.Output, or to
// stdout when Output is empty or "-".
func Generate(opts *parser.Options, stdout io.Writer) error {
	par, err := parser.NewWithOpts(opts)
	if err != nil {
		return err
	}
	if par.Opts.Input == "" {
		return parser.ErrNoInput
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	in := par.Opts.Input
	if !filepath.IsAbs(in) {
		in = filepath.Join(cwd, in)
	}

	if err = par.ParseFile(in); err != nil {
		return err
	}
	out, err := par.Render()
	if err != nil {
		return err
	}

	if par.Opts.Output == "-" {
		_, err = stdout.Write(out)
		return err
	}

	if err = os.MkdirAll(filepath.Dir(par.Opts.Output), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err = os.WriteFile(par.Opts.Output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	slog.Info("wrote output", "file", par.Opts.Output, "format", par.Opts.Format)

	return nil
}
