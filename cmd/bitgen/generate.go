package main

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/alexhholmes/bitfield/internal/analyzer"
	"github.com/alexhholmes/bitfield/internal/codegen"
	"github.com/alexhholmes/bitfield/internal/config"
	"github.com/alexhholmes/bitfield/internal/parser"
)

// generateAll runs generateFile over files, at most cfg.Workers at a time,
// and returns the paths written.
func generateAll(ctx context.Context, cfg *config.Config, files []string) ([]string, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	var mu sync.Mutex
	var written []string

	for _, path := range files {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := generateFile(path, cfg)
			if err != nil {
				return err
			}
			if out != "" {
				mu.Lock()
				written = append(written, out)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return written, nil
}

// outputPath returns the generated file name for a source file.
func outputPath(path, suffix string) string {
	return strings.TrimSuffix(path, ".go") + suffix
}

// generateFile writes the accessors for one source file. It returns the
// path written, or "" when the file holds no @bitfield types.
func generateFile(path string, cfg *config.Config) (string, error) {
	logger := log.WithField("file", path)

	if strings.HasSuffix(path, cfg.OutputSuffix) {
		logger.Debug("Skipping generated file")
		return "", nil
	}

	file, err := parser.ParseFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "%s", path)
	}
	if len(file.Types) == 0 {
		logger.Debug("No @bitfield types found")
		return "", nil
	}

	layouts, err := analyzeFile(file)
	if err != nil {
		for _, l := range layouts {
			for _, e := range l.Errors {
				logger.WithField("type", l.Source).Error(e)
			}
		}
		return "", errors.Wrapf(err, "%s", path)
	}

	src, err := codegen.GenerateFile(file.Package, layouts, codegen.FileOptions{
		Source: path,
		Header: cfg.Header,
	})
	if err != nil {
		return "", errors.Wrapf(err, "%s", path)
	}

	out := outputPath(path, cfg.OutputSuffix)
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return "", errors.Wrapf(err, "write %s", out)
	}
	logger.WithField("types", len(layouts)).WithField("out", out).Info("Generated accessors")
	return out, nil
}

// analyzeFile analyzes every type of file. On failure it still returns the
// layouts so their errors can be reported.
func analyzeFile(file *parser.File) ([]*analyzer.AnalyzedLayout, error) {
	reg := analyzer.NewTypeRegistry()
	reg.RegisterNamed(file.Named)

	var layouts []*analyzer.AnalyzedLayout
	var failed []string
	for _, t := range file.Types {
		a, err := analyzer.Analyze(t, reg)
		if a != nil {
			layouts = append(layouts, a)
		}
		if err != nil {
			failed = append(failed, err.Error())
		}
	}

	if len(failed) > 0 {
		return layouts, errors.New(strings.Join(failed, "; "))
	}
	return layouts, nil
}
