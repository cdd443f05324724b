package codegen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/tools/imports"

	"github.com/alexhholmes/bitfield/internal/analyzer"
)

const (
	bitsImport  = "github.com/alexhholmes/bitfield/bits"
	fieldImport = "github.com/alexhholmes/bitfield/field"
)

// FileOptions controls the parts of a generated file outside the types.
type FileOptions struct {
	Source string // File the declarations were read from
	Header string // Extra comment lines placed above the package clause
}

// GenerateFile returns a complete, formatted Go file with the accessors of
// every layout.
func GenerateFile(pkg string, layouts []*analyzer.AnalyzedLayout, opts FileOptions) ([]byte, error) {
	if len(layouts) == 0 {
		return nil, errors.New("no layouts to generate")
	}

	var body strings.Builder
	needsFmt, needsBits := false, false

	for _, a := range layouts {
		gen := NewGenerator(a)
		code, err := gen.Generate()
		if err != nil {
			return nil, err
		}
		body.WriteString("\n")
		body.WriteString(code)
		needsFmt = needsFmt || gen.NeedsFmt()
		needsBits = needsBits || gen.NeedsBits()
	}

	var src strings.Builder
	src.WriteString("// Code generated by bitgen")
	if opts.Source != "" {
		src.WriteString(" from " + filepath.Base(opts.Source))
	}
	src.WriteString(". DO NOT EDIT.\n\n")

	if opts.Header != "" {
		for _, line := range strings.Split(strings.TrimRight(opts.Header, "\n"), "\n") {
			src.WriteString("// " + line + "\n")
		}
		src.WriteString("\n")
	}

	src.WriteString(fmt.Sprintf("package %s\n\n", pkg))
	src.WriteString("import (\n")
	if needsFmt {
		src.WriteString("\t\"fmt\"\n\n")
	}
	if needsBits {
		src.WriteString(fmt.Sprintf("\t%q\n", bitsImport))
	}
	src.WriteString(fmt.Sprintf("\t%q\n", fieldImport))
	src.WriteString(")\n")
	src.WriteString(body.String())

	out, err := imports.Process(opts.Source, []byte(src.String()), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "format generated code")
	}
	return out, nil
}
