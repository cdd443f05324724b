package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// TagKey is the struct tag key holding a field's bit range and options.
const TagKey = "bits"

// File is a parsed Go source file
type File struct {
	Package string
	Types   []*TypeLayout
	Named   map[string]string // Defined types over a named type: "type Raw uint8" → Raw: uint8
}

// TypeLayout represents a parsed struct with a @bitfield annotation
type TypeLayout struct {
	Name   string
	Anno   *TypeAnnotation
	Fields []Field
}

// Field represents a struct field with a bits tag
type Field struct {
	Name   string
	GoType string
	Tag    *FieldTag
	Pos    token.Position
}

// ParseError collects every malformed annotation or tag in a file
type ParseError struct {
	Errors []error
}

func (e *ParseError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d parse errors:\n\t%s", len(e.Errors), strings.Join(msgs, "\n\t"))
}

// ParseFile parses a Go source file and extracts types with @bitfield annotations
func ParseFile(filename string) (*File, error) {
	return ParseSource(filename, nil)
}

// ParseSource is ParseFile reading from src (string, []byte or io.Reader)
// when it is non-nil.
func ParseSource(filename string, src any) (*File, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, errors.Wrap(err, "parse error")
	}

	x := &extractor{fset: fset, named: make(map[string]string)}
	types := x.extractTypes(file)
	if len(x.errs) > 0 {
		return nil, &ParseError{Errors: x.errs}
	}

	return &File{Package: file.Name.Name, Types: types, Named: x.named}, nil
}

type extractor struct {
	fset  *token.FileSet
	errs  []error
	named map[string]string
}

func (x *extractor) errorf(pos token.Pos, format string, args ...any) {
	x.errs = append(x.errs, errors.Errorf("%s: %s", x.fset.Position(pos), fmt.Sprintf(format, args...)))
}

func (x *extractor) extractTypes(file *ast.File) []*TypeLayout {
	var types []*TypeLayout

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)

			// Doc sits on the GenDecl for "type X struct", on the TypeSpec inside "type ( ... )"
			doc := typeSpec.Doc
			if doc == nil {
				doc = genDecl.Doc
			}

			anno := x.extractAnnotation(doc)
			if anno == nil {
				// Remember "type Raw uint8" so raw field types can be resolved
				if ident, ok := typeSpec.Type.(*ast.Ident); ok {
					x.named[typeSpec.Name.Name] = ident.Name
				}
				continue // No @bitfield, skip this type
			}

			structType, ok := typeSpec.Type.(*ast.StructType)
			if !ok {
				x.errorf(typeSpec.Pos(), "%s: @bitfield requires a struct type", typeSpec.Name.Name)
				continue
			}

			before := len(x.errs)
			fields := x.extractFields(structType)
			if len(fields) == 0 && len(x.errs) == before {
				x.errorf(typeSpec.Pos(), "%s: no fields with bits tags", typeSpec.Name.Name)
			}
			if len(x.errs) > before {
				continue
			}

			types = append(types, &TypeLayout{
				Name:   typeSpec.Name.Name,
				Anno:   anno,
				Fields: fields,
			})
		}
	}

	return types
}

func (x *extractor) extractAnnotation(doc *ast.CommentGroup) *TypeAnnotation {
	if doc == nil {
		return nil
	}

	// Extract comment text lines
	var lines []string
	for _, comment := range doc.List {
		lines = append(lines, CleanComment(comment.Text))
	}

	anno, found, err := FindAnnotation(lines)
	if err != nil {
		x.errorf(doc.Pos(), "%v", err)
		return nil
	}
	if !found {
		return nil
	}

	return anno
}

func (x *extractor) extractFields(structType *ast.StructType) []Field {
	var fields []Field

	for _, f := range structType.Fields.List {
		if f.Tag == nil {
			continue // No tags
		}

		tag := reflect.StructTag(strings.Trim(f.Tag.Value, "`"))
		bitsTag, ok := tag.Lookup(TagKey)
		if !ok {
			continue
		}

		if len(f.Names) != 1 {
			x.errorf(f.Pos(), "tagged fields must declare exactly one name")
			continue
		}
		name := f.Names[0].Name

		parsed, err := ParseTag(bitsTag)
		if err != nil {
			x.errorf(f.Pos(), "field %s: %v", name, err)
			continue
		}

		fields = append(fields, Field{
			Name:   name,
			GoType: typeToString(f.Type),
			Tag:    parsed,
			Pos:    x.fset.Position(f.Pos()),
		})
	}

	return fields
}

// typeToString converts AST type expression to string
// Only named types can hold raw field bits
func typeToString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		// Simple type: uint16, bool, RawKind
		return t.Name

	case *ast.SelectorExpr:
		// Qualified type: pkg.Type
		if pkg, ok := t.X.(*ast.Ident); ok {
			return pkg.Name + "." + t.Sel.Name
		}
		return "unknown"

	default:
		return "unknown"
	}
}
