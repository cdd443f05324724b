package codegen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/alexhholmes/bitfield/field"
	"github.com/alexhholmes/bitfield/internal/analyzer"
)

// Generator generates accessor code for one analyzed storage word
type Generator struct {
	analyzed *analyzer.AnalyzedLayout
}

// NewGenerator creates a new code generator
func NewGenerator(analyzed *analyzer.AnalyzedLayout) *Generator {
	return &Generator{analyzed: analyzed}
}

// NeedsFmt reports whether the generated code calls fmt (debug String)
func (g *Generator) NeedsFmt() bool {
	if !g.analyzed.Debug {
		return false
	}
	for _, f := range g.analyzed.Fields {
		if f.Spec.Access.CanRead() {
			return true
		}
	}
	return false
}

// NeedsBits reports whether the generated code refers to package bits
func (g *Generator) NeedsBits() bool {
	return g.wide()
}

// wide reports whether the storage word is the 128-bit struct word.
func (g *Generator) wide() bool {
	return g.analyzed.Storage == "uint128"
}

// Generate returns the generated code for this type (without package header/imports)
func (g *Generator) Generate() (string, error) {
	if !g.analyzed.IsValid() {
		return "", errors.Errorf("%s: cannot generate invalid layout (%d errors)", g.analyzed.Source, len(g.analyzed.Errors))
	}

	var out strings.Builder

	out.WriteString(g.generateType())
	out.WriteString("\n")
	out.WriteString(g.generateVars())

	for _, f := range g.analyzed.Fields {
		out.WriteString("\n")
		if f.Spec.Access.CanRead() {
			out.WriteString(g.generateGetter(f))
		}
		if f.Spec.Access.CanWrite() {
			out.WriteString(g.generateSetters(f))
		}
	}

	if g.analyzed.Debug {
		out.WriteString("\n")
		out.WriteString(g.generateString())
	}

	return out.String(), nil
}

func (g *Generator) generateType() string {
	var code strings.Builder
	a := g.analyzed

	code.WriteString(fmt.Sprintf("// %s is the %d-bit storage word declared by %s.\n", a.TypeName, a.StorageWidth, a.Source))
	if g.wide() {
		code.WriteString(fmt.Sprintf("type %s bits.Uint128\n", a.TypeName))
	} else {
		code.WriteString(fmt.Sprintf("type %s %s\n", a.TypeName, a.Storage))
	}

	return code.String()
}

// generateVars declares the package-level accessors: one region per field,
// then a reader and a writer as its access allows.
func (g *Generator) generateVars() string {
	var code strings.Builder

	code.WriteString("var (\n")
	for _, f := range g.analyzed.Fields {
		code.WriteString(fmt.Sprintf("\t%s = %s\n", g.regionVar(f), g.defineExpr(f)))
		if f.Spec.Access.CanRead() {
			code.WriteString(fmt.Sprintf("\t%s = %s\n", g.readerVar(f), g.readerExpr(f)))
		}
		if f.Spec.Access.CanWrite() {
			code.WriteString(fmt.Sprintf("\t%s = %s\n", g.writerVar(f), g.writerExpr(f)))
		}
	}
	code.WriteString(")\n")

	return code.String()
}

func (g *Generator) regionVar(f analyzer.Field) string {
	return analyzer.RegionVar(g.analyzed.TypeName, f.Spec.Name)
}

func (g *Generator) readerVar(f analyzer.Field) string { return g.regionVar(f) + "Get" }
func (g *Generator) writerVar(f analyzer.Field) string { return g.regionVar(f) + "Set" }

// word is the storage type the field package operates on.
func (g *Generator) word() string {
	if g.wide() {
		return "bits.Uint128"
	}
	return g.analyzed.TypeName
}

// raw is the type the region extracts: bool for flags.
func raw(f analyzer.Field) string {
	if f.Spec.Flag {
		return "bool"
	}
	return f.Raw
}

func (g *Generator) defineExpr(f analyzer.Field) string {
	s := f.Spec

	var call string
	switch {
	case s.Flag && g.wide():
		call = fmt.Sprintf("field.MustDefineFlag128(%q, %d", s.Name, s.Start)
	case s.Flag:
		call = fmt.Sprintf("field.MustDefineFlag[%s](%q, %d", g.word(), s.Name, s.Start)
	case g.wide():
		call = fmt.Sprintf("field.MustDefine128[%s](%q, %d, %d", f.Raw, s.Name, s.Start, s.End)
	default:
		call = fmt.Sprintf("field.MustDefine[%s, %s](%q, %d, %d", g.word(), f.Raw, s.Name, s.Start, s.End)
	}

	if s.Access != field.ReadWrite {
		call += ", field.WithAccess(" + accessExpr(s.Access) + ")"
	}
	if s.Mode != (field.Mode{}) {
		call += fmt.Sprintf(", field.WithMode(field.Mode{Get: %s, Set: %s})", tierExpr(s.Mode.Get), tierExpr(s.Mode.Set))
	}
	return call + ")"
}

func (g *Generator) readerExpr(f analyzer.Field) string {
	r, gt := raw(f), f.Getter()

	var ctor, conv string
	switch f.Get.Tier {
	case field.Identity:
		ctor, conv = "MustReader", fmt.Sprintf("field.GetRaw[%s]()", r)
	case field.Infallible:
		ctor, conv = "MustReader", fmt.Sprintf("field.GetInto[%s, %s]()", gt, r)
	case field.Checked:
		ctor, conv = "MustTryReader", fmt.Sprintf("field.TryGetInto[%s, %s]()", gt, r)
	case field.Unwrap:
		ctor, conv = "MustReader", fmt.Sprintf("field.UnwrapGetInto[%s, %s]()", gt, r)
	case field.Trusted:
		ctor, conv = "MustTrustedReader", fmt.Sprintf("field.TrustedGetInto[%s, %s]()", gt, r)
	}

	expr := fmt.Sprintf("field.%s[%s, %s, %s](%s, %s)", ctor, g.word(), r, gt, g.regionVar(f), conv)
	if f.GetFn != "" {
		expr += ".OnGet(" + f.GetFn + ")"
	}
	return expr
}

func (g *Generator) writerExpr(f analyzer.Field) string {
	r, st := raw(f), f.Setter()

	var ctor, conv string
	switch f.Set.Tier {
	case field.Identity:
		ctor, conv = "MustWriter", fmt.Sprintf("field.SetRaw[%s]()", r)
	case field.Infallible:
		ctor, conv = "MustWriter", fmt.Sprintf("field.SetFrom[%s, %s]()", st, r)
	case field.Checked:
		ctor, conv = "MustTryWriter", fmt.Sprintf("field.TrySetFrom[%s, %s]()", st, r)
	case field.Unwrap:
		ctor, conv = "MustWriter", fmt.Sprintf("field.UnwrapSetFrom[%s, %s]()", st, r)
	case field.Trusted:
		ctor, conv = "MustTrustedWriter", fmt.Sprintf("field.TrustedSetFrom[%s, %s]()", st, r)
	}

	expr := fmt.Sprintf("field.%s[%s, %s, %s](%s, %s)", ctor, g.word(), r, st, g.regionVar(f), conv)
	if f.SetFn != "" {
		expr += ".OnSet(" + f.SetFn + ")"
	}
	return expr
}

// in converts a value of the generated type to the word the accessors take.
func (g *Generator) in(expr string) string {
	if g.wide() {
		return "bits.Uint128(" + expr + ")"
	}
	return expr
}

// out converts an accessor result back to the generated type.
func (g *Generator) out(expr string) string {
	if g.wide() {
		return g.analyzed.TypeName + "(" + expr + ")"
	}
	return expr
}

func describe(s field.Spec) string {
	if s.Width() == 1 {
		return fmt.Sprintf("bit %d", s.Start)
	}
	return fmt.Sprintf("bits [%d, %d)", s.Start, s.End)
}

func (g *Generator) generateGetter(f analyzer.Field) string {
	var code strings.Builder
	t := g.analyzed.TypeName
	name := analyzer.MethodName(f.Spec.Name)
	gt := f.Getter()
	getter := g.readerVar(f)

	switch f.Get.Tier {
	case field.Checked:
		code.WriteString(fmt.Sprintf("// %s returns %s as %s, or an error if they do not form a valid %s.\n", name, describe(f.Spec), gt, gt))
		code.WriteString(fmt.Sprintf("func (w %s) %s() (%s, error) {\n", t, name, gt))
		code.WriteString(fmt.Sprintf("\treturn %s.Get(%s)\n", getter, g.in("w")))
	case field.Trusted:
		code.WriteString(fmt.Sprintf("// %sUnchecked returns %s as %s without validating them.\n", name, describe(f.Spec), gt))
		code.WriteString(fmt.Sprintf("func (w %s) %sUnchecked() %s {\n", t, name, gt))
		code.WriteString(fmt.Sprintf("\treturn %s.GetUnchecked(%s)\n", getter, g.in("w")))
	default:
		code.WriteString(fmt.Sprintf("// %s returns %s.\n", name, describe(f.Spec)))
		code.WriteString(fmt.Sprintf("func (w %s) %s() %s {\n", t, name, gt))
		code.WriteString(fmt.Sprintf("\treturn %s.Get(%s)\n", getter, g.in("w")))
	}
	code.WriteString("}\n\n")

	return code.String()
}

func (g *Generator) generateSetters(f analyzer.Field) string {
	var code strings.Builder
	t := g.analyzed.TypeName
	name := analyzer.MethodName(f.Spec.Name)
	st := f.Setter()
	setter := g.writerVar(f)

	switch f.Set.Tier {
	case field.Checked:
		// With
		code.WriteString(fmt.Sprintf("// With%s returns w with %s set to v, or w and an error if v does not convert.\n", name, describe(f.Spec)))
		code.WriteString(fmt.Sprintf("func (w %s) With%s(v %s) (%s, error) {\n", t, name, st, t))
		if g.wide() {
			code.WriteString(fmt.Sprintf("\tnext, err := %s.With(%s, v)\n", setter, g.in("w")))
			code.WriteString(fmt.Sprintf("\treturn %s, err\n", g.out("next")))
		} else {
			code.WriteString(fmt.Sprintf("\treturn %s.With(w, v)\n", setter))
		}
		code.WriteString("}\n\n")

		// Set
		code.WriteString(fmt.Sprintf("// Set%s stores v into %s. On error w is left untouched.\n", name, describe(f.Spec)))
		code.WriteString(fmt.Sprintf("func (w *%s) Set%s(v %s) error {\n", t, name, st))
		if g.wide() {
			code.WriteString(fmt.Sprintf("\tnext, err := w.With%s(v)\n", name))
			code.WriteString("\tif err != nil {\n\t\treturn err\n\t}\n")
			code.WriteString("\t*w = next\n")
			code.WriteString("\treturn nil\n")
		} else {
			code.WriteString(fmt.Sprintf("\treturn %s.Set(w, v)\n", setter))
		}
		code.WriteString("}\n\n")

	case field.Trusted:
		code.WriteString(fmt.Sprintf("// With%sUnchecked returns w with %s set to v, trusting v to convert.\n", name, describe(f.Spec)))
		code.WriteString(fmt.Sprintf("func (w %s) With%sUnchecked(v %s) %s {\n", t, name, st, t))
		code.WriteString(fmt.Sprintf("\treturn %s\n", g.out(fmt.Sprintf("%s.WithUnchecked(%s, v)", setter, g.in("w")))))
		code.WriteString("}\n\n")

		code.WriteString(fmt.Sprintf("// Set%sUnchecked stores v into %s without validating it.\n", name, describe(f.Spec)))
		code.WriteString(fmt.Sprintf("func (w *%s) Set%sUnchecked(v %s) {\n", t, name, st))
		if g.wide() {
			code.WriteString(fmt.Sprintf("\t*w = w.With%sUnchecked(v)\n", name))
		} else {
			code.WriteString(fmt.Sprintf("\t%s.SetUnchecked(w, v)\n", setter))
		}
		code.WriteString("}\n\n")

	default:
		code.WriteString(fmt.Sprintf("// With%s returns w with %s set to v.\n", name, describe(f.Spec)))
		code.WriteString(fmt.Sprintf("func (w %s) With%s(v %s) %s {\n", t, name, st, t))
		code.WriteString(fmt.Sprintf("\treturn %s\n", g.out(fmt.Sprintf("%s.With(%s, v)", setter, g.in("w")))))
		code.WriteString("}\n\n")

		code.WriteString(fmt.Sprintf("// Set%s stores v into %s.\n", name, describe(f.Spec)))
		code.WriteString(fmt.Sprintf("func (w *%s) Set%s(v %s) {\n", t, name, st))
		if g.wide() {
			code.WriteString(fmt.Sprintf("\t*w = w.With%s(v)\n", name))
		} else {
			code.WriteString(fmt.Sprintf("\t%s.Set(w, v)\n", setter))
		}
		code.WriteString("}\n\n")
	}

	return code.String()
}

// generateString prints the raw bits of every readable field.
func (g *Generator) generateString() string {
	var code strings.Builder
	t := g.analyzed.TypeName

	var names, args []string
	for _, f := range g.analyzed.Fields {
		if !f.Spec.Access.CanRead() {
			continue
		}
		names = append(names, f.Spec.Name+": %v")
		args = append(args, fmt.Sprintf("%s.Extract(%s)", g.regionVar(f), g.in("w")))
	}

	code.WriteString(fmt.Sprintf("func (w %s) String() string {\n", t))
	if len(args) == 0 {
		code.WriteString(fmt.Sprintf("\treturn %q\n", t+"{}"))
	} else {
		code.WriteString(fmt.Sprintf("\treturn fmt.Sprintf(%q, %s)\n", t+"{"+strings.Join(names, ", ")+"}", strings.Join(args, ", ")))
	}
	code.WriteString("}\n")

	return code.String()
}

func accessExpr(a field.Access) string {
	switch a {
	case field.ReadOnly:
		return "field.ReadOnly"
	case field.WriteOnly:
		return "field.WriteOnly"
	default:
		return "field.ReadWrite"
	}
}

func tierExpr(t field.Tier) string {
	name := t.String()
	return "field." + upperFirst(name)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
