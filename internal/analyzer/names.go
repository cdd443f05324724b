package analyzer

import (
	"fmt"
	"unicode"

	"github.com/alexhholmes/bitfield/field"
)

// MethodName is the exported name generated methods use for a field.
func MethodName(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// RegionVar names the package-level region declared for a field of typeName.
func RegionVar(typeName, name string) string {
	if typeName == "" {
		return MethodName(name)
	}
	r := []rune(typeName)
	r[0] = unicode.ToLower(r[0])
	return string(r) + MethodName(name)
}

// Identifiers lists every identifier the generated code declares for f:
// its region, reader and writer vars and its methods.
func (a *AnalyzedLayout) Identifiers(f Field) []string {
	name := MethodName(f.Spec.Name)
	region := RegionVar(a.TypeName, f.Spec.Name)

	ids := []string{region}
	if f.Spec.Access.CanRead() {
		ids = append(ids, region+"Get")
		if f.Get.Tier == field.Trusted {
			ids = append(ids, name+"Unchecked")
		} else {
			ids = append(ids, name)
		}
	}
	if f.Spec.Access.CanWrite() {
		ids = append(ids, region+"Set")
		if f.Set.Tier == field.Trusted {
			ids = append(ids, "With"+name+"Unchecked", "Set"+name+"Unchecked")
		} else {
			ids = append(ids, "With"+name, "Set"+name)
		}
	}
	return ids
}

// reserved maps identifiers the storage type already declares to a description.
func (a *AnalyzedLayout) reserved() map[string]string {
	r := make(map[string]string)
	if a.Debug {
		r["String"] = "the debug String method"
	}
	if a.Storage == "uint128" {
		// The storage type is a defined type over bits.Uint128 and
		// inherits its fields.
		r["Lo"] = "the 128-bit word's Lo field"
		r["Hi"] = "the 128-bit word's Hi field"
	}
	return r
}

// checkNames reports fields whose generated identifiers clash with each
// other or with what the storage type already declares.
func checkNames(a *AnalyzedLayout) {
	reserved := a.reserved()
	seen := make(map[string]bool)
	owner := make(map[string]string)

	for _, f := range a.Fields {
		name := f.Spec.Name
		if seen[name] {
			a.Errors = append(a.Errors, "duplicate field: "+name)
			continue
		}
		seen[name] = true

		for _, id := range a.Identifiers(f) {
			if what, ok := reserved[id]; ok {
				a.Errors = append(a.Errors, fmt.Sprintf("field %s collides with %s", name, what))
				break
			}
			if other, ok := owner[id]; ok {
				a.Errors = append(a.Errors, fmt.Sprintf("field %s collides with field %s: both generate %s", name, other, id))
				break
			}
			owner[id] = name
		}
	}
}
