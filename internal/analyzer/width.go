package analyzer

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/alexhholmes/bitfield/bits"
)

// WidthOf returns the width in bits of a built-in raw type and whether it
// is signed. bool is a one-bit flag. int, uint and uintptr take the width of
// the host, as the generated code will on the same platform.
func WidthOf(goType string) (width int, signed bool, err error) {
	switch goType {
	case "bool":
		return 1, false, nil
	case "uint8", "byte":
		return 8, false, nil
	case "int8":
		return 8, true, nil
	case "uint16":
		return 16, false, nil
	case "int16":
		return 16, true, nil
	case "uint32":
		return 32, false, nil
	case "int32", "rune":
		return 32, true, nil
	case "uint64":
		return 64, false, nil
	case "int64":
		return 64, true, nil
	case "uint", "uintptr":
		return strconv.IntSize, false, nil
	case "int":
		return strconv.IntSize, true, nil
	}

	return 0, false, errors.Errorf("unknown type: %s (use type registry for named types)", goType)
}

// StorageWidth returns the width in bits of a storage word type.
func StorageWidth(storage string) (int, error) {
	if storage == "uint128" {
		return bits.Uint128Width, nil
	}
	width, signed, err := WidthOf(storage)
	if err != nil || signed || storage == "bool" {
		return 0, errors.Errorf("invalid storage type: %s", storage)
	}
	return width, nil
}

// TypeRegistry tracks named raw types for field analysis
type TypeRegistry struct {
	types   map[string]int    // type name → width in bits
	aliases map[string]string // named type → underlying type
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		types:   make(map[string]int),
		aliases: make(map[string]string),
	}
}

// Register adds an opaque raw type with its width. Registered types are
// treated as unsigned.
func (r *TypeRegistry) Register(name string, width int) {
	r.types[name] = width
}

// RegisterAlias adds a named type mapping (e.g., type RawKind uint8)
func (r *TypeRegistry) RegisterAlias(alias, underlying string) {
	r.aliases[alias] = underlying
}

// RegisterNamed adds every named type of a parsed file.
func (r *TypeRegistry) RegisterNamed(named map[string]string) {
	for alias, underlying := range named {
		r.RegisterAlias(alias, underlying)
	}
}

// Lookup returns the width of a registered type
func (r *TypeRegistry) Lookup(name string) (int, bool) {
	width, ok := r.types[name]
	return width, ok
}

// ResolveType resolves named types to their underlying types
// Returns the original type if not an alias
func (r *TypeRegistry) ResolveType(goType string) string {
	seen := make(map[string]bool)
	for !seen[goType] {
		seen[goType] = true
		underlying, ok := r.aliases[goType]
		if !ok {
			break
		}
		goType = underlying
	}
	return goType
}

// WidthOf calculates the width using the registry for named types
func (r *TypeRegistry) WidthOf(goType string) (int, bool, error) {
	resolved := r.ResolveType(goType)

	width, signed, err := WidthOf(resolved)
	if err == nil {
		return width, signed, nil
	}

	if width, ok := r.Lookup(resolved); ok {
		return width, false, nil
	}

	return 0, false, errors.Errorf("unknown type: %s (not registered)", goType)
}
