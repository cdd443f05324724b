package parser

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// TypeAnnotation holds a parsed @bitfield annotation
type TypeAnnotation struct {
	Name         string // Generated storage type name (empty = derive from struct name)
	Storage      string // Storage word type: uint8 ... uint128, uint, uintptr
	Debug        bool   // Generate a String method
	AllowOverlap bool   // Fields may share bits
}

// DefaultStorage is used when the annotation does not name a storage type.
const DefaultStorage = "uint32"

var storageTypes = map[string]bool{
	"uint8":   true,
	"uint16":  true,
	"uint32":  true,
	"uint64":  true,
	"uint128": true,
	"uint":    true,
	"uintptr": true,
}

var annotationRe = regexp.MustCompile(`^@bitfield(?:\s+(.*))?$`)

// ParseAnnotation parses @bitfield annotation from comment text
//
// Expected format:
//
//	// @bitfield
//	// @bitfield storage=uint16
//	// @bitfield storage=uint16 name=Header debug
//	// @bitfield storage=uint64 overlap=allow
//
// Params are space-separated key=value pairs or bare flags.
func ParseAnnotation(comment string) (*TypeAnnotation, error) {
	matches := annotationRe.FindStringSubmatch(strings.TrimSpace(comment))
	if matches == nil {
		return nil, errors.New("no @bitfield annotation found")
	}

	anno := &TypeAnnotation{Storage: DefaultStorage}
	if matches[1] == "" {
		return anno, nil
	}

	for _, param := range strings.Fields(matches[1]) {
		key, value, hasValue := strings.Cut(param, "=")
		if hasValue && value == "" {
			return nil, errors.Errorf("%s= requires a value", key)
		}

		switch key {
		case "storage":
			if !storageTypes[value] {
				return nil, errors.Errorf("storage must be an unsigned integer type, got: %s", value)
			}
			anno.Storage = value

		case "name":
			if !isIdent(value) {
				return nil, errors.Errorf("invalid name: %s", value)
			}
			anno.Name = value

		case "debug":
			if hasValue {
				return nil, errors.Errorf("debug takes no value, got: %s", value)
			}
			anno.Debug = true

		case "overlap":
			if value != "allow" && value != "deny" {
				return nil, errors.Errorf("overlap must be 'allow' or 'deny', got: %s", value)
			}
			anno.AllowOverlap = value == "allow"

		default:
			return nil, errors.Errorf("unknown parameter: %s", key)
		}
	}

	return anno, nil
}

// FindAnnotation searches comment lines for @bitfield annotation.
// Returns the annotation and true if found, or the parse error of a
// malformed annotation.
func FindAnnotation(comments []string) (*TypeAnnotation, bool, error) {
	for _, comment := range comments {
		if !strings.HasPrefix(comment, "@bitfield") {
			continue
		}
		anno, err := ParseAnnotation(comment)
		if err != nil {
			return nil, true, err
		}
		return anno, true, nil
	}
	return nil, false, nil
}

// CleanComment removes comment markers from a line
// "// @bitfield storage=uint16" → "@bitfield storage=uint16"
// "/* @bitfield storage=uint16 */" → "@bitfield storage=uint16"
func CleanComment(line string) string {
	line = strings.TrimSpace(line)

	// Remove // prefix
	if strings.HasPrefix(line, "//") {
		line = strings.TrimPrefix(line, "//")
		line = strings.TrimSpace(line)
		return line
	}

	// Remove /* */ wrapper
	if strings.HasPrefix(line, "/*") && strings.HasSuffix(line, "*/") {
		line = strings.TrimPrefix(line, "/*")
		line = strings.TrimSuffix(line, "*/")
		line = strings.TrimSpace(line)
		return line
	}

	return line
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func isIdent(s string) bool {
	return identRe.MatchString(s)
}

// isTypeName accepts an identifier optionally qualified by a package name.
func isTypeName(s string) bool {
	pkg, name, qualified := strings.Cut(s, ".")
	if !qualified {
		return isIdent(s)
	}
	return isIdent(pkg) && isIdent(name)
}
