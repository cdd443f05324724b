package parser

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/alexhholmes/bitfield/field"
)

// OpenEnd marks a range that runs to the top of the storage word ("4..").
const OpenEnd = -1

// Conversion is one side of a field's conversion: the tier and the visible
// Go type it converts to or from. Type is empty for the identity tier.
type Conversion struct {
	Tier field.Tier
	Type string
}

// FieldTag is a parsed bits struct tag
type FieldTag struct {
	Start  int  // First bit
	End    int  // One past the last bit; OpenEnd if it runs to the top of the word
	Single bool // Declared as a single bit position ("7")

	Access field.Access
	Get    Conversion
	Set    Conversion
	GetFn  string // Hook applied after reads (optional)
	SetFn  string // Hook applied before writes (optional)
}

// ParseTag parses bits struct tags
//
// Semantics:
//   - "N"      : Single bit N (bool fields must use this form)
//   - "A..B"   : Bits A to B-1
//   - "A..=B"  : Bits A to B
//   - "A;L"    : L bits starting at A
//   - ".."     : The whole storage word
//   - "A.."    : Bit A to the top of the storage word
//   - "..B"    : Bits 0 to B-1
//   - "..=B"   : Bits 0 to B
//
// Options follow the range, comma separated:
//   - "ro", "read_only"      : Getters only
//   - "wo", "write_only"     : Setters only
//   - "get=T", "set=T"       : Infallible conversion to/from T
//   - "try_get=T", "try_set=T"         : Checked conversion, errors returned
//   - "unwrap_get=T", "unwrap_set=T"   : Checked conversion, errors panic
//   - "trusted_get=T", "trusted_set=T" : Unchecked conversion
//   - "both=T", "try_both=T", "unwrap_both=T", "trusted_both=T" : Same tier both ways
//   - "try=T", "unwrap=T", "trusted=T" : That tier for reads, infallible writes
//   - "get_fn=f", "set_fn=f" : Hooks run after reads / before writes
//
// Examples:
//
//	"15"                      → Bit 15
//	"0..4,ro"                 → Bits 0-3, read only
//	"4..=7,try_get=Kind"      → Bits 4-7, reads return (Kind, error)
//	"8;4,try=NonZero"         → Bits 8-11, checked reads, infallible writes of NonZero
func ParseTag(tag string) (*FieldTag, error) {
	if tag == "" {
		return nil, errors.New("empty bits tag")
	}

	parts := strings.Split(tag, ",")

	f, err := parseRange(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, err
	}

	for _, part := range parts[1:] {
		if err := f.applyOption(strings.TrimSpace(part)); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func parseRange(s string) (*FieldTag, error) {
	f := &FieldTag{}

	// Start and length: "7;5"
	if start, length, ok := strings.Cut(s, ";"); ok {
		a, err := parseBit(start)
		if err != nil {
			return nil, err
		}
		n, err := parseBit(length)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, errors.Errorf("zero-length range: %s", s)
		}
		f.Start, f.End = a, a+n
		return f, nil
	}

	start, end, isRange := strings.Cut(s, "..")
	if !isRange {
		// Single bit: "15"
		pos, err := parseBit(s)
		if err != nil {
			return nil, err
		}
		f.Start, f.End, f.Single = pos, pos+1, true
		return f, nil
	}

	if start == "" {
		f.Start = 0
	} else {
		a, err := parseBit(start)
		if err != nil {
			return nil, err
		}
		f.Start = a
	}

	inclusive := strings.HasPrefix(end, "=")
	end = strings.TrimPrefix(end, "=")
	if end == "" {
		if inclusive {
			return nil, errors.Errorf("inclusive range needs an end: %s", s)
		}
		f.End = OpenEnd
		return f, nil
	}

	b, err := parseBit(end)
	if err != nil {
		return nil, err
	}
	if inclusive {
		b++
	}
	if b <= f.Start {
		return nil, errors.Errorf("empty range: %s", s)
	}
	f.End = b
	return f, nil
}

func parseBit(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, errors.Errorf("invalid bit position: %q", s)
	}
	return n, nil
}

// conversionKeys maps a tag key to the get and set tiers it declares.
// A side the key does not touch is marked with noTier.
var conversionKeys = map[string][2]field.Tier{
	"get":          {field.Infallible, noTier},
	"set":          {noTier, field.Infallible},
	"both":         {field.Infallible, field.Infallible},
	"try_get":      {field.Checked, noTier},
	"try_set":      {noTier, field.Checked},
	"try_both":     {field.Checked, field.Checked},
	"try":          {field.Checked, field.Infallible},
	"unwrap_get":   {field.Unwrap, noTier},
	"unwrap_set":   {noTier, field.Unwrap},
	"unwrap_both":  {field.Unwrap, field.Unwrap},
	"unwrap":       {field.Unwrap, field.Infallible},
	"trusted_get":  {field.Trusted, noTier},
	"trusted_set":  {noTier, field.Trusted},
	"trusted_both": {field.Trusted, field.Trusted},
	"trusted":      {field.Trusted, field.Infallible},
}

const noTier field.Tier = 255

func (f *FieldTag) applyOption(opt string) error {
	switch opt {
	case "":
		return errors.New("empty option")
	case "ro", "read_only":
		return f.setAccess(field.ReadOnly, opt)
	case "wo", "write_only":
		return f.setAccess(field.WriteOnly, opt)
	}

	key, value, ok := strings.Cut(opt, "=")
	if !ok {
		return errors.Errorf("unknown option: %s", opt)
	}
	if value == "" {
		return errors.Errorf("%s= requires a value", key)
	}

	switch key {
	case "get_fn":
		if f.GetFn != "" {
			return errors.New("get_fn given twice")
		}
		if !isTypeName(value) {
			return errors.Errorf("invalid function name: %s", value)
		}
		f.GetFn = value
		return nil
	case "set_fn":
		if f.SetFn != "" {
			return errors.New("set_fn given twice")
		}
		if !isTypeName(value) {
			return errors.Errorf("invalid function name: %s", value)
		}
		f.SetFn = value
		return nil
	}

	tiers, ok := conversionKeys[key]
	if !ok {
		return errors.Errorf("unknown option: %s", key)
	}
	if !isTypeName(value) {
		return errors.Errorf("invalid type name: %s", value)
	}
	if tiers[0] != noTier {
		if f.Get.Tier != field.Identity {
			return errors.Errorf("%s: get conversion already set", key)
		}
		f.Get = Conversion{Tier: tiers[0], Type: value}
	}
	if tiers[1] != noTier {
		if f.Set.Tier != field.Identity {
			return errors.Errorf("%s: set conversion already set", key)
		}
		f.Set = Conversion{Tier: tiers[1], Type: value}
	}
	return nil
}

func (f *FieldTag) setAccess(a field.Access, opt string) error {
	if f.Access != field.ReadWrite {
		return errors.Errorf("%s: access already %s", opt, f.Access)
	}
	f.Access = a
	return nil
}
