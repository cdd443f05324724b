package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/alexhholmes/bitfield/field"
	"github.com/alexhholmes/bitfield/internal/parser"
)

// Field is a parsed field resolved against its storage word
type Field struct {
	Spec   field.Spec
	Raw    string // Raw Go type as written
	Signed bool
	Get    parser.Conversion
	Set    parser.Conversion
	GetFn  string
	SetFn  string
	Source parser.Field
}

// Getter returns the type the field is read as.
func (f Field) Getter() string {
	if f.Get.Type != "" {
		return f.Get.Type
	}
	return f.Raw
}

// Setter returns the type the field is written from.
func (f Field) Setter() string {
	if f.Set.Type != "" {
		return f.Set.Type
	}
	return f.Raw
}

// AnalyzedLayout contains the validated fields of one storage word
type AnalyzedLayout struct {
	Source       string // Annotated struct name
	TypeName     string // Generated storage type name
	Storage      string // Storage word type
	StorageWidth int
	Debug        bool
	Fields       []Field
	Errors       []string // Validation errors
}

// Analyze performs field analysis on a parsed type
func Analyze(layout *parser.TypeLayout, registry *TypeRegistry) (*AnalyzedLayout, error) {
	if layout == nil {
		return nil, errors.New("layout is nil")
	}

	a := &AnalyzedLayout{
		Source:   layout.Name,
		TypeName: TypeName(layout),
		Storage:  layout.Anno.Storage,
		Debug:    layout.Anno.Debug,
	}

	width, err := StorageWidth(a.Storage)
	if err != nil {
		a.Errors = append(a.Errors, err.Error())
		return a, errors.Errorf("%s: layout has %d errors", a.Source, len(a.Errors))
	}
	a.StorageWidth = width

	// Phase 1: Resolve each field against the storage word
	for _, pf := range layout.Fields {
		f, err := resolveField(pf, width, registry)
		if err != nil {
			a.Errors = append(a.Errors, err.Error())
			continue
		}
		a.Fields = append(a.Fields, f)
	}

	// Phase 2: Names must produce distinct methods
	checkNames(a)

	// Phase 3: Detect collisions
	if !layout.Anno.AllowOverlap {
		detectCollisions(a)
	}

	if len(a.Errors) > 0 {
		return a, errors.Errorf("%s: layout has %d errors", a.Source, len(a.Errors))
	}
	return a, nil
}

// TypeName returns the generated storage type name for layout: the
// annotation's name, else the struct name without a trailing "Fields",
// else the struct name with "Bits" appended.
func TypeName(layout *parser.TypeLayout) string {
	if layout.Anno.Name != "" {
		return layout.Anno.Name
	}
	if name := strings.TrimSuffix(layout.Name, "Fields"); name != layout.Name && name != "" {
		return name
	}
	return layout.Name + "Bits"
}

func resolveField(pf parser.Field, storageWidth int, registry *TypeRegistry) (Field, error) {
	tag := pf.Tag
	f := Field{
		Raw:    pf.GoType,
		Get:    tag.Get,
		Set:    tag.Set,
		GetFn:  tag.GetFn,
		SetFn:  tag.SetFn,
		Source: pf,
	}

	end := tag.End
	if end == parser.OpenEnd {
		end = storageWidth
	}
	if tag.Start >= end {
		return f, errors.Errorf("%s: range [%d, %d) is empty", pf.Name, tag.Start, end)
	}

	f.Spec = field.Spec{
		Name:   pf.Name,
		Start:  uint(tag.Start),
		End:    uint(end),
		Flag:   pf.GoType == "bool",
		Access: tag.Access,
		Mode:   field.Mode{Get: tag.Get.Tier, Set: tag.Set.Tier},
	}

	rawWidth := 1
	if !f.Spec.Flag {
		if registry.ResolveType(pf.GoType) == "bool" {
			return f, errors.Errorf("%s: flags must be declared as bool, got %s", pf.Name, pf.GoType)
		}
		w, signed, err := registry.WidthOf(pf.GoType)
		if err != nil {
			return f, errors.Wrapf(err, "%s: cannot determine raw width", pf.Name)
		}
		rawWidth, f.Signed = w, signed
	} else if !tag.Single {
		return f, errors.Errorf("%s: bool fields must name a single bit, got [%d, %d)", pf.Name, tag.Start, end)
	}

	if err := f.Spec.Validate(uint(storageWidth), uint(rawWidth)); err != nil {
		return f, err
	}

	return f, nil
}

func detectCollisions(a *AnalyzedLayout) {
	sorted := make([]Field, len(a.Fields))
	copy(sorted, a.Fields)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Spec.Start < sorted[j].Spec.Start
	})

	// Check for overlapping ranges
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			r1, r2 := sorted[i].Spec, sorted[j].Spec
			if !r1.Overlaps(r2) {
				break // sorted by start, nothing later reaches back into r1
			}
			a.Errors = append(a.Errors,
				fmt.Sprintf("collision: %s [%d, %d) overlaps %s [%d, %d)",
					r1.Name, r1.Start, r1.End, r2.Name, r2.Start, r2.End))
		}
	}
}

// IsValid returns true if layout has no errors
func (a *AnalyzedLayout) IsValid() bool {
	return len(a.Errors) == 0
}
