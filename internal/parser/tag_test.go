package parser

import (
	"testing"

	"github.com/alexhholmes/bitfield/field"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag        string
		wantStart  int
		wantEnd    int
		wantSingle bool
		wantErr    bool
	}{
		// Single bits
		{"0", 0, 1, true, false},
		{"15", 15, 16, true, false},
		{" 7 ", 7, 8, true, false},

		// Exclusive and inclusive ranges
		{"0..4", 0, 4, false, false},
		{"4..8", 4, 8, false, false},
		{"4..=7", 4, 8, false, false},
		{"0..=0", 0, 1, false, false},

		// Start and length
		{"8;4", 8, 12, false, false},
		{"0;64", 0, 64, false, false},

		// Open ends
		{"..", 0, OpenEnd, false, false},
		{"12..", 12, OpenEnd, false, false},
		{"..6", 0, 6, false, false},
		{"..=6", 0, 7, false, false},

		// Error cases
		{"", 0, 0, false, true},       // empty tag
		{"abc", 0, 0, false, true},    // not a bit
		{"-1", 0, 0, false, true},     // negative bit
		{"4..4", 0, 0, false, true},   // empty range
		{"8..4", 0, 0, false, true},   // reversed range
		{"4;0", 0, 0, false, true},    // zero length
		{"4;x", 0, 0, false, true},    // bad length
		{"4..=", 0, 0, false, true},   // inclusive needs an end
		{"a..4", 0, 0, false, true},   // bad start
		{"0..4,", 0, 0, false, true},  // empty option
		{"0..4,rw", 0, 0, false, true}, // unknown option
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseTag(tt.tag)

			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseTag(%q) expected error, got nil", tt.tag)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseTag(%q) unexpected error: %v", tt.tag, err)
			}

			if got.Start != tt.wantStart {
				t.Errorf("ParseTag(%q).Start = %d, want %d", tt.tag, got.Start, tt.wantStart)
			}
			if got.End != tt.wantEnd {
				t.Errorf("ParseTag(%q).End = %d, want %d", tt.tag, got.End, tt.wantEnd)
			}
			if got.Single != tt.wantSingle {
				t.Errorf("ParseTag(%q).Single = %v, want %v", tt.tag, got.Single, tt.wantSingle)
			}
			if got.Access != field.ReadWrite || got.Get.Tier != field.Identity || got.Set.Tier != field.Identity {
				t.Errorf("ParseTag(%q) options = %+v, want defaults", tt.tag, got)
			}
		})
	}
}

func TestParseTagOptions(t *testing.T) {
	tests := []struct {
		tag        string
		wantAccess field.Access
		wantGet    Conversion
		wantSet    Conversion
		wantGetFn  string
		wantSetFn  string
	}{
		{"0..4,ro", field.ReadOnly, Conversion{}, Conversion{}, "", ""},
		{"0..4,read_only", field.ReadOnly, Conversion{}, Conversion{}, "", ""},
		{"0..4,wo", field.WriteOnly, Conversion{}, Conversion{}, "", ""},
		{"0..4,write_only", field.WriteOnly, Conversion{}, Conversion{}, "", ""},

		{"0..4,get=Kind", field.ReadWrite, Conversion{field.Infallible, "Kind"}, Conversion{}, "", ""},
		{"0..4,set=Kind", field.ReadWrite, Conversion{}, Conversion{field.Infallible, "Kind"}, "", ""},
		{"0..4,both=Kind", field.ReadWrite, Conversion{field.Infallible, "Kind"}, Conversion{field.Infallible, "Kind"}, "", ""},

		{"0..4,try_get=Kind", field.ReadWrite, Conversion{field.Checked, "Kind"}, Conversion{}, "", ""},
		{"0..4,try_set=Kind", field.ReadWrite, Conversion{}, Conversion{field.Checked, "Kind"}, "", ""},
		{"0..4,try_both=Kind", field.ReadWrite, Conversion{field.Checked, "Kind"}, Conversion{field.Checked, "Kind"}, "", ""},
		{"0..4,try=Kind", field.ReadWrite, Conversion{field.Checked, "Kind"}, Conversion{field.Infallible, "Kind"}, "", ""},

		{"0..4,unwrap_get=Kind", field.ReadWrite, Conversion{field.Unwrap, "Kind"}, Conversion{}, "", ""},
		{"0..4,unwrap_set=Kind", field.ReadWrite, Conversion{}, Conversion{field.Unwrap, "Kind"}, "", ""},
		{"0..4,unwrap_both=Kind", field.ReadWrite, Conversion{field.Unwrap, "Kind"}, Conversion{field.Unwrap, "Kind"}, "", ""},
		{"0..4,unwrap=Kind", field.ReadWrite, Conversion{field.Unwrap, "Kind"}, Conversion{field.Infallible, "Kind"}, "", ""},

		{"0..4,trusted_get=Kind", field.ReadWrite, Conversion{field.Trusted, "Kind"}, Conversion{}, "", ""},
		{"0..4,trusted_set=Kind", field.ReadWrite, Conversion{}, Conversion{field.Trusted, "Kind"}, "", ""},
		{"0..4,trusted_both=Kind", field.ReadWrite, Conversion{field.Trusted, "Kind"}, Conversion{field.Trusted, "Kind"}, "", ""},
		{"0..4,trusted=Kind", field.ReadWrite, Conversion{field.Trusted, "Kind"}, Conversion{field.Infallible, "Kind"}, "", ""},

		// Mixed tiers and qualified types
		{"0..4,try_get=Kind,trusted_set=Kind", field.ReadWrite, Conversion{field.Checked, "Kind"}, Conversion{field.Trusted, "Kind"}, "", ""},
		{"0..4,get=pkg.Kind", field.ReadWrite, Conversion{field.Infallible, "pkg.Kind"}, Conversion{}, "", ""},
		{"0..4, ro , get=Kind", field.ReadOnly, Conversion{field.Infallible, "Kind"}, Conversion{}, "", ""},

		// Hooks
		{"0..4,get_fn=clamp", field.ReadWrite, Conversion{}, Conversion{}, "clamp", ""},
		{"0..4,set_fn=clamp,get_fn=mask", field.ReadWrite, Conversion{}, Conversion{}, "mask", "clamp"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseTag(tt.tag)
			if err != nil {
				t.Fatalf("ParseTag(%q) unexpected error: %v", tt.tag, err)
			}

			if got.Access != tt.wantAccess {
				t.Errorf("ParseTag(%q).Access = %v, want %v", tt.tag, got.Access, tt.wantAccess)
			}
			if got.Get != tt.wantGet {
				t.Errorf("ParseTag(%q).Get = %+v, want %+v", tt.tag, got.Get, tt.wantGet)
			}
			if got.Set != tt.wantSet {
				t.Errorf("ParseTag(%q).Set = %+v, want %+v", tt.tag, got.Set, tt.wantSet)
			}
			if got.GetFn != tt.wantGetFn {
				t.Errorf("ParseTag(%q).GetFn = %q, want %q", tt.tag, got.GetFn, tt.wantGetFn)
			}
			if got.SetFn != tt.wantSetFn {
				t.Errorf("ParseTag(%q).SetFn = %q, want %q", tt.tag, got.SetFn, tt.wantSetFn)
			}
		})
	}
}

func TestParseTagOptionErrors(t *testing.T) {
	tags := []string{
		"0..4,ro,wo",                  // access twice
		"0..4,ro,ro",                  // access twice
		"0..4,get=",                   // missing type
		"0..4,get=1Kind",              // invalid type
		"0..4,get=a.b.c",              // too many qualifiers
		"0..4,get=Kind,try_get=Kind",  // get given twice
		"0..4,both=Kind,set=Kind",     // set given twice
		"0..4,try=Kind,trusted=Kind",  // both sides twice
		"0..4,get_fn=f,get_fn=g",      // hook twice
		"0..4,set_fn=f,set_fn=g",      // hook twice
		"0..4,get_fn=not-a-func",      // invalid hook
		"0..4,checked=Kind",           // unknown key
		"0..4,endian=big",             // unknown key
	}

	for _, tag := range tags {
		t.Run(tag, func(t *testing.T) {
			if _, err := ParseTag(tag); err == nil {
				t.Errorf("ParseTag(%q) expected error, got nil", tag)
			}
		})
	}
}
