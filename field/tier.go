package field

import "fmt"

// Tier is the fallibility contract of a conversion between a field's raw type
// and its visible type.
type Tier uint8

const (
	Identity   Tier = iota // no conversion
	Infallible             // total conversion
	Checked                // partial conversion, failure returned
	Unwrap                 // partial conversion, failure panics
	Trusted                // conversion without validation
)

var tierNames = [...]string{
	Identity:   "identity",
	Infallible: "infallible",
	Checked:    "checked",
	Unwrap:     "unwrap",
	Trusted:    "trusted",
}

func (t Tier) String() string {
	if int(t) < len(tierNames) {
		return tierNames[t]
	}
	return fmt.Sprintf("Tier(%d)", uint8(t))
}

// ParseTier parses the name returned by Tier.String.
func ParseTier(s string) (Tier, error) {
	for t, name := range tierNames {
		if name == s {
			return Tier(t), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

// Fallible reports whether conversions of this tier can fail.
func (t Tier) Fallible() bool {
	return t == Checked || t == Unwrap
}

// Mode pairs the read and write tiers of a field. The two are independent.
type Mode struct {
	Get Tier
	Set Tier
}

func (m Mode) String() string {
	return fmt.Sprintf("get=%s,set=%s", m.Get, m.Set)
}
