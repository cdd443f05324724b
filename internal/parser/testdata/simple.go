package testdata

// @bitfield storage=uint16 name=Header
type headerFields struct {
	Version uint8  `bits:"12..16,ro"`
	Length  uint16 `bits:"0..11"`
	Ready   bool   `bits:"11"`
}

// No annotation - should be skipped
type IgnoredType struct {
	Field uint32 `bits:"0..4"`
}

// RawKind is a named raw type
type RawKind uint8

type Alias = RawKind
