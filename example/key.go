package example

// @bitfield storage=uint128 name=Key debug
type keyFields struct {
	Low   uint64 `bits:"..64"`
	Seq   uint32 `bits:"64;32,both=Sequence"`
	Epoch int16  `bits:"96..112,unwrap_get=Epoch"`
	Kind  uint8  `bits:"112..116,try_both=PageKind"`
	Tomb  bool   `bits:"127"`
}
