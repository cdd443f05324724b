package example

//go:generate go run github.com/alexhholmes/bitfield/cmd/bitgen generate page.go slot.go key.go

// @bitfield storage=uint32 name=PageHeader debug
type pageHeaderFields struct {
	Count  uint16 `bits:"..12,unwrap_set=SlotCount"`
	Free   uint16 `bits:"12;10,set_fn=alignFree"`
	Pinned bool   `bits:"22,ro"`
	Dirty  bool   `bits:"23"`
	Level  uint8  `bits:"24..28"`
	Kind   uint8  `bits:"28..,try=PageKind"`
}

// @bitfield storage=uint8 name=Flags overlap=allow
type flagFields struct {
	All  uint8 `bits:".."`
	Low  uint8 `bits:"..4"`
	High int8  `bits:"4.."`
	Top  bool  `bits:"7"`
}

// alignFree rounds free space down to the 8-byte allocation unit.
func alignFree(v uint16) uint16 {
	return v &^ 7
}
