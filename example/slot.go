package example

// @bitfield storage=uint64 name=Slot
type slotFields struct {
	Offset   uint16 `bits:"..16"`
	Length   uint16 `bits:"16..28,try_set=SlotLen"`
	Delta    int8   `bits:"28;8"`
	Checksum uint32 `bits:"36..60,wo"`
	Tag      uint8  `bits:"60..,trusted_both=Tag"`
}
