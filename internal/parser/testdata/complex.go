package testdata

type (
	// @bitfield storage=uint64 debug overlap=allow
	Instruction struct {
		Whole   uint64 `bits:".."`
		Opcode  uint8  `bits:"56..,try=Opcode"`
		Imm     int32  `bits:"0;24,get_fn=clampImm"`
		Reg     uint8  `bits:"24..=31,unwrap_both=Register"`
		Flags   uint8  `bits:"32..40,trusted_get=FlagSet,wo"`
		Ignored string
	}
)
