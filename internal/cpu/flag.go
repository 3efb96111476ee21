package cpu

// Flag is a bit mask selecting one of the four flags held in the
// upper nibble of the F register. The lower nibble is unused and
// is left untouched by every flag operation.
type Flag = uint8

const (
	// FlagZero is set when the result of an operation is zero.
	FlagZero Flag = 0x80
	// FlagSubtract is set when the last operation was a subtraction.
	FlagSubtract Flag = 0x40
	// FlagHalfCarry is set on a carry out of bit 3 (bit 11 for
	// 16-bit operations).
	FlagHalfCarry Flag = 0x20
	// FlagCarry is set on a carry out of bit 7 (bit 15 for 16-bit
	// operations), or a borrow.
	FlagCarry Flag = 0x10
)

// Flag returns true if the given flag is set.
func (r *Registers) Flag(flag Flag) bool {
	return r.F&flag != 0
}

// SetFlag sets the given flag.
func (r *Registers) SetFlag(flag Flag) {
	r.F |= flag
}

// ResetFlag clears the given flag.
func (r *Registers) ResetFlag(flag Flag) {
	r.F &^= flag
}

// SetFlagTo sets or clears the given flag.
func (r *Registers) SetFlagTo(flag Flag, value bool) {
	if value {
		r.SetFlag(flag)
	} else {
		r.ResetFlag(flag)
	}
}

// setFlags sets all four flags at once.
func (r *Registers) setFlags(zero, subtract, halfCarry, carry bool) {
	r.SetFlagTo(FlagZero, zero)
	r.SetFlagTo(FlagSubtract, subtract)
	r.SetFlagTo(FlagHalfCarry, halfCarry)
	r.SetFlagTo(FlagCarry, carry)
}

// carry returns the carry flag as 0 or 1, for use in ADC, SBC and
// the rotates through carry.
func (r *Registers) carry() uint8 {
	return r.F & FlagCarry >> 4
}
