package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
//
// The CPU core does not give these addresses any special
// meaning, they are only used by the host to seed the
// documented power-on values and by the debugger to name
// them.
type HardwareAddress = uint16

const (
	// P1 selects and reads the joypad keys.
	P1 HardwareAddress = 0xFF00
	// SB holds the byte to be transferred over the serial port.
	SB HardwareAddress = 0xFF01
	// SC controls the serial port.
	SC HardwareAddress = 0xFF02
	// DIV is incremented at a rate of 16384Hz.
	DIV HardwareAddress = 0xFF04
	// TIMA is incremented at the rate specified by TAC.
	TIMA HardwareAddress = 0xFF05
	// TMA is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC controls the timer.
	TAC HardwareAddress = 0xFF07
	// IF requests interrupts.
	//
	//  Bit 0: V-Blank  (INT 40h)
	//  Bit 1: LCD STAT (INT 48h)
	//  Bit 2: Timer    (INT 50h)
	//  Bit 3: Serial   (INT 58h)
	//  Bit 4: Joypad   (INT 60h)
	IF HardwareAddress = 0xFF0F

	NR10 HardwareAddress = 0xFF10
	NR11 HardwareAddress = 0xFF11
	NR12 HardwareAddress = 0xFF12
	NR13 HardwareAddress = 0xFF13
	NR14 HardwareAddress = 0xFF14
	NR21 HardwareAddress = 0xFF16
	NR22 HardwareAddress = 0xFF17
	NR23 HardwareAddress = 0xFF18
	NR24 HardwareAddress = 0xFF19
	NR30 HardwareAddress = 0xFF1A
	NR31 HardwareAddress = 0xFF1B
	NR32 HardwareAddress = 0xFF1C
	NR33 HardwareAddress = 0xFF1D
	NR34 HardwareAddress = 0xFF1E
	NR41 HardwareAddress = 0xFF20
	NR42 HardwareAddress = 0xFF21
	NR43 HardwareAddress = 0xFF22
	NR44 HardwareAddress = 0xFF23
	NR50 HardwareAddress = 0xFF24
	NR51 HardwareAddress = 0xFF25
	NR52 HardwareAddress = 0xFF26

	// LCDC controls the LCD.
	LCDC HardwareAddress = 0xFF40
	// STAT holds the LCD status.
	STAT HardwareAddress = 0xFF41
	SCY  HardwareAddress = 0xFF42
	SCX  HardwareAddress = 0xFF43
	// LY is the current scanline, 0x90 marks the start of v-blank.
	LY   HardwareAddress = 0xFF44
	LYC  HardwareAddress = 0xFF45
	DMA  HardwareAddress = 0xFF46
	BGP  HardwareAddress = 0xFF47
	OBP0 HardwareAddress = 0xFF48
	OBP1 HardwareAddress = 0xFF49
	WY   HardwareAddress = 0xFF4A
	WX   HardwareAddress = 0xFF4B
	// BDIS unmaps the boot ROM once written with a non-zero value.
	BDIS HardwareAddress = 0xFF50
	// IE enables interrupts.
	IE HardwareAddress = 0xFFFF
)

// PowerOnIO holds the values of the hardware registers after
// the DMG boot ROM has handed control to the cartridge.
var PowerOnIO = map[HardwareAddress]uint8{
	P1:   0xCF,
	SB:   0x00,
	SC:   0x7E,
	DIV:  0xAB,
	TIMA: 0x00,
	TMA:  0x00,
	TAC:  0xF8,
	IF:   0xE1,
	NR10: 0x80,
	NR11: 0xBF,
	NR12: 0xF3,
	NR13: 0xFF,
	NR14: 0xBF,
	NR21: 0x3F,
	NR22: 0x00,
	NR23: 0xFF,
	NR24: 0xBF,
	NR30: 0x7F,
	NR31: 0xFF,
	NR32: 0x9F,
	NR33: 0xFF,
	NR34: 0xBF,
	NR41: 0xFF,
	NR42: 0x00,
	NR43: 0x00,
	NR44: 0xBF,
	NR50: 0x77,
	NR51: 0xF3,
	NR52: 0xF1,
	LCDC: 0x91,
	STAT: 0x85,
	SCY:  0x00,
	SCX:  0x00,
	LY:   0x00,
	LYC:  0x00,
	DMA:  0xFF,
	BGP:  0xFC,
	OBP0: 0xFF,
	OBP1: 0xFF,
	WY:   0x00,
	WX:   0x00,
	BDIS: 0x01,
	IE:   0x00,
}

// AddressNames maps the hardware registers to their
// conventional names.
var AddressNames = map[HardwareAddress]string{
	P1: "P1", SB: "SB", SC: "SC", DIV: "DIV", TIMA: "TIMA", TMA: "TMA", TAC: "TAC", IF: "IF",
	NR10: "NR10", NR11: "NR11", NR12: "NR12", NR13: "NR13", NR14: "NR14",
	NR21: "NR21", NR22: "NR22", NR23: "NR23", NR24: "NR24",
	NR30: "NR30", NR31: "NR31", NR32: "NR32", NR33: "NR33", NR34: "NR34",
	NR41: "NR41", NR42: "NR42", NR43: "NR43", NR44: "NR44",
	NR50: "NR50", NR51: "NR51", NR52: "NR52",
	LCDC: "LCDC", STAT: "STAT", SCY: "SCY", SCX: "SCX", LY: "LY", LYC: "LYC",
	DMA: "DMA", BGP: "BGP", OBP0: "OBP0", OBP1: "OBP1", WY: "WY", WX: "WX",
	BDIS: "BDIS", IE: "IE",
}
