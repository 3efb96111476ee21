package cpu

// Primary opcodes, named after their mnemonic. Operand suffixes follow the
// usual notation: D8/D16 immediates, A8/A16 addresses, R8 relative offsets,
// S8 signed offsets and Mem for an indirect register operand.
const (
	OpNop       uint8 = 0x00 // NOP
	OpLdBCD16   uint8 = 0x01 // LD BC,d16
	OpLdMemBCA  uint8 = 0x02 // LD (BC),A
	OpIncBC     uint8 = 0x03 // INC BC
	OpIncB      uint8 = 0x04 // INC B
	OpDecB      uint8 = 0x05 // DEC B
	OpLdBD8     uint8 = 0x06 // LD B,d8
	OpRlca      uint8 = 0x07 // RLCA
	OpLdA16SP   uint8 = 0x08 // LD (a16),SP
	OpAddHLBC   uint8 = 0x09 // ADD HL,BC
	OpLdAMemBC  uint8 = 0x0A // LD A,(BC)
	OpDecBC     uint8 = 0x0B // DEC BC
	OpIncC      uint8 = 0x0C // INC C
	OpDecC      uint8 = 0x0D // DEC C
	OpLdCD8     uint8 = 0x0E // LD C,d8
	OpRrca      uint8 = 0x0F // RRCA
	OpStop      uint8 = 0x10 // STOP
	OpLdDED16   uint8 = 0x11 // LD DE,d16
	OpLdMemDEA  uint8 = 0x12 // LD (DE),A
	OpIncDE     uint8 = 0x13 // INC DE
	OpIncD      uint8 = 0x14 // INC D
	OpDecD      uint8 = 0x15 // DEC D
	OpLdDD8     uint8 = 0x16 // LD D,d8
	OpRla       uint8 = 0x17 // RLA
	OpJrR8      uint8 = 0x18 // JR r8
	OpAddHLDE   uint8 = 0x19 // ADD HL,DE
	OpLdAMemDE  uint8 = 0x1A // LD A,(DE)
	OpDecDE     uint8 = 0x1B // DEC DE
	OpIncE      uint8 = 0x1C // INC E
	OpDecE      uint8 = 0x1D // DEC E
	OpLdED8     uint8 = 0x1E // LD E,d8
	OpRra       uint8 = 0x1F // RRA
	OpJrNZR8    uint8 = 0x20 // JR NZ,r8
	OpLdHLD16   uint8 = 0x21 // LD HL,d16
	OpLdMemHLIA uint8 = 0x22 // LD (HL+),A
	OpIncHL     uint8 = 0x23 // INC HL
	OpIncH      uint8 = 0x24 // INC H
	OpDecH      uint8 = 0x25 // DEC H
	OpLdHD8     uint8 = 0x26 // LD H,d8
	OpDaa       uint8 = 0x27 // DAA
	OpJrZR8     uint8 = 0x28 // JR Z,r8
	OpAddHLHL   uint8 = 0x29 // ADD HL,HL
	OpLdAMemHLI uint8 = 0x2A // LD A,(HL+)
	OpDecHL     uint8 = 0x2B // DEC HL
	OpIncL      uint8 = 0x2C // INC L
	OpDecL      uint8 = 0x2D // DEC L
	OpLdLD8     uint8 = 0x2E // LD L,d8
	OpCpl       uint8 = 0x2F // CPL
	OpJrNCR8    uint8 = 0x30 // JR NC,r8
	OpLdSPD16   uint8 = 0x31 // LD SP,d16
	OpLdMemHLDA uint8 = 0x32 // LD (HL-),A
	OpIncSP     uint8 = 0x33 // INC SP
	OpIncMemHL  uint8 = 0x34 // INC (HL)
	OpDecMemHL  uint8 = 0x35 // DEC (HL)
	OpLdMemHLD8 uint8 = 0x36 // LD (HL),d8
	OpScf       uint8 = 0x37 // SCF
	OpJrCR8     uint8 = 0x38 // JR C,r8
	OpAddHLSP   uint8 = 0x39 // ADD HL,SP
	OpLdAMemHLD uint8 = 0x3A // LD A,(HL-)
	OpDecSP     uint8 = 0x3B // DEC SP
	OpIncA      uint8 = 0x3C // INC A
	OpDecA      uint8 = 0x3D // DEC A
	OpLdAD8     uint8 = 0x3E // LD A,d8
	OpCcf       uint8 = 0x3F // CCF
	OpLdBB      uint8 = 0x40 // LD B,B
	OpLdBC      uint8 = 0x41 // LD B,C
	OpLdBD      uint8 = 0x42 // LD B,D
	OpLdBE      uint8 = 0x43 // LD B,E
	OpLdBH      uint8 = 0x44 // LD B,H
	OpLdBL      uint8 = 0x45 // LD B,L
	OpLdBMemHL  uint8 = 0x46 // LD B,(HL)
	OpLdBA      uint8 = 0x47 // LD B,A
	OpLdCB      uint8 = 0x48 // LD C,B
	OpLdCC      uint8 = 0x49 // LD C,C
	OpLdCD      uint8 = 0x4A // LD C,D
	OpLdCE      uint8 = 0x4B // LD C,E
	OpLdCH      uint8 = 0x4C // LD C,H
	OpLdCL      uint8 = 0x4D // LD C,L
	OpLdCMemHL  uint8 = 0x4E // LD C,(HL)
	OpLdCA      uint8 = 0x4F // LD C,A
	OpLdDB      uint8 = 0x50 // LD D,B
	OpLdDC      uint8 = 0x51 // LD D,C
	OpLdDD      uint8 = 0x52 // LD D,D
	OpLdDE      uint8 = 0x53 // LD D,E
	OpLdDH      uint8 = 0x54 // LD D,H
	OpLdDL      uint8 = 0x55 // LD D,L
	OpLdDMemHL  uint8 = 0x56 // LD D,(HL)
	OpLdDA      uint8 = 0x57 // LD D,A
	OpLdEB      uint8 = 0x58 // LD E,B
	OpLdEC      uint8 = 0x59 // LD E,C
	OpLdED      uint8 = 0x5A // LD E,D
	OpLdEE      uint8 = 0x5B // LD E,E
	OpLdEH      uint8 = 0x5C // LD E,H
	OpLdEL      uint8 = 0x5D // LD E,L
	OpLdEMemHL  uint8 = 0x5E // LD E,(HL)
	OpLdEA      uint8 = 0x5F // LD E,A
	OpLdHB      uint8 = 0x60 // LD H,B
	OpLdHC      uint8 = 0x61 // LD H,C
	OpLdHD      uint8 = 0x62 // LD H,D
	OpLdHE      uint8 = 0x63 // LD H,E
	OpLdHH      uint8 = 0x64 // LD H,H
	OpLdHL      uint8 = 0x65 // LD H,L
	OpLdHMemHL  uint8 = 0x66 // LD H,(HL)
	OpLdHA      uint8 = 0x67 // LD H,A
	OpLdLB      uint8 = 0x68 // LD L,B
	OpLdLC      uint8 = 0x69 // LD L,C
	OpLdLD      uint8 = 0x6A // LD L,D
	OpLdLE      uint8 = 0x6B // LD L,E
	OpLdLH      uint8 = 0x6C // LD L,H
	OpLdLL      uint8 = 0x6D // LD L,L
	OpLdLMemHL  uint8 = 0x6E // LD L,(HL)
	OpLdLA      uint8 = 0x6F // LD L,A
	OpLdMemHLB  uint8 = 0x70 // LD (HL),B
	OpLdMemHLC  uint8 = 0x71 // LD (HL),C
	OpLdMemHLD  uint8 = 0x72 // LD (HL),D
	OpLdMemHLE  uint8 = 0x73 // LD (HL),E
	OpLdMemHLH  uint8 = 0x74 // LD (HL),H
	OpLdMemHLL  uint8 = 0x75 // LD (HL),L
	OpHalt      uint8 = 0x76 // HALT
	OpLdMemHLA  uint8 = 0x77 // LD (HL),A
	OpLdAB      uint8 = 0x78 // LD A,B
	OpLdAC      uint8 = 0x79 // LD A,C
	OpLdAD      uint8 = 0x7A // LD A,D
	OpLdAE      uint8 = 0x7B // LD A,E
	OpLdAH      uint8 = 0x7C // LD A,H
	OpLdAL      uint8 = 0x7D // LD A,L
	OpLdAMemHL  uint8 = 0x7E // LD A,(HL)
	OpLdAA      uint8 = 0x7F // LD A,A
	OpAddAB     uint8 = 0x80 // ADD A,B
	OpAddAC     uint8 = 0x81 // ADD A,C
	OpAddAD     uint8 = 0x82 // ADD A,D
	OpAddAE     uint8 = 0x83 // ADD A,E
	OpAddAH     uint8 = 0x84 // ADD A,H
	OpAddAL     uint8 = 0x85 // ADD A,L
	OpAddAMemHL uint8 = 0x86 // ADD A,(HL)
	OpAddAA     uint8 = 0x87 // ADD A,A
	OpAdcAB     uint8 = 0x88 // ADC A,B
	OpAdcAC     uint8 = 0x89 // ADC A,C
	OpAdcAD     uint8 = 0x8A // ADC A,D
	OpAdcAE     uint8 = 0x8B // ADC A,E
	OpAdcAH     uint8 = 0x8C // ADC A,H
	OpAdcAL     uint8 = 0x8D // ADC A,L
	OpAdcAMemHL uint8 = 0x8E // ADC A,(HL)
	OpAdcAA     uint8 = 0x8F // ADC A,A
	OpSubB      uint8 = 0x90 // SUB B
	OpSubC      uint8 = 0x91 // SUB C
	OpSubD      uint8 = 0x92 // SUB D
	OpSubE      uint8 = 0x93 // SUB E
	OpSubH      uint8 = 0x94 // SUB H
	OpSubL      uint8 = 0x95 // SUB L
	OpSubMemHL  uint8 = 0x96 // SUB (HL)
	OpSubA      uint8 = 0x97 // SUB A
	OpSbcAB     uint8 = 0x98 // SBC A,B
	OpSbcAC     uint8 = 0x99 // SBC A,C
	OpSbcAD     uint8 = 0x9A // SBC A,D
	OpSbcAE     uint8 = 0x9B // SBC A,E
	OpSbcAH     uint8 = 0x9C // SBC A,H
	OpSbcAL     uint8 = 0x9D // SBC A,L
	OpSbcAMemHL uint8 = 0x9E // SBC A,(HL)
	OpSbcAA     uint8 = 0x9F // SBC A,A
	OpAndB      uint8 = 0xA0 // AND B
	OpAndC      uint8 = 0xA1 // AND C
	OpAndD      uint8 = 0xA2 // AND D
	OpAndE      uint8 = 0xA3 // AND E
	OpAndH      uint8 = 0xA4 // AND H
	OpAndL      uint8 = 0xA5 // AND L
	OpAndMemHL  uint8 = 0xA6 // AND (HL)
	OpAndA      uint8 = 0xA7 // AND A
	OpXorB      uint8 = 0xA8 // XOR B
	OpXorC      uint8 = 0xA9 // XOR C
	OpXorD      uint8 = 0xAA // XOR D
	OpXorE      uint8 = 0xAB // XOR E
	OpXorH      uint8 = 0xAC // XOR H
	OpXorL      uint8 = 0xAD // XOR L
	OpXorMemHL  uint8 = 0xAE // XOR (HL)
	OpXorA      uint8 = 0xAF // XOR A
	OpOrB       uint8 = 0xB0 // OR B
	OpOrC       uint8 = 0xB1 // OR C
	OpOrD       uint8 = 0xB2 // OR D
	OpOrE       uint8 = 0xB3 // OR E
	OpOrH       uint8 = 0xB4 // OR H
	OpOrL       uint8 = 0xB5 // OR L
	OpOrMemHL   uint8 = 0xB6 // OR (HL)
	OpOrA       uint8 = 0xB7 // OR A
	OpCpB       uint8 = 0xB8 // CP B
	OpCpC       uint8 = 0xB9 // CP C
	OpCpD       uint8 = 0xBA // CP D
	OpCpE       uint8 = 0xBB // CP E
	OpCpH       uint8 = 0xBC // CP H
	OpCpL       uint8 = 0xBD // CP L
	OpCpMemHL   uint8 = 0xBE // CP (HL)
	OpCpA       uint8 = 0xBF // CP A
	OpRetNZ     uint8 = 0xC0 // RET NZ
	OpPopBC     uint8 = 0xC1 // POP BC
	OpJpNZa16   uint8 = 0xC2 // JP NZ,a16
	OpJpa16     uint8 = 0xC3 // JP a16
	OpCallNZa16 uint8 = 0xC4 // CALL NZ,a16
	OpPushBC    uint8 = 0xC5 // PUSH BC
	OpAddAD8    uint8 = 0xC6 // ADD A,d8
	OpRst00     uint8 = 0xC7 // RST 00H
	OpRetZ      uint8 = 0xC8 // RET Z
	OpRet       uint8 = 0xC9 // RET
	OpJpZa16    uint8 = 0xCA // JP Z,a16
	OpPrefixCB  uint8 = 0xCB // PREFIX CB
	OpCallZa16  uint8 = 0xCC // CALL Z,a16
	OpCalla16   uint8 = 0xCD // CALL a16
	OpAdcAD8    uint8 = 0xCE // ADC A,d8
	OpRst08     uint8 = 0xCF // RST 08H
	OpRetNC     uint8 = 0xD0 // RET NC
	OpPopDE     uint8 = 0xD1 // POP DE
	OpJpNCa16   uint8 = 0xD2 // JP NC,a16
	OpCallNCa16 uint8 = 0xD4 // CALL NC,a16
	OpPushDE    uint8 = 0xD5 // PUSH DE
	OpSubD8     uint8 = 0xD6 // SUB d8
	OpRst10     uint8 = 0xD7 // RST 10H
	OpRetC      uint8 = 0xD8 // RET C
	OpReti      uint8 = 0xD9 // RETI
	OpJpCa16    uint8 = 0xDA // JP C,a16
	OpCallCa16  uint8 = 0xDC // CALL C,a16
	OpSbcAD8    uint8 = 0xDE // SBC A,d8
	OpRst18     uint8 = 0xDF // RST 18H
	OpLdhA8A    uint8 = 0xE0 // LDH (a8),A
	OpPopHL     uint8 = 0xE1 // POP HL
	OpLdMemCA   uint8 = 0xE2 // LD (C),A
	OpPushHL    uint8 = 0xE5 // PUSH HL
	OpAndD8     uint8 = 0xE6 // AND d8
	OpRst20     uint8 = 0xE7 // RST 20H
	OpAddSPS8   uint8 = 0xE8 // ADD SP,s8
	OpJpHL      uint8 = 0xE9 // JP HL
	OpLdA16A    uint8 = 0xEA // LD (a16),A
	OpXorD8     uint8 = 0xEE // XOR d8
	OpRst28     uint8 = 0xEF // RST 28H
	OpLdhAA8    uint8 = 0xF0 // LDH A,(a8)
	OpPopAF     uint8 = 0xF1 // POP AF
	OpLdAMemC   uint8 = 0xF2 // LD A,(C)
	OpDi        uint8 = 0xF3 // DI
	OpPushAF    uint8 = 0xF5 // PUSH AF
	OpOrD8      uint8 = 0xF6 // OR d8
	OpRst30     uint8 = 0xF7 // RST 30H
	OpLdHLSPS8  uint8 = 0xF8 // LD HL,SP+s8
	OpLdSPHL    uint8 = 0xF9 // LD SP,HL
	OpLdAA16    uint8 = 0xFA // LD A,(a16)
	OpEi        uint8 = 0xFB // EI
	OpCpD8      uint8 = 0xFE // CP d8
	OpRst38     uint8 = 0xFF // RST 38H
)

// undefinedOpcodes are the primary opcodes with no documented instruction.
var undefinedOpcodes = [256]bool{
	0xD3: true,
	0xDB: true,
	0xDD: true,
	0xE3: true,
	0xE4: true,
	0xEB: true,
	0xEC: true,
	0xED: true,
	0xF4: true,
	0xFC: true,
	0xFD: true,
}
