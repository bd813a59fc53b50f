package hw

import "fmt"

// mnemonics indexed by opcode. Empty entries are undecodable codes.
var mnemonics = [16]string{
	0x0: "HLT",
	0x1: "CAD",
	0x2: "ADD",
	0x3: "COM",
	0x4: "STO",
	0x5: "JMP",
	0x6: "SNS",
	0x7: "CLS",
}

// Disasm renders one instruction word as text.
func Disasm(instr uint16) string {
	op := instr >> 12
	m := mnemonics[op]
	if m == "" {
		return fmt.Sprintf("??? %04x", instr)
	}
	switch op {
	case 0x1, 0x2, 0x4: // CAD ADD STO
		f, addr := fieldAddr(instr)
		return fmt.Sprintf("%s %s %03x", m, f, addr)
	case 0x5: // JMP
		return fmt.Sprintf("%s %03x", m, instr&0x0FFF)
	case 0x6, 0x7: // SNS CLS
		ch, ok := chanOperand(instr)
		if !ok {
			return fmt.Sprintf("%s ??", m)
		}
		return fmt.Sprintf("%s %s", m, ch)
	}
	return m
}
