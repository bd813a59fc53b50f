package hw

import (
	"errors"
	"testing"
)

func TestOpcodeTable(t *testing.T) {
	for op := 0; op < 8; op++ {
		if ops[op] == nil {
			t.Errorf("opcode %x not implemented", op)
		}
	}
	for op := 8; op < 16; op++ {
		if ops[op] != nil {
			t.Errorf("opcode %x should be unassigned", op)
		}
	}
}

func TestUnassignedOpcodesFault(t *testing.T) {
	for op := uint16(0x8); op <= 0xF; op++ {
		c := newTestCPU()
		loadProgram(c, []Halfword{Halfword(op << 12)})

		_, err := c.Step()
		var fault *InstructionFault
		if !errors.As(err, &fault) {
			t.Errorf("opcode %x: error = %v, want *InstructionFault", op, err)
		}
		if !c.Fault {
			t.Errorf("opcode %x: fault flag not latched", op)
		}
	}
}

func TestDisasm(t *testing.T) {
	tests := []struct {
		instr uint16
		want  string
	}{
		{0x0000, "HLT"},
		{0x1805, "CAD XTL 005"},
		{0x2401, "ADD GFI 001"},
		{0x3000, "COM"},
		{0x4002, "STO LRI 002"},
		{0x5123, "JMP 123"},
		{0x6005, "SNS OD_XTL"},
		{0x7006, "CLS LIGHT_GUN"},
		{0x600F, "SNS ??"},
		{0x9123, "??? 9123"},
	}
	for _, tt := range tests {
		if got := Disasm(tt.instr); got != tt.want {
			t.Errorf("Disasm(%04x) = %q, want %q", tt.instr, got, tt.want)
		}
	}
}
