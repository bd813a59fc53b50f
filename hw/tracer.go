package hw

import (
	"fmt"
	"io"
)

// tracer writes one fixed-width line per executed instruction, for the
// --trace flag. Columns: pc, raw instruction, disassembly, both
// accumulator halves (raw and decoded), fault flag.
type tracer struct {
	w io.Writer
}

func (t *tracer) write(instr uint16, rec TraceRecord) {
	fault := byte('-')
	if rec.Fault {
		fault = '!'
	}
	fmt.Fprintf(t.w, "%04X  %04X  %-12s  A:%s %s  F:%c\n",
		rec.PC, instr, Disasm(instr), rec.ACC.L, rec.ACC.R, fault)
}
