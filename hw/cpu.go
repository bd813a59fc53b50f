package hw

import (
	"errors"
	"fmt"
	"io"

	"anfsq7/emu/log"
)

// CoreSize is the number of halfwords of core memory the program lives in.
const CoreSize = 4096

// InstructionFault reports an undecodable instruction. It is fatal: the
// fault flag latches and the CPU refuses to advance until Reset.
type InstructionFault struct {
	PC    uint16
	Instr uint16
}

func (f *InstructionFault) Error() string {
	return fmt.Sprintf("instruction fault: %04x at pc %04x", f.Instr, f.PC)
}

// ErrFaulted is returned by Step while the fault latch is set.
var ErrFaulted = errors.New("cpu faulted, reset required")

// TraceRecord is the observable outcome of one Step, for display purposes.
type TraceRecord struct {
	PC    uint16
	ACC   Word
	Fault bool
}

// CPU executes one's-complement fractional instructions out of core memory
// and runs the poll-service loop against the drum and status register. It
// never receives interrupts; PollAndService (or the SNS/CLS instructions)
// is the only way asynchronous input reaches it.
type CPU struct {
	Drum   *Drum
	Status *Status

	// Core is the word-addressed program memory.
	Core [CoreSize]Halfword

	ACC   Word
	PC    uint16
	Fault bool

	halted bool
	Cycles int64

	tracer *tracer
}

func NewCPU(drum *Drum, status *Status) *CPU {
	return &CPU{Drum: drum, Status: status}
}

// Reset reinitializes the CPU registers and releases the fault latch. It is
// the only way out of an instruction fault.
func (c *CPU) Reset() {
	c.ACC = Word{}
	c.PC = 0
	c.Fault = false
	c.halted = false
	log.ModCPU.InfoZ("reset").End()
}

// Halted reports whether the CPU has stopped, cleanly or by fault.
func (c *CPU) Halted() bool {
	return c.halted || c.Fault
}

// AttachTracer makes every Step write an execution trace line to w.
func (c *CPU) AttachTracer(w io.Writer) {
	c.tracer = &tracer{w: w}
}

// AddLogContext tags every log line with the current pc.
// Implements log.Context.
func (c *CPU) AddLogContext(e *log.EntryZ) {
	e.Hex16("pc", c.PC)
}

// Step runs one fetch-decode-execute cycle. An undecodable instruction
// returns *InstructionFault and latches the fault flag; while latched,
// Step returns ErrFaulted without advancing. A drum *AddressFault is
// returned non-fatally: the CPU keeps running and the caller decides
// whether that warrants a halt.
func (c *CPU) Step() (TraceRecord, error) {
	if c.Fault {
		return c.record(c.PC), ErrFaulted
	}
	if c.halted {
		return c.record(c.PC), nil
	}

	pc := c.PC
	instr := uint16(c.Core[pc])
	c.PC = (c.PC + 1) % CoreSize
	c.Cycles++

	var err error
	if op := ops[instr>>12]; op != nil {
		err = op(c, instr)
	} else {
		err = c.instrFault(pc, instr)
	}

	rec := c.record(pc)
	if c.tracer != nil {
		c.tracer.write(instr, rec)
	}
	return rec, err
}

func (c *CPU) record(pc uint16) TraceRecord {
	return TraceRecord{PC: pc, ACC: c.ACC, Fault: c.Fault}
}

func (c *CPU) instrFault(pc, instr uint16) error {
	c.Fault = true
	log.ModCPU.ErrorZ("instruction fault").
		Hex16("pc", pc).
		Hex16("instr", instr).
		End()
	return &InstructionFault{PC: pc, Instr: instr}
}

// Load transfers a drum field slot into the accumulator.
func (c *CPU) Load(f DrumField, addr int) error {
	w, err := c.Drum.ReadField(f, addr)
	if err != nil {
		return err
	}
	c.ACC = w
	return nil
}

// Store writes the accumulator to a drum field slot as an outbound word,
// raising the matching CD_* channel.
func (c *CPU) Store(f DrumField, addr int) error {
	return c.Drum.WriteField(f, addr, c.ACC, Outbound)
}

// chDrumField maps a status channel to the drum field it signals for.
// LIGHT_GUN carries no field data.
func chDrumField(ch Channel) (DrumField, bool) {
	switch ch {
	case CD_LRI, OD_LRI:
		return LRI, true
	case CD_GFI, OD_GFI:
		return GFI, true
	case CD_XTL, OD_XTL:
		return XTL, true
	}
	return 0, false
}

// PollAndService checks a status channel; when set, it hands the channel's
// field data to handler then clears the bit, and reports true. This is the
// sanctioned consumer path for asynchronous input: there is no interrupt.
// For LIGHT_GUN the handler receives nil.
func (c *CPU) PollAndService(ch Channel, handler func([]Word)) bool {
	if !c.Status.Check(ch) {
		return false
	}
	var data []Word
	if f, ok := chDrumField(ch); ok {
		data = c.Drum.Field(f)
	}
	if handler != nil {
		handler(data)
	}
	c.Status.Clear(ch)
	return true
}
