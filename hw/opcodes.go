package hw

import "anfsq7/emu/log"

// Instruction format, 16 bits:
//
//	op(4) | field(2) | addr(10)   drum ops (CAD ADD STO)
//	op(4) | operand(12)           everything else
//
// Codes 0x8..0xF are unassigned and raise the fatal instruction fault.
var ops = [16]func(c *CPU, instr uint16) error{
	0x0: HLT,
	0x1: CAD,
	0x2: ADD,
	0x3: COM,
	0x4: STO,
	0x5: JMP,
	0x6: SNS,
	0x7: CLS,
}

func fieldAddr(instr uint16) (DrumField, int) {
	return DrumField(instr >> 10 & 3), int(instr & 0x3FF)
}

// chanOperand decodes a status channel operand. An out-of-range channel
// makes the whole instruction undecodable.
func chanOperand(instr uint16) (Channel, bool) {
	ch := Channel(instr & 0xF)
	return ch, ch < numChannels
}

// HLT stops the machine cleanly. Not a fault: Reset or a new program
// restarts it.
func HLT(c *CPU, _ uint16) error {
	c.halted = true
	log.ModCPU.InfoZ("halt").Hex16("pc", (c.PC+CoreSize-1)%CoreSize).End()
	return nil
}

// CAD clears the accumulator and adds: acc <- drum[field][addr].
func CAD(c *CPU, instr uint16) error {
	f, addr := fieldAddr(instr)
	return c.Load(f, addr)
}

// ADD adds a drum word into the accumulator, both halves in parallel,
// implicit post-add shift included on each.
func ADD(c *CPU, instr uint16) error {
	f, addr := fieldAddr(instr)
	w, err := c.Drum.ReadField(f, addr)
	if err != nil {
		return err
	}
	c.ACC = AddWords(c.ACC, w)
	return nil
}

// COM complements both accumulator halves.
func COM(c *CPU, _ uint16) error {
	c.ACC = NegateWord(c.ACC)
	return nil
}

// STO stores the accumulator outbound: drum[field][addr] <- acc, raising
// the field's CD_* channel.
func STO(c *CPU, instr uint16) error {
	f, addr := fieldAddr(instr)
	return c.Store(f, addr)
}

// JMP sets pc to the operand.
func JMP(c *CPU, instr uint16) error {
	c.PC = instr & 0x0FFF // operand is 12 bits, always inside core
	return nil
}

// SNS senses a status channel and skips the next instruction when it is
// set. The idiom is "SNS ch / JMP wait": spin until data lands.
func SNS(c *CPU, instr uint16) error {
	ch, ok := chanOperand(instr)
	if !ok {
		return c.instrFault((c.PC+CoreSize-1)%CoreSize, instr)
	}
	if c.Status.Check(ch) {
		c.PC = (c.PC + 1) % CoreSize
	}
	return nil
}

// CLS clears a status channel: the consumer acknowledgment after draining
// the field.
func CLS(c *CPU, instr uint16) error {
	ch, ok := chanOperand(instr)
	if !ok {
		return c.instrFault((c.PC+CoreSize-1)%CoreSize, instr)
	}
	c.Status.Clear(ch)
	return nil
}
