package snapshot

import (
	"fmt"
	"io"

	"github.com/go-faster/jx"
)

// Encode writes c to w as JSON.
func Encode(w io.Writer, c *Core) error {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("version")
	e.Int(c.Version)
	e.FieldStart("cpu")
	encodeCPU(&e, &c.CPU)
	e.FieldStart("drum")
	encodeDrum(&e, &c.Drum)
	e.FieldStart("status")
	e.Int(int(c.Status))
	e.FieldStart("gun")
	encodeGun(&e, &c.Gun)
	e.ObjEnd()

	_, err := w.Write(e.Bytes())
	return err
}

func encodeCPU(e *jx.Encoder, c *CPU) {
	e.ObjStart()
	e.FieldStart("acc")
	e.ArrStart()
	e.Int(int(c.ACC[0]))
	e.Int(int(c.ACC[1]))
	e.ArrEnd()
	e.FieldStart("pc")
	e.Int(int(c.PC))
	e.FieldStart("fault")
	e.Bool(c.Fault)
	e.FieldStart("halted")
	e.Bool(c.Halted)
	e.FieldStart("cycles")
	e.Int64(c.Cycles)
	e.FieldStart("core")
	e.ArrStart()
	for _, v := range c.Core {
		e.Int(int(v))
	}
	e.ArrEnd()
	e.ObjEnd()
}

func encodeDrum(e *jx.Encoder, d *Drum) {
	e.ObjStart()
	e.FieldStart("lri")
	encodeWords(e, d.LRI)
	e.FieldStart("gfi")
	encodeWords(e, d.GFI)
	e.FieldStart("xtl")
	encodeWords(e, d.XTL)
	e.FieldStart("sdc")
	encodeWords(e, d.SDC)
	e.ObjEnd()
}

func encodeWords(e *jx.Encoder, ws [][2]uint16) {
	e.ArrStart()
	for _, w := range ws {
		e.ArrStart()
		e.Int(int(w[0]))
		e.Int(int(w[1]))
		e.ArrEnd()
	}
	e.ArrEnd()
}

func encodeGun(e *jx.Encoder, g *LightGun) {
	e.ObjStart()
	e.FieldStart("state")
	e.Int(int(g.State))
	e.FieldStart("target_x")
	e.Int(int(g.TargetX))
	e.FieldStart("target_y")
	e.Int(int(g.TargetY))
	e.ObjEnd()
}

// Decode reads a snapshot back from r. It rejects snapshots with an
// unsupported version.
func Decode(r io.Reader) (*Core, error) {
	d := jx.Decode(r, 4096)
	c := new(Core)

	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "version":
			c.Version, err = d.Int()
		case "cpu":
			err = decodeCPU(d, &c.CPU)
		case "drum":
			err = decodeDrum(d, &c.Drum)
		case "status":
			var v int
			v, err = d.Int()
			c.Status = uint32(v)
		case "gun":
			err = decodeGun(d, &c.Gun)
		default:
			err = d.Skip()
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if c.Version != Version {
		return nil, fmt.Errorf("unsupported snapshot version %d", c.Version)
	}
	return c, nil
}

func decodeCPU(d *jx.Decoder, c *CPU) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "acc":
			i := 0
			err = d.Arr(func(d *jx.Decoder) error {
				v, err := d.Int()
				if err != nil {
					return err
				}
				if i > 1 {
					return fmt.Errorf("acc has more than 2 halves")
				}
				c.ACC[i] = uint16(v)
				i++
				return nil
			})
		case "pc":
			var v int
			v, err = d.Int()
			c.PC = uint16(v)
		case "fault":
			c.Fault, err = d.Bool()
		case "halted":
			c.Halted, err = d.Bool()
		case "cycles":
			c.Cycles, err = d.Int64()
		case "core":
			err = d.Arr(func(d *jx.Decoder) error {
				v, err := d.Int()
				if err != nil {
					return err
				}
				c.Core = append(c.Core, uint16(v))
				return nil
			})
		default:
			err = d.Skip()
		}
		return err
	})
}

func decodeDrum(d *jx.Decoder, dr *Drum) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "lri":
			dr.LRI, err = decodeWords(d)
		case "gfi":
			dr.GFI, err = decodeWords(d)
		case "xtl":
			dr.XTL, err = decodeWords(d)
		case "sdc":
			dr.SDC, err = decodeWords(d)
		default:
			err = d.Skip()
		}
		return err
	})
}

func decodeWords(d *jx.Decoder) ([][2]uint16, error) {
	var ws [][2]uint16
	err := d.Arr(func(d *jx.Decoder) error {
		var w [2]uint16
		i := 0
		err := d.Arr(func(d *jx.Decoder) error {
			v, err := d.Int()
			if err != nil {
				return err
			}
			if i > 1 {
				return fmt.Errorf("word has more than 2 halves")
			}
			w[i] = uint16(v)
			i++
			return nil
		})
		ws = append(ws, w)
		return err
	})
	return ws, err
}

func decodeGun(d *jx.Decoder, g *LightGun) error {
	return d.Obj(func(d *jx.Decoder, key string) error {
		v, err := d.Int()
		if err != nil {
			return err
		}
		switch key {
		case "state":
			g.State = uint8(v)
		case "target_x":
			g.TargetX = uint16(v)
		case "target_y":
			g.TargetY = uint16(v)
		}
		return nil
	})
}
