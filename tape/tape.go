// Package tape reads program decks: the plain-text listings programs are
// keyed in as. One 16-bit hex word per line, loaded at consecutive
// addresses; "@hhh" directives move the load origin; ";" starts a comment.
package tape

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Entry struct {
	Addr uint16
	Word uint16
}

type Deck struct {
	Name    string
	Entries []Entry
}

// Open loads a deck from file.
func Open(path string) (*Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	deck, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	deck.Name = filepath.Base(path)
	return deck, nil
}

// Read parses deck text.
func Read(r io.Reader) (*Deck, error) {
	deck := new(Deck)
	var org uint16

	sc := bufio.NewScanner(r)
	for lineno := 1; sc.Scan(); lineno++ {
		line := sc.Text()
		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if rest, ok := strings.CutPrefix(line, "@"); ok {
			v, err := strconv.ParseUint(rest, 16, 16)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad origin %q", lineno, line)
			}
			org = uint16(v)
			continue
		}

		v, err := strconv.ParseUint(line, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad word %q", lineno, line)
		}
		deck.Entries = append(deck.Entries, Entry{Addr: org, Word: uint16(v)})
		org++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return deck, nil
}
