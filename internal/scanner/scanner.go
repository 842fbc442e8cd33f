// Package scanner locates labeled parameter blocks in line-oriented input
// and extracts their key/value pairs.
package scanner

import (
	"bufio"
	"bytes"
	"strings"
)

// Pair is a single key/value line of a block, both sides trimmed of
// surrounding whitespace.
type Pair struct {
	Key   string
	Value string
}

// Block is the captured content of one labeled block.
type Block struct {
	Label string
	Pairs []Pair
}

// Find scans data line by line for the first block labeled label and returns
// its key/value pairs in file order. The label must appear as a whole
// whitespace-delimited token on its marker line; a substring embedded in a
// longer word does not match. Capture begins on the line after the marker
// and stops at the first line whose first token is "}".
//
// A line is a key/value pair only if it contains a colon; the value is the
// text after the first colon, truncated at the next colon if the value
// itself contains one. Other lines inside the block are ignored. A repeated
// key keeps its original position but takes the last value seen.
func Find(data []byte, label string) (*Block, bool) {
	s := bufio.NewScanner(bytes.NewReader(data))
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	found := false
	for s.Scan() {
		if hasToken(s.Text(), label) {
			found = true
			break
		}
	}
	if !found {
		return nil, false
	}

	blk := &Block{Label: label}
	index := make(map[string]int)
	for s.Scan() {
		line := s.Text()
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == "}" {
			break
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		// A value containing a colon is truncated at it.
		value, _, _ = strings.Cut(value, ":")
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if i, seen := index[key]; seen {
			blk.Pairs[i].Value = value
			continue
		}
		index[key] = len(blk.Pairs)
		blk.Pairs = append(blk.Pairs, Pair{Key: key, Value: value})
	}
	return blk, true
}

// hasToken reports whether tok appears as a whitespace-delimited field of
// line.
func hasToken(line, tok string) bool {
	for _, f := range strings.Fields(line) {
		if f == tok {
			return true
		}
	}
	return false
}
