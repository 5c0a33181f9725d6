package sss

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	horerrs "github.com/gendx/horcrux/internal/errors"
)

// Encoding selects how a split's x-coordinates are chosen (spec.md
// section 3, "Share").
type Encoding int

const (
	// EncodingCompact assigns x_j = element-of(j) for j in 1..N: a small
	// decimal index, serialized without hex encoding.
	EncodingCompact Encoding = iota
	// EncodingRandomized draws each x_j uniformly from the nonzero
	// elements of the field, rejecting collisions.
	EncodingRandomized
)

func (e Encoding) String() string {
	switch e {
	case EncodingCompact:
		return "compact"
	case EncodingRandomized:
		return "random"
	default:
		return "unknown"
	}
}

// Share is one (x, y) pair of a split, in wire-ready big-endian byte form.
// Compact and Index are populated only for shares produced under
// EncodingCompact, letting FormatShare print the decimal-index grammar
// spec.md section 6 specifies instead of hex for x.
type Share struct {
	X, Y    []byte
	Compact bool
	Index   int
}

// FormatShare renders a Share as one line of the grammar from spec.md
// section 6: "<decimal-index>|<hex-y>" for compact shares, or
// "<hex-x>|<hex-y>" for randomized ones. Hex is always lowercase.
func FormatShare(s Share) string {
	if s.Compact {
		return fmt.Sprintf("%d|%s", s.Index, hex.EncodeToString(s.Y))
	}
	return fmt.Sprintf("%s|%s", hex.EncodeToString(s.X), hex.EncodeToString(s.Y))
}

// ParseShare parses one line of the share grammar. It auto-detects compact
// vs. randomized encoding: the left-hand field is treated as a decimal
// index when it consists solely of digits with no leading zero, whatever
// its length; otherwise it is treated as a hex-encoded x. A randomized
// share whose hex x happens to contain only the digits 0-9 with no
// leading zero is therefore read as a compact index. This mirrors how the
// reference CLI tells the two grammars apart without a format prefix in
// the line itself (spec.md section 6 specifies no prefix).
func ParseShare(line string) (Share, error) {
	parts := strings.SplitN(strings.TrimSpace(line), "|", 2)
	if len(parts) != 2 {
		return Share{}, horerrs.ErrParseShare
	}
	left, right := parts[0], parts[1]

	y, err := hex.DecodeString(right)
	if err != nil || len(right)%2 != 0 || len(right) == 0 {
		return Share{}, horerrs.ErrParseShare
	}

	if looksDecimal(left) {
		idx, err := strconv.Atoi(left)
		if err != nil || idx < 1 {
			return Share{}, horerrs.ErrParseShare
		}
		return Share{Y: y, Compact: true, Index: idx}, nil
	}

	x, err := hex.DecodeString(left)
	if err != nil || len(left)%2 != 0 || len(left) == 0 {
		return Share{}, horerrs.ErrParseShare
	}
	return Share{X: x, Y: y, Compact: false}, nil
}

// looksDecimal reports whether s is a valid no-leading-zero decimal index:
// digits only, and either exactly "0" (never a valid index, but
// syntactically decimal) or starting with a nonzero digit.
func looksDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s == "0" || s[0] != '0'
}
