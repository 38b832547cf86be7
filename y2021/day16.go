package y2021

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
)

// Day16 is "Packet Decoder": a nested binary transmission (BITS).
type Day16 struct{}

// Packet type IDs. Every ID other than typeLiteral is an operator.
const (
	typeSum     = 0
	typeProduct = 1
	typeMin     = 2
	typeMax     = 3
	typeLiteral = 4
	typeGreater = 5
	typeLess    = 6
	typeEqual   = 7
)

// packet is a decoded BITS packet.
type packet struct {
	version int
	typeID  int
	value   int // literal value; unused by operators
	sub     []packet
}

// bitReader consumes a big-endian bit string.
type bitReader struct {
	data []byte
	pos  int // bit offset
}

func (r *bitReader) read(n int) (int, error) {
	if r.pos+n > len(r.data)*8 {
		return 0, puzzle.Malformedf("packet truncated at bit %d", r.pos)
	}

	v := 0
	for i := 0; i < n; i++ {
		bit := r.data[r.pos/8] >> (7 - r.pos%8) & 1
		v = v<<1 | int(bit)
		r.pos++
	}

	return v, nil
}

func decodePacket(in string) (packet, error) {
	data, err := hex.DecodeString(strings.TrimSpace(in))
	if err != nil {
		return packet{}, puzzle.Malformedf("hex: %v", err)
	}

	r := &bitReader{data: data}

	return r.packet()
}

// packet reads one packet: 3-bit version, 3-bit type, then either a literal
// in 5-bit groups or an operator with its sub-packets. Length type 0 gives
// the sub-packets' total bit length (15 bits); type 1 their count (11 bits).
func (r *bitReader) packet() (packet, error) {
	var p packet
	var err error
	if p.version, err = r.read(3); err != nil {
		return p, err
	}
	if p.typeID, err = r.read(3); err != nil {
		return p, err
	}

	if p.typeID == typeLiteral {
		for {
			group, err := r.read(5)
			if err != nil {
				return p, err
			}
			p.value = p.value<<4 | group&0xF
			if group&0x10 == 0 {
				return p, nil
			}
		}
	}

	lengthType, err := r.read(1)
	if err != nil {
		return p, err
	}
	if lengthType == 0 {
		length, err := r.read(15)
		if err != nil {
			return p, err
		}
		end := r.pos + length
		for r.pos < end {
			sub, err := r.packet()
			if err != nil {
				return p, err
			}
			p.sub = append(p.sub, sub)
		}
		if r.pos != end {
			return p, puzzle.Malformedf("sub-packets overrun declared length")
		}
	} else {
		count, err := r.read(11)
		if err != nil {
			return p, err
		}
		for i := 0; i < count; i++ {
			sub, err := r.packet()
			if err != nil {
				return p, err
			}
			p.sub = append(p.sub, sub)
		}
	}

	return p, nil
}

// versionSum adds the versions of p and every nested packet.
func (p packet) versionSum() int {
	s := p.version
	for _, sub := range p.sub {
		s += sub.versionSum()
	}

	return s
}

// eval computes the expression rooted at p.
func (p packet) eval() (int, error) {
	if p.typeID == typeLiteral {
		return p.value, nil
	}

	args := make([]int, len(p.sub))
	for i, sub := range p.sub {
		v, err := sub.eval()
		if err != nil {
			return 0, err
		}
		args[i] = v
	}

	switch p.typeID {
	case typeSum:
		s := 0
		for _, a := range args {
			s += a
		}
		return s, nil
	case typeProduct:
		prod := 1
		for _, a := range args {
			prod *= a
		}
		return prod, nil
	case typeMin:
		m := math.MaxInt
		for _, a := range args {
			m = min(m, a)
		}
		return m, nil
	case typeMax:
		m := math.MinInt
		for _, a := range args {
			m = max(m, a)
		}
		return m, nil
	case typeGreater, typeLess, typeEqual:
		if len(args) != 2 {
			return 0, puzzle.Malformedf("comparison with %d operands", len(args))
		}
		var ok bool
		switch p.typeID {
		case typeGreater:
			ok = args[0] > args[1]
		case typeLess:
			ok = args[0] < args[1]
		default:
			ok = args[0] == args[1]
		}
		if ok {
			return 1, nil
		}
		return 0, nil
	}

	return 0, puzzle.Malformedf("packet type %d", p.typeID)
}

// Part1 sums all version numbers.
func (Day16) Part1(in string) (string, error) {
	p, err := decodePacket(in)
	if err != nil {
		return "", err
	}

	return strconv.Itoa(p.versionSum()), nil
}

// Part2 evaluates the transmission.
func (Day16) Part2(in string) (string, error) {
	p, err := decodePacket(in)
	if err != nil {
		return "", err
	}
	v, err := p.eval()
	if err != nil {
		return "", err
	}

	return strconv.Itoa(v), nil
}
