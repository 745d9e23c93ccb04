package gpp

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/bamiaux/iobit"
)

// dataReader layers the GPP field encodings over a big-endian bit stream.
// Like the underlying iobit reader, fixed-width reads past the end of the
// payload yield zero instead of failing, and the overrun surfaces once
// through check. Variable-length reads (Fibonacci codes) cannot defer the
// same way, so they record the overrun themselves and bail out.
type dataReader struct {
	iobit.Reader
	overrun bool
}

func newDataReader(p []byte) *dataReader {
	return &dataReader{Reader: iobit.NewReader(p)}
}

// check reports whether any read so far went past the end of the payload.
func (d *dataReader) check() error {
	if d.overrun || d.Reader.Error() != nil {
		return fmt.Errorf("read past end of payload: %w", io.ErrUnexpectedEOF)
	}
	return nil
}

// bad reports an overrun without formatting the error, for loop guards.
func (d *dataReader) bad() bool {
	return d.overrun || d.Reader.Error() != nil
}

// readVersion reads the six-bit version prefix every bit-packed section
// starts with and checks it against want.
func (d *dataReader) readVersion(want uint8) error {
	v := d.Uint8(6)
	if err := d.check(); err != nil {
		return err
	}
	if v != want {
		return &InvalidSectionVersionError{Expected: want, Found: v}
	}
	return nil
}

// readTime reads a 36-bit timestamp counted in deciseconds since the Unix
// epoch, truncated to whole seconds.
func (d *dataReader) readTime() time.Time {
	ds := d.Uint64(36)
	return time.Unix(int64(ds/10), 0).UTC()
}

// readString reads n six-bit groups, mapping 0 to 'A' through 25 to 'Z'.
// Values past 25 are not rejected; they map to whatever byte 'A'+v lands on.
func (d *dataReader) readString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = d.Uint8(6) + 'A'
	}
	return string(b)
}

// readFibonacci decodes a Zeckendorf-coded integer: bit i set contributes
// F(i), with F(1)=1 and F(2)=2, and two consecutive set bits terminate the
// number, the first of the pair contributing its term. A value past the
// uint64 range saturates to MaxUint64 instead of wrapping or shrinking, so
// oversized codes stay oversized through the range arithmetic downstream.
func (d *dataReader) readFibonacci() uint64 {
	var v uint64
	cur, next := uint64(1), uint64(2)
	prev := false
	// The term update overflows while computing next, one step before the
	// bad term reaches cur. F(92) is the last term a uint64 holds and must
	// still contribute exactly, so cur carries its own flag.
	curWide, nextWide := false, false
	for {
		if d.LeftBits() == 0 {
			d.overrun = true
			return 0
		}
		bit := d.Bit()
		if bit && prev {
			return v
		}
		if bit {
			if sum := v + cur; !curWide && sum >= v {
				v = sum
			} else {
				v = math.MaxUint64
			}
		}
		prev = bit
		sum := cur + next
		cur, next = next, sum
		curWide = nextWide
		if sum < cur {
			nextWide = true
		}
	}
}

// readBitfield reads n bits; bit i (1-based) set puts ID i in the set.
func (d *dataReader) readBitfield(n uint) IDSet {
	var ids IDSet
	for i := uint(1); i <= n; i++ {
		if d.Bit() {
			ids = append(ids, uint16(i))
		}
	}
	return ids
}

// readVariableBitfield reads a 16-bit length followed by that many bits.
func (d *dataReader) readVariableBitfield() IDSet {
	n := d.Uint16(16)
	return d.readBitfield(uint(n))
}

// readIntRange reads a 12-bit entry count followed by entries that are
// either a single 16-bit ID or an inclusive pair of 16-bit bounds. A pair
// with start above end contributes nothing.
func (d *dataReader) readIntRange() IDSet {
	n := d.Uint16(12)
	var ids []uint16
	for i := 0; i < int(n); i++ {
		if d.bad() {
			break
		}
		if d.Bit() {
			start := d.Uint16(16)
			end := d.Uint16(16)
			for id := uint(start); id <= uint(end) && len(ids) < maxSetIDs; id++ {
				ids = append(ids, uint16(id))
			}
		} else {
			ids = append(ids, d.Uint16(16))
		}
	}
	return normalizeIDs(ids)
}

// satAdd returns a+b, saturating at MaxUint64, so anchor arithmetic over
// adversarial offsets cannot wrap back into the 16-bit ID space.
func satAdd(a, b uint64) uint64 {
	if sum := a + b; sum >= a {
		return sum
	}
	return math.MaxUint64
}

// readFibonacciIDRange reads a 12-bit entry count followed by
// Fibonacci-coded entries, returning the IDs in emission order. A single
// entry emits anchor+offset but moves the anchor to the offset itself
// rather than to the emitted ID; encoders in the field produce bits against
// that behavior, so it is kept bit-compatible. A group entry emits
// anchor+offset through anchor+offset+count and moves the anchor to the
// last emitted ID. IDs beyond 16 bits are dropped, with every sum
// saturating rather than wrapping.
func (d *dataReader) readFibonacciIDRange() []uint16 {
	n := d.Uint16(12)
	var ids []uint16
	last := uint64(0)
	for i := 0; i < int(n); i++ {
		if d.bad() {
			break
		}
		if d.Bit() {
			offset := d.readFibonacci()
			count := d.readFibonacci()
			start := satAdd(last, offset)
			end := satAdd(start, count)
			for id := start; id <= end; id++ {
				if id > math.MaxUint16 || len(ids) >= maxSetIDs {
					break
				}
				ids = append(ids, uint16(id))
			}
			last = end
		} else {
			offset := d.readFibonacci()
			if id := satAdd(last, offset); id <= math.MaxUint16 {
				ids = append(ids, uint16(id))
			}
			last = offset
		}
	}
	return ids
}

// readFibonacciRange is readFibonacciIDRange normalized into an IDSet.
func (d *dataReader) readFibonacciRange() IDSet {
	return normalizeIDs(d.readFibonacciIDRange())
}

// readOptimizedRange reads one flag bit selecting between a Fibonacci
// range and a variable-length bitfield.
func (d *dataReader) readOptimizedRange() IDSet {
	if d.Bit() {
		return d.readFibonacciRange()
	}
	return d.readVariableBitfield()
}

// readOptimizedIntRange reads a 16-bit maximum ID and one flag bit
// selecting between an integer range and a bitfield of max bits.
func (d *dataReader) readOptimizedIntRange() IDSet {
	max := d.Uint16(16)
	if d.Bit() {
		return d.readIntRange()
	}
	return d.readBitfield(uint(max))
}

// maxSetIDs caps how many IDs a single range field may emit. IDs are 16
// bits wide, so any well-formed range describes at most 65536 distinct
// IDs; only crafted overlapping ranges can emit more, and capping the
// emission never moves the bit cursor.
const maxSetIDs = 1 << 16

// rangeEntry is one keyed record of an array-of-ranges field.
type rangeEntry struct {
	key       uint8
	rangeType uint8
	ids       IDSet
}

// readRangeArray reads a 12-bit count of {key, range type, ID set} records.
// read selects the inner ID-set encoding, which differs between the TCF EU
// and TCF Canada publisher-restriction fields.
func (d *dataReader) readRangeArray(keyBits, typeBits uint, read func(*dataReader) IDSet) []rangeEntry {
	n := d.Uint16(12)
	var entries []rangeEntry
	for i := 0; i < int(n); i++ {
		if d.bad() {
			break
		}
		e := rangeEntry{
			key:       d.Uint8(keyBits),
			rangeType: d.Uint8(typeBits),
		}
		e.ids = read(d)
		entries = append(entries, e)
	}
	return entries
}
