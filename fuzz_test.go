package gpp

import (
	"testing"
)

// FuzzParse feeds arbitrary strings to Parse.
// The invariant is that it must never panic, and that a successful parse is
// internally consistent: one body per declared ID, one decode result per
// section.
// Run with: go test -fuzz=FuzzParse -fuzztime=60s ./...
func FuzzParse(f *testing.F) {
	// Seed corpus: known-good strings for each section family and common
	// malformed inputs.
	seeds := []string{
		"DBABM~" + tcfEUV2Core,
		"DBABjw~" + tcfCAV1Core + "." + tcfCAV1PubPurposes + "~1YNN",
		"DBABL~BVRmYYYblW",
		"DBACNY~AAAA~1YNN",
		"DBAA",
		"DBABM",
		"",
		"~~",
		"🙂",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		// Must not panic.
		g, err := Parse(s)
		if err != nil {
			return
		}
		ids := g.SectionIDs()
		for _, id := range ids {
			if _, ok := g.Section(id); !ok {
				t.Fatalf("Parse(%q): declared section %s has no body", s, id)
			}
		}
		results := g.DecodeAll()
		if len(results) != len(ids) {
			t.Fatalf("Parse(%q): %d decode results for %d sections", s, len(results), len(ids))
		}
		for _, r := range results {
			if r.Err == nil && r.Section == nil {
				t.Fatalf("Parse(%q): section %s decoded to nil with nil error", s, r.ID)
			}
			if r.Err == nil && r.Section.ID() != r.ID {
				t.Fatalf("Parse(%q): section %s decoded as %s", s, r.ID, r.Section.ID())
			}
		}
	})
}

// FuzzDecodeSection feeds arbitrary bodies to every section decoder.
// The invariant: no panic, and a decoded section reports the ID it was
// dispatched under.
// Run with: go test -fuzz=FuzzDecodeSection -fuzztime=60s ./...
func FuzzDecodeSection(f *testing.F) {
	f.Add(uint8(SectionTCFEUV2), tcfEUV2Core)
	f.Add(uint8(SectionTCFCAV1), tcfCAV1Core)
	f.Add(uint8(SectionUSPV1), "1YNN")
	f.Add(uint8(SectionUSNat), "BVRmYYYblW")
	f.Add(uint8(SectionUSVA), "")
	f.Add(uint8(SectionUSNat), "BVRmYYYblW.Y")

	f.Fuzz(func(t *testing.T, id uint8, body string) {
		// Must not panic.
		sec, err := decodeSection(SectionID(id), body)
		if err != nil {
			return
		}
		if sec == nil {
			t.Fatalf("decodeSection(%s, %q): nil section with nil error", SectionID(id), body)
		}
		if sec.ID() != SectionID(id) {
			t.Fatalf("decodeSection(%s, %q): section reports ID %s", SectionID(id), body, sec.ID())
		}
	})
}

// FuzzRangeCoding feeds arbitrary bytes to each range field decoder.
// The invariant: no panic, and every decoded set is strictly ascending and
// never larger than the 16-bit ID space.
// Run with: go test -fuzz=FuzzRangeCoding -fuzztime=60s ./...
func FuzzRangeCoding(f *testing.F) {
	seeds := [][]byte{
		// Two single Fibonacci entries, offsets 2 and 4.
		{0x00, 0x23, 0x58},
		// One integer group entry spanning 1 through 65535.
		{0x00, 0x18, 0x00, 0x0F, 0xFF, 0xF8},
		{},
		{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
		make([]byte, 64),
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		for _, read := range []func(*dataReader) IDSet{
			(*dataReader).readIntRange,
			(*dataReader).readFibonacciRange,
			(*dataReader).readVariableBitfield,
			(*dataReader).readOptimizedRange,
			(*dataReader).readOptimizedIntRange,
		} {
			// Must not panic.
			ids := read(newDataReader(data))
			if len(ids) > maxSetIDs {
				t.Fatalf("range decoder emitted %d IDs", len(ids))
			}
			for i := 1; i < len(ids); i++ {
				if ids[i-1] >= ids[i] {
					t.Fatalf("set not strictly ascending: %d then %d", ids[i-1], ids[i])
				}
			}
		}
	})
}
