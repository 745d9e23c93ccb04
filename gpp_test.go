package gpp

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference section payloads, decoded by hand from the bit layout. The TCF
// EU string is the documented GPP example; the Canada string is its Quebec
// counterpart with a trailing publisher-purposes segment.
const (
	tcfEUV2Core        = "CPXxRfAPXxRfAAfKABENB-CgAAAAAAAAAAYgAAAAAAAA"
	tcfCAV1Core        = "BPXuQIAPXuQIAAfKABENB-CgAAAAAAAAAAAAAAAA"
	tcfCAV1PubPurposes = "YAAAAAAAAAA"
)

// fibCodes maps section IDs to their Fibonacci codes, terminator included.
var fibCodes = map[SectionID]string{
	1: "11", 2: "011", 3: "0011", 4: "1011", 5: "00011",
	6: "10011", 7: "01011", 8: "000011", 9: "100011", 10: "010011",
	11: "001011", 12: "101011", 13: "0000011", 14: "1000011", 15: "0100011",
	16: "0010011", 17: "1010011", 18: "0001011", 19: "1001011", 20: "0101011",
	21: "00000011", 22: "10000011",
}

// gppOne builds a GPP string declaring a single section id with body.
func gppOne(t *testing.T, id SectionID, body string) string {
	t.Helper()
	code, ok := fibCodes[id]
	require.True(t, ok, "no Fibonacci code for section %d", id)
	header := b64BitString(t, "000011 000001 000000000001 0 "+code)
	return header + "~" + body
}

// TestGPPOneMatchesKnownHeaders pins the synthetic header builder against
// headers seen in the wild.
func TestGPPOneMatchesKnownHeaders(t *testing.T) {
	assert.Equal(t, "DBABM~x", gppOne(t, SectionTCFEUV2, "x"))
	assert.Equal(t, "DBABBg~x", gppOne(t, SectionUSCA, "x"))
	assert.Equal(t, "DBABRg~x", gppOne(t, SectionUSVA, "x"))
}

// TestParse verifies header decoding against strings produced by consent
// platforms. Parse checks the framing only, so placeholder bodies stand in
// where the payload is not under test.
func TestParse(t *testing.T) {
	cases := []struct {
		gpp string
		ids []SectionID
	}{
		{"DBAA", []SectionID{}},
		{"DBABM~" + tcfEUV2Core, []SectionID{SectionTCFEUV2}},
		// Trailing padding bits after the last range entry are ignored.
		{"DBABMA~" + tcfEUV2Core, []SectionID{SectionTCFEUV2}},
		{"DBABTYA~1YNN", []SectionID{SectionUSPV1}},
		{"DBACNY~" + tcfEUV2Core + "~1YNN", []SectionID{SectionTCFEUV2, SectionUSPV1}},
		// A grouped header entry: offset 5, count 1 declares sections 5 and 6.
		{"DBABjw~" + tcfCAV1Core + "~1YNN", []SectionID{SectionTCFCAV1, SectionUSPV1}},
		// A grouped entry spanning the US state block.
		{"DBABrGA~A~B~C~D~E~F", []SectionID{
			SectionUSNat, SectionUSCA, SectionUSVA, SectionUSCO, SectionUSUT, SectionUSCT,
		}},
	}
	for _, c := range cases {
		g, err := Parse(c.gpp)
		require.NoError(t, err, "gpp %q", c.gpp)
		assert.Equal(t, c.ids, g.SectionIDs(), "gpp %q", c.gpp)
	}
}

// TestParseErrors verifies the header error taxonomy.
func TestParseErrors(t *testing.T) {
	t.Run("empty string", func(t *testing.T) {
		_, err := Parse("")
		assert.ErrorIs(t, err, ErrNoHeader)
	})

	t.Run("body without header", func(t *testing.T) {
		_, err := Parse("~1YNN")
		assert.ErrorIs(t, err, ErrNoHeader)
	})

	t.Run("bad base64", func(t *testing.T) {
		_, err := Parse("DBA!M")
		var b64Err *Base64Error
		require.ErrorAs(t, err, &b64Err)
		assert.Equal(t, 3, b64Err.Offset)
		assert.Equal(t, byte('!'), b64Err.Char)
	})

	t.Run("bare TCF string", func(t *testing.T) {
		// A TCF EU v2 payload starts with type 2, not the GPP header type.
		_, err := Parse(tcfEUV2Core)
		var typeErr *InvalidHeaderTypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, uint8(2), typeErr.Found)
	})

	t.Run("unsupported version", func(t *testing.T) {
		_, err := Parse("DCAA")
		var verErr *InvalidVersionError
		require.ErrorAs(t, err, &verErr)
		assert.Equal(t, uint8(2), verErr.Found)
	})

	t.Run("truncated header", func(t *testing.T) {
		for _, in := range []string{"D", "DB"} {
			_, err := Parse(in)
			assert.ErrorIs(t, err, io.ErrUnexpectedEOF, "input %q", in)
		}
	})

	t.Run("section count overruns payload", func(t *testing.T) {
		// "DBGBM" declares 385 range entries in a five-character header.
		_, err := Parse("DBGBM")
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("unknown section ID", func(t *testing.T) {
		// "DBABIY" declares section 23, past the registry.
		_, err := Parse("DBABIY~AA")
		var secErr *UnsupportedSectionError
		require.ErrorAs(t, err, &secErr)
		assert.Equal(t, uint16(23), secErr.ID)
	})

	t.Run("section count mismatch", func(t *testing.T) {
		cases := []struct {
			gpp           string
			ids, sections int
		}{
			{"DBABM", 1, 0},
			{"DBACNY~" + tcfEUV2Core, 2, 1},
			{"DBABTYA~1YNN~extra", 1, 2},
			{"DBAA~1YNN", 0, 1},
		}
		for _, c := range cases {
			_, err := Parse(c.gpp)
			var cntErr *SectionCountMismatchError
			require.ErrorAs(t, err, &cntErr, "gpp %q", c.gpp)
			assert.Equal(t, c.ids, cntErr.IDs, "gpp %q", c.gpp)
			assert.Equal(t, c.sections, cntErr.Sections, "gpp %q", c.gpp)
		}
	})
}

// TestGPPStringSection verifies raw body lookup by section ID.
func TestGPPStringSection(t *testing.T) {
	g, err := Parse("DBACNY~" + tcfEUV2Core + "~1YNN")
	require.NoError(t, err)

	body, ok := g.Section(SectionUSPV1)
	assert.True(t, ok)
	assert.Equal(t, "1YNN", body)

	body, ok = g.Section(SectionTCFEUV2)
	assert.True(t, ok)
	assert.Equal(t, tcfEUV2Core, body)

	_, ok = g.Section(SectionUSNat)
	assert.False(t, ok)
}

// TestDecodeSection verifies single-section decoding and the missing-section
// error.
func TestDecodeSection(t *testing.T) {
	g, err := Parse("DBABTYA~1YNN")
	require.NoError(t, err)

	s, err := g.DecodeSection(SectionUSPV1)
	require.NoError(t, err)
	assert.IsType(t, USPV1{}, s)

	_, err = g.DecodeSection(SectionTCFEUV2)
	var missing *MissingSectionError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, SectionTCFEUV2, missing.ID)
}

// TestDecodeSectionReserved verifies the reserved registry IDs parse in a
// header but refuse to decode.
func TestDecodeSectionReserved(t *testing.T) {
	g, err := Parse(gppOne(t, SectionGPPHeader, "AA"))
	require.NoError(t, err)

	_, err = g.DecodeSection(SectionGPPHeader)
	var secErr *UnsupportedSectionError
	require.ErrorAs(t, err, &secErr)
	assert.Equal(t, uint16(3), secErr.ID)
}

// TestDecodeAll verifies sections decode element-wise: a bad section lands
// in its own result and does not stop its siblings.
func TestDecodeAll(t *testing.T) {
	// "AAAA" carries section version 0, so the TCF EU slot fails.
	g, err := Parse("DBACNY~AAAA~1YNN")
	require.NoError(t, err)

	results := g.DecodeAll()
	require.Len(t, results, 2)

	assert.Equal(t, SectionTCFEUV2, results[0].ID)
	assert.Nil(t, results[0].Section)
	var verErr *InvalidSectionVersionError
	require.ErrorAs(t, results[0].Err, &verErr)
	assert.Equal(t, uint8(0), verErr.Found)

	assert.Equal(t, SectionUSPV1, results[1].ID)
	require.NoError(t, results[1].Err)
	usp, ok := results[1].Section.(USPV1)
	require.True(t, ok)
	assert.Equal(t, FlagYes, usp.OptOutNotice)
	assert.Equal(t, FlagNo, usp.OptOutSale)
	assert.Equal(t, FlagNo, usp.LSPACoveredTransaction)
}

// TestDecodeGeneric verifies the typed decode entry point.
func TestDecodeGeneric(t *testing.T) {
	g, err := Parse("DBACNY~" + tcfEUV2Core + "~1YNN")
	require.NoError(t, err)

	tcf, err := Decode[TCFEUV2](g)
	require.NoError(t, err)
	assert.Equal(t, uint16(31), tcf.CMPID)

	usp, err := Decode[USPV1](g)
	require.NoError(t, err)
	assert.Equal(t, FlagYes, usp.OptOutNotice)

	_, err = Decode[USNat](g)
	var missing *MissingSectionError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, SectionUSNat, missing.ID)
}

// TestDecodeGenericInterface verifies instantiating Decode with the Section
// interface itself comes back as an error rather than a nil dereference.
func TestDecodeGenericInterface(t *testing.T) {
	g, err := Parse("DBACNY~" + tcfEUV2Core + "~1YNN")
	require.NoError(t, err)

	_, err = Decode[Section](g)
	require.Error(t, err)
}

// TestSectionIDString verifies the registry names behind the Stringer.
func TestSectionIDString(t *testing.T) {
	assert.Equal(t, "tcfeuv2", SectionTCFEUV2.String())
	assert.Equal(t, "uspv1", SectionUSPV1.String())
	assert.Equal(t, "usnj", SectionUSNJ.String())
	assert.Equal(t, "section 99", SectionID(99).String())
}

func BenchmarkParse(b *testing.B) {
	s := "DBACNY~" + tcfEUV2Core + "~1YNN"
	for i := 0; i < b.N; i++ {
		if _, err := Parse(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeAll(b *testing.B) {
	g, err := Parse("DBACNY~" + tcfEUV2Core + "~1YNN")
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		for _, r := range g.DecodeAll() {
			if r.Err != nil {
				b.Fatal(r.Err)
			}
		}
	}
}
