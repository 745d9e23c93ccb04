package gpp_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gpp "github.com/noirotm/iabgpp-go"
)

// Live section payloads captured from shipping consent platforms.
const (
	tcfEUV2Section = "CPXxRfAPXxRfAAfKABENB-CgAAAAAAAAAAYgAAAAAAAA"
	tcfCAV1Section = "BPXuQIAPXuQIAAfKABENB-CgAAAAAAAAAAAAAAAA.YAAAAAAAAAA"
	usNatSection   = "BVRmYYYblW.Y"
)

// TestParseAndDecode walks the exported surface end to end: parse a
// two-section string, pull each section out by type, and miss on one the
// string does not carry.
func TestParseAndDecode(t *testing.T) {
	g, err := gpp.Parse("DBABjw~" + tcfCAV1Section + "~1YNN")
	require.NoError(t, err)
	assert.Equal(t, []gpp.SectionID{gpp.SectionTCFCAV1, gpp.SectionUSPV1}, g.SectionIDs())

	ca, err := gpp.Decode[gpp.TCFCAV1](g)
	require.NoError(t, err)
	assert.Equal(t, uint16(31), ca.CMPID)
	assert.NotNil(t, ca.PublisherPurposes)

	usp, err := gpp.Decode[gpp.USPV1](g)
	require.NoError(t, err)
	assert.Equal(t, gpp.FlagYes, usp.OptOutNotice)
	assert.Equal(t, gpp.FlagNo, usp.OptOutSale)
	assert.Equal(t, gpp.FlagNo, usp.LSPACoveredTransaction)

	_, err = gpp.Decode[gpp.TCFEUV2](g)
	var missErr *gpp.MissingSectionError
	require.ErrorAs(t, err, &missErr)
	assert.Equal(t, gpp.SectionTCFEUV2, missErr.ID)
}

// TestDecodeAllSections verifies the bulk decoder yields one typed section
// per declared ID, in header order.
func TestDecodeAllSections(t *testing.T) {
	g, err := gpp.Parse("DBACNY~" + tcfEUV2Section + "~1YNN")
	require.NoError(t, err)

	results := g.DecodeAll()
	require.Len(t, results, 2)
	for _, r := range results {
		require.NoError(t, r.Err)
		assert.Equal(t, r.ID, r.Section.ID())
	}

	tcf, ok := results[0].Section.(gpp.TCFEUV2)
	require.True(t, ok)
	assert.Equal(t, "DE", tcf.PublisherCountryCode)
	assert.Equal(t, uint16(31), tcf.CMPID)
}

// TestUSNatEndToEnd decodes a national US section with its GPC segment and
// runs the MSPA validators over it.
func TestUSNatEndToEnd(t *testing.T) {
	g, err := gpp.Parse("DBABL~" + usNatSection)
	require.NoError(t, err)

	usnat, err := gpp.Decode[gpp.USNat](g)
	require.NoError(t, err)
	assert.True(t, usnat.MspaCoveredTransaction)
	require.NotNil(t, usnat.GPC)
	assert.True(t, *usnat.GPC)
	assert.Empty(t, usnat.Validate())
}

// TestSectionJSON pins the JSON field names sections marshal under, and
// that absent optional segments stay out of the output.
func TestSectionJSON(t *testing.T) {
	g, err := gpp.Parse("DBACNY~" + tcfEUV2Section + "~1YNN")
	require.NoError(t, err)

	usp, err := gpp.Decode[gpp.USPV1](g)
	require.NoError(t, err)
	b, err := json.Marshal(usp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"optOutNotice":1,"optOutSale":2,"lspaCoveredTransaction":2}`, string(b))

	tcf, err := gpp.Decode[gpp.TCFEUV2](g)
	require.NoError(t, err)
	b, err = json.Marshal(tcf)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"publisherCountryCode":"DE"`)
	assert.NotContains(t, string(b), "disclosedVendors")
	assert.NotContains(t, string(b), "allowedVendors")
	assert.NotContains(t, string(b), "publisherPurposes")
}
