package gpp

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTCFCAV1FullString decodes a two-section string carrying a TCF Canada
// section with a publisher-purposes segment next to a US Privacy section.
func TestTCFCAV1FullString(t *testing.T) {
	g, err := Parse("DBABjw~" + tcfCAV1Core + "." + tcfCAV1PubPurposes + "~1YNN")
	require.NoError(t, err)
	assert.Equal(t, []SectionID{SectionTCFCAV1, SectionUSPV1}, g.SectionIDs())

	tcf, err := Decode[TCFCAV1](g)
	require.NoError(t, err)
	created := time.Unix(1650412800, 0).UTC()
	assert.Equal(t, TCFCAV1{
		Created:               created,
		LastUpdated:           created,
		CMPID:                 31,
		CMPVersion:            640,
		ConsentScreen:         1,
		ConsentLanguage:       "EN",
		VendorListVersion:     126,
		TCFPolicyVersion:      2,
		IsServiceSpecific:     true,
		PublisherRestrictions: []PublisherRestriction{},
		PublisherPurposes:     &TCFPublisherPurposes{},
	}, tcf)

	usp, err := Decode[USPV1](g)
	require.NoError(t, err)
	assert.Equal(t, USPV1{
		OptOutNotice:           FlagYes,
		OptOutSale:             FlagNo,
		LSPACoveredTransaction: FlagNo,
	}, usp)
}

// TestTCFCAV1Synthetic decodes a hand-assembled core exercising both vendor
// codings and a fibonacci-coded publisher restriction.
func TestTCFCAV1Synthetic(t *testing.T) {
	body := b64BitString(t,
		"000001"+ // version 1
			" 001111010111110001010001011111000000"+ // created
			" 001111010111110001010001011111000000"+ // last updated
			" 000000001010"+ // CMP ID 10
			" 000000000010"+ // CMP version 2
			" 000001"+ // consent screen 1
			" 000101 010001"+ // language FR
			" 000000000101"+ // vendor list version 5
			" 000010"+ // TCF policy version 2
			" 1 0"+ // service specific, standard stacks
			" 100000000000000000000001"+ // express purposes 1 and 24
			" 010000000000000000000000"+ // implied purpose 2
			// Vendor express consent: max 3, range coding, group 2-3.
			" 0000000000000011 1 000000000001 1 0000000000000010 0000000000000011"+
			// Vendor implied consent: max 1, bitfield coding.
			" 0000000000000001 0 1"+
			// One restriction: purpose 2 requires consent, fibonacci range.
			" 000000000001 000010 01 1 000000000010 0 11 0 011")
	s, err := decodeSection(SectionTCFCAV1, body)
	require.NoError(t, err)

	created := time.Unix(1650492000, 0).UTC()
	want := TCFCAV1{
		Created:                created,
		LastUpdated:            created,
		CMPID:                  10,
		CMPVersion:             2,
		ConsentScreen:          1,
		ConsentLanguage:        "FR",
		VendorListVersion:      5,
		TCFPolicyVersion:       2,
		IsServiceSpecific:      true,
		PurposesExpressConsent: IDSet{1, 24},
		PurposesImpliedConsent: IDSet{2},
		VendorExpressConsent:   IDSet{2, 3},
		VendorImpliedConsent:   IDSet{1},
		PublisherRestrictions: []PublisherRestriction{
			{PurposeID: 2, RestrictionType: RestrictionRequireConsent, VendorIDs: IDSet{1, 3}},
		},
	}
	assert.Equal(t, want, s)
}

// TestTCFCAV1DisclosedVendors verifies the optional disclosed-vendors
// segment, which uses the fibonacci-coded optimized range.
func TestTCFCAV1DisclosedVendors(t *testing.T) {
	disclosed := b64BitString(t, "001 1 000000000010 0 011 0 1011") // vendors 2 and 6
	s, err := decodeSection(SectionTCFCAV1, tcfCAV1Core+"."+disclosed)
	require.NoError(t, err)
	tcf := s.(TCFCAV1)
	require.NotNil(t, tcf.DisclosedVendors)
	assert.Equal(t, IDSet{2, 6}, *tcf.DisclosedVendors)
	assert.Nil(t, tcf.PublisherPurposes)
}

// TestTCFCAV1SegmentErrors verifies segment tags outside the Canada schema
// are rejected. Tag 2 is allowed-vendors in TCF EU but unknown here.
func TestTCFCAV1SegmentErrors(t *testing.T) {
	t.Run("unknown segment tag", func(t *testing.T) {
		_, err := decodeSection(SectionTCFCAV1, tcfCAV1Core+"."+b64BitString(t, "010"))
		var unkErr *UnknownSegmentTypeError
		require.ErrorAs(t, err, &unkErr)
		assert.Equal(t, uint8(2), unkErr.SegmentType)
	})

	t.Run("duplicate segment", func(t *testing.T) {
		_, err := decodeSection(SectionTCFCAV1,
			tcfCAV1Core+"."+tcfCAV1PubPurposes+"."+tcfCAV1PubPurposes)
		var dupErr *DuplicateSegmentTypeError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, uint8(3), dupErr.SegmentType)
	})
}

// TestTCFCAV1Errors verifies version and truncation failures.
func TestTCFCAV1Errors(t *testing.T) {
	t.Run("wrong version", func(t *testing.T) {
		_, err := decodeSection(SectionTCFCAV1, "CAAA")
		var verErr *InvalidSectionVersionError
		require.ErrorAs(t, err, &verErr)
		assert.Equal(t, uint8(1), verErr.Expected)
		assert.Equal(t, uint8(2), verErr.Found)
	})

	t.Run("truncated core", func(t *testing.T) {
		_, err := decodeSection(SectionTCFCAV1, tcfCAV1Core[:10])
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("empty body", func(t *testing.T) {
		_, err := decodeSection(SectionTCFCAV1, "")
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}
