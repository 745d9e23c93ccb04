package gpp

import "time"

// TCFCAV1 is the IAB Canada TCF v1 consent section. The layout tracks TCF
// EU v2 but has no special-features bitfield and splits consent into
// express and implied. Its core encodes vendors with the optimized integer
// range while the optional disclosed-vendors segment uses the optimized
// range; both encodings are kept as the wire has them.
type TCFCAV1 struct {
	Created                time.Time              `json:"created"`
	LastUpdated            time.Time              `json:"lastUpdated"`
	CMPID                  uint16                 `json:"cmpId"`
	CMPVersion             uint16                 `json:"cmpVersion"`
	ConsentScreen          uint8                  `json:"consentScreen"`
	ConsentLanguage        string                 `json:"consentLanguage"`
	VendorListVersion      uint16                 `json:"vendorListVersion"`
	TCFPolicyVersion       uint8                  `json:"tcfPolicyVersion"`
	IsServiceSpecific      bool                   `json:"isServiceSpecific"`
	UseNonStandardStacks   bool                   `json:"useNonStandardStacks"`
	PurposesExpressConsent IDSet                  `json:"purposesExpressConsent"`
	PurposesImpliedConsent IDSet                  `json:"purposesImpliedConsent"`
	VendorExpressConsent   IDSet                  `json:"vendorExpressConsent"`
	VendorImpliedConsent   IDSet                  `json:"vendorImpliedConsent"`
	PublisherRestrictions  []PublisherRestriction `json:"publisherRestrictions"`

	DisclosedVendors  *IDSet                `json:"disclosedVendors,omitempty"`
	PublisherPurposes *TCFPublisherPurposes `json:"publisherPurposes,omitempty"`
}

// ID returns SectionTCFCAV1.
func (TCFCAV1) ID() SectionID { return SectionTCFCAV1 }

func decodeTCFCAV1(body string) (TCFCAV1, error) {
	var s TCFCAV1
	core := func(d *dataReader) error {
		if err := d.readVersion(1); err != nil {
			return err
		}
		s.Created = d.readTime()
		s.LastUpdated = d.readTime()
		s.CMPID = d.Uint16(12)
		s.CMPVersion = d.Uint16(12)
		s.ConsentScreen = d.Uint8(6)
		s.ConsentLanguage = d.readString(2)
		s.VendorListVersion = d.Uint16(12)
		s.TCFPolicyVersion = d.Uint8(6)
		s.IsServiceSpecific = d.Bit()
		s.UseNonStandardStacks = d.Bit()
		s.PurposesExpressConsent = d.readBitfield(24)
		s.PurposesImpliedConsent = d.readBitfield(24)
		s.VendorExpressConsent = d.readOptimizedIntRange()
		s.VendorImpliedConsent = d.readOptimizedIntRange()
		s.PublisherRestrictions = publisherRestrictions(
			d.readRangeArray(6, 2, (*dataReader).readOptimizedRange))
		return d.check()
	}
	err := decodeSegmented(body, core, segmentSchema{
		tagBits: 3,
		decoders: map[uint8]func(*dataReader) error{
			1: vendorsSegment(&s.DisclosedVendors, (*dataReader).readOptimizedRange),
			3: publisherPurposesSegment(&s.PublisherPurposes),
		},
	})
	return s, err
}
