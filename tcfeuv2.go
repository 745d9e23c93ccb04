package gpp

import "time"

// TCFEUV2 is the IAB Europe TCF v2 consent section. The core segment is
// mandatory; the disclosed-vendors, allowed-vendors and publisher-purposes
// segments may follow in any order and are nil when absent.
type TCFEUV2 struct {
	Created                    time.Time              `json:"created"`
	LastUpdated                time.Time              `json:"lastUpdated"`
	CMPID                      uint16                 `json:"cmpId"`
	CMPVersion                 uint16                 `json:"cmpVersion"`
	ConsentScreen              uint8                  `json:"consentScreen"`
	ConsentLanguage            string                 `json:"consentLanguage"`
	VendorListVersion          uint16                 `json:"vendorListVersion"`
	PolicyVersion              uint8                  `json:"policyVersion"`
	IsServiceSpecific          bool                   `json:"isServiceSpecific"`
	UseNonStandardStacks       bool                   `json:"useNonStandardStacks"`
	SpecialFeatureOptIns       IDSet                  `json:"specialFeatureOptIns"`
	PurposeConsents            IDSet                  `json:"purposeConsents"`
	PurposeLegitimateInterests IDSet                  `json:"purposeLegitimateInterests"`
	PurposeOneTreatment        bool                   `json:"purposeOneTreatment"`
	PublisherCountryCode       string                 `json:"publisherCountryCode"`
	VendorConsents             IDSet                  `json:"vendorConsents"`
	VendorLegitimateInterests  IDSet                  `json:"vendorLegitimateInterests"`
	PublisherRestrictions      []PublisherRestriction `json:"publisherRestrictions"`

	DisclosedVendors  *IDSet                `json:"disclosedVendors,omitempty"`
	AllowedVendors    *IDSet                `json:"allowedVendors,omitempty"`
	PublisherPurposes *TCFPublisherPurposes `json:"publisherPurposes,omitempty"`
}

// ID returns SectionTCFEUV2.
func (TCFEUV2) ID() SectionID { return SectionTCFEUV2 }

func decodeTCFEUV2(body string) (TCFEUV2, error) {
	var s TCFEUV2
	core := func(d *dataReader) error {
		if err := d.readVersion(2); err != nil {
			return err
		}
		s.Created = d.readTime()
		s.LastUpdated = d.readTime()
		s.CMPID = d.Uint16(12)
		s.CMPVersion = d.Uint16(12)
		s.ConsentScreen = d.Uint8(6)
		s.ConsentLanguage = d.readString(2)
		s.VendorListVersion = d.Uint16(12)
		s.PolicyVersion = d.Uint8(6)
		s.IsServiceSpecific = d.Bit()
		s.UseNonStandardStacks = d.Bit()
		s.SpecialFeatureOptIns = d.readBitfield(12)
		s.PurposeConsents = d.readBitfield(24)
		s.PurposeLegitimateInterests = d.readBitfield(24)
		s.PurposeOneTreatment = d.Bit()
		s.PublisherCountryCode = d.readString(2)
		s.VendorConsents = d.readOptimizedIntRange()
		s.VendorLegitimateInterests = d.readOptimizedIntRange()
		s.PublisherRestrictions = publisherRestrictions(
			d.readRangeArray(6, 2, (*dataReader).readOptimizedIntRange))
		return d.check()
	}
	err := decodeSegmented(body, core, segmentSchema{
		tagBits: 3,
		decoders: map[uint8]func(*dataReader) error{
			1: vendorsSegment(&s.DisclosedVendors, (*dataReader).readOptimizedIntRange),
			2: vendorsSegment(&s.AllowedVendors, (*dataReader).readOptimizedIntRange),
			3: publisherPurposesSegment(&s.PublisherPurposes),
		},
	})
	return s, err
}
