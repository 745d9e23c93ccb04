package gpp

// RestrictionType is a publisher restriction on how vendors may process a
// purpose.
type RestrictionType uint8

const (
	RestrictionNotAllowed                RestrictionType = 0
	RestrictionRequireConsent            RestrictionType = 1
	RestrictionRequireLegitimateInterest RestrictionType = 2
	RestrictionUndefined                 RestrictionType = 3
)

// PublisherRestriction narrows how the listed vendors may handle one
// purpose.
type PublisherRestriction struct {
	PurposeID       uint8           `json:"purposeId"`
	RestrictionType RestrictionType `json:"restrictionType"`
	VendorIDs       IDSet           `json:"vendorIds"`
}

// publisherRestrictions maps raw range entries onto typed restrictions.
func publisherRestrictions(entries []rangeEntry) []PublisherRestriction {
	out := make([]PublisherRestriction, len(entries))
	for i, e := range entries {
		out[i] = PublisherRestriction{
			PurposeID:       e.key,
			RestrictionType: RestrictionType(e.rangeType),
			VendorIDs:       e.ids,
		}
	}
	return out
}

// TCFPublisherPurposes is the publisher-purposes transparency and consent
// segment, shared by the TCF EU and TCF Canada sections. Custom purposes
// are publisher-defined; their count bounds the two custom bitfields.
type TCFPublisherPurposes struct {
	PurposeConsents                  IDSet `json:"purposeConsents"`
	PurposeLegitimateInterests       IDSet `json:"purposeLegitimateInterests"`
	NumCustomPurposes                uint8 `json:"numCustomPurposes"`
	CustomPurposeConsents            IDSet `json:"customPurposeConsents"`
	CustomPurposeLegitimateInterests IDSet `json:"customPurposeLegitimateInterests"`
}

// publisherPurposesSegment returns the decoder for an optional
// publisher-purposes segment, writing the result through dst.
func publisherPurposesSegment(dst **TCFPublisherPurposes) func(*dataReader) error {
	return func(d *dataReader) error {
		var p TCFPublisherPurposes
		p.PurposeConsents = d.readBitfield(24)
		p.PurposeLegitimateInterests = d.readBitfield(24)
		p.NumCustomPurposes = d.Uint8(6)
		p.CustomPurposeConsents = d.readBitfield(uint(p.NumCustomPurposes))
		p.CustomPurposeLegitimateInterests = d.readBitfield(uint(p.NumCustomPurposes))
		if err := d.check(); err != nil {
			return err
		}
		*dst = &p
		return nil
	}
}

// vendorsSegment returns the decoder for an optional vendor-list segment,
// reading the ID set with read and writing it through dst.
func vendorsSegment(dst **IDSet, read func(*dataReader) IDSet) func(*dataReader) error {
	return func(d *dataReader) error {
		ids := read(d)
		if err := d.check(); err != nil {
			return err
		}
		*dst = &ids
		return nil
	}
}
