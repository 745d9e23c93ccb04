package gpp

import "time"

// TCFEUV1 is the legacy IAB Europe TCF v1 consent section. The body is a
// single bit-packed payload with no optional segments.
type TCFEUV1 struct {
	Created           time.Time `json:"created"`
	LastUpdated       time.Time `json:"lastUpdated"`
	CMPID             uint16    `json:"cmpId"`
	CMPVersion        uint16    `json:"cmpVersion"`
	ConsentScreen     uint8     `json:"consentScreen"`
	ConsentLanguage   string    `json:"consentLanguage"`
	VendorListVersion uint16    `json:"vendorListVersion"`
	PurposesAllowed   IDSet     `json:"purposesAllowed"`
	MaxVendorID       uint16    `json:"maxVendorId"`
	VendorConsents    IDSet     `json:"vendorConsents"`
}

// ID returns SectionTCFEUV1.
func (TCFEUV1) ID() SectionID { return SectionTCFEUV1 }

func decodeTCFEUV1(body string) (TCFEUV1, error) {
	var s TCFEUV1
	err := decodeUnsegmented(body, func(d *dataReader) error {
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
		s.PurposesAllowed = d.readBitfield(24)
		s.MaxVendorID = d.Uint16(16)
		if !d.Bit() {
			s.VendorConsents = d.readBitfield(uint(s.MaxVendorID))
			return d.check()
		}
		// Range coding lists exceptions: with defaultConsent set, every
		// vendor up to MaxVendorID consents except the listed IDs.
		defaultConsent := d.Bit()
		ids := d.readIntRange()
		if err := d.check(); err != nil {
			return err
		}
		if defaultConsent {
			ids = ids.complement(s.MaxVendorID)
		}
		s.VendorConsents = ids
		return nil
	})
	return s, err
}
