package gpp

// USIA is the Iowa (ICDPA) section. Iowa pairs the Utah-style
// sensitive-data notice with a sharing notice and carries a GPC segment;
// sensitive data is opt-out based rather than consent based there, hence
// the notice's name.
type USIA struct {
	SharingNotice                   Notice    `json:"sharingNotice"`
	SaleOptOutNotice                Notice    `json:"saleOptOutNotice"`
	TargetedAdvertisingOptOutNotice Notice    `json:"targetedAdvertisingOptOutNotice"`
	SensitiveDataOptOutNotice       Notice    `json:"sensitiveDataOptOutNotice"`
	SaleOptOut                      OptOut    `json:"saleOptOut"`
	TargetedAdvertisingOptOut       OptOut    `json:"targetedAdvertisingOptOut"`
	SensitiveDataProcessing         []Consent `json:"sensitiveDataProcessing"`
	KnownChildSensitiveDataConsents Consent   `json:"knownChildSensitiveDataConsents"`
	MspaCoveredTransaction          bool      `json:"mspaCoveredTransaction"`
	MspaOptOutOptionMode            MSPAMode  `json:"mspaOptOutOptionMode"`
	MspaServiceProviderMode         MSPAMode  `json:"mspaServiceProviderMode"`
	GPC                             *bool     `json:"gpc,omitempty"`
}

// ID returns SectionUSIA.
func (USIA) ID() SectionID { return SectionUSIA }

func decodeUSIA(body string) (USIA, error) {
	var s USIA
	core := func(d *dataReader) error {
		if err := d.readVersion(1); err != nil {
			return err
		}
		s.SharingNotice = d.readNotice()
		s.SaleOptOutNotice = d.readNotice()
		s.TargetedAdvertisingOptOutNotice = d.readNotice()
		s.SensitiveDataOptOutNotice = d.readNotice()
		s.SaleOptOut = d.readOptOut()
		s.TargetedAdvertisingOptOut = d.readOptOut()
		s.SensitiveDataProcessing = d.readConsents(8)
		s.KnownChildSensitiveDataConsents = d.readConsent()
		covered := d.Uint8(2)
		s.MspaOptOutOptionMode = d.readMode()
		s.MspaServiceProviderMode = d.readMode()
		if err := d.check(); err != nil {
			return err
		}
		var err error
		s.MspaCoveredTransaction, err = mspaCovered(covered)
		return err
	}
	err := decodeSegmented(body, core, usSegments(&s.GPC))
	return s, err
}

// Validate checks the MSPA interlocks over the decoded record.
func (s USIA) Validate() []ValidationError {
	var errs []ValidationError
	errs = checkNoticeOptOut(errs, "SaleOptOutNotice", s.SaleOptOutNotice, "SaleOptOut", s.SaleOptOut)
	errs = checkNoticeOptOut(errs, "TargetedAdvertisingOptOutNotice", s.TargetedAdvertisingOptOutNotice, "TargetedAdvertisingOptOut", s.TargetedAdvertisingOptOut)
	errs = checkModeExclusive(errs, s.MspaOptOutOptionMode, s.MspaServiceProviderMode)
	return checkServiceProviderNotices(errs, s.MspaServiceProviderMode,
		namedNotice{"SharingNotice", s.SharingNotice},
		namedNotice{"SaleOptOutNotice", s.SaleOptOutNotice},
		namedNotice{"TargetedAdvertisingOptOutNotice", s.TargetedAdvertisingOptOutNotice},
	)
}
