package gpp

// USCA is the California (CPRA) section. California regulates sale and
// sharing but not targeted advertising as its own opt-out.
type USCA struct {
	SaleOptOutNotice                Notice    `json:"saleOptOutNotice"`
	SharingOptOutNotice             Notice    `json:"sharingOptOutNotice"`
	SensitiveDataLimitUseNotice     Notice    `json:"sensitiveDataLimitUseNotice"`
	SaleOptOut                      OptOut    `json:"saleOptOut"`
	SharingOptOut                   OptOut    `json:"sharingOptOut"`
	SensitiveDataProcessing         []Consent `json:"sensitiveDataProcessing"`
	KnownChildSensitiveDataConsents []Consent `json:"knownChildSensitiveDataConsents"`
	PersonalDataConsents            Consent   `json:"personalDataConsents"`
	MspaCoveredTransaction          bool      `json:"mspaCoveredTransaction"`
	MspaOptOutOptionMode            MSPAMode  `json:"mspaOptOutOptionMode"`
	MspaServiceProviderMode         MSPAMode  `json:"mspaServiceProviderMode"`
	GPC                             *bool     `json:"gpc,omitempty"`
}

// ID returns SectionUSCA.
func (USCA) ID() SectionID { return SectionUSCA }

func decodeUSCA(body string) (USCA, error) {
	var s USCA
	core := func(d *dataReader) error {
		if err := d.readVersion(1); err != nil {
			return err
		}
		s.SaleOptOutNotice = d.readNotice()
		s.SharingOptOutNotice = d.readNotice()
		s.SensitiveDataLimitUseNotice = d.readNotice()
		s.SaleOptOut = d.readOptOut()
		s.SharingOptOut = d.readOptOut()
		s.SensitiveDataProcessing = d.readConsents(9)
		s.KnownChildSensitiveDataConsents = d.readConsents(2)
		s.PersonalDataConsents = d.readConsent()
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
func (s USCA) Validate() []ValidationError {
	var errs []ValidationError
	errs = checkNoticeOptOut(errs, "SaleOptOutNotice", s.SaleOptOutNotice, "SaleOptOut", s.SaleOptOut)
	errs = checkNoticeOptOut(errs, "SharingOptOutNotice", s.SharingOptOutNotice, "SharingOptOut", s.SharingOptOut)
	errs = checkModeExclusive(errs, s.MspaOptOutOptionMode, s.MspaServiceProviderMode)
	return checkServiceProviderNotices(errs, s.MspaServiceProviderMode,
		namedNotice{"SaleOptOutNotice", s.SaleOptOutNotice},
		namedNotice{"SharingOptOutNotice", s.SharingOptOutNotice},
	)
}
