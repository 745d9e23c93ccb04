package gpp

// USCT is the Connecticut (CTDPA) section: the Virginia layout with three
// child-consent fields and a GPC segment.
type USCT struct {
	SharingNotice                   Notice    `json:"sharingNotice"`
	SaleOptOutNotice                Notice    `json:"saleOptOutNotice"`
	TargetedAdvertisingOptOutNotice Notice    `json:"targetedAdvertisingOptOutNotice"`
	SaleOptOut                      OptOut    `json:"saleOptOut"`
	TargetedAdvertisingOptOut       OptOut    `json:"targetedAdvertisingOptOut"`
	SensitiveDataProcessing         []Consent `json:"sensitiveDataProcessing"`
	KnownChildSensitiveDataConsents []Consent `json:"knownChildSensitiveDataConsents"`
	MspaCoveredTransaction          bool      `json:"mspaCoveredTransaction"`
	MspaOptOutOptionMode            MSPAMode  `json:"mspaOptOutOptionMode"`
	MspaServiceProviderMode         MSPAMode  `json:"mspaServiceProviderMode"`
	GPC                             *bool     `json:"gpc,omitempty"`
}

// ID returns SectionUSCT.
func (USCT) ID() SectionID { return SectionUSCT }

func decodeUSCT(body string) (USCT, error) {
	var s USCT
	core := func(d *dataReader) error {
		if err := d.readVersion(1); err != nil {
			return err
		}
		s.SharingNotice = d.readNotice()
		s.SaleOptOutNotice = d.readNotice()
		s.TargetedAdvertisingOptOutNotice = d.readNotice()
		s.SaleOptOut = d.readOptOut()
		s.TargetedAdvertisingOptOut = d.readOptOut()
		s.SensitiveDataProcessing = d.readConsents(8)
		s.KnownChildSensitiveDataConsents = d.readConsents(3)
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
func (s USCT) Validate() []ValidationError {
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
