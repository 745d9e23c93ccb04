package gpp

// USNat is the national US MSPA section, the broadest of the US privacy
// sections: twelve sensitive-data categories and two child-consent fields.
type USNat struct {
	SharingNotice                       Notice    `json:"sharingNotice"`
	SaleOptOutNotice                    Notice    `json:"saleOptOutNotice"`
	SharingOptOutNotice                 Notice    `json:"sharingOptOutNotice"`
	TargetedAdvertisingOptOutNotice     Notice    `json:"targetedAdvertisingOptOutNotice"`
	SensitiveDataProcessingOptOutNotice Notice    `json:"sensitiveDataProcessingOptOutNotice"`
	SensitiveDataLimitUseNotice         Notice    `json:"sensitiveDataLimitUseNotice"`
	SaleOptOut                          OptOut    `json:"saleOptOut"`
	SharingOptOut                       OptOut    `json:"sharingOptOut"`
	TargetedAdvertisingOptOut           OptOut    `json:"targetedAdvertisingOptOut"`
	SensitiveDataProcessing             []Consent `json:"sensitiveDataProcessing"`
	KnownChildSensitiveDataConsents     []Consent `json:"knownChildSensitiveDataConsents"`
	PersonalDataConsents                Consent   `json:"personalDataConsents"`
	MspaCoveredTransaction              bool      `json:"mspaCoveredTransaction"`
	MspaOptOutOptionMode                MSPAMode  `json:"mspaOptOutOptionMode"`
	MspaServiceProviderMode             MSPAMode  `json:"mspaServiceProviderMode"`
	GPC                                 *bool     `json:"gpc,omitempty"`
}

// ID returns SectionUSNat.
func (USNat) ID() SectionID { return SectionUSNat }

func decodeUSNat(body string) (USNat, error) {
	var s USNat
	core := func(d *dataReader) error {
		if err := d.readVersion(1); err != nil {
			return err
		}
		s.SharingNotice = d.readNotice()
		s.SaleOptOutNotice = d.readNotice()
		s.SharingOptOutNotice = d.readNotice()
		s.TargetedAdvertisingOptOutNotice = d.readNotice()
		s.SensitiveDataProcessingOptOutNotice = d.readNotice()
		s.SensitiveDataLimitUseNotice = d.readNotice()
		s.SaleOptOut = d.readOptOut()
		s.SharingOptOut = d.readOptOut()
		s.TargetedAdvertisingOptOut = d.readOptOut()
		s.SensitiveDataProcessing = d.readConsents(12)
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
func (s USNat) Validate() []ValidationError {
	var errs []ValidationError
	errs = checkNoticeOptOut(errs, "SaleOptOutNotice", s.SaleOptOutNotice, "SaleOptOut", s.SaleOptOut)
	errs = checkNoticeOptOut(errs, "SharingOptOutNotice", s.SharingOptOutNotice, "SharingOptOut", s.SharingOptOut)
	errs = checkNoticeOptOut(errs, "TargetedAdvertisingOptOutNotice", s.TargetedAdvertisingOptOutNotice, "TargetedAdvertisingOptOut", s.TargetedAdvertisingOptOut)
	errs = checkModeExclusive(errs, s.MspaOptOutOptionMode, s.MspaServiceProviderMode)
	return checkServiceProviderNotices(errs, s.MspaServiceProviderMode,
		namedNotice{"SharingNotice", s.SharingNotice},
		namedNotice{"SaleOptOutNotice", s.SaleOptOutNotice},
		namedNotice{"SharingOptOutNotice", s.SharingOptOutNotice},
		namedNotice{"TargetedAdvertisingOptOutNotice", s.TargetedAdvertisingOptOutNotice},
	)
}
