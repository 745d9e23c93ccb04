package gpp

// USUT is the Utah (UCPA) section. Utah adds a sensitive-data notice to
// the Virginia layout and, like Virginia, has no GPC segment.
type USUT struct {
	SharingNotice                       Notice    `json:"sharingNotice"`
	SaleOptOutNotice                    Notice    `json:"saleOptOutNotice"`
	TargetedAdvertisingOptOutNotice     Notice    `json:"targetedAdvertisingOptOutNotice"`
	SensitiveDataProcessingOptOutNotice Notice    `json:"sensitiveDataProcessingOptOutNotice"`
	SaleOptOut                          OptOut    `json:"saleOptOut"`
	TargetedAdvertisingOptOut           OptOut    `json:"targetedAdvertisingOptOut"`
	SensitiveDataProcessing             []Consent `json:"sensitiveDataProcessing"`
	KnownChildSensitiveDataConsents     Consent   `json:"knownChildSensitiveDataConsents"`
	MspaCoveredTransaction              bool      `json:"mspaCoveredTransaction"`
	MspaOptOutOptionMode                MSPAMode  `json:"mspaOptOutOptionMode"`
	MspaServiceProviderMode             MSPAMode  `json:"mspaServiceProviderMode"`
}

// ID returns SectionUSUT.
func (USUT) ID() SectionID { return SectionUSUT }

func decodeUSUT(body string) (USUT, error) {
	var s USUT
	err := decodeUnsegmented(body, func(d *dataReader) error {
		if err := d.readVersion(1); err != nil {
			return err
		}
		s.SharingNotice = d.readNotice()
		s.SaleOptOutNotice = d.readNotice()
		s.TargetedAdvertisingOptOutNotice = d.readNotice()
		s.SensitiveDataProcessingOptOutNotice = d.readNotice()
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
	})
	return s, err
}

// Validate checks the MSPA interlocks over the decoded record.
func (s USUT) Validate() []ValidationError {
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
