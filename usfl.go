package gpp

// USFL is the Florida (FDBR) section. Florida swaps the sharing notice for
// a general processing notice and adds a consent for additional data
// processing; it has no GPC segment.
type USFL struct {
	ProcessingNotice                Notice    `json:"processingNotice"`
	SaleOptOutNotice                Notice    `json:"saleOptOutNotice"`
	TargetedAdvertisingOptOutNotice Notice    `json:"targetedAdvertisingOptOutNotice"`
	SaleOptOut                      OptOut    `json:"saleOptOut"`
	TargetedAdvertisingOptOut       OptOut    `json:"targetedAdvertisingOptOut"`
	SensitiveDataProcessing         []Consent `json:"sensitiveDataProcessing"`
	KnownChildSensitiveDataConsents []Consent `json:"knownChildSensitiveDataConsents"`
	AdditionalDataProcessingConsent Consent   `json:"additionalDataProcessingConsent"`
	MspaCoveredTransaction          bool      `json:"mspaCoveredTransaction"`
	MspaOptOutOptionMode            MSPAMode  `json:"mspaOptOutOptionMode"`
	MspaServiceProviderMode         MSPAMode  `json:"mspaServiceProviderMode"`
}

// ID returns SectionUSFL.
func (USFL) ID() SectionID { return SectionUSFL }

func decodeUSFL(body string) (USFL, error) {
	var s USFL
	err := decodeUnsegmented(body, func(d *dataReader) error {
		if err := d.readVersion(1); err != nil {
			return err
		}
		s.ProcessingNotice = d.readNotice()
		s.SaleOptOutNotice = d.readNotice()
		s.TargetedAdvertisingOptOutNotice = d.readNotice()
		s.SaleOptOut = d.readOptOut()
		s.TargetedAdvertisingOptOut = d.readOptOut()
		s.SensitiveDataProcessing = d.readConsents(8)
		s.KnownChildSensitiveDataConsents = d.readConsents(3)
		s.AdditionalDataProcessingConsent = d.readConsent()
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
func (s USFL) Validate() []ValidationError {
	var errs []ValidationError
	errs = checkNoticeOptOut(errs, "SaleOptOutNotice", s.SaleOptOutNotice, "SaleOptOut", s.SaleOptOut)
	errs = checkNoticeOptOut(errs, "TargetedAdvertisingOptOutNotice", s.TargetedAdvertisingOptOutNotice, "TargetedAdvertisingOptOut", s.TargetedAdvertisingOptOut)
	errs = checkModeExclusive(errs, s.MspaOptOutOptionMode, s.MspaServiceProviderMode)
	return checkServiceProviderNotices(errs, s.MspaServiceProviderMode,
		namedNotice{"SaleOptOutNotice", s.SaleOptOutNotice},
		namedNotice{"TargetedAdvertisingOptOutNotice", s.TargetedAdvertisingOptOutNotice},
	)
}
