package gpp

import "fmt"

// The US sections decode whatever the wire says; consistency under the
// Multi-State Privacy Agreement is a separate question. Each US section's
// Validate method checks the MSPA interlocks over the decoded record and
// reports every violation. Decoding never validates.

// ValidationError reports two decoded fields whose values violate an MSPA
// consistency rule.
type ValidationError struct {
	Field1 string `json:"field1"`
	Value1 uint8  `json:"value1"`
	Field2 string `json:"field2"`
	Value2 uint8  `json:"value2"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("inconsistent fields: %s=%d and %s=%d", e.Field1, e.Value1, e.Field2, e.Value2)
}

// namedNotice is a notice field with the name it is reported under.
type namedNotice struct {
	name  string
	value Notice
}

// checkNoticeOptOut enforces the notice/opt-out interlock: no notice means
// no answer, a provided notice means an answer either way, and a withheld
// notice means the user counts as opted out.
func checkNoticeOptOut(errs []ValidationError, noticeName string, n Notice, optOutName string, o OptOut) []ValidationError {
	ok := true
	switch n {
	case NoticeNotApplicable:
		ok = o == OptOutNotApplicable
	case NoticeProvided:
		ok = o == OptedOut || o == DidNotOptOut
	case NoticeNotProvided:
		ok = o == OptedOut
	}
	if !ok {
		errs = append(errs, ValidationError{noticeName, uint8(n), optOutName, uint8(o)})
	}
	return errs
}

// checkModeExclusive enforces that service-provider mode and opt-out-option
// mode answer opposite ways when either is answered at all.
func checkModeExclusive(errs []ValidationError, optOutMode, serviceProviderMode MSPAMode) []ValidationError {
	bad := (serviceProviderMode == MSPAYes && optOutMode != MSPANo) ||
		(serviceProviderMode == MSPANo && optOutMode != MSPAYes)
	if bad {
		errs = append(errs, ValidationError{
			"MspaServiceProviderMode", uint8(serviceProviderMode),
			"MspaOptOutOptionMode", uint8(optOutMode),
		})
	}
	return errs
}

// checkServiceProviderNotices enforces that a service provider shows no
// sale, sharing or targeted-advertising notices of its own.
func checkServiceProviderNotices(errs []ValidationError, serviceProviderMode MSPAMode, notices ...namedNotice) []ValidationError {
	if serviceProviderMode != MSPAYes {
		return errs
	}
	for _, n := range notices {
		if n.value != NoticeNotApplicable {
			errs = append(errs, ValidationError{
				"MspaServiceProviderMode", uint8(serviceProviderMode),
				n.name, uint8(n.value),
			})
		}
	}
	return errs
}
