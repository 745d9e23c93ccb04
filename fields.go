package gpp

import "fmt"

// The US sections share a small vocabulary of two-bit fields. Codes above
// the defined range collapse to the not-applicable value, matching how
// consent platforms treat them.

// Notice reports whether a privacy notice was provided to the user.
type Notice uint8

const (
	NoticeNotApplicable Notice = 0
	NoticeProvided      Notice = 1
	NoticeNotProvided   Notice = 2
)

func (n Notice) String() string {
	switch n {
	case NoticeNotApplicable:
		return "NotApplicable"
	case NoticeProvided:
		return "Provided"
	case NoticeNotProvided:
		return "NotProvided"
	}
	return fmt.Sprintf("Notice(%d)", uint8(n))
}

// OptOut reports whether the user exercised an opt-out right.
type OptOut uint8

const (
	OptOutNotApplicable OptOut = 0
	OptedOut            OptOut = 1
	DidNotOptOut        OptOut = 2
)

func (o OptOut) String() string {
	switch o {
	case OptOutNotApplicable:
		return "NotApplicable"
	case OptedOut:
		return "OptedOut"
	case DidNotOptOut:
		return "DidNotOptOut"
	}
	return fmt.Sprintf("OptOut(%d)", uint8(o))
}

// Consent reports whether the user consented to a processing purpose.
type Consent uint8

const (
	ConsentNotApplicable Consent = 0
	ConsentNo            Consent = 1
	ConsentYes           Consent = 2
)

func (c Consent) String() string {
	switch c {
	case ConsentNotApplicable:
		return "NotApplicable"
	case ConsentNo:
		return "NoConsent"
	case ConsentYes:
		return "Consent"
	}
	return fmt.Sprintf("Consent(%d)", uint8(c))
}

// MSPAMode is a yes/no/not-applicable answer about how a transaction is
// handled under the Multi-State Privacy Agreement.
type MSPAMode uint8

const (
	MSPANotApplicable MSPAMode = 0
	MSPAYes           MSPAMode = 1
	MSPANo            MSPAMode = 2
)

func (m MSPAMode) String() string {
	switch m {
	case MSPANotApplicable:
		return "NotApplicable"
	case MSPAYes:
		return "Yes"
	case MSPANo:
		return "No"
	}
	return fmt.Sprintf("MSPAMode(%d)", uint8(m))
}

// Flag is one character of the ASCII US Privacy section: Y, N or -.
type Flag uint8

const (
	FlagNotApplicable Flag = 0
	FlagYes           Flag = 1
	FlagNo            Flag = 2
)

func (f Flag) String() string {
	switch f {
	case FlagNotApplicable:
		return "NotApplicable"
	case FlagYes:
		return "Yes"
	case FlagNo:
		return "No"
	}
	return fmt.Sprintf("Flag(%d)", uint8(f))
}

func (d *dataReader) readNotice() Notice {
	if v := d.Uint8(2); v <= uint8(NoticeNotProvided) {
		return Notice(v)
	}
	return NoticeNotApplicable
}

func (d *dataReader) readOptOut() OptOut {
	if v := d.Uint8(2); v <= uint8(DidNotOptOut) {
		return OptOut(v)
	}
	return OptOutNotApplicable
}

func (d *dataReader) readConsent() Consent {
	if v := d.Uint8(2); v <= uint8(ConsentYes) {
		return Consent(v)
	}
	return ConsentNotApplicable
}

// readConsents decodes n consecutive two-bit consent fields.
func (d *dataReader) readConsents(n int) []Consent {
	out := make([]Consent, n)
	for i := range out {
		out[i] = d.readConsent()
	}
	return out
}

func (d *dataReader) readMode() MSPAMode {
	if v := d.Uint8(2); v <= uint8(MSPANo) {
		return MSPAMode(v)
	}
	return MSPANotApplicable
}

// mspaCovered maps the covered-transaction field, the one two-bit field
// with no defined meaning for 0 or 3: 1 is covered, 2 is not.
func mspaCovered(v uint8) (bool, error) {
	switch v {
	case 1:
		return true, nil
	case 2:
		return false, nil
	}
	return false, &InvalidFieldValueError{
		Field:    "MspaCoveredTransaction",
		Expected: "1 or 2",
		Found:    uint64(v),
	}
}
