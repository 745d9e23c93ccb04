package gpp

// USPV1 is the legacy US Privacy section. Unlike every other section its
// body is plain ASCII: a version digit followed by three Y/N/- characters.
type USPV1 struct {
	OptOutNotice           Flag `json:"optOutNotice"`
	OptOutSale             Flag `json:"optOutSale"`
	LSPACoveredTransaction Flag `json:"lspaCoveredTransaction"`
}

// ID returns SectionUSPV1.
func (USPV1) ID() SectionID { return SectionUSPV1 }

const uspv1Kind = "uspv1"

func decodeUSPV1(body string) (USPV1, error) {
	var s USPV1
	if body == "" {
		return s, &UnexpectedEndOfStringError{Body: body}
	}
	switch c := body[0]; {
	case c < '0' || c > '9':
		return s, &InvalidCharacterError{Char: c, Kind: uspv1Kind, Body: body}
	case c != '1':
		return s, &InvalidSectionVersionError{Expected: 1, Found: c - '0'}
	}
	// Characters past the fourth are ignored; some platforms append them.
	fields := [...]*Flag{&s.OptOutNotice, &s.OptOutSale, &s.LSPACoveredTransaction}
	for i, f := range fields {
		pos := i + 1
		if pos >= len(body) {
			return s, &UnexpectedEndOfStringError{Body: body}
		}
		switch body[pos] {
		case 'Y':
			*f = FlagYes
		case 'N':
			*f = FlagNo
		case '-':
			*f = FlagNotApplicable
		default:
			return s, &InvalidCharacterError{Char: body[pos], Kind: uspv1Kind, Body: body}
		}
	}
	return s, nil
}
