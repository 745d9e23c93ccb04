package gpp

import (
	"fmt"
	"strings"
)

// SectionID identifies one framework section of a GPP string, per the IAB
// section registry.
type SectionID uint8

const (
	SectionTCFEUV1            SectionID = 1
	SectionTCFEUV2            SectionID = 2
	SectionGPPHeader          SectionID = 3 // reserved, never carries a payload
	SectionGPPSignalIntegrity SectionID = 4 // reserved, never carries a payload
	SectionTCFCAV1            SectionID = 5
	SectionUSPV1              SectionID = 6
	SectionUSNat              SectionID = 7
	SectionUSCA               SectionID = 8
	SectionUSVA               SectionID = 9
	SectionUSCO               SectionID = 10
	SectionUSUT               SectionID = 11
	SectionUSCT               SectionID = 12
	SectionUSFL               SectionID = 13
	SectionUSMT               SectionID = 14
	SectionUSOR               SectionID = 15
	SectionUSTX               SectionID = 16
	SectionUSDE               SectionID = 17
	SectionUSIA               SectionID = 18
	SectionUSNE               SectionID = 19
	SectionUSNH               SectionID = 20
	SectionUSNJ               SectionID = 21
	SectionUSTN               SectionID = 22
)

var sectionNames = map[SectionID]string{
	SectionTCFEUV1:            "tcfeuv1",
	SectionTCFEUV2:            "tcfeuv2",
	SectionGPPHeader:          "gppheader",
	SectionGPPSignalIntegrity: "gppsignalintegrity",
	SectionTCFCAV1:            "tcfcav1",
	SectionUSPV1:              "uspv1",
	SectionUSNat:              "usnat",
	SectionUSCA:               "usca",
	SectionUSVA:               "usva",
	SectionUSCO:               "usco",
	SectionUSUT:               "usut",
	SectionUSCT:               "usct",
	SectionUSFL:               "usfl",
	SectionUSMT:               "usmt",
	SectionUSOR:               "usor",
	SectionUSTX:               "ustx",
	SectionUSDE:               "usde",
	SectionUSIA:               "usia",
	SectionUSNE:               "usne",
	SectionUSNH:               "usnh",
	SectionUSNJ:               "usnj",
	SectionUSTN:               "ustn",
}

// String returns the section's API prefix, e.g. "tcfeuv2" or "usnat".
func (id SectionID) String() string {
	if name, ok := sectionNames[id]; ok {
		return name
	}
	return fmt.Sprintf("section %d", uint8(id))
}

func knownSectionID(id uint16) bool {
	_, ok := sectionNames[SectionID(id)]
	return ok && id <= uint16(SectionUSTN)
}

// Section is one decoded GPP section. The concrete type carries the
// fields; ID ties it back to the registry.
type Section interface {
	ID() SectionID
}

// decodeSection dispatches a raw section body to the decoder for id.
func decodeSection(id SectionID, body string) (Section, error) {
	switch id {
	case SectionTCFEUV1:
		return asSection(decodeTCFEUV1(body))
	case SectionTCFEUV2:
		return asSection(decodeTCFEUV2(body))
	case SectionTCFCAV1:
		return asSection(decodeTCFCAV1(body))
	case SectionUSPV1:
		return asSection(decodeUSPV1(body))
	case SectionUSNat:
		return asSection(decodeUSNat(body))
	case SectionUSCA:
		return asSection(decodeUSCA(body))
	case SectionUSVA:
		return asSection(decodeUSVA(body))
	case SectionUSCO:
		return asSection(decodeUSCO(body))
	case SectionUSUT:
		return asSection(decodeUSUT(body))
	case SectionUSCT:
		return asSection(decodeUSCT(body))
	case SectionUSFL:
		return asSection(decodeUSFL(body))
	case SectionUSMT:
		return asSection(decodeUSMT(body))
	case SectionUSOR:
		return asSection(decodeUSOR(body))
	case SectionUSTX:
		return asSection(decodeUSTX(body))
	case SectionUSDE:
		return asSection(decodeUSDE(body))
	case SectionUSIA:
		return asSection(decodeUSIA(body))
	case SectionUSNE:
		return asSection(decodeUSNE(body))
	case SectionUSNH:
		return asSection(decodeUSNH(body))
	case SectionUSNJ:
		return asSection(decodeUSNJ(body))
	case SectionUSTN:
		return asSection(decodeUSTN(body))
	}
	return nil, &UnsupportedSectionError{ID: uint16(id)}
}

// asSection narrows a concrete decode result to the Section interface,
// keeping the interface nil on failure.
func asSection[S Section](s S, err error) (Section, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}

// segmentSchema describes how a section's optional segments are framed:
// the width of the leading type tag and a decoder per known tag value.
type segmentSchema struct {
	tagBits  uint
	decoders map[uint8]func(*dataReader) error
}

// decodeSegmented splits a section body on '.', decodes the mandatory core
// segment with core, then routes each optional segment through the schema
// by its leading type tag. A tag with no decoder or a tag seen twice fails
// the whole section.
func decodeSegmented(body string, core func(*dataReader) error, schema segmentSchema) error {
	parts := strings.Split(body, ".")
	p, err := decodeBase64URL(parts[0])
	if err != nil {
		return err
	}
	if err := core(newDataReader(p)); err != nil {
		return err
	}
	var seen [8]bool // tags are at most three bits wide
	for _, part := range parts[1:] {
		p, err := decodeBase64URL(part)
		if err != nil {
			return err
		}
		d := newDataReader(p)
		tag := d.Uint8(schema.tagBits)
		if err := d.check(); err != nil {
			return err
		}
		decode, ok := schema.decoders[tag]
		if !ok {
			return &UnknownSegmentTypeError{SegmentType: tag}
		}
		if seen[tag] {
			return &DuplicateSegmentTypeError{SegmentType: tag}
		}
		seen[tag] = true
		if err := decode(d); err != nil {
			return err
		}
	}
	return nil
}

// decodeUnsegmented decodes a body that is a single bit-packed payload.
// A '.' in such a body is not part of the Base64 alphabet and fails there.
func decodeUnsegmented(body string, core func(*dataReader) error) error {
	p, err := decodeBase64URL(body)
	if err != nil {
		return err
	}
	return core(newDataReader(p))
}

// usSegments is the optional-segment layout shared by the US sections that
// carry one: a two-bit tag where type 1 is the Global Privacy Control flag.
func usSegments(gpc **bool) segmentSchema {
	return segmentSchema{
		tagBits: 2,
		decoders: map[uint8]func(*dataReader) error{
			1: func(d *dataReader) error {
				v := d.Bit()
				if err := d.check(); err != nil {
					return err
				}
				*gpc = &v
				return nil
			},
		},
	}
}
