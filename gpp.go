// Package gpp decodes IAB Global Privacy Platform consent strings: the
// header, the section framing, and every section of the IAB registry,
// including the TCF EU, TCF Canada, US Privacy and US state sections.
//
// Parse splits a string into its sections without touching their payloads;
// the Decode functions turn individual payloads into typed records. A
// GPPString is immutable after Parse and safe for concurrent use.
package gpp

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Header framing, common to every GPP string.
const (
	headerType    = 3
	headerVersion = 1
)

// GPPString is a parsed GPP consent string: the header's section IDs in
// declaration order plus each section's raw body. Section payloads stay
// encoded until DecodeSection or DecodeAll asks for them.
type GPPString struct {
	ids    []SectionID
	bodies []string
}

// Parse splits s into its header and section bodies and decodes the
// header. Section bodies are checked for presence only: the header must
// declare exactly one ID per body, but the payloads themselves are not
// decoded here.
func Parse(s string) (GPPString, error) {
	parts := strings.Split(s, "~")
	if parts[0] == "" {
		return GPPString{}, ErrNoHeader
	}
	p, err := decodeBase64URL(parts[0])
	if err != nil {
		return GPPString{}, fmt.Errorf("gpp header: %w", err)
	}
	d := newDataReader(p)
	typ := d.Uint8(6)
	if err := d.check(); err != nil {
		return GPPString{}, fmt.Errorf("gpp header: %w", err)
	}
	if typ != headerType {
		return GPPString{}, &InvalidHeaderTypeError{Found: typ}
	}
	ver := d.Uint8(6)
	if err := d.check(); err != nil {
		return GPPString{}, fmt.Errorf("gpp header: %w", err)
	}
	if ver != headerVersion {
		return GPPString{}, &InvalidVersionError{Found: ver}
	}
	raw := d.readFibonacciIDRange()
	if err := d.check(); err != nil {
		return GPPString{}, fmt.Errorf("gpp header: %w", err)
	}
	ids := make([]SectionID, len(raw))
	for i, id := range raw {
		if !knownSectionID(id) {
			return GPPString{}, &UnsupportedSectionError{ID: id}
		}
		ids[i] = SectionID(id)
	}
	bodies := parts[1:]
	if len(bodies) != len(ids) {
		return GPPString{}, &SectionCountMismatchError{IDs: len(ids), Sections: len(bodies)}
	}
	return GPPString{ids: ids, bodies: bodies}, nil
}

// SectionIDs returns the section IDs in header declaration order.
func (g GPPString) SectionIDs() []SectionID {
	return slices.Clone(g.ids)
}

// Section returns the raw, still-encoded body of section id.
func (g GPPString) Section(id SectionID) (string, bool) {
	for i, sid := range g.ids {
		if sid == id {
			return g.bodies[i], true
		}
	}
	return "", false
}

// DecodeSection decodes the payload of section id into its typed record.
func (g GPPString) DecodeSection(id SectionID) (Section, error) {
	body, ok := g.Section(id)
	if !ok {
		return nil, &MissingSectionError{ID: id}
	}
	sec, err := decodeSection(id, body)
	if err != nil {
		return nil, fmt.Errorf("section %s: %w", id, err)
	}
	return sec, nil
}

// SectionResult pairs one section ID with its decode outcome.
type SectionResult struct {
	ID      SectionID
	Section Section
	Err     error
}

// DecodeAll decodes every section in header order. A failing section lands
// in its result's Err and does not stop the remaining sections.
func (g GPPString) DecodeAll() []SectionResult {
	out := make([]SectionResult, len(g.ids))
	for i, id := range g.ids {
		sec, err := decodeSection(id, g.bodies[i])
		if err != nil {
			err = fmt.Errorf("section %s: %w", id, err)
		}
		out[i] = SectionResult{ID: id, Section: sec, Err: err}
	}
	return out
}

// Decode decodes the section of g whose concrete type is S:
//
//	tcf, err := gpp.Decode[gpp.TCFEUV2](g)
//
// S must name one of the package's section types; instantiating Decode with
// the Section interface itself returns an error. Decode fails with a
// MissingSectionError if g does not carry that section.
func Decode[S Section](g GPPString) (S, error) {
	var zero S
	if Section(zero) == nil {
		return zero, errors.New("Decode needs a concrete section type")
	}
	sec, err := g.DecodeSection(zero.ID())
	if err != nil {
		return zero, err
	}
	return sec.(S), nil
}
