package gpp

import (
	"errors"
	"fmt"
)

// ErrNoHeader is returned by Parse when the input carries no header part.
var ErrNoHeader = errors.New("no header found")

// InvalidHeaderTypeError reports a header whose 6-bit type field is not the
// GPP header type. A bare TCF string fed to Parse fails this way.
type InvalidHeaderTypeError struct {
	Found uint8
}

func (e *InvalidHeaderTypeError) Error() string {
	return fmt.Sprintf("invalid header type %d (want %d)", e.Found, headerType)
}

// InvalidVersionError reports an unsupported GPP version in the header.
type InvalidVersionError struct {
	Found uint8
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("unsupported GPP version %d (want %d)", e.Found, headerVersion)
}

// UnsupportedSectionError reports a section ID outside the registry, or a
// reserved ID that carries no decodable payload.
type UnsupportedSectionError struct {
	ID uint16
}

func (e *UnsupportedSectionError) Error() string {
	return fmt.Sprintf("unsupported section ID %d", e.ID)
}

// SectionCountMismatchError reports a header whose ID list length differs
// from the number of section bodies that follow it.
type SectionCountMismatchError struct {
	IDs      int
	Sections int
}

func (e *SectionCountMismatchError) Error() string {
	return fmt.Sprintf("header lists %d section IDs but %d bodies follow", e.IDs, e.Sections)
}

// MissingSectionError reports a DecodeSection call for an ID the parsed
// string does not carry.
type MissingSectionError struct {
	ID SectionID
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("section %s not present", e.ID)
}

// Base64Error reports a byte outside the URL-safe Base64 alphabet.
type Base64Error struct {
	Offset int
	Char   byte
}

func (e *Base64Error) Error() string {
	return fmt.Sprintf("invalid base64 character %q at offset %d", e.Char, e.Offset)
}

// InvalidSectionVersionError reports a section payload whose version prefix
// does not match the decoder.
type InvalidSectionVersionError struct {
	Expected uint8
	Found    uint8
}

func (e *InvalidSectionVersionError) Error() string {
	return fmt.Sprintf("invalid section version %d (want %d)", e.Found, e.Expected)
}

// UnexpectedEndOfStringError reports a character-coded payload shorter than
// its layout requires.
type UnexpectedEndOfStringError struct {
	Body string
}

func (e *UnexpectedEndOfStringError) Error() string {
	return fmt.Sprintf("unexpected end of string %q", e.Body)
}

// InvalidCharacterError reports a character outside a section's alphabet.
type InvalidCharacterError struct {
	Char byte
	Kind string
	Body string
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q in %s payload %q", e.Char, e.Kind, e.Body)
}

// UnknownSegmentTypeError reports an optional segment with a type tag the
// section does not define.
type UnknownSegmentTypeError struct {
	SegmentType uint8
}

func (e *UnknownSegmentTypeError) Error() string {
	return fmt.Sprintf("unknown segment type %d", e.SegmentType)
}

// DuplicateSegmentTypeError reports an optional segment type occurring more
// than once in a section body.
type DuplicateSegmentTypeError struct {
	SegmentType uint8
}

func (e *DuplicateSegmentTypeError) Error() string {
	return fmt.Sprintf("duplicate segment type %d", e.SegmentType)
}

// UnknownSegmentVersionError reports a segment carrying a version the
// decoder does not support. No current section schema versions its optional
// segments; the type is part of the wire-format error set.
type UnknownSegmentVersionError struct {
	SegmentVersion uint8
}

func (e *UnknownSegmentVersionError) Error() string {
	return fmt.Sprintf("unknown segment version %d", e.SegmentVersion)
}

// InvalidFieldValueError reports a field whose raw value has no defined
// meaning, such as an MSPA covered-transaction flag outside {1, 2}.
type InvalidFieldValueError struct {
	Field    string
	Expected string
	Found    uint64
}

func (e *InvalidFieldValueError) Error() string {
	return fmt.Sprintf("field %s: invalid value %d (want %s)", e.Field, e.Found, e.Expected)
}
