// Package eft parses ANSI/NIST-ITL Electronic Fingerprint Transmission
// (EFT) files: the Type-1 transaction header, Type-2 demographics, and
// Type-4 fixed-resolution grayscale fingerprint records.
//
// The container mixes delimited ASCII and fixed-width binary. Type-1 and
// Type-2 records are GS-delimited tag:value segments terminated by FS; the
// Type-1 CNT field (1.03) is a manifest linking every following record to
// an IDC. Type-4 records are 18-byte binary headers followed by an opaque
// image payload, WSQ-compressed in practice.
//
// Basic usage:
//
//	f, err := eft.ReadFile("subject.eft")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, rec := range f.Type4Records {
//		img, err := rec.DecodeImage()
//		...
//	}
//
// Parse is a pure function of its input; the Type-4 image payloads alias
// the input buffer until decoded.
//
// All errors produced by this package and by pkg/compress/wsq implement the
// Error interface, so callers can report the stable kind tag uniformly.
package eft

import (
	"log/slog"
	"os"
)

// ANSI/NIST-ITL information separators.
const (
	FS = 0x1C // file separator: terminates an ASCII record
	GS = 0x1D // group separator: delimits tagged fields
	RS = 0x1E // record separator: delimits subfields
	US = 0x1F // unit separator: delimits items within a subfield
)

// Error is the common surface of ParseError, ValidationError, and the wsq
// package's DecodeError. Name returns a stable kind tag for diagnostics.
type Error interface {
	error
	Name() string
}

// Parse decodes a complete EFT file from an in-memory byte sequence.
func Parse(data []byte) (*File, error) {
	p := &parser{data: data}
	return p.parse()
}

// ReadFile loads and parses an EFT file from disk.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("parsing EFT file", "path", path, "bytes", len(data))
	return Parse(data)
}
