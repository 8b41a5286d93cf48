package eft

import "fmt"

// ParseError reports a structural failure in the EFT container. Offset is
// the byte position of the failing record, or -1 when none applies;
// RecordType is the offending record type, or 0.
type ParseError struct {
	Offset     int
	RecordType int
	Msg        string
}

func (e *ParseError) Error() string {
	switch {
	case e.RecordType != 0 && e.Offset >= 0:
		return fmt.Sprintf("eft: type-%d record at offset %d: %s", e.RecordType, e.Offset, e.Msg)
	case e.Offset >= 0:
		return fmt.Sprintf("eft: offset %d: %s", e.Offset, e.Msg)
	default:
		return "eft: " + e.Msg
	}
}

// Name returns the stable diagnostic tag for this error kind.
func (e *ParseError) Name() string { return "ParseError" }

// ValidationError reports bad caller input to a helper function, such as an
// unknown finger name or a filter that matches no record.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return "eft: " + e.Msg }

// Name returns the stable diagnostic tag for this error kind.
func (e *ValidationError) Name() string { return "ValidationError" }
