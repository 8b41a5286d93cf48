package eft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHeight(t *testing.T) {
	tests := []struct{ in, want string }{
		{"511", `5'11"`},
		{"600", `6'00"`},
		{"5100", `5'100"`},
		{"", ""},
		{"51", "51"},
		{"tall", "tall"},
		{"5'11", "5'11"},
		{"12345", "12345"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHeight(tt.in), "input %q", tt.in)
	}
}

// For well-formed input the feet digit is the first character.
func TestFormatHeight_FeetDigit(t *testing.T) {
	for _, in := range []string{"411", "511", "600", "6011"} {
		out := FormatHeight(in)
		require.Greater(t, len(out), 1)
		assert.Equal(t, in[0], out[0], "input %q", in)
		assert.Equal(t, byte('\''), out[1])
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "November 2, 1990", FormatDate(&Date{Year: 1990, Month: 11, Day: 2}))
	assert.Equal(t, "Unknown 1, 2000", FormatDate(&Date{Year: 2000, Month: 0, Day: 1}))
	assert.Equal(t, "Unknown 5, 1999", FormatDate(&Date{Year: 1999, Month: 13, Day: 5}))
	assert.Equal(t, "Unknown", FormatDate(nil))
}

func TestResolveFinger(t *testing.T) {
	for _, in := range []string{"right_thumb", "Right-Thumb", "RIGHT THUMB", "1"} {
		got, err := ResolveFinger(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, 1, got, "input %q", in)
	}

	got, err := ResolveFinger("plain_left_four")
	require.NoError(t, err)
	assert.Equal(t, 14, got)

	for _, in := range []string{"pinky", "0", "99", "15", ""} {
		_, err := ResolveFinger(in)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve, "input %q", in)
	}
}

func TestFilterRecords(t *testing.T) {
	records := []Type4Record{
		{FingerPosition: 1, IDC: 0},
		{FingerPosition: 6, IDC: 1},
		{FingerPosition: 1, IDC: 2},
	}

	// Empty selector returns everything.
	out, err := FilterRecords(records, "")
	require.NoError(t, err)
	assert.Len(t, out, 3)

	out, err = FilterRecords(records, "right_thumb")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 0, out[0].IDC)
	assert.Equal(t, 2, out[1].IDC)

	out, err = FilterRecords(records, "6")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].IDC)

	_, err = FilterRecords(records, "left_index")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = FilterRecords(records, "pinky")
	require.ErrorAs(t, err, &ve)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "01-right-thumb.tiff", ExportFilename(1, "tiff"))
	assert.Equal(t, "14-plain-left-four.png", ExportFilename(14, "png"))
	assert.Equal(t, "99-finger-99.tiff", ExportFilename(99, ""))
	assert.Equal(t, "06-left-thumb.tiff", ExportFilename(6, ""))
}

func TestLookupLabels(t *testing.T) {
	assert.Equal(t, "Male", SexName("M"))
	assert.Equal(t, "Q", SexName("Q"))
	assert.Equal(t, "White", RaceName("W"))
	assert.Equal(t, "Brown", EyeColorName("BRO"))
	assert.Equal(t, "Blond", HairColorName("BLN"))
}
