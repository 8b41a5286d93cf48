package eft

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// asciiRecord builds a delimited record with a self-consistent declared
// length field (T.01) prepended.
func asciiRecord(recType int, fields [][2]string) []byte {
	lenTag := fmt.Sprintf("%d.01", recType)

	var rest strings.Builder
	for _, f := range fields {
		rest.WriteByte(GS)
		rest.WriteString(f[0] + ":" + f[1])
	}

	// The declared length covers itself, so its digit count feeds back.
	base := len(lenTag) + 1 + rest.Len() + 1
	digits := 1
	for {
		n := base + digits
		if len(strconv.Itoa(n)) == digits {
			return []byte(lenTag + ":" + strconv.Itoa(n) + rest.String() + string(rune(FS)))
		}
		digits = len(strconv.Itoa(base + digits))
	}
}

func type4Record(idc, impression, finger, isr, width, height, compression int, payload []byte) []byte {
	rec := make([]byte, type4HeaderLen+len(payload))
	binary.BigEndian.PutUint32(rec[0:4], uint32(len(rec)))
	rec[4] = byte(idc)
	rec[5] = byte(impression)
	rec[6] = byte(finger)
	rec[12] = byte(isr)
	binary.BigEndian.PutUint16(rec[13:15], uint16(width))
	binary.BigEndian.PutUint16(rec[15:17], uint16(height))
	rec[17] = byte(compression)
	copy(rec[type4HeaderLen:], payload)
	return rec
}

func cntValue(entries ...[2]int) string {
	us := string(rune(US))
	subs := []string{"1" + us + strconv.Itoa(len(entries))}
	for _, e := range entries {
		subs = append(subs, strconv.Itoa(e[0])+us+strconv.Itoa(e[1]))
	}
	return strings.Join(subs, string(rune(RS)))
}

// buildEFT assembles a minimal two-fingerprint transmission.
func buildEFT() []byte {
	var buf []byte
	buf = append(buf, asciiRecord(1, [][2]string{
		{"1.02", "0400"},
		{"1.03", cntValue([2]int{2, 0}, [2]int{4, 1}, [2]int{4, 2})},
		{"1.04", "CAR"},
		{"1.08", "TEST00001"},
	})...)
	buf = append(buf, asciiRecord(2, [][2]string{
		{"2.018", "SCOTT,MICHAEL GARY"},
		{"2.022", "19620315"},
		{"2.024", "M"},
		{"2.027", "511"},
		{"2.029", "180"},
		{"2.067", "TESTSCAN" + string(rune(US)) + "MODEL1" + string(rune(US)) + "SN001"},
	})...)
	buf = append(buf, type4Record(1, 1, 6, 0, 40, 30, 1, []byte{0xFF, 0xA0, 0x01, 0x02})...)
	buf = append(buf, type4Record(2, 1, 1, 0, 40, 30, 1, []byte{0xFF, 0xA0, 0x03})...)
	return buf
}

func TestParse_Minimal(t *testing.T) {
	data := buildEFT()
	f, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, len(data), f.FileSize)
	require.Len(t, f.Type4Records, 2)

	tot, _ := f.Type1.Get("1.04")
	assert.Equal(t, "CAR", tot)

	t2 := f.Type2
	require.NotNil(t, t2.Name)
	assert.Equal(t, "Michael Gary Scott", t2.Name.FullName())
	require.NotNil(t, t2.DOB)
	assert.Equal(t, Date{Year: 1962, Month: 3, Day: 15}, *t2.DOB)
	assert.Equal(t, "M", t2.Sex)
	assert.Equal(t, "511", t2.Height)
	require.NotNil(t, t2.Weight)
	assert.Equal(t, 180, *t2.Weight)
	require.NotNil(t, t2.Scanner)
	assert.Equal(t, Scanner{Make: "TESTSCAN", Model: "MODEL1", Serial: "SN001"}, *t2.Scanner)

	rec := f.Type4Records[0]
	assert.Equal(t, 1, rec.IDC)
	assert.Equal(t, 6, rec.FingerPosition)
	assert.Equal(t, "Left thumb", rec.FingerName())
	assert.Equal(t, "Live-scan rolled", rec.ImpressionName())
	assert.Equal(t, "WSQ", rec.CompressionName())
	assert.Equal(t, 500, rec.PPI())
	assert.Equal(t, 40, rec.Width)
	assert.Equal(t, 30, rec.Height)
	assert.Equal(t, []byte{0xFF, 0xA0, 0x01, 0x02}, rec.ImageData)
}

// The Type-1, Type-2, and Type-4 record lengths account for every file byte.
func TestParse_LengthsCoverFile(t *testing.T) {
	data := buildEFT()
	f, err := Parse(data)
	require.NoError(t, err)

	total := f.Type1.Length + f.Type2.Raw.Length
	for _, rec := range f.Type4Records {
		total += rec.Length
	}
	assert.Equal(t, f.FileSize, total)
}

// Type-4 record count matches the manifest.
func TestParse_CNTCountLaw(t *testing.T) {
	f, err := Parse(buildEFT())
	require.NoError(t, err)
	assert.Len(t, f.Type4Records, 2)

	for _, rec := range f.Type4Records {
		assert.LessOrEqual(t, rec.Offset+rec.Length, f.FileSize)
	}
}

func TestParse_Idempotent(t *testing.T) {
	data := buildEFT()
	a, err := Parse(data)
	require.NoError(t, err)
	b, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := Parse(nil)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}

func TestParse_OneByteInput(t *testing.T) {
	_, err := Parse([]byte{'1'})
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Msg, "No FS terminator")
}

func TestParse_NoFSTerminator(t *testing.T) {
	_, err := Parse([]byte("1.01:52 random ascii with no separator bytes at all"))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Msg, "No FS terminator")
	assert.Equal(t, 1, pe.RecordType)
}

func TestParse_MissingCNT(t *testing.T) {
	data := asciiRecord(1, [][2]string{{"1.02", "0400"}})
	_, err := Parse(data)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Msg, "1.03")
}

func TestParse_MalformedCNT(t *testing.T) {
	data := asciiRecord(1, [][2]string{
		{"1.03", "1" + string(rune(US)) + "1" + string(rune(RS)) + "four" + string(rune(US)) + "0"},
	})
	_, err := Parse(data)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Msg, "Malformed CNT")
}

func TestParse_UnsupportedRecordType(t *testing.T) {
	var buf []byte
	buf = append(buf, asciiRecord(1, [][2]string{
		{"1.03", cntValue([2]int{2, 0}, [2]int{7, 1})},
	})...)
	buf = append(buf, asciiRecord(2, [][2]string{{"2.018", "DOE,JANE"}})...)

	_, err := Parse(buf)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Msg, "Unsupported record type 7")
	assert.Equal(t, 7, pe.RecordType)
}

func TestParse_Type4SmallerThanHeader(t *testing.T) {
	var buf []byte
	buf = append(buf, asciiRecord(1, [][2]string{
		{"1.03", cntValue([2]int{2, 0}, [2]int{4, 1})},
	})...)
	buf = append(buf, asciiRecord(2, nil)...)
	bad := type4Record(1, 1, 6, 0, 4, 4, 1, []byte{1, 2, 3, 4})
	binary.BigEndian.PutUint32(bad[0:4], 10) // < 18
	buf = append(buf, bad...)

	_, err := Parse(buf)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Msg, "smaller than header")
}

func TestParse_Type4ExceedsBuffer(t *testing.T) {
	var buf []byte
	buf = append(buf, asciiRecord(1, [][2]string{
		{"1.03", cntValue([2]int{2, 0}, [2]int{4, 1})},
	})...)
	buf = append(buf, asciiRecord(2, nil)...)
	bad := type4Record(1, 1, 6, 0, 4, 4, 1, []byte{1, 2, 3, 4})
	binary.BigEndian.PutUint32(bad[0:4], uint32(len(bad)+100))
	buf = append(buf, bad...)

	_, err := Parse(buf)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Msg, "exceeds buffer")
}

func TestParse_Type4IDCMismatch(t *testing.T) {
	var buf []byte
	buf = append(buf, asciiRecord(1, [][2]string{
		{"1.03", cntValue([2]int{2, 0}, [2]int{4, 5})},
	})...)
	buf = append(buf, asciiRecord(2, nil)...)
	buf = append(buf, type4Record(1, 1, 6, 0, 4, 4, 1, []byte{1, 2, 3, 4})...)

	_, err := Parse(buf)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Msg, "IDC mismatch")
}

// Unknown code bytes label as "Unknown (N)" without failing the parse.
func TestParse_UnknownCodes(t *testing.T) {
	var buf []byte
	buf = append(buf, asciiRecord(1, [][2]string{
		{"1.03", cntValue([2]int{2, 0}, [2]int{4, 1})},
	})...)
	buf = append(buf, asciiRecord(2, nil)...)
	buf = append(buf, type4Record(1, 9, 99, 123, 4, 4, 9, []byte{1, 2, 3, 4})...)

	f, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, f.Type4Records, 1)

	rec := f.Type4Records[0]
	assert.Equal(t, "Unknown (9)", rec.ImpressionName())
	assert.Equal(t, "Unknown (99)", rec.FingerName())
	assert.Equal(t, "Unknown (9)", rec.CompressionName())
	assert.Equal(t, 123, rec.PPI())
}

// Without a declared length the record spans up to and including the FS.
func TestParse_Type1LengthFallback(t *testing.T) {
	us := string(rune(US))
	var buf []byte
	buf = append(buf, []byte("1.02:0400"+string(rune(GS))+"1.03:1"+us+"1"+string(rune(RS))+"2"+us+"0"+string(rune(FS)))...)
	buf = append(buf, asciiRecord(2, [][2]string{{"2.018", "DOE,JANE"}})...)

	f, err := Parse(buf)
	require.NoError(t, err)
	require.NotNil(t, f.Type2.Name)
	assert.Equal(t, "Jane Doe", f.Type2.Name.FullName())
}

// Segments with no colon are skipped rather than failing the record.
func TestParse_SegmentWithoutColon(t *testing.T) {
	us := string(rune(US))
	var buf []byte
	buf = append(buf, []byte("garbage"+string(rune(GS))+"1.03:1"+us+"1"+string(rune(RS))+"2"+us+"0"+string(rune(FS)))...)
	buf = append(buf, asciiRecord(2, nil)...)

	_, err := Parse(buf)
	require.NoError(t, err)
}
