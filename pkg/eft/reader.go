package eft

import (
	"bytes"
	"encoding/binary"
	"strconv"
	"strings"
)

// type4HeaderLen is the fixed binary header preceding the image payload.
const type4HeaderLen = 18

// cntEntry is one manifest subfield: the record type and its IDC link.
type cntEntry struct {
	recordType int
	idc        int
}

type parser struct {
	data []byte
	pos  int
}

func (p *parser) parse() (*File, error) {
	f := &File{FileSize: len(p.data)}

	type1, err := p.parseAsciiRecord(1)
	if err != nil {
		return nil, err
	}
	f.Type1 = type1

	cnt, err := p.parseCNT(type1)
	if err != nil {
		return nil, err
	}

	type2Raw, err := p.parseAsciiRecord(2)
	if err != nil {
		return nil, err
	}
	f.Type2 = shapeType2(type2Raw)

	for _, entry := range cnt {
		switch entry.recordType {
		case 2:
			// Already consumed immediately after the Type-1.
		case 4:
			rec, err := p.parseType4(entry)
			if err != nil {
				return nil, err
			}
			f.Type4Records = append(f.Type4Records, rec)
		default:
			return nil, &ParseError{
				Offset:     p.pos,
				RecordType: entry.recordType,
				Msg:        "Unsupported record type " + strconv.Itoa(entry.recordType),
			}
		}
	}

	return f, nil
}

// parseAsciiRecord reads one FS-terminated, GS-delimited record at the
// current offset. The record's declared length (tag T.01) wins over the
// observed span; when absent the span up to and including the FS is used.
func (p *parser) parseAsciiRecord(recordType int) (*AsciiRecord, error) {
	start := p.pos
	fsRel := bytes.IndexByte(p.data[start:], FS)
	if fsRel < 0 {
		return nil, &ParseError{Offset: start, RecordType: recordType, Msg: "No FS terminator"}
	}

	rec := &AsciiRecord{Offset: start, index: make(map[string]string)}
	lenTag := strconv.Itoa(recordType) + ".01"

	content := p.data[start : start+fsRel]
	for _, seg := range strings.Split(string(content), string(rune(GS))) {
		colon := strings.IndexByte(seg, ':')
		if colon < 0 {
			continue
		}
		field := Field{Tag: seg[:colon], Value: seg[colon+1:]}
		rec.Fields = append(rec.Fields, field)
		rec.index[field.Tag] = field.Value
	}

	advance := fsRel + 1
	if declared, ok := rec.index[lenTag]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(declared)); err == nil {
			advance = n
		}
	}
	rec.Length = advance
	p.pos = start + advance

	return rec, nil
}

// parseCNT decodes the Type-1 content manifest (1.03). Subfield 0 describes
// the Type-1 record itself and the total count; it is discarded without
// validation. Every other subfield is a (type, idc) pair.
func (p *parser) parseCNT(type1 *AsciiRecord) ([]cntEntry, error) {
	raw, ok := type1.Get("1.03")
	if !ok {
		return nil, &ParseError{Offset: type1.Offset, RecordType: 1, Msg: "missing CNT field (1.03)"}
	}

	subfields := strings.Split(raw, string(rune(RS)))
	if len(subfields) < 1 {
		return nil, &ParseError{Offset: type1.Offset, RecordType: 1, Msg: "Malformed CNT"}
	}

	entries := make([]cntEntry, 0, len(subfields)-1)
	for _, sub := range subfields[1:] {
		items := strings.Split(sub, string(rune(US)))
		if len(items) < 2 {
			return nil, &ParseError{Offset: type1.Offset, RecordType: 1, Msg: "Malformed CNT"}
		}
		recordType, err := strconv.Atoi(strings.TrimSpace(items[0]))
		if err != nil {
			return nil, &ParseError{Offset: type1.Offset, RecordType: 1, Msg: "Malformed CNT"}
		}
		idc, err := strconv.Atoi(strings.TrimSpace(items[1]))
		if err != nil {
			return nil, &ParseError{Offset: type1.Offset, RecordType: 1, Msg: "Malformed CNT"}
		}
		entries = append(entries, cntEntry{recordType: recordType, idc: idc})
	}

	return entries, nil
}

// parseType4 reads one binary fingerprint record and cross-checks it
// against its manifest entry. The image payload aliases the input buffer.
func (p *parser) parseType4(entry cntEntry) (Type4Record, error) {
	start := p.pos
	if start+type4HeaderLen > len(p.data) {
		return Type4Record{}, &ParseError{Offset: start, RecordType: 4, Msg: "record header exceeds buffer"}
	}

	hdr := p.data[start:]
	length := int(binary.BigEndian.Uint32(hdr[0:4]))
	if length < type4HeaderLen {
		return Type4Record{}, &ParseError{Offset: start, RecordType: 4, Msg: "record length smaller than header"}
	}
	if start+length > len(p.data) {
		return Type4Record{}, &ParseError{Offset: start, RecordType: 4, Msg: "record length exceeds buffer"}
	}

	rec := Type4Record{
		Offset:         start,
		Length:         length,
		IDC:            int(hdr[4]),
		ImpressionType: int(hdr[5]),
		FingerPosition: int(hdr[6]), // first byte of the 6-byte FGP field
		ISR:            int(hdr[12]),
		Width:          int(binary.BigEndian.Uint16(hdr[13:15])),
		Height:         int(binary.BigEndian.Uint16(hdr[15:17])),
		Compression:    int(hdr[17]),
		ImageData:      p.data[start+type4HeaderLen : start+length],
	}

	if rec.IDC != entry.idc {
		return Type4Record{}, &ParseError{
			Offset:     start,
			RecordType: 4,
			Msg:        "IDC mismatch: CNT declares " + strconv.Itoa(entry.idc) + ", record has " + strconv.Itoa(rec.IDC),
		}
	}

	p.pos = start + length
	return rec, nil
}
