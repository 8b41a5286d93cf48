// Package wsq decodes FBI Wavelet Scalar Quantization (WSQ) compressed
// grayscale fingerprint images per IAFIS-IC-0110v3.
//
// WSQ is the codec mandated for 500 PPI fingerprint imagery exchanged in
// ANSI/NIST-ITL transactions. A WSQ stream is a marker-delimited container
// (SOI..EOI) carrying a transform table (DTT), a quantization table (DQT),
// up to eight Huffman tables (DHT), and one frame of entropy-coded subband
// data. Decoding runs the pipeline:
//
//	markers/tables -> huffman -> unquantize -> inverse wavelet -> bytes
//
// Basic usage:
//
//	img, err := wsq.Decode(blob)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// img.Pixels is a row-major width*height byte raster
//
// Decode is a pure function of its input: identical bytes produce identical
// pixels. All working state is owned by the in-flight call, so disjoint
// inputs may be decoded concurrently without coordination.
package wsq

import (
	"image"
)

// WSQ marker codes. All markers are 16 bits with a 0xFF high byte.
const (
	markerSOI = 0xffa0 // start of image
	markerEOI = 0xffa1 // end of image
	markerSOF = 0xffa2 // start of frame
	markerSOB = 0xffa3 // start of block
	markerDTT = 0xffa4 // define transform table
	markerDQT = 0xffa5 // define quantization table
	markerDHT = 0xffa6 // define huffman table
	markerDRT = 0xffa7 // reserved
	markerCOM = 0xffa8 // comment
)

// Marker read contexts. The decoder only accepts the marker set valid at
// the current position in the stream.
const (
	ctxSOI       = iota // only SOI
	ctxTblsOrSOF        // tables, comment, SOF, or EOI
	ctxTblsOrSOB        // tables, comment, SOB, or EOI
)

const (
	maxDHTTables  = 8
	maxSubbands   = 64
	numSubbands   = 60
	maxHuffbits   = 16
	maxHuffcounts = 256
	wTreeLen      = 20
	qTreeLen      = 64
)

// DecodedImage is a raw decompressed grayscale raster. Pixels is row-major,
// one byte per pixel, of length exactly Width*Height.
type DecodedImage struct {
	Width  int
	Height int
	Pixels []byte
}

// Decode decompresses a WSQ stream into a raw grayscale raster.
func Decode(data []byte) (*DecodedImage, error) {
	d := newDecoder(data)

	if _, err := d.readMarker(ctxSOI); err != nil {
		return nil, err
	}

	// Supporting tables up to the SOF marker.
	marker, err := d.readMarker(ctxTblsOrSOF)
	if err != nil {
		return nil, err
	}
	for marker != markerSOF {
		if err := d.readTable(marker); err != nil {
			return nil, err
		}
		marker, err = d.readMarker(ctxTblsOrSOF)
		if err != nil {
			return nil, err
		}
	}

	frm, err := d.readFrameHeader()
	if err != nil {
		return nil, err
	}
	width, height := frm.width, frm.height

	d.buildTrees(width, height)

	qdata, err := d.huffmanDecode(width * height)
	if err != nil {
		return nil, err
	}

	fdata, err := d.unquantize(qdata, width, height)
	if err != nil {
		return nil, err
	}

	if err := d.reconstruct(fdata, width, height); err != nil {
		return nil, err
	}

	pixels := make([]byte, width*height)
	for i, f := range fdata {
		p := f*frm.rScale + frm.mShift
		p += 0.5
		switch {
		case p < 0.0:
			pixels[i] = 0
		case p > 255.0:
			pixels[i] = 255
		default:
			pixels[i] = byte(p)
		}
	}

	return &DecodedImage{Width: width, Height: height, Pixels: pixels}, nil
}

// DecodeGray decompresses a WSQ stream into a stdlib grayscale image.
func DecodeGray(data []byte) (*image.Gray, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	gray := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
	copy(gray.Pix, img.Pixels)
	return gray, nil
}
