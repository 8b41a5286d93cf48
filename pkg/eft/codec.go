package eft

import (
	"github.com/jpfielding/eft.go/pkg/compress/wsq"
)

// Codec decompresses a Type-4 image payload.
type Codec interface {
	// Decode decompresses the payload into a raw grayscale raster.
	Decode(data []byte) (*wsq.DecodedImage, error)
	// Name returns the codec identifier (e.g., "wsq").
	Name() string
	// Code returns the Type-4 compression byte this codec handles.
	Code() int
}

// wsqCodec implements Codec for WSQ-compressed payloads.
type wsqCodec struct{}

func (c *wsqCodec) Decode(data []byte) (*wsq.DecodedImage, error) {
	return wsq.Decode(data)
}

func (c *wsqCodec) Name() string { return "wsq" }

func (c *wsqCodec) Code() int { return 1 }

// codecsByCode maps the Type-4 compression byte to an implementation.
var codecsByCode = map[int]Codec{
	1: &wsqCodec{},
}

// CodecWSQ is the predefined WSQ codec instance.
var CodecWSQ Codec = codecsByCode[1]

// CodecByCode returns the codec for a Type-4 compression byte, or nil.
func CodecByCode(code int) Codec {
	return codecsByCode[code]
}

// DecodeImage decompresses the record's payload through the codec registry.
func (r *Type4Record) DecodeImage() (*wsq.DecodedImage, error) {
	codec := CodecByCode(r.Compression)
	if codec == nil {
		return nil, &ValidationError{Msg: "unsupported compression: " + r.CompressionName()}
	}
	return codec.Decode(r.ImageData)
}
