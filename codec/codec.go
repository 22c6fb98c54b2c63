package codec

import "fmt"

// Codec encodes and decodes values for one Format.
//
// Unmarshal is strict: unknown fields, trailing data and empty input are
// errors, so bytes written in another format fail instead of decoding into
// something plausible.
type Codec interface {
	// Marshal serialises v.
	Marshal(v any) ([]byte, error)
	// Unmarshal deserialises data into v, which must be a pointer.
	Unmarshal(data []byte, v any) error
	// Format returns the encoding this codec implements.
	Format() Format
}

// For returns the codec implementing f.
func For(f Format) (Codec, error) {
	switch f {
	case FormatMsgPack:
		return msgpackCodec{}, nil
	case FormatCBOR:
		return cborCodec{}, nil
	case FormatJSON:
		return jsonCodec{}, nil
	case FormatYAML:
		return yamlCodec{}, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
}

// Marshal encodes v with the codec for f.
func Marshal(f Format, v any) ([]byte, error) {
	c, err := For(f)
	if err != nil {
		return nil, err
	}
	return c.Marshal(v)
}

// Unmarshal decodes data into v with the codec for f.
func Unmarshal(f Format, data []byte, v any) error {
	c, err := For(f)
	if err != nil {
		return err
	}
	return c.Unmarshal(data, v)
}
