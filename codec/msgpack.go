package codec

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// structTag is shared by the binary codecs so types only need json/yaml tags.
const structTag = "json"

type msgpackCodec struct{}

func (msgpackCodec) Format() Format { return FormatMsgPack }

func (msgpackCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag(structTag)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (msgpackCodec) Unmarshal(data []byte, v any) error {
	reader := bytes.NewReader(data)
	dec := msgpack.NewDecoder(reader)
	dec.SetCustomStructTag(structTag)
	dec.DisallowUnknownFields(true)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if reader.Len() > 0 {
		return fmt.Errorf("msgpack: %d bytes of trailing data", reader.Len())
	}
	return nil
}
