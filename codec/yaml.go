package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlCodec struct{}

func (yamlCodec) Format() Format { return FormatYAML }

func (yamlCodec) Marshal(v any) (data []byte, err error) {
	// yaml.v3 panics on kinds it cannot represent (chan, func)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("yaml: %v", r)
		}
	}()
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err = enc.Encode(v); err != nil {
		return nil, err
	}
	if err = enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal accepts block-style documents only. A non-empty flow-style root
// is JSON text and is refused, so a JSON file does not load as YAML.
func (yamlCodec) Unmarshal(data []byte, v any) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err == nil && len(root.Content) > 0 {
		if doc := root.Content[0]; doc.Style&yaml.FlowStyle != 0 && len(doc.Content) > 0 {
			return fmt.Errorf("yaml: flow-style document root at line %d", doc.Line)
		}
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("yaml: empty document")
		}
		return err
	}
	var trailing yaml.Node
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return fmt.Errorf("yaml: unexpected data after first document")
	}
	return nil
}
