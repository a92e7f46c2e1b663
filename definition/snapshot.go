package definition

import (
	"bytes"
	"maps"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot returns a stable msgpack encoding of the document: the raw
// key/value form is rebuilt and encoded with sorted map keys, so two
// equal documents always encode to the same bytes. The watch helper
// compares snapshots to skip re-extension when a file rewrite does not
// change the decoded document.
func (d *Document) Snapshot() ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(d.raw()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RestoreSnapshot decodes a document from its snapshot bytes.
func RestoreSnapshot(data []byte) (*Document, error) {
	raw := make(map[string]any)
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return Decode(raw)
}

// raw rebuilds the raw key/value form of the document, the inverse of
// Decode. The reserved "name"/"base" keys were dropped at decode time
// and do not reappear.
func (d *Document) raw() map[string]any {
	raw := make(map[string]any, len(d.Settings)+3)
	maps.Copy(raw, d.Settings)
	if len(d.Properties) > 0 {
		props := make(map[string]any, len(d.Properties))
		for name, p := range d.Properties {
			props[name] = map[string]any(p)
		}
		raw["properties"] = props
	}
	if len(d.Relations) > 0 {
		rels := make(map[string]any, len(d.Relations))
		for name, spec := range d.Relations {
			rel := make(map[string]any, len(spec.Options)+2)
			maps.Copy(rel, spec.Options)
			if spec.Type != "" {
				rel["type"] = spec.Type
			}
			if spec.Model != "" {
				rel["model"] = spec.Model
			}
			rels[name] = rel
		}
		raw["relations"] = rels
	}
	if len(d.Mixins) > 0 {
		raw["mixins"] = maps.Clone(d.Mixins)
	}
	return raw
}
