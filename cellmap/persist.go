package cellmap

import (
	"encoding/json"
	"fmt"

	"github.com/terraincore/heightline/terrain"
)

// wireLayer is one on-disk layer entry, matching the persisted JSON field
// names exactly.
type wireLayer struct {
	TerrainTypeID string  `json:"terrainTypeId"`
	Elevation     float64 `json:"elevation"`
	Height        float64 `json:"height"`
}

// wireEntry is one ["R|C", [layers...]] pair in the v1 "data" array.
type wireEntry struct {
	Key    string
	Layers []wireLayer
}

// MarshalJSON renders a wireEntry as a 2-element JSON array.
func (e wireEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{e.Key, e.Layers})
}

// UnmarshalJSON parses a wireEntry from a 2-element JSON array.
func (e *wireEntry) UnmarshalJSON(b []byte) error {
	var raw [2]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("cellmap: malformed data entry: %w", err)
	}
	if err := json.Unmarshal(raw[0], &e.Key); err != nil {
		return fmt.Errorf("cellmap: malformed data entry key: %w", err)
	}
	if err := json.Unmarshal(raw[1], &e.Layers); err != nil {
		return fmt.Errorf("cellmap: malformed data entry layers: %w", err)
	}
	return nil
}

// wireDocV1 is the v=1 on-disk format.
type wireDocV1 struct {
	V    int         `json:"v"`
	Data []wireEntry `json:"data"`
}

// wireEntryV0 is one entry of the legacy flat-array v=0 format.
type wireEntryV0 struct {
	Position      [2]int32 `json:"position"`
	TerrainTypeID string   `json:"terrainTypeId"`
	Height        float64  `json:"height"`
	Elevation     *float64 `json:"elevation,omitempty"`
}

// Save serializes d into the v=1 wire format. Layers for
// terrain ids unknown to reg are silently dropped; cells left with an
// empty stack are omitted.
func Save(d Data, reg terrain.Registry) ([]byte, error) {
	doc := wireDocV1{V: 1}
	for _, key := range SortedKeys(d) {
		stack := d[key]
		var layers []wireLayer
		for _, l := range stack {
			if _, ok := reg.Lookup(l.TerrainTypeID); !ok {
				continue
			}
			layers = append(layers, wireLayer{
				TerrainTypeID: l.TerrainTypeID,
				Elevation:     l.Elevation,
				Height:        l.Height,
			})
		}
		if len(layers) == 0 {
			continue
		}
		doc.Data = append(doc.Data, wireEntry{Key: key.String(), Layers: layers})
	}
	if doc.Data == nil {
		doc.Data = []wireEntry{}
	}
	return json.Marshal(doc)
}

// versionProbe sniffs the "v" field without fully decoding either shape.
type versionProbe struct {
	V *int `json:"v"`
}

// Load decodes either the current v=1 format or the legacy flat-array v=0
// format; a missing "elevation" in the v=0 form defaults
// to 0.
func Load(b []byte) (Data, error) {
	var probe versionProbe
	if err := json.Unmarshal(b, &probe); err == nil && probe.V != nil && *probe.V == 1 {
		var doc wireDocV1
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("cellmap: malformed v1 document: %w", err)
		}
		out := NewData()
		for _, entry := range doc.Data {
			key, err := ParseKey(entry.Key)
			if err != nil {
				return nil, err
			}
			stack := make(Stack, 0, len(entry.Layers))
			for _, l := range entry.Layers {
				stack = append(stack, Layer{
					TerrainTypeID: l.TerrainTypeID,
					Elevation:     l.Elevation,
					Height:        l.Height,
				})
			}
			if len(stack) > 0 {
				out[key] = stack
			}
		}
		return out, nil
	}

	var legacy []wireEntryV0
	if err := json.Unmarshal(b, &legacy); err != nil {
		return nil, fmt.Errorf("cellmap: malformed v0 document: %w", err)
	}
	out := NewData()
	for _, e := range legacy {
		elevation := 0.0
		if e.Elevation != nil {
			elevation = *e.Elevation
		}
		key := Key{Row: e.Position[0], Col: e.Position[1]}
		out[key] = append(out[key], Layer{
			TerrainTypeID: e.TerrainTypeID,
			Elevation:     elevation,
			Height:        e.Height,
		})
	}
	return out, nil
}
