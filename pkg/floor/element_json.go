package floor

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type elementJSON struct {
	ID         string          `json:"id"`
	Type       ElementType     `json:"type"`
	X          float64         `json:"x"`
	Y          float64         `json:"y"`
	Rotation   float64         `json:"rotation,omitempty"`
	Layer      int             `json:"layer,omitempty"`
	Properties json.RawMessage `json:"properties,omitempty"`
}

// MarshalJSON encodes the element with its payload under "properties".
func (e Element) MarshalJSON() ([]byte, error) {
	out := elementJSON{ID: e.ID, Type: e.Type(), X: e.X, Y: e.Y, Rotation: e.Rotation, Layer: e.Layer}
	switch p := e.Props.(type) {
	case nil:
	case Unknown:
		out.Properties = p.Raw
	default:
		raw, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		out.Properties = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes an element, rejecting keys an element does not have
// and properties whose shape does not match the type tag. Unrecognised type
// tags decode into [Unknown].
func (e *Element) UnmarshalJSON(data []byte) error {
	var in elementJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return fmt.Errorf("element: %w", err)
	}
	props, err := decodeProps(in.Type, in.Properties)
	if err != nil {
		return fmt.Errorf("element %q: %w", in.ID, err)
	}
	*e = Element{ID: in.ID, X: in.X, Y: in.Y, Rotation: in.Rotation, Layer: in.Layer, Props: props}
	return nil
}

func decodeProps(t ElementType, raw json.RawMessage) (Props, error) {
	switch t {
	case TypeWall:
		return decodeAs[Wall](raw)
	case TypeDoor:
		return decodeAs[Door](raw)
	case TypeWindow:
		return decodeAs[Window](raw)
	case TypePlant:
		return decodeAs[Plant](raw)
	case TypeBar:
		return decodeAs[Bar](raw)
	case TypeColumn:
		return decodeAs[Column](raw)
	case TypeStairs:
		return decodeAs[Stairs](raw)
	case TypeArtwork:
		return decodeAs[Artwork](raw)
	case TypeCarpet:
		return decodeAs[Carpet](raw)
	case TypeFireplace:
		return decodeAs[Fireplace](raw)
	}
	return Unknown{Kind: t, Raw: bytes.Clone(raw)}, nil
}

func decodeAs[T Props](raw json.RawMessage) (Props, error) {
	var v T
	if len(raw) == 0 {
		return v, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%s properties: %w", v.Type(), err)
	}
	return v, nil
}
