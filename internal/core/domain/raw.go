package domain

import (
	"bytes"
	"encoding/json"
)

// PayloadShape identifies which of the recognised source schemas a raw JSON
// payload follows. Shape detection is a separate step from normalisation so
// that the transformation logic never interleaves with shape sniffing.
type PayloadShape int

const (
	// ShapeUnknown is any payload matching none of the recognised schemas,
	// including payloads that are not valid JSON.
	ShapeUnknown PayloadShape = iota

	// ShapeDailyList is a top-level array of dated entries.
	ShapeDailyList

	// ShapeCompound is an object carrying any of the steps, traditions, or
	// foreword keys: one file holding two sub-documents.
	ShapeCompound

	// ShapeSectioned is a generic object with an ordered sections array.
	ShapeSectioned
)

// String returns the shape name for logs and errors.
func (s PayloadShape) String() string {
	switch s {
	case ShapeDailyList:
		return "daily-list"
	case ShapeCompound:
		return "compound"
	case ShapeSectioned:
		return "sectioned"
	default:
		return "unknown"
	}
}

// DetectShape inspects a raw JSON payload and classifies it. The checks run
// in the documented dispatch order: array first, then compound keys, then a
// sections array, then unknown. Malformed JSON is ShapeUnknown, never an
// error: unrecognised input degrades to an empty document downstream.
func DetectShape(data []byte) PayloadShape {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ShapeUnknown
	}

	if trimmed[0] == '[' {
		var list []json.RawMessage
		if json.Unmarshal(trimmed, &list) == nil {
			return ShapeDailyList
		}
		return ShapeUnknown
	}

	var obj map[string]json.RawMessage
	if json.Unmarshal(trimmed, &obj) != nil {
		return ShapeUnknown
	}

	if _, ok := obj["steps"]; ok {
		return ShapeCompound
	}
	if _, ok := obj["traditions"]; ok {
		return ShapeCompound
	}
	if _, ok := obj["foreword"]; ok {
		return ShapeCompound
	}

	if sections, ok := obj["sections"]; ok {
		var list []json.RawMessage
		if json.Unmarshal(sections, &list) == nil {
			return ShapeSectioned
		}
	}

	return ShapeUnknown
}
