// Package legaldb defines the legal database document model and its JSON
// file representation.
package legaldb

import (
	"encoding/json"
	"fmt"
)

// Document is a legal code database: an ordered list of chapters plus
// free-form metadata. Both fields are optional on input; a document with no
// chapters key is valid and simply has nothing to enhance.
type Document struct {
	Chapters []*Chapter             `json:"chapters,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Chapter groups the articles of one chapter of the legal code. ID is
// derived during enhancement and absent on raw input.
type Chapter struct {
	Number   Number     `json:"chapter_number"`
	Title    string     `json:"chapter_title"`
	Articles []*Article `json:"articles,omitempty"`
	ID       string     `json:"id,omitempty"`
}

// Article is the leaf legal-text record. Number and Content are required on
// input; Points is optional. ID, FullText, Keywords, and Tags are derived
// during enhancement and overwrite whatever the input carried.
type Article struct {
	Number   Number   `json:"article_number"`
	Content  *string  `json:"content,omitempty"`
	Points   []string `json:"points,omitempty"`
	ID       string   `json:"id,omitempty"`
	FullText string   `json:"fullText,omitempty"`
	Keywords []string `json:"keywords"`
	Tags     []string `json:"tags,omitempty"`
}

// Number holds a chapter or article number that may appear in JSON as
// either an integer or a string. The original form is preserved when the
// document is written back out, so an input of 3 stays 3 and "3" stays "3".
// The zero Number reports unset, which is how a missing required number
// field is detected.
type Number struct {
	value  string
	quoted bool
	set    bool
}

// NumberOf returns a Number carrying the given bare value, in unquoted
// form. Intended for constructing documents in code.
func NumberOf(value string) Number {
	return Number{value: value, set: true}
}

// QuotedNumberOf returns a Number that serializes as a JSON string.
func QuotedNumberOf(value string) Number {
	return Number{value: value, quoted: true, set: true}
}

// IsSet reports whether the field was present in the input.
func (n Number) IsSet() bool { return n.set }

// String returns the bare number text, without quotes, for building
// derived identifiers.
func (n Number) String() string { return n.value }

// UnmarshalJSON accepts either a JSON number or a JSON string. A JSON null
// leaves the Number unset.
func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number{value: s, quoted: true, set: true}
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("number must be an integer or string, got %s", data)
	}
	*n = Number{value: num.String(), set: true}
	return nil
}

// MarshalJSON writes the number back in its original form.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	if n.quoted {
		return json.Marshal(n.value)
	}
	return []byte(n.value), nil
}
