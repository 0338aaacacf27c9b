package legaldb

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNumber_IntFormPreserved(t *testing.T) {
	input := `{"chapter_number": 3, "chapter_title": "General"}`

	var chapter Chapter
	if err := json.Unmarshal([]byte(input), &chapter); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !chapter.Number.IsSet() {
		t.Fatal("Expected number to be set")
	}
	if chapter.Number.String() != "3" {
		t.Errorf("Expected bare value %q, got %q", "3", chapter.Number.String())
	}

	data, err := json.Marshal(chapter)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(string(data), `"chapter_number":3`) {
		t.Errorf("Expected integer form to be preserved, got %s", data)
	}
}

func TestNumber_StringFormPreserved(t *testing.T) {
	input := `{"chapter_number": "3a", "chapter_title": "General"}`

	var chapter Chapter
	if err := json.Unmarshal([]byte(input), &chapter); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if chapter.Number.String() != "3a" {
		t.Errorf("Expected bare value %q, got %q", "3a", chapter.Number.String())
	}

	data, err := json.Marshal(chapter)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(string(data), `"chapter_number":"3a"`) {
		t.Errorf("Expected string form to be preserved, got %s", data)
	}
}

func TestNumber_AbsentAndNullAreUnset(t *testing.T) {
	for _, input := range []string{
		`{"chapter_title": "General"}`,
		`{"chapter_number": null, "chapter_title": "General"}`,
	} {
		var chapter Chapter
		if err := json.Unmarshal([]byte(input), &chapter); err != nil {
			t.Fatalf("Unexpected error for %s: %v", input, err)
		}
		if chapter.Number.IsSet() {
			t.Errorf("Expected number to be unset for %s", input)
		}
	}
}

func TestNumber_RejectsOtherTypes(t *testing.T) {
	var chapter Chapter
	err := json.Unmarshal([]byte(`{"chapter_number": [1]}`), &chapter)
	if err == nil {
		t.Fatal("Expected error for array-valued number")
	}
}

func TestNumberOf(t *testing.T) {
	n := NumberOf("7")
	if !n.IsSet() {
		t.Fatal("Expected constructed number to be set")
	}
	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(data) != "7" {
		t.Errorf("Expected bare 7, got %s", data)
	}

	q := QuotedNumberOf("7")
	data, err = json.Marshal(q)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(data) != `"7"` {
		t.Errorf("Expected quoted form, got %s", data)
	}
}
