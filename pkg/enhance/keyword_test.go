package enhance

import (
	"reflect"
	"testing"
)

func TestExtractKeywords_SampleText(t *testing.T) {
	got := ExtractKeywords("This is a test first point; second")

	// "first" (5) and "point;" (6, punctuation retained) qualify;
	// "test" (4) does not.
	want := []string{"first", "point;", "second"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestExtractKeywords_Lowercases(t *testing.T) {
	got := ExtractKeywords("COURT court Court")

	want := []string{"court"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected duplicates to collapse after lowercasing, got %v", got)
	}
}

func TestExtractKeywords_LengthBoundary(t *testing.T) {
	got := ExtractKeywords("a ab abc abcd abcde")

	want := []string{"abcde"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected only tokens longer than 4 characters, got %v", got)
	}
}

func TestExtractKeywords_CountsRunesNotBytes(t *testing.T) {
	// "étude" is 5 characters but 6 bytes.
	got := ExtractKeywords("étude café")

	want := []string{"étude"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected character-based length check, got %v", got)
	}
}

func TestExtractKeywords_Empty(t *testing.T) {
	got := ExtractKeywords("")
	if len(got) != 0 {
		t.Errorf("Expected no keywords for empty text, got %v", got)
	}

	got = ExtractKeywords("   \t\n  ")
	if len(got) != 0 {
		t.Errorf("Expected no keywords for whitespace-only text, got %v", got)
	}
}

func TestExtractKeywords_Sorted(t *testing.T) {
	got := ExtractKeywords("zebra apple mango")

	want := []string{"apple", "mango", "zebra"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected sorted keywords, got %v", got)
	}
}
