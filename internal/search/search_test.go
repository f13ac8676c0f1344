package search

import (
	"testing"

	"github.com/LFroesch/tiles/internal/listing"
)

func TestSubstringMatchNames(t *testing.T) {
	names := []string{
		"file1.txt",
		"file2.txt",
		"document.pdf",
		"readme.md",
		"config.json",
	}

	tests := []struct {
		name          string
		query         string
		expectedCount int
	}{
		{"exact match", "file1.txt", 1},
		{"substring match", "file", 2}, // matches "file1" and "file2"
		{"partial match", "doc", 1},
		{"case insensitive", "FILE", 2}, // should match file1 and file2
		{"no match", "xyz", 0},
		{"empty query", "", 0}, // empty query returns no results
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := SubstringMatchNames(tt.query, names)
			if len(results) != tt.expectedCount {
				t.Errorf("SubstringMatchNames(%s) returned %d results, expected %d", tt.query, len(results), tt.expectedCount)
			}
		})
	}
}

func TestSubstringMatchedIndexesAreRunes(t *testing.T) {
	results := SubstringMatchNames("über", []string{"Grüße über alles"})
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	want := []int{6, 7, 8, 9}
	for i, idx := range results[0].MatchedIndexes {
		if idx != want[i] {
			t.Errorf("MatchedIndexes = %v, want %v", results[0].MatchedIndexes, want)
			break
		}
	}
}

func TestFuzzyMatchedIndexesAreRunes(t *testing.T) {
	names := []string{"über.txt"}

	fuzzyResults := FuzzyMatchNames("txt", names)
	substrResults := SubstringMatchNames("txt", names)
	if len(fuzzyResults) != 1 || len(substrResults) != 1 {
		t.Fatalf("expected one match from each mode, got %d and %d", len(fuzzyResults), len(substrResults))
	}

	want := []int{5, 6, 7}
	got := fuzzyResults[0].MatchedIndexes
	if len(got) != len(want) {
		t.Fatalf("fuzzy MatchedIndexes = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] || substrResults[0].MatchedIndexes[i] != want[i] {
			t.Errorf("fuzzy %v / substring %v, want %v", got, substrResults[0].MatchedIndexes, want)
			break
		}
	}
}

func TestFuzzyMatchNames(t *testing.T) {
	names := []string{"main.go", "model.go", "readme.md", "Makefile"}

	results := FuzzyMatchNames("mgo", names)
	if len(results) != 2 {
		t.Fatalf("FuzzyMatchNames returned %d results, expected 2", len(results))
	}
	for _, r := range results {
		if len(r.MatchedIndexes) != 3 {
			t.Errorf("expected 3 matched indexes for %s, got %v", names[r.Index], r.MatchedIndexes)
		}
	}
}

func entries(names ...string) []listing.Entry {
	out := make([]listing.Entry, len(names))
	for i, n := range names {
		out[i] = listing.Entry{Name: n, Path: "/x/" + n}
	}
	return out
}

func TestFilterKeepsListingOrder(t *testing.T) {
	list := entries("src", "main.go", "model.go", "go.mod")

	results := Filter("go", list, Fuzzy)
	got := listing.Names(Apply(list, results))
	want := []string{"main.go", "model.go", "go.mod"}

	if len(got) != len(want) {
		t.Fatalf("Filter returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Filter returned %v, want %v", got, want)
			break
		}
	}
}

func TestFilterEmptyQueryMatchesAll(t *testing.T) {
	list := entries("a", "b", "c")

	results := Filter("", list, Substring)
	if len(results) != len(list) {
		t.Fatalf("expected %d results, got %d", len(list), len(results))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has index %d", i, r.Index)
		}
	}
}

func TestParseMode(t *testing.T) {
	if ParseMode("substring") != Substring || ParseMode("SUBSTRING") != Substring {
		t.Error("ParseMode should recognise substring")
	}
	if ParseMode("") != Fuzzy || ParseMode("fuzzy") != Fuzzy || ParseMode("other") != Fuzzy {
		t.Error("ParseMode should default to fuzzy")
	}
}
