// Package search filters the current listing by name.
package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/LFroesch/tiles/internal/listing"
)

// Mode selects how a query matches names.
type Mode int

const (
	Fuzzy Mode = iota
	Substring
)

// ParseMode maps a config value to a Mode, defaulting to Fuzzy.
func ParseMode(s string) Mode {
	if strings.EqualFold(s, "substring") {
		return Substring
	}
	return Fuzzy
}

// MatchResult is one matching entry and the rune positions that matched.
type MatchResult struct {
	Index          int
	MatchedIndexes []int
}

// Filter returns the entries whose names match query, in listing order so
// directories stay ahead of files. An empty query matches everything.
func Filter(query string, entries []listing.Entry, mode Mode) []MatchResult {
	if query == "" {
		all := make([]MatchResult, len(entries))
		for i := range entries {
			all[i] = MatchResult{Index: i}
		}
		return all
	}

	names := listing.Names(entries)
	var results []MatchResult
	if mode == Substring {
		results = SubstringMatchNames(query, names)
	} else {
		results = FuzzyMatchNames(query, names)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}

// FuzzyMatchNames matches query against names with sahilm/fuzzy.
func FuzzyMatchNames(query string, names []string) []MatchResult {
	matches := fuzzy.Find(query, names)
	results := make([]MatchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, MatchResult{
			Index:          m.Index,
			MatchedIndexes: runeOffsets(m.Str, m.MatchedIndexes),
		})
	}
	return results
}

// runeOffsets converts fuzzy's byte offsets into rune positions so both
// modes report MatchedIndexes the same way.
func runeOffsets(s string, byteIdx []int) []int {
	out := make([]int, 0, len(byteIdx))
	for _, b := range byteIdx {
		if b < 0 || b > len(s) {
			continue
		}
		out = append(out, utf8.RuneCountInString(s[:b]))
	}
	return out
}

// SubstringMatchNames performs case-insensitive substring matching on a list of names
func SubstringMatchNames(query string, names []string) []MatchResult {
	if query == "" {
		return nil
	}

	needle := []rune(strings.ToLower(query))
	var results []MatchResult

	for i, name := range names {
		hay := []rune(strings.ToLower(name))
		start := runeIndex(hay, needle)
		if start < 0 {
			continue
		}
		matched := make([]int, len(needle))
		for j := range needle {
			matched[j] = start + j
		}
		results = append(results, MatchResult{Index: i, MatchedIndexes: matched})
	}

	return results
}

func runeIndex(hay, needle []rune) int {
	for i := 0; i+len(needle) <= len(hay); i++ {
		match := true
		for j := range needle {
			if hay[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// Apply returns the entries selected by results.
func Apply(entries []listing.Entry, results []MatchResult) []listing.Entry {
	out := make([]listing.Entry, 0, len(results))
	for _, r := range results {
		out = append(out, entries[r.Index])
	}
	return out
}
