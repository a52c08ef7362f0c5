// Package strutil provides string helpers for file names and tabular values.
package strutil

import (
	"regexp"
	"slices"
	"strings"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// AlphanumericSort returns a sorted copy of items in which runs of digits
// compare by their integer value, so "file2" sorts before "file10". The sort
// is stable and items is not modified.
func AlphanumericSort(items []string) []string {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, CompareAlphanumeric)

	return sorted
}

// CompareAlphanumeric compares a and b by their alphanumeric keys. It returns
// a negative number when a < b, a positive number when a > b and zero when
// the keys are equal (for example "a01" and "a1").
func CompareAlphanumeric(a, b string) int {
	ka, kb := alphanumericKey(a), alphanumericKey(b)

	for i := 0; i < len(ka) && i < len(kb); i++ {
		var c int
		if i%2 == 0 {
			c = strings.Compare(ka[i], kb[i])
		} else {
			c = compareDigits(ka[i], kb[i])
		}

		if c != 0 {
			return c
		}
	}

	return len(ka) - len(kb)
}

// alphanumericKey splits s into alternating text and digit tokens. Even
// indexes hold text (possibly empty), odd indexes hold digit runs.
func alphanumericKey(s string) []string {
	locs := digitRun.FindAllStringIndex(s, -1)
	key := make([]string, 0, 2*len(locs)+1)

	last := 0
	for _, loc := range locs {
		key = append(key, s[last:loc[0]], s[loc[0]:loc[1]])
		last = loc[1]
	}

	return append(key, s[last:])
}

// compareDigits compares two runs of ASCII digits by numeric value without
// converting them, so runs of any length are supported.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")

	if len(a) != len(b) {
		return len(a) - len(b)
	}

	return strings.Compare(a, b)
}
