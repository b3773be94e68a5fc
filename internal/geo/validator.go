// Package geo decides whether a place record plausibly lies within the
// region a job asked for, using flexible string matching against the
// record's address.
package geo

import "strings"

// Criteria is the subset of the job input used for geographic filtering.
// Absent fields are not checked.
type Criteria struct {
	State    string
	City     string
	Postcode string
}

// Empty reports whether no criterion is supplied.
func (c Criteria) Empty() bool {
	return c.State == "" && c.City == "" && c.Postcode == ""
}

// IsValid reports whether the address satisfies every supplied criterion.
// A record with no address is rejected as soon as any criterion is
// supplied.
func IsValid(address string, crit Criteria) bool {
	if crit.Empty() {
		return true
	}
	addr := strings.ToLower(strings.TrimSpace(address))
	if addr == "" {
		return false
	}

	if crit.Postcode != "" && !strings.Contains(addr, strings.ToLower(crit.Postcode)) {
		return false
	}
	if crit.State != "" && !matchState(addr, crit.State) {
		return false
	}
	if crit.City != "" && !matchCity(addr, crit.City) {
		return false
	}
	return true
}

// matchState accepts the address if any known or generated variant of the
// state name appears in it.
func matchState(addr, state string) bool {
	for _, v := range stateVariants(state) {
		if strings.Contains(addr, v) {
			return true
		}
	}
	return false
}

// matchCity tries a plain substring match, then retries with all
// whitespace stripped from both sides to handle concatenated-word
// variants ("New Delhi" vs "NewDelhi").
func matchCity(addr, city string) bool {
	c := strings.ToLower(strings.TrimSpace(city))
	if c == "" {
		return true
	}
	if strings.Contains(addr, c) {
		return true
	}
	squash := func(s string) string {
		return strings.Join(strings.Fields(s), "")
	}
	return strings.Contains(squash(addr), squash(c))
}

// stateVariants returns the accepted spellings for a state name: the
// curated alias set when the state is known, otherwise the lowercased
// full name plus an acronym built from the first letter of each word
// (plain and dot-separated). Acronyms are only generated for multi-word
// names; a single-letter variant would match almost any address.
func stateVariants(state string) []string {
	key := strings.ToLower(strings.TrimSpace(state))
	if key == "" {
		return nil
	}
	if known, ok := stateAliases[key]; ok {
		return known
	}

	variants := []string{key}
	words := strings.Fields(key)
	if len(words) >= 2 {
		var plain, dotted strings.Builder
		for _, w := range words {
			plain.WriteByte(w[0])
			dotted.WriteByte(w[0])
			dotted.WriteByte('.')
		}
		variants = append(variants, plain.String(), dotted.String())
	}
	return variants
}
