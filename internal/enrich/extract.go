package enrich

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

const (
	maxPerList    = 5
	summaryLength = 300
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`[+(]?\d[\d\s\-().]{5,}\d`)
	linkPattern  = regexp.MustCompile(`\]\((https?://[^)\s]+|/[^)\s]*)\)`)
)

// extractEmails returns unique email addresses found in the text, capped.
func extractEmails(text string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, m := range emailPattern.FindAllString(text, -1) {
		key := strings.ToLower(m)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
		if len(out) == maxPerList {
			break
		}
	}
	return out
}

// extractPhones returns unique phone-like sequences: runs of digits with
// common separators carrying at least 8 digits. Shorter runs (postcodes,
// years) are rejected.
func extractPhones(text string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, m := range phonePattern.FindAllString(text, -1) {
		if digitCount(m) < 8 {
			continue
		}
		cleaned := strings.TrimSpace(m)
		if _, ok := seen[cleaned]; ok {
			continue
		}
		seen[cleaned] = struct{}{}
		out = append(out, cleaned)
		if len(out) == maxPerList {
			break
		}
	}
	return out
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// extractContactLinks returns unique links from markdown link targets whose
// path mentions contact or about pages. Relative targets are resolved
// against baseURL.
func extractContactLinks(text, baseURL string) []string {
	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	var out []string
	seen := map[string]struct{}{}
	for _, m := range linkPattern.FindAllStringSubmatch(text, -1) {
		target := m[1]
		u, err := url.Parse(target)
		if err != nil {
			continue
		}
		if !u.IsAbs() {
			if base == nil {
				continue
			}
			u = base.ResolveReference(u)
		}
		path := strings.ToLower(u.Path)
		if !strings.Contains(path, "contact") && !strings.Contains(path, "about") {
			continue
		}
		resolved := u.String()
		if _, ok := seen[resolved]; ok {
			continue
		}
		seen[resolved] = struct{}{}
		out = append(out, resolved)
		if len(out) == maxPerList {
			break
		}
	}
	return out
}

// summarize keeps the leading excerpt of the page text.
func summarize(text string) string {
	trimmed := strings.TrimSpace(text)
	runes := []rune(trimmed)
	if len(runes) <= summaryLength {
		return trimmed
	}
	return string(runes[:summaryLength])
}
