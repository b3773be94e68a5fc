// Package region builds the location anchor that scopes every search in a
// job and resolves country names to ISO 3166-1 alpha-2 codes.
package region

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/sells-group/leadgen-cli/internal/model"
)

// Resolve composes the region anchor for a job. Precedence: a postcode is
// the strongest anchor (combined with the country when both are present),
// then city (with state appended), then state (with country appended),
// then country alone. All inputs are optional; an all-empty input yields
// an empty anchor, which leaves searches unscoped.
func Resolve(country, state, city, postcode string) model.RegionAnchor {
	country = strings.TrimSpace(country)
	state = strings.TrimSpace(state)
	city = strings.TrimSpace(city)
	postcode = strings.TrimSpace(postcode)

	var display string
	switch {
	case postcode != "" && country != "":
		display = postcode + ", " + country
	case postcode != "":
		display = postcode
	case city != "" && state != "":
		display = city + ", " + state
	case city != "":
		display = city
	case state != "" && country != "":
		display = state + ", " + country
	case state != "":
		display = state
	default:
		display = country
	}

	return model.RegionAnchor{
		Display:     display,
		CountryCode: CountryCode(country),
	}
}

var folder = cases.Fold()

// CountryCode resolves a country name to its lowercase two-letter code.
// Matching is case-insensitive against the catalog name, its registered
// aliases, and the code itself. An unrecognized name returns "" — callers
// skip provider-side country locking rather than failing the job.
func CountryCode(name string) string {
	key := folder.String(strings.TrimSpace(name))
	if key == "" {
		return ""
	}
	return countryIndex[key]
}

// countryIndex maps folded names, aliases, and codes to the alpha-2 code.
var countryIndex = buildCountryIndex()

func buildCountryIndex() map[string]string {
	idx := make(map[string]string, len(countries)*3)
	for _, c := range countries {
		idx[folder.String(c.name)] = c.code
		idx[c.code] = c.code
		for _, a := range c.aliases {
			idx[folder.String(a)] = c.code
		}
	}
	return idx
}
