package region

// countryEntry is one row of the ISO 3166-1 catalog. Aliases cover the
// common spellings seen in job inputs.
type countryEntry struct {
	code    string
	name    string
	aliases []string
}

var countries = []countryEntry{
	{code: "ae", name: "United Arab Emirates", aliases: []string{"UAE"}},
	{code: "ar", name: "Argentina"},
	{code: "at", name: "Austria"},
	{code: "au", name: "Australia"},
	{code: "bd", name: "Bangladesh"},
	{code: "be", name: "Belgium"},
	{code: "br", name: "Brazil"},
	{code: "ca", name: "Canada"},
	{code: "ch", name: "Switzerland"},
	{code: "cl", name: "Chile"},
	{code: "cn", name: "China", aliases: []string{"People's Republic of China"}},
	{code: "co", name: "Colombia"},
	{code: "cz", name: "Czech Republic", aliases: []string{"Czechia"}},
	{code: "de", name: "Germany"},
	{code: "dk", name: "Denmark"},
	{code: "eg", name: "Egypt"},
	{code: "es", name: "Spain"},
	{code: "fi", name: "Finland"},
	{code: "fr", name: "France"},
	{code: "gb", name: "United Kingdom", aliases: []string{"UK", "Great Britain", "England", "Scotland", "Wales"}},
	{code: "gr", name: "Greece"},
	{code: "hk", name: "Hong Kong"},
	{code: "hu", name: "Hungary"},
	{code: "id", name: "Indonesia"},
	{code: "ie", name: "Ireland", aliases: []string{"Republic of Ireland"}},
	{code: "il", name: "Israel"},
	{code: "in", name: "India", aliases: []string{"Bharat"}},
	{code: "it", name: "Italy"},
	{code: "jp", name: "Japan"},
	{code: "ke", name: "Kenya"},
	{code: "kr", name: "South Korea", aliases: []string{"Korea", "Republic of Korea"}},
	{code: "lk", name: "Sri Lanka"},
	{code: "mx", name: "Mexico"},
	{code: "my", name: "Malaysia"},
	{code: "ng", name: "Nigeria"},
	{code: "nl", name: "Netherlands", aliases: []string{"Holland", "The Netherlands"}},
	{code: "no", name: "Norway"},
	{code: "np", name: "Nepal"},
	{code: "nz", name: "New Zealand"},
	{code: "ph", name: "Philippines", aliases: []string{"The Philippines"}},
	{code: "pk", name: "Pakistan"},
	{code: "pl", name: "Poland"},
	{code: "pt", name: "Portugal"},
	{code: "qa", name: "Qatar"},
	{code: "ro", name: "Romania"},
	{code: "sa", name: "Saudi Arabia", aliases: []string{"KSA"}},
	{code: "se", name: "Sweden"},
	{code: "sg", name: "Singapore"},
	{code: "th", name: "Thailand"},
	{code: "tr", name: "Turkey", aliases: []string{"Turkiye", "Türkiye"}},
	{code: "tw", name: "Taiwan"},
	{code: "ua", name: "Ukraine"},
	{code: "us", name: "United States", aliases: []string{"USA", "United States of America", "America", "U.S.", "U.S.A."}},
	{code: "vn", name: "Vietnam", aliases: []string{"Viet Nam"}},
	{code: "za", name: "South Africa"},
}
