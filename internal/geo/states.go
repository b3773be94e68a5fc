package geo

// stateAliases maps a lowercased state name to every spelling accepted in
// an address. Covers the Indian states and union territories plus the US
// states, the two markets the jobs run against. Unknown names fall back
// to generated variants in stateVariants.
var stateAliases = map[string][]string{
	// India
	"andhra pradesh":    {"andhra pradesh", "andhrapradesh", "ap", "a.p"},
	"arunachal pradesh": {"arunachal pradesh", "arunachalpradesh", "ar"},
	"assam":             {"assam", "as"},
	"bihar":             {"bihar", "br"},
	"chhattisgarh":      {"chhattisgarh", "chattisgarh", "cg", "c.g"},
	"goa":               {"goa", "ga"},
	"gujarat":           {"gujarat", "gj"},
	"haryana":           {"haryana", "hr"},
	"himachal pradesh":  {"himachal pradesh", "himachalpradesh", "hp", "h.p"},
	"jharkhand":         {"jharkhand", "jh"},
	"karnataka":         {"karnataka", "ka"},
	"kerala":            {"kerala", "kl"},
	"madhya pradesh":    {"madhya pradesh", "madhyapradesh", "mp", "m.p"},
	"maharashtra":       {"maharashtra", "mh"},
	"manipur":           {"manipur", "mn"},
	"meghalaya":         {"meghalaya", "ml"},
	"mizoram":           {"mizoram", "mz"},
	"nagaland":          {"nagaland", "nl"},
	"odisha":            {"odisha", "orissa", "od", "or"},
	"punjab":            {"punjab", "pb"},
	"rajasthan":         {"rajasthan", "rj"},
	"sikkim":            {"sikkim", "sk"},
	"tamil nadu":        {"tamil nadu", "tamilnadu", "tn", "t.n"},
	"telangana":         {"telangana", "tg", "ts"},
	"tripura":           {"tripura", "tr"},
	"uttar pradesh":     {"uttar pradesh", "uttarpradesh", "up", "u.p"},
	"uttarakhand":       {"uttarakhand", "uttaranchal", "uk", "u.k"},
	"west bengal":       {"west bengal", "westbengal", "wb", "w.b"},
	"delhi":             {"delhi", "new delhi", "dl"},
	"jammu and kashmir": {"jammu and kashmir", "jammu & kashmir", "jk", "j&k", "j.k"},
	"puducherry":        {"puducherry", "pondicherry", "py"},
	"chandigarh":        {"chandigarh", "ch"},

	// United States
	"alabama":        {"alabama", "al"},
	"alaska":         {"alaska", "ak"},
	"arizona":        {"arizona", "az"},
	"arkansas":       {"arkansas", "ar"},
	"california":     {"california", "ca"},
	"colorado":       {"colorado", "co"},
	"connecticut":    {"connecticut", "ct"},
	"delaware":       {"delaware", "de"},
	"florida":        {"florida", "fl"},
	"georgia":        {"georgia", "ga"},
	"hawaii":         {"hawaii", "hi"},
	"idaho":          {"idaho", "id"},
	"illinois":       {"illinois", "il"},
	"indiana":        {"indiana", "in"},
	"iowa":           {"iowa", "ia"},
	"kansas":         {"kansas", "ks"},
	"kentucky":       {"kentucky", "ky"},
	"louisiana":      {"louisiana", "la"},
	"maine":          {"maine", "me"},
	"maryland":       {"maryland", "md"},
	"massachusetts":  {"massachusetts", "ma"},
	"michigan":       {"michigan", "mi"},
	"minnesota":      {"minnesota", "mn"},
	"mississippi":    {"mississippi", "ms"},
	"missouri":       {"missouri", "mo"},
	"montana":        {"montana", "mt"},
	"nebraska":       {"nebraska", "ne"},
	"nevada":         {"nevada", "nv"},
	"new hampshire":  {"new hampshire", "newhampshire", "nh", "n.h"},
	"new jersey":     {"new jersey", "newjersey", "nj", "n.j"},
	"new mexico":     {"new mexico", "newmexico", "nm", "n.m"},
	"new york":       {"new york", "newyork", "ny", "n.y"},
	"north carolina": {"north carolina", "northcarolina", "nc", "n.c"},
	"north dakota":   {"north dakota", "northdakota", "nd", "n.d"},
	"ohio":           {"ohio", "oh"},
	"oklahoma":       {"oklahoma", "ok"},
	"oregon":         {"oregon", "or"},
	"pennsylvania":   {"pennsylvania", "pa"},
	"rhode island":   {"rhode island", "rhodeisland", "ri", "r.i"},
	"south carolina": {"south carolina", "southcarolina", "sc", "s.c"},
	"south dakota":   {"south dakota", "southdakota", "sd", "s.d"},
	"tennessee":      {"tennessee", "tn"},
	"texas":          {"texas", "tx"},
	"utah":           {"utah", "ut"},
	"vermont":        {"vermont", "vt"},
	"virginia":       {"virginia", "va"},
	"washington":     {"washington", "wa"},
	"west virginia":  {"west virginia", "westvirginia", "wv", "w.v"},
	"wisconsin":      {"wisconsin", "wi"},
	"wyoming":        {"wyoming", "wy"},
}
