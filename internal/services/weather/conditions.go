package weather

// conditionDefault is reported for any code outside the mapped ranges,
// including days where the archive sent no code at all.
const conditionDefault = "Variable Conditions"

type codeRange struct {
	lo, hi int
	label  string
}

// codeRanges maps Open-Meteo weather codes to display labels. Ranges are
// inclusive and disjoint.
var codeRanges = []codeRange{
	{0, 0, "Clear"},
	{1, 3, "Mostly Clear to Partly Cloudy"},
	{45, 48, "Fog/Frost"},
	{51, 55, "Drizzle"},
	{61, 65, "Moderate Rain"},
	{66, 67, "Freezing Rain"},
	{80, 82, "Heavy Showers"},
	{95, 96, "Storm"},
}

// MapCondition turns a weather code into its condition label. A nil code maps
// to the default label.
func MapCondition(code *int) string {
	if code == nil {
		return conditionDefault
	}
	for _, r := range codeRanges {
		if *code >= r.lo && *code <= r.hi {
			return r.label
		}
	}
	return conditionDefault
}
