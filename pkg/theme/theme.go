// Package theme maps colleges to the HSL color tokens the frontend applies
// as CSS custom properties. Values are "H S% L%" triples.
package theme

// ColorTokens holds the HSL components for a college palette.
type ColorTokens struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// DefaultCollege is used when a profile has no college or an unknown one.
const DefaultCollege = "Other"

var palettes = map[string]ColorTokens{
	"Cornell University":       {Primary: "0 80% 45%", Secondary: "0 0% 100%", Accent: "0 70% 55%"},
	"UCLA":                     {Primary: "210 80% 45%", Secondary: "45 95% 55%", Accent: "210 70% 55%"},
	"USC":                      {Primary: "0 80% 40%", Secondary: "45 95% 50%", Accent: "0 70% 50%"},
	"Harvard University":       {Primary: "0 75% 35%", Secondary: "0 0% 10%", Accent: "0 65% 45%"},
	"Yale University":          {Primary: "220 75% 30%", Secondary: "0 0% 100%", Accent: "220 65% 40%"},
	"Stanford University":      {Primary: "0 75% 40%", Secondary: "0 0% 100%", Accent: "0 65% 50%"},
	"MIT":                      {Primary: "0 75% 40%", Secondary: "0 0% 50%", Accent: "0 65% 50%"},
	"Princeton University":     {Primary: "25 95% 50%", Secondary: "0 0% 10%", Accent: "25 85% 60%"},
	"Duke University":          {Primary: "220 75% 35%", Secondary: "0 0% 100%", Accent: "220 65% 45%"},
	"Northwestern University":  {Primary: "280 75% 30%", Secondary: "0 0% 100%", Accent: "280 65% 40%"},
	"University of Michigan":   {Primary: "45 95% 50%", Secondary: "220 75% 30%", Accent: "45 85% 60%"},
	"Penn State":               {Primary: "220 75% 30%", Secondary: "0 0% 100%", Accent: "220 65% 40%"},
	"Ohio State":               {Primary: "0 80% 40%", Secondary: "0 0% 35%", Accent: "0 70% 50%"},
	"University of Texas":      {Primary: "25 85% 45%", Secondary: "0 0% 100%", Accent: "25 75% 55%"},
	"NYU":                      {Primary: "280 75% 35%", Secondary: "0 0% 100%", Accent: "280 65% 45%"},
	"Boston University":        {Primary: "0 80% 40%", Secondary: "0 0% 100%", Accent: "0 70% 50%"},
	DefaultCollege:             {Primary: "220 75% 50%", Secondary: "0 0% 100%", Accent: "220 65% 60%"},
}

var collegeNames []string

func init() {
	// Stable display order: known colleges first, "Other" last.
	ordered := []string{
		"Cornell University", "UCLA", "USC", "Harvard University", "Yale University",
		"Stanford University", "MIT", "Princeton University", "Duke University",
		"Northwestern University", "University of Michigan", "Penn State", "Ohio State",
		"University of Texas", "NYU", "Boston University", DefaultCollege,
	}
	collegeNames = ordered
}

// Colleges returns the supported college names in display order.
func Colleges() []string {
	out := make([]string, len(collegeNames))
	copy(out, collegeNames)
	return out
}

// TokensFor resolves the palette for a college, falling back to the default
// when the college is unknown or empty.
func TokensFor(college string) ColorTokens {
	if tokens, ok := palettes[college]; ok {
		return tokens
	}
	return palettes[DefaultCollege]
}
