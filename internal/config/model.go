package config

// Profile is the format-agnostic set of run defaults read from a profile
// file. Unset fields are zero (nil for PriceFloor).
type Profile struct {
	// Source is the path the profile was loaded from.
	Source string

	File       string
	PriceFloor *float64
	LogLevel   string
	LogFormat  string
}
