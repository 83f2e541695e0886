package dataset

import "strings"

// Normalize maps a raw country name to its canonical form: everything from
// the first '(' on is dropped and surrounding whitespace is trimmed.
//
//	Normalize("Germany (West)")   == "Germany"
//	Normalize("  Congo, Democratic Republic of  ") == "Congo, Democratic Republic of"
//
// Names that legitimately contain parentheses are cut as well.
func Normalize(raw string) CanonicalName {
	name, _, _ := strings.Cut(raw, "(")
	return strings.TrimSpace(name)
}

// stripAnnotation removes the numeric distance annotation that follows a
// neighbor in the borders source ("Canada 8,893 km" -> "Canada ").
func stripAnnotation(entry string) string {
	if i := strings.IndexAny(entry, "0123456789"); i >= 0 {
		return entry[:i]
	}
	return entry
}
