package providers

import "strings"

// NormalizeLocation makes a location query reasonably similar to other
// requests for the same place, so repeated lookups within a short period
// share a cache entry: commas are stripped and whitespace runs collapse to
// single hyphens. "New York, NY" and "new york ny" deliberately collide.
func NormalizeLocation(location string) string {
	stripped := strings.ReplaceAll(strings.ToLower(location), ",", "")
	return strings.Join(strings.Fields(stripped), "-")
}
