package vgcdata

import "fmt"

// ChaosURL builds the Smogon chaos stats URL for a month given in "YYYY-MM"
// form, e.g. https://www.smogon.com/stats/2026-01/chaos/gen9vgc2026regfbo3-0.json.
// Fetching is left to the caller.
func ChaosURL(baseUrl, month, format string, rating int) string {
	return fmt.Sprintf("%s/%s/chaos/%s-%d.json", baseUrl, month, format, rating)
}
