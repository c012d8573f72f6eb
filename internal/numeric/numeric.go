// Package numeric harvests floating-point values from loosely formatted tool
// output such as "1 USD = 1,234.56 EUR" or "`0.92`".
package numeric

import (
	"regexp"
	"strconv"
	"strings"
)

var runPattern = regexp.MustCompile(`[0-9.]+`)

// Extract returns the numeric value carried by text, if any. Absence is not
// an error; callers treat a false second return as "nothing to extract".
//
// The text is first cleaned of backticks, thousands-separator commas and
// surrounding whitespace. Tool results put their payload on the right-hand
// side of an "=" sign ("100 USD = 92.00 EUR"), so when one is present the
// scan starts after the final "=". Otherwise the first maximal run of digits
// and dots is used, with a whole-string parse as the last resort.
func Extract(text string) (float64, bool) {
	clean := strings.NewReplacer("`", "", ",", "").Replace(text)
	clean = strings.TrimSpace(clean)

	scan := clean
	if idx := strings.LastIndex(clean, "="); idx >= 0 {
		scan = clean[idx+1:]
	}
	if run := runPattern.FindString(scan); run != "" {
		if v, err := strconv.ParseFloat(run, 64); err == nil {
			return v, true
		}
	}
	if v, err := strconv.ParseFloat(clean, 64); err == nil {
		return v, true
	}
	return 0, false
}
