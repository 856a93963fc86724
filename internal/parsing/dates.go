package parsing

import (
	"regexp"
	"strings"

	"github.com/resumify/backend/internal/types"
)

var (
	yearPattern     = regexp.MustCompile(`(?:19|20)\d{2}`)
	twoDigitPattern = regexp.MustCompile(`\b\d{2}\b`)
	presentPattern  = regexp.MustCompile(`(?i)present|current|now`)
)

// ResolveDateRange extracts a (start, end) year pair from a free-text block.
// Four-digit years win: the first two found become start and end. With a
// single four-digit year, the end falls back to the last standalone two-digit
// token, then to "Present" wording. With none, only the end can be inferred.
// Either value may be nil.
func ResolveDateRange(block string) (start, end *string) {
	years := yearPattern.FindAllString(block, -1)

	if len(years) > 0 {
		start = types.String(years[0])
		if len(years) > 1 {
			end = types.String(years[1])
		} else if two := twoDigitPattern.FindAllString(block, -1); len(two) > 0 {
			end = types.String(two[len(two)-1])
		} else if presentPattern.MatchString(block) {
			end = types.String("Present")
		}
		return normalizeYearPair(start, end)
	}

	if two := twoDigitPattern.FindAllString(block, -1); len(two) > 0 {
		return normalizeYearPair(nil, types.String(two[len(two)-1]))
	}
	if presentPattern.MatchString(block) {
		return nil, types.String("Present")
	}
	return nil, nil
}

// normalizeYearPair rewrites "present"-style endings to the literal "Present"
// and lets a two-digit end year inherit the start year's century. The Present
// rewrite runs first so wording never reaches the century fix.
func normalizeYearPair(start, end *string) (*string, *string) {
	if start == nil && end == nil {
		return nil, nil
	}

	if end != nil {
		lower := strings.ToLower(*end)
		if strings.Contains(lower, "present") || strings.Contains(lower, "current") || strings.Contains(lower, "now") {
			end = types.String("Present")
		}
	}

	if start != nil && end != nil && len(*end) == 2 && len(*start) == 4 &&
		(strings.HasPrefix(*start, "19") || strings.HasPrefix(*start, "20")) {
		end = types.String((*start)[:2] + *end)
	}

	return start, end
}
