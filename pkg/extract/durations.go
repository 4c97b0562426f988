package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Schema.org duration fields use the ISO-8601 grammar, almost always the
// PT#H#M subset.
var isoDurationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// ParseISODuration converts an ISO-8601 duration like "PT1H30M" into a
// human-readable string like "1 hour 30 min". Unparseable input returns
// ok=false so callers drop the field rather than persisting garbage.
func ParseISODuration(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	m := isoDurationPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}

	days, _ := strconv.Atoi(zeroIfEmpty(m[1]))
	hours, _ := strconv.Atoi(zeroIfEmpty(m[2]))
	minutes, _ := strconv.Atoi(zeroIfEmpty(m[3]))

	hours += days * 24
	if hours == 0 && minutes == 0 {
		return "", false
	}

	var parts []string
	switch {
	case hours == 1:
		parts = append(parts, "1 hour")
	case hours > 1:
		parts = append(parts, fmt.Sprintf("%d hours", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d min", minutes))
	}
	return strings.Join(parts, " "), true
}

func zeroIfEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
