package acclaim

import (
	"regexp"
	"strings"
)

// Token shapes recognized by preprocessing and extraction. These
// patterns are the parser's only bit-exact surface contract: combined
// short switches split into one switch per letter and switch=params
// forms expand into the switch followed by its comma-separated values.
var (
	combinedShortsPattern = regexp.MustCompile(`^-([A-Za-z]{2,})$`)
	switchParamsPattern   = regexp.MustCompile(`^(--?[^=\s-][^=\s]*)=(.*)$`)
	separatorPattern      = regexp.MustCompile(`^--+$`)
)

// IsSwitch reports whether token looks like an option switch: dash
// prefixed, longer than a bare dash and not an argument separator.
// Switch-like tokens bound parameter windows during extraction.
func IsSwitch(token string) bool {
	return len(token) > 1 && strings.HasPrefix(token, "-") && !IsSeparator(token)
}

// IsSeparator reports whether token is an argument separator: a token
// consisting solely of two or more dashes. Separators bound parameter
// windows and are never consumed.
func IsSeparator(token string) bool {
	return separatorPattern.MatchString(token)
}

// splitCombinedShorts splits a combined short switch into one switch per
// letter: -abc becomes -a -b -c.
func splitCombinedShorts(token string) ([]string, bool) {
	match := combinedShortsPattern.FindStringSubmatch(token)
	if match == nil {
		return nil, false
	}

	letters := match[1]
	switches := make([]string, 0, len(letters))
	for _, letter := range letters {
		switches = append(switches, "-"+string(letter))
	}

	return switches, true
}

// splitSwitchParams normalizes a switch=params form into the switch
// token followed by its comma-separated parameters: --s=1,2 becomes
// --s 1 2.
func splitSwitchParams(token string) ([]string, bool) {
	match := switchParamsPattern.FindStringSubmatch(token)
	if match == nil {
		return nil, false
	}

	return append([]string{match[1]}, splitParams(match[2])...), true
}

// splitParams splits a raw parameter list on commas. Every trailing
// empty segment is dropped while leading and inner ones survive, so
// "a," yields [a] but ",b" yields ["" b].
func splitParams(raw string) []string {
	segments := strings.Split(raw, ",")
	end := len(segments)
	for end > 0 && segments[end-1] == "" {
		end--
	}

	return segments[:end]
}
