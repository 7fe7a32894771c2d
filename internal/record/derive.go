package record

import (
	"regexp"
	"strings"
)

// Program levels.
const (
	LevelBA          = "BA"
	LevelMA          = "MA"
	LevelHND         = "HND"
	LevelCertificate = "Certificate"
	LevelDegree      = "Degree"
)

var (
	slugRe = regexp.MustCompile(`[^a-z0-9]+`)
	// Word boundaries count any letter, digit or underscore as a word
	// character, so MBA, BACHELOR and ÉBA never read as BA.
	baRe = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])BA(?:[^\p{L}\p{N}_]|$)`)
	maRe = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])MA(?:[^\p{L}\p{N}_]|$)`)
)

// Slugify lower-cases s and joins its alphanumeric runs with single hyphens.
func Slugify(s string) string {
	s = slugRe.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}

// Level classifies a program name. Rules are tried in priority order.
func Level(name string) string {
	up := strings.ToUpper(name)
	switch {
	case baRe.MatchString(up):
		return LevelBA
	case maRe.MatchString(up):
		return LevelMA
	case strings.Contains(up, "HND"):
		return LevelHND
	case strings.Contains(up, "CERTIFICATE"):
		return LevelCertificate
	default:
		return LevelDegree
	}
}
