/*
Package capability decides whether a browser can render the page's live
blur effect. Old Internet Explorer engines cannot apply the CSS blur
filter, so they get a pre-blurred background image instead.
*/
package capability

import (
	"regexp"
	"strings"
)

var DefaultLegacyEngineSignatures = []string{
	"MSIE 9",
	"rv:11.0",
	"MSIE 10",
}

type Detector struct {
	signatures []*regexp.Regexp
}

// NewDetector matches each signature literally and case-insensitively.
func NewDetector(signatures []string) Detector {
	result := Detector{
		signatures: []*regexp.Regexp{},
	}

	for _, s := range signatures {
		s = strings.TrimSpace(s)

		if s == "" {
			continue
		}

		result.signatures = append(result.signatures, regexp.MustCompile("(?i)"+regexp.QuoteMeta(s)))
	}

	return result
}

// NeedsReducedEffects reports whether userAgent belongs to an engine without blur support.
func (d Detector) NeedsReducedEffects(userAgent string) bool {
	for _, re := range d.signatures {
		if re.MatchString(userAgent) {
			return true
		}
	}

	return false
}

// ParseSignatures splits a comma separated signature list.
func ParseSignatures(list string) []string {
	if strings.TrimSpace(list) == "" {
		return DefaultLegacyEngineSignatures
	}

	return strings.Split(list, ",")
}
