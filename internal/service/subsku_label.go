package service

import (
	"encoding/json"
	"strings"

	"github.com/telmart/console_api/internal/models"
)

// ParseSubSkuLabel decodes a sub-SKU family's compound label into
// structured attributes. The backend encodes labels as underscore-
// delimited segments: name_<unused>_[color]_[jsonArrayOfSimType]_<unused>_country.
//
// Labels with fewer than 6 segments carry no decodable attributes and
// yield a name-only result: Color/SimType/Country stay nil so callers can
// tell "not encoded" apart from "encoded but empty". The function never
// fails; a malformed label degrades to whatever could be decoded.
func ParseSubSkuLabel(raw string) models.ParsedSubSku {
	segments := strings.Split(raw, "_")

	parsed := models.ParsedSubSku{
		Name: strings.TrimSpace(segments[0]),
	}
	if len(segments) < 6 {
		return parsed
	}

	color := stripBrackets(segments[2])
	parsed.Color = &color

	simType := parseSimTypeSegment(segments[3])
	parsed.SimType = &simType

	country := strings.TrimSpace(segments[5])
	parsed.Country = &country

	return parsed
}

// stripBrackets removes exactly one leading and one trailing bracket
// character and trims whitespace: "[Graphite]" -> "Graphite".
func stripBrackets(segment string) string {
	s := strings.TrimSpace(segment)
	if strings.HasPrefix(s, "[") {
		s = s[1:]
	}
	if strings.HasSuffix(s, "]") {
		s = s[:len(s)-1]
	}
	return strings.TrimSpace(s)
}

// parseSimTypeSegment decodes the SIM type segment, normally a JSON
// string array whose first element is used. When JSON decoding fails the
// value falls back to a stripped-string heuristic: leading '[' and '"'
// and trailing '"' and ']' runes are removed.
func parseSimTypeSegment(segment string) string {
	s := strings.TrimSpace(segment)

	var list []string
	if err := json.Unmarshal([]byte(s), &list); err == nil {
		if len(list) > 0 {
			return strings.TrimSpace(list[0])
		}
		return ""
	}

	s = strings.TrimLeft(s, `["`)
	s = strings.TrimRight(s, `"]`)
	return strings.TrimSpace(s)
}

// attributePresent reports whether a parsed attribute was supplied with a
// usable value. Attributes the label does not encode (nil) and attributes
// encoded as empty both leave the form's current value untouched; only a
// non-empty parsed value is adopted and locked.
func attributePresent(v *string) bool {
	return v != nil && *v != ""
}
