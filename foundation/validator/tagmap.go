package validator

var tagMap = map[string]string{
	"required": "required",
	"e164":     "invalid_phone",
	"max":      "too_long",
	"min":      "too_short",
	"gt":       "too_small",
	"lt":       "too_large",
	"gte":      "too_small_or_equal",
	"lte":      "too_large_or_equal",
	"len":      "invalid_length",
	"oneof":    "invalid_choice",
	"unique":   "duplicate",
	"numeric":  "only_numbers_allowed",
	"digits":   "only_digits_allowed",
	"nodigits": "must_not_contain_digits",
	"maskchar": "invalid_mask_char",
	"iso2":     "invalid_iso2",
}

func mapTagToCode(tag string) string {
	if code, ok := tagMap[tag]; ok {
		return code
	}
	return "invalid"
}
