package argh

import "strconv"

// coerce converts text into the destination cell. Conversion failures are
// absorbed: the destination keeps its prior value and no error is reported.
// Booleans use the numeric convention, accepting only "0" and "1".
func coerce[T Value](text string, dst *T) {
	switch d := any(dst).(type) {
	case *string:
		*d = text
	case *bool:
		switch text {
		case "1":
			*d = true
		case "0":
			*d = false
		}
	case *int:
		if v, err := strconv.Atoi(text); err == nil {
			*d = v
		}
	case *int64:
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			*d = v
		}
	case *float64:
		if v, err := strconv.ParseFloat(text, 64); err == nil {
			*d = v
		}
	}
}

// splitSegments splits text on every occurrence of delim. An empty input
// yields no segments, and a single trailing empty segment is dropped, so
// "a," yields ["a"] while ",a" yields ["", "a"]. Empty segments between
// delimiters are kept and later coerce to the element type's zero value.
func splitSegments(text string, delim rune) []string {
	if text == "" {
		return nil
	}

	var segments []string
	start := 0
	for i, r := range text {
		if r == delim {
			segments = append(segments, text[start:i])
			start = i + len(string(delim))
		}
	}
	if start < len(text) {
		segments = append(segments, text[start:])
	}
	return segments
}

// displayScalar renders a scalar default for usage text. Booleans render as
// "1"/"0" to match the value convention coerce accepts; text defaults are
// wrapped in quotes for readability, though stored values are never quoted.
func displayScalar[T Value](v T) string {
	switch d := any(v).(type) {
	case string:
		return `"` + d + `"`
	case bool:
		if d {
			return "1"
		}
		return "0"
	case int:
		return strconv.Itoa(d)
	case int64:
		return strconv.FormatInt(d, 10)
	case float64:
		return strconv.FormatFloat(d, 'g', -1, 64)
	}
	return ""
}
