package advisor

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidResponse is returned when no JSON object can be recovered from a
// model reply.
var ErrInvalidResponse = errors.New("advisor: no JSON object in response")

var fencedBlock = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.*?)```")

// ExtractJSON recovers the JSON object from a model reply. It tries the first
// fenced code block, then the span between the first '{' and the last '}',
// and otherwise fails.
func ExtractJSON(text string) (map[string]any, error) {
	if m := fencedBlock.FindStringSubmatch(text); m != nil {
		if obj, err := decodeObject(m[1]); err == nil {
			return obj, nil
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		if obj, err := decodeObject(text[start : end+1]); err == nil {
			return obj, nil
		}
	}

	return nil, ErrInvalidResponse
}

func decodeObject(s string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(s)), &obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, ErrInvalidResponse
	}
	return obj, nil
}
