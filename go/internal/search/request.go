package search

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// MaxQueryLength is the longest accepted query, in characters
const MaxQueryLength = 100

const (
	msgRequired = "This field is required."
	msgBlank    = "This field may not be blank."
	msgNotValid = "Not a valid string."
)

// ValidationError maps each bad request field to its messages
type ValidationError map[string][]string

func (e ValidationError) Error() string {
	parts := make([]string, 0, len(e))
	for field, msgs := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(msgs, " ")))
	}
	return "invalid search request: " + strings.Join(parts, "; ")
}

// ErrMalformedBody is returned when the body is not a JSON object
var ErrMalformedBody = errors.New("JSON parse error")

// ParseRequest reads {"search": "..."} from body and returns the query
func ParseRequest(body io.Reader) (string, error) {
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("failed to read body: %w", err)
	}

	var payload map[string]json.RawMessage
	if len(bytes.TrimSpace(raw)) == 0 {
		payload = map[string]json.RawMessage{}
	} else if err := json.Unmarshal(raw, &payload); err != nil || payload == nil {
		return "", ErrMalformedBody
	}

	value, ok := payload["search"]
	if !ok || string(value) == "null" {
		return "", ValidationError{"search": {msgRequired}}
	}

	var query string
	if err := json.Unmarshal(value, &query); err != nil {
		return "", ValidationError{"search": {msgNotValid}}
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return "", ValidationError{"search": {msgBlank}}
	}
	if n := utf8.RuneCountInString(query); n > MaxQueryLength {
		return "", ValidationError{"search": {
			fmt.Sprintf("Ensure this field has no more than %d characters.", MaxQueryLength),
		}}
	}
	return query, nil
}
