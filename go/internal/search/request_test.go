package search

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantMsg string
	}{
		{name: "valid", body: `{"search": "karimov"}`, want: "karimov"},
		{name: "trimmed", body: `{"search": "  aziz "}`, want: "aziz"},
		{name: "cyrillic at limit", body: `{"search": "` + strings.Repeat("я", 100) + `"}`, want: strings.Repeat("я", 100)},
		{name: "missing", body: `{}`, wantMsg: "This field is required."},
		{name: "empty body", body: ``, wantMsg: "This field is required."},
		{name: "null", body: `{"search": null}`, wantMsg: "This field is required."},
		{name: "blank", body: `{"search": "   "}`, wantMsg: "This field may not be blank."},
		{name: "number", body: `{"search": 42}`, wantMsg: "Not a valid string."},
		{name: "too long", body: `{"search": "` + strings.Repeat("a", 101) + `"}`, wantMsg: "Ensure this field has no more than 100 characters."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequest(strings.NewReader(tt.body))
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("ParseRequest: %v", err)
				}
				if got != tt.want {
					t.Fatalf("query = %q, want %q", got, tt.want)
				}
				return
			}
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if msgs := verr["search"]; len(msgs) != 1 || msgs[0] != tt.wantMsg {
				t.Fatalf("messages = %v, want %q", msgs, tt.wantMsg)
			}
		})
	}
}

func TestParseRequestMalformed(t *testing.T) {
	for _, body := range []string{`{"search":`, `["karimov"]`, `"karimov"`, `null`} {
		if _, err := ParseRequest(strings.NewReader(body)); !errors.Is(err, ErrMalformedBody) {
			t.Errorf("%s: err = %v, want ErrMalformedBody", body, err)
		}
	}
}
