package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"t", TreeFormat},
		{"tree", TreeFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(tony) = %v, want ErrBadFormat", err)
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"place.json", JSONFormat},
		{"place.JSON", JSONFormat},
		{"place.yaml", YAMLFormat},
		{"place", YAMLFormat},
		{"out.tree", TreeFormat},
	}
	for _, tt := range tests {
		if got := FromPath(tt.path); got != tt.want {
			t.Errorf("FromPath(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}
