package validation

import (
	"strings"
	"testing"
)

func TestValidateSelectionValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"form type", "I-129", true},
		{"center code", "WAC", true},
		{"lowercase", "wac", true},
		{"with underscore", "I_129F", true},
		{"empty string", "", false},
		{"form with suffix", "I-129 F", true},
		{"with dot", "I-485.J", true},
		{"leading hyphen", "-129", true},
		{"unicode", "表格", true},
		{"max length", strings.Repeat("A", 64), true},
		{"too long", strings.Repeat("A", 65), false},
		{"leading space", " WAC", false},
		{"newline", "WAC\nEAC", false},
		{"nul byte", "WAC\x00", false},
		{"delete char", "WAC\x7f", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateSelectionValue(tt.value)
			if got != tt.want {
				t.Errorf("ValidateSelectionValue(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestValidateFeedURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"valid https", "https://raw.githubusercontent.com/a/b/master/data.json", true, ""},
		{"valid http", "http://localhost:8080/data.json", true, ""},
		{"empty string", "", false, "URL is required"},
		{"file scheme", "file:///tmp/data.json", false, "URL must use http:// or https:// scheme"},
		{"ftp scheme", "ftp://example.com/data.json", false, "URL must use http:// or https:// scheme"},
		{"no scheme", "example.com/data.json", false, "URL must use http:// or https:// scheme"},
		{"no host", "https:///data.json", false, "URL must have a valid host"},
		{"bad escape", "http://example.com/%zz", false, "Invalid URL format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateFeedURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateFeedURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if msg != tt.wantMsg {
				t.Errorf("ValidateFeedURL(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}

func TestValidateStatusColor(t *testing.T) {
	tests := []struct {
		color string
		want  bool
	}{
		{"#999900", true},
		{"#00FF00", true},
		{"#abcdef", true},
		{"999900", false},
		{"#fff", false},
		{"#gggggg", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateStatusColor(tt.color); got != tt.want {
			t.Errorf("ValidateStatusColor(%q) = %v, want %v", tt.color, got, tt.want)
		}
	}
}
