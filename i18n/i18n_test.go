package i18n

import "testing"

func TestFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		locale string
		ok     bool
	}{
		{"/en", "en", true},
		{"/nl", "nl", true},
		{"/en/backoffice", "en", true},
		{"/nl/backoffice/dashboard", "nl", true},
		{"/", "", false},
		{"/test", "", false},
		{"/english", "", false},
		{"/ennl", "", false},
		{"/fr/backoffice", "", false},
	}
	for _, tt := range tests {
		locale, ok := FromPath(tt.path)
		if locale != tt.locale || ok != tt.ok {
			t.Fatalf("FromPath(%q) = (%q, %v), want (%q, %v)", tt.path, locale, ok, tt.locale, tt.ok)
		}
	}
}

func TestFromAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		locale string
		ok     bool
	}{
		{"nl-NL,nl;q=0.9,en;q=0.8", "nl", true},
		{"en-US,en;q=0.9", "en", true},
		{"NL-nl", "nl", true},
		{"fr-FR,fr;q=0.9", "", false},
		// Header order wins, not quality values.
		{"nl;q=0.1,fr;q=0.9", "nl", true},
		{"fr;q=0.1,nl;q=0.9", "", false},
		{"", "", false},
		{";;;", "", false},
	}
	for _, tt := range tests {
		locale, ok := FromAcceptLanguage(tt.header)
		if locale != tt.locale || ok != tt.ok {
			t.Fatalf("FromAcceptLanguage(%q) = (%q, %v), want (%q, %v)", tt.header, locale, ok, tt.locale, tt.ok)
		}
	}
}

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		accept string
		want   string
	}{
		{"/nl/backoffice", "en-US", "nl"},
		{"/test", "nl-NL,nl;q=0.9,en;q=0.8", "nl"},
		{"/test", "nl;q=0.1,fr;q=0.9", "nl"},
		{"/test", "fr-FR", "en"},
		{"/test", "", "en"},
		{"/", "nl", "nl"},
	}
	for _, tt := range tests {
		if got := Detect(tt.path, tt.accept); got != tt.want {
			t.Fatalf("Detect(%q, %q) = %q, want %q", tt.path, tt.accept, got, tt.want)
		}
	}
}
