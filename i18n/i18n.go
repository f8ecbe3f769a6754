package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Default is the fallback locale when neither the path nor the
// Accept-Language header yields a supported one.
const Default = "en"

var locales = []string{"en", "nl"}

// Locales returns the supported locale codes.
func Locales() []string {
	return locales
}

func Supported(code string) bool {
	for _, l := range locales {
		if l == code {
			return true
		}
	}
	return false
}

// FromPath extracts the locale prefix from a request path.
// It matches "/en" and "/en/..." but not "/english".
func FromPath(path string) (string, bool) {
	for _, l := range locales {
		if path == "/"+l || strings.HasPrefix(path, "/"+l+"/") {
			return l, true
		}
	}
	return "", false
}

// FromAcceptLanguage resolves a supported locale from an Accept-Language
// header. Only the first comma-separated preference is considered, in header
// order regardless of its quality value; its primary subtag must match a
// supported locale.
func FromAcceptLanguage(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	first := strings.TrimSpace(strings.Split(header, ",")[0])
	if i := strings.Index(first, ";"); i >= 0 {
		first = strings.TrimSpace(first[:i])
	}
	tag, err := language.Parse(first)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	code := strings.ToLower(base.String())
	if Supported(code) {
		return code, true
	}
	return "", false
}

// Detect picks the locale for a request: path prefix first, then the
// Accept-Language header, then the default.
func Detect(path, acceptLanguage string) string {
	if l, ok := FromPath(path); ok {
		return l
	}
	if l, ok := FromAcceptLanguage(acceptLanguage); ok {
		return l
	}
	return Default
}
