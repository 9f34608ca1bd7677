// Package i18n holds the site's locales and translated strings. The public
// site is served in Norwegian (default), English and Romanian; the locale is
// carried as a path prefix (/en/..., /ro/...) with Norwegian unprefixed.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is served at unprefixed paths.
const DefaultLocale = "no"

// Locales lists the supported locale codes in matcher priority order.
var Locales = []string{"no", "en", "ro"}

var matcher = language.NewMatcher([]language.Tag{
	language.Norwegian,
	language.English,
	language.Romanian,
})

// Supported reports whether the code is a site locale.
func Supported(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}
	return false
}

// FromPath splits a request path into its locale and the unprefixed rest.
// "/en/store" yields ("en", "/store"); "/store" yields the default locale.
func FromPath(path string) (locale, rest string) {
	trimmed := strings.TrimPrefix(path, "/")
	head, tail, found := strings.Cut(trimmed, "/")
	if Supported(head) {
		if !found {
			return head, "/"
		}
		return head, "/" + tail
	}
	return DefaultLocale, path
}

// StripUnknownLocale detects a language-tag path prefix outside the
// supported set, e.g. "/de/store", and returns the unprefixed rest. Only
// 2-3 letter segments are considered so ordinary slugs never match.
func StripUnknownLocale(path string) (rest string, ok bool) {
	trimmed := strings.TrimPrefix(path, "/")
	head, tail, found := strings.Cut(trimmed, "/")
	if len(head) < 2 || len(head) > 3 || Supported(head) {
		return "", false
	}
	if _, err := language.Parse(head); err != nil {
		return "", false
	}
	if !found {
		return "/", true
	}
	return "/" + tail, true
}

// Match picks the best site locale for an Accept-Language header. An empty
// or unparseable header yields the default locale.
func Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, _ := matcher.Match(tags...)
	return Locales[index]
}

// PathFor prefixes a site path with the locale. The default locale stays
// unprefixed so canonical URLs match what search engines already indexed.
func PathFor(locale, path string) string {
	if locale == DefaultLocale || !Supported(locale) {
		return path
	}
	if path == "/" {
		return "/" + locale
	}
	return "/" + locale + path
}

// T translates a key for a locale, falling back to the default locale and
// finally to the key itself so a missing entry never hides content.
func T(locale, key string) string {
	if table, ok := translations[locale]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations[DefaultLocale][key]; ok {
		return s
	}
	return key
}
