package services

import (
	"strings"

	"golang.org/x/text/language"
)

var supportedLocales = []language.Tag{
	language.English,    // en — default
	language.Portuguese, // pt
}

var localeMatcher = language.NewMatcher(supportedLocales)

// ResolveLocale maps an Accept-Language header value to the email locale
// ("en" or "pt"). It tries proper language-tag matching first and falls back
// to the coarse "pt" substring heuristic for values that don't parse. The
// whole decision lives here so the pipeline never inspects headers itself.
func ResolveLocale(acceptLanguage string) string {
	if acceptLanguage == "" {
		return "en"
	}

	if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
		_, index, confidence := localeMatcher.Match(tags...)
		if confidence > language.No {
			if index == 1 {
				return "pt"
			}
			return "en"
		}
	}

	if strings.Contains(strings.ToLower(acceptLanguage), "pt") {
		return "pt"
	}
	return "en"
}
