package engine

import (
	"strings"

	"github.com/scholarly-metadata/rdfmap/config"
)

// Venue title patterns, checked in this priority order. Each is a plain
// substring test, not a word-boundary match.
var (
	conferencePatterns = []string{"conference", "conf", "congress", "symposium", "proceedings"}
	journalPatterns    = []string{"journal", "revista", "review", "bulletin", "transactions"}
	bookSeriesPatterns = []string{"lecture notes", "series", "advances in"}
)

// defaultArticleType is the built-in fallback when the configured article
// type list is empty.
const defaultArticleType = "schema:CreativeWork"

// ClassifyPublication inspects a source/venue title and returns a structural
// type token plus an optional configuration-defined subtype token. Both are
// prefixed tokens; the caller resolves them to IRIs.
//
// An absent title, or one matching no pattern set, falls back to the first
// configured article type with no subtype.
func ClassifyPublication(sourceTitle string, cfg *config.Config) (structural, subtype string) {
	if sourceTitle == "" {
		return fallbackArticleType(cfg), ""
	}

	lower := strings.ToLower(sourceTitle)
	pubTypes := cfg.EntityTypes.PublicationTypes

	switch {
	case matchesAny(lower, conferencePatterns):
		return "schema:Event", pubTypes.Conference
	case matchesAny(lower, journalPatterns):
		return "schema:Periodical", pubTypes.Journal
	case matchesAny(lower, bookSeriesPatterns):
		return "schema:BookSeries", pubTypes.BookSeries
	}

	return fallbackArticleType(cfg), ""
}

func matchesAny(title string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(title, p) {
			return true
		}
	}
	return false
}

func fallbackArticleType(cfg *config.Config) string {
	if types := cfg.EntityTypes.ScholarlyArticle; len(types) > 0 {
		return types[0]
	}
	return defaultArticleType
}
