// Package config provides the mapping configuration that drives graph
// generation: namespace table, base URI, dataset column mappings, entity
// type tokens, keyword source columns, and run settings.
package config

import (
	"fmt"
	"time"
)

// Logical field names used as keys into ColumnMappings.
const (
	FieldMainEntityIdentifier = "main_entity_identifier"
	FieldTitle                = "title"
	FieldAbstract             = "abstract"
	FieldYear                 = "year"
	FieldVolume               = "volume"
	FieldIssue                = "issue"
	FieldPageStart            = "page_start"
	FieldPageEnd              = "page_end"
	FieldDOI                  = "doi"
	FieldLink                 = "link"
	FieldCitedBy              = "cited_by"
	FieldAuthorIDs            = "author_ids"
	FieldAuthorAbbreviations  = "author_abbreviations"
	FieldAuthorFullNames      = "author_full_names"
	FieldSourceTitle          = "source_title"
	FieldFundingDetails       = "funding_details"
)

// InspectionDateToday is the sentinel value meaning "resolve the inspection
// date to the current date at run time".
const InspectionDateToday = "today"

// Config is the mapping configuration document.
type Config struct {
	// Namespaces maps prefixes to namespace URIs.
	Namespaces map[string]string `yaml:"namespaces"`

	// BaseURI is the namespace under which entity URIs are minted.
	BaseURI string `yaml:"base_uri"`

	// ColumnMappings maps logical field names to dataset column headers.
	// A logical field whose mapping is missing, or whose mapped column is
	// absent from the dataset, produces no value; it is never an error.
	ColumnMappings map[string]string `yaml:"column_mappings"`

	// EntityTypes holds the prefixed type tokens per logical entity.
	EntityTypes EntityTypes `yaml:"entity_types"`

	// KeywordSettings lists the dataset columns scanned for keywords.
	KeywordSettings KeywordSettings `yaml:"keyword_settings"`

	// Settings holds run settings.
	Settings Settings `yaml:"settings"`
}

// EntityTypes maps logical entity names to prefixed RDF type tokens.
// ScholarlyArticle is a list so a row can carry multiple simultaneous types;
// the other entities use a single token.
type EntityTypes struct {
	ScholarlyArticle    []string         `yaml:"scholarly_article"`
	Author              string           `yaml:"author"`
	Keyword             string           `yaml:"keyword"`
	FundingOrganization string           `yaml:"funding_organization"`
	CitationObservation string           `yaml:"citation_observation"`
	PublicationTypes    PublicationTypes `yaml:"publication_types"`
}

// PublicationTypes maps venue kinds to prefixed type tokens layered onto the
// structural venue type.
type PublicationTypes struct {
	Conference string `yaml:"conference"`
	Journal    string `yaml:"journal"`
	BookSeries string `yaml:"book_series"`
}

// KeywordSettings configures keyword extraction.
type KeywordSettings struct {
	// Columns is the ordered list of dataset column headers scanned for
	// semicolon-separated keywords.
	Columns []string `yaml:"columns"`
}

// Settings holds run settings.
type Settings struct {
	// OutputFormat selects the serialization format (ttl, xml, n3, nt).
	OutputFormat string `yaml:"output_format"`

	// InspectionDate is the citation observation date, either a literal
	// ISO date or InspectionDateToday.
	InspectionDate string `yaml:"inspection_date"`
}

// Column resolves a logical field name to its dataset column header. An
// unmapped field returns the empty string; callers treat that the same as
// an absent dataset value.
func (c *Config) Column(field string) string {
	return c.ColumnMappings[field]
}

// ResolveInspectionDate returns the effective inspection date for a run
// starting at now.
func (s Settings) ResolveInspectionDate(now time.Time) string {
	if s.InspectionDate == InspectionDateToday {
		return now.Format("2006-01-02")
	}
	return s.InspectionDate
}

// Validate checks the configuration for the keys generation cannot run
// without. Optional column mappings are deliberately not required: a
// missing mapping degrades to an absent value at generation time.
func (c *Config) Validate() error {
	if c.BaseURI == "" {
		return fmt.Errorf("config: base_uri is required")
	}
	if len(c.Namespaces) == 0 {
		return fmt.Errorf("config: namespaces must not be empty")
	}
	if c.Column(FieldMainEntityIdentifier) == "" {
		return fmt.Errorf("config: column_mappings.%s is required", FieldMainEntityIdentifier)
	}
	if len(c.EntityTypes.ScholarlyArticle) == 0 {
		return fmt.Errorf("config: entity_types.scholarly_article must list at least one type")
	}
	for name, token := range map[string]string{
		"author":               c.EntityTypes.Author,
		"keyword":              c.EntityTypes.Keyword,
		"funding_organization": c.EntityTypes.FundingOrganization,
		"citation_observation": c.EntityTypes.CitationObservation,
	} {
		if token == "" {
			return fmt.Errorf("config: entity_types.%s is required", name)
		}
	}
	if !validOutputFormats[c.Settings.OutputFormat] {
		return fmt.Errorf("config: settings.output_format must be one of ttl, xml, n3, nt; got %q", c.Settings.OutputFormat)
	}
	if c.Settings.InspectionDate == "" {
		return fmt.Errorf("config: settings.inspection_date is required (use %q for the run date)", InspectionDateToday)
	}
	return nil
}

var validOutputFormats = map[string]bool{
	"ttl": true,
	"xml": true,
	"n3":  true,
	"nt":  true,
}
