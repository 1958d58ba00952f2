// Package engine implements the mapping engine: it iterates dataset rows,
// resolves configured columns, and emits triples into an RDF graph
// according to the mapping configuration.
package engine

import (
	"bytes"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/scholarly-metadata/rdfmap/config"
	"github.com/scholarly-metadata/rdfmap/dataset"
	"github.com/scholarly-metadata/rdfmap/helpers"
	"github.com/scholarly-metadata/rdfmap/rdf"
	"github.com/scholarly-metadata/rdfmap/vocab"
)

// Engine generates RDF graphs from tabular datasets. It holds no per-run
// state, so one Engine may serve concurrent Generate calls; all mutable
// state (graph, registries) is scoped to a single call.
type Engine struct {
	// Now supplies the run timestamp used to resolve the "today"
	// inspection date. Overridable for tests.
	Now func() time.Time
}

// New returns an Engine using the wall clock.
func New() *Engine {
	return &Engine{Now: time.Now}
}

// Result is the outcome of one generation run.
type Result struct {
	// Serialized is the graph rendered in the configured output format.
	Serialized string

	// TripleCount is the number of distinct triples in the graph.
	TripleCount int

	// Format is the output format the graph was serialized in.
	Format string
}

// literalField pairs a logical field name with the predicate token its
// validated value is emitted under.
type literalField struct {
	field     string
	predicate string
}

// literalFields is the fixed table of directly mapped literal properties.
var literalFields = []literalField{
	{config.FieldTitle, "schema:name"},
	{config.FieldAbstract, "schema:abstract"},
	{config.FieldVolume, "schema:volumeNumber"},
	{config.FieldIssue, "schema:issueNumber"},
	{config.FieldPageStart, "schema:pageStart"},
	{config.FieldPageEnd, "schema:pageEnd"},
}

// run carries the state of a single generation call.
type run struct {
	cfg            *config.Config
	resolver       *PrefixResolver
	graph          *rdf.Graph
	inspectionDate string

	// Cross-row registries. They only prevent re-declaring an entity's
	// type and label triples within one run; link triples are always
	// emitted per row.
	keywordSeen   map[string]string
	organizations map[string]string
}

// Generate converts a dataset into a serialized RDF graph. It is the single
// entry point of the core: the configuration must already be loaded, and
// the dataset fully materialized. The returned error is fatal for the whole
// run; no partial graph is returned.
func (e *Engine) Generate(ds *dataset.Dataset, cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	r := &run{
		cfg:            cfg,
		resolver:       NewPrefixResolver(cfg.Namespaces),
		graph:          rdf.NewGraph(),
		inspectionDate: cfg.Settings.ResolveInspectionDate(now()),
		keywordSeen:    make(map[string]string),
		organizations:  make(map[string]string),
	}

	// Bind prefixes in sorted order so serialization is deterministic.
	prefixes := make([]string, 0, len(cfg.Namespaces))
	for prefix := range cfg.Namespaces {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	for _, prefix := range prefixes {
		r.graph.Bind(prefix, cfg.Namespaces[prefix])
	}

	for _, row := range ds.Rows {
		if err := r.processRow(row); err != nil {
			return nil, err
		}
	}

	serializer, err := rdf.GetSerializer(cfg.Settings.OutputFormat)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := serializer.Serialize(&buf, r.graph); err != nil {
		return nil, fmt.Errorf("serializing graph: %w", err)
	}

	slog.Debug("graph generated",
		"rows", ds.Len(),
		"triples", r.graph.Len(),
		"keywords", len(r.keywordSeen),
		"organizations", len(r.organizations))

	return &Result{
		Serialized:  buf.String(),
		TripleCount: r.graph.Len(),
		Format:      cfg.Settings.OutputFormat,
	}, nil
}

// processRow emits all triples for one dataset row.
func (r *run) processRow(row dataset.Row) error {
	eid := helpers.Slug(strings.TrimSpace(r.rawValue(row, config.FieldMainEntityIdentifier)))
	if eid == helpers.UnknownToken {
		// The only row-skip condition: an unresolvable main identifier.
		return nil
	}
	article := r.entityURI(eid)

	for _, token := range r.cfg.EntityTypes.ScholarlyArticle {
		if token != "" {
			r.add(article, vocab.RDFType, r.resolver.Resolve(token))
		}
	}
	r.add(article, r.resolver.Resolve("schema:identifier"), rdf.NewLiteral(eid))

	for _, lf := range literalFields {
		if value, ok := r.validValue(row, lf.field); ok {
			r.add(article, r.resolver.Resolve(lf.predicate), rdf.NewLiteral(value))
		}
	}

	if year, ok := r.validValue(row, config.FieldYear); ok {
		r.add(article, r.resolver.Resolve("schema:datePublished"),
			rdf.NewTypedLiteral(year, vocab.XSDGYear))
	}

	// The DOI propagates verbatim into the URI; no percent-encoding or
	// character-set validation.
	if doi, ok := r.validValue(row, config.FieldDOI); ok {
		r.add(article, r.resolver.Resolve("schema:sameAs"), rdf.IRI("https://doi.org/"+doi))
	}
	if link, ok := r.validValue(row, config.FieldLink); ok {
		r.add(article, r.resolver.Resolve("schema:url"), rdf.IRI(link))
	}

	r.processAuthors(row, article)
	r.processSource(row, article)
	r.processFunding(row, article)
	r.processKeywords(row, article)
	return r.processCitations(row, article, eid)
}

// processAuthors correlates three parallel author fields: a full-names
// field carrying "Name (id)" entries, and positional id/abbreviation lists.
// The id and abbreviation lists are paired zip-style: when their lengths
// differ only the shorter length's worth of pairs is processed and trailing
// entries in the longer list are dropped.
func (r *run) processAuthors(row dataset.Row, article rdf.IRI) {
	idToName := helpers.ParseAuthorFullNames(r.rawValue(row, config.FieldAuthorFullNames))

	ids := strings.Split(r.rawValue(row, config.FieldAuthorIDs), ";")
	abbrevs := strings.Split(r.rawValue(row, config.FieldAuthorAbbreviations), ";")
	n := len(ids)
	if len(abbrevs) < n {
		n = len(abbrevs)
	}

	authorType := r.resolver.Resolve(r.cfg.EntityTypes.Author)
	for i := 0; i < n; i++ {
		id := strings.TrimSpace(ids[i])
		abbrev := strings.TrimSpace(abbrevs[i])
		if id == "" {
			continue
		}

		author := r.entityURI(helpers.Slug(id))
		r.add(author, vocab.RDFType, authorType)
		r.add(author, r.resolver.Resolve("schema:identifier"), rdf.NewLiteral(id))
		if abbrev != "" {
			r.add(author, r.resolver.Resolve("rdfs:label"), rdf.NewLiteral(abbrev))
		}

		if fullName, ok := idToName[id]; ok {
			r.add(author, r.resolver.Resolve("schema:name"), rdf.NewLiteral(fullName))
			// "Surname, Given" splits on the first comma only; names
			// without a comma get just the combined name literal.
			if family, given, found := strings.Cut(fullName, ","); found {
				r.add(author, r.resolver.Resolve("schema:familyName"),
					rdf.NewLiteral(strings.TrimSpace(family)))
				r.add(author, r.resolver.Resolve("schema:givenName"),
					rdf.NewLiteral(strings.TrimSpace(given)))
			}
		}

		// Authorship is linked whether or not a full name resolved.
		r.add(article, r.resolver.Resolve("schema:author"), author)
	}
}

// processSource declares the venue entity and links the article to it.
// Venues need no seen-registry: re-emitting an already-declared venue's
// triples is absorbed by the graph's set semantics.
func (r *run) processSource(row dataset.Row, article rdf.IRI) {
	sourceTitle, ok := r.validValue(row, config.FieldSourceTitle)
	if !ok {
		return
	}

	venue := r.entityURI(helpers.Slug(sourceTitle))
	structural, subtype := ClassifyPublication(sourceTitle, r.cfg)
	if structural != "" {
		r.add(venue, vocab.RDFType, r.resolver.Resolve(structural))
	}
	if subtype != "" {
		r.add(venue, vocab.RDFType, r.resolver.Resolve(subtype))
	}
	r.add(venue, r.resolver.Resolve("schema:name"), rdf.NewLiteral(sourceTitle))
	r.add(article, r.resolver.Resolve("schema:isPartOf"), venue)
}

// processFunding declares each funding organization once per run and links
// the article to it. Organization name variants that normalize identically
// share one entity.
func (r *run) processFunding(row dataset.Row, article rdf.IRI) {
	fundingDetails, ok := r.validValue(row, config.FieldFundingDetails)
	if !ok {
		return
	}

	for _, entry := range strings.Split(fundingDetails, ";") {
		name, ok := helpers.NormalizeOrganization(strings.TrimSpace(entry))
		if !ok {
			continue
		}
		token := helpers.Slug(name)
		org := r.entityURI(token)
		if _, seen := r.organizations[token]; !seen {
			r.add(org, vocab.RDFType, r.resolver.Resolve(r.cfg.EntityTypes.FundingOrganization))
			r.add(org, r.resolver.Resolve("schema:name"), rdf.NewLiteral(name))
			r.organizations[token] = name
		}
		// The link is row-specific even when the entity is shared.
		r.add(article, r.resolver.Resolve("schema:funding"), org)
	}
}

// processKeywords scans every configured keyword column, declaring each
// keyword once per run and linking the article to it.
func (r *run) processKeywords(row dataset.Row, article rdf.IRI) {
	for _, column := range r.cfg.KeywordSettings.Columns {
		raw, present := row.Get(column)
		if !present {
			continue
		}
		for _, kw := range strings.Split(raw, ";") {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue
			}
			token := helpers.Slug(kw)
			keyword := r.entityURI(token)
			if _, seen := r.keywordSeen[token]; !seen {
				r.add(keyword, vocab.RDFType, r.resolver.Resolve(r.cfg.EntityTypes.Keyword))
				r.add(keyword, r.resolver.Resolve("skos:prefLabel"), rdf.NewLangLiteral(kw, "en"))
				r.keywordSeen[token] = kw
			}
			r.add(article, r.resolver.Resolve("dct:subject"), keyword)
		}
	}
}

// processCitations synthesizes a per-article-per-date citation observation.
// A non-numeric citation count is fatal for the whole run, not a skip.
func (r *run) processCitations(row dataset.Row, article rdf.IRI, eid string) error {
	citedBy, ok := r.validValue(row, config.FieldCitedBy)
	if !ok {
		return nil
	}

	count, err := strconv.Atoi(citedBy)
	if err != nil {
		return fmt.Errorf("parsing citation count %q for %s: %w", citedBy, eid, err)
	}

	obs := r.entityURI(helpers.Slug(fmt.Sprintf("%s-citations-%s", eid, r.inspectionDate)))
	r.add(obs, vocab.RDFType, r.resolver.Resolve(r.cfg.EntityTypes.CitationObservation))
	r.add(obs, r.resolver.Resolve("schema:value"),
		rdf.NewTypedLiteral(strconv.Itoa(count), vocab.XSDInteger))
	r.add(obs, r.resolver.Resolve("schema:observationDate"),
		rdf.NewTypedLiteral(r.inspectionDate, vocab.XSDDate))
	r.add(article, rdf.IRI(r.cfg.BaseURI+"citationCount"), obs)
	return nil
}

// entityURI mints the URI for a normalized token. Identity is entirely
// determined by the token.
func (r *run) entityURI(token string) rdf.IRI {
	return rdf.IRI(r.cfg.BaseURI + token)
}

func (r *run) add(s rdf.IRI, p rdf.IRI, o rdf.Term) {
	r.graph.Add(rdf.Triple{Subject: s, Predicate: p, Object: o})
}

// rawValue returns the unvalidated cell for a logical field, or "" when the
// field is unmapped or the column is absent.
func (r *run) rawValue(row dataset.Row, field string) string {
	column := r.cfg.Column(field)
	if column == "" {
		return ""
	}
	return row.GetOr(column, "")
}

// validValue returns the validated literal for a logical field. Unmapped
// fields, absent columns, and empty or NaN-like cells all report ok=false.
func (r *run) validValue(row dataset.Row, field string) (string, bool) {
	column := r.cfg.Column(field)
	if column == "" {
		return "", false
	}
	value, ok := row.Get(column)
	if !ok {
		return "", false
	}
	return helpers.ValidLiteral(value)
}
