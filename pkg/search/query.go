package search

import (
	"fmt"
	"strings"
)

// schemaVersion is the index schema generation published by search.nixos.org.
// It is part of every index name and bumps when upstream reindexes.
const schemaVersion = 44

// Multi-match field boosts. The exact numbers are tuning constants; the
// contract is only the relative order: attribute name ranks above provided
// programs, which rank above descriptions, so exact and near matches beat
// incidental description mentions.
const (
	boostAttrName    = 9.0
	boostPrograms    = 7.0
	boostPname       = 6.0
	boostDescription = 1.3
	boostFlakeName   = 0.5
)

// indexRule describes how one search type maps to an index name.
type indexRule struct {
	channeled bool   // one index per channel
	suffix    string // appended after the channel, or the fixed name for channel-less indices
}

// indexRules is the complete search-type to index mapping. Keeping this a
// lookup table makes the channel → index contract auditable in one place.
var indexRules = map[SearchType]indexRule{
	TypePackages: {channeled: true},
	TypeOptions:  {channeled: true, suffix: "-options"},
	TypeFlakes:   {suffix: "flakes"},
}

// IndexFor returns the index name a search targets. Unknown channels are
// passed through verbatim; the backend decides whether they exist.
func IndexFor(t SearchType, channel string) string {
	rule := indexRules[t]
	if rule.channeled {
		return fmt.Sprintf("latest-%d-nixos-%s%s", schemaVersion, channel, rule.suffix)
	}
	return fmt.Sprintf("latest-%d-nixos-%s", schemaVersion, rule.suffix)
}

// BuildQuery maps validated search parameters to the query document posted to
// the backend. The function is pure and deterministic: the document is built
// from maps only, so encoding/json renders identical parameters as identical
// bytes (map keys marshal in sorted order).
func BuildQuery(p SearchParams) map[string]any {
	var must []any

	if p.Query != "" {
		must = append(must, textClause(p))
	}
	if p.Name != "" {
		must = append(must, patternClause("package_attr_name", p.Name))
	}
	if p.Program != "" {
		must = append(must, patternClause("package_programs", p.Program))
	}
	if p.Version != "" {
		must = append(must, patternClause("package_pversion", p.Version))
	}
	if p.Platform != "" {
		must = append(must, map[string]any{
			"term": map[string]any{"package_platforms": p.Platform},
		})
	}

	// No clauses at all is a valid request for every document of this type,
	// still bounded by from/size.
	if len(must) == 0 {
		must = append(must, map[string]any{"match_all": map[string]any{}})
	}

	return map[string]any{
		"query": map[string]any{
			"bool": map[string]any{"must": must},
		},
		"from": p.From,
		"size": p.Size,
		"sort": sortClause(p),
	}
}

// textClause builds the free-text clause. Option names are dotted
// hierarchical identifiers rather than prose, so option searches match the
// option path by prefix instead of running a full-text query.
func textClause(p SearchParams) map[string]any {
	if p.Type == TypeOptions {
		return map[string]any{
			"wildcard": map[string]any{
				"option_name": map[string]any{
					"value":            p.Query + "*",
					"case_insensitive": true,
				},
			},
		}
	}
	return map[string]any{
		"multi_match": map[string]any{
			"query": p.Query,
			"type":  "cross_fields",
			"fields": []any{
				boosted("package_attr_name", boostAttrName),
				boosted("package_programs", boostPrograms),
				boosted("package_pname", boostPname),
				boosted("package_description", boostDescription),
				boosted("flake_name", boostFlakeName),
			},
		},
	}
}

// patternClause emits a wildcard clause when the pattern contains glob
// metacharacters and an exact term clause otherwise. Elasticsearch wildcard
// syntax uses the same * and ? the shell does, so patterns pass through.
func patternClause(field, pattern string) map[string]any {
	if strings.ContainsAny(pattern, "*?") {
		return map[string]any{
			"wildcard": map[string]any{field: pattern},
		}
	}
	return map[string]any{
		"term": map[string]any{field: pattern},
	}
}

// sortClause returns the sort directives: relevance first, with the
// attribute name as a stable tiebreak for package indices. Reverse flips the
// direction of the same ranking rather than changing it.
func sortClause(p SearchParams) []any {
	order := "desc"
	if p.Reverse {
		order = "asc"
	}
	sort := []any{
		map[string]any{"_score": order},
	}
	if p.Type == TypePackages {
		sort = append(sort, map[string]any{"package_attr_name": order})
	}
	return sort
}

func boosted(field string, boost float64) string {
	return fmt.Sprintf("%s^%g", field, boost)
}
