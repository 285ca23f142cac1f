package search

import "fmt"

// MaxResultWindow is the Elasticsearch result window hard cap. Requests with
// from+size beyond it are rejected by the backend, so we reject them locally
// before spending a network round trip.
const MaxResultWindow = 10000

const (
	// DefaultChannel is the channel searched when none is configured.
	DefaultChannel = "unstable"

	// DefaultSize is the default result page size.
	DefaultSize = 20
)

// SearchType selects which index family a search targets.
type SearchType string

const (
	TypePackages SearchType = "packages"
	TypeOptions  SearchType = "options"
	TypeFlakes   SearchType = "flakes"
)

// ParseSearchType converts a user-supplied type string into a SearchType.
func ParseSearchType(s string) (SearchType, error) {
	switch SearchType(s) {
	case TypePackages, TypeOptions, TypeFlakes:
		return SearchType(s), nil
	case "":
		return TypePackages, nil
	}
	return "", &ValidationError{Reason: fmt.Sprintf("invalid search type %q (must be packages, options or flakes)", s)}
}

// SearchParams describes a single search. It is built once from CLI input,
// validated, and handed to BuildQuery; it is never mutated afterwards.
//
// Program, Name and Version accept glob-style wildcards (* and ?), which are
// passed through to the backend's wildcard clause syntax. Query is free text
// except for option searches, where it is treated as an option path prefix.
type SearchParams struct {
	Query    string
	Type     SearchType
	Program  string
	Name     string
	Version  string
	Platform string
	Channel  string
	From     int
	Size     int
	Reverse  bool
}

// Validate checks pagination bounds. Channel names are deliberately not
// validated here: the backend is the source of truth for which channels
// exist, and an unknown one simply yields an upstream error or zero hits.
func (p SearchParams) Validate() error {
	if p.Size <= 0 {
		return &ValidationError{Reason: fmt.Sprintf("size must be greater than 0, got %d", p.Size)}
	}
	if p.From < 0 {
		return &ValidationError{Reason: fmt.Sprintf("from must be non-negative, got %d", p.From)}
	}
	if p.From+p.Size > MaxResultWindow {
		return &ValidationError{Reason: fmt.Sprintf("from + size cannot exceed %d (Elasticsearch limit), got %d", MaxResultWindow, p.From+p.Size)}
	}
	return nil
}
