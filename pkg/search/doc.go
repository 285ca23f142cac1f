// Package search builds and executes queries against the search.nixos.org
// Elasticsearch backend.
//
// # Overview
//
// The package has two halves:
//
//   - Query building: SearchParams describes one search (free text, field
//     patterns, channel, pagination) and BuildQuery turns it into the JSON
//     query document the backend expects. Index names are derived from the
//     search type and channel by IndexFor. Both functions are pure: no I/O,
//     and the same parameters always produce the same document.
//
//   - Execution: Client posts the document to <base-url>/<index>/_search with
//     HTTP basic auth and decodes the native Elasticsearch response envelope.
//
// # Errors
//
// Failures are classified so callers can map them to exit codes:
//
//   - ValidationError: bad local parameters, detected before any network call
//   - TransportError: the request never produced a response
//   - APIError: the backend answered with a non-2xx status
//   - DecodeError: the response body was not the expected envelope
//
// No retries are performed; every failure surfaces immediately.
//
// # Usage
//
//	client := search.NewClient(search.ClientConfig{})
//	params := search.SearchParams{
//		Query:   "firefox",
//		Type:    search.TypePackages,
//		Channel: "unstable",
//		Size:    20,
//	}
//	resp, err := client.Search(ctx, params)
package search
