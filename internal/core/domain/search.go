package domain

// Placeholder values used when a result field is absent.
// The remote index owns the result shape and makes no promises about
// which fields are populated, so rendering always goes through the
// Display accessors below.
const (
	PlaceholderTitle       = "Untitled"
	PlaceholderURL         = "N/A"
	PlaceholderDescription = "No description available"
)

// SearchRequest is a single query against the remote retrieval index.
// A fresh request is constructed per invocation and never reused.
type SearchRequest struct {
	// Index names the pre-built document index to search.
	Index string

	// Query is the natural-language query text.
	Query string

	// MaxResults caps the number of ranked hits returned.
	MaxResults int
}

// ResultItem is one ranked hit from the retrieval index.
// All fields are optional; an empty string means the field was absent.
type ResultItem struct {
	// Title is the document title.
	Title string

	// URL is the canonical link to the document.
	URL string

	// Snippet is a short extract around the match.
	Snippet string

	// Content is the longer document body, when the index returns it.
	Content string
}

// DisplayTitle returns the title, or a placeholder when absent.
func (r ResultItem) DisplayTitle() string {
	if r.Title == "" {
		return PlaceholderTitle
	}
	return r.Title
}

// DisplayURL returns the URL, or a placeholder when absent.
func (r ResultItem) DisplayURL() string {
	if r.URL == "" {
		return PlaceholderURL
	}
	return r.URL
}

// DisplaySnippet returns the snippet, or a placeholder when absent.
func (r ResultItem) DisplaySnippet() string {
	if r.Snippet == "" {
		return PlaceholderDescription
	}
	return r.Snippet
}

// Description returns the richest text available for a detail view:
// the full content when present, otherwise the snippet, otherwise a
// placeholder.
func (r ResultItem) Description() string {
	if r.Content != "" {
		return r.Content
	}
	return r.DisplaySnippet()
}

// SearchResponse is the ordered hit sequence for one request.
// Ranking order is as returned by the remote index.
type SearchResponse struct {
	Results []ResultItem
}

// Empty reports whether the response carries no usable results.
// A nil receiver counts as empty; the remote index may omit the
// results field entirely.
func (r *SearchResponse) Empty() bool {
	return r == nil || len(r.Results) == 0
}
