// Package corpus - MediaWiki fetching and HTML reduction.
//
// Design:
//   - One page per call through the MediaWiki parse API; the caller owns
//     the http.Client (timeouts, proxies) and the context (cancellation).
//   - HTML is reduced with the bluntest instrument that works: strip tags,
//     strip entities, collapse whitespace. Normalize downstream discards
//     everything outside the alphabet anyway, so fidelity beyond that is
//     wasted effort.
package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// DefaultAPIBase is the MediaWiki API endpoint of the Czech Wikisource,
// home of the reference corpus.
const DefaultAPIBase = "https://cs.wikisource.org/w/api.php"

// DefaultPage is the reference corpus page.
const DefaultPage = "Krakatit"

var (
	htmlTags     = regexp.MustCompile(`<[^>]+>`)
	htmlEntities = regexp.MustCompile(`&[^;\s]+;`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// parseResponse is the slice of the MediaWiki parse API response we need.
type parseResponse struct {
	Parse struct {
		Text struct {
			Content string `json:"*"`
		} `json:"text"`
	} `json:"parse"`
}

// Fetch downloads page via the MediaWiki parse API at apiBase and returns
// its content reduced to raw text. A nil client falls back to
// http.DefaultClient; empty apiBase/page fall back to the defaults.
//
// Errors are wrapped stdlib/HTTP errors; an unexpected status or an empty
// parse payload is reported with the page name for context.
func Fetch(ctx context.Context, client *http.Client, apiBase, page string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if apiBase == "" {
		apiBase = DefaultAPIBase
	}
	if page == "" {
		page = DefaultPage
	}

	q := url.Values{}
	q.Set("action", "parse")
	q.Set("format", "json")
	q.Set("prop", "text")
	q.Set("page", page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiBase+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("corpus: fetching %q: unexpected status %s", page, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var pr parseResponse
	if err = json.Unmarshal(body, &pr); err != nil {
		return "", fmt.Errorf("corpus: fetching %q: %w", page, err)
	}
	if pr.Parse.Text.Content == "" {
		return "", fmt.Errorf("corpus: fetching %q: empty parse payload", page)
	}

	return StripHTML(pr.Parse.Text.Content), nil
}

// StripHTML reduces an HTML fragment to raw text: tags and entities become
// spaces, whitespace runs collapse to a single space.
func StripHTML(html string) string {
	text := htmlTags.ReplaceAllString(html, " ")
	text = htmlEntities.ReplaceAllString(text, " ")
	text = whitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
