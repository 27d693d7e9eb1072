// Package encyclopedia resolves a free-text company name to a short profile
// using the Wikipedia API: an opensearch call to find the article, then an
// extracts call for the intro text.
package encyclopedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/vr-tejas/Stockmind/pkg/stockmind/types"
)

const DefaultBaseURL = "https://en.wikipedia.org/w/api.php"

const summarySentences = 2

// Client queries the Wikipedia API.
type Client struct {
	BaseURL string
	client  *http.Client
}

// NewClient constructs a client against the public Wikipedia API.
func NewClient(timeout time.Duration) *Client {
	return &Client{BaseURL: DefaultBaseURL, client: &http.Client{Timeout: timeout}}
}

// NewClientWithBaseURL constructs a client against an alternate endpoint,
// using the supplied HTTP client. Useful for tests.
func NewClientWithBaseURL(baseURL string, client *http.Client) *Client {
	return &Client{BaseURL: baseURL, client: client}
}

// Lookup resolves name to a CompanyProfile with a two-sentence summary.
func (c *Client) Lookup(ctx context.Context, name string) (types.CompanyProfile, error) {
	title, err := c.search(ctx, name)
	if err != nil {
		return types.CompanyProfile{}, err
	}
	extract, err := c.extract(ctx, title)
	if err != nil {
		return types.CompanyProfile{}, err
	}
	summary := firstSentences(extract, summarySentences)
	return types.CompanyProfile{
		Name:     name,
		Title:    title,
		Industry: industryFrom(summary),
		Summary:  summary,
	}, nil
}

func (c *Client) search(ctx context.Context, name string) (string, error) {
	q := url.Values{}
	q.Set("action", "opensearch")
	q.Set("search", name)
	q.Set("limit", "1")
	q.Set("format", "json")

	// opensearch responds with [query, titles, descriptions, urls].
	var payload []json.RawMessage
	if err := c.get(ctx, q, &payload); err != nil {
		return "", err
	}
	if len(payload) < 2 {
		return "", &types.TransientError{Op: "wikipedia opensearch: unexpected response shape"}
	}
	var titles []string
	if err := json.Unmarshal(payload[1], &titles); err != nil {
		return "", &types.TransientError{Op: "wikipedia opensearch", Err: err}
	}
	if len(titles) == 0 {
		return "", &types.NotFoundError{Kind: "wikipedia article", Query: name}
	}
	return titles[0], nil
}

func (c *Client) extract(ctx context.Context, title string) (string, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("prop", "extracts")
	q.Set("exintro", "1")
	q.Set("explaintext", "1")
	q.Set("redirects", "1")
	q.Set("titles", title)
	q.Set("format", "json")

	var payload struct {
		Query struct {
			Pages map[string]struct {
				Title   string `json:"title"`
				Extract string `json:"extract"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := c.get(ctx, q, &payload); err != nil {
		return "", err
	}
	for _, p := range payload.Query.Pages {
		if text := strings.TrimSpace(p.Extract); text != "" {
			return text, nil
		}
	}
	return "", &types.NotFoundError{Kind: "wikipedia extract", Query: title}
}

func (c *Client) get(ctx context.Context, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return &types.TransientError{Op: "wikipedia request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return &types.TransientError{Op: "wikipedia request", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &types.TransientError{Op: fmt.Sprintf("wikipedia http %d", resp.StatusCode)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &types.TransientError{Op: "wikipedia decode", Err: err}
	}
	return nil
}

// firstSentences trims text to at most n sentences. A sentence ends at a '.'
// followed by whitespace or end of text; abbreviations like "Inc." followed by
// a lowercase word are not treated as boundaries.
func firstSentences(text string, n int) string {
	runes := []rune(strings.TrimSpace(text))
	count := 0
	for i := 0; i < len(runes); i++ {
		if runes[i] != '.' {
			continue
		}
		if i+1 == len(runes) {
			return string(runes)
		}
		if !unicode.IsSpace(runes[i+1]) {
			continue
		}
		// Peek at the next word; a lowercase start suggests an abbreviation.
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j < len(runes) && unicode.IsLower(runes[j]) {
			continue
		}
		count++
		if count >= n {
			return strings.TrimSpace(string(runes[:i+1]))
		}
	}
	return string(runes)
}

// industryWords mark the head noun of the "X is a ... <industry> company"
// pattern common to company article intros.
var industryWords = map[string]struct{}{
	"company":      {},
	"corporation":  {},
	"conglomerate": {},
	"manufacturer": {},
	"retailer":     {},
	"bank":         {},
	"firm":         {},
}

// industryFrom extracts an industry hint from the summary's first sentence,
// taking the word preceding a head noun like "company". Best effort only.
func industryFrom(summary string) string {
	sentence := firstSentences(summary, 1)
	idx := strings.Index(sentence, " is a ")
	if idx < 0 {
		idx = strings.Index(sentence, " is an ")
	}
	if idx < 0 {
		return ""
	}
	words := strings.Fields(sentence[idx:])
	for i, w := range words {
		w = strings.ToLower(strings.Trim(w, ".,;:()"))
		if _, ok := industryWords[w]; ok && i > 0 {
			prev := strings.Trim(words[i-1], ".,;:()")
			if prev == "" {
				return ""
			}
			return capitalize(prev)
		}
	}
	return ""
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
