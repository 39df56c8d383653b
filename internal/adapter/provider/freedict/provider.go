// Package freedict looks words up in the FreeDictionary web API and maps the
// response onto candidate definitions.
package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/silverhammermba/bananagrams/internal/domain"
)

const (
	defaultBaseURL  = "https://api.dictionaryapi.dev/api/v2/entries/en"
	defaultCategory = "unknown"
)

// Provider fetches candidate definitions from the FreeDictionary API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewProvider creates a Provider with the default FreeDictionary API URL.
func NewProvider(logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL.
// An empty baseURL selects the public API.
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "freedict"),
	}
}

// Candidates implements define.Source.
// Returns an empty set if the word is not found (HTTP 404).
func (p *Provider) Candidates(ctx context.Context, word string) (domain.CandidateSet, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		p.log.ErrorContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("freedict: %w: %w", domain.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("freedict: %w: unexpected status %d", domain.ErrLookupFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("freedict: read body: %w", err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w", err)
	}

	set := mapAPIResponse(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("categories", len(set)),
		slog.Int("senses", set.SenseCount()),
	)

	return set, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "freedict retry", slog.String("word", word), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(p.retryDelay):
	}

	return p.httpClient.Do(req)
}

// mapAPIResponse converts the API entries into a candidate set.
// Meanings of all entries are grouped by part of speech in order of first
// appearance. Each definition becomes one sense whose synonyms are the
// headword followed by the meaning-level and definition-level synonyms.
func mapAPIResponse(entries []apiEntry) domain.CandidateSet {
	var set domain.CandidateSet
	groupIdx := make(map[string]int)

	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			category := domain.NormalizeText(meaning.PartOfSpeech)
			if category == "" {
				category = defaultCategory
			}

			for _, def := range meaning.Definitions {
				clauses := splitClauses(def.Definition)
				if len(clauses) == 0 {
					continue
				}
				sense := domain.Sense{
					Synonyms: synonyms(entry.Word, meaning.Synonyms, def.Synonyms),
					Clauses:  clauses,
				}

				i, ok := groupIdx[category]
				if !ok {
					i = len(set)
					groupIdx[category] = i
					set = append(set, domain.CategoryGroup{Category: category})
				}
				set[i].Senses = append(set[i].Senses, sense)
			}
		}
	}

	return set
}

// splitClauses splits a definition on semicolons. The sentence-final period
// is dropped so clauses read like WordNet glosses.
func splitClauses(definition string) []string {
	var out []string
	for _, part := range strings.Split(definition, ";") {
		part = domain.NormalizeGloss(part)
		part = strings.TrimSpace(strings.TrimSuffix(part, "."))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func synonyms(headword string, lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		s = domain.NormalizeGloss(s)
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	add(headword)
	for _, list := range lists {
		for _, s := range list {
			add(s)
		}
	}
	return out
}
