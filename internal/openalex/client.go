// Package openalex is a read-only client for the OpenAlex metadata index,
// used to surface example research abstracts for analysis.
package openalex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.openalex.org"
	unpaywallURL   = "https://api.unpaywall.org/v2"

	// Max Planck Society institution lineage.
	maxPlanckLineage = "i149899117"

	selectFields = "id,doi,title,abstract_inverted_index,publication_year,cited_by_count,authorships,primary_topic,topics,open_access"

	defaultPerPage = 10
	maxPerPage     = 50
	defaultSort    = "cited_by_count:desc"
)

// Client queries OpenAlex works. The mailto address is attached per the
// polite-usage guidelines.
type Client struct {
	baseURL      string
	unpaywallURL string
	mailto       string
	httpClient   *http.Client
}

// NewClient constructs a Client. An empty baseURL falls back to the public API.
func NewClient(baseURL, mailto string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		unpaywallURL: unpaywallURL,
		mailto:       mailto,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Authorship names one author and their institutions.
type Authorship struct {
	Author struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
	} `json:"author"`
	Institutions []struct {
		ID          string `json:"id"`
		DisplayName string `json:"display_name"`
	} `json:"institutions"`
}

// Topic is a subject classification attached to a work.
type Topic struct {
	ID          string  `json:"id,omitempty"`
	DisplayName string  `json:"display_name"`
	Score       float64 `json:"score,omitempty"`
}

// OpenAccess describes the open-access status of a work.
type OpenAccess struct {
	IsOA     bool   `json:"is_oa"`
	OAURL    string `json:"oa_url,omitempty"`
	OAStatus string `json:"oa_status,omitempty"`
}

// Work is one research record. The abstract arrives as an inverted
// word-position index and is reconstructed into plain text on fetch.
type Work struct {
	ID                    string           `json:"id"`
	DOI                   string           `json:"doi,omitempty"`
	Title                 string           `json:"title"`
	Abstract              string           `json:"abstract,omitempty"`
	AbstractInvertedIndex map[string][]int `json:"abstract_inverted_index,omitempty"`
	PublicationYear       int              `json:"publication_year"`
	CitedByCount          int              `json:"cited_by_count"`
	Authorships           []Authorship     `json:"authorships"`
	PrimaryTopic          *Topic           `json:"primary_topic,omitempty"`
	Topics                []Topic          `json:"topics,omitempty"`
	OpenAccess            *OpenAccess      `json:"open_access,omitempty"`
}

// Meta carries pagination metadata.
type Meta struct {
	Count            int `json:"count"`
	DBResponseTimeMS int `json:"db_response_time_ms"`
	Page             int `json:"page"`
	PerPage          int `json:"per_page"`
}

// WorksPage is one page of works.
type WorksPage struct {
	Meta    Meta   `json:"meta"`
	Results []Work `json:"results"`
}

// InstitutionWorks returns a page of Max Planck works sorted by the given key.
func (c *Client) InstitutionWorks(ctx context.Context, page, perPage int, sortBy string) (WorksPage, error) {
	if strings.TrimSpace(sortBy) == "" {
		sortBy = defaultSort
	}
	params := c.baseParams(page, perPage)
	params.Set("sort", sortBy)
	return c.fetchWorks(ctx, params)
}

// Search returns Max Planck works matching the full-text query.
func (c *Client) Search(ctx context.Context, query string, page, perPage int) (WorksPage, error) {
	if strings.TrimSpace(query) == "" {
		return WorksPage{}, fmt.Errorf("search query is required")
	}
	params := c.baseParams(page, perPage)
	params.Set("search", query)
	return c.fetchWorks(ctx, params)
}

func (c *Client) baseParams(page, perPage int) url.Values {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	params := url.Values{}
	params.Set("filter", "authorships.institutions.lineage:"+maxPlanckLineage)
	params.Set("select", selectFields)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))
	if c.mailto != "" {
		params.Set("mailto", c.mailto)
	}
	return params
}

func (c *Client) fetchWorks(ctx context.Context, params url.Values) (WorksPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/works?"+params.Encode(), nil)
	if err != nil {
		return WorksPage{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return WorksPage{}, fmt.Errorf("openalex request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return WorksPage{}, fmt.Errorf("openalex: status %d", resp.StatusCode)
	}

	var page WorksPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return WorksPage{}, fmt.Errorf("openalex decode: %w", err)
	}

	for i := range page.Results {
		page.Results[i].Abstract = ReconstructAbstract(page.Results[i].AbstractInvertedIndex)
		page.Results[i].AbstractInvertedIndex = nil
	}
	return page, nil
}

// ReconstructAbstract rebuilds plain text from an inverted word-position
// index: every word lists the positions it occupies.
func ReconstructAbstract(index map[string][]int) string {
	if len(index) == 0 {
		return ""
	}

	positions := make(map[int]string, len(index))
	for word, posList := range index {
		for _, pos := range posList {
			positions[pos] = word
		}
	}

	sorted := make([]int, 0, len(positions))
	for pos := range positions {
		sorted = append(sorted, pos)
	}
	sort.Ints(sorted)

	words := make([]string, 0, len(sorted))
	for _, pos := range sorted {
		words = append(words, positions[pos])
	}
	return strings.Join(words, " ")
}

// FullTextURL resolves an open-access PDF for the given DOI via Unpaywall,
// falling back to the DOI URL. It never fails: callers always get a link.
func (c *Client) FullTextURL(ctx context.Context, doi string) string {
	cleanDOI := strings.TrimPrefix(doi, "https://doi.org/")
	fallback := "https://doi.org/" + cleanDOI
	if cleanDOI == "" {
		return fallback
	}

	endpoint := fmt.Sprintf("%s/%s?email=%s", c.unpaywallURL, url.PathEscape(cleanDOI), url.QueryEscape(c.mailto))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fallback
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fallback
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fallback
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fallback
	}
	var parsed struct {
		IsOA           bool `json:"is_oa"`
		BestOALocation *struct {
			URLForPDF string `json:"url_for_pdf"`
		} `json:"best_oa_location"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fallback
	}
	if parsed.IsOA && parsed.BestOALocation != nil && parsed.BestOALocation.URLForPDF != "" {
		return parsed.BestOALocation.URLForPDF
	}
	return fallback
}
