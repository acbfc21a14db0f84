package services

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Categories is the fixed set of cultural domains. Every component that
// groups data by category iterates this slice in this order.
var Categories = []string{"film", "music", "book", "travel", "cuisine"}

// QlooItem is one entry from the Qloo search/recommendation responses.
// IDs are only used for de-duplication before the recommendation lookup.
type QlooItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ─── Qloo Client ──────────────────────────────────────────────────────────────

type QlooClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewQlooClient(apiKey string) *QlooClient {
	c := &QlooClient{
		apiKey:  apiKey,
		baseURL: "https://hackathon.api.qloo.com",
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}

	if apiKey == "" {
		log.Println("⚠️  QLOO_API_KEY not set — cultural search will return empty results")
	}
	return c
}

// Search issues one search call per category for the given query.
// Failures of any kind (transport, non-200, bad JSON) degrade to an empty
// list for that category; the returned map always carries every category.
func (c *QlooClient) Search(query string) map[string][]QlooItem {
	results := make(map[string][]QlooItem, len(Categories))
	for _, cat := range Categories {
		results[cat] = c.searchCategory(query, cat)
	}
	return results
}

func (c *QlooClient) searchCategory(query, category string) []QlooItem {
	params := url.Values{}
	params.Set("query", query)
	params.Set("category", category)

	body, err := c.doGet("/search", params)
	if err != nil {
		log.Printf("⚠️  Qloo search failed for %q/%s: %v", query, category, err)
		return []QlooItem{}
	}

	var resp struct {
		Results []QlooItem `json:"results"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Printf("⚠️  Qloo search returned unparsable body for %s: %v", category, err)
		return []QlooItem{}
	}
	if resp.Results == nil {
		return []QlooItem{}
	}
	return resp.Results
}

// Recommend looks up recommendations per category from a sample of item
// IDs. Categories with no IDs are skipped entirely — absent from the
// result, not present with an empty list. At most the first 5 IDs per
// category are sent. Like Search, upstream failures never surface.
func (c *QlooClient) Recommend(idsByCat map[string][]string) map[string][]QlooItem {
	recos := make(map[string][]QlooItem)
	for cat, ids := range idsByCat {
		if len(ids) == 0 {
			continue
		}
		recos[cat] = c.recommendCategory(cat, ids)
	}
	return recos
}

func (c *QlooClient) recommendCategory(category string, ids []string) []QlooItem {
	if len(ids) > 5 {
		ids = ids[:5]
	}

	sample, err := json.Marshal(ids)
	if err != nil {
		return []QlooItem{}
	}

	params := url.Values{}
	params.Set("sample", string(sample))
	params.Set("category", category)

	body, err := c.doGet("/recs", params)
	if err != nil {
		log.Printf("⚠️  Qloo recommendation failed for %s: %v", category, err)
		return []QlooItem{}
	}

	// The response keys the item list by the category name itself.
	var resp map[string]json.RawMessage
	if err := json.Unmarshal(body, &resp); err != nil {
		return []QlooItem{}
	}

	var items []QlooItem
	if raw, ok := resp[category]; ok {
		if err := json.Unmarshal(raw, &items); err != nil {
			return []QlooItem{}
		}
	}
	if items == nil {
		items = []QlooItem{}
	}
	return items
}

func (c *QlooClient) doGet(path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequest("GET", c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("qloo error (%d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}
