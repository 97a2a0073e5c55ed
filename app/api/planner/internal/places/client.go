package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpc"
)

const defaultBaseURL = "https://api.yelp.com/v3"

// Client talks to the Yelp Fusion API.
type Client struct {
	baseURL string
	apiKey  string
}

func NewClient(apiKey string) *Client {
	return &Client{baseURL: defaultBaseURL, apiKey: apiKey}
}

// NewClientWithBaseURL exists for tests pointing at a local server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{baseURL: baseURL, apiKey: apiKey}
}

type searchRequest struct {
	SearchParams
	Authorization string `header:"Authorization"`
}

// Search runs a business search with the given filters.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResponse, error) {
	req := searchRequest{
		SearchParams:  params,
		Authorization: "Bearer " + c.apiKey,
	}

	resp, err := httpc.Do(ctx, http.MethodGet, c.baseURL+"/businesses/search", req)
	if err != nil {
		return nil, fmt.Errorf("yelp search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("yelp search: status %d: %s", resp.StatusCode, body)
	}

	var result SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("yelp search: decode: %w", err)
	}
	return &result, nil
}
