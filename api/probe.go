package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// ProbeResult classifies the backend before the first real fetch.
// Reachable means at least one list endpoint answered 2xx.
type ProbeResult struct {
	Reachable bool     `json:"reachable"`
	Working   []string `json:"working"`
	Failed    []string `json:"failed"`
}

var probeEndpoints = []struct {
	path string
	name string
}{
	{"/users/get_users", "Users"},
	{"/solutions/get_solutions", "Solutions"},
	{"/comments/get_comments", "Comments"},
	{"/posts/get_posts", "Posts"},
}

// Probe issues one best-effort GET per resource list endpoint. Failures
// are diagnostic only; callers must not treat them as fatal. There is no
// retry: this runs once, before the main data fetch.
func (c *Client) Probe(ctx context.Context) ProbeResult {
	var result ProbeResult
	for _, endpoint := range probeEndpoints {
		if err := c.probeOne(ctx, endpoint.path); err != nil {
			result.Failed = append(result.Failed, fmt.Sprintf("%s (%v)", endpoint.name, err))
			continue
		}
		result.Working = append(result.Working, endpoint.name)
	}
	result.Reachable = len(result.Working) > 0
	return result
}

func (c *Client) probeOne(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%d", resp.StatusCode)
	}
	return nil
}
