package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/julianstephens/gryd/internal/models"
)

// fetchGitLab reads the activity calendar. The endpoint is public for public
// profiles and already returns the per-date count mapping gryd wants; a
// stored token is attached when available so private-profile calendars
// resolve too.
func (c *Client) fetchGitLab(ctx context.Context, username string) (map[string]int, error) {
	endpoint := fmt.Sprintf("%s/users/%s/calendar.json", c.GitLabBaseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("gitlab: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if token, err := c.Tokens.GetToken(models.DataSourceGitLab); err == nil && token != "" {
		req.Header.Set("PRIVATE-TOKEN", token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gitlab: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gitlab: failed to fetch contributions: %s", resp.Status)
	}

	var counts map[string]int
	if err := json.NewDecoder(resp.Body).Decode(&counts); err != nil {
		return nil, fmt.Errorf("gitlab: malformed response: %w", err)
	}
	return counts, nil
}
