package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julianstephens/gryd/internal/models"
)

// contributionQuery pulls the user's contribution calendar. The calendar
// covers the trailing year, matching what the profile heatmap shows.
const contributionQuery = `
query($username: String!) {
  user(login: $username) {
    contributionsCollection {
      contributionCalendar {
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
    }
  }
}`

type githubResponse struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar struct {
					Weeks []struct {
						ContributionDays []struct {
							Date              string `json:"date"`
							ContributionCount int    `json:"contributionCount"`
						} `json:"contributionDays"`
					} `json:"weeks"`
				} `json:"contributionCalendar"`
			} `json:"contributionsCollection"`
		} `json:"user"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *Client) fetchGitHub(ctx context.Context, username string) (map[string]int, error) {
	token, err := c.Tokens.GetToken(models.DataSourceGitHub)
	if err != nil {
		return nil, fmt.Errorf("github: %w: %v", ErrMissingCredentials, err)
	}

	body, err := json.Marshal(map[string]any{
		"query":     contributionQuery,
		"variables": map[string]string{"username": username},
	})
	if err != nil {
		return nil, fmt.Errorf("github: failed to encode query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.GitHubGraphQLURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("github: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github: failed to fetch contributions: %s", resp.Status)
	}

	var parsed githubResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("github: malformed response: %w", err)
	}
	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("github: %s", parsed.Errors[0].Message)
	}
	if parsed.Data.User == nil {
		return nil, fmt.Errorf("github: no such user: %s", username)
	}

	// Days without contributions are omitted: a missing date already means
	// zero to every consumer.
	counts := make(map[string]int)
	for _, week := range parsed.Data.User.ContributionsCollection.ContributionCalendar.Weeks {
		for _, day := range week.ContributionDays {
			if day.ContributionCount > 0 {
				counts[day.Date] = day.ContributionCount
			}
		}
	}
	return counts, nil
}
