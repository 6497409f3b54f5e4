// Package tracker provides the issue-tracker REST client and the
// attachment fetcher that stages a ticket's log attachments on disk.
package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout is the HTTP request timeout for tracker calls.
const DefaultTimeout = 60 * time.Second

// errBodyPreview caps how much of an error response body is surfaced.
const errBodyPreview = 200

// Attachment describes one file attached to a ticket.
type Attachment struct {
	// Filename is the attachment's name as uploaded.
	Filename string

	// Size is the attachment's byte size as reported by the tracker.
	Size int64

	// ContentURL is the download handle for the attachment bytes.
	ContentURL string
}

// Client talks to the issue tracker's REST API using basic auth.
type Client struct {
	baseURL    string
	email      string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a tracker client for the given base URL and credentials.
func NewClient(baseURL, email, apiToken string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		email:      email,
		apiToken:   apiToken,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// issueResponse is the subset of the issue payload we consume.
type issueResponse struct {
	Fields struct {
		Attachment []struct {
			Filename string `json:"filename"`
			Size     int64  `json:"size"`
			Content  string `json:"content"`
		} `json:"attachment"`
	} `json:"fields"`
}

// ListAttachments returns a ticket's attachments in the order the tracker
// reports them. A ticket with no attachments yields an empty slice.
func (c *Client) ListAttachments(ctx context.Context, ticketID string) ([]Attachment, error) {
	endpoint := fmt.Sprintf("%s/rest/api/2/issue/%s?fields=attachment", c.baseURL, url.PathEscape(ticketID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.email, c.apiToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing attachments for %s: %w (check network and tracker URL)", ticketID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("ticket %s not found (check the ticket id)", ticketID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing attachments for %s: %s", ticketID, statusError(resp))
	}

	var issue issueResponse
	if err := json.NewDecoder(resp.Body).Decode(&issue); err != nil {
		return nil, fmt.Errorf("decoding attachment list for %s: %w", ticketID, err)
	}

	attachments := make([]Attachment, 0, len(issue.Fields.Attachment))
	for _, a := range issue.Fields.Attachment {
		attachments = append(attachments, Attachment{
			Filename:   a.Filename,
			Size:       a.Size,
			ContentURL: a.Content,
		})
	}
	return attachments, nil
}

// Download streams an attachment's bytes into w.
func (c *Client) Download(ctx context.Context, att Attachment, w io.Writer) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, att.ContentURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.email, c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w (check network)", att.Filename, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: %s", att.Filename, statusError(resp))
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("writing %s: %w", att.Filename, err)
	}
	return nil
}

// statusError formats a non-2xx response, including a short body preview
// when the tracker sent one.
func statusError(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errBodyPreview+1))
	text := strings.TrimSpace(string(body))
	if text == "" {
		return fmt.Sprintf("unexpected status %s", resp.Status)
	}
	if len(text) > errBodyPreview {
		text = text[:errBodyPreview] + "..."
	}
	return fmt.Sprintf("unexpected status %s: %s", resp.Status, text)
}
