package scraper

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Client fetches course pages over HTTP for the rare setups where the
// Workday grid is reachable without an interactive session. Most users
// feed a page saved from the browser instead (see LoadDocumentFile).
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new page client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// FetchDocument downloads and parses the page at the given URL
func (c *Client) FetchDocument(url string) (*goquery.Document, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	// Workday refuses requests without a browser-looking UA
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, url)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

// LoadDocumentFile parses a course page previously saved from the browser
func LoadDocumentFile(path string) (*goquery.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page file: %w", err)
	}
	defer file.Close()

	return goquery.NewDocumentFromReader(file)
}

// LoadDocument resolves a source argument to a parsed document: URLs are
// fetched, everything else is treated as a file path.
func (c *Client) LoadDocument(source string) (*goquery.Document, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return c.FetchDocument(source)
	}
	return LoadDocumentFile(source)
}
