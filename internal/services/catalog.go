package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// BookCandidate is one external catalog hit, shaped for prefilling the
// submission form.
type BookCandidate struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	Description string   `json:"description"`
	Cover       string   `json:"cover"`
	Link        string   `json:"link"`
	Categories  []string `json:"categories"`
}

// CatalogService queries the Google Books volumes API for title
// autocomplete and form prefill.
type CatalogService struct {
	httpClient *http.Client
	baseURL    string
}

// NewCatalogService creates a catalog client. CATALOG_BASE_URL overrides the
// endpoint, mainly for tests.
func NewCatalogService() *CatalogService {
	base := os.Getenv("CATALOG_BASE_URL")
	if base == "" {
		base = "https://www.googleapis.com/books/v1"
	}
	return &CatalogService{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: base,
	}
}

// Search returns up to limit candidate books for a free-text query.
func (s *CatalogService) Search(ctx context.Context, query string, limit int) ([]BookCandidate, error) {
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	if limit <= 0 {
		limit = 5
	}

	searchURL := fmt.Sprintf("%s/volumes?q=%s&maxResults=%d", s.baseURL, url.QueryEscape(query), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search volumes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	candidates := make([]BookCandidate, 0, len(result.Items))
	for _, item := range result.Items {
		candidates = append(candidates, convertVolume(item.VolumeInfo))
	}
	return candidates, nil
}

func convertVolume(info volumeInfo) BookCandidate {
	candidate := BookCandidate{
		Title:       info.Title,
		Author:      strings.Join(info.Authors, ", "),
		Description: info.Description,
		Link:        info.InfoLink,
		Categories:  info.Categories,
	}
	if info.ImageLinks != nil {
		candidate.Cover = info.ImageLinks.Thumbnail
		if candidate.Cover == "" {
			candidate.Cover = info.ImageLinks.SmallThumbnail
		}
	}
	return candidate
}

// Google Books API response types (internal)

type volumesResponse struct {
	TotalItems int          `json:"totalItems"`
	Items      []volumeItem `json:"items"`
}

type volumeItem struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title       string      `json:"title"`
	Authors     []string    `json:"authors"`
	Description string      `json:"description"`
	Categories  []string    `json:"categories"`
	InfoLink    string      `json:"infoLink"`
	ImageLinks  *imageLinks `json:"imageLinks"`
}

type imageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}
