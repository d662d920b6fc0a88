package assetcache

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Fetcher retrieves one shell asset by its root-relative path. Install
// treats any error as fatal for the whole version (all-or-nothing); no
// retry policy lives here.
type Fetcher interface {
	Fetch(ctx context.Context, assetPath string) (data []byte, contentType string, err error)
}

// DirFetcher serves assets from a local directory tree.
type DirFetcher struct {
	Root string
}

func (f DirFetcher) Fetch(ctx context.Context, assetPath string) ([]byte, string, error) {
	rel := strings.TrimPrefix(assetPath, "/")
	if rel == "" {
		rel = "index.html"
	}
	clean := filepath.Clean(rel)
	if strings.HasPrefix(clean, "..") {
		return nil, "", fmt.Errorf("assetcache: path %q escapes the asset root", assetPath)
	}
	data, err := os.ReadFile(filepath.Join(f.Root, clean))
	if err != nil {
		return nil, "", fmt.Errorf("assetcache: failed to read %s: %w", assetPath, err)
	}
	return data, contentTypeFor(clean), nil
}

// OriginFetcher fetches assets over HTTP from an origin server.
type OriginFetcher struct {
	BaseURL string
	Client  *http.Client
}

func (f OriginFetcher) Fetch(ctx context.Context, assetPath string) ([]byte, string, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	url := strings.TrimSuffix(f.BaseURL, "/") + "/" + strings.TrimPrefix(assetPath, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("assetcache: failed to fetch %s: %w", assetPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("assetcache: fetch %s returned status %d", assetPath, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("assetcache: failed to read %s: %w", assetPath, err)
	}

	ct := resp.Header.Get("Content-Type")
	if ct == "" {
		ct = contentTypeFor(assetPath)
	}
	return data, ct, nil
}

func contentTypeFor(assetPath string) string {
	if ct := mime.TypeByExtension(path.Ext(assetPath)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
