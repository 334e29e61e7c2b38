package httpfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/datatug/remotetug/pkg/files"
)

type StoreOption func(*HttpStore)

func NewStore(root url.URL, o ...StoreOption) *HttpStore {
	store := &HttpStore{
		Root: root,
	}
	for _, opt := range o {
		opt(store)
	}
	return store
}

func WithHttpClient(client *http.Client) StoreOption {
	return func(store *HttpStore) {
		store.client = client
	}
}

var _ files.Store = (*HttpStore)(nil)

// HttpStore talks to the file server JSON API rooted at Root.
type HttpStore struct {
	Root   url.URL
	client *http.Client
}

func (h HttpStore) RootURL() url.URL {
	return h.Root
}

func (h HttpStore) RootTitle() string {
	root := h.Root
	root.User = nil
	return root.String()
}

func (h HttpStore) List(ctx context.Context, path string) ([]files.DirEntry, error) {
	resp, err := h.do(ctx, http.MethodGet, files.OpList, "/api/files", "path", path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var entries []files.DirEntry
	if err = json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, &files.RemoteError{Op: files.OpList, Path: path, Err: fmt.Errorf("malformed listing: %w", err)}
	}
	if entries == nil {
		entries = []files.DirEntry{}
	}
	return entries, nil
}

func (h HttpStore) Download(ctx context.Context, path string) (io.ReadCloser, int64, error) {
	resp, err := h.do(ctx, http.MethodGet, files.OpDownload, "/api/download", "file", path)
	if err != nil {
		return nil, 0, err
	}
	return resp.Body, resp.ContentLength, nil
}

func (h HttpStore) Delete(ctx context.Context, path string) error {
	resp, err := h.do(ctx, http.MethodDelete, files.OpDelete, "/api/delete", "file", path)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

func (h HttpStore) Stats(ctx context.Context) (stats files.Stats, err error) {
	resp, err := h.do(ctx, http.MethodGet, files.OpStats, "/api/stats", "", "")
	if err != nil {
		return stats, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if err = json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return files.Stats{}, &files.RemoteError{Op: files.OpStats, Err: fmt.Errorf("malformed stats: %w", err)}
	}
	return stats, nil
}

// do sends a request and returns the response only for 2xx statuses.
// Any other outcome is a *files.RemoteError with the body already closed.
func (h HttpStore) do(ctx context.Context, method string, op files.Op, apiPath, param, value string) (*http.Response, error) {
	reqURL := h.endpoint(apiPath, param, value)

	client := h.client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return nil, &files.RemoteError{Op: op, Path: value, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	if method == http.MethodGet && op != files.OpDownload {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &files.RemoteError{Op: op, Path: value, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
		return nil, &files.RemoteError{
			Op:         op,
			Path:       value,
			StatusCode: resp.StatusCode,
			Status:     statusText(resp),
		}
	}
	return resp, nil
}

func (h HttpStore) endpoint(apiPath, param, value string) string {
	u := h.Root
	u.Path = strings.TrimSuffix(u.Path, "/") + apiPath
	u.RawPath = ""
	u.RawQuery = ""
	if param != "" {
		u.RawQuery = param + "=" + EncodeQueryValue(value)
	}
	return u.String()
}

// EncodeQueryValue percent-encodes v the way browsers' encodeURIComponent does,
// so spaces become %20 rather than "+".
func EncodeQueryValue(v string) string {
	return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
}

func statusText(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, code)); text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}
