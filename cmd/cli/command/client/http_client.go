package client

// http_client.go wraps the movies API for the CLI.

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type MovieResponse struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Rate      float64 `json:"rate"`
	StoryLine string  `json:"storyLine"`
	Poster    []byte  `json:"poster"`
	GenreID   *int64  `json:"genreId"`
	GenreName *string `json:"genreName,omitempty"`
}

// MovieInput is what create and update send. An empty PosterPath sends no poster,
// which keeps the stored one on update.
type MovieInput struct {
	Title      string
	Year       int
	Rate       float64
	StoryLine  string
	GenreID    int64
	PosterPath string
}

// APIError is a non-2xx answer. Message is the server's body, trimmed.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("request failed (%d): %s", e.StatusCode, e.Message)
}

func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Genres

func (c *HTTPClient) ListGenres(ctx context.Context) ([]GenreResponse, error) {
	var out []GenreResponse
	err := c.do(ctx, http.MethodGet, "/genres", nil, "", &out)
	return out, err
}

func (c *HTTPClient) CreateGenre(ctx context.Context, name string) (*GenreResponse, error) {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return nil, err
	}
	var out GenreResponse
	if err := c.do(ctx, http.MethodPost, "/genres", bytes.NewReader(body), "application/json", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateGenre(ctx context.Context, id int64, name string) (*GenreResponse, error) {
	body, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return nil, err
	}
	var out GenreResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/genres/%d", id), bytes.NewReader(body), "application/json", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteGenre(ctx context.Context, id int64) (*GenreResponse, error) {
	var out GenreResponse
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/genres/%d", id), nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Movies

func (c *HTTPClient) ListMovies(ctx context.Context) ([]MovieResponse, error) {
	var out []MovieResponse
	err := c.do(ctx, http.MethodGet, "/movies", nil, "", &out)
	return out, err
}

func (c *HTTPClient) ListMoviesByGenre(ctx context.Context, genreID int64) ([]MovieResponse, error) {
	q := url.Values{"genreid": {strconv.FormatInt(genreID, 10)}}
	var out []MovieResponse
	err := c.do(ctx, http.MethodGet, "/movies/GetByGenreId?"+q.Encode(), nil, "", &out)
	return out, err
}

func (c *HTTPClient) GetMovie(ctx context.Context, id int64) (*MovieResponse, error) {
	var out MovieResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/movies/%d", id), nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) CreateMovie(ctx context.Context, in MovieInput) (*MovieResponse, error) {
	body, contentType, err := in.multipartBody()
	if err != nil {
		return nil, err
	}
	var out MovieResponse
	if err := c.do(ctx, http.MethodPost, "/movies", body, contentType, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) UpdateMovie(ctx context.Context, id int64, in MovieInput) (*MovieResponse, error) {
	body, contentType, err := in.multipartBody()
	if err != nil {
		return nil, err
	}
	var out MovieResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/movies/%d", id), body, contentType, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) DeleteMovie(ctx context.Context, id int64) (*MovieResponse, error) {
	var out MovieResponse
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/movies/%d", id), nil, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (in MovieInput) multipartBody() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"title", in.Title},
		{"year", strconv.Itoa(in.Year)},
		{"rate", strconv.FormatFloat(in.Rate, 'f', -1, 64)},
		{"storyLine", in.StoryLine},
		{"genreId", strconv.FormatInt(in.GenreID, 10)},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}

	if in.PosterPath != "" {
		f, err := os.Open(in.PosterPath)
		if err != nil {
			return nil, "", fmt.Errorf("open poster: %w", err)
		}
		defer f.Close()

		part, err := w.CreateFormFile("poster", filepath.Base(in.PosterPath))
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f); err != nil {
			return nil, "", fmt.Errorf("read poster: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
