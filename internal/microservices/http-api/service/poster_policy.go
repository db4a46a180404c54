package service

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"moviesapi/internal/microservices/http-api/dto"
)

// PosterPolicy limits the posters MovieService accepts.
type PosterPolicy struct {
	AllowedExtensions []string // with leading dot, compared case-insensitively
	MaxSize           int64    // bytes
}

func DefaultPosterPolicy() PosterPolicy {
	return PosterPolicy{
		AllowedExtensions: []string{".png", ".jpg"},
		MaxSize:           1 << 20,
	}
}

func (p PosterPolicy) allows(filename string) bool {
	ext := filepath.Ext(filename)
	if ext == "" {
		return false
	}
	for _, allowed := range p.AllowedExtensions {
		if strings.EqualFold(ext, allowed) {
			return true
		}
	}
	return false
}

// check validates what the client declared about the poster, before anything is read.
func (p PosterPolicy) check(poster dto.Poster) error {
	if !p.allows(poster.Filename) {
		return p.typeError()
	}
	if poster.Size > p.MaxSize {
		return p.sizeError()
	}
	if poster.Size == 0 {
		return ErrPosterEmpty
	}
	return nil
}

// read copies the poster into memory. At most MaxSize+1 bytes are read so a
// part that lies about its size still fails the size check. The reader is
// closed on every path.
func (p PosterPolicy) read(poster dto.Poster) ([]byte, error) {
	if poster.Open == nil {
		return nil, ErrPosterEmpty
	}
	rc, err := poster.Open()
	if err != nil {
		return nil, fmt.Errorf("open poster: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, p.MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read poster: %w", err)
	}
	if int64(len(data)) > p.MaxSize {
		return nil, p.sizeError()
	}
	if len(data) == 0 {
		return nil, ErrPosterEmpty
	}
	return data, nil
}

func (p PosterPolicy) typeError() *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("Only %s images are allowed!", joinWithAnd(p.AllowedExtensions))}
}

func (p PosterPolicy) sizeError() *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("Max allowed size for poster is %s!", humanSize(p.MaxSize))}
}

func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

func humanSize(n int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
	)
	switch {
	case n >= mb && n%mb == 0:
		return fmt.Sprintf("%dMB", n/mb)
	case n >= kb && n%kb == 0:
		return fmt.Sprintf("%dKB", n/kb)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
