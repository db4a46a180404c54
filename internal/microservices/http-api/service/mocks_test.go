package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sync"

	"moviesapi/internal/microservices/http-api/dto"
	"moviesapi/internal/microservices/http-api/models"
	"moviesapi/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/mock"
)

// MockGenreRepository mocks the GenreRepository interface
type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) GetAll(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockGenreRepository) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

func (m *MockGenreRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockGenreRepository) Create(ctx context.Context, g *models.Genre) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGenreRepository) Update(ctx context.Context, g *models.Genre) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGenreRepository) Delete(ctx context.Context, id int64, policy repository.DeletePolicy) error {
	args := m.Called(ctx, id, policy)
	return args.Error(0)
}

// MockMovieRepository mocks the MovieRepository interface
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) GetAll(ctx context.Context) ([]models.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetByGenre(ctx context.Context, genreID int64) ([]models.Movie, error) {
	args := m.Called(ctx, genreID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockMovieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *models.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *models.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCache mocks cache.Store
type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	args := m.Called(ctx, key, dst)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) SetJSON(ctx context.Context, key string, value any) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockCache) Generation(ctx context.Context, scope string) (int64, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCache) Bump(ctx context.Context, scopes ...string) error {
	args := m.Called(ctx, scopes)
	return args.Error(0)
}

func (m *MockCache) Close() error {
	return m.Called().Error(0)
}

// memStore is an in-process cache.Store with real generation semantics.
type memStore struct {
	mu      sync.Mutex
	entries map[string][]byte
	gens    map[string]int64
}

func newMemStore() *memStore {
	return &memStore{entries: map[string][]byte{}, gens: map[string]int64{}}
}

func (s *memStore) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	s.mu.Lock()
	raw, ok := s.entries[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (s *memStore) SetJSON(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.entries[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *memStore) Generation(_ context.Context, scope string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[scope], nil
}

func (s *memStore) Bump(_ context.Context, scopes ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, scope := range scopes {
		s.gens[scope]++
	}
	return nil
}

func (s *memStore) Close() error { return nil }

// trackedReader records whether the poster stream was opened and closed.
type trackedReader struct {
	io.Reader
	opened bool
	closed bool
}

func (r *trackedReader) Close() error {
	r.closed = true
	return nil
}

func fakePoster(name string, declared int64, data []byte) (dto.Poster, *trackedReader) {
	tr := &trackedReader{Reader: bytes.NewReader(data)}
	return dto.Poster{
		Filename: name,
		Size:     declared,
		Open: func() (io.ReadCloser, error) {
			tr.opened = true
			return tr, nil
		},
	}, tr
}

func int64Ptr(v int64) *int64 { return &v }
