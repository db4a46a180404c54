package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"moviesapi/internal/logging"
	"moviesapi/internal/microservices/http-api/cache"
	"moviesapi/internal/microservices/http-api/models"
	"moviesapi/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

type GenreService interface {
	ListAll(ctx context.Context) ([]models.Genre, error)
	Create(ctx context.Context, name string) (*models.Genre, error)
	Update(ctx context.Context, id int64, name string) (*models.Genre, error)
	Delete(ctx context.Context, id int64) (*models.Genre, error)
}

type genreService struct {
	repo   repository.GenreRepository
	cache  cache.Store
	policy repository.DeletePolicy
	log    *slog.Logger
}

func NewGenreService(repo repository.GenreRepository, store cache.Store, policy repository.DeletePolicy, log *slog.Logger) GenreService {
	if store == nil {
		store = cache.Noop{}
	}
	if log == nil {
		log = slog.Default()
	}
	if policy == "" {
		policy = repository.DeleteDetach
	}
	return &genreService{
		repo:   repo,
		cache:  store,
		policy: policy,
		log:    logging.WithComponent(log, "genre_service"),
	}
}

func (s *genreService) ListAll(ctx context.Context) ([]models.Genre, error) {
	return loadCached(ctx, s.cache, s.log, cache.GenresScope, cache.GenresKey, func() ([]models.Genre, error) {
		return s.repo.GetAll(ctx)
	})
}

func (s *genreService) Create(ctx context.Context, name string) (*models.Genre, error) {
	g := &models.Genre{Name: name}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.log, cache.GenresScope)
	return g, nil
}

func (s *genreService) Update(ctx context.Context, id int64, name string) (*models.Genre, error) {
	g, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	g.Name = name
	if err := s.repo.Update(ctx, g); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}

	// movie projections carry the genre name
	invalidate(ctx, s.cache, s.log, cache.GenresScope, cache.MoviesScope)
	return g, nil
}

func (s *genreService) Delete(ctx context.Context, id int64) (*models.Genre, error) {
	g, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id, s.policy); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrGenreNotFound
		case errors.Is(err, repository.ErrGenreReferenced):
			return nil, ErrGenreInUse
		}
		return nil, err
	}

	logging.WithRequestID(ctx, s.log).Info("genre_deleted", "genre_id", id, "policy", string(s.policy))
	invalidate(ctx, s.cache, s.log, cache.GenresScope, cache.MoviesScope)
	return g, nil
}

func (s *genreService) find(ctx context.Context, id int64) (*models.Genre, error) {
	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, fmt.Errorf("get genre %d: %w", id, err)
	}
	return g, nil
}
