package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"moviesapi/internal/logging"
	"moviesapi/internal/microservices/http-api/cache"
	"moviesapi/internal/microservices/http-api/dto"
	"moviesapi/internal/microservices/http-api/models"
	"moviesapi/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

type MovieService interface {
	ListAll(ctx context.Context) ([]dto.MovieDetails, error)
	ListByGenre(ctx context.Context, genreID int64) ([]dto.MovieDetails, error)
	GetByID(ctx context.Context, id int64) (*dto.MovieDetails, error)
	Create(ctx context.Context, form dto.MovieForm) (*models.Movie, error)
	Update(ctx context.Context, id int64, form dto.MovieForm) (*models.Movie, error)
	Delete(ctx context.Context, id int64) (*models.Movie, error)
}

type movieService struct {
	movies  repository.MovieRepository
	genres  repository.GenreRepository
	cache   cache.Store
	posters PosterPolicy
	log     *slog.Logger
}

func NewMovieService(movies repository.MovieRepository, genres repository.GenreRepository, store cache.Store, posters PosterPolicy, log *slog.Logger) MovieService {
	if store == nil {
		store = cache.Noop{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &movieService{
		movies:  movies,
		genres:  genres,
		cache:   store,
		posters: posters,
		log:     logging.WithComponent(log, "movie_service"),
	}
}

func (s *movieService) ListAll(ctx context.Context) ([]dto.MovieDetails, error) {
	return loadCached(ctx, s.cache, s.log, cache.MoviesScope, cache.MoviesKey, func() ([]dto.MovieDetails, error) {
		movies, err := s.movies.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		return toDetails(movies), nil
	})
}

func (s *movieService) ListByGenre(ctx context.Context, genreID int64) ([]dto.MovieDetails, error) {
	return loadCached(ctx, s.cache, s.log, cache.MoviesScope, cache.MoviesByGenreKey(genreID), func() ([]dto.MovieDetails, error) {
		movies, err := s.movies.GetByGenre(ctx, genreID)
		if err != nil {
			return nil, err
		}
		return toDetails(movies), nil
	})
}

func (s *movieService) GetByID(ctx context.Context, id int64) (*dto.MovieDetails, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	details := dto.MovieDetailsFromModel(*m)
	return &details, nil
}

// Create checks the poster before the genre, and reads the poster only once both pass.
func (s *movieService) Create(ctx context.Context, form dto.MovieForm) (*models.Movie, error) {
	poster, ok := form.Poster.Get()
	if !ok {
		return nil, ErrPosterRequired
	}
	if err := s.posters.check(poster); err != nil {
		return nil, err
	}
	if err := s.requireGenre(ctx, form.GenreID); err != nil {
		return nil, err
	}

	data, err := s.posters.read(poster)
	if err != nil {
		return nil, err
	}

	m := &models.Movie{Poster: data}
	form.ApplyTo(m)
	if err := s.movies.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrGenreReferenceMissing) {
			return nil, ErrInvalidGenre
		}
		return nil, err
	}

	logging.WithRequestID(ctx, s.log).Info("movie_created", "movie_id", m.ID, "genre_id", form.GenreID, "poster_bytes", len(data))
	invalidate(ctx, s.cache, s.log, cache.MoviesScope)
	return m, nil
}

// Update keeps the stored poster when the form carries none.
func (s *movieService) Update(ctx context.Context, id int64, form dto.MovieForm) (*models.Movie, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireGenre(ctx, form.GenreID); err != nil {
		return nil, err
	}

	if poster, ok := form.Poster.Get(); ok {
		if err := s.posters.check(poster); err != nil {
			return nil, err
		}
		data, err := s.posters.read(poster)
		if err != nil {
			return nil, err
		}
		m.Poster = data
	}

	form.ApplyTo(m)
	m.Genre = nil
	if err := s.movies.Update(ctx, m); err != nil {
		switch {
		case errors.Is(err, repository.ErrGenreReferenceMissing):
			return nil, ErrInvalidGenre
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	invalidate(ctx, s.cache, s.log, cache.MoviesScope)
	return m, nil
}

func (s *movieService) Delete(ctx context.Context, id int64) (*models.Movie, error) {
	m, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.movies.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}

	invalidate(ctx, s.cache, s.log, cache.MoviesScope)
	m.Genre = nil
	return m, nil
}

func (s *movieService) find(ctx context.Context, id int64) (*models.Movie, error) {
	m, err := s.movies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("get movie %d: %w", id, err)
	}
	return m, nil
}

func (s *movieService) requireGenre(ctx context.Context, genreID int64) error {
	if genreID <= 0 {
		return ErrInvalidGenre
	}
	ok, err := s.genres.Exists(ctx, genreID)
	if err != nil {
		return fmt.Errorf("check genre %d: %w", genreID, err)
	}
	if !ok {
		return ErrInvalidGenre
	}
	return nil
}

func toDetails(movies []models.Movie) []dto.MovieDetails {
	out := make([]dto.MovieDetails, 0, len(movies))
	for _, m := range movies {
		out = append(out, dto.MovieDetailsFromModel(m))
	}
	return out
}
