package repository

import (
	"context"
	"fmt"

	"moviesapi/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovieRepository interface {
	GetAll(ctx context.Context) ([]models.Movie, error)
	GetByGenre(ctx context.Context, genreID int64) ([]models.Movie, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	Create(ctx context.Context, m *models.Movie) error
	Update(ctx context.Context, m *models.Movie) error
	Delete(ctx context.Context, id int64) error
}

type MovieRepo struct {
	db *gorm.DB
}

func NewMovieRepo(db *gorm.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

func (r *MovieRepo) GetAll(ctx context.Context) ([]models.Movie, error) {
	list := make([]models.Movie, 0)
	if err := r.db.WithContext(ctx).
		Preload("Genre").
		Order("rate desc").
		Order("id asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get movies: %w", err)
	}
	return list, nil
}

func (r *MovieRepo) GetByGenre(ctx context.Context, genreID int64) ([]models.Movie, error) {
	list := make([]models.Movie, 0)
	if err := r.db.WithContext(ctx).
		Preload("Genre").
		Where("genre_id = ?", genreID).
		Order("rate desc").
		Order("id asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get movies by genre: %w", err)
	}
	return list, nil
}

func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).Preload("Genre").First(&m, id).Error; err != nil {
		return nil, fmt.Errorf("get movie %d: %w", id, err)
	}
	return &m, nil
}

// Create inserts m after re-checking its genre inside the same transaction.
func (r *MovieRepo) Create(ctx context.Context, m *models.Movie) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := shareLockGenre(tx, m.GenreID); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(m).Error; err != nil {
			return translateWriteError("create movie", err)
		}
		// GORM populates m.ID
		return nil
	})
}

// Update writes every editable column of m in one statement, guarded like Create.
func (r *MovieRepo) Update(ctx context.Context, m *models.Movie) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := shareLockGenre(tx, m.GenreID); err != nil {
			return err
		}
		res := tx.Model(&models.Movie{ID: m.ID}).
			Select("title", "year", "rate", "story_line", "poster", "genre_id").
			Updates(map[string]any{
				"title":      m.Title,
				"year":       m.Year,
				"rate":       m.Rate,
				"story_line": m.StoryLine,
				"poster":     m.Poster,
				"genre_id":   m.GenreID,
			})
		if res.Error != nil {
			return translateWriteError("update movie", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("update movie: %w", gorm.ErrRecordNotFound)
		}
		return nil
	})
}

func (r *MovieRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&models.Movie{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete movie: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete movie: %w", gorm.ErrRecordNotFound)
	}
	return nil
}
