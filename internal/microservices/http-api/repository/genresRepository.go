package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"moviesapi/internal/microservices/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DeletePolicy decides what happens to movies that reference a deleted genre.
type DeletePolicy string

const (
	DeleteDetach   DeletePolicy = "detach"
	DeleteRestrict DeletePolicy = "restrict"
	DeleteCascade  DeletePolicy = "cascade"
)

func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch p := DeletePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case DeleteDetach, DeleteRestrict, DeleteCascade:
		return p, nil
	case "":
		return DeleteDetach, nil
	default:
		return "", fmt.Errorf("unknown genre delete policy %q", s)
	}
}

type GenreRepository interface {
	GetAll(ctx context.Context) ([]models.Genre, error)
	GetByID(ctx context.Context, id int64) (*models.Genre, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, g *models.Genre) error
	Update(ctx context.Context, g *models.Genre) error
	Delete(ctx context.Context, id int64, policy DeletePolicy) error
}

type GenreRepo struct {
	db *gorm.DB
}

func NewGenreRepo(db *gorm.DB) *GenreRepo {
	return &GenreRepo{db: db}
}

func (r *GenreRepo) GetAll(ctx context.Context) ([]models.Genre, error) {
	list := make([]models.Genre, 0)
	if err := r.db.WithContext(ctx).Order("name asc").Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}
	return list, nil
}

func (r *GenreRepo) GetByID(ctx context.Context, id int64) (*models.Genre, error) {
	var g models.Genre
	if err := r.db.WithContext(ctx).First(&g, id).Error; err != nil {
		return nil, fmt.Errorf("get genre %d: %w", id, err)
	}
	return &g, nil
}

func (r *GenreRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Genre{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check genre %d: %w", id, err)
	}
	return count > 0, nil
}

func (r *GenreRepo) Create(ctx context.Context, g *models.Genre) error {
	if err := r.db.WithContext(ctx).Create(g).Error; err != nil {
		return fmt.Errorf("create genre: %w", err)
	}
	return nil
}

func (r *GenreRepo) Update(ctx context.Context, g *models.Genre) error {
	res := r.db.WithContext(ctx).Model(&models.Genre{ID: g.ID}).Update("name", g.Name)
	if res.Error != nil {
		return fmt.Errorf("update genre: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update genre: %w", gorm.ErrRecordNotFound)
	}
	return nil
}

// Delete removes the genre and applies policy to referencing movies in one transaction.
// The genre row is locked first so concurrent movie writes that share-lock it wait for us.
func (r *GenreRepo) Delete(ctx context.Context, id int64, policy DeletePolicy) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var g models.Genre
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&g, id).Error; err != nil {
			return fmt.Errorf("delete genre: %w", err)
		}

		var refs int64
		if err := tx.Model(&models.Movie{}).Where("genre_id = ?", id).Count(&refs).Error; err != nil {
			return fmt.Errorf("count movies of genre: %w", err)
		}

		if refs > 0 {
			switch policy {
			case DeleteRestrict:
				return ErrGenreReferenced
			case DeleteCascade:
				if err := tx.Where("genre_id = ?", id).Delete(&models.Movie{}).Error; err != nil {
					return fmt.Errorf("delete movies of genre: %w", err)
				}
			default:
				if err := tx.Model(&models.Movie{}).Where("genre_id = ?", id).Update("genre_id", nil).Error; err != nil {
					return fmt.Errorf("detach movies from genre: %w", err)
				}
			}
		}

		res := tx.Delete(&models.Genre{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete genre: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("delete genre: %w", gorm.ErrRecordNotFound)
		}
		return nil
	})
}

// shareLockGenre fails with ErrGenreReferenceMissing unless the genre exists, and holds
// a share lock on it until tx ends.
func shareLockGenre(tx *gorm.DB, id *int64) error {
	if id == nil {
		return nil
	}
	var g models.Genre
	err := tx.Clauses(clause.Locking{Strength: "SHARE"}).Select("id").First(&g, *id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrGenreReferenceMissing
	}
	if err != nil {
		return fmt.Errorf("lock genre %d: %w", *id, err)
	}
	return nil
}
