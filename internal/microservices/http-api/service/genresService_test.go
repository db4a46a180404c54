package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"moviesapi/internal/microservices/http-api/cache"
	"moviesapi/internal/microservices/http-api/models"
	"moviesapi/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGenreService_ListAll(t *testing.T) {
	repo := new(MockGenreRepository)
	svc := NewGenreService(repo, cache.Noop{}, repository.DeleteDetach, nil)

	repo.On("GetAll", mock.Anything).Return([]models.Genre{{ID: 2, Name: "Action"}, {ID: 1, Name: "Drama"}}, nil)

	list, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "Action", list[0].Name)
	repo.AssertExpectations(t)
}

func TestGenreService_ListAll_CacheHit(t *testing.T) {
	repo := new(MockGenreRepository)
	store := new(MockCache)
	svc := NewGenreService(repo, store, repository.DeleteDetach, nil)

	store.On("Generation", mock.Anything, cache.GenresScope).Return(int64(4), nil)
	store.On("GetJSON", mock.Anything, cache.Versioned(cache.GenresKey, 4), mock.Anything).
		Run(func(args mock.Arguments) {
			dst := args.Get(2).(*[]models.Genre)
			*dst = []models.Genre{{ID: 9, Name: "Cached"}}
		}).
		Return(true, nil)

	list, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Cached", list[0].Name)
	repo.AssertNotCalled(t, "GetAll", mock.Anything)
}

func TestGenreService_ListAll_CacheFailureFallsBack(t *testing.T) {
	repo := new(MockGenreRepository)
	store := new(MockCache)
	svc := NewGenreService(repo, store, repository.DeleteDetach, nil)

	store.On("Generation", mock.Anything, cache.GenresScope).Return(int64(0), nil)
	store.On("GetJSON", mock.Anything, cache.Versioned(cache.GenresKey, 0), mock.Anything).Return(false, errors.New("redis down"))
	store.On("SetJSON", mock.Anything, cache.Versioned(cache.GenresKey, 0), mock.Anything).Return(errors.New("redis down"))
	repo.On("GetAll", mock.Anything).Return([]models.Genre{{ID: 1, Name: "Drama"}}, nil)

	list, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
	store.AssertExpectations(t)
}

func TestGenreService_ListAll_GenerationUnavailable(t *testing.T) {
	repo := new(MockGenreRepository)
	store := new(MockCache)
	svc := NewGenreService(repo, store, repository.DeleteDetach, nil)

	store.On("Generation", mock.Anything, cache.GenresScope).Return(int64(0), errors.New("redis down"))
	repo.On("GetAll", mock.Anything).Return([]models.Genre{{ID: 1, Name: "Drama"}}, nil)

	list, err := svc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
	store.AssertNotCalled(t, "GetJSON", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "SetJSON", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenreService_Create(t *testing.T) {
	repo := new(MockGenreRepository)
	store := new(MockCache)
	svc := NewGenreService(repo, store, repository.DeleteDetach, nil)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Genre")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Genre).ID = 5
		}).
		Return(nil)
	store.On("Bump", mock.Anything, []string{cache.GenresScope}).Return(nil)

	g, err := svc.Create(context.Background(), "Sci-Fi")
	require.NoError(t, err)
	assert.Equal(t, int64(5), g.ID)
	assert.Equal(t, "Sci-Fi", g.Name)
	store.AssertExpectations(t)
}

func TestGenreService_Update(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockGenreRepository)
		svc := NewGenreService(repo, cache.Noop{}, repository.DeleteDetach, nil)

		repo.On("GetByID", mock.Anything, int64(1)).Return(&models.Genre{ID: 1, Name: "Old"}, nil)
		repo.On("Update", mock.Anything, &models.Genre{ID: 1, Name: "New"}).Return(nil)

		g, err := svc.Update(context.Background(), 1, "New")
		require.NoError(t, err)
		assert.Equal(t, "New", g.Name)
		repo.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockGenreRepository)
		svc := NewGenreService(repo, cache.Noop{}, repository.DeleteDetach, nil)

		repo.On("GetByID", mock.Anything, int64(999)).Return(nil, fmt.Errorf("get genre 999: %w", gorm.ErrRecordNotFound))

		_, err := svc.Update(context.Background(), 999, "X")
		assert.ErrorIs(t, err, ErrGenreNotFound)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		repo := new(MockGenreRepository)
		svc := NewGenreService(repo, cache.Noop{}, repository.DeleteDetach, nil)

		repo.On("GetByID", mock.Anything, int64(1)).Return(nil, errors.New("connection refused"))

		_, err := svc.Update(context.Background(), 1, "X")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrGenreNotFound)
	})
}

func TestGenreService_Delete(t *testing.T) {
	t.Run("ReturnsPriorState", func(t *testing.T) {
		repo := new(MockGenreRepository)
		store := new(MockCache)
		svc := NewGenreService(repo, store, repository.DeleteDetach, nil)

		repo.On("GetByID", mock.Anything, int64(3)).Return(&models.Genre{ID: 3, Name: "Horror"}, nil)
		repo.On("Delete", mock.Anything, int64(3), repository.DeleteDetach).Return(nil)
		store.On("Bump", mock.Anything, []string{cache.GenresScope, cache.MoviesScope}).Return(nil)

		g, err := svc.Delete(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "Horror", g.Name)
		repo.AssertExpectations(t)
		store.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockGenreRepository)
		svc := NewGenreService(repo, cache.Noop{}, repository.DeleteDetach, nil)

		repo.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Delete(context.Background(), 42)
		assert.ErrorIs(t, err, ErrGenreNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RestrictPolicyInUse", func(t *testing.T) {
		repo := new(MockGenreRepository)
		svc := NewGenreService(repo, cache.Noop{}, repository.DeleteRestrict, nil)

		repo.On("GetByID", mock.Anything, int64(1)).Return(&models.Genre{ID: 1, Name: "Action"}, nil)
		repo.On("Delete", mock.Anything, int64(1), repository.DeleteRestrict).Return(repository.ErrGenreReferenced)

		_, err := svc.Delete(context.Background(), 1)
		assert.ErrorIs(t, err, ErrGenreInUse)
	})

	t.Run("DeletedConcurrently", func(t *testing.T) {
		repo := new(MockGenreRepository)
		svc := NewGenreService(repo, cache.Noop{}, "", nil)

		repo.On("GetByID", mock.Anything, int64(1)).Return(&models.Genre{ID: 1, Name: "Action"}, nil)
		repo.On("Delete", mock.Anything, int64(1), repository.DeleteDetach).
			Return(fmt.Errorf("delete genre: %w", gorm.ErrRecordNotFound))

		_, err := svc.Delete(context.Background(), 1)
		assert.ErrorIs(t, err, ErrGenreNotFound)
	})
}
