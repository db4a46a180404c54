package dto

import "moviesapi/internal/microservices/http-api/models"

// CreateGenreDTO for POST /api/genres and PUT /api/genres/:id
type CreateGenreDTO struct {
	Name string `json:"name" binding:"required,max=100"`
}

type GenreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func GenreFromModel(g models.Genre) GenreResponse {
	return GenreResponse{
		ID:   g.ID,
		Name: g.Name,
	}
}
