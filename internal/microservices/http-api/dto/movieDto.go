package dto

import "moviesapi/internal/microservices/http-api/models"

// MovieForm is the multipart body of POST /api/movies and PUT /api/movies/:id.
// Poster is filled by the handler from the "poster" file part.
type MovieForm struct {
	Title     string         `form:"title" binding:"required,max=250"`
	Year      int            `form:"year"`
	Rate      float64        `form:"rate"`
	StoryLine string         `form:"storyLine" binding:"max=2500"`
	GenreID   int64          `form:"genreId"`
	Poster    OptionalPoster `form:"-"`
}

// ApplyTo overwrites every editable column except the poster.
func (f MovieForm) ApplyTo(m *models.Movie) {
	genreID := f.GenreID
	m.Title = f.Title
	m.GenreID = &genreID
	m.Year = f.Year
	m.StoryLine = f.StoryLine
	m.Rate = f.Rate
}

// MovieResponse is the stored movie as returned by create, update and delete.
type MovieResponse struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Rate      float64 `json:"rate"`
	StoryLine string  `json:"storyLine"`
	Poster    []byte  `json:"poster"`
	GenreID   *int64  `json:"genreId"`
}

// MovieDetails is the read projection: movie columns plus the referenced genre's name.
type MovieDetails struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Rate      float64 `json:"rate"`
	StoryLine string  `json:"storyLine"`
	Poster    []byte  `json:"poster"`
	GenreID   *int64  `json:"genreId"`
	GenreName *string `json:"genreName,omitempty"`
}

// Converters
func MovieFromModel(m models.Movie) MovieResponse {
	return MovieResponse{
		ID:        m.ID,
		Title:     m.Title,
		Year:      m.Year,
		Rate:      m.Rate,
		StoryLine: m.StoryLine,
		Poster:    m.Poster,
		GenreID:   m.GenreID,
	}
}

func MovieDetailsFromModel(m models.Movie) MovieDetails {
	return MovieDetails{
		ID:        m.ID,
		Title:     m.Title,
		Year:      m.Year,
		Rate:      m.Rate,
		StoryLine: m.StoryLine,
		Poster:    m.Poster,
		GenreID:   m.GenreID,
		GenreName: m.GenreName(),
	}
}
