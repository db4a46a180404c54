package service

import "errors"

var (
	ErrGenreNotFound = errors.New("genre not found")
	ErrMovieNotFound = errors.New("movie not found")
	ErrGenreInUse    = errors.New("genre is still referenced by movies")
)

// ValidationError is input the caller can fix. Message is safe to show to clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrPosterRequired = &ValidationError{Message: "Poster is required!"}
	ErrPosterEmpty    = &ValidationError{Message: "Poster file is empty!"}
	ErrInvalidGenre   = &ValidationError{Message: "Invalid genere ID!"}
)
