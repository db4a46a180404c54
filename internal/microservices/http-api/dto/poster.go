package dto

import (
	"io"
	"mime/multipart"
)

// Poster is an uploaded image that has not been read yet.
type Poster struct {
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

// OptionalPoster tells an omitted poster apart from a supplied one.
// The zero value is "omitted".
type OptionalPoster struct {
	poster *Poster
}

func NoPoster() OptionalPoster {
	return OptionalPoster{}
}

func PosterOf(p Poster) OptionalPoster {
	return OptionalPoster{poster: &p}
}

func (o OptionalPoster) Get() (Poster, bool) {
	if o.poster == nil {
		return Poster{}, false
	}
	return *o.poster, true
}

func (o OptionalPoster) Present() bool {
	return o.poster != nil
}

// PosterFromFileHeader wraps a multipart file part without opening it.
func PosterFromFileHeader(fh *multipart.FileHeader) Poster {
	return Poster{
		Filename: fh.Filename,
		Size:     fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
