package dto

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"moviesapi/internal/microservices/http-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"PlainText", "Inception", false},
		{"LessThan", "a < b", false},
		{"GreaterThan", "5 > 3 reasons", false},
		{"Heart", "I <3 movies", false},
		{"Ampersand", "Tom & Jerry", false},
		{"Apostrophe", "Schindler's List", false},
		{"EscapedTag", "&lt;b&gt;", false},
		{"Padded", "  padded  ", false},
		{"CRLF", "a < b\r\nsecond line", false},
		{"Bold", "<b>Inception</b>", true},
		{"BareTag", "x<y>z", true},
		{"Script", `<img src=x onerror="alert(1)">Up`, true},
		{"Comment", "Heat<!-- hidden -->", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsMarkup(tt.in))
		})
	}
}

func TestMovieForm_Validate(t *testing.T) {
	tests := []struct {
		name string
		form MovieForm
		want string
	}{
		{"Valid", MovieForm{Title: "a < b", StoryLine: "I <3 it"}, ""},
		{"BlankTitle", MovieForm{Title: "  "}, "Title is required!"},
		{"MarkupTitle", MovieForm{Title: "<i>Heat</i>"}, "Title must not contain markup!"},
		{"MarkupStoryLine", MovieForm{Title: "Heat", StoryLine: "<p>A heist.</p>"}, "StoryLine must not contain markup!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.form.Validate())
		})
	}

	assert.Equal(t, "", ValidateGenreName(" Sci-Fi "))
	assert.Equal(t, "Name is required!", ValidateGenreName(""))
	assert.Equal(t, "Name must not contain markup!", ValidateGenreName("<b>Drama</b>"))
}

func TestMovieForm_ApplyKeepsText(t *testing.T) {
	form := MovieForm{
		Title:     " a < b ",
		Year:      1995,
		Rate:      8.3,
		StoryLine: "5 > 3 & more",
		GenreID:   4,
	}
	require.Empty(t, form.Validate())

	m := models.Movie{ID: 3, Poster: []byte{1}}
	form.ApplyTo(&m)

	assert.Equal(t, int64(3), m.ID)
	assert.Equal(t, " a < b ", m.Title)
	assert.Equal(t, "5 > 3 & more", m.StoryLine)
	assert.Equal(t, 1995, m.Year)
	assert.Equal(t, 8.3, m.Rate)
	require.NotNil(t, m.GenreID)
	assert.Equal(t, int64(4), *m.GenreID)
	assert.Equal(t, []byte{1}, m.Poster)
}

func TestOptionalPoster(t *testing.T) {
	none := NoPoster()
	_, ok := none.Get()
	assert.False(t, ok)
	assert.False(t, none.Present())

	var zero OptionalPoster
	assert.False(t, zero.Present())

	some := PosterOf(Poster{Filename: "a.png", Size: 3})
	p, ok := some.Get()
	assert.True(t, ok)
	assert.True(t, some.Present())
	assert.Equal(t, "a.png", p.Filename)
	assert.Equal(t, int64(3), p.Size)
}

func TestPosterFromFileHeader(t *testing.T) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("poster", "cover.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpegdata"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	fh := req.MultipartForm.File["poster"][0]
	p := PosterFromFileHeader(fh)
	assert.Equal(t, "cover.jpg", p.Filename)
	assert.Equal(t, int64(8), p.Size)

	rc, err := p.Open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "jpegdata", string(data))
}

func TestConverters(t *testing.T) {
	genreID := int64(2)
	m := models.Movie{
		ID: 1, Title: "Alien", Year: 1979, Rate: 8.5, StoryLine: "In space.",
		Poster: []byte{1, 2}, GenreID: &genreID, Genre: &models.Genre{ID: 2, Name: "Horror"},
	}

	details := MovieDetailsFromModel(m)
	require.NotNil(t, details.GenreName)
	assert.Equal(t, "Horror", *details.GenreName)
	assert.Equal(t, &genreID, details.GenreID)

	resp := MovieFromModel(m)
	assert.Equal(t, "Alien", resp.Title)
	assert.Equal(t, []byte{1, 2}, resp.Poster)

	m.Genre, m.GenreID = nil, nil
	assert.Nil(t, MovieDetailsFromModel(m).GenreName)

	assert.Equal(t, GenreResponse{ID: 2, Name: "Horror"}, GenreFromModel(models.Genre{ID: 2, Name: "Horror"}))
}
