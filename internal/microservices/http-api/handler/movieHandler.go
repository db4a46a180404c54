package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"moviesapi/internal/microservices/http-api/dto"
	"moviesapi/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	svc service.MovieService
}

func NewMovieHandler(svc service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

// RegisterRoutes mounts the handlers on /api/movies.
func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/GetByGenreId", h.ListByGenre)
	rg.GET("/:id", h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *MovieHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	list, err := h.svc.ListAll(ctx)
	if err != nil {
		writeServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListByGenre handles GET /api/movies/GetByGenreId?genreid=N. A missing or
// non-positive id matches no genre and answers an empty list.
func (h *MovieHandler) ListByGenre(c *gin.Context) {
	var genreID int64
	if raw := c.Query("genreid"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.String(http.StatusBadRequest, "Invalid genere ID!")
			return
		}
		genreID = parsed
	}
	if genreID <= 0 {
		c.JSON(http.StatusOK, []dto.MovieDetails{})
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	list, err := h.svc.ListByGenre(ctx, genreID)
	if err != nil {
		writeServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *MovieHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	m, err := h.svc.GetByID(ctx, id)
	if err != nil {
		writeServiceError(c, err, movieNotFound(id))
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MovieHandler) Create(c *gin.Context) {
	form, ok := bindMovieForm(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	m, err := h.svc.Create(ctx, form)
	if err != nil {
		writeServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.MovieFromModel(*m))
}

func (h *MovieHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	form, ok := bindMovieForm(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	m, err := h.svc.Update(ctx, id, form)
	if err != nil {
		writeServiceError(c, err, movieNotFound(id))
		return
	}
	c.JSON(http.StatusOK, dto.MovieFromModel(*m))
}

func (h *MovieHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	m, err := h.svc.Delete(ctx, id)
	if err != nil {
		writeServiceError(c, err, fmt.Sprintf("no movie was found with id: %d", id))
		return
	}
	c.JSON(http.StatusOK, dto.MovieFromModel(*m))
}

// bindMovieForm binds the text fields and picks up the optional "poster" file part.
func bindMovieForm(c *gin.Context) (dto.MovieForm, bool) {
	var form dto.MovieForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, bindErrorMessage(err))
		return form, false
	}
	if msg := form.Validate(); msg != "" {
		c.String(http.StatusBadRequest, msg)
		return form, false
	}

	fh, err := c.FormFile("poster")
	switch {
	case err == nil:
		form.Poster = dto.PosterOf(dto.PosterFromFileHeader(fh))
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		form.Poster = dto.NoPoster()
	default:
		c.String(http.StatusBadRequest, "Invalid multipart form")
		return form, false
	}
	return form, true
}

func movieNotFound(id int64) string {
	return fmt.Sprintf("No movie was found with ID %d", id)
}
