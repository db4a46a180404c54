package handler

import (
	"context"
	"fmt"
	"net/http"

	"moviesapi/internal/microservices/http-api/dto"
	"moviesapi/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type GenreHandler struct {
	svc service.GenreService
}

func NewGenreHandler(svc service.GenreService) *GenreHandler {
	return &GenreHandler{svc: svc}
}

// RegisterRoutes mounts the handlers on /api/genres.
func (h *GenreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *GenreHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	list, err := h.svc.ListAll(ctx)
	if err != nil {
		writeServiceError(c, err, "")
		return
	}
	resp := make([]dto.GenreResponse, 0, len(list))
	for _, g := range list {
		resp = append(resp, dto.GenreFromModel(g))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GenreHandler) Create(c *gin.Context) {
	name, ok := bindGenreName(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	g, err := h.svc.Create(ctx, name)
	if err != nil {
		writeServiceError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dto.GenreFromModel(*g))
}

func (h *GenreHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	name, ok := bindGenreName(c)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	g, err := h.svc.Update(ctx, id, name)
	if err != nil {
		writeServiceError(c, err, genreNotFound(id))
		return
	}
	c.JSON(http.StatusOK, dto.GenreFromModel(*g))
}

func (h *GenreHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	g, err := h.svc.Delete(ctx, id)
	if err != nil {
		writeServiceError(c, err, genreNotFound(id))
		return
	}
	c.JSON(http.StatusOK, dto.GenreFromModel(*g))
}

func bindGenreName(c *gin.Context) (string, bool) {
	var in dto.CreateGenreDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.String(http.StatusBadRequest, bindErrorMessage(err))
		return "", false
	}
	if msg := dto.ValidateGenreName(in.Name); msg != "" {
		c.String(http.StatusBadRequest, msg)
		return "", false
	}
	return in.Name, true
}

func genreNotFound(id int64) string {
	return fmt.Sprintf("No genre was found with iD: %d", id)
}
