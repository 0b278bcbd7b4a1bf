package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventario/internal/model"
	"inventario/internal/repository"
	"inventario/internal/validation"
)

type AuthorHandler struct {
	repo repository.AuthorRepository
}

func NewAuthorHandler(repo repository.AuthorRepository) *AuthorHandler {
	return &AuthorHandler{repo: repo}
}

func (h *AuthorHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/autor", h.CreateAuthor)
}

// CreateAuthor godoc
// @Summary      Create an author
// @Description  Create a new author with name and optional biography
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateAuthorRequest        true  "Author to create"
// @Success      200      {object}  CreateAuthorResponse
// @Failure      400      {object}  validation.ErrorResponse   "Missing name"
// @Failure      503      {object}  validation.ErrorResponse   "Store unavailable"
// @Router       /autor [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req CreateAuthorRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if req.Name == "" {
		writeError(c, http.StatusBadRequest, "El nombre es un campo necesario.")
		return
	}

	author := model.Author{
		Name:      req.Name,
		Biography: req.Biography,
	}

	if err := h.repo.Create(c.Request.Context(), &author); err != nil {
		writeStoreError(c)
		return
	}

	c.JSON(http.StatusOK, CreateAuthorResponse{
		Message: "Autor creado exitosamente.",
		Autor:   author.View(),
	})
}
