package handler

import (
	"inventario/internal/model"
)

type CreateAuthorRequest struct {
	Name      string `json:"name"`
	Biography string `json:"biography" binding:"omitempty,max=2000"`
}

type CreateAuthorResponse struct {
	Message string           `json:"message"`
	Autor   model.AuthorView `json:"autor"`
}
