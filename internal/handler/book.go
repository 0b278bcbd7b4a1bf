package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inventario/internal/model"
	"inventario/internal/repository"
	"inventario/internal/resolver"
	"inventario/internal/validation"
)

type BookHandler struct {
	repo     repository.BookRepository
	resolver *resolver.Resolver
}

func NewBookHandler(repo repository.BookRepository, res *resolver.Resolver) *BookHandler {
	return &BookHandler{repo: repo, resolver: res}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/libros", h.ListBooks)
	r.GET("/libro", h.GetBook)
	r.POST("/libro", h.CreateBook)
	r.PUT("/libro", h.UpdateBook)
	r.DELETE("/libro", h.DeleteBook)
}

// ListBooks godoc
// @Summary      List books
// @Description  Get all books, optionally filtered by a case-insensitive title substring
// @Tags         books
// @Produce      json
// @Param        titulo  query     string  false  "Title substring"
// @Success      200     {array}   model.BookView
// @Failure      404     {object}  validation.ErrorResponse   "No books found"
// @Failure      503     {object}  validation.ErrorResponse   "Store unavailable"
// @Router       /libros [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	ctx := c.Request.Context()

	books, err := h.repo.List(ctx, c.Query("titulo"))
	if err != nil {
		writeStoreError(c)
		return
	}

	if len(books) == 0 {
		writeError(c, http.StatusNotFound, "No se han encontrado libros con este titulo.")
		return
	}

	views, err := h.resolver.ProjectBooks(ctx, books)
	if err != nil {
		writeStoreError(c)
		return
	}

	c.JSON(http.StatusOK, views)
}

// GetBook godoc
// @Summary      Get a book
// @Description  Get a single book by id, with its authors expanded
// @Tags         books
// @Produce      json
// @Param        id   query     string  true  "Book id"
// @Success      200  {object}  model.BookView
// @Failure      400  {object}  validation.ErrorResponse   "Missing or malformed id"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      503  {object}  validation.ErrorResponse   "Store unavailable"
// @Router       /libro [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		writeError(c, http.StatusBadRequest, "Proporciona un id")
		return
	}

	id, err := model.ParseID(raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, "El id proporcionado no es válido")
		return
	}

	ctx := c.Request.Context()

	book, err := h.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusNotFound, "No se ha encontrado el libro")
			return
		}
		writeStoreError(c)
		return
	}

	view, err := h.resolver.ProjectBook(ctx, *book)
	if err != nil {
		writeStoreError(c)
		return
	}

	c.JSON(http.StatusOK, view)
}

// CreateBook godoc
// @Summary      Create a book
// @Description  Create a new book; every referenced author must exist
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBookRequest          true  "Book to create"
// @Success      200      {object}  BookMessageResponse
// @Failure      400      {object}  validation.ErrorResponse   "Missing fields or unknown author"
// @Failure      503      {object}  validation.ErrorResponse   "Store unavailable"
// @Router       /libro [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if req.Title == "" || req.Authors == nil {
		writeError(c, http.StatusBadRequest, "Los campos de libro y autores son campos necesarios.")
		return
	}

	authorIDs, err := model.ParseIDs(req.Authors)
	if err != nil {
		writeError(c, http.StatusBadRequest, "Alguno de los autores no existe.")
		return
	}

	ctx := c.Request.Context()

	// Existence check immediately before the insert. An author removed
	// between the two calls would leave a dangling reference; the read
	// path tolerates that.
	ok, err := h.resolver.VerifyAuthorsExist(ctx, authorIDs)
	if err != nil {
		writeStoreError(c)
		return
	}
	if !ok {
		writeError(c, http.StatusBadRequest, "Alguno de los autores no existe.")
		return
	}

	book := model.Book{
		Title:        req.Title,
		Authors:      authorIDs,
		NumsOfCopies: req.NumsOfCopies,
	}

	if err := h.repo.Create(ctx, &book); err != nil {
		writeStoreError(c)
		return
	}

	view, err := h.resolver.ProjectBook(ctx, book)
	if err != nil {
		writeStoreError(c)
		return
	}

	c.JSON(http.StatusOK, BookMessageResponse{
		Message: "Libro creado exitosamente",
		Libro:   view,
	})
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Replace a book's fields; numsOfCopies resets to 0 when not resent
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      UpdateBookRequest          true  "Fields to store"
// @Success      200      {object}  BookMessageResponse
// @Failure      400      {object}  validation.ErrorResponse   "Missing id or unknown author"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      503      {object}  validation.ErrorResponse   "Store unavailable"
// @Router       /libro [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req UpdateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	if req.ID == "" {
		writeError(c, http.StatusBadRequest, "Proporciona un id")
		return
	}

	id, err := model.ParseID(req.ID)
	if err != nil {
		writeError(c, http.StatusBadRequest, "El id proporcionado no es válido")
		return
	}

	ctx := c.Request.Context()

	book, err := h.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusNotFound, "El libro no se ha encontrado")
			return
		}
		writeStoreError(c)
		return
	}

	if req.Title != nil {
		book.Title = *req.Title
	}

	if req.Authors != nil {
		authorIDs, err := model.ParseIDs(req.Authors)
		if err != nil {
			writeError(c, http.StatusBadRequest, "Alguno de los autores no existe")
			return
		}

		ok, err := h.resolver.VerifyAuthorsExist(ctx, authorIDs)
		if err != nil {
			writeStoreError(c)
			return
		}
		if !ok {
			writeError(c, http.StatusBadRequest, "Alguno de los autores no existe")
			return
		}

		book.Authors = authorIDs
	}

	// Wholesale replacement: an absent numsOfCopies stores 0, it does
	// not keep the previous count.
	book.NumsOfCopies = req.NumsOfCopies

	if err := h.repo.Update(ctx, book); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusNotFound, "El libro no se ha encontrado")
			return
		}
		writeStoreError(c)
		return
	}

	view, err := h.resolver.ProjectBook(ctx, *book)
	if err != nil {
		writeStoreError(c)
		return
	}

	c.JSON(http.StatusOK, BookMessageResponse{
		Message: "Libro actualizado correctamente",
		Libro:   view,
	})
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a book by id
// @Tags         books
// @Produce      json
// @Param        id   query     string  true  "Book id"
// @Success      200  {string}  string  "Deleted"
// @Failure      400  {object}  validation.ErrorResponse   "Missing or malformed id"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      503  {object}  validation.ErrorResponse   "Store unavailable"
// @Router       /libro [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		writeError(c, http.StatusBadRequest, "Proporciona un id")
		return
	}

	id, err := model.ParseID(raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, "El id proporcionado no es válido")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(c, http.StatusNotFound, "Libro no encontrado")
			return
		}
		writeStoreError(c)
		return
	}

	c.JSON(http.StatusOK, "Libro eliminado exitosamente")
}
