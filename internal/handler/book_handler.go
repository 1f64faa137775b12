package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bookstack/internal/auth"
	"bookstack/internal/pagination"
	"bookstack/internal/repository"
	"bookstack/internal/response"
	"bookstack/internal/service"
)

// BookHandler handles book catalog endpoints.
type BookHandler struct {
	bookService service.BookService
}

// NewBookHandler creates a new book handler.
func NewBookHandler(bookService service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// CreateBookRequest represents a book creation request.
type CreateBookRequest struct {
	Title           string `json:"title" validate:"required"`
	Author          string `json:"author" validate:"required"`
	Genre           string `json:"genre" validate:"required"`
	PublicationDate string `json:"publication_date" validate:"required"`
}

// UpdateBookRequest represents a partial book update.
type UpdateBookRequest struct {
	Title           *string `json:"title"`
	Author          *string `json:"author"`
	Genre           *string `json:"genre"`
	PublicationDate *string `json:"publication_date"`
}

// Create godoc
// @Summary Add a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBookRequest true "Book data"
// @Success 201 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /books [post]
func (h *BookHandler) Create(c echo.Context) error {
	var req CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "you are not authorized")
	}
	creatorID, err := claims.Subject()
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "you are not authorized")
	}

	book, err := h.bookService.Create(c.Request().Context(), service.CreateBookInput{
		Title:           req.Title,
		Author:          req.Author,
		Genre:           req.Genre,
		PublicationDate: req.PublicationDate,
	}, creatorID)
	if err != nil {
		return response.Fail(c, err)
	}

	return response.OK(c, http.StatusCreated, "Book added successfully!", book)
}

// List godoc
// @Summary List books with search, filters and pagination
// @Tags books
// @Produce json
// @Param searchTerm query string false "Case-insensitive substring match over title, author and genre"
// @Param title query string false "Exact title filter"
// @Param author query string false "Exact author filter"
// @Param genre query string false "Exact genre filter"
// @Param publicationDate query string false "Exact publication date filter"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param sortBy query string false "Sort column"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} response.Envelope
// @Router /books [get]
func (h *BookHandler) List(c echo.Context) error {
	filter := repository.BookFilter{
		SearchTerm:      c.QueryParam("searchTerm"),
		Title:           c.QueryParam("title"),
		Author:          c.QueryParam("author"),
		Genre:           c.QueryParam("genre"),
		PublicationDate: c.QueryParam("publicationDate"),
	}
	opts := pagination.FromQuery(
		c.QueryParam("page"),
		c.QueryParam("limit"),
		c.QueryParam("sortBy"),
		c.QueryParam("sortOrder"),
	)

	books, meta, err := h.bookService.List(c.Request().Context(), filter, opts)
	if err != nil {
		return response.Fail(c, err)
	}

	return response.Page(c, "Books retrieved successfully!", books, meta)
}

// Get godoc
// @Summary Fetch a book by id
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid book id")
	}

	book, err := h.bookService.Get(c.Request().Context(), id)
	if err != nil {
		return response.Fail(c, err)
	}

	return response.OK(c, http.StatusOK, "Book retrieved successfully!", book)
}

// Update godoc
// @Summary Update a book (owner only)
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Param request body UpdateBookRequest true "Fields to update"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /books/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid book id")
	}

	var req UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	requesterID, err := requesterID(c)
	if err != nil {
		return err
	}

	book, err := h.bookService.Update(c.Request().Context(), id, requesterID, service.UpdateBookInput{
		Title:           req.Title,
		Author:          req.Author,
		Genre:           req.Genre,
		PublicationDate: req.PublicationDate,
	})
	if err != nil {
		return response.Fail(c, err)
	}

	return response.OK(c, http.StatusOK, "Book updated successfully!", book)
}

// Delete godoc
// @Summary Delete a book (owner only)
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book ID"
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /books/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid book id")
	}

	requesterID, err := requesterID(c)
	if err != nil {
		return err
	}

	book, err := h.bookService.Delete(c.Request().Context(), id, requesterID)
	if err != nil {
		return response.Fail(c, err)
	}

	return response.OK(c, http.StatusOK, "Book deleted successfully!", book)
}

// requesterID resolves the authenticated subject id from the JWT gate.
func requesterID(c echo.Context) (uuid.UUID, error) {
	claims, ok := auth.ClaimsFrom(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "you are not authorized")
	}
	id, err := claims.Subject()
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "you are not authorized")
	}
	return id, nil
}
