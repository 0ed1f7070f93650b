package handler

import (
	"net/http"

	"marketplace/internal/delivery/http/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves categories, products and recent searches.
type CatalogHandler struct {
	categories usecase.CategoryUsecase
	products   usecase.ProductUsecase
	searches   usecase.SearchHistoryUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(
	categories usecase.CategoryUsecase,
	products usecase.ProductUsecase,
	searches usecase.SearchHistoryUsecase,
) *CatalogHandler {
	return &CatalogHandler{
		categories: categories,
		products:   products,
		searches:   searches,
	}
}

type searchRequest struct {
	Query string `json:"query" validate:"required,max=200"`
}

// Categories returns the taxonomy tree.
func (h *CatalogHandler) Categories(c echo.Context) error {
	taxonomy, err := h.categories.Load(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, taxonomy)
}

// SearchProducts runs a catalog search; a non-empty q is recorded as a recent search.
func (h *CatalogHandler) SearchProducts(c echo.Context) error {
	page, limit := pageParams(c)

	products, err := h.products.Search(c.Request().Context(), c.QueryParam("q"), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, products, nil)
}

// GetProduct returns one product.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	product, err := h.products.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, product)
}

// RecentSearches lists recent searches, most recent first.
func (h *CatalogHandler) RecentSearches(c echo.Context) error {
	searches, err := h.searches.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, searches, nil)
}

// AddSearch records a query.
func (h *CatalogHandler) AddSearch(c echo.Context) error {
	var input searchRequest
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	searches, err := h.searches.Add(c.Request().Context(), input.Query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, searches, nil)
}

// RemoveSearch forgets one query, matched case-insensitively.
func (h *CatalogHandler) RemoveSearch(c echo.Context) error {
	searches, err := h.searches.Remove(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.List(c, searches, nil)
}

// ClearSearches forgets every query.
func (h *CatalogHandler) ClearSearches(c echo.Context) error {
	if err := h.searches.Clear(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Recent searches cleared")
}
