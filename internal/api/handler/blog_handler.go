package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elevare/platform-api/internal/core/ports"
)

// BlogHandler serves the public blog.
type BlogHandler struct {
	articles ports.ArticleService
}

func NewBlogHandler(articles ports.ArticleService) *BlogHandler {
	return &BlogHandler{articles: articles}
}

// List handles GET /api/blog.
//
// @Summary      List all blog articles
// @Tags         blog
// @Produce      json
// @Success      200  {object}  envelope
// @Router       /api/blog [get]
func (h *BlogHandler) List(c echo.Context) error {
	articles, err := h.articles.ListArticles(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", echo.Map{"articles": articles})
}

// ListByCategory handles GET /api/blog/category/:category.
//
// @Summary      List blog articles by category
// @Tags         blog
// @Produce      json
// @Param        category  path      string  true  "Category label"
// @Success      200       {object}  envelope
// @Router       /api/blog/category/{category} [get]
func (h *BlogHandler) ListByCategory(c echo.Context) error {
	articles, err := h.articles.ListArticlesByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", echo.Map{"articles": articles})
}

// Search handles GET /api/blog/search/:query.
//
// @Summary      Search blog articles
// @Tags         blog
// @Produce      json
// @Param        query  path      string  true  "Search query"
// @Success      200    {object}  envelope
// @Failure      400    {object}  map[string]any
// @Router       /api/blog/search/{query} [get]
func (h *BlogHandler) Search(c echo.Context) error {
	query := c.Param("query")
	articles, err := h.articles.SearchArticles(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", echo.Map{"articles": articles, "query": query})
}

// Get handles GET /api/blog/:id.
//
// @Summary      Get a blog article by id
// @Tags         blog
// @Produce      json
// @Param        id   path      string  true  "Article id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  map[string]any
// @Router       /api/blog/{id} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	article, err := h.articles.GetArticle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", echo.Map{"article": article})
}
