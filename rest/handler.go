package rest

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"search-relevance/domain"
	"search-relevance/usecase"
)

// Handler exposes the search pipeline over HTTP.
type Handler struct {
	search *usecase.SearchArticlesUsecase
	size   int
}

func NewHandler(search *usecase.SearchArticlesUsecase, size int) *Handler {
	return &Handler{search: search, size: size}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/v1/search", h.SearchArticles)
	e.GET("/v1/health", h.Health)
}

type SearchHit struct {
	URL         string  `json:"url"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Score       float64 `json:"score"`
	RerankScore float64 `json:"rerank_score,omitempty"`
}

type SearchResponse struct {
	Query    string      `json:"query"`
	Category string      `json:"category"`
	Reranked bool        `json:"reranked"`
	Hits     []SearchHit `json:"hits"`
	Total    int         `json:"total"`
}

func (h *Handler) SearchArticles(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}

	result, err := h.search.Execute(c.Request().Context(), query, h.size)
	if err != nil {
		var retrievalErr *domain.RetrievalError
		if errors.As(err, &retrievalErr) {
			return echo.NewHTTPError(http.StatusBadGateway, "search engine unavailable")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
	}

	resp := SearchResponse{
		Query:    result.Query,
		Category: result.Category,
		Reranked: result.Reranked,
		Hits:     make([]SearchHit, 0, len(result.Hits)),
		Total:    result.Total,
	}
	for _, hit := range result.Hits {
		resp.Hits = append(resp.Hits, SearchHit{
			URL:         hit.URL,
			Title:       hit.Title,
			Category:    hit.Category,
			Date:        hit.Date,
			Score:       hit.Score,
			RerankScore: hit.RerankScore,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
