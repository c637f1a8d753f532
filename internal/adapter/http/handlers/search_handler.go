package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/dto/request"
	response "github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/dto/response"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/pkg"
)

// SearchHandler handles the semantic search and assistant endpoints.

type SearchHandler struct {
	usecase usecase.ISearchUseCase
}

func NewSearchHandler(uc usecase.ISearchUseCase) *SearchHandler {
	return &SearchHandler{usecase: uc}
}

// CreateEmbeddings rebuilds the embedding index from the hotel catalog.
// Admin only.
func (h *SearchHandler) CreateEmbeddings(c *gin.Context) {
	log.Printf("[search][handler] create-embeddings start")

	indexed, err := h.usecase.CreateEmbeddings(c.Request.Context())
	if err != nil {
		log.Printf("[search][handler] create-embeddings failed err=%v", err)
		appErr := mapSearchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[search][handler] create-embeddings success indexed=%d", indexed)

	c.JSON(http.StatusOK, response.EmbeddingsCreatedResponse{
		Indexed: indexed,
		Message: "Embeddings created successfully",
	})
}

// Retrieve ranks hotels against a free-text query.
func (h *SearchHandler) Retrieve(c *gin.Context) {
	query := c.Query("query")

	results, err := h.usecase.Retrieve(c.Request.Context(), query)
	if err != nil {
		log.Printf("[search][handler] retrieve failed err=%v", err)
		appErr := mapSearchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromScoredHotels(results))
}

// Respond forwards a prompt to the language model.
func (h *SearchHandler) Respond(c *gin.Context) {
	var req request.LLMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[search][handler] respond invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	answer, err := h.usecase.GenerateResponse(c.Request.Context(), req.Prompt)
	if err != nil {
		log.Printf("[search][handler] respond failed err=%v", err)
		appErr := mapSearchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LLMResponse{Response: answer})
}

func mapSearchError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyPrompt):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Prompt cannot be empty", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
