package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/condoindica/condoindica-api/internal/domain/error"
	coreport "github.com/condoindica/condoindica-api/internal/domain/port/core"
	"github.com/condoindica/condoindica-api/internal/domain/port/usecase"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/api/dto"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// maxCardImageBytes bounds card image uploads
const maxCardImageBytes = 5 << 20

// RecommendationHandler handles recommendation and comment HTTP requests
type RecommendationHandler struct {
	recommendationUseCase usecase.RecommendationUseCase
	logger                coreport.Logger
}

// NewRecommendationHandler creates a new recommendation handler instance
func NewRecommendationHandler(recommendationUseCase usecase.RecommendationUseCase, logger coreport.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationUseCase: recommendationUseCase,
		logger:                logger,
	}
}

// SubmitRecommendation handles the POST /recommendations endpoint
func (h *RecommendationHandler) SubmitRecommendation(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	var req dto.SubmitRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid recommendation payload",
		})
		return
	}

	result, err := h.recommendationUseCase.SubmitRecommendation(c.Request.Context(), identity.UserID, usecase.SubmitRecommendationInput{
		ProviderName:   req.ProviderName,
		Company:        req.Company,
		ServiceType:    req.ServiceType,
		NewServiceType: req.NewServiceType,
		Contact:        req.Contact,
		Description:    req.Description,
		Rating:         req.Rating,
		CardImageURL:   req.CardImageURL,
		ServedFor:      req.ServedFor,
	})
	if err != nil {
		h.logger.Warn("Recommendation submission rejected", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitRecommendationResponse{
		ID:            result.Recommendation.ID,
		PointsAwarded: result.PointsAwarded,
		ResultBalance: result.ResultBalance,
	})
}

// ListRecommendations handles the GET /recommendations endpoint
func (h *RecommendationHandler) ListRecommendations(c *gin.Context) {
	serviceType := c.Query("serviceType")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	views, err := h.recommendationUseCase.ListRecommendations(c.Request.Context(), serviceType, limit)
	if err != nil {
		h.logger.Error("Error listing recommendations", map[string]any{
			"service_type": serviceType,
			"error":        err.Error(),
		})
		respondError(c, err)
		return
	}

	responses := make([]dto.RecommendationResponse, 0, len(views))
	for _, view := range views {
		responses = append(responses, dto.NewRecommendationResponse(view))
	}
	c.JSON(http.StatusOK, responses)
}

// ListServiceTypes handles the GET /recommendations/service-types endpoint
func (h *RecommendationHandler) ListServiceTypes(c *gin.Context) {
	types, err := h.recommendationUseCase.ListServiceTypes(c.Request.Context())
	if err != nil {
		h.logger.Error("Error listing service types", map[string]any{
			"error": err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types)
}

// AddComment handles the POST /recommendations/:id/comments endpoint
func (h *RecommendationHandler) AddComment(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)
	recommendationID := c.Param("id")

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid comment payload",
		})
		return
	}

	result, err := h.recommendationUseCase.AddComment(c.Request.Context(), identity.UserID, recommendationID, req.Content, req.Rating)
	if err != nil {
		h.logger.Warn("Comment rejected", map[string]any{
			"user_id":           identity.UserID,
			"recommendation_id": recommendationID,
			"error":             err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AddCommentResponse{
		Comment:       dto.NewCommentResponse(result.Comment),
		PointsAwarded: result.PointsAwarded,
		ResultBalance: result.ResultBalance,
	})
}

// ListComments handles the GET /recommendations/:id/comments endpoint
func (h *RecommendationHandler) ListComments(c *gin.Context) {
	recommendationID := c.Param("id")

	comments, err := h.recommendationUseCase.ListComments(c.Request.Context(), recommendationID)
	if err != nil {
		h.logger.Error("Error listing comments", map[string]any{
			"recommendation_id": recommendationID,
			"error":             err.Error(),
		})
		respondError(c, err)
		return
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, dto.NewCommentResponse(comment))
	}
	c.JSON(http.StatusOK, responses)
}

// UploadCard handles the POST /recommendations/card endpoint.
// Accepts a multipart form with a single "card" file field.
func (h *RecommendationHandler) UploadCard(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	fileHeader, err := c.FormFile("card")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Card image file is required",
		})
		return
	}

	if fileHeader.Size > maxCardImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Card image exceeds the size limit",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Could not read card image",
		})
		return
	}
	defer file.Close()

	url, err := h.recommendationUseCase.UploadCardImage(
		c.Request.Context(),
		identity.UserID,
		fileHeader.Filename,
		file,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		h.logger.Error("Error uploading card image", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CardUploadResponse{URL: url})
}
