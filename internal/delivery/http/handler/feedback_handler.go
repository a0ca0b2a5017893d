package handler

import (
	"encoding/json"
	"net/http"

	"lifeline-qr-server/internal/delivery/dto"
	"lifeline-qr-server/internal/usecase"
	"lifeline-qr-server/pkg/response"
	"lifeline-qr-server/pkg/validator"
)

// FeedbackHandler serves /api/feedback: create only.
type FeedbackHandler struct {
	feedbackUsecase usecase.FeedbackUsecase
	validator       *validator.CustomValidator
}

func NewFeedbackHandler(feedbackUsecase usecase.FeedbackUsecase, validator *validator.CustomValidator) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUsecase: feedbackUsecase,
		validator:       validator,
	}
}

func (h *FeedbackHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request data")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.Message(err))
		return
	}

	if err := h.feedbackUsecase.Submit(r.Context(), &req); err != nil {
		response.InternalServerError(w, "Failed to submit feedback")
		return
	}

	response.Success(w, http.StatusCreated, response.Payload{"message": "Feedback submitted"})
}
