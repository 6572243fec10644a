package handler

import (
	"encoding/json"
	"net/http"

	"medexus-backend/internal/delivery/dto"
	"medexus-backend/internal/usecase"
	"medexus-backend/pkg/response"
	"medexus-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type InterestHandler struct {
	interestUsecase usecase.InterestUsecase
	validator       *validator.CustomValidator
}

func NewInterestHandler(interestUsecase usecase.InterestUsecase, validator *validator.CustomValidator) *InterestHandler {
	return &InterestHandler{
		interestUsecase: interestUsecase,
		validator:       validator,
	}
}

func (h *InterestHandler) ExpressInterest(w http.ResponseWriter, r *http.Request) {
	var req dto.ExpressInterestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.interestUsecase.ExpressInterest(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Request not found")
		case usecase.ErrAlreadyInterested:
			response.Conflict(w, "Already expressed interest in this request")
		default:
			response.InternalServerError(w, "Failed to express interest")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Interest expressed successfully", result)
}

func (h *InterestHandler) WithdrawInterest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := uuid.Parse(vars["requestId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	err = h.interestUsecase.WithdrawInterest(r.Context(), requestID)
	if err != nil {
		switch err {
		case usecase.ErrInterestNotFound:
			response.NotFound(w, "Interest not found")
		default:
			response.InternalServerError(w, "Failed to withdraw interest")
		}
		return
	}

	response.Success(w, http.StatusOK, "Interest withdrawn successfully", nil)
}

func (h *InterestHandler) GetMyInterests(w http.ResponseWriter, r *http.Request) {
	result, err := h.interestUsecase.GetMyInterests(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get interests")
		return
	}

	response.Success(w, http.StatusOK, "Interests retrieved successfully", result)
}
