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

type RequestHandler struct {
	requestUsecase usecase.SurgeryRequestUsecase
	validator      *validator.CustomValidator
}

func NewRequestHandler(requestUsecase usecase.SurgeryRequestUsecase, validator *validator.CustomValidator) *RequestHandler {
	return &RequestHandler{
		requestUsecase: requestUsecase,
		validator:      validator,
	}
}

func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSurgeryRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.requestUsecase.CreateRequest(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create request")
		return
	}

	response.Success(w, http.StatusCreated, "Request created successfully", result)
}

func (h *RequestHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	result, err := h.requestUsecase.ListRequests(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list requests")
		return
	}

	response.Success(w, http.StatusOK, "Requests retrieved successfully", result)
}

func (h *RequestHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	result, err := h.requestUsecase.GetRequest(r.Context(), requestID)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Request not found")
		default:
			response.InternalServerError(w, "Failed to get request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Request retrieved successfully", result)
}

func (h *RequestHandler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	var req dto.UpdateSurgeryRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.requestUsecase.UpdateRequest(r.Context(), requestID, &req)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Request not found")
		case usecase.ErrRequestNotOwned:
			response.Forbidden(w, "Can only update your own requests")
		default:
			response.InternalServerError(w, "Failed to update request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Request updated successfully", result)
}

func (h *RequestHandler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requestID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request ID", nil)
		return
	}

	err = h.requestUsecase.DeleteRequest(r.Context(), requestID)
	if err != nil {
		switch err {
		case usecase.ErrRequestNotFound:
			response.NotFound(w, "Request not found")
		case usecase.ErrRequestNotOwned:
			response.Forbidden(w, "Can only delete your own requests")
		default:
			response.InternalServerError(w, "Failed to delete request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Request deleted successfully", nil)
}
