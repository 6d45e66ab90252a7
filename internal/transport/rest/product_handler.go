package rest

import (
	"encoding/json"
	"net/http"

	"storefront/internal/domain"
	"storefront/internal/transport/rest/middleware"
)

type ProductHandler struct {
	svc domain.ProductService
}

func NewProductHandler(svc domain.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Store persists a product for the authenticated caller. Ownership comes
// from the resolved identity's durable user id.
func (h *ProductHandler) Store(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		JSONError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req domain.ProductCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONValidationError(w, validationErrors)
		return
	}

	created, err := h.svc.Create(r.Context(), req, identity.UserID)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	JSON(w, http.StatusOK, created)
}
