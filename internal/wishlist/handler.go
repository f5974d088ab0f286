package wishlist

import (
	"encoding/json"
	"errors"
	"net/http"

	"agrimart-be/internal/utils"

	"github.com/gorilla/mux"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Routes mounts the customer-only /api/wishlist endpoints.
func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("", h.GetWishlist).Methods(http.MethodGet)
	r.HandleFunc("/add", h.AddToWishlist).Methods(http.MethodPost)
	r.HandleFunc("/remove", h.RemoveFromWishlist).Methods(http.MethodPost)
}

func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	customerID, _ := utils.GetUserIDFromContext(r.Context())

	wl, err := h.svc.GetWishlist(r.Context(), customerID)
	if err != nil {
		utils.WriteJSONError(w, "failed to fetch wishlist", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, wl)
}

type wishlistItemRequest struct {
	ProductID uint `json:"productId"`
}

func (h *Handler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	customerID, _ := utils.GetUserIDFromContext(r.Context())

	var req wishlistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	wl, err := h.svc.AddToWishlist(r.Context(), customerID, req.ProductID)
	if err != nil {
		if errors.Is(err, ErrInvalidProduct) {
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		utils.WriteJSONError(w, "failed to add to wishlist", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, wl)
}

func (h *Handler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	customerID, _ := utils.GetUserIDFromContext(r.Context())

	var req wishlistItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	wl, err := h.svc.RemoveFromWishlist(r.Context(), customerID, req.ProductID)
	if err != nil {
		utils.WriteJSONError(w, "failed to remove from wishlist", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, wl)
}
