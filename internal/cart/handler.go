package cart

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

// Routes mounts the customer-only /api/cart endpoints.
func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("", h.GetCart).Methods(http.MethodGet)
	r.HandleFunc("/add", h.AddToCart).Methods(http.MethodPost)
	r.HandleFunc("/remove", h.RemoveFromCart).Methods(http.MethodPost)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	customerID, _ := utils.GetUserIDFromContext(r.Context())

	cart, err := h.svc.GetCart(r.Context(), customerID)
	if err != nil {
		utils.WriteJSONError(w, "failed to fetch cart", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

type cartItemRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	customerID, _ := utils.GetUserIDFromContext(r.Context())

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cart, err := h.svc.AddToCart(r.Context(), customerID, req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, ErrInvalidQuantity) {
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		utils.WriteJSONError(w, "failed to add to cart", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	customerID, _ := utils.GetUserIDFromContext(r.Context())

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cart, err := h.svc.RemoveFromCart(r.Context(), customerID, req.ProductID)
	if err != nil {
		utils.WriteJSONError(w, "failed to remove from cart", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, cart)
}
