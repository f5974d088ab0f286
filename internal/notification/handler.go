package notification

import (
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

// Routes mounts the per-user /api/notifications endpoints.
func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("", h.Inbox).Methods(http.MethodGet)
	r.HandleFunc("/mark-read/{id:[0-9]+}", h.MarkRead).Methods(http.MethodPost)
	r.HandleFunc("/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/order/{orderId:[0-9]+}", h.ForOrder).Methods(http.MethodGet)
}

func (h *Handler) Inbox(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	notes, err := h.svc.Inbox(r.Context(), userID)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, notes)
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid notification id", http.StatusBadRequest)
		return
	}

	n, err := h.svc.MarkRead(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			utils.WriteJSONMessage(w, "Notification not found", http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, n)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid notification id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			utils.WriteJSONMessage(w, "Notification not found", http.StatusNotFound)
			return
		}
		utils.WriteJSONMessage(w, "Server error", http.StatusInternalServerError)
		return
	}
	utils.WriteJSONMessage(w, "Notification deleted successfully", http.StatusOK)
}

func (h *Handler) ForOrder(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	orderID, err := utils.ToUint(mux.Vars(r)["orderId"])
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	notes, err := h.svc.ForOrder(r.Context(), userID, orderID)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, notes)
}
