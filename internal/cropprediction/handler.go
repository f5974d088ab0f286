package cropprediction

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

// ReadRoutes mounts the farmer/admin read endpoints.
func (h *Handler) ReadRoutes(r *mux.Router) {
	r.HandleFunc("", h.List).Methods(http.MethodGet)
}

// FarmerRoutes mounts the farmer-only detail endpoint.
func (h *Handler) FarmerRoutes(r *mux.Router) {
	r.HandleFunc("/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
}

// AdminRoutes mounts the admin-only write endpoints.
func (h *Handler) AdminRoutes(r *mux.Router) {
	r.HandleFunc("", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	predictions, err := h.svc.List(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "Error fetching crop predictions", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, predictions)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid prediction id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			utils.WriteJSONMessage(w, "Prediction not found", http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "Error fetching prediction", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var p CropPrediction
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.svc.Create(r.Context(), p)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		utils.WriteJSONError(w, "failed to create prediction", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid prediction id", http.StatusBadRequest)
		return
	}

	var p CropPrediction
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.svc.Update(r.Context(), id, p)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrNotFound):
			utils.WriteJSONMessage(w, "Prediction not found", http.StatusNotFound)
		default:
			utils.WriteJSONError(w, "failed to update prediction", http.StatusInternalServerError)
		}
		return
	}
	utils.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid prediction id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			utils.WriteJSONMessage(w, "Prediction not found", http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "Error deleting prediction", http.StatusInternalServerError)
		return
	}
	utils.WriteJSONMessage(w, "Prediction deleted successfully", http.StatusOK)
}
