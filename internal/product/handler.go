package product

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

// PublicRoutes mounts the unauthenticated read endpoints.
func (h *Handler) PublicRoutes(r *mux.Router) {
	r.HandleFunc("", h.List).Methods(http.MethodGet)
	r.HandleFunc("/{id:[0-9]+}", h.Get).Methods(http.MethodGet)
}

// FarmerRoutes mounts the farmer-only write endpoints.
func (h *Handler) FarmerRoutes(r *mux.Router) {
	r.HandleFunc("", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/{id:[0-9]+}", h.Delete).Methods(http.MethodDelete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "failed to fetch products", http.StatusInternalServerError)
		return
	}
	if products == nil {
		products = []Product{}
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			utils.WriteJSONMessage(w, "Product not found", http.StatusNotFound)
			return
		}
		utils.WriteJSONMessage(w, "Error fetching product", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	farmerID, _ := utils.GetUserIDFromContext(r.Context())

	var p Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.svc.Create(r.Context(), farmerID, p)
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	utils.WriteJSON(w, http.StatusOK, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	farmerID, _ := utils.GetUserIDFromContext(r.Context())

	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var p Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.svc.Update(r.Context(), farmerID, id, p)
	if err != nil {
		writeProductError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	farmerID, _ := utils.GetUserIDFromContext(r.Context())

	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), farmerID, id); err != nil {
		writeProductError(w, err)
		return
	}
	utils.WriteJSONMessage(w, "Deleted", http.StatusOK)
}

func writeProductError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrProductNotFound):
		utils.WriteJSONMessage(w, "Product not found", http.StatusNotFound)
	case errors.Is(err, ErrNotOwner):
		utils.WriteJSONError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrInvalidPrice):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		utils.WriteJSONError(w, "server error", http.StatusInternalServerError)
	}
}
