package order

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

// CustomerRoutes mounts the customer-only order endpoints.
func (h *Handler) CustomerRoutes(r *mux.Router) {
	r.HandleFunc("", h.Place).Methods(http.MethodPost)
	r.HandleFunc("/user/{id:[0-9]+}", h.ListForUser).Methods(http.MethodGet)
	r.HandleFunc("/{id:[0-9]+}", h.Cancel).Methods(http.MethodDelete)
	r.HandleFunc("/track/{id:[0-9]+}", h.Track).Methods(http.MethodGet)
}

// FarmerRoutes mounts the farmer-only order endpoints.
func (h *Handler) FarmerRoutes(r *mux.Router) {
	r.HandleFunc("/{id:[0-9]+}/status", h.UpdateStatus).Methods(http.MethodPut)
}

type placeOrderRequest struct {
	Items []struct {
		ProductID uint    `json:"productId"`
		Quantity  int     `json:"quantity"`
		Price     float64 `json:"price"`
	} `json:"items"`
	Address string `json:"address"`
}

func (h *Handler) Place(w http.ResponseWriter, r *http.Request) {
	customerID, _ := utils.GetUserIDFromContext(r.Context())

	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	items := make([]OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		})
	}

	o, err := h.svc.Place(r.Context(), customerID, items, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyAddress), errors.Is(err, ErrNoItems), errors.Is(err, ErrInvalidItem):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		default:
			utils.WriteJSONError(w, "failed to place order", http.StatusInternalServerError)
		}
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) ListForUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	orders, err := h.svc.ListByCustomer(r.Context(), id)
	if err != nil {
		utils.WriteJSONError(w, "failed to fetch orders", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	customerID, _ := utils.GetUserIDFromContext(r.Context())

	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Cancel(r.Context(), customerID, id); err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			utils.WriteJSONError(w, "Order not found", http.StatusNotFound)
		case errors.Is(err, ErrNotCancellable):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		default:
			utils.WriteJSONError(w, "failed to cancel order", http.StatusInternalServerError)
		}
		return
	}
	utils.WriteJSONMessage(w, "Order cancelled", http.StatusOK)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	farmerID, _ := utils.GetUserIDFromContext(r.Context())

	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	o, err := h.svc.UpdateStatus(r.Context(), farmerID, id, OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrOrderNotFound):
			utils.WriteJSONError(w, "Order not found", http.StatusNotFound)
		case errors.Is(err, ErrNotOrderOwner):
			utils.WriteJSONError(w, err.Error(), http.StatusForbidden)
		default:
			utils.WriteJSONError(w, "failed to update order status", http.StatusInternalServerError)
		}
		return
	}
	utils.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) Track(w http.ResponseWriter, r *http.Request) {
	customerID, _ := utils.GetUserIDFromContext(r.Context())

	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil {
		utils.WriteJSONError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	info, err := h.svc.Track(r.Context(), customerID, id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			utils.WriteJSONError(w, "Order not found", http.StatusNotFound)
			return
		}
		utils.WriteJSONError(w, "failed to track order", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, info)
}
