package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"restaurant-client/cart-svc/internal/backend"
	"restaurant-client/cart-svc/internal/domain"
	"restaurant-client/cart-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Cart         service.CartServiceInterface
	Orders       service.OrderServiceInterface
	Reservations service.ReservationServiceInterface
}

func NewHandler(cartSvc service.CartServiceInterface, orderSvc service.OrderServiceInterface, reservationSvc service.ReservationServiceInterface) *Handler {
	return &Handler{
		Cart:         cartSvc,
		Orders:       orderSvc,
		Reservations: reservationSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu/{userId}/{restaurantId}", h.enterMenu).Methods("GET")

	r.HandleFunc("/api/cart/{userId}", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart/{userId}", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/{userId}/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/cart/{userId}/items/{menuItemId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/cart/{userId}/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders/{userId}", h.getOrders).Methods("GET")
	r.HandleFunc("/api/orders/{userId}/{orderId}", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{userId}/{orderId}", h.deleteOrder).Methods("DELETE")
	r.HandleFunc("/api/orders/{userId}/{orderId}/items", h.addOrderItem).Methods("POST")
	r.HandleFunc("/api/orders/{userId}/{orderId}/items/{menuItemId}", h.removeOrderItem).Methods("DELETE")
	r.HandleFunc("/api/orders/{userId}/{orderId}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/restaurants/{restaurantId}/tables/available", h.getAvailableTables).Methods("GET")
	r.HandleFunc("/api/reservations/{userId}", h.getReservations).Methods("GET")
	r.HandleFunc("/api/reservations/{restaurantId}/{userId}", h.bookTable).Methods("POST")
	r.HandleFunc("/api/reservations/{restaurantId}/{userId}/{reservationId}", h.cancelReservation).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "cart-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) enterMenu(w http.ResponseWriter, r *http.Request) {
	userID, err := service.ParseUserID(mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}
	restaurantID, err := service.ParseID("restaurant_id", mux.Vars(r)["restaurantId"])
	if err != nil {
		writeError(w, err)
		return
	}

	menu, err := h.Cart.EnterMenu(r.Context(), userID, restaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	userID, err := service.ParseUserID(mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}

	snapshot, err := h.Cart.LoadCart(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// flexibleID accepts ids sent either as JSON numbers or as strings from form inputs.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*f = flexibleID(text)
		return nil
	}
	*f = flexibleID(strings.TrimSpace(string(data)))
	return nil
}

func (f flexibleID) required(field string) (int, error) {
	return service.ParseID(field, string(f))
}

func (f flexibleID) quantity() (int, error) {
	if f == "" || f == "null" {
		return 0, nil
	}
	if strings.TrimSpace(string(f)) == "0" {
		return 0, nil
	}
	return service.ParseID("quantity", string(f))
}

type addCartItemRequest struct {
	MenuItemID   flexibleID `json:"menu_item_id"`
	RestaurantID flexibleID `json:"restaurant_id"`
	Quantity     flexibleID `json:"quantity"`
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	userID, err := service.ParseUserID(mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}

	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &service.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}
	input := service.AddItemInput{}
	if input.MenuItemID, err = req.MenuItemID.required("menu_item_id"); err != nil {
		writeError(w, err)
		return
	}
	if input.RestaurantID, err = req.RestaurantID.required("restaurant_id"); err != nil {
		writeError(w, err)
		return
	}
	if input.Quantity, err = req.Quantity.quantity(); err != nil {
		writeError(w, err)
		return
	}

	snapshot, err := h.Cart.AddItem(r.Context(), userID, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	userID, err := service.ParseUserID(mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}
	menuItemID, err := service.ParseID("menu_item_id", mux.Vars(r)["menuItemId"])
	if err != nil {
		writeError(w, err)
		return
	}

	snapshot, err := h.Cart.RemoveItem(r.Context(), userID, menuItemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	userID, err := service.ParseUserID(mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}

	snapshot, err := h.Cart.ClearCart(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

type checkoutRequest struct {
	OrderType domain.FulfillmentMode `json:"order_type"`
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	userID, err := service.ParseUserID(mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &service.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}

	created, err := h.Cart.SubmitOrder(r.Context(), userID, req.OrderType)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := service.ParseUserID(mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}

	orders, err := h.Orders.ListOrders(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

// orderPath reads the user and order ids shared by every /api/orders/{userId}/{orderId} route.
func orderPath(r *http.Request) (int64, int, error) {
	userID, err := service.ParseUserID(mux.Vars(r)["userId"])
	if err != nil {
		return 0, 0, err
	}
	orderID, err := service.ParseID("order_id", mux.Vars(r)["orderId"])
	if err != nil {
		return 0, 0, err
	}
	return userID, orderID, nil
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	userID, orderID, err := orderPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req domain.OrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &service.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}

	order, err := h.Orders.SetStatus(r.Context(), userID, orderID, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	userID, orderID, err := orderPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Orders.DeleteOrder(r.Context(), userID, orderID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted"})
}

type orderItemRequest struct {
	MenuItemID flexibleID `json:"menu_item_id"`
	Quantity   flexibleID `json:"quantity"`
}

func (h *Handler) addOrderItem(w http.ResponseWriter, r *http.Request) {
	userID, orderID, err := orderPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req orderItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &service.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}
	menuItemID, err := req.MenuItemID.required("menu_item_id")
	if err != nil {
		writeError(w, err)
		return
	}
	quantity, err := req.Quantity.quantity()
	if err != nil {
		writeError(w, err)
		return
	}

	order, err := h.Orders.AddItem(r.Context(), userID, orderID, menuItemID, quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) removeOrderItem(w http.ResponseWriter, r *http.Request) {
	userID, orderID, err := orderPath(r)
	if err != nil {
		writeError(w, err)
		return
	}
	menuItemID, err := service.ParseID("menu_item_id", mux.Vars(r)["menuItemId"])
	if err != nil {
		writeError(w, err)
		return
	}

	order, err := h.Orders.RemoveItem(r.Context(), userID, orderID, menuItemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	_, orderID, err := orderPath(r)
	if err != nil {
		writeError(w, err)
		return
	}

	png, err := h.Orders.Receipt(orderID)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) getAvailableTables(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := service.ParseID("restaurant_id", mux.Vars(r)["restaurantId"])
	if err != nil {
		writeError(w, err)
		return
	}

	var start *time.Time
	if raw := r.URL.Query().Get("reservation_start"); raw != "" {
		parsed, err := parseReservationTime(raw)
		if err != nil {
			writeError(w, err)
			return
		}
		start = &parsed
	}

	tables, err := h.Reservations.AvailableTables(r.Context(), restaurantID, start)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tables": tables})
}

type bookingRequest struct {
	TableNumber      flexibleID `json:"table_number"`
	ReservationStart string     `json:"reservation_start"`
}

func (h *Handler) bookTable(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := service.ParseID("restaurant_id", mux.Vars(r)["restaurantId"])
	if err != nil {
		writeError(w, err)
		return
	}
	userID, err := service.ParseUserID(mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}

	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &service.ValidationError{Field: "body", Reason: "malformed JSON"})
		return
	}
	tableNumber, err := req.TableNumber.required("table_number")
	if err != nil {
		writeError(w, err)
		return
	}
	start, err := parseReservationTime(req.ReservationStart)
	if err != nil {
		writeError(w, err)
		return
	}

	reservation, err := h.Reservations.Book(r.Context(), restaurantID, userID, service.BookingInput{
		TableNumber: tableNumber,
		Start:       start,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":     "Table booked",
		"reservation": reservation,
	})
}

func (h *Handler) getReservations(w http.ResponseWriter, r *http.Request) {
	userID, err := service.ParseUserID(mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, err)
		return
	}

	reservations, err := h.Reservations.List(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"reservations": reservations})
}

func (h *Handler) cancelReservation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, err := service.ParseID("restaurant_id", vars["restaurantId"])
	if err != nil {
		writeError(w, err)
		return
	}
	userID, err := service.ParseUserID(vars["userId"])
	if err != nil {
		writeError(w, err)
		return
	}
	reservationID, err := service.ParseID("reservation_id", vars["reservationId"])
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Reservations.Cancel(r.Context(), restaurantID, userID, reservationID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Reservation cancelled"})
}

// Booking forms send datetime-local values without a zone; those are read as UTC.
var reservationLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"}

func parseReservationTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range reservationLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, &service.ValidationError{Field: "reservation_start", Value: raw, Reason: "must be an ISO 8601 timestamp"}
}

func statusFor(err error) int {
	var serverErr *backend.ServerError
	switch {
	case service.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrRestaurantMismatch), backend.IsCanceled(err):
		return http.StatusConflict
	case errors.Is(err, service.ErrEmptyCart), errors.Is(err, service.ErrMissingRestaurant):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrReceiptUnavailable):
		return http.StatusServiceUnavailable
	case backend.IsTimeout(err):
		return http.StatusGatewayTimeout
	case backend.IsNetwork(err):
		return http.StatusBadGateway
	case errors.As(err, &serverErr):
		if serverErr.StatusCode >= http.StatusBadRequest && serverErr.StatusCode < http.StatusInternalServerError {
			return serverErr.StatusCode
		}
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("ERROR: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Printf("ERROR: %v", err)
	}
	writeJSON(w, status, map[string]string{"error": backend.Message(err)})
}
