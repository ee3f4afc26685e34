package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"restaurant-client/cart-svc/internal/backend"
	"restaurant-client/cart-svc/internal/domain"
	"restaurant-client/cart-svc/internal/mocks"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func newFakeBackend(t *testing.T, register func(router *mux.Router)) *backend.Client {
	t.Helper()
	router := mux.NewRouter()
	register(router)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return backend.NewClient(backend.Config{BaseURL: server.URL + "/", Timeout: time.Second}, server.Client())
}

func TestClient_GetCart(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedKind  backend.CartPayloadKind
		expectedLines int
		expectedError string
	}{
		{
			name:          "array",
			status:        http.StatusOK,
			body:          `[{"menu_item_id":5,"quantity":2,"restaurant_id":10,"name_item":"Borscht","item_price":"350.00"}]`,
			expectedKind:  backend.CartLines,
			expectedLines: 1,
		},
		{
			name:         "empty_marker",
			status:       http.StatusOK,
			body:         `{"cart":"Cart is empty"}`,
			expectedKind: backend.CartEmptyMarker,
		},
		{
			name:         "error_marker",
			status:       http.StatusOK,
			body:         `{"error":"user not registered"}`,
			expectedKind: backend.CartErrorMarker,
		},
		{
			name:          "server_error",
			status:        http.StatusInternalServerError,
			body:          `{"error":"database is down"}`,
			expectedError: "database is down",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			client := newFakeBackend(t, func(router *mux.Router) {
				router.HandleFunc("/cart/{userId}", func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "42", mux.Vars(r)["userId"])
					w.WriteHeader(testCase.status)
					w.Write([]byte(testCase.body))
				}).Methods(http.MethodGet)
			})

			payload, err := client.GetCart(context.Background(), 42)
			if testCase.expectedError != "" {
				assert.EqualError(t, err, testCase.expectedError)
				assert.True(t, backend.IsServer(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expectedKind, payload.Kind)
			assert.Len(t, payload.Lines, testCase.expectedLines)
		})
	}
}

func TestClient_AddToCart_SendsBodyAndHeaders(t *testing.T) {
	client := newFakeBackend(t, func(router *mux.Router) {
		router.HandleFunc("/cart/{userId}", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			_, err := uuid.Parse(r.Header.Get(backend.RequestIDHeader))
			assert.NoError(t, err)

			var req domain.AddToCartRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, domain.AddToCartRequest{MenuItemID: 7, Quantity: 2, RestaurantID: 3}, req)

			writeJSON(w, http.StatusCreated, map[string]string{"message": "Item added to cart"})
		}).Methods(http.MethodPost)
	})

	err := client.AddToCart(context.Background(), 42, domain.AddToCartRequest{MenuItemID: 7, Quantity: 2, RestaurantID: 3})
	assert.NoError(t, err)
}

func TestClient_ServerErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{name: "error_field", status: http.StatusBadRequest, body: `{"error":"Item belongs to another restaurant"}`, expected: "Item belongs to another restaurant"},
		{name: "message_field", status: http.StatusNotFound, body: `{"message":"Menu item not found"}`, expected: "Menu item not found"},
		{name: "plain_text", status: http.StatusConflict, body: "already removed", expected: "already removed"},
		{name: "no_body", status: http.StatusInternalServerError, body: "", expected: "HTTP error! status: 500"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			client := newFakeBackend(t, func(router *mux.Router) {
				router.HandleFunc("/cart/{userId}/{menuItemId}", func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(testCase.status)
					w.Write([]byte(testCase.body))
				}).Methods(http.MethodDelete)
			})

			err := client.RemoveFromCart(context.Background(), 42, 5)

			var serverErr *backend.ServerError
			require.True(t, errors.As(err, &serverErr))
			assert.Equal(t, testCase.status, serverErr.StatusCode)
			assert.Equal(t, testCase.expected, backend.Message(err))
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/cart/{userId}", func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	server := httptest.NewServer(router)
	defer server.Close()

	client := backend.NewClient(backend.Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond}, server.Client())

	err := client.ClearCart(context.Background(), 42)
	assert.True(t, backend.IsTimeout(err))
	assert.False(t, backend.IsNetwork(err))
}

func TestClient_NetworkError(t *testing.T) {
	httpClient := mocks.NewHTTPClient(t)
	client := backend.NewClient(backend.Config{BaseURL: "http://backend"}, httpClient)

	httpClient.On("Do", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	_, err := client.GetCart(context.Background(), 42)
	assert.True(t, backend.IsNetwork(err))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestClient_CanceledByCaller(t *testing.T) {
	httpClient := mocks.NewHTTPClient(t)
	client := backend.NewClient(backend.Config{BaseURL: "http://backend"}, httpClient)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	httpClient.On("Do", mock.Anything).Return(nil, context.Canceled).Once()

	err := client.AddToCart(ctx, 42, domain.AddToCartRequest{MenuItemID: 7, Quantity: 1, RestaurantID: 3})
	assert.True(t, backend.IsCanceled(err))
}

func TestClient_Orders(t *testing.T) {
	client := newFakeBackend(t, func(router *mux.Router) {
		router.HandleFunc("/orders/{userId}", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"orders": []map[string]interface{}{
					{"id": 1, "restaurant_id": 10, "status": "pending", "total_price": "700.00", "items": []interface{}{}},
				},
			})
		}).Methods(http.MethodGet)
		router.HandleFunc("/orders/{userId}", func(w http.ResponseWriter, r *http.Request) {
			var req domain.CreateOrderRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, domain.FulfillmentDineIn, req.OrderType)
			writeJSON(w, http.StatusCreated, map[string]interface{}{"message": "Order created", "order_id": 501})
		}).Methods(http.MethodPost)
		router.HandleFunc("/orders/{userId}/{orderId}", func(w http.ResponseWriter, r *http.Request) {
			var req domain.OrderStatusRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, domain.OrderConfirmed, req.Status)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Status updated"})
		}).Methods(http.MethodPut)
		router.HandleFunc("/orders/{userId}/{orderId}/items", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusCreated, map[string]string{"message": "added"})
		}).Methods(http.MethodPost)
	})
	ctx := context.Background()

	orders, err := client.ListOrders(ctx, 42)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "700", orders[0].TotalPrice.String())

	created, err := client.CreateOrder(ctx, 42, domain.CreateOrderRequest{RestaurantID: 10, OrderType: domain.FulfillmentDineIn})
	require.NoError(t, err)
	assert.Equal(t, 501, created.OrderID)
	assert.Equal(t, "Order created", created.Message)

	echoed, err := client.UpdateOrderStatus(ctx, 42, 1, domain.OrderConfirmed)
	require.NoError(t, err)
	assert.Nil(t, echoed)

	item, err := client.AddOrderItem(ctx, 42, 1, domain.OrderItemRequest{MenuItemID: 9, Quantity: 2})
	require.NoError(t, err)
	assert.Equal(t, &domain.OrderItem{MenuItemID: 9, Quantity: 2}, item)
}

func TestClient_MenuAndTables(t *testing.T) {
	start := time.Date(2024, 6, 1, 19, 0, 0, 0, time.FixedZone("MSK", 3*3600))

	client := newFakeBackend(t, func(router *mux.Router) {
		router.HandleFunc("/restaurants/{id}/menu", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":7,"name":"Borscht","price":"350.00"}]`))
		}).Methods(http.MethodGet)
		router.HandleFunc("/restaurants/{id}/tables/available", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "2024-06-01T16:00:00Z", r.URL.Query().Get("reservation_start"))
			w.Write([]byte(`{"tables":[{"table_number":4,"capacity":2}]}`))
		}).Methods(http.MethodGet)
	})
	ctx := context.Background()

	menu, err := client.GetMenu(ctx, 3)
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "350", menu[0].Price.String())

	tables, err := client.AvailableTables(ctx, 3, &start)
	require.NoError(t, err)
	assert.Equal(t, []domain.Table{{TableNumber: 4, Capacity: 2}}, tables)
}

func TestClient_Reservations(t *testing.T) {
	client := newFakeBackend(t, func(router *mux.Router) {
		router.HandleFunc("/restaurants/{id}/{userId}/tables/booking", func(w http.ResponseWriter, r *http.Request) {
			var req domain.BookingRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			writeJSON(w, http.StatusCreated, map[string]interface{}{
				"message": "Table booked",
				"reservation": map[string]interface{}{
					"id": 12, "restaurant_id": 3, "user_id": 42, "table_number": req.TableNumber,
					"reservation_start": req.ReservationStart, "reservation_end": "2024-06-01T18:00:00Z", "status": "booked",
				},
			})
		}).Methods(http.MethodPost)
		router.HandleFunc("/reservations/{userId}", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"reservations":null}`))
		}).Methods(http.MethodGet)
		router.HandleFunc("/restaurants/{id}/{userId}/tables/booking/{reservationId}", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "12", mux.Vars(r)["reservationId"])
			w.WriteHeader(http.StatusNoContent)
		}).Methods(http.MethodDelete)
	})
	ctx := context.Background()

	reservation, err := client.CreateReservation(ctx, 3, 42, domain.BookingRequest{TableNumber: 4, ReservationStart: "2024-06-01T16:00:00Z"})
	require.NoError(t, err)
	assert.Equal(t, 12, reservation.ID)
	assert.Equal(t, 2*time.Hour, reservation.ReservationEnd.Sub(reservation.ReservationStart))

	reservations, err := client.ListReservations(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, reservations)

	assert.NoError(t, client.DeleteReservation(ctx, 3, 42, 12))
}
