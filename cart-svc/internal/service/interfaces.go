package service

import (
	"context"
	"time"

	"restaurant-client/cart-svc/internal/backend"
	"restaurant-client/cart-svc/internal/domain"
)

type CartBackend interface {
	GetCart(ctx context.Context, userID int64) (backend.CartPayload, error)
	AddToCart(ctx context.Context, userID int64, req domain.AddToCartRequest) error
	RemoveFromCart(ctx context.Context, userID int64, menuItemID int) error
	ClearCart(ctx context.Context, userID int64) error
	CreateOrder(ctx context.Context, userID int64, req domain.CreateOrderRequest) (*domain.OrderCreated, error)
	GetMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
}

type OrderBackend interface {
	ListOrders(ctx context.Context, userID int64) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, userID int64, orderID int, status domain.OrderStatus) (*domain.Order, error)
	AddOrderItem(ctx context.Context, userID int64, orderID int, req domain.OrderItemRequest) (*domain.OrderItem, error)
	RemoveOrderItem(ctx context.Context, userID int64, orderID, menuItemID int) error
	DeleteOrder(ctx context.Context, userID int64, orderID int) error
}

type ReservationBackend interface {
	AvailableTables(ctx context.Context, restaurantID int, start *time.Time) ([]domain.Table, error)
	CreateReservation(ctx context.Context, restaurantID int, userID int64, req domain.BookingRequest) (*domain.Reservation, error)
	ListReservations(ctx context.Context, userID int64) ([]domain.Reservation, error)
	DeleteReservation(ctx context.Context, restaurantID int, userID int64, reservationID int) error
}

type VisitStore interface {
	LastRestaurant(ctx context.Context, userID int64) (string, error)
	SetLastRestaurant(ctx context.Context, userID int64, restaurantID string) error
}

type EventPublisher interface {
	PublishCartEvent(ctx context.Context, event domain.CartEvent) error
}

type CartServiceInterface interface {
	LoadCart(ctx context.Context, userID int64) (CartSnapshot, error)
	AddItem(ctx context.Context, userID int64, input AddItemInput) (CartSnapshot, error)
	RemoveItem(ctx context.Context, userID int64, menuItemID int) (CartSnapshot, error)
	ClearCart(ctx context.Context, userID int64) (CartSnapshot, error)
	SubmitOrder(ctx context.Context, userID int64, mode domain.FulfillmentMode) (*domain.OrderCreated, error)
	EnterMenu(ctx context.Context, userID int64, restaurantID int) ([]domain.MenuItem, error)
	Snapshot(userID int64) CartSnapshot
}

type OrderServiceInterface interface {
	ListOrders(ctx context.Context, userID int64) ([]domain.Order, error)
	SetStatus(ctx context.Context, userID int64, orderID int, status domain.OrderStatus) (domain.Order, error)
	AddItem(ctx context.Context, userID int64, orderID, menuItemID, quantity int) (domain.Order, error)
	RemoveItem(ctx context.Context, userID int64, orderID, menuItemID int) (domain.Order, error)
	DeleteOrder(ctx context.Context, userID int64, orderID int) error
	Receipt(orderID int) ([]byte, error)
}

type ReservationServiceInterface interface {
	AvailableTables(ctx context.Context, restaurantID int, start *time.Time) ([]domain.Table, error)
	Book(ctx context.Context, restaurantID int, userID int64, input BookingInput) (*domain.Reservation, error)
	List(ctx context.Context, userID int64) ([]domain.Reservation, error)
	Cancel(ctx context.Context, restaurantID int, userID int64, reservationID int) error
}

var (
	_ CartBackend        = (*backend.Client)(nil)
	_ OrderBackend       = (*backend.Client)(nil)
	_ ReservationBackend = (*backend.Client)(nil)

	_ CartServiceInterface        = (*CartService)(nil)
	_ OrderServiceInterface       = (*OrderService)(nil)
	_ ReservationServiceInterface = (*ReservationService)(nil)
)
