package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type MenuItem struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id,omitempty"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Description  string          `json:"description,omitempty"`
	ImageURL     string          `json:"image_url,omitempty"`
}

// CartLine is one entry of the server-side cart. Name and ItemPrice are whatever the
// most recent fetch reported and are dropped on the next reload.
type CartLine struct {
	MenuItemID   int              `json:"menu_item_id"`
	Quantity     int              `json:"quantity"`
	RestaurantID int              `json:"restaurant_id"`
	Name         string           `json:"name_item,omitempty"`
	ItemPrice    *decimal.Decimal `json:"item_price,omitempty"`
}

type FulfillmentMode string

const (
	FulfillmentDineIn   FulfillmentMode = "dine_in"
	FulfillmentDelivery FulfillmentMode = "delivery"
	FulfillmentPickup   FulfillmentMode = "pickup"
)

// ParseFulfillmentMode accepts the wire values as well as DINE_IN/DELIVERY/PICKUP.
func ParseFulfillmentMode(raw string) (FulfillmentMode, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dine_in", "dine-in", "dinein":
		return FulfillmentDineIn, true
	case "delivery":
		return FulfillmentDelivery, true
	case "pickup", "takeout":
		return FulfillmentPickup, true
	}
	return "", false
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

func ParseOrderStatus(raw string) (OrderStatus, bool) {
	switch status := OrderStatus(strings.ToLower(strings.TrimSpace(raw))); status {
	case OrderPending, OrderConfirmed, OrderCompleted, OrderCancelled:
		return status, true
	case "canceled":
		return OrderCancelled, true
	}
	return "", false
}

type Order struct {
	ID           int             `json:"id"`
	UserID       int64           `json:"user_id,omitempty"`
	RestaurantID int             `json:"restaurant_id"`
	OrderType    FulfillmentMode `json:"order_type,omitempty"`
	Status       OrderStatus     `json:"status"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	CreatedAt    time.Time       `json:"created_at"`
	Items        []OrderItem     `json:"items"`
}

type OrderItem struct {
	ID         int              `json:"id,omitempty"`
	MenuItemID int              `json:"menu_item_id"`
	Quantity   int              `json:"quantity"`
	Price      *decimal.Decimal `json:"price,omitempty"`
}

// OrderCreated is the order-creation endpoint's reply. OrderID is zero when the
// backend only answers with a message.
type OrderCreated struct {
	Message string `json:"message"`
	OrderID int    `json:"order_id,omitempty"`
	Order   *Order `json:"order,omitempty"`
}

type Table struct {
	TableNumber int `json:"table_number"`
	Capacity    int `json:"capacity"`
}

type Reservation struct {
	ID               int       `json:"id"`
	RestaurantID     int       `json:"restaurant_id"`
	UserID           int64     `json:"user_id"`
	TableNumber      int       `json:"table_number"`
	ReservationStart time.Time `json:"reservation_start"`
	ReservationEnd   time.Time `json:"reservation_end"`
	Status           string    `json:"status"`
}

type AddToCartRequest struct {
	MenuItemID   int `json:"menu_item_id"`
	Quantity     int `json:"quantity"`
	RestaurantID int `json:"restaurant_id"`
}

type CreateOrderRequest struct {
	RestaurantID int             `json:"restaurant_id"`
	OrderType    FulfillmentMode `json:"order_type"`
}

type OrderStatusRequest struct {
	Status OrderStatus `json:"status"`
}

type OrderItemRequest struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

type BookingRequest struct {
	TableNumber      int    `json:"table_number"`
	ReservationStart string `json:"reservation_start"`
}

const (
	EventCartCleared        = "cart_cleared"
	EventRestaurantSwitched = "restaurant_switched"
	EventOrderSubmitted     = "order_submitted"
	EventOrderStatusChanged = "order_status_changed"
	EventReservationBooked  = "reservation_booked"
)

type CartEvent struct {
	Type         string          `json:"type"`
	UserID       int64           `json:"user_id"`
	RestaurantID int             `json:"restaurant_id,omitempty"`
	PreviousID   int             `json:"previous_restaurant_id,omitempty"`
	OrderID      int             `json:"order_id,omitempty"`
	OrderType    FulfillmentMode `json:"order_type,omitempty"`
	Status       string          `json:"status,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}
