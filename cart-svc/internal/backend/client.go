package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"restaurant-client/cart-svc/internal/domain"

	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	DefaultTimeout  = 10 * time.Second
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	config Config
	client HTTPClient
}

func NewClient(config Config, client HTTPClient) *Client {
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Client{
		config: config,
		client: client,
	}
}

func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

func (c *Client) send(ctx context.Context, op, method, endpoint string, payload interface{}) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: encode payload: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+endpoint, body)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, op, requestID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(ctx, op, requestID, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		serverErr := newServerError(op, resp.StatusCode, data)
		log.Printf("ERROR: %s %s -> %d (request %s): %s", method, endpoint, resp.StatusCode, requestID, serverErr.Message)
		return nil, serverErr
	}
	return data, nil
}

func (c *Client) transportError(ctx context.Context, op, requestID string, err error) error {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		log.Printf("ERROR: %s timed out after %s (request %s)", op, c.config.Timeout, requestID)
		return &NetworkTimeoutError{Op: op, Timeout: c.config.Timeout}
	case errors.Is(ctx.Err(), context.Canceled):
		return fmt.Errorf("%s: %w", op, ErrRequestCanceled)
	}
	log.Printf("ERROR: %s failed (request %s): %v", op, requestID, err)
	return &NetworkError{Op: op, Err: err}
}

func (c *Client) do(ctx context.Context, op, method, endpoint string, payload, out interface{}) error {
	data, err := c.send(ctx, op, method, endpoint, payload)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &ServerError{Op: op, StatusCode: http.StatusBadGateway, Message: "malformed response from " + op}
	}
	return nil
}

func decodeList[T any](op string, data []byte, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	var items []T
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, &ServerError{Op: op, StatusCode: http.StatusBadGateway, Message: "malformed response from " + op}
		}
		return items, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, &ServerError{Op: op, StatusCode: http.StatusBadGateway, Message: "malformed response from " + op}
	}
	raw, ok := wrapped[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return []T{}, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &ServerError{Op: op, StatusCode: http.StatusBadGateway, Message: "malformed response from " + op}
	}
	return items, nil
}

func (c *Client) GetCart(ctx context.Context, userID int64) (CartPayload, error) {
	data, err := c.send(ctx, "cart.get", http.MethodGet, fmt.Sprintf("/cart/%d", userID), nil)
	if err != nil {
		return CartPayload{}, err
	}
	return ParseCartPayload(data), nil
}

func (c *Client) AddToCart(ctx context.Context, userID int64, req domain.AddToCartRequest) error {
	return c.do(ctx, "cart.add", http.MethodPost, fmt.Sprintf("/cart/%d", userID), req, nil)
}

func (c *Client) RemoveFromCart(ctx context.Context, userID int64, menuItemID int) error {
	return c.do(ctx, "cart.remove", http.MethodDelete, fmt.Sprintf("/cart/%d/%d", userID, menuItemID), nil, nil)
}

func (c *Client) ClearCart(ctx context.Context, userID int64) error {
	return c.do(ctx, "cart.clear", http.MethodDelete, fmt.Sprintf("/cart/%d", userID), nil, nil)
}

func (c *Client) GetMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	op := "menu.get"
	data, err := c.send(ctx, op, http.MethodGet, fmt.Sprintf("/restaurants/%d/menu", restaurantID), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.MenuItem](op, data, "menu")
}

func (c *Client) CreateOrder(ctx context.Context, userID int64, req domain.CreateOrderRequest) (*domain.OrderCreated, error) {
	var created domain.OrderCreated
	if err := c.do(ctx, "orders.create", http.MethodPost, fmt.Sprintf("/orders/%d", userID), req, &created); err != nil {
		return nil, err
	}
	if created.OrderID == 0 && created.Order != nil {
		created.OrderID = created.Order.ID
	}
	return &created, nil
}

func (c *Client) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	op := "orders.list"
	data, err := c.send(ctx, op, http.MethodGet, fmt.Sprintf("/orders/%d", userID), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Order](op, data, "orders")
}

func (c *Client) UpdateOrderStatus(ctx context.Context, userID int64, orderID int, status domain.OrderStatus) (*domain.Order, error) {
	var reply struct {
		Order *domain.Order `json:"order"`
	}
	endpoint := fmt.Sprintf("/orders/%d/%d", userID, orderID)
	if err := c.do(ctx, "orders.status", http.MethodPut, endpoint, domain.OrderStatusRequest{Status: status}, &reply); err != nil {
		return nil, err
	}
	return reply.Order, nil
}

func (c *Client) AddOrderItem(ctx context.Context, userID int64, orderID int, req domain.OrderItemRequest) (*domain.OrderItem, error) {
	var reply struct {
		OrderItem *domain.OrderItem `json:"order_item"`
	}
	endpoint := fmt.Sprintf("/orders/%d/%d/items", userID, orderID)
	if err := c.do(ctx, "orders.items.add", http.MethodPost, endpoint, req, &reply); err != nil {
		return nil, err
	}
	if reply.OrderItem == nil {
		return &domain.OrderItem{MenuItemID: req.MenuItemID, Quantity: req.Quantity}, nil
	}
	return reply.OrderItem, nil
}

func (c *Client) RemoveOrderItem(ctx context.Context, userID int64, orderID, menuItemID int) error {
	endpoint := fmt.Sprintf("/orders/%d/%d/items/%d", userID, orderID, menuItemID)
	return c.do(ctx, "orders.items.remove", http.MethodDelete, endpoint, nil, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, userID int64, orderID int) error {
	return c.do(ctx, "orders.delete", http.MethodDelete, fmt.Sprintf("/orders/%d/%d", userID, orderID), nil, nil)
}

func (c *Client) AvailableTables(ctx context.Context, restaurantID int, start *time.Time) ([]domain.Table, error) {
	op := "tables.available"
	endpoint := fmt.Sprintf("/restaurants/%d/tables/available", restaurantID)
	if start != nil {
		query := url.Values{}
		query.Set("reservation_start", start.UTC().Format(time.RFC3339))
		endpoint += "?" + query.Encode()
	}
	data, err := c.send(ctx, op, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Table](op, data, "tables")
}

func (c *Client) CreateReservation(ctx context.Context, restaurantID int, userID int64, req domain.BookingRequest) (*domain.Reservation, error) {
	var reply struct {
		Message     string              `json:"message"`
		Reservation *domain.Reservation `json:"reservation"`
	}
	endpoint := fmt.Sprintf("/restaurants/%d/%d/tables/booking", restaurantID, userID)
	if err := c.do(ctx, "reservations.create", http.MethodPost, endpoint, req, &reply); err != nil {
		return nil, err
	}
	if reply.Reservation == nil {
		return &domain.Reservation{RestaurantID: restaurantID, UserID: userID, TableNumber: req.TableNumber}, nil
	}
	return reply.Reservation, nil
}

func (c *Client) ListReservations(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	op := "reservations.list"
	data, err := c.send(ctx, op, http.MethodGet, fmt.Sprintf("/reservations/%d", userID), nil)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.Reservation](op, data, "reservations")
}

func (c *Client) DeleteReservation(ctx context.Context, restaurantID int, userID int64, reservationID int) error {
	endpoint := fmt.Sprintf("/restaurants/%d/%d/tables/booking/%d", restaurantID, userID, reservationID)
	return c.do(ctx, "reservations.delete", http.MethodDelete, endpoint, nil, nil)
}
