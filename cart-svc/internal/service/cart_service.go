package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"restaurant-client/cart-svc/internal/backend"
	"restaurant-client/cart-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type CartState string

const (
	CartEmpty     CartState = "empty"
	CartLoading   CartState = "loading"
	CartPopulated CartState = "populated"
	CartError     CartState = "error"
)

type SwitchPolicy string

const (
	SwitchAutoClear SwitchPolicy = "auto_clear"
	SwitchReject    SwitchPolicy = "reject"
)

func ParseSwitchPolicy(raw string) (SwitchPolicy, bool) {
	switch policy := SwitchPolicy(strings.ToLower(strings.TrimSpace(raw))); policy {
	case SwitchAutoClear, SwitchReject:
		return policy, true
	case "":
		return SwitchAutoClear, true
	}
	return "", false
}

type AddItemInput struct {
	MenuItemID   int `json:"menu_item_id" validate:"gt=0"`
	RestaurantID int `json:"restaurant_id" validate:"gt=0"`
	Quantity     int `json:"quantity" validate:"gte=0"`
}

type CartSnapshot struct {
	UserID       int64             `json:"user_id"`
	State        CartState         `json:"state"`
	Synced       bool              `json:"synced"`
	RestaurantID int               `json:"restaurant_id,omitempty"`
	Lines        []domain.CartLine `json:"lines"`
	Subtotal     *decimal.Decimal  `json:"subtotal,omitempty"`
	Error        string            `json:"error,omitempty"`
	Notice       string            `json:"notice,omitempty"`
	BusyLines    []int             `json:"busy_lines,omitempty"`
}

type userCart struct {
	mu           sync.Mutex
	state        CartState
	synced       bool
	restaurantID int
	lines        []domain.CartLine
	errMessage   string
	issued       uint64
	tracker      *lineTracker
}

func newUserCart() *userCart {
	return &userCart{
		state:   CartEmpty,
		tracker: newLineTracker(),
	}
}

type CartService struct {
	backend   CartBackend
	visits    VisitStore
	publisher EventPublisher
	policy    SwitchPolicy

	mu    sync.Mutex
	carts map[int64]*userCart
}

func NewCartService(backend CartBackend, visits VisitStore, publisher EventPublisher, policy SwitchPolicy) *CartService {
	if policy == "" {
		policy = SwitchAutoClear
	}
	return &CartService{
		backend:   backend,
		visits:    visits,
		publisher: publisher,
		policy:    policy,
		carts:     make(map[int64]*userCart),
	}
}

func (s *CartService) cartFor(userID int64) *userCart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		cart = newUserCart()
		s.carts[userID] = cart
	}
	return cart
}

// LoadCart fetches the server cart. Only the most recently issued load may change the
// local state; an older reply is dropped and the current snapshot is returned.
func (s *CartService) LoadCart(ctx context.Context, userID int64) (CartSnapshot, error) {
	if err := checkUser(userID); err != nil {
		return CartSnapshot{}, err
	}
	cart := s.cartFor(userID)

	err := s.reload(ctx, userID, cart)
	if errors.Is(err, ErrStaleResponse) {
		err = nil
	}
	return cart.snapshot(userID), err
}

func (s *CartService) reload(ctx context.Context, userID int64, cart *userCart) error {
	cart.mu.Lock()
	cart.issued++
	seq := cart.issued
	previous := cart.state
	cart.state = CartLoading
	cart.mu.Unlock()

	payload, err := s.backend.GetCart(ctx, userID)

	cart.mu.Lock()
	defer cart.mu.Unlock()

	if seq != cart.issued {
		log.Printf("[CART] user %d: dropping cart reply #%d, #%d is newer", userID, seq, cart.issued)
		return ErrStaleResponse
	}
	if err != nil {
		if backend.IsCanceled(err) {
			cart.state = previous
			return err
		}
		cart.fail(backend.Message(err))
		return err
	}

	switch payload.Kind {
	case backend.CartLines:
		cart.populate(userID, payload.Lines)
	case backend.CartEmptyMarker:
		cart.reset()
	default:
		cart.fail(payload.Message)
		return &backend.ServerError{Op: "cart.get", StatusCode: http.StatusBadGateway, Message: payload.Message}
	}
	cart.synced = true
	return nil
}

func (s *CartService) refresh(ctx context.Context, userID int64, cart *userCart) {
	if err := s.reload(ctx, userID, cart); err != nil && !errors.Is(err, ErrStaleResponse) {
		log.Printf("ERROR: user %d: reload after cart change: %v", userID, err)
	}
}

// AddItem adds quantity (default 1) of a menu item. A cart never mixes restaurants:
// under SwitchAutoClear the old cart is cleared first and put back if the add fails,
// under SwitchReject ErrRestaurantMismatch is returned and nothing is sent.
func (s *CartService) AddItem(ctx context.Context, userID int64, input AddItemInput) (CartSnapshot, error) {
	if err := checkUser(userID); err != nil {
		return CartSnapshot{}, err
	}
	if err := validateInput(input); err != nil {
		return CartSnapshot{}, err
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	cart := s.cartFor(userID)

	cart.mu.Lock()
	synced := cart.synced
	cart.mu.Unlock()
	if !synced {
		if err := s.reload(ctx, userID, cart); err != nil && !errors.Is(err, ErrStaleResponse) {
			return cart.snapshot(userID), err
		}
	}

	switched, err := s.ensureRestaurant(ctx, userID, cart, input.RestaurantID)
	if err != nil {
		return cart.snapshot(userID), err
	}

	addCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	key := input.MenuItemID
	cart.mu.Lock()
	token := cart.tracker.begin(key)
	cart.tracker.trackAdd(key, token, cancel)
	cart.mu.Unlock()

	err = s.backend.AddToCart(addCtx, userID, domain.AddToCartRequest{
		MenuItemID:   input.MenuItemID,
		Quantity:     input.Quantity,
		RestaurantID: input.RestaurantID,
	})

	cart.mu.Lock()
	cart.tracker.untrackAdd(key, token)
	cart.mu.Unlock()

	if err != nil {
		log.Printf("ERROR: user %d: add item %d: %v", userID, key, err)
		notice := ""
		if switched != nil {
			notice = s.restore(ctx, userID, cart, switched)
		}
		cart.finish(key, token)
		snapshot := cart.snapshot(userID)
		snapshot.Notice = notice
		return snapshot, err
	}

	s.rememberRestaurant(ctx, userID, input.RestaurantID)
	s.refresh(ctx, userID, cart)
	cart.finish(key, token)

	snapshot := cart.snapshot(userID)
	if switched != nil {
		s.publish(ctx, domain.CartEvent{
			Type:         domain.EventRestaurantSwitched,
			UserID:       userID,
			RestaurantID: input.RestaurantID,
			PreviousID:   switched.restaurantID,
		})
		snapshot.Notice = switched.notice(input.RestaurantID)
	}
	return snapshot, nil
}

type clearedCart struct {
	restaurantID int
	lines        []domain.CartLine
}

func (c *clearedCart) notice(restaurantID int) string {
	if c.restaurantID == 0 {
		return fmt.Sprintf("Your cart was cleared before adding items from restaurant %d.", restaurantID)
	}
	return fmt.Sprintf("Your cart from restaurant %d was cleared to add items from restaurant %d.", c.restaurantID, restaurantID)
}

func (s *CartService) ensureRestaurant(ctx context.Context, userID int64, cart *userCart, restaurantID int) (*clearedCart, error) {
	cart.mu.Lock()
	current := cart.restaurantID
	lines := append([]domain.CartLine(nil), cart.lines...)
	synced := cart.synced
	cart.mu.Unlock()

	if synced && (len(lines) == 0 || current == restaurantID) {
		return nil, nil
	}
	if s.policy == SwitchReject {
		switch {
		case len(lines) == 0:
			return nil, fmt.Errorf("%w: cart contents are not loaded, item is from restaurant %d", ErrRestaurantMismatch, restaurantID)
		case current == 0:
			return nil, fmt.Errorf("%w: cart holds items from several restaurants", ErrRestaurantMismatch)
		}
		return nil, fmt.Errorf("%w: cart holds restaurant %d, item is from restaurant %d", ErrRestaurantMismatch, current, restaurantID)
	}

	if err := s.clear(ctx, userID, cart); err != nil {
		return nil, err
	}
	log.Printf("[CART] user %d: switched restaurant %d -> %d, cart cleared", userID, current, restaurantID)
	return &clearedCart{restaurantID: current, lines: lines}, nil
}

func (s *CartService) restore(ctx context.Context, userID int64, cart *userCart, cleared *clearedCart) string {
	restored := true
	for _, line := range cleared.lines {
		err := s.backend.AddToCart(ctx, userID, domain.AddToCartRequest{
			MenuItemID:   line.MenuItemID,
			Quantity:     line.Quantity,
			RestaurantID: line.RestaurantID,
		})
		if err != nil {
			log.Printf("ERROR: user %d: restore item %d after failed switch: %v", userID, line.MenuItemID, err)
			restored = false
			break
		}
	}
	s.refresh(ctx, userID, cart)

	if restored {
		log.Printf("[CART] user %d: add failed, cart of restaurant %d restored", userID, cleared.restaurantID)
		return ""
	}
	if cleared.restaurantID == 0 {
		return "Your previous cart was cleared and could not be restored."
	}
	return fmt.Sprintf("Your cart from restaurant %d was cleared and could not be restored.", cleared.restaurantID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID int64, menuItemID int) (CartSnapshot, error) {
	if err := checkUser(userID); err != nil {
		return CartSnapshot{}, err
	}
	if err := checkPositive("menu_item_id", menuItemID); err != nil {
		return CartSnapshot{}, err
	}
	cart := s.cartFor(userID)

	cart.mu.Lock()
	if cart.tracker.cancelAdd(menuItemID) {
		log.Printf("[CART] user %d: add of item %d superseded by removal", userID, menuItemID)
	}
	token := cart.tracker.begin(menuItemID)
	cart.mu.Unlock()

	if err := s.backend.RemoveFromCart(ctx, userID, menuItemID); err != nil {
		cart.finish(menuItemID, token)
		log.Printf("ERROR: user %d: remove item %d: %v", userID, menuItemID, err)
		return cart.snapshot(userID), err
	}

	s.refresh(ctx, userID, cart)
	cart.finish(menuItemID, token)
	return cart.snapshot(userID), nil
}

func (s *CartService) ClearCart(ctx context.Context, userID int64) (CartSnapshot, error) {
	if err := checkUser(userID); err != nil {
		return CartSnapshot{}, err
	}
	cart := s.cartFor(userID)

	if err := s.clear(ctx, userID, cart); err != nil {
		return cart.snapshot(userID), err
	}
	s.publish(ctx, domain.CartEvent{Type: domain.EventCartCleared, UserID: userID})
	return cart.snapshot(userID), nil
}

func (s *CartService) clear(ctx context.Context, userID int64, cart *userCart) error {
	if err := s.backend.ClearCart(ctx, userID); err != nil {
		log.Printf("ERROR: user %d: clear cart: %v", userID, err)
		return err
	}

	cart.mu.Lock()
	cart.issued++
	cart.reset()
	cart.synced = true
	cart.mu.Unlock()
	return nil
}

func (s *CartService) SubmitOrder(ctx context.Context, userID int64, mode domain.FulfillmentMode) (*domain.OrderCreated, error) {
	if err := checkUser(userID); err != nil {
		return nil, err
	}
	parsed, ok := domain.ParseFulfillmentMode(string(mode))
	if !ok {
		return nil, &ValidationError{Field: "order_type", Value: mode, Reason: "must be one of dine_in, delivery, pickup"}
	}
	cart := s.cartFor(userID)

	cart.mu.Lock()
	lines := append([]domain.CartLine(nil), cart.lines...)
	cart.mu.Unlock()

	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	restaurantID, ok := commonRestaurant(lines)
	if !ok {
		return nil, ErrMissingRestaurant
	}

	created, err := s.backend.CreateOrder(ctx, userID, domain.CreateOrderRequest{
		RestaurantID: restaurantID,
		OrderType:    parsed,
	})
	if err != nil {
		log.Printf("ERROR: user %d: submit order for restaurant %d: %v", userID, restaurantID, err)
		return nil, err
	}

	cart.mu.Lock()
	cart.issued++
	cart.reset()
	cart.synced = true
	cart.mu.Unlock()

	log.Printf("[CART] user %d: order %d submitted (%s, restaurant %d)", userID, created.OrderID, parsed, restaurantID)
	s.publish(ctx, domain.CartEvent{
		Type:         domain.EventOrderSubmitted,
		UserID:       userID,
		RestaurantID: restaurantID,
		OrderID:      created.OrderID,
		OrderType:    parsed,
	})
	return created, nil
}

func (s *CartService) EnterMenu(ctx context.Context, userID int64, restaurantID int) ([]domain.MenuItem, error) {
	if err := checkUser(userID); err != nil {
		return nil, err
	}
	if err := checkPositive("restaurant_id", restaurantID); err != nil {
		return nil, err
	}

	previous := ""
	if s.visits != nil {
		last, err := s.visits.LastRestaurant(ctx, userID)
		if err != nil {
			log.Printf("ERROR: user %d: read last visited restaurant: %v", userID, err)
		}
		previous = last
	}

	target := strconv.Itoa(restaurantID)
	if previous != "" && previous != target {
		if err := s.clear(ctx, userID, s.cartFor(userID)); err != nil {
			return nil, err
		}
		previousID, _ := strconv.Atoi(previous)
		log.Printf("[CART] user %d: entered restaurant %d after %s, cart cleared", userID, restaurantID, previous)
		s.publish(ctx, domain.CartEvent{
			Type:         domain.EventRestaurantSwitched,
			UserID:       userID,
			RestaurantID: restaurantID,
			PreviousID:   previousID,
		})
	}
	s.rememberRestaurant(ctx, userID, restaurantID)

	return s.backend.GetMenu(ctx, restaurantID)
}

func (s *CartService) rememberRestaurant(ctx context.Context, userID int64, restaurantID int) {
	if s.visits == nil {
		return
	}
	if err := s.visits.SetLastRestaurant(ctx, userID, strconv.Itoa(restaurantID)); err != nil {
		log.Printf("ERROR: user %d: save last visited restaurant %d: %v", userID, restaurantID, err)
	}
}

func (s *CartService) Snapshot(userID int64) CartSnapshot {
	return s.cartFor(userID).snapshot(userID)
}

func (s *CartService) LineBusy(userID int64, menuItemID int) bool {
	cart := s.cartFor(userID)
	cart.mu.Lock()
	defer cart.mu.Unlock()
	return cart.tracker.busy(menuItemID)
}

func (s *CartService) publish(ctx context.Context, event domain.CartEvent) {
	if s.publisher == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if err := s.publisher.PublishCartEvent(ctx, event); err != nil {
		log.Printf("ERROR: publish %s event for user %d: %v", event.Type, event.UserID, err)
	}
}

func (c *userCart) populate(userID int64, lines []domain.CartLine) {
	if len(lines) == 0 {
		c.reset()
		return
	}
	c.lines = lines
	c.errMessage = ""
	c.state = CartPopulated

	restaurantID, ok := commonRestaurant(lines)
	if !ok {
		log.Printf("ERROR: user %d: cart mixes restaurants or lacks restaurant_id", userID)
	}
	c.restaurantID = restaurantID
}

func (c *userCart) reset() {
	c.state = CartEmpty
	c.lines = nil
	c.restaurantID = 0
	c.errMessage = ""
}

func (c *userCart) fail(message string) {
	c.state = CartError
	c.synced = false
	c.lines = nil
	c.restaurantID = 0
	c.errMessage = message
}

func (c *userCart) finish(key int, token uint64) {
	c.mu.Lock()
	c.tracker.finish(key, token)
	c.mu.Unlock()
}

func (c *userCart) snapshot(userID int64) CartSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]domain.CartLine, len(c.lines))
	copy(lines, c.lines)
	return CartSnapshot{
		UserID:       userID,
		State:        c.state,
		Synced:       c.synced,
		RestaurantID: c.restaurantID,
		Lines:        lines,
		Subtotal:     subtotal(lines),
		Error:        c.errMessage,
		BusyLines:    c.tracker.busyKeys(),
	}
}

func commonRestaurant(lines []domain.CartLine) (int, bool) {
	if len(lines) == 0 {
		return 0, false
	}
	id := lines[0].RestaurantID
	if id <= 0 {
		return 0, false
	}
	for _, line := range lines[1:] {
		if line.RestaurantID != id {
			return 0, false
		}
	}
	return id, true
}

func subtotal(lines []domain.CartLine) *decimal.Decimal {
	if len(lines) == 0 {
		return nil
	}
	total := decimal.Zero
	for _, line := range lines {
		if line.ItemPrice == nil {
			return nil
		}
		total = total.Add(line.ItemPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return &total
}
