package service

import (
	"context"
	"log"
	"sync"
	"time"

	"restaurant-client/cart-svc/internal/domain"
)

type QRGenerator interface {
	Generate(orderID int) ([]byte, error)
}

type orderBook struct {
	mu      sync.Mutex
	orders  []domain.Order
	issued  uint64
	tracker *lineTracker
}

type OrderService struct {
	backend   OrderBackend
	publisher EventPublisher
	qr        QRGenerator

	mu    sync.Mutex
	books map[int64]*orderBook
}

func NewOrderService(backend OrderBackend, publisher EventPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		backend:   backend,
		publisher: publisher,
		qr:        qr,
		books:     make(map[int64]*orderBook),
	}
}

func (s *OrderService) bookFor(userID int64) *orderBook {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[userID]
	if !ok {
		book = &orderBook{tracker: newLineTracker()}
		s.books[userID] = book
	}
	return book
}

func (s *OrderService) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	if err := checkUser(userID); err != nil {
		return nil, err
	}
	book := s.bookFor(userID)

	book.mu.Lock()
	book.issued++
	seq := book.issued
	book.mu.Unlock()

	orders, err := s.backend.ListOrders(ctx, userID)

	book.mu.Lock()
	defer book.mu.Unlock()
	if err != nil {
		log.Printf("ERROR: user %d: list orders: %v", userID, err)
		return nil, err
	}
	if seq == book.issued {
		book.orders = orders
	} else {
		log.Printf("[ORDERS] user %d: dropping order list #%d, #%d is newer", userID, seq, book.issued)
	}
	return copyOrders(book.orders), nil
}

func (s *OrderService) SetStatus(ctx context.Context, userID int64, orderID int, status domain.OrderStatus) (domain.Order, error) {
	if err := checkUser(userID); err != nil {
		return domain.Order{}, err
	}
	if err := checkPositive("order_id", orderID); err != nil {
		return domain.Order{}, err
	}
	parsed, ok := domain.ParseOrderStatus(string(status))
	if !ok {
		return domain.Order{}, &ValidationError{Field: "status", Value: status, Reason: "must be one of pending, confirmed, completed, cancelled"}
	}

	book := s.bookFor(userID)
	token := book.begin(orderID)
	echoed, err := s.backend.UpdateOrderStatus(ctx, userID, orderID, parsed)
	if err != nil {
		book.finish(orderID, token)
		log.Printf("ERROR: user %d: set order %d status %s: %v", userID, orderID, parsed, err)
		return domain.Order{}, err
	}

	order := book.merge(orderID, echoed, func(order *domain.Order) {
		order.Status = parsed
		if echoed != nil && echoed.Status != "" {
			order.Status = echoed.Status
		}
	})
	book.finish(orderID, token)

	s.publish(ctx, domain.CartEvent{
		Type:         domain.EventOrderStatusChanged,
		UserID:       userID,
		RestaurantID: order.RestaurantID,
		OrderID:      orderID,
		Status:       string(order.Status),
	})
	return order, nil
}

func (s *OrderService) AddItem(ctx context.Context, userID int64, orderID, menuItemID, quantity int) (domain.Order, error) {
	if err := checkUser(userID); err != nil {
		return domain.Order{}, err
	}
	if err := checkPositive("order_id", orderID); err != nil {
		return domain.Order{}, err
	}
	if err := checkPositive("menu_item_id", menuItemID); err != nil {
		return domain.Order{}, err
	}
	if quantity < 0 {
		return domain.Order{}, &ValidationError{Field: "quantity", Value: quantity, Reason: "must be at least 0"}
	}
	if quantity == 0 {
		quantity = 1
	}

	book := s.bookFor(userID)
	token := book.begin(orderID)
	item, err := s.backend.AddOrderItem(ctx, userID, orderID, domain.OrderItemRequest{MenuItemID: menuItemID, Quantity: quantity})
	if err != nil {
		book.finish(orderID, token)
		log.Printf("ERROR: user %d: add item %d to order %d: %v", userID, menuItemID, orderID, err)
		return domain.Order{}, err
	}
	if item == nil {
		item = &domain.OrderItem{MenuItemID: menuItemID, Quantity: quantity}
	}

	order := book.merge(orderID, nil, func(order *domain.Order) {
		for i := range order.Items {
			if order.Items[i].MenuItemID == item.MenuItemID {
				order.Items[i] = *item
				return
			}
		}
		order.Items = append(order.Items, *item)
	})
	book.finish(orderID, token)
	return order, nil
}

func (s *OrderService) RemoveItem(ctx context.Context, userID int64, orderID, menuItemID int) (domain.Order, error) {
	if err := checkUser(userID); err != nil {
		return domain.Order{}, err
	}
	if err := checkPositive("order_id", orderID); err != nil {
		return domain.Order{}, err
	}
	if err := checkPositive("menu_item_id", menuItemID); err != nil {
		return domain.Order{}, err
	}

	book := s.bookFor(userID)
	token := book.begin(orderID)
	if err := s.backend.RemoveOrderItem(ctx, userID, orderID, menuItemID); err != nil {
		book.finish(orderID, token)
		log.Printf("ERROR: user %d: remove item %d from order %d: %v", userID, menuItemID, orderID, err)
		return domain.Order{}, err
	}

	order := book.merge(orderID, nil, func(order *domain.Order) {
		kept := order.Items[:0]
		for _, item := range order.Items {
			if item.MenuItemID != menuItemID {
				kept = append(kept, item)
			}
		}
		order.Items = kept
	})
	book.finish(orderID, token)
	return order, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, userID int64, orderID int) error {
	if err := checkUser(userID); err != nil {
		return err
	}
	if err := checkPositive("order_id", orderID); err != nil {
		return err
	}

	book := s.bookFor(userID)
	token := book.begin(orderID)
	defer book.finish(orderID, token)

	if err := s.backend.DeleteOrder(ctx, userID, orderID); err != nil {
		log.Printf("ERROR: user %d: delete order %d: %v", userID, orderID, err)
		return err
	}

	book.mu.Lock()
	kept := book.orders[:0]
	for _, order := range book.orders {
		if order.ID != orderID {
			kept = append(kept, order)
		}
	}
	book.orders = kept
	book.mu.Unlock()
	return nil
}

func (s *OrderService) Orders(userID int64) []domain.Order {
	book := s.bookFor(userID)
	book.mu.Lock()
	defer book.mu.Unlock()
	return copyOrders(book.orders)
}

func (s *OrderService) OrderBusy(userID int64, orderID int) bool {
	book := s.bookFor(userID)
	book.mu.Lock()
	defer book.mu.Unlock()
	return book.tracker.busy(orderID)
}

func (s *OrderService) Receipt(orderID int) ([]byte, error) {
	if err := checkPositive("order_id", orderID); err != nil {
		return nil, err
	}
	if s.qr == nil {
		return nil, ErrReceiptUnavailable
	}
	return s.qr.Generate(orderID)
}

func (s *OrderService) publish(ctx context.Context, event domain.CartEvent) {
	if s.publisher == nil {
		return
	}
	event.Timestamp = time.Now().UTC()
	if err := s.publisher.PublishCartEvent(ctx, event); err != nil {
		log.Printf("ERROR: publish %s event for user %d: %v", event.Type, event.UserID, err)
	}
}

func (b *orderBook) begin(orderID int) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.issued++
	return b.tracker.begin(orderID)
}

func (b *orderBook) finish(orderID int, token uint64) {
	b.mu.Lock()
	b.tracker.finish(orderID, token)
	b.mu.Unlock()
}

func (b *orderBook) merge(orderID int, echoed *domain.Order, change func(*domain.Order)) domain.Order {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.orders {
		if b.orders[i].ID == orderID {
			change(&b.orders[i])
			return copyOrder(b.orders[i])
		}
	}

	if echoed == nil {
		detached := domain.Order{ID: orderID}
		change(&detached)
		return detached
	}
	seed := copyOrder(*echoed)
	seed.ID = orderID
	change(&seed)
	b.orders = append(b.orders, seed)
	return copyOrder(seed)
}

func copyOrders(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, len(orders))
	for i, order := range orders {
		out[i] = copyOrder(order)
	}
	return out
}

func copyOrder(order domain.Order) domain.Order {
	order.Items = append([]domain.OrderItem(nil), order.Items...)
	return order
}
