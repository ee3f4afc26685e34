package service_test

import (
	"context"
	"testing"

	"restaurant-client/cart-svc/internal/backend"
	"restaurant-client/cart-svc/internal/domain"
	"restaurant-client/cart-svc/internal/mocks"
	"restaurant-client/cart-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleOrders() []domain.Order {
	return []domain.Order{
		{ID: 1, RestaurantID: 10, Status: domain.OrderPending, Items: []domain.OrderItem{{MenuItemID: 5, Quantity: 2}}},
		{ID: 2, RestaurantID: 10, Status: domain.OrderConfirmed, Items: []domain.OrderItem{{MenuItemID: 6, Quantity: 1}}},
	}
}

func newOrderService(t *testing.T) (*service.OrderService, *mocks.OrderBackend, *mocks.EventPublisher, *mocks.QRGenerator) {
	orderBackend := mocks.NewOrderBackend(t)
	publisher := mocks.NewEventPublisher(t)
	qr := mocks.NewQRGenerator(t)
	return service.NewOrderService(orderBackend, publisher, qr), orderBackend, publisher, qr
}

func loadOrders(t *testing.T, svc *service.OrderService, orderBackend *mocks.OrderBackend) {
	t.Helper()
	orderBackend.On("ListOrders", mock.Anything, userID).Return(sampleOrders(), nil).Once()
	orders, err := svc.ListOrders(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, orders, 2)
}

func TestOrderService_SetStatus_MergesOnlyTargetOrder(t *testing.T) {
	tests := []struct {
		name     string
		echoed   *domain.Order
		expected domain.OrderStatus
	}{
		{name: "acknowledged_only", echoed: nil, expected: domain.OrderCompleted},
		{name: "server_echo_wins", echoed: &domain.Order{ID: 1, Status: domain.OrderConfirmed}, expected: domain.OrderConfirmed},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, orderBackend, publisher, _ := newOrderService(t)
			loadOrders(t, svc, orderBackend)

			orderBackend.On("UpdateOrderStatus", mock.Anything, userID, 1, domain.OrderCompleted).Return(testCase.echoed, nil).Once()
			publisher.On("PublishCartEvent", mock.Anything, eventOfType(domain.EventOrderStatusChanged)).Return(nil).Once()

			order, err := svc.SetStatus(context.Background(), userID, 1, "COMPLETED")
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, order.Status)
			assert.Len(t, order.Items, 1)

			assert.False(t, svc.OrderBusy(userID, 1))
		})
	}
}

func TestOrderService_SetStatus_InvalidStatus(t *testing.T) {
	svc, _, _, _ := newOrderService(t)

	_, err := svc.SetStatus(context.Background(), userID, 1, "shipped")
	assert.True(t, service.IsValidation(err))
}

func TestOrderService_SetStatus_ServerError(t *testing.T) {
	svc, orderBackend, _, _ := newOrderService(t)
	loadOrders(t, svc, orderBackend)

	orderBackend.On("UpdateOrderStatus", mock.Anything, userID, 2, domain.OrderCancelled).
		Return(nil, &backend.ServerError{Op: "orders.status", StatusCode: 404, Message: "order not found"}).Once()

	_, err := svc.SetStatus(context.Background(), userID, 2, domain.OrderCancelled)
	assert.EqualError(t, err, "order not found")
	assert.False(t, svc.OrderBusy(userID, 2))
}

func TestOrderService_AddItem(t *testing.T) {
	svc, orderBackend, _, _ := newOrderService(t)
	loadOrders(t, svc, orderBackend)

	orderBackend.On("AddOrderItem", mock.Anything, userID, 2, domain.OrderItemRequest{MenuItemID: 9, Quantity: 3}).
		Return(&domain.OrderItem{ID: 77, MenuItemID: 9, Quantity: 3}, nil).Once()

	order, err := svc.AddItem(context.Background(), userID, 2, 9, 3)
	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 77, order.Items[1].ID)
}

func TestOrderService_AddItem_ReplacesExistingLine(t *testing.T) {
	svc, orderBackend, _, _ := newOrderService(t)
	loadOrders(t, svc, orderBackend)

	orderBackend.On("AddOrderItem", mock.Anything, userID, 1, domain.OrderItemRequest{MenuItemID: 5, Quantity: 1}).
		Return(&domain.OrderItem{MenuItemID: 5, Quantity: 3}, nil).Once()

	order, err := svc.AddItem(context.Background(), userID, 1, 5, 0)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
}

func TestOrderService_RemoveItem(t *testing.T) {
	svc, orderBackend, _, _ := newOrderService(t)
	loadOrders(t, svc, orderBackend)

	orderBackend.On("RemoveOrderItem", mock.Anything, userID, 1, 5).Return(nil).Once()

	order, err := svc.RemoveItem(context.Background(), userID, 1, 5)
	require.NoError(t, err)
	assert.Empty(t, order.Items)
	assert.Equal(t, 1, order.ID)
}

func TestOrderService_UncachedOrderNotAddedWithoutEcho(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(svc *service.OrderService, orderBackend *mocks.OrderBackend, publisher *mocks.EventPublisher) (domain.Order, error)
		cached int
	}{
		{
			name: "add_item",
			mutate: func(svc *service.OrderService, orderBackend *mocks.OrderBackend, _ *mocks.EventPublisher) (domain.Order, error) {
				orderBackend.On("AddOrderItem", mock.Anything, userID, 9, domain.OrderItemRequest{MenuItemID: 4, Quantity: 1}).
					Return(&domain.OrderItem{MenuItemID: 4, Quantity: 1}, nil).Once()
				return svc.AddItem(context.Background(), userID, 9, 4, 1)
			},
			cached: 2,
		},
		{
			name: "remove_item",
			mutate: func(svc *service.OrderService, orderBackend *mocks.OrderBackend, _ *mocks.EventPublisher) (domain.Order, error) {
				orderBackend.On("RemoveOrderItem", mock.Anything, userID, 9, 4).Return(nil).Once()
				return svc.RemoveItem(context.Background(), userID, 9, 4)
			},
			cached: 2,
		},
		{
			name: "status_without_echo",
			mutate: func(svc *service.OrderService, orderBackend *mocks.OrderBackend, publisher *mocks.EventPublisher) (domain.Order, error) {
				orderBackend.On("UpdateOrderStatus", mock.Anything, userID, 9, domain.OrderConfirmed).Return(nil, nil).Once()
				publisher.On("PublishCartEvent", mock.Anything, eventOfType(domain.EventOrderStatusChanged)).Return(nil).Once()
				return svc.SetStatus(context.Background(), userID, 9, domain.OrderConfirmed)
			},
			cached: 2,
		},
		{
			name: "status_with_echo",
			mutate: func(svc *service.OrderService, orderBackend *mocks.OrderBackend, publisher *mocks.EventPublisher) (domain.Order, error) {
				orderBackend.On("UpdateOrderStatus", mock.Anything, userID, 9, domain.OrderConfirmed).
					Return(&domain.Order{ID: 9, RestaurantID: 10, Status: domain.OrderConfirmed}, nil).Once()
				publisher.On("PublishCartEvent", mock.Anything, eventOfType(domain.EventOrderStatusChanged)).Return(nil).Once()
				return svc.SetStatus(context.Background(), userID, 9, domain.OrderConfirmed)
			},
			cached: 3,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc, orderBackend, publisher, _ := newOrderService(t)
			loadOrders(t, svc, orderBackend)

			order, err := testCase.mutate(svc, orderBackend, publisher)
			require.NoError(t, err)
			assert.Equal(t, 9, order.ID)
			assert.Len(t, svc.Orders(userID), testCase.cached)
		})
	}
}

func TestOrderService_MutationsValidateInput(t *testing.T) {
	svc, _, _, _ := newOrderService(t)
	ctx := context.Background()

	_, err := svc.AddItem(ctx, userID, 0, 5, 1)
	assert.True(t, service.IsValidation(err))

	_, err = svc.AddItem(ctx, userID, 1, 5, -1)
	assert.True(t, service.IsValidation(err))

	_, err = svc.RemoveItem(ctx, userID, 1, 0)
	assert.True(t, service.IsValidation(err))

	err = svc.DeleteOrder(ctx, 0, 1)
	assert.True(t, service.IsValidation(err))
}

func TestOrderService_DeleteOrder(t *testing.T) {
	svc, orderBackend, _, _ := newOrderService(t)
	loadOrders(t, svc, orderBackend)

	orderBackend.On("DeleteOrder", mock.Anything, userID, 1).Return(nil).Once()
	require.NoError(t, svc.DeleteOrder(context.Background(), userID, 1))

	orderBackend.On("ListOrders", mock.Anything, userID).Return([]domain.Order{sampleOrders()[1]}, nil).Once()
	orders, err := svc.ListOrders(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 2, orders[0].ID)
}

func TestOrderService_Receipt(t *testing.T) {
	svc, _, _, qr := newOrderService(t)

	qr.On("Generate", 501).Return([]byte("png"), nil).Once()

	image, err := svc.Receipt(501)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), image)

	_, err = service.NewOrderService(nil, nil, nil).Receipt(501)
	assert.ErrorIs(t, err, service.ErrReceiptUnavailable)
}

func TestReceiptQRGenerator(t *testing.T) {
	image, err := service.ReceiptQRGenerator{BaseURL: "https://example.org/"}.Generate(501)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), image[:4])
}
