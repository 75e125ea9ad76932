package services_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"
)

type orderFixture struct {
	products  *repositories.MockProductRepository
	orders    *repositories.MockOrderRepository
	publisher *recordingPublisher
	notifier  *recordingNotifier
	service   *services.OrderService
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	f := &orderFixture{
		products:  repositories.NewMockProductRepository(),
		orders:    repositories.NewMockOrderRepository(),
		publisher: &recordingPublisher{},
		notifier:  &recordingNotifier{},
	}
	f.service = services.NewOrderService(f.orders, f.products, f.publisher, f.notifier)

	require.NoError(t, f.products.Create(&models.Product{ID: "1", Name: "Wireless Headphones", Price: decimal.RequireFromString("99.99"), Stock: 3}))
	require.NoError(t, f.products.Create(&models.Product{ID: "2", Name: "Desk Lamp", Price: decimal.NewFromInt(20), Stock: 10}))
	_, err := f.products.Mask("1", "AMZN-FNSKU-001")
	require.NoError(t, err)
	return f
}

func TestOrderService_CreateOrder(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.service.CreateOrder(models.AmazonOrder{AmazonOrderID: "AMZN-1", MaskedProductID: "m1", Quantity: 2, Status: models.OrderStatusProcessed})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusNew, order.Status, "new orders always start as new")
	assert.False(t, order.OrderDate.IsZero())

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, services.EventOrderCreated, f.publisher.events[0].routingKey)
	var body map[string]any
	require.NoError(t, json.Unmarshal(f.publisher.events[0].body, &body))
	assert.Equal(t, "1", body["real_product_id"])

	require.Len(t, f.notifier.notes, 1)
	assert.Equal(t, models.NotificationAmazonOrder, f.notifier.notes[0].kind)
	assert.Equal(t, "Order #AMZN-1 for Generic Wireless Headphones (2 units)", f.notifier.notes[0].message)

	stored, err := f.service.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, "AMZN-1", stored.AmazonOrderID)
}

func TestOrderService_CreateOrder_Rejections(t *testing.T) {
	f := newOrderFixture(t)

	cases := []struct {
		name  string
		order models.AmazonOrder
		want  error
	}{
		{"missing amazon id", models.AmazonOrder{MaskedProductID: "m1", Quantity: 1}, services.ErrInvalidInput},
		{"zero quantity", models.AmazonOrder{AmazonOrderID: "A", MaskedProductID: "m1"}, services.ErrInvalidInput},
		{"malformed listing id", models.AmazonOrder{AmazonOrderID: "A", MaskedProductID: "1", Quantity: 1}, services.ErrInvalidInput},
		{"unknown listing", models.AmazonOrder{AmazonOrderID: "A", MaskedProductID: "m99", Quantity: 1}, repositories.ErrNotFound},
		{"unmasked product", models.AmazonOrder{AmazonOrderID: "A", MaskedProductID: "m2", Quantity: 1}, services.ErrNotMasked},
		{"over stock", models.AmazonOrder{AmazonOrderID: "A", MaskedProductID: "m1", Quantity: 4}, services.ErrInsufficientStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.CreateOrder(tc.order)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	all, err := f.service.GetAllOrders()
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, f.publisher.events)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	f := newOrderFixture(t)
	order, err := f.service.CreateOrder(models.AmazonOrder{AmazonOrderID: "AMZN-1", MaskedProductID: "m1", Quantity: 1})
	require.NoError(t, err)

	updated, err := f.service.UpdateOrderStatus(order.ID, models.OrderStatusNotified)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusNotified, updated.Status)

	_, err = f.service.UpdateOrderStatus(order.ID, "shipped")
	assert.ErrorIs(t, err, services.ErrInvalidStatus)

	_, err = f.service.UpdateOrderStatus("missing", models.OrderStatusCancelled)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestOrderService_RecentOrders(t *testing.T) {
	f := newOrderFixture(t)
	for _, id := range []string{"AMZN-1", "AMZN-2", "AMZN-3"} {
		_, err := f.service.CreateOrder(models.AmazonOrder{AmazonOrderID: id, MaskedProductID: "m1", Quantity: 1})
		require.NoError(t, err)
	}
	// An order whose listing has since disappeared keeps empty names.
	require.NoError(t, f.orders.Create(&models.AmazonOrder{AmazonOrderID: "AMZN-X", MaskedProductID: "m42", Quantity: 1}))

	recent, err := f.service.RecentOrders(2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	all, err := f.service.RecentOrders(0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	for _, o := range all {
		if o.AmazonOrderID == "AMZN-X" {
			assert.Empty(t, o.RealProductName)
			assert.Empty(t, o.MaskedProductName)
			continue
		}
		assert.Equal(t, "Wireless Headphones", o.RealProductName)
		assert.Equal(t, "Generic Wireless Headphones", o.MaskedProductName)
	}
}

func TestOrderService_HandleEvent(t *testing.T) {
	f := newOrderFixture(t)
	order, err := f.service.CreateOrder(models.AmazonOrder{AmazonOrderID: "AMZN-1", MaskedProductID: "m1", Quantity: 1})
	require.NoError(t, err)

	body := f.publisher.events[0].body
	require.NoError(t, f.service.HandleEvent(services.EventOrderCreated, body))

	stored, err := f.service.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusNotified, stored.Status)

	// Later statuses are left alone on redelivery.
	_, err = f.service.UpdateOrderStatus(order.ID, models.OrderStatusProcessed)
	require.NoError(t, err)
	require.NoError(t, f.service.HandleEvent(services.EventOrderCreated, body))
	stored, err = f.service.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusProcessed, stored.Status)

	assert.NoError(t, f.service.HandleEvent(services.EventProductMasked, []byte(`{"product_id":"1"}`)))
	assert.NoError(t, f.service.HandleEvent(services.EventOrderCreated, []byte(`{"order_id":"missing"}`)))
	assert.Error(t, f.service.HandleEvent(services.EventOrderCreated, []byte(`not json`)))
}
