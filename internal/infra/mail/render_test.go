package mail

import (
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *entity.Order {
	return &entity.Order{
		ID:              uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479"),
		CustomerName:    "דוד כהן",
		CustomerEmail:   "customer@example.com",
		CustomerPhone:   "050-1234567",
		ShippingAddress: "הרצל 1",
		City:            "תל אביב",
		Items: []entity.OrderItem{
			{ProductID: "p1", ProductName: "מצלמת אבטחה", Quantity: 2, Price: 299.90},
			{ProductID: "p2", ProductName: "אינטרקום", Quantity: 1, Price: 450},
		},
		Subtotal:      1049.80,
		ShippingCost:  50,
		Total:         1099.80,
		PaymentMethod: entity.PaymentMethodBit,
		Status:        entity.OrderStatusPending,
		CreatedAt:     time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRenderOrderEmail_CustomerAudience(t *testing.T) {
	order := testOrder()

	html, err := RenderOrderEmail(order, service.AudienceCustomer)
	require.NoError(t, err)

	assert.Contains(t, html, "שלום דוד כהן,")
	assert.Contains(t, html, "מצלמת אבטחה")
	assert.Contains(t, html, "אינטרקום")
	assert.Contains(t, html, "₪1049.80")
	assert.Contains(t, html, "₪50.00")
	assert.Contains(t, html, "₪1099.80")
	assert.Contains(t, html, "f47ac10b", "short order reference")
	assert.NotContains(t, html, "הזמנה חדשה התקבלה", "customer rendering must not use the admin framing")
}

func TestRenderOrderEmail_AdminAudience(t *testing.T) {
	order := testOrder()

	html, err := RenderOrderEmail(order, service.AudienceAdmin)
	require.NoError(t, err)

	assert.Contains(t, html, "הזמנה חדשה התקבלה!")
	assert.Contains(t, html, "הזמנה חדשה מ-דוד כהן")
	assert.Contains(t, html, "מצלמת אבטחה")
	assert.Contains(t, html, "₪1099.80")
}

func TestRenderOrderEmail_FreeShipping(t *testing.T) {
	order := testOrder()
	order.ShippingCost = 0

	html, err := RenderOrderEmail(order, service.AudienceCustomer)
	require.NoError(t, err)

	assert.Contains(t, html, "חינם")
	assert.NotContains(t, html, "₪0.00")
}

func TestRenderOrderEmail_LineTotals(t *testing.T) {
	order := testOrder()

	html, err := RenderOrderEmail(order, service.AudienceCustomer)
	require.NoError(t, err)

	// 2 units at 299.90 each.
	assert.Contains(t, html, "₪599.80")
}

func TestRenderContactEmail(t *testing.T) {
	message := &entity.ContactMessage{
		ID:      uuid.New(),
		Name:    "רות לוי",
		Email:   "ruth@example.com",
		Phone:   "052-7654321",
		Subject: "שאלה על התקנה",
		Message: "אשמח להצעת מחיר.",
	}

	html, err := RenderContactEmail(message)
	require.NoError(t, err)

	assert.Contains(t, html, "רות לוי")
	assert.Contains(t, html, "ruth@example.com")
	assert.Contains(t, html, "שאלה על התקנה")
	assert.Contains(t, html, "אשמח להצעת מחיר.")
}

func TestRenderContactEmail_EmptySubject(t *testing.T) {
	message := &entity.ContactMessage{Name: "רות", Email: "r@example.com", Message: "שלום"}

	html, err := RenderContactEmail(message)
	require.NoError(t, err)

	assert.Contains(t, html, "לא צוין")
}

func TestPaymentCaption_UnknownMethod(t *testing.T) {
	assert.Equal(t, "לא צוין", paymentCaption(entity.PaymentMethod("barter")))
}
