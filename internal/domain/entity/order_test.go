package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_IsValid(t *testing.T) {
	valid := []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
	for _, status := range valid {
		assert.True(t, status.IsValid(), "expected %q to be valid", status)
	}

	assert.False(t, OrderStatus("").IsValid())
	assert.False(t, OrderStatus("archived").IsValid())
	assert.False(t, OrderStatus("PENDING").IsValid(), "membership check is case sensitive")
}

func TestPaymentMethod_IsValid(t *testing.T) {
	valid := []PaymentMethod{
		PaymentMethodCash,
		PaymentMethodBankTransfer,
		PaymentMethodBit,
		PaymentMethodCreditCard,
	}
	for _, method := range valid {
		assert.True(t, method.IsValid(), "expected %q to be valid", method)
	}

	assert.False(t, PaymentMethod("").IsValid())
	assert.False(t, PaymentMethod("paypal").IsValid())
}
