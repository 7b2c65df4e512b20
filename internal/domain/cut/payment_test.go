package cut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethod_Valid(t *testing.T) {
	for _, m := range PaymentMethods() {
		assert.True(t, m.Valid(), m)
	}
	assert.False(t, PaymentMethod("bitcoin").Valid())
	assert.False(t, PaymentMethod("").Valid())
}

func TestPaymentMethods_Order(t *testing.T) {
	assert.Equal(t,
		[]PaymentMethod{"efectivo", "transferencia", "tarjeta", "otro"},
		PaymentMethods(),
	)
}
