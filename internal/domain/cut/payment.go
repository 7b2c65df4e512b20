package cut

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "efectivo"
	PaymentTransfer PaymentMethod = "transferencia"
	PaymentCard     PaymentMethod = "tarjeta"
	PaymentOther    PaymentMethod = "otro"
)

// PaymentMethods is in enumeration order, which also breaks ties when
// picking the most frequent method.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentCash,
		PaymentTransfer,
		PaymentCard,
		PaymentOther,
	}
}

func (p PaymentMethod) Valid() bool {
	for _, m := range PaymentMethods() {
		if m == p {
			return true
		}
	}
	return false
}
