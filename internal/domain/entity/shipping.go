package entity

// ShippingMethod represents the shipping option selected at checkout.
type ShippingMethod string

const (
	// ShippingStandard is 5-7 day delivery.
	ShippingStandard ShippingMethod = "standard"
	// ShippingExpress is 2-3 day delivery.
	ShippingExpress ShippingMethod = "express"
)

// String returns the string representation of the ShippingMethod.
func (m ShippingMethod) String() string {
	return string(m)
}

// IsValid checks if the ShippingMethod is a valid value.
func (m ShippingMethod) IsValid() bool {
	switch m {
	case ShippingStandard, ShippingExpress:
		return true
	default:
		return false
	}
}

// Fee returns the flat shipping fee for the method.
func (m ShippingMethod) Fee() float64 {
	if m == ShippingExpress {
		return 15.00
	}

	return 5.00
}
