package enum

// PaymentMethod is how a transaction was paid. It is stored as a string in
// the day ledger blob so unrecognized values from older records survive a
// round trip instead of being collapsed to a known constant.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "Cash"
	PaymentTransfer PaymentMethod = "Transfer"
)

// KnownMethods lists the supported payment methods in the fixed order used
// for summary reporting.
func KnownMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCash, PaymentTransfer}
}

// IsValid reports whether the method is one of the supported payment methods.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentCash || m == PaymentTransfer
}

func (m PaymentMethod) String() string {
	return string(m)
}
