package checkout

import "time"

// Method selects the simulated payment path.
type Method string

const (
	MethodCard   Method = "card"
	MethodPayPal Method = "paypal"
	MethodCrypto Method = "crypto"
)

// State is the checkout lifecycle. A submission moves Idle -> Validating ->
// Processing -> Completed, or stops at Rejected and returns to Idle for retry.
type State string

const (
	StateIdle       State = "IDLE"
	StateValidating State = "VALIDATING"
	StateProcessing State = "PROCESSING"
	StateCompleted  State = "COMPLETED"
	StateRejected   State = "REJECTED"
)

// SubmitRequest is the checkout form payload.
type SubmitRequest struct {
	Email         string `json:"email"`
	FullName      string `json:"full_name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
	PaymentMethod Method `json:"payment_method"`
}

// Summary is the priced view of the current cart shown before ordering.
type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Order is the mock confirmation produced on completion. It is not persisted
// anywhere; it exists only in the response.
type Order struct {
	OrderNumber    string    `json:"order_number"`
	TrackingNumber string    `json:"tracking_number"`
	Subtotal       float64   `json:"subtotal"`
	Shipping       float64   `json:"shipping"`
	Tax            float64   `json:"tax"`
	Total          float64   `json:"total"`
	Currency       string    `json:"currency"`
	PaymentMethod  Method    `json:"payment_method"`
	ProviderRef    string    `json:"provider_ref,omitempty"`
	PlacedAt       time.Time `json:"placed_at"`
}
