package checkout

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	taxRate           = 0.08
	shippingFee       = 9.99
	freeShippingAbove = 100.0
)

// ErrCheckoutInFlight means a submission is already in Processing; the second
// caller must wait for it to finish.
var ErrCheckoutInFlight = errors.New("a checkout is already being processed")

// Cart is the slice of the cart store checkout depends on.
type Cart interface {
	ItemCount() int
	Total() float64
	Clear(ctx context.Context) error
}

// Service runs the checkout state machine over the current cart.
type Service interface {
	// Submit validates the form, settles payment through the selected gateway,
	// and on success clears the cart and returns the confirmation.
	// A *ValidationError carries per-field messages; ErrCheckoutInFlight is
	// returned while another submission is processing.
	Submit(ctx context.Context, req SubmitRequest) (*Order, error)

	// OrderSummary prices the current cart: subtotal, shipping, tax, total.
	OrderSummary() Summary

	// State reports the current lifecycle state.
	State() State
}

type service struct {
	mu          sync.Mutex
	state       State
	lastOutcome State
	cart        Cart
	gateways    GatewayRegistry
	logger      *zap.Logger
}

// NewService wires the checkout simulator to the cart and payment gateways.
func NewService(cart Cart, gateways GatewayRegistry, logger *zap.Logger) Service {
	return &service{state: StateIdle, cart: cart, gateways: gateways, logger: logger}
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (*Order, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	if verr := validate(req); verr != nil {
		s.finish(StateRejected)
		return nil, verr
	}

	gateway, ok := s.gateways[req.PaymentMethod]
	if !ok {
		s.finish(StateRejected)
		return nil, &ValidationError{Fields: map[string]string{
			"payment_method": "Please select a payment method",
		}}
	}

	summary := s.OrderSummary()
	s.setState(StateProcessing)

	result, err := gateway.Charge(ctx, summary.Total)
	if err != nil {
		s.finish(StateRejected)
		return nil, fmt.Errorf("payment failed: %w", err)
	}

	order := &Order{
		OrderNumber:    generateOrderNumber(),
		TrackingNumber: generateTrackingNumber(),
		Subtotal:       summary.Subtotal,
		Shipping:       summary.Shipping,
		Tax:            summary.Tax,
		Total:          summary.Total,
		Currency:       "USD",
		PaymentMethod:  req.PaymentMethod,
		ProviderRef:    result.ProviderRef,
		PlacedAt:       time.Now().UTC(),
	}

	// Clearing the cart is part of entering Completed, not a follow-up step.
	if err := s.cart.Clear(ctx); err != nil {
		s.finish(StateRejected)
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	s.finish(StateCompleted)

	// Mock confirmation email.
	s.logger.Info("confirmation email sent",
		zap.String("order_number", order.OrderNumber),
		zap.String("email", req.Email),
		zap.Float64("total", order.Total),
	)
	return order, nil
}

func (s *service) OrderSummary() Summary {
	subtotal := s.cart.Total()
	shipping := shippingFee
	if subtotal > freeShippingAbove {
		shipping = 0
	}
	tax := round2(subtotal * taxRate)
	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    round2(subtotal + shipping + tax),
	}
}

func (s *service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// begin moves Idle into Validating, rejecting a second submission while one is
// still in flight.
func (s *service) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateValidating || s.state == StateProcessing {
		return ErrCheckoutInFlight
	}
	s.state = StateValidating
	return nil
}

func (s *service) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// finish records the terminal state of this submission and returns the machine
// to Idle so the next submission can start.
func (s *service) finish(terminal State) {
	s.mu.Lock()
	s.lastOutcome = terminal
	s.state = StateIdle
	s.mu.Unlock()
}

// generateOrderNumber derives a readable order number from the current time.
func generateOrderNumber() string {
	return fmt.Sprintf("GS-%d", time.Now().UnixMilli())
}

const trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateTrackingNumber builds a TRK reference from random alphanumerics.
func generateTrackingNumber() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = trackingAlphabet[rand.Intn(len(trackingAlphabet))]
	}
	return "TRK" + string(b)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
