package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// Gateway is the provider-agnostic payment interface. Every adapter here is a
// simulation with a bounded delay and a guaranteed success; a real integration
// would implement the same contract against the provider's API.
type Gateway interface {
	// Charge settles the given amount and returns the provider reference.
	Charge(ctx context.Context, amount float64) (*ChargeResult, error)
}

// ChargeResult is what a gateway returns after settling a payment.
type ChargeResult struct {
	ProviderRef string `json:"provider_ref"`
	Message     string `json:"message,omitempty"`
}

// GatewayRegistry maps payment methods to their Gateway implementations.
type GatewayRegistry map[Method]Gateway

// SimulatedGateways returns the stock registry with each method's simulated
// settlement latency.
func SimulatedGateways() GatewayRegistry {
	return GatewayRegistry{
		MethodCard:   NewSimulatedGateway("CARD", 1*time.Second),
		MethodPayPal: NewSimulatedGateway("PP", 1500*time.Millisecond),
		MethodCrypto: NewSimulatedGateway("XCH", 2*time.Second),
	}
}

type simulatedGateway struct {
	refPrefix string
	delay     time.Duration
}

// NewSimulatedGateway builds a gateway that waits for the given delay and then
// succeeds. The wait respects context cancellation.
func NewSimulatedGateway(refPrefix string, delay time.Duration) Gateway {
	return &simulatedGateway{refPrefix: refPrefix, delay: delay}
}

func (g *simulatedGateway) Charge(ctx context.Context, amount float64) (*ChargeResult, error) {
	if amount < 0 {
		return nil, fmt.Errorf("amount must not be negative")
	}

	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	ref := fmt.Sprintf("%s-%s-%04d", g.refPrefix, time.Now().Format("20060102150405"), rand.Intn(10000))
	return &ChargeResult{
		ProviderRef: ref,
		Message:     fmt.Sprintf("Charged %.2f", amount),
	}, nil
}
