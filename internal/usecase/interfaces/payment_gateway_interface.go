package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// CreateCheckout initiates a checkout for a schedule entry. The provider may
// approve synchronously (sandbox/mock) or later via webhook; the caller
// decides from providerStatus. The raw provider response is persisted for
// traceability.
type IPaymentGateway interface {
	CreateCheckout(ctx context.Context, entryID string, amount float64, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
