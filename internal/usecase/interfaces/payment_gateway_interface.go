package interfaces

import "context"

// CheckoutSession is the provider-neutral view of a Stripe checkout session.
// PaymentStatus is the provider's value ("paid", "unpaid", ...), distinct
// from the booking's own PaymentStatus enum.

type CheckoutSession struct {
	ID            string
	URL           string
	Status        string
	PaymentStatus string
	Metadata      map[string]string
	CustomerEmail string
	AmountTotal   int64
}

// WebhookEvent is a verified provider event. Session is only populated for
// checkout-session events; other event types carry just the Type tag.

type WebhookEvent struct {
	Type    string
	Session CheckoutSession
}

// CreateCheckoutSessionInput carries everything the provider needs to build
// a hosted checkout page. Metadata is echoed back in webhook events and
// session retrievals; it is how the bookingId crosses the async boundary.

type CreateCheckoutSessionInput struct {
	AmountMinorUnits int64
	ProductName      string
	Description      string
	Metadata         map[string]string
	SuccessURL       string
	CancelURL        string
}

// IPaymentGateway abstracts the external payment provider (Stripe).
//
// ConstructWebhookEvent verifies the payload signature against the shared
// webhook secret and fails without side effects on mismatch. All calls may
// fail with a provider-communication error; callers surface those as 5xx and
// never retry inline.

type IPaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, in CreateCheckoutSessionInput) (CheckoutSession, error)
	ConstructWebhookEvent(payload []byte, signature string) (WebhookEvent, error)
	RetrieveCheckoutSession(ctx context.Context, sessionID string) (CheckoutSession, error)
}
