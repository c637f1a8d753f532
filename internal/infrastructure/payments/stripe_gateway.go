package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

// StripeGateway wraps the Stripe API behind the IPaymentGateway boundary.
// The client is constructed once at bootstrap and injected; handlers never
// build their own.

type StripeGateway struct {
	api           *client.API
	webhookSecret string
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey, webhookSecret string) (*StripeGateway, error) {
	if secretKey == "" {
		log.Printf("[payment][gateway] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	api := &client.API{}
	api.Init(secretKey, nil)
	log.Printf("[payment][gateway] Stripe client initialized")

	return &StripeGateway{api: api, webhookSecret: webhookSecret}, nil
}

// CreateCheckoutSession opens a Stripe-hosted payment page for a one-time
// card payment. Metadata rides along on the session and comes back in
// webhook events and retrievals.
func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, in interfaces.CreateCheckoutSessionInput) (interfaces.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(in.ProductName),
						Description: stripe.String(in.Description),
					},
					UnitAmount: stripe.Int64(in.AmountMinorUnits),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(in.SuccessURL),
		CancelURL:  stripe.String(in.CancelURL),
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		log.Printf("[payment][gateway] checkout session create failed err=%v", err)
		return interfaces.CheckoutSession{}, err
	}

	log.Printf("[payment][gateway] checkout session created session_id=%s amount_cents=%d", sess.ID, in.AmountMinorUnits)
	return toCheckoutSession(sess), nil
}

// ConstructWebhookEvent verifies the Stripe-Signature header against the raw
// payload using the shared webhook secret. Any mismatch fails verification
// before the event body is trusted.
func (g *StripeGateway) ConstructWebhookEvent(payload []byte, signature string) (interfaces.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		log.Printf("[payment][gateway] webhook signature verification failed err=%v", err)
		return interfaces.WebhookEvent{}, err
	}

	out := interfaces.WebhookEvent{Type: string(event.Type)}

	if strings.HasPrefix(out.Type, "checkout.session.") {
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("[payment][gateway] webhook session unmarshal failed type=%s err=%v", out.Type, err)
			return interfaces.WebhookEvent{}, err
		}
		out.Session = toCheckoutSession(&sess)
	}

	return out, nil
}

func (g *StripeGateway) RetrieveCheckoutSession(ctx context.Context, sessionID string) (interfaces.CheckoutSession, error) {
	sess, err := g.api.CheckoutSessions.Get(sessionID, &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		log.Printf("[payment][gateway] checkout session retrieve failed session_id=%s err=%v", sessionID, err)
		return interfaces.CheckoutSession{}, err
	}

	log.Printf("[payment][gateway] checkout session retrieved session_id=%s payment_status=%s", sess.ID, sess.PaymentStatus)
	return toCheckoutSession(sess), nil
}

func toCheckoutSession(sess *stripe.CheckoutSession) interfaces.CheckoutSession {
	out := interfaces.CheckoutSession{
		ID:            sess.ID,
		URL:           sess.URL,
		Status:        string(sess.Status),
		PaymentStatus: string(sess.PaymentStatus),
		Metadata:      sess.Metadata,
		AmountTotal:   sess.AmountTotal,
	}
	if sess.CustomerDetails != nil {
		out.CustomerEmail = sess.CustomerDetails.Email
	}
	return out
}
