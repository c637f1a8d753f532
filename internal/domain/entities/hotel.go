package entities

// Hotel is a catalog entry persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//
// Price is the nightly rate in major currency units (dollars); checkout
// converts it to cents when talking to Stripe. StripePriceID is optional and
// only set for hotels with a pre-registered Stripe price.

type Hotel struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Rating        float64 `json:"rating,omitempty"`
	Reviews       int     `json:"reviews,omitempty"`
	Image         string  `json:"image"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
	StripePriceID string  `json:"stripe_price_id,omitempty"`
}
