package entities

// User is a denormalized shadow of the identity provider's user record.
// Authentication truth lives in the provider; this exists so booking reads
// can show guest display info without a provider round trip.

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
