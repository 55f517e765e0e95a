package auth

import "github.com/smartstore/go-store-backend/internal/domain"

// Persona strings supplied to the model as its system instruction. Exactly
// one is selected per request; they are never combined.
const (
	PersonaAdmin    = "You are speaking to an Admin. Provide detailed system-level insights."
	PersonaMerchant = "You are speaking to a Merchant. Focus on sales, products, and order management."
	PersonaCustomer = "You are speaking to a Customer. Be helpful and focus on product questions and support."
)

// Persona maps role flags to the system instruction for the chat relay.
// Admin wins over merchant; everything else is a customer. The function is
// total: absent flags are the common case, not an error.
func Persona(r domain.Roles) string {
	switch {
	case r.Admin:
		return PersonaAdmin
	case r.Merchant:
		return PersonaMerchant
	default:
		return PersonaCustomer
	}
}
