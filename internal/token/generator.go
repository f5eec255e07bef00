package token

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/pizzamaker/pizzamaker-api/internal/models"
)

// Generator derives confirmation codes for orders. The code is a
// SHA-256 hex digest over secret+orderID+email, so it can be recomputed
// for verification instead of being stored, and cannot be forged
// without the secret. The secret is injected here at construction and
// never read from ambient state.
type Generator struct {
	secret string
}

// NewGenerator creates a Generator bound to the given process secret
func NewGenerator(secret string) *Generator {
	return &Generator{secret: secret}
}

// Code computes the confirmation code for an order. The digest uses the
// order's current email address: changing the email after a link was
// mailed invalidates that link, which is intended.
func (g *Generator) Code(order *models.Order) string {
	sum := sha256.Sum256([]byte(g.secret + order.ID.String() + order.EmailAddress()))
	return hex.EncodeToString(sum[:])
}
