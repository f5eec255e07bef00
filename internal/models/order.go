package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order wraps exactly one pizza and tracks the two independent lifecycle
// flags: Submitted (contact info saved, confirmation mail sent) and
// Confirmed (confirmation link visited with a valid code).
// Contact fields stay null until submission.
type Order struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email       *string    `gorm:"size:254" json:"email"`
	Phone       *string    `gorm:"size:14" json:"phone"`
	Name        *string    `gorm:"size:64" json:"name"`
	PizzaID     uint       `gorm:"not null;index" json:"pizza_id"`
	Pizza       Pizza      `gorm:"foreignKey:PizzaID" json:"pizza"`
	Submitted   bool       `gorm:"not null;default:false" json:"submitted"`
	Confirmed   bool       `gorm:"not null;default:false" json:"confirmed"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}

// BeforeCreate assigns a fresh UUID when none was provided
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Price is the derived order total, the sum over the pizza's line items
func (o *Order) Price() float64 {
	return o.Pizza.Price()
}

// EmailAddress returns the contact email, or the empty string before
// contact info has been submitted
func (o *Order) EmailAddress() string {
	if o.Email == nil {
		return ""
	}
	return *o.Email
}
