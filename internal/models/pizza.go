package models

// Dough is the enumerated base type of a pizza
type Dough string

const (
	DoughThin Dough = "thin"
	DoughDeep Dough = "deep"
)

// Valid reports whether d is one of the two recognized dough values
func (d Dough) Valid() bool {
	return d == DoughThin || d == DoughDeep
}

// PizzaLineItem is one (ingredient, amount) pairing attached to a pizza
type PizzaLineItem struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	PizzaID      uint       `gorm:"not null;index" json:"pizza_id"`
	IngredientID uint       `gorm:"not null;index" json:"ingredient_id"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient"`
	Amount       int        `gorm:"not null;default:0;check:amount >= 0" json:"amount"`
}

func (PizzaLineItem) TableName() string {
	return "pizza_line_items"
}

// Price is the derived line price. The Ingredient association must be
// loaded for the result to be meaningful.
func (li *PizzaLineItem) Price() float64 {
	return li.Ingredient.Cost * float64(li.Amount)
}

// Pizza is a dough choice plus its line items. There is no update path:
// once an order wraps a pizza it is effectively immutable.
type Pizza struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Dough     Dough           `gorm:"size:8;not null" json:"dough"`
	LineItems []PizzaLineItem `gorm:"foreignKey:PizzaID" json:"line_items"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// Price sums the line prices over all loaded line items
func (p *Pizza) Price() float64 {
	var total float64
	for i := range p.LineItems {
		total += p.LineItems[i].Price()
	}
	return total
}
