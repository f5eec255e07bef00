package models

// IngredientGroup is an administrator-managed bucket of ingredients
// shown as one section of the composition form
type IngredientGroup struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:64;not null" json:"name"`
}

func (IngredientGroup) TableName() string {
	return "ingredient_groups"
}

// Ingredient belongs to exactly one group and carries the unit cost
// used to price pizza line items. Names are not unique.
type Ingredient struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"size:64;not null" json:"name"`
	GroupID uint    `gorm:"not null;index" json:"group_id"`
	Cost    float64 `gorm:"not null;default:0;check:cost >= 0" json:"cost"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
