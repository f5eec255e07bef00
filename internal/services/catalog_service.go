package services

import (
	"errors"

	"github.com/pizzamaker/pizzamaker-api/internal/models"
	"gorm.io/gorm"
)

// CatalogService manages ingredient groups and ingredients
type CatalogService interface {
	// ListGroups retrieves all ingredient groups in a stable order
	ListGroups() ([]models.IngredientGroup, error)
	// ListIngredients retrieves ingredients, optionally limited to one group
	ListIngredients(groupID *uint) ([]models.Ingredient, error)
	// CatalogByGroup returns the composition-form payload: group name to
	// the ingredients in that group
	CatalogByGroup() (map[string][]models.Ingredient, error)
	// CreateGroup creates a new ingredient group
	CreateGroup(name string) (models.IngredientGroup, error)
	// UpdateGroup renames an existing group
	UpdateGroup(id uint, name string) (models.IngredientGroup, error)
	// DeleteGroup deletes a group and cascades to its ingredients and
	// any pizza line items referencing them
	DeleteGroup(id uint) error
	// CreateIngredient creates a new ingredient inside a group
	CreateIngredient(ingredient models.Ingredient) (models.Ingredient, error)
	// UpdateIngredient updates an existing ingredient
	UpdateIngredient(ingredient models.Ingredient) (models.Ingredient, error)
	// DeleteIngredient deletes an ingredient and cascades to any pizza
	// line items referencing it
	DeleteIngredient(id uint) error
}

type catalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(db *gorm.DB) CatalogService {
	return &catalogService{db: db}
}

func (s *catalogService) ListGroups() ([]models.IngredientGroup, error) {
	var groups []models.IngredientGroup
	if err := s.db.Order("id").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (s *catalogService) ListIngredients(groupID *uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	query := s.db.Order("id")
	if groupID != nil {
		query = query.Where("group_id = ?", *groupID)
	}
	if err := query.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *catalogService) CatalogByGroup() (map[string][]models.Ingredient, error) {
	groups, err := s.ListGroups()
	if err != nil {
		return nil, err
	}

	catalog := make(map[string][]models.Ingredient, len(groups))
	for _, group := range groups {
		ingredients, err := s.ListIngredients(&group.ID)
		if err != nil {
			return nil, err
		}
		catalog[group.Name] = ingredients
	}
	return catalog, nil
}

func (s *catalogService) CreateGroup(name string) (models.IngredientGroup, error) {
	if name == "" {
		return models.IngredientGroup{}, models.NewValidationError("name", "must not be empty")
	}
	group := models.IngredientGroup{Name: name}
	if err := s.db.Create(&group).Error; err != nil {
		return models.IngredientGroup{}, err
	}
	return group, nil
}

func (s *catalogService) UpdateGroup(id uint, name string) (models.IngredientGroup, error) {
	if name == "" {
		return models.IngredientGroup{}, models.NewValidationError("name", "must not be empty")
	}
	var group models.IngredientGroup
	if err := s.db.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.IngredientGroup{}, models.ErrGroupNotFound
		}
		return models.IngredientGroup{}, err
	}
	group.Name = name
	if err := s.db.Save(&group).Error; err != nil {
		return models.IngredientGroup{}, err
	}
	return group, nil
}

// DeleteGroup removes the group, its ingredients and all pizza line
// items referencing those ingredients in a single transaction, so a
// half-cascaded catalog is never observable.
func (s *catalogService) DeleteGroup(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var ingredientIDs []uint
		if err := tx.Model(&models.Ingredient{}).Where("group_id = ?", id).Pluck("id", &ingredientIDs).Error; err != nil {
			return err
		}

		if len(ingredientIDs) > 0 {
			if err := tx.Where("ingredient_id IN ?", ingredientIDs).Delete(&models.PizzaLineItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("group_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
				return err
			}
		}

		result := tx.Delete(&models.IngredientGroup{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrGroupNotFound
		}
		return nil
	})
}

func (s *catalogService) CreateIngredient(ingredient models.Ingredient) (models.Ingredient, error) {
	if err := s.validateIngredient(&ingredient); err != nil {
		return models.Ingredient{}, err
	}
	if err := s.db.Create(&ingredient).Error; err != nil {
		return models.Ingredient{}, err
	}
	return ingredient, nil
}

func (s *catalogService) UpdateIngredient(ingredient models.Ingredient) (models.Ingredient, error) {
	if err := s.validateIngredient(&ingredient); err != nil {
		return models.Ingredient{}, err
	}
	var existing models.Ingredient
	if err := s.db.First(&existing, ingredient.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Ingredient{}, models.ErrIngredientNotFound
		}
		return models.Ingredient{}, err
	}
	if err := s.db.Save(&ingredient).Error; err != nil {
		return models.Ingredient{}, err
	}
	return ingredient, nil
}

func (s *catalogService) DeleteIngredient(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ingredient_id = ?", id).Delete(&models.PizzaLineItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Ingredient{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrIngredientNotFound
		}
		return nil
	})
}

func (s *catalogService) validateIngredient(ingredient *models.Ingredient) error {
	if ingredient.Name == "" {
		return models.NewValidationError("name", "must not be empty")
	}
	if ingredient.Cost < 0 {
		return models.NewValidationError("cost", "must not be negative")
	}
	var count int64
	if err := s.db.Model(&models.IngredientGroup{}).Where("id = ?", ingredient.GroupID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return models.ErrGroupNotFound
	}
	return nil
}
