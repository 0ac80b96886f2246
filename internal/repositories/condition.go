package repositories

import (
	"strings"

	"productsvc/internal/models"

	"gorm.io/gorm"
)

// ConditionKind selects how a Condition filters products.
type ConditionKind int

const (
	ConditionAll ConditionKind = iota
	ConditionByID
	ConditionNameContains
	ConditionCategoryContains
)

// Condition is a filter over products. Stores translate it into their own
// query language so filtering happens in the store, not after a full fetch.
// The zero value matches every product.
type Condition struct {
	Kind  ConditionKind
	Value string
}

func All() Condition { return Condition{Kind: ConditionAll} }

func ByID(id string) Condition { return Condition{Kind: ConditionByID, Value: id} }

// NameContains matches products whose name contains s, ignoring case.
func NameContains(s string) Condition { return Condition{Kind: ConditionNameContains, Value: s} }

// CategoryContains matches products whose category name contains s, ignoring case.
func CategoryContains(s string) Condition {
	return Condition{Kind: ConditionCategoryContains, Value: s}
}

// Matches evaluates the condition against a single product.
func (c Condition) Matches(p models.Product) bool {
	switch c.Kind {
	case ConditionByID:
		return p.ProductID == c.Value
	case ConditionNameContains:
		return containsFold(p.ProductName, c.Value)
	case ConditionCategoryContains:
		return containsFold(string(p.Category), c.Value)
	default:
		return true
	}
}

func (c Condition) apply(db *gorm.DB) *gorm.DB {
	switch c.Kind {
	case ConditionByID:
		return db.Where("product_id = ?", c.Value)
	case ConditionNameContains:
		return db.Where(`LOWER(product_name) LIKE ? ESCAPE '\'`, likePattern(c.Value))
	case ConditionCategoryContains:
		return db.Where(`LOWER(category) LIKE ? ESCAPE '\'`, likePattern(c.Value))
	default:
		return db
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
