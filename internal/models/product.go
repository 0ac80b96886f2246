package models

// CategoryOptions is the closed set of product categories.
// Values are stored and serialized by name.
type CategoryOptions string

const (
	CategoryElectronics    CategoryOptions = "Electronics"
	CategoryHomeAppliances CategoryOptions = "HomeAppliances"
	CategoryFurniture      CategoryOptions = "Furniture"
	CategoryAccessories    CategoryOptions = "Accessories"
	CategoryStationery     CategoryOptions = "Stationery"
)

// Categories lists every valid CategoryOptions value in declaration order.
var Categories = []CategoryOptions{
	CategoryElectronics,
	CategoryHomeAppliances,
	CategoryFurniture,
	CategoryAccessories,
	CategoryStationery,
}

// IsValid reports whether c is one of the known categories.
func (c CategoryOptions) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c CategoryOptions) String() string {
	return string(c)
}

// Product represents a product in the store.
type Product struct {
	ProductID       string          `gorm:"column:product_id;primaryKey;type:varchar(36)"`
	ProductName     string          `gorm:"column:product_name;type:varchar(100);not null"`
	UnitPrice       *float64        `gorm:"column:unit_price"`
	QuantityInStock *int            `gorm:"column:quantity_in_stock"`
	Category        CategoryOptions `gorm:"column:category;type:varchar(50);not null"`
}

// TableName pins the table name used by the migrations.
func (Product) TableName() string {
	return "products"
}
