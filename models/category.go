package models

type Category struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"unique;not null" json:"name"`
	Description string    `json:"description"`
	Products    []Product `gorm:"foreignKey:CategoryID" json:"-"`

	// Number of products referencing this category. Computed at query time,
	// never stored.
	ProductCount int64 `gorm:"-" json:"product_count"`
}
