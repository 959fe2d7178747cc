package model

// Product is a stocked inventory item. Name uniqueness is case-insensitive
// and enforced by the service layer before every write; the storage layer
// only carries a case-sensitive UNIQUE on the raw name, so the logic-level
// check is mandatory, not belt-and-braces.
type Product struct {
	ID       uint    `gorm:"primaryKey"`
	Name     string  `gorm:"uniqueIndex;not null"`
	Unit     string  `gorm:"not null"`
	Category string  `gorm:"not null"`
	Brand    string  `gorm:"not null"`
	Stock    int     `gorm:"not null;default:0;check:stock >= 0"`
	Status   string  `gorm:"not null"`
	Image    *string
}
