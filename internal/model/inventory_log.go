package model

// TimestampLayout is the storage format for log timestamps: ISO-8601 UTC with
// fixed millisecond precision. Fixed width means lexicographic order on the
// column equals chronological order, which the history queries rely on.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// InventoryLog records one stock-quantity change on a product. A row is
// written if and only if an update actually changes the stock value, and is
// immutable afterwards.
type InventoryLog struct {
	ID        uint   `gorm:"primaryKey"`
	ProductID uint   `gorm:"not null;index"`
	OldStock  int    `gorm:"not null"`
	NewStock  int    `gorm:"not null"`
	ChangedBy string `gorm:"not null"`
	Timestamp string `gorm:"not null"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
