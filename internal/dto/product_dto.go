package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// UpdateProductRequest carries every mutable field. The update overwrites all
// of them in a single write; there is no partial update.
type UpdateProductRequest struct {
	Name     string  `json:"name"  validate:"required"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Stock    int     `json:"stock" validate:"min=0"`
	Status   string  `json:"status"`
	Image    *string `json:"image"`
}

// ─── Import / Export ─────────────────────────────────────────────────────────

// ImportRow is one candidate product parsed from an uploaded CSV. Stock is
// kept raw here; the import coerces it, defaulting absent or invalid values
// to 0.
type ImportRow struct {
	Name     string
	Unit     string
	Category string
	Brand    string
	Stock    string
	Status   string
	Image    string
}

// DuplicateEntry reports an import row whose name already matched an existing
// product (case-insensitively), including one inserted earlier in the same
// file.
type DuplicateEntry struct {
	Name       string `json:"name"`
	ExistingID uint   `json:"existingId"`
}

// ImportSummary tallies one bulk import pass. Rows that fail to insert for
// non-duplicate reasons count under Skipped but are not listed in Duplicates.
type ImportSummary struct {
	Added      int              `json:"added"`
	Skipped    int              `json:"skipped"`
	Duplicates []DuplicateEntry `json:"duplicates"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Stock    int     `json:"stock"`
	Status   string  `json:"status"`
	Image    *string `json:"image"`
}

type InventoryLogResponse struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"productId"`
	OldStock  int    `json:"oldStock"`
	NewStock  int    `json:"newStock"`
	ChangedBy string `json:"changedBy"`
	Timestamp string `json:"timestamp"`
}
