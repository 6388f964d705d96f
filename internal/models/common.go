package models

import "time"

// AuditFields holds the audit columns shared by every table.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}

// DenominationMap is the storage shape of a note inventory: a JSONB object
// keyed by the note value's string form, as the frontend sends it.
type DenominationMap map[string]int64
