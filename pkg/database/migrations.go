package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates the PostgreSQL partial unique
// indexes backing the active-record invariants. These must match the
// constraints in 20260830120000_init.up.sql. Production schemas get
// them from the SQL migration; test schemas created through
// ent's Schema.Create call this directly.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one ACTIVE channel per phone number.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS channel_phone_number
		ON channels (phone_number)
		WHERE is_active`)
	if err != nil {
		return fmt.Errorf("failed to create active phone index: %w", err)
	}

	// At most one ACTIVE primary mapping per channel.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS mapping_channel_id
		ON mappings (channel_id)
		WHERE is_primary AND is_active`)
	if err != nil {
		return fmt.Errorf("failed to create active primary index: %w", err)
	}

	return nil
}
