package repository

import "gorm.io/gorm"

// Migrate creates the schema and the indexes the business rules rely on.
// The partial unique index is the storage-level guarantee that at most one
// non-CANCELLED booking exists per (shop, date, time slot): concurrent
// create requests that pass the application-level check still serialize
// here, and the loser surfaces as a unique violation.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&userModel{},
		&shopModel{},
		&serviceModel{},
		&categoryModel{},
		&bookingModel{},
	); err != nil {
		return err
	}

	// Partial index syntax is shared by PostgreSQL and SQLite.
	return db.Exec(`
CREATE UNIQUE INDEX IF NOT EXISTS idx_active_slot
ON bookings (shop_id, date, time_slot)
WHERE status <> 'CANCELLED'
`).Error
}
