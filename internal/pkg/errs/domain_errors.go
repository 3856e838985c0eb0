package errs

import "errors"

// Sentinel errors shared across the reconciliation usecases
var (
	// Record-level reconciliation errors; always degrade to a summary
	// warning, never abort a merge
	ErrInvalidRecord = errors.New("invalid record")
	ErrInvalidKey    = errors.New("invalid natural key")

	// Lookup errors
	ErrEquipmentNotFound    = errors.New("equipment not found")
	ErrMaintenanceNotFound  = errors.New("scheduled maintenance not found")
	ErrInventoryNotFound    = errors.New("inventory item not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// Snapshot errors
	ErrSnapshotUnreadable = errors.New("snapshot could not be decoded")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
