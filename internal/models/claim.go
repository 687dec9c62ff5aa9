package models

import "time"

// AdminProcessingApplication records that an admin is currently handling
// an application. The unique indexes keep at most one active claim per
// admin and per application; row presence is the authoritative signal
// that the admin may resolve the application.
type AdminProcessingApplication struct {
	ID            int64 `gorm:"primaryKey"`
	AdminID       int64 `gorm:"uniqueIndex"`
	ApplicationID int64 `gorm:"uniqueIndex"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
