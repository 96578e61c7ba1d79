package models

import "time"

// StateRecord is a single durable key-value row holding a JSON-serialized
// state document (the community snapshot or the user settings blob).
type StateRecord struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Payload   string    `gorm:"column:payload;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName pins the table name for GORM.
func (StateRecord) TableName() string {
	return "state_records"
}
