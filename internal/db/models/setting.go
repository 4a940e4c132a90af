// Package models contains database model definitions.
package models

// Setting represents a key/value pair stored in the settings table.
type Setting struct {
	ID    uint64 `gorm:"primaryKey"`
	Key   string `gorm:"uniqueIndex;column:key"`
	Value string `gorm:"column:value"`
}

// TableName overrides the gorm default pluralized name.
func (Setting) TableName() string {
	return "settings"
}
