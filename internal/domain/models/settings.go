package models

import "time"

// SettingsRowID is the fixed primary key of the single settings row. Using a
// constant key means concurrent first-time initialization cannot create a
// second row.
const SettingsRowID uint = 1

// Settings holds the current WhatsApp group invitation link. At most one row
// exists.
type Settings struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	WhatsappGroupLink string    `gorm:"type:varchar(500)" json:"whatsapp_group_link"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
