package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DispatchLog is an append-only audit row written whenever a finished order
// message leaves the configurator (deep link, clipboard, PDF or email). The
// bakery fulfils orders by hand over chat, so this log is the only record of
// what was quoted.
type DispatchLog struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	SessionID  string         `json:"session_id" gorm:"not null;index"`
	Channel    string         `json:"channel" gorm:"not null;check:channel IN ('whatsapp', 'clipboard', 'pdf', 'email')"`
	Selection  datatypes.JSON `json:"selection" gorm:"type:jsonb;not null;default:'{}'"` // SelectionState snapshot
	FinalPrice int            `json:"final_price" gorm:"not null"`
	IPAddress  string         `json:"ip_address"`
	UserAgent  string         `json:"user_agent"`
	CreatedAt  time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

func (d *DispatchLog) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (DispatchLog) TableName() string {
	return "dispatch_logs"
}
