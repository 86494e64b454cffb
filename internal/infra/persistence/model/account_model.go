package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountModel mirrors the 'accounts' table owned by the account directory.
// PostgreSQL generates UUIDs via uuid_generate_v7().
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Handle       string    `gorm:"type:varchar(100);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Active       bool      `gorm:"not null;default:true"`

	LastSessionAt     *time.Time
	LastSessionOrigin string `gorm:"type:varchar(64)"`
	LastSessionClient string `gorm:"type:varchar(512)"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Roles         []AccountRoleModel  `gorm:"foreignKey:AccountID"`
	DeviceBinding *DeviceBindingModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// AccountRoleModel mirrors the 'account_roles' join table. An account holds each role at most once.
type AccountRoleModel struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role      string    `gorm:"type:varchar(50);primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountRoleModel) TableName() string {
	return "account_roles"
}

// DeviceBindingModel mirrors the 'device_bindings' table. At most one binding per account.
type DeviceBindingModel struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeviceID  string    `gorm:"type:varchar(255);not null"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceBindingModel) TableName() string {
	return "device_bindings"
}
