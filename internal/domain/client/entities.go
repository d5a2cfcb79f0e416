package client

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("client not found")
)

// Table: clients. A client exists independently of any loan; identity fields
// (client_id, name) are immutable after creation, income/age only change via
// an explicit update.
type Client struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	ClientID       string         `gorm:"column:client_id;type:char(32);not null;uniqueIndex:ux_clients_client_id_active" json:"client_id"`
	Name           string         `gorm:"column:name;size:255;not null" json:"name"`
	Contact        string         `gorm:"column:contact;size:50;default:'Unknown'" json:"contact"`
	Age            int            `gorm:"column:age;default:30" json:"age"`
	MonthlyIncome  float64        `gorm:"column:monthly_income;type:decimal(18,2)" json:"monthly_income"`
	EmploymentType string         `gorm:"column:employment_type;size:50;default:'Salaried'" json:"employment_type"`
	NumDependents  int            `gorm:"column:num_dependents;default:0" json:"num_dependents"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Client) TableName() string { return "clients" }
