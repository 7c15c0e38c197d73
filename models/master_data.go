package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MasterRecord is the shared shape of every master-data (reference) table.
// Import rows reference these records by human-entered labels, matched
// case-insensitively against either locale's name.
type MasterRecord struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	NameEn    string         `gorm:"not null" json:"name_en"`
	NameVi    string         `json:"name_vi"`
	Code      string         `json:"code"`
	Status    string         `gorm:"default:'active'" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Names returns both locale names. It lets handlers treat the concrete
// master models uniformly.
func (m *MasterRecord) Names() (string, string) {
	return m.NameEn, m.NameVi
}

// BeforeCreate is promoted to every embedding master model.
func (m *MasterRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Project is a development / community a listing belongs to.
type Project struct {
	MasterRecord
}

// Zone is an area or sub-area within a project.
type Zone struct {
	MasterRecord
}

// Block is a building block within a zone.
type Block struct {
	MasterRecord
}

type PropertyType struct {
	MasterRecord
}

type Currency struct {
	MasterRecord
}

type Furnishing struct {
	MasterRecord
}

type FloorRange struct {
	MasterRecord
}

// Unit is a measurement unit (sqm, sqft). Unlike the other kinds it can
// also be referenced by its symbol.
type Unit struct {
	MasterRecord
	Symbol string `json:"symbol"`
}
