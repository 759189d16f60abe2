package models

// HolderType classifies a shareholder on the cap table.
type HolderType string

const (
	HolderTypeFounder  HolderType = "founder"
	HolderTypeInvestor HolderType = "investor"
	HolderTypeEmployee HolderType = "employee"
	HolderTypeAdvisor  HolderType = "advisor"
)

// Shareholder represents a person or entity holding equity in the company.
// Identity is immutable; holdings and SAFE notes reference it by ID.
type Shareholder struct {
	Base
	Name  string     `gorm:"not null" json:"name"`
	Email string     `json:"email,omitempty"`
	Type  HolderType `gorm:"not null;default:'investor'" json:"type"`

	// Relationships
	Holdings  []Holding  `gorm:"foreignKey:ShareholderID" json:"holdings,omitempty"`
	SafeNotes []SafeNote `gorm:"foreignKey:ShareholderID" json:"safe_notes,omitempty"`
}
