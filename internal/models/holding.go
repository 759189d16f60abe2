package models

import "time"

// ShareClass identifies the class of stock a holding is issued in.
type ShareClass string

const (
	ShareClassCommon        ShareClass = "common"
	ShareClassPreferredSeed ShareClass = "preferred_seed"
	ShareClassPreferredA    ShareClass = "preferred_a"
	ShareClassPreferredB    ShareClass = "preferred_b"
)

// Holding represents an issued block of shares. Holdings are the ground truth
// for a shareholder's current share count.
type Holding struct {
	Base
	ShareholderID     string     `gorm:"type:uuid;not null;index" json:"shareholder_id"`
	ShareClass        ShareClass `gorm:"not null;default:'common'" json:"share_class"`
	ShareCount        int64      `gorm:"type:bigint;not null" json:"share_count"`
	IssueDate         *time.Time `json:"issue_date,omitempty"`
	CertificateNumber string     `json:"certificate_number,omitempty"`

	// Relationships
	Shareholder Shareholder `gorm:"foreignKey:ShareholderID" json:"shareholder,omitempty"`
}
