package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "captable/internal/errors"
	"captable/internal/modeling"
	"captable/internal/models"
)

// capTableService is the snapshot provider: it derives the aggregate cap
// table view the modeling core consumes. It never mutates what it reads.
type capTableService struct {
	db *gorm.DB
}

// NewCapTableService creates a new CapTableServicer.
func NewCapTableService(db *gorm.DB) CapTableServicer {
	return &capTableService{db: db}
}

// GetCompany returns the company profile.
func (s *capTableService) GetCompany() (*models.Company, error) {
	var company models.Company
	if err := s.db.First(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCompanyNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &company, nil
}

// UpdateCompany creates or updates the single company profile.
func (s *capTableService) UpdateCompany(name string, pricePerShare decimal.Decimal, optionPoolTotal, optionPoolGranted int64, incorporationDate *time.Time) (*models.Company, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Company name is required")
	}
	if pricePerShare.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Price per share cannot be negative")
	}
	if optionPoolTotal < 0 || optionPoolGranted < 0 || optionPoolGranted > optionPoolTotal {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Option pool counts are inconsistent")
	}

	company, err := s.GetCompany()
	if err != nil {
		if !errors.Is(err, apperrors.ErrCompanyNotFound) {
			return nil, err
		}
		company = &models.Company{}
	}

	company.Name = name
	company.PricePerShare = pricePerShare
	company.OptionPoolTotal = optionPoolTotal
	company.OptionPoolGranted = optionPoolGranted
	if incorporationDate != nil {
		company.IncorporationDate = incorporationDate
	}

	if err := s.db.Save(company).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return company, nil
}

// breakdownRow is the scan target for the per-shareholder aggregation.
type breakdownRow struct {
	ShareholderID   string
	ShareholderName string
	Shares          int64
}

// GetCapTableSummary derives the current snapshot: per-shareholder share
// totals from holdings, the option pool from the company profile, and
// outstanding SAFE notes on an as-converted basis at the reference price.
// The breakdown is ordered largest holders first and always sums to the
// outstanding share total.
func (s *capTableService) GetCapTableSummary() (modeling.CapTableSummary, error) {
	var rows []breakdownRow
	if err := s.db.Model(&models.Holding{}).
		Select("holdings.shareholder_id AS shareholder_id, shareholders.name AS shareholder_name, SUM(holdings.share_count) AS shares").
		Joins("JOIN shareholders ON shareholders.id = holdings.shareholder_id AND shareholders.deleted_at IS NULL").
		Group("holdings.shareholder_id, shareholders.name").
		Order("shares DESC").
		Scan(&rows).Error; err != nil {
		return modeling.CapTableSummary{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var outstanding int64
	positions := make([]modeling.ShareholderPosition, 0, len(rows))
	for _, row := range rows {
		outstanding += row.Shares
		positions = append(positions, modeling.ShareholderPosition{
			ShareholderID:   row.ShareholderID,
			ShareholderName: row.ShareholderName,
			Shares:          row.Shares,
		})
	}

	summary := modeling.CapTableSummary{
		TotalOutstandingShares:  outstanding,
		TotalFullyDilutedShares: outstanding,
		Shareholders:            positions,
	}

	company, err := s.GetCompany()
	if err != nil && !errors.Is(err, apperrors.ErrCompanyNotFound) {
		return modeling.CapTableSummary{}, err
	}
	if company != nil {
		summary.PricePerShare = company.PricePerShare
		summary.TotalOptionPoolAvailable = company.OptionPoolTotal - company.OptionPoolGranted
		summary.TotalFullyDilutedShares += company.OptionPoolTotal

		if company.PricePerShare.IsPositive() {
			safes, err := s.ListOutstandingSafes()
			if err != nil {
				return modeling.CapTableSummary{}, err
			}
			for _, note := range safes {
				summary.TotalFullyDilutedShares += note.InvestmentAmount.
					Div(company.PricePerShare).Floor().IntPart()
			}
		}
	}

	return summary, nil
}

// ListOutstandingSafes returns the conversion-relevant terms of every
// outstanding SAFE note.
func (s *capTableService) ListOutstandingSafes() ([]modeling.SafeTerms, error) {
	var notes []models.SafeNote
	if err := s.db.Preload("Shareholder").
		Where("status = ?", models.SafeStatusOutstanding).
		Order("created_at ASC").
		Find(&notes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	terms := make([]modeling.SafeTerms, 0, len(notes))
	for _, note := range notes {
		terms = append(terms, modeling.SafeTerms{
			ID:               note.ID,
			ShareholderID:    note.ShareholderID,
			ShareholderName:  note.Shareholder.Name,
			InvestmentAmount: note.InvestmentAmount,
			ValuationCap:     note.ValuationCap,
			DiscountRate:     note.DiscountRate,
			Type:             modeling.SafeType(note.Type),
			HasProRataRights: note.HasProRataRights,
		})
	}
	return terms, nil
}
