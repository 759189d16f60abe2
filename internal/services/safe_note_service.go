package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "captable/internal/errors"
	"captable/internal/models"
	"captable/internal/pagination"
)

// safeNoteService handles SAFE note administration.
type safeNoteService struct {
	db *gorm.DB
}

// NewSafeNoteService creates a new SafeNoteServicer.
func NewSafeNoteService(db *gorm.DB) SafeNoteServicer {
	return &safeNoteService{db: db}
}

// validateSafeTerms rejects term combinations the resolver could never price.
func validateSafeTerms(investmentAmount decimal.Decimal, valuationCap, discountRate decimal.NullDecimal) error {
	if !investmentAmount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Investment amount must be positive")
	}
	if valuationCap.Valid && !valuationCap.Decimal.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Valuation cap must be positive")
	}
	if discountRate.Valid &&
		(discountRate.Decimal.IsNegative() || discountRate.Decimal.GreaterThanOrEqual(decimal.NewFromInt(1))) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Discount rate must be at least 0 and below 1")
	}
	return nil
}

// CreateSafeNote records a new SAFE against the company.
func (s *safeNoteService) CreateSafeNote(shareholderID string, investmentAmount decimal.Decimal, valuationCap, discountRate decimal.NullDecimal, safeType models.SafeType, hasProRataRights bool, signedDate *time.Time) (*models.SafeNote, error) {
	if err := validateSafeTerms(investmentAmount, valuationCap, discountRate); err != nil {
		return nil, err
	}

	var shareholder models.Shareholder
	if err := s.db.First(&shareholder, "id = ?", shareholderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShareholderNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	note := &models.SafeNote{
		ShareholderID:    shareholderID,
		InvestmentAmount: investmentAmount,
		ValuationCap:     valuationCap,
		DiscountRate:     discountRate,
		Type:             safeType,
		HasProRataRights: hasProRataRights,
		Status:           models.SafeStatusOutstanding,
		SignedDate:       signedDate,
	}
	if err := s.db.Create(note).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return note, nil
}

// GetSafeNotes lists SAFE notes, optionally filtered by status.
func (s *safeNoteService) GetSafeNotes(page pagination.PageRequest, status *models.SafeStatus) (*pagination.PageResponse[models.SafeNote], error) {
	page.Defaults()

	query := s.db.Model(&models.SafeNote{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var notes []models.SafeNote
	if err := query.Scopes(pagination.Paginate(page)).
		Preload("Shareholder").
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(notes, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetSafeNoteByID returns a single SAFE note with its shareholder.
func (s *safeNoteService) GetSafeNoteByID(safeNoteID string) (*models.SafeNote, error) {
	var note models.SafeNote
	if err := s.db.Preload("Shareholder").First(&note, "id = ?", safeNoteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSafeNoteNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &note, nil
}

// UpdateSafeNote amends the negotiable terms of an outstanding note.
// Converted and cancelled notes are immutable.
func (s *safeNoteService) UpdateSafeNote(safeNoteID string, valuationCap, discountRate decimal.NullDecimal, hasProRataRights *bool) (*models.SafeNote, error) {
	note, err := s.GetSafeNoteByID(safeNoteID)
	if err != nil {
		return nil, err
	}
	if note.Status != models.SafeStatusOutstanding {
		return nil, apperrors.ErrSafeNotOutstanding
	}
	if err := validateSafeTerms(note.InvestmentAmount, valuationCap, discountRate); err != nil {
		return nil, err
	}

	note.ValuationCap = valuationCap
	note.DiscountRate = discountRate
	if hasProRataRights != nil {
		note.HasProRataRights = *hasProRataRights
	}

	if err := s.db.Save(note).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return note, nil
}

// CancelSafeNote terminates an outstanding note without conversion.
func (s *safeNoteService) CancelSafeNote(safeNoteID string) (*models.SafeNote, error) {
	note, err := s.GetSafeNoteByID(safeNoteID)
	if err != nil {
		return nil, err
	}
	if note.Status != models.SafeStatusOutstanding {
		return nil, apperrors.ErrSafeNotOutstanding
	}

	note.Status = models.SafeStatusCancelled
	if err := s.db.Save(note).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return note, nil
}

// DeleteSafeNote removes a SAFE note record.
func (s *safeNoteService) DeleteSafeNote(safeNoteID string) error {
	note, err := s.GetSafeNoteByID(safeNoteID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(note).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
