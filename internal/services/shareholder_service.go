package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "captable/internal/errors"
	"captable/internal/models"
	"captable/internal/pagination"
)

// shareholderService handles shareholder and holding administration.
type shareholderService struct {
	db *gorm.DB
}

// NewShareholderService creates a new ShareholderServicer.
func NewShareholderService(db *gorm.DB) ShareholderServicer {
	return &shareholderService{db: db}
}

// CreateShareholder registers a new shareholder on the cap table.
func (s *shareholderService) CreateShareholder(name, email string, holderType models.HolderType) (*models.Shareholder, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Shareholder name is required")
	}

	shareholder := &models.Shareholder{
		Name:  name,
		Email: email,
		Type:  holderType,
	}
	if err := s.db.Create(shareholder).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return shareholder, nil
}

// GetShareholders lists shareholders, most recently created first.
func (s *shareholderService) GetShareholders(page pagination.PageRequest) (*pagination.PageResponse[models.Shareholder], error) {
	page.Defaults()

	var total int64
	if err := s.db.Model(&models.Shareholder{}).Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var shareholders []models.Shareholder
	if err := s.db.Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&shareholders).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(shareholders, page.Page, page.PageSize, total)
	return &resp, nil
}

// GetShareholderByID returns a shareholder with holdings and SAFE notes.
func (s *shareholderService) GetShareholderByID(shareholderID string) (*models.Shareholder, error) {
	var shareholder models.Shareholder
	if err := s.db.Preload("Holdings").Preload("SafeNotes").
		First(&shareholder, "id = ?", shareholderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShareholderNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &shareholder, nil
}

// UpdateShareholder updates a shareholder's display fields.
func (s *shareholderService) UpdateShareholder(shareholderID, name, email string, holderType models.HolderType) (*models.Shareholder, error) {
	shareholder, err := s.GetShareholderByID(shareholderID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		shareholder.Name = name
	}
	if email != "" {
		shareholder.Email = email
	}
	if holderType != "" {
		shareholder.Type = holderType
	}

	if err := s.db.Save(shareholder).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return shareholder, nil
}

// DeleteShareholder removes a shareholder that holds no equity. Holdings and
// SAFE notes block deletion so the cap table cannot lose issued shares.
func (s *shareholderService) DeleteShareholder(shareholderID string) error {
	shareholder, err := s.GetShareholderByID(shareholderID)
	if err != nil {
		return err
	}

	var holdingCount int64
	if err := s.db.Model(&models.Holding{}).
		Where("shareholder_id = ?", shareholderID).
		Count(&holdingCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var safeCount int64
	if err := s.db.Model(&models.SafeNote{}).
		Where("shareholder_id = ?", shareholderID).
		Count(&safeCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if holdingCount > 0 || safeCount > 0 {
		return apperrors.ErrShareholderInUse
	}

	if err := s.db.Delete(shareholder).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// AddHolding issues a block of shares to a shareholder.
func (s *shareholderService) AddHolding(shareholderID string, shareClass models.ShareClass, shareCount int64, issueDate *time.Time, certificateNumber string) (*models.Holding, error) {
	if shareCount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Share count cannot be negative")
	}
	if _, err := s.GetShareholderByID(shareholderID); err != nil {
		return nil, err
	}

	holding := &models.Holding{
		ShareholderID:     shareholderID,
		ShareClass:        shareClass,
		ShareCount:        shareCount,
		IssueDate:         issueDate,
		CertificateNumber: certificateNumber,
	}
	if err := s.db.Create(holding).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return holding, nil
}

// GetShareholderHoldings lists one shareholder's holdings.
func (s *shareholderService) GetShareholderHoldings(shareholderID string, page pagination.PageRequest) (*pagination.PageResponse[models.Holding], error) {
	page.Defaults()

	if _, err := s.GetShareholderByID(shareholderID); err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.Model(&models.Holding{}).
		Where("shareholder_id = ?", shareholderID).
		Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var holdings []models.Holding
	if err := s.db.Scopes(pagination.Paginate(page)).
		Where("shareholder_id = ?", shareholderID).
		Order("created_at DESC").
		Find(&holdings).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(holdings, page.Page, page.PageSize, total)
	return &resp, nil
}

// UpdateHolding corrects a holding's class or share count.
func (s *shareholderService) UpdateHolding(holdingID string, shareClass models.ShareClass, shareCount int64) (*models.Holding, error) {
	if shareCount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Share count cannot be negative")
	}

	var holding models.Holding
	if err := s.db.First(&holding, "id = ?", holdingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrHoldingNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if shareClass != "" {
		holding.ShareClass = shareClass
	}
	holding.ShareCount = shareCount

	if err := s.db.Save(&holding).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &holding, nil
}

// DeleteHolding removes an issued block of shares.
func (s *shareholderService) DeleteHolding(holdingID string) error {
	var holding models.Holding
	if err := s.db.First(&holding, "id = ?", holdingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrHoldingNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&holding).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
