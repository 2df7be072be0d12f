package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainComplaint "asset-tracker/internal/domain/complaint"
	"asset-tracker/internal/infrastructure/database/postgres/models"
)

// ComplaintRepository implements complaint.Repository on GORM.
type ComplaintRepository struct {
	db *DB
}

// NewComplaintRepository creates a new complaint repository
func NewComplaintRepository(db *DB) domainComplaint.Repository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Create(ctx context.Context, c *domainComplaint.Complaint) error {
	c.ID = uuid.New()
	c.CreatedAt = time.Now()

	dbModel := toComplaintModel(c)
	if err := r.db.session(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}

	return nil
}

func (r *ComplaintRepository) GetByID(ctx context.Context, complaintID uuid.UUID) (*domainComplaint.Complaint, error) {
	var dbModel models.ComplaintModel
	err := r.db.session(ctx).
		Where("id = ?", complaintID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainComplaint.ErrComplaintNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}

	return toComplaintEntity(&dbModel), nil
}

func (r *ComplaintRepository) MarkResolved(ctx context.Context, complaintID uuid.UUID) error {
	result := r.db.session(ctx).
		Model(&models.ComplaintModel{}).
		Where("id = ?", complaintID).
		Updates(map[string]interface{}{
			"status":      string(domainComplaint.StatusResolved),
			"resolved_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to resolve complaint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainComplaint.ErrComplaintNotFound
	}

	return nil
}

func toComplaintModel(c *domainComplaint.Complaint) *models.ComplaintModel {
	return &models.ComplaintModel{
		ID:           c.ID,
		AssetID:      c.AssetID,
		ReportedByID: c.ReportedByID,
		Description:  c.Description,
		ImageURL:     c.ImageURL,
		Status:       string(c.Status),
		CreatedAt:    c.CreatedAt,
		ResolvedAt:   c.ResolvedAt,
	}
}

func toComplaintEntity(m *models.ComplaintModel) *domainComplaint.Complaint {
	return &domainComplaint.Complaint{
		ID:           m.ID,
		AssetID:      m.AssetID,
		ReportedByID: m.ReportedByID,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		Status:       domainComplaint.Status(m.Status),
		CreatedAt:    m.CreatedAt,
		ResolvedAt:   m.ResolvedAt,
	}
}
