package enquiry

import (
	"context"

	"github.com/akeren/enquiry-portal/internal/models"
	apperrors "github.com/akeren/enquiry-portal/pkg/errors"
	"gorm.io/gorm"
)

type EnquiryRepository interface {
	// Insert persists a new enquiry row. Repeat submissions from the same
	// email are allowed; the table carries no uniqueness constraint.
	Insert(ctx context.Context, enquiry *models.Enquiry) (*models.Enquiry, error)
	// ListAll returns every enquiry, newest first.
	ListAll(ctx context.Context) ([]*models.Enquiry, error)
}

type enquiryRepository struct {
	db *gorm.DB
}

func NewEnquiryRepository(db *gorm.DB) EnquiryRepository {
	return &enquiryRepository{db: db}
}

func (r *enquiryRepository) Insert(ctx context.Context, enquiry *models.Enquiry) (*models.Enquiry, error) {
	if err := r.db.WithContext(ctx).Create(enquiry).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to save enquiry", err)
	}

	return enquiry, nil
}

func (r *enquiryRepository) ListAll(ctx context.Context) ([]*models.Enquiry, error) {
	var enquiries []*models.Enquiry

	if err := r.db.WithContext(ctx).Order("id DESC").Find(&enquiries).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch enquiries", err)
	}

	return enquiries, nil
}
