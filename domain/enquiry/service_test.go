package enquiry

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/akeren/enquiry-portal/internal/log"
	"github.com/akeren/enquiry-portal/internal/models"
	apperrors "github.com/akeren/enquiry-portal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*MockEnquiryRepository, *recordingDispatcher, EnquiryService) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := NewMockEnquiryRepository(ctrl)
	dispatcher := &recordingDispatcher{}
	logger := log.NewLoggerWithJSONOutput()
	service := NewEnquiryService(logger, mockRepo, dispatcher)

	return mockRepo, dispatcher, service
}

func sampleInput() *EnquiryInput {
	return &EnquiryInput{
		Email:       "applicant@example.com",
		FullName:    "Jane Applicant",
		EnquiryDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		ContactNo:   "5551234567",
	}
}

func TestSubmit_Success(t *testing.T) {
	mockRepo, dispatcher, service := newTestService(t)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, enquiry *models.Enquiry) (*models.Enquiry, error) {
			enquiry.ID = 1
			return enquiry, nil
		})

	err := service.Submit(context.Background(), sampleInput())

	assert.NoError(t, err)

	sent := dispatcher.sent()
	assert.Len(t, sent, 1)
	assert.Equal(t, "applicant@example.com", sent[0].To)
	assert.Equal(t, "Thank You for Your Enquiry!", sent[0].Subject)
	assert.Contains(t, sent[0].HTMLBody, "Dear Jane Applicant,")
	assert.Contains(t, sent[0].TextBody, "Dear Jane Applicant,")
}

func TestSubmit_EscapesNameInHTMLBody(t *testing.T) {
	mockRepo, dispatcher, service := newTestService(t)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, enquiry *models.Enquiry) (*models.Enquiry, error) {
			return enquiry, nil
		})

	input := sampleInput()
	input.FullName = `<script>alert("x")</script>`

	assert.NoError(t, service.Submit(context.Background(), input))

	sent := dispatcher.sent()
	assert.Len(t, sent, 1)
	assert.NotContains(t, sent[0].HTMLBody, "<script>")
}

func TestSubmit_NilInput(t *testing.T) {
	_, dispatcher, service := newTestService(t)

	err := service.Submit(context.Background(), nil)

	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeInvalidRequest, apperrors.GetErrorType(err))
	assert.Empty(t, dispatcher.sent())
}

func TestSubmit_InsertFailureSkipsEmail(t *testing.T) {
	mockRepo, dispatcher, service := newTestService(t)

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewDatabaseError("insert failed", errors.New("boom")))

	err := service.Submit(context.Background(), sampleInput())

	assert.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeDatabaseError, apperrors.GetErrorType(err))
	assert.Empty(t, dispatcher.sent())
}

func TestSubmit_MailFailureReturnsMailDeliveryError(t *testing.T) {
	mockRepo, dispatcher, service := newTestService(t)
	dispatcher.err = errors.New("smtp: connection refused")

	mockRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, enquiry *models.Enquiry) (*models.Enquiry, error) {
			enquiry.ID = 7
			return enquiry, nil
		})

	err := service.Submit(context.Background(), sampleInput())

	assert.Error(t, err)
	assert.True(t, apperrors.IsMailDeliveryError(err))
}

func TestList_FormatsDatesAndOrdersRows(t *testing.T) {
	mockRepo, _, service := newTestService(t)

	mockRepo.EXPECT().
		ListAll(gomock.Any()).
		Return([]*models.Enquiry{
			{
				ID:          2,
				Email:       "second@example.com",
				FullName:    "Second Person",
				EnquiryDate: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:          1,
				Email:       "first@example.com",
				FullName:    "First Person",
				EnquiryDate: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			},
		}, nil)

	rows, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, uint(2), rows[0].ID)
	assert.Equal(t, "2024-12-01", rows[0].EnquiryDate)
	assert.Equal(t, "2024-06-15", rows[1].EnquiryDate)
}

func TestList_Empty(t *testing.T) {
	mockRepo, _, service := newTestService(t)

	mockRepo.EXPECT().
		ListAll(gomock.Any()).
		Return([]*models.Enquiry{}, nil)

	rows, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestList_RepositoryError(t *testing.T) {
	mockRepo, _, service := newTestService(t)

	mockRepo.EXPECT().
		ListAll(gomock.Any()).
		Return(nil, apperrors.NewDatabaseError("query failed", nil))

	rows, err := service.List(context.Background())

	assert.Error(t, err)
	assert.Nil(t, rows)
}

func TestToEnquiryRow_TruncatesNothing(t *testing.T) {
	enquiry := &models.Enquiry{
		ID:                    3,
		Email:                 "x@example.com",
		FullName:              strings.Repeat("n", 255),
		EnquiryDate:           time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		AcademicQualification: "Graduate",
	}

	row := ToEnquiryRow(enquiry)

	assert.Equal(t, uint(3), row.ID)
	assert.Equal(t, strings.Repeat("n", 255), row.FullName)
	assert.Equal(t, "2025-01-02", row.EnquiryDate)
	assert.Equal(t, "Graduate", row.AcademicQualification)
}
