package enquiry

import (
	"context"
	"fmt"
	"html"

	"github.com/akeren/enquiry-portal/config"
	"github.com/akeren/enquiry-portal/internal/log"
	"github.com/akeren/enquiry-portal/internal/mail"
	"github.com/akeren/enquiry-portal/internal/web"
	apperrors "github.com/akeren/enquiry-portal/pkg/errors"
)

type EnquiryService interface {
	// Submit stores the enquiry and then dispatches the confirmation email.
	// The enquiry stays stored even when the email fails; that case returns a
	// mail delivery error so the caller can report it distinctly.
	Submit(ctx context.Context, input *EnquiryInput) error

	// List returns every enquiry as listing rows, newest first, with dates
	// formatted as YYYY-MM-DD.
	List(ctx context.Context) ([]web.EnquiryRow, error)
}

type enquiryService struct {
	logger     *log.Logger
	repository EnquiryRepository
	mailer     mail.Dispatcher
}

func NewEnquiryService(logger *log.Logger, repository EnquiryRepository, mailer mail.Dispatcher) EnquiryService {
	return &enquiryService{
		logger:     logger,
		repository: repository,
		mailer:     mailer,
	}
}

func (s *enquiryService) Submit(ctx context.Context, input *EnquiryInput) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if input == nil {
		logger.Error("Submit received empty input")
		return apperrors.NewInvalidRequestError("input cannot be nil", nil)
	}

	enquiry, err := s.repository.Insert(ctx, ToEnquiryModel(input))
	if err != nil {
		logger.Error("Failed to save enquiry", "error", err)
		config.CaptureError(err, map[string]interface{}{"email": input.Email})
		return err
	}

	logger.Info("Enquiry saved", "id", enquiry.ID, "email", enquiry.Email)

	if err := s.mailer.Send(ctx, buildConfirmationMessage(input)); err != nil {
		logger.Error("Failed to send confirmation email", "id", enquiry.ID, "error", err)
		config.CaptureError(err, map[string]interface{}{"enquiry_id": enquiry.ID})
		return apperrors.NewMailDeliveryError("confirmation email could not be sent", err)
	}

	logger.Info("Confirmation email sent", "id", enquiry.ID, "to", enquiry.Email)
	return nil
}

func (s *enquiryService) List(ctx context.Context) ([]web.EnquiryRow, error) {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	enquiries, err := s.repository.ListAll(ctx)
	if err != nil {
		logger.Error("Failed to list enquiries", "error", err)
		return nil, err
	}

	rows := make([]web.EnquiryRow, 0, len(enquiries))
	for _, enquiry := range enquiries {
		rows = append(rows, ToEnquiryRow(enquiry))
	}

	return rows, nil
}

const confirmationSubject = "Thank You for Your Enquiry!"

const confirmationHTMLFormat = `
      <html>
        <body>
          <div style="font-family: Arial, sans-serif; background-color: #f4f4f9; color: #333; padding: 20px;">
            <div style="max-width: 600px; margin: auto; background-color: #fff; border-radius: 8px; padding: 20px; box-shadow: 0 0 10px rgba(0, 0, 0, 0.1);">
              <h2 style="text-align: center; color: #4CAF50;">Dear %s,</h2>
              <p style="font-size: 16px; line-height: 1.5;">Thank you for your enquiry. We will contact you shortly.</p>
              <div style="text-align: center; font-size: 14px; color: #777; margin-top: 20px;">
                Best Regards,<br>Faiz-e-Aam IT Center
              </div>
            </div>
          </div>
        </body>
      </html>`

const confirmationTextFormat = "Dear %s,\r\n\r\nThank you for your enquiry. We will contact you shortly.\r\n\r\nBest Regards,\r\nFaiz-e-Aam IT Center\r\n"

func buildConfirmationMessage(input *EnquiryInput) mail.Message {
	return mail.Message{
		To:       input.Email,
		Subject:  confirmationSubject,
		HTMLBody: fmt.Sprintf(confirmationHTMLFormat, html.EscapeString(input.FullName)),
		TextBody: fmt.Sprintf(confirmationTextFormat, input.FullName),
	}
}
