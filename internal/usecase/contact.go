package usecase

import (
	"contact-mailer-backend/config"
	"contact-mailer-backend/internal/domain"
	"contact-mailer-backend/pkg/apperror"
	"contact-mailer-backend/pkg/email"
	"contact-mailer-backend/pkg/logger"
	"contact-mailer-backend/pkg/validation"
	"context"
	"fmt"
	"time"
)

type contactUsecase struct {
	mail         config.MailConfig
	newTransport email.TransportFactory
	now          func() time.Time
}

// NewContactUsecase creates a new contact usecase. A transport is built per submission.
func NewContactUsecase(mail config.MailConfig, newTransport email.TransportFactory) domain.ContactUsecase {
	return &contactUsecase{
		mail:         mail,
		newTransport: newTransport,
		now:          time.Now,
	}
}

// SendContactMessage renders the submission and relays it to the configured inbox.
// Every failure is an *apperror.AppError with status 500.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, sub *domain.Submission) (string, error) {
	if err := uc.mail.Validate(); err != nil {
		logger.Log.Error("Missing email environment variables", "missing", validation.FormatValidationErrors(err))
		return "", apperror.Internal(email.MsgNotConfigured, fmt.Errorf("%w: %v", email.ErrNotConfigured, err))
	}

	transport := uc.newTransport(email.Credentials{
		User: uc.mail.User,
		Pass: uc.mail.Pass,
	})

	subject, html, err := email.RenderContactEmail(toEmailData(sub, uc.now()))
	if err != nil {
		return "", deliveryError(err)
	}

	if err := transport.Verify(ctx); err != nil {
		logger.Log.Error("SMTP verification failed", "error", err)
		return "", apperror.Internal(email.MsgVerifyFailed, err)
	}
	logger.Log.Info("SMTP connection verified successfully")

	messageID, err := transport.Send(ctx, &email.Message{
		To:      uc.mail.To,
		ReplyTo: sub.Email.String(),
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return "", deliveryError(err)
	}

	logger.Log.Info("Email sent successfully", "message_id", messageID, "detailed", sub.Detailed())
	return messageID, nil
}

// deliveryError classifies err and exposes its text to the client.
func deliveryError(err error) *apperror.AppError {
	logger.Log.Error("Error sending email", "error", err)
	return apperror.Internal(email.ClassifyError(err), err).WithDetail()
}

func toEmailData(sub *domain.Submission, at time.Time) email.ContactEmailData {
	return email.ContactEmailData{
		InquiryPurpose: sub.InquiryPurpose.String(),
		Description:    sub.Description.String(),
		FullName:       sub.FullName.String(),
		FirstName:      sub.FirstName.String(),
		LastName:       sub.LastName.String(),
		Email:          sub.Email.String(),
		PhoneNumber:    sub.PhoneNumber.String(),
		Organization:   sub.Organization.String(),
		CompanyName:    sub.CompanyName.String(),
		Budget:         sub.Budget.String(),
		ProjectType:    sub.ProjectType.String(),
		Message:        sub.Message.String(),
		SubmittedAt:    at,
	}
}
