package contracts

import (
	"context"
	"nutricare-service/internal/pkg/dto/requests"
)

type MailerService interface {
	SendEmail(ctx context.Context, payload *requests.EmailPayload) error
}
