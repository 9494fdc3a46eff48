package smtp

import (
	"context"
	"fmt"
	"net/smtp"
	"nutricare-service/internal/app/drivers/mailer"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/exceptions"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// EmailConsumer drains the mail queue and delivers payloads over SMTP.
// Deliveries are acked on success and rejected without requeue on anything
// else; a poisoned payload must never wedge the queue.
type EmailConsumer struct {
	Channel *amqp091.Channel
	Client  *mailer.SMTPClient
	Queue   string
	Log     *zap.Logger
	done    chan struct{}
}

func NewEmailConsumer(rabbitMQConnection *amqp091.Connection, client *mailer.SMTPClient, queue string, logger *zap.Logger) (*EmailConsumer, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return &EmailConsumer{
		Channel: channel,
		Client:  client,
		Queue:   queue,
		Log:     logger,
		done:    make(chan struct{}),
	}, nil
}

// Start consumes the queue until the channel closes or Stop is called.
func (c *EmailConsumer) Start(ctx context.Context) error {
	deliveries, err := c.Channel.ConsumeWithContext(ctx, c.Queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		defer close(c.done)
		for delivery := range deliveries {
			c.handleDelivery(ctx, delivery)
		}
		c.Log.Info("emailConsumer deliveries channel closed",
			zap.String(constvars.LoggingQueueNameKey, c.Queue),
		)
	}()

	c.Log.Info("emailConsumer started",
		zap.String(constvars.LoggingQueueNameKey, c.Queue),
	)
	return nil
}

// Stop closes the channel, which ends the delivery loop, and waits for it.
func (c *EmailConsumer) Stop() error {
	err := c.Channel.Close()
	<-c.done
	return err
}

func (c *EmailConsumer) handleDelivery(ctx context.Context, delivery amqp091.Delivery) {
	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		c.Log.Error("emailConsumer cannot unmarshal payload",
			zap.String(constvars.LoggingQueueNameKey, c.Queue),
			zap.Error(err),
		)
		_ = delivery.Reject(false)
		return
	}

	if err := c.deliver(&payload); err != nil {
		c.Log.Error("emailConsumer cannot deliver email",
			zap.String(constvars.LoggingQueueNameKey, c.Queue),
			zap.String(constvars.LoggingEmailSubjectKey, payload.Subject),
			zap.Strings(constvars.LoggingEmailRecipientsKey, payload.To),
			zap.Error(err),
		)
		_ = delivery.Reject(false)
		return
	}

	c.Log.Info("emailConsumer delivered email",
		zap.String(constvars.LoggingEmailSubjectKey, payload.Subject),
		zap.Strings(constvars.LoggingEmailRecipientsKey, payload.To),
	)
	_ = delivery.Ack(false)
}

func (c *EmailConsumer) deliver(payload *requests.EmailPayload) error {
	from := payload.From
	if from == "" {
		from = c.Client.EmailSender
	}

	to := strings.Join(payload.To, ",")
	var msg []byte
	if payload.Encoded {
		msg = []byte(fmt.Sprintf(constvars.EmailSendHTMLSubjectFormat, to, payload.Subject, payload.HTMLCode))
	} else {
		msg = []byte(fmt.Sprintf(constvars.EmailSendBasicEmailSubjectFormat, to, payload.Subject, payload.HTMLCode))
	}

	addr := fmt.Sprintf("%s:%d", c.Client.Host, c.Client.Port)
	if err := smtp.SendMail(addr, c.Client.Auth, from, payload.To, msg); err != nil {
		return exceptions.ErrSMTPSendEmail(err, c.Client.Host)
	}
	return nil
}
