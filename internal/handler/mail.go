package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gymmate-dev/staff-scheduler/backend/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
)

// publishMail 은 메일 메시지를 직렬화해서 메일 워커가 소비하는 큐에 넣는다
func (h *Handler) publishMail(msg domain.MailMessage) error {
	mailData, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	return h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        mailData,
		},
	)
}
