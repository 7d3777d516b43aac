package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher публикует события бронирований.
// Публикация best-effort: вызывающий код логирует ошибку и продолжает,
// доставка событий не входит в транзакцию бронирования.
type Publisher interface {
	Publish(ctx context.Context, key string, event BookingEvent) error
	Close() error
}

// AMQPPublisher публикует события в topic exchange RabbitMQ
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

// NewAMQPPublisher подключается к RabbitMQ и объявляет exchange
func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("events: dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("events: open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("events: declare exchange: %w", err)
	}

	return &AMQPPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Publish сериализует событие в JSON и публикует его с указанным routing key
func (p *AMQPPublisher) Publish(ctx context.Context, key string, event BookingEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: marshal event: %w", err)
	}

	return p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType: "application/json",
		MessageId:   event.EventID,
		Body:        body,
	})
}

// Close закрывает канал и соединение
func (p *AMQPPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NopPublisher заглушка, когда публикация событий выключена в конфигурации
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, BookingEvent) error { return nil }
func (NopPublisher) Close() error                                        { return nil }
