// Package events публикация доменных событий в Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	OrderPaidTopic = "order.paid"

	connectAttempts = 10
	connectDelay    = 3 * time.Second
)

// Producer публикует события об оплате заказов.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	l        *logrus.Entry
}

// NewProducer подключается к брокерам Kafka. Повторяет попытку подключения, пока брокер не станет доступен
// или не будет отменен ctx.
func NewProducer(ctx context.Context, brokers []string, l *logrus.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	var lastErr error
	for i := 1; i <= connectAttempts; i++ {
		producer, err := sarama.NewSyncProducer(brokers, config)
		if err == nil {
			return newProducer(producer, OrderPaidTopic, l), nil
		}
		lastErr = err
		l.WithError(err).Warnf("waiting for kafka (%d/%d)", i, connectAttempts)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("connect kafka: %w", ctx.Err())
		case <-time.After(connectDelay):
		}
	}
	return nil, fmt.Errorf("connect kafka after %d attempts: %w", connectAttempts, lastErr)
}

func newProducer(producer sarama.SyncProducer, topic string, l *logrus.Logger) *Producer {
	return &Producer{
		producer: producer,
		topic:    topic,
		l: l.WithFields(logrus.Fields{
			"component": "events",
			"module":    "producer",
		}),
	}
}

// PublishOrderPaid отправляет событие в топик order.paid. Ключ сообщения id заказа.
func (p *Producer) PublishOrderPaid(_ context.Context, event domain.OrderPaidEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", p.topic, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderID.String()),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, sendErr := p.producer.SendMessage(msg)
	if sendErr != nil {
		return fmt.Errorf("send %s event: %w", p.topic, sendErr)
	}

	p.l.WithFields(logrus.Fields{
		"orderID":   event.OrderID,
		"partition": partition,
		"offset":    offset,
	}).Debug("event published")
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close() //nolint:wrapcheck
}

// NoopPublisher используется, когда Kafka не настроена.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderPaid(_ context.Context, _ domain.OrderPaidEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
