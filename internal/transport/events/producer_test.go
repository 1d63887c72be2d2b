package events

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/fsdevblog/cit-vouchers/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishOrderPaid(t *testing.T) {
	sp := mocks.NewSyncProducer(t, sarama.NewConfig())
	producer := newProducer(sp, OrderPaidTopic, logrus.New())
	defer producer.Close()

	event := domain.OrderPaidEvent{
		OrderID: uuid.New(),
		UserID:  uuid.New(),
		Hours:   decimal.NewFromInt(3),
		Amount:  decimal.RequireFromString("10.00"),
		PaidAt:  time.Now().UTC(),
	}

	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got map[string]any
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got["order_id"] != event.OrderID.String() {
			return errors.New("unexpected order_id")
		}
		if got["hours"] != "3" {
			return errors.New("unexpected hours")
		}
		return nil
	})

	require.NoError(t, producer.PublishOrderPaid(t.Context(), event))
}

func TestPublishOrderPaid_Error(t *testing.T) {
	sp := mocks.NewSyncProducer(t, sarama.NewConfig())
	producer := newProducer(sp, OrderPaidTopic, logrus.New())
	defer producer.Close()

	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := producer.PublishOrderPaid(t.Context(), domain.OrderPaidEvent{OrderID: uuid.New()})
	require.ErrorIs(t, err, sarama.ErrOutOfBrokers)
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	assert.NoError(t, p.PublishOrderPaid(t.Context(), domain.OrderPaidEvent{}))
	assert.NoError(t, p.Close())
}
