package kafka_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fete/infras/kafka"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	message := kafka.Message{
		Key: "booking-1",
		Value: map[string]string{
			"booking_id": "booking-1",
			"status":     "confirmed",
		},
	}

	kafkaMessage, err := message.ToKafkaMessage()

	require.NoError(t, err)
	assert.Equal(t, []byte("booking-1"), kafkaMessage.Key)
	assert.JSONEq(t, `{"booking_id":"booking-1","status":"confirmed"}`, string(kafkaMessage.Value))
}

func TestMessage_ToKafkaMessage_UnmarshalableValue(t *testing.T) {
	message := kafka.Message{
		Key:   "booking-1",
		Value: make(chan int),
	}

	_, err := message.ToKafkaMessage()

	assert.Error(t, err)
}
