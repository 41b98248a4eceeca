package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/radieske/ev-tracker-dashboard/pkg/contracts/events"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
	Topic  string
}

func NewKafkaPublisher(w *kafka.Writer, topic string) *KafkaPublisher {
	return &KafkaPublisher{Writer: w, Topic: topic}
}

func (p *KafkaPublisher) PublishBetAppended(ctx context.Context, e events.BetAppended) error {
	if e.BetID == "" {
		e.BetID = uuid.NewString()
	}
	e.TsUnixMs = time.Now().UnixMilli()

	b, _ := json.Marshal(e)
	return p.Writer.WriteMessages(ctx, kafka.Message{Key: []byte(e.BetID), Value: b})
}
