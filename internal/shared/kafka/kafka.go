package kafka

import (
	"strings"

	"github.com/segmentio/kafka-go"
)

// NewWriter cria um writer para o tópico informado
// Aceita lista de brokers separada por vírgula
func NewWriter(brokers string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(brokers, ",")...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
