package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	kafkaPorts "github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/ports/kafka"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

const actionChartCalculated = "chart_calculated"

// Producer публикует события карт в Kafka
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	appName  string
	log      *slog.Logger
}

// NewProducer создаёт Kafka producer
func NewProducer(cfg *Config, appName string, log *slog.Logger) (*Producer, error) {
	config := cfg.SaramaConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(cfg.GetBrokers(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("kafka producer created",
		"brokers", cfg.Brokers,
		"topic", cfg.Topic,
	)

	return newProducer(producer, cfg.Topic, appName, log), nil
}

func newProducer(producer sarama.SyncProducer, topic, appName string, log *slog.Logger) *Producer {
	return &Producer{
		producer: producer,
		topic:    topic,
		appName:  appName,
		log:      log,
	}
}

var _ kafkaPorts.IChartEventProducer = (*Producer)(nil)

// PublishChartCalculated в value карта, user_id/action/source в headers
func (p *Producer) PublishChartCalculated(ctx context.Context, userID uuid.UUID, source domain.ChartSource, chart *domain.NatalChartData) error {
	value, err := json.Marshal(chart)
	if err != nil {
		return fmt.Errorf("failed to marshal chart: %w", err)
	}

	headers := []sarama.RecordHeader{
		{Key: []byte("user_id"), Value: []byte(userID.String())},
		{Key: []byte("action"), Value: []byte(actionChartCalculated)},
		{Key: []byte("source"), Value: []byte(source)},
		{Key: []byte("producer"), Value: []byte(p.appName)},
	}

	return p.send(ctx, userID.String(), value, headers)
}

func (p *Producer) send(ctx context.Context, key string, value []byte, headers []sarama.RecordHeader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(value),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.Debug("kafka send failed",
			"error", err,
			"topic", p.topic,
			"key", key,
		)
		return fmt.Errorf("kafka send failed [topic=%s, key=%s]: %w", p.topic, key, err)
	}

	p.log.Debug("message sent to kafka",
		"topic", p.topic,
		"partition", partition,
		"offset", offset,
		"key", key,
	)
	return nil
}

// Close закрывает producer
func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	p.log.Info("kafka producer closed", "topic", p.topic)
	return nil
}
