package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishChartCalculated(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := newProducer(sp, "chart_events", "vero_cosmos", log)

	userID := uuid.New()
	chart := &domain.NatalChartData{BirthDate: "1990-07-15", BirthTime: "14:30"}
	chart.Sun = domain.PlanetaryPosition{Name: domain.BodySun, Sign: domain.SignCancer, Icon: "☉", House: 10}
	chart.Ascendant = domain.PlanetaryPosition{Name: domain.BodyAscendant, Sign: domain.SignLibra, Icon: "AC", House: 1}
	for _, b := range domain.Planets()[1:] {
		chart.SetPosition(domain.PlanetaryPosition{Name: b, Sign: domain.SignAries, Icon: b.Icon(), House: 7})
	}
	for i := range chart.Houses {
		chart.Houses[i] = domain.HousePosition{Number: i + 1, Sign: domain.SignFromIndex(6 + i)}
	}

	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "chart_events" {
			return errors.New("wrong topic " + msg.Topic)
		}
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		if string(key) != userID.String() {
			return errors.New("key must be user id")
		}

		headers := make(map[string]string)
		for _, h := range msg.Headers {
			headers[string(h.Key)] = string(h.Value)
		}
		if headers["action"] != "chart_calculated" || headers["source"] != "api" || headers["user_id"] != userID.String() {
			return errors.New("unexpected headers")
		}

		value, err := msg.Value.Encode()
		if err != nil {
			return err
		}
		var decoded domain.NatalChartData
		if err := json.Unmarshal(value, &decoded); err != nil {
			return err
		}
		if decoded.Sun.Sign != domain.SignCancer {
			return errors.New("chart not in value")
		}
		return nil
	})

	require.NoError(t, p.PublishChartCalculated(context.Background(), userID, domain.ChartSourceAPI, chart))
	require.NoError(t, p.Close())
}

func TestPublishChartCalculated_Error(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := newProducer(sp, "chart_events", "vero_cosmos", log)

	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	chart := &domain.NatalChartData{}
	for _, b := range domain.Planets() {
		chart.SetPosition(domain.PlanetaryPosition{Name: b, Sign: domain.SignAries})
	}
	chart.Ascendant = domain.PlanetaryPosition{Name: domain.BodyAscendant, Sign: domain.SignAries}
	for i := range chart.Houses {
		chart.Houses[i] = domain.HousePosition{Number: i + 1, Sign: domain.SignAries}
	}

	err := p.PublishChartCalculated(context.Background(), uuid.New(), domain.ChartSourceKafka, chart)
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, p.Close())
}

func TestConfig(t *testing.T) {
	cfg := Config{Brokers: "a:9092, b:9092", SecurityProtocol: "SASL_SSL", SASLMechanism: "SCRAM-SHA-256"}
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.GetBrokers())

	sc := cfg.SaramaConfig()
	assert.True(t, sc.Net.SASL.Enable)
	assert.True(t, sc.Net.TLS.Enable)
	assert.Equal(t, sarama.SASLMechanism(sarama.SASLTypeSCRAMSHA256), sc.Net.SASL.Mechanism)

	assert.Equal(t, []string{"localhost:9092"}, (&Config{}).GetBrokers())

	kc := KafkaConfigs{List: []KafkaConfig{{Name: ChartEventsName, Config: &Config{Topic: "events"}}}}
	require.NotNil(t, kc.Get(ChartEventsName))
	assert.Nil(t, kc.Get(ChartRequestsName))
}
