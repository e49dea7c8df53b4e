package kafka

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/Cambalacheth/vero-cosmos-portal-sub000/internal/domain"
	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	ctx    context.Context
	mu     sync.Mutex
	marked []int64
}

func (s *fakeSession) Claims() map[string][]int32               { return nil }
func (s *fakeSession) MemberID() string                         { return "member" }
func (s *fakeSession) GenerationID() int32                      { return 1 }
func (s *fakeSession) MarkOffset(string, int32, int64, string)  {}
func (s *fakeSession) Commit()                                  {}
func (s *fakeSession) ResetOffset(string, int32, int64, string) {}
func (s *fakeSession) Context() context.Context                 { return s.ctx }
func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.mu.Lock()
	s.marked = append(s.marked, msg.Offset)
	s.mu.Unlock()
}

type fakeClaim struct {
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Topic() string                            { return "chart_requests" }
func (c *fakeClaim) Partition() int32                         { return 0 }
func (c *fakeClaim) InitialOffset() int64                     { return 0 }
func (c *fakeClaim) HighWaterMarkOffset() int64               { return 0 }
func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

type scriptedHandler struct {
	results map[string]error
	seen    map[string]map[string]string
}

func (h *scriptedHandler) HandleMessage(_ context.Context, key string, _ []byte, headers map[string]string) error {
	if h.seen == nil {
		h.seen = make(map[string]map[string]string)
	}
	h.seen[key] = headers
	return h.results[key]
}

func TestConsumeClaim_Commits(t *testing.T) {
	handler := &scriptedHandler{results: map[string]error{
		"business":  domain.WrapBusinessError(domain.ErrUserNotFound),
		"technical": errors.New("db down"),
	}}
	gh := &consumerGroupHandler{
		handler: handler,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		topic:   "chart_requests",
	}

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage, 4)}
	claim.messages <- &sarama.ConsumerMessage{Key: []byte("ok"), Offset: 1, Headers: []*sarama.RecordHeader{{Key: []byte("source"), Value: []byte("crm")}}}
	claim.messages <- &sarama.ConsumerMessage{Key: []byte("business"), Offset: 2}
	claim.messages <- &sarama.ConsumerMessage{Key: []byte("technical"), Offset: 3}
	claim.messages <- &sarama.ConsumerMessage{Key: []byte("after"), Offset: 4}
	close(claim.messages)

	session := &fakeSession{ctx: context.Background()}
	require.NoError(t, gh.ConsumeClaim(session, claim))

	// offset 3 не помечен, но коммит по offset 4 его перекрывает
	assert.Equal(t, []int64{1, 2, 4}, session.marked)
	assert.Equal(t, "crm", handler.seen["ok"]["source"])
	assert.Len(t, handler.seen, 4)
}

func TestConsumeClaim_StopsOnContext(t *testing.T) {
	gh := &consumerGroupHandler{
		handler: &scriptedHandler{},
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		topic:   "chart_requests",
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage)}
	require.NoError(t, gh.ConsumeClaim(&fakeSession{ctx: ctx}, claim))
}
