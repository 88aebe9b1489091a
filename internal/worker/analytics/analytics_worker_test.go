package analytics_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/venue-discovery/internal/domain"
	"github.com/venue-discovery/internal/worker/analytics"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

// MockAnalyticsRepository is a mock of AnalyticsRepository
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) SaveEvents(ctx context.Context, events []domain.VenueSearchEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func TestSearchAppearWorker_Name(t *testing.T) {
	w := analytics.NewSearchAppearWorker(
		&MockStreamRepository{}, &MockAnalyticsRepository{}, "venue-analytics-workers", 20, zap.NewNop())

	assert.Equal(t, "search-appear-analytics", w.Name())
	assert.Equal(t, "venue-analytics-workers", w.ConsumerGroup())
}

func TestSearchAppearWorker_ProcessesBatch(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockAnalytics := &MockAnalyticsRepository{}
	logger := zap.NewNop()

	now := time.Date(2026, 8, 25, 17, 0, 0, 0, time.UTC)
	event := domain.NewSearchAppearEvent(1, "trivia", now)
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	messages := []domain.StreamMessage{
		{ID: "1-0", Data: string(payload)},
		{ID: "1-1", Data: "not json"},
	}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamSearchAppear, "g").Return(nil)
	// First read returns the batch, all later reads find an empty queue
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamSearchAppear, "g", mock.Anything, 20).
		Return(messages, nil).Once()
	mockStream.On("ConsumeBatch", mock.Anything, domain.StreamSearchAppear, "g", mock.Anything, 20).
		Return([]domain.StreamMessage{}, nil)

	// Broken message acked separately, parsed one acked after save
	mockStream.On("AckMessages", mock.Anything, domain.StreamSearchAppear, "g", []string{"1-1"}).Return(nil)
	mockStream.On("AckMessages", mock.Anything, domain.StreamSearchAppear, "g", []string{"1-0"}).Return(nil)

	mockAnalytics.On("SaveEvents", mock.Anything, mock.MatchedBy(func(events []domain.VenueSearchEvent) bool {
		return len(events) == 1 && events[0].ID == event.ID && events[0].VenueID == 1
	})).Return(nil)

	w := analytics.NewSearchAppearWorker(mockStream, mockAnalytics, "g", 20, logger)

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	// Give the loop time to drain the batch, then stop
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}

	mockStream.AssertExpectations(t)
	mockAnalytics.AssertExpectations(t)
}

func TestSearchAppearWorker_StopsOnContextCancel(t *testing.T) {
	mockStream := &MockStreamRepository{}
	mockAnalytics := &MockAnalyticsRepository{}

	mockStream.On("CreateConsumerGroup", mock.Anything, domain.StreamSearchAppear, "g").Return(nil)
	mockStream.On("ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]domain.StreamMessage{}, nil)

	w := analytics.NewSearchAppearWorker(mockStream, mockAnalytics, "g", 20, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Start(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop on context cancel")
	}
}
