//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	audit "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit/publishers/kafka"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit/store/memory"
	"github.com/fridayblessings411-cell/AgroTour/pkg/testutil/containers"
)

type KafkaStoreSuite struct {
	suite.Suite
	broker string
}

func TestKafkaStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaStoreSuite))
}

func (s *KafkaStoreSuite) SetupSuite() {
	s.broker = containers.GetManager().GetRedpanda(s.T()).Broker
}

func (s *KafkaStoreSuite) TestAppendProducesAndRecordsLocally() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	topic := "agrotour.test.farm-events"
	local := memory.NewInMemoryStore()
	store, err := kafka.New([]string{s.broker}, topic, local)
	s.Require().NoError(err)
	defer store.Close()

	s.Require().NoError(store.EnsureTopic(ctx, 1, 1))
	s.Require().NoError(store.EnsureTopic(ctx, 1, 1), "second creation is a no-op")

	event := audit.Event{
		Category:  audit.CategoryCompliance,
		Timestamp: time.Now(),
		Action:    string(audit.EventFarmRegistered),
		Subject:   "0",
		ActorID:   "ST1FARMER",
		Height:    1,
		Amount:    1000,
	}
	s.Require().NoError(store.Append(ctx, event))

	listed, err := store.ListBySubject(ctx, "0")
	s.Require().NoError(err)
	s.Require().Len(listed, 1)

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	s.Require().Empty(fetches.Errors())

	var got []kafka.Message
	fetches.EachRecord(func(r *kgo.Record) {
		s.Equal("0", string(r.Key))
		var msg kafka.Message
		s.Require().NoError(json.Unmarshal(r.Value, &msg))
		got = append(got, msg)
	})
	s.Require().Len(got, 1)
	s.Equal(string(audit.EventFarmRegistered), got[0].Action)
	s.Equal(uint64(1000), got[0].Amount)
}
