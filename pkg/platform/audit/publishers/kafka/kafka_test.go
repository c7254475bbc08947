package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	audit "github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit"
	"github.com/fridayblessings411-cell/AgroTour/pkg/platform/audit/store/memory"
)

func TestNewRequiresBrokersAndTopic(t *testing.T) {
	_, err := New(nil, "agrotour.farm-events", memory.NewInMemoryStore())
	require.Error(t, err)

	_, err = New([]string{"localhost:9092"}, "", memory.NewInMemoryStore())
	require.Error(t, err)
}

func TestMessageNormalizesTimestampToUTC(t *testing.T) {
	local := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("EAT", 3*60*60))
	msg := newMessage(audit.Event{
		Category:  audit.CategoryCompliance,
		Timestamp: local,
		Action:    string(audit.EventFarmRegistered),
		Subject:   "7",
		ActorID:   "ST1FARMER",
		Amount:    1000,
	})

	assert.Equal(t, time.UTC, msg.Timestamp.Location())
	assert.True(t, local.Equal(msg.Timestamp))

	back := msg.Event()
	assert.Equal(t, audit.CategoryCompliance, back.Category)
	assert.Equal(t, "7", back.Subject)
	assert.Equal(t, uint64(1000), back.Amount)
}
