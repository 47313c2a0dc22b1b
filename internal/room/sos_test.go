package room

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/event_safety_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSignal(sender string) *models.SOSSignal {
	return &models.SOSSignal{
		ID:       uuid.New(),
		EventID:  "event-1",
		SenderID: sender,
		Type:     models.SOSPanic,
		Lat:      55.75,
		Lng:      37.61,
	}
}

func TestSOSSet_DedupWithinCooldown(t *testing.T) {
	// Подготовка
	set := NewSOSSet()
	now := time.Now()
	cooldown := 30 * time.Second

	first, created := set.Trigger(newSignal("u1"), cooldown, now)
	require.True(t, created)

	// Действие: повторный триггер внутри окна кулдауна
	second, created := set.Trigger(newSignal("u1"), cooldown, now.Add(10*time.Second))

	// Проверки: новый сигнал не создан, вернулся существующий
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, set.Active(), 1)
}

func TestSOSSet_TriggerAfterCooldownCreatesSecond(t *testing.T) {
	set := NewSOSSet()
	now := time.Now()
	cooldown := 30 * time.Second

	_, created := set.Trigger(newSignal("u1"), cooldown, now)
	require.True(t, created)

	_, created = set.Trigger(newSignal("u1"), cooldown, now.Add(31*time.Second))

	assert.True(t, created)
	assert.Len(t, set.Active(), 2)
}

func TestSOSSet_DifferentSendersNotDeduped(t *testing.T) {
	set := NewSOSSet()
	now := time.Now()

	_, created := set.Trigger(newSignal("u1"), 30*time.Second, now)
	require.True(t, created)
	_, created = set.Trigger(newSignal("u2"), 30*time.Second, now)

	assert.True(t, created)
	assert.Len(t, set.Active(), 2)
}

func TestSOSSet_Acknowledge(t *testing.T) {
	set := NewSOSSet()
	now := time.Now()
	sig, _ := set.Trigger(newSignal("u1"), 30*time.Second, now)

	acked, err := set.Acknowledge(sig.ID, now.Add(time.Minute))

	require.NoError(t, err)
	assert.False(t, acked.Active)
	require.NotNil(t, acked.AcknowledgedAt)
	assert.Empty(t, set.Active())

	// Подтверждение после кулдауна позволяет отправителю снова подать сигнал
	_, created := set.Trigger(newSignal("u1"), 30*time.Second, now.Add(2*time.Minute))
	assert.True(t, created)
}

func TestSOSSet_AcknowledgeUnknown(t *testing.T) {
	set := NewSOSSet()

	_, err := set.Acknowledge(uuid.New(), time.Now())

	assert.ErrorIs(t, err, ErrSignalNotFound)
}

func TestSOSSet_ExpireBefore(t *testing.T) {
	// Подготовка: старый неподтвержденный сигнал и свежий
	set := NewSOSSet()
	now := time.Now()
	old, _ := set.Trigger(newSignal("u1"), 30*time.Second, now.Add(-11*time.Minute))
	fresh, _ := set.Trigger(newSignal("u2"), 30*time.Second, now)

	// Действие
	expired := set.ExpireBefore(now.Add(-10 * time.Minute))

	// Проверки: застрявший маркер погашен, свежий остался
	require.Len(t, expired, 1)
	assert.Equal(t, old.ID, expired[0].ID)
	active := set.Active()
	require.Len(t, active, 1)
	assert.Equal(t, fresh.ID, active[0].ID)
}

func TestSOSSet_SignalWithoutLocationStillAccepted(t *testing.T) {
	// GPS недоступен - координаты нулевые, но сигнал все равно создается
	set := NewSOSSet()
	sig := newSignal("u1")
	sig.Lat = 0
	sig.Lng = 0

	stored, created := set.Trigger(sig, 30*time.Second, time.Now())

	assert.True(t, created)
	assert.True(t, stored.Active)
}
