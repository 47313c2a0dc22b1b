package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/event_safety_system/internal/config"
	"github.com/shenikar/event_safety_system/internal/models"
	"github.com/shenikar/event_safety_system/internal/room"
	"github.com/shenikar/event_safety_system/internal/service/mocks"
	"github.com/shenikar/event_safety_system/internal/webhook"
	webhook_mocks "github.com/shenikar/event_safety_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSOSService — вспомогательная функция для создания инстанса сервиса с моками
func newTestSOSService(t *testing.T) (*sosService, *mocks.MockSOSStore, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockSOSStore(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{}
	hub := room.NewHub(room.Config{}, logger, nil)
	t.Cleanup(hub.Close)

	service := NewSOSService(hub, storeMock, publisherMock, logger, cfg)
	return service.(*sosService), storeMock, publisherMock
}

func TestTriggerSOS_Success(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestSOSService(t)
	ctx := context.Background()
	signal := &models.SOSSignal{
		EventID:  "event-1",
		SenderID: "user-1",
		Type:     models.SOSPanic,
		Lat:      55.75,
		Lng:      37.61,
	}

	// Ожидания: новый сигнал пишется в бд и всегда эскалируется
	storeMock.EXPECT().
		SaveSignal(ctx, gomock.Any()).
		Do(func(ctx context.Context, sig *models.SOSSignal) {
			assert.True(t, sig.Active)
			assert.Equal(t, "user-1", sig.SenderID)
		}).Return(nil).Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.Event) {
			assert.Equal(t, webhook.KindSOSTriggered, event.Kind)
			assert.Equal(t, "event-1", event.EventID)
			assert.Equal(t, string(models.SOSPanic), event.Severity)
		}).Return(nil).Times(1)

	// Действие
	stored, created, err := service.Trigger(ctx, signal)

	// Проверки
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.True(t, stored.Active)
}

func TestTriggerSOS_CooldownSuppressesDuplicate(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestSOSService(t)
	ctx := context.Background()

	// Ожидания: первый триггер создает сигнал, повтор не трогает ни бд, ни вебхук
	storeMock.EXPECT().SaveSignal(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	first, created, err := service.Trigger(ctx, &models.SOSSignal{EventID: "event-1", SenderID: "user-1", Type: models.SOSPanic})
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := service.Trigger(ctx, &models.SOSSignal{EventID: "event-1", SenderID: "user-1", Type: models.SOSPanic})

	// Проверки
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
}

func TestTriggerSOS_StoreFailureDoesNotFailRequest(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestSOSService(t)
	ctx := context.Background()

	// Ожидания: бд легла, но сигнал живет и эскалация уходит
	storeMock.EXPECT().SaveSignal(ctx, gomock.Any()).Return(fmt.Errorf("бд недоступна")).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	stored, created, err := service.Trigger(ctx, &models.SOSSignal{EventID: "event-1", SenderID: "user-1", Type: models.SOSMedical})

	// Проверки
	require.NoError(t, err)
	assert.True(t, created)
	assert.True(t, stored.Active)
}

func TestAcknowledgeSOS_Success(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestSOSService(t)
	ctx := context.Background()

	storeMock.EXPECT().SaveSignal(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)
	created, _, err := service.Trigger(ctx, &models.SOSSignal{EventID: "event-1", SenderID: "user-1", Type: models.SOSThreat})
	require.NoError(t, err)

	// Ожидания
	storeMock.EXPECT().DeactivateSignal(ctx, created.ID, gomock.Any()).Return(nil).Times(1)

	// Действие
	acked, err := service.Acknowledge(ctx, "event-1", created.ID)

	// Проверки
	require.NoError(t, err)
	assert.False(t, acked.Active)
	require.NotNil(t, acked.AcknowledgedAt)
}

func TestAcknowledgeSOS_NotFound(t *testing.T) {
	// Подготовка
	service, _, _ := newTestSOSService(t)
	ctx := context.Background()

	// Действие
	_, err := service.Acknowledge(ctx, "event-1", uuid.New())

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, room.ErrSignalNotFound)
}

func TestActiveSOS(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestSOSService(t)
	ctx := context.Background()

	storeMock.EXPECT().SaveSignal(ctx, gomock.Any()).Return(nil).Times(2)
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(2)
	_, _, err := service.Trigger(ctx, &models.SOSSignal{EventID: "event-1", SenderID: "user-1", Type: models.SOSPanic})
	require.NoError(t, err)
	second, _, err := service.Trigger(ctx, &models.SOSSignal{EventID: "event-1", SenderID: "user-2", Type: models.SOSMedical})
	require.NoError(t, err)

	storeMock.EXPECT().DeactivateSignal(ctx, second.ID, gomock.Any()).Return(nil).Times(1)
	_, err = service.Acknowledge(ctx, "event-1", second.ID)
	require.NoError(t, err)

	// Действие
	active, err := service.Active(ctx, "event-1")

	// Проверки
	require.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, "user-1", active[0].SenderID)
}
