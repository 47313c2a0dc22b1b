package service

import (
	"bytes"
	"context"
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

// newTestAlertService — вспомогательная функция для создания инстанса сервиса с моками
func newTestAlertService(t *testing.T) (*alertService, *mocks.MockAlertStore, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockAlertStore(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{}
	hub := room.NewHub(room.Config{}, logger, nil)
	t.Cleanup(hub.Close)

	service := NewAlertService(hub, storeMock, publisherMock, logger, cfg)
	return service.(*alertService), storeMock, publisherMock
}

func TestBroadcastAlert_Success(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.SafetyAlert{
		EventID:  "event-1",
		Title:    "Гроза",
		Message:  "Ожидается гроза, укройтесь в павильонах",
		Severity: models.AlertWarning,
		SenderID: "organizer-1",
	}

	// Ожидания
	storeMock.EXPECT().
		SaveAlert(ctx, gomock.Any()).
		Do(func(ctx context.Context, a *models.SafetyAlert) {
			assert.Equal(t, "ALL", a.AudienceType)
			assert.False(t, a.CreatedAt.IsZero())
		}).Return(nil).Times(1)

	// WARNING не эскалируется
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	stored, err := service.Broadcast(ctx, alert)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.Equal(t, "ALL", stored.AudienceType)
}

func TestBroadcastAlert_EmergencyEscalates(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.SafetyAlert{
		EventID:  "event-1",
		Title:    "Эвакуация",
		Message:  "Немедленно покиньте территорию",
		Severity: models.AlertEmergency,
	}

	// Ожидания
	storeMock.EXPECT().SaveAlert(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.Event) {
			assert.Equal(t, webhook.KindSafetyAlert, event.Kind)
			assert.Equal(t, string(models.AlertEmergency), event.Severity)
		}).Return(nil).Times(1)

	// Действие
	_, err := service.Broadcast(ctx, alert)

	// Проверки
	require.NoError(t, err)
}

func TestBroadcastAlert_EmptyRejected(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestAlertService(t)
	ctx := context.Background()

	// Ожидания: невалидное оповещение не доходит ни до бд, ни до вебхука
	storeMock.EXPECT().SaveAlert(gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.Broadcast(ctx, &models.SafetyAlert{EventID: "event-1", Title: "Без текста"})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, room.ErrEmptyAlert)
}

func TestAlertHistory_NewestFirst(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestAlertService(t)
	ctx := context.Background()

	storeMock.EXPECT().SaveAlert(ctx, gomock.Any()).Return(nil).Times(2)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	_, err := service.Broadcast(ctx, &models.SafetyAlert{EventID: "event-1", Title: "Первое", Message: "текст"})
	require.NoError(t, err)
	_, err = service.Broadcast(ctx, &models.SafetyAlert{EventID: "event-1", Title: "Второе", Message: "текст"})
	require.NoError(t, err)

	// Действие
	history, err := service.History(ctx, "event-1")

	// Проверки
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Второе", history[0].Title)
	assert.Equal(t, "Первое", history[1].Title)
}
