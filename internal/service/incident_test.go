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

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
// Хаб комнат настоящий (без хранилища): живое состояние дешевле мокать нечем.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentStore, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockIncidentStore(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{}
	hub := room.NewHub(room.Config{}, logger, nil)
	t.Cleanup(hub.Close)

	service := NewIncidentService(hub, storeMock, publisherMock, logger, cfg)
	return service.(*incidentService), storeMock, publisherMock
}

func TestReportIncident_Success(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{
		EventID:    "event-1",
		Category:   models.CategoryMedical,
		ReporterID: "user-1",
		Lat:        55.75,
		Lng:        37.61,
	}

	// Ожидания
	storeMock.EXPECT().
		SaveIncident(ctx, gomock.Any()).
		Do(func(ctx context.Context, inc *models.Incident) {
			assert.Equal(t, models.StatusReported, inc.Status)
			assert.Equal(t, models.SeverityMedium, inc.Severity)
			assert.Len(t, inc.Activity, 1)
		}).Return(nil).Times(1)

	// Обычный инцидент не эскалируется
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	stored, err := service.Report(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.Equal(t, models.StatusReported, stored.Status)
	assert.Equal(t, "STATUS_CHANGE_REPORTED", stored.Activity[0].ActionType)
}

func TestReportIncident_CriticalEscalates(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{
		EventID:    "event-1",
		Category:   models.CategoryFire,
		Severity:   models.SeverityCritical,
		ReporterID: "user-1",
	}

	// Ожидания
	storeMock.EXPECT().SaveIncident(ctx, gomock.Any()).Return(nil).Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.Event) {
			assert.Equal(t, webhook.KindIncidentReported, event.Kind)
			assert.Equal(t, "event-1", event.EventID)
			assert.Equal(t, string(models.SeverityCritical), event.Severity)
		}).Return(nil).Times(1)

	// Действие
	_, err := service.Report(ctx, incident)

	// Проверки
	require.NoError(t, err)
}

func TestReportIncident_StoreFailureDoesNotFailRequest(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	incident := &models.Incident{
		EventID:  "event-1",
		Category: models.CategoryOther,
	}

	// Ожидания: бд недоступна, живой тракт продолжает работать
	storeMock.EXPECT().SaveIncident(ctx, gomock.Any()).Return(fmt.Errorf("бд недоступна")).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	stored, err := service.Report(ctx, incident)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusReported, stored.Status)
}

func TestUpdateIncidentStatus_Success(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()

	storeMock.EXPECT().SaveIncident(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
	reported, err := service.Report(ctx, &models.Incident{EventID: "event-1", Category: models.CategoryViolence})
	require.NoError(t, err)

	// Ожидания
	storeMock.EXPECT().
		SaveIncidentStatus(ctx, gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, inc *models.Incident, entry models.ActivityEntry) {
			assert.Equal(t, models.StatusInvestigating, inc.Status)
			assert.Equal(t, "STATUS_CHANGE_INVESTIGATING", entry.ActionType)
			assert.Equal(t, "organizer-1", entry.PerformedBy)
		}).Return(nil).Times(1)

	// Действие
	updated, err := service.UpdateStatus(ctx, "event-1", reported.ID, models.StatusInvestigating, "organizer-1", "проверяем")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusInvestigating, updated.Status)
	assert.Len(t, updated.Activity, 2)
}

func TestUpdateIncidentStatus_InvalidTransition(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()

	storeMock.EXPECT().SaveIncident(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
	reported, err := service.Report(ctx, &models.Incident{EventID: "event-1", Category: models.CategoryFire})
	require.NoError(t, err)

	// Ожидания: запрещенный переход не пишется в бд
	storeMock.EXPECT().SaveIncidentStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие: REPORTED -> RESOLVED запрещен, только через INVESTIGATING
	_, err = service.UpdateStatus(ctx, "event-1", reported.ID, models.StatusResolved, "organizer-1", "")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, room.ErrInvalidTransition)
}

func TestUpdateIncidentStatus_NotFound(t *testing.T) {
	// Подготовка
	service, _, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Действие
	_, err := service.UpdateStatus(ctx, "event-1", uuid.New(), models.StatusInvestigating, "organizer-1", "")

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, room.ErrIncidentNotFound)
}

func TestListIncidents_Filter(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()

	storeMock.EXPECT().SaveIncident(ctx, gomock.Any()).Return(nil).Times(2)
	// Критический инцидент эскалируется ровно один раз
	publisherMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)
	_, err := service.Report(ctx, &models.Incident{EventID: "event-1", Category: models.CategoryFire, Severity: models.SeverityCritical})
	require.NoError(t, err)
	_, err = service.Report(ctx, &models.Incident{EventID: "event-1", Category: models.CategoryMedical})
	require.NoError(t, err)

	// Действие
	critical, err := service.List(ctx, "event-1", room.IncidentFilter{Severity: models.SeverityCritical})
	require.NoError(t, err)
	all, err := service.List(ctx, "event-1", room.IncidentFilter{})
	require.NoError(t, err)

	// Проверки
	assert.Len(t, critical, 1)
	assert.Len(t, all, 2)
}
