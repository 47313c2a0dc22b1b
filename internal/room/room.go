package room

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/event_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrRoomClosed возвращается при обращении к уже закрытой комнате
var ErrRoomClosed = errors.New("event room closed")

// Config - настройки комнаты события. Нулевые значения заменяются дефолтами.
type Config struct {
	StalenessWindow  time.Duration // окно свежести позиций участников
	SweepInterval    time.Duration // период фоновой уборки
	SOSCooldown      time.Duration // окно подавления повторных SOS от одного отправителя
	SOSMaxLifetime   time.Duration // авто-гашение неподтвержденных SOS
	IdleGrace        time.Duration // через сколько сносить пустую комнату
	HeatmapCapacity  int           // емкость кольцевого буфера тепловой карты
	QueueSize        int           // размер входящей очереди операций
	SubscriberBuffer int           // размер исходящего буфера подписчика
}

func (c Config) withDefaults() Config {
	if c.StalenessWindow <= 0 {
		c.StalenessWindow = 60 * time.Second
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = 15 * time.Second
	}
	if c.SOSCooldown <= 0 {
		c.SOSCooldown = 30 * time.Second
	}
	if c.SOSMaxLifetime <= 0 {
		c.SOSMaxLifetime = 10 * time.Minute
	}
	if c.IdleGrace <= 0 {
		c.IdleGrace = 5 * time.Minute
	}
	if c.HeatmapCapacity <= 0 {
		c.HeatmapCapacity = DefaultHeatmapCapacity
	}
	if c.QueueSize <= 0 {
		c.QueueSize = 256
	}
	if c.SubscriberBuffer <= 0 {
		c.SubscriberBuffer = 64
	}
	return c
}

// Stats - живая сводка по событию для панели организатора
type Stats struct {
	Attendees         int `json:"total_attendees"`
	Volunteers        int `json:"volunteers"`
	Organizers        int `json:"organizers"`
	PendingIncidents  int `json:"pending_incidents"`
	CriticalIncidents int `json:"critical_incidents"`
	ActiveSignals     int `json:"active_sos"`
	AlertsSent        int `json:"alerts_sent"`
	Subscribers       int `json:"subscribers"`
}

// Subscriber - одно живое подключение к каналу события.
// Сообщения читаются из Receive(); канал закрывается комнатой
// при отписке или закрытии комнаты.
type Subscriber struct {
	ID      uuid.UUID
	Channel Channel
	send    chan []byte
}

// Receive возвращает канал исходящих сообщений подписчика
func (s *Subscriber) Receive() <-chan []byte {
	return s.send
}

// push кладет сообщение в буфер подписчика, не блокируя комнату:
// при переполнении вытесняется самое старое сообщение. Клиент обязан
// трактовать живой канал как поток текущего состояния, а не как лог.
func (s *Subscriber) push(msg []byte) {
	for {
		select {
		case s.send <- msg:
			return
		default:
			select {
			case <-s.send:
			default:
			}
		}
	}
}

// Room - координационная единица одного события.
// Владеет всем живым состоянием и сериализует все мутации через
// одну горутину: операции применяются строго в порядке поступления.
type Room struct {
	eventID string
	cfg     Config
	log     *logrus.Logger
	store   Store

	registry  *Registry
	heat      *HeatRing
	incidents *IncidentSet
	sos       *SOSSet
	alerts    *AlertHistory

	subs       map[Channel]map[*Subscriber]struct{}
	ops        chan func()
	closed     chan struct{}
	closeOnce  func()
	lastActive time.Time
}

func newRoom(eventID string, cfg Config, log *logrus.Logger, store Store) *Room {
	cfg = cfg.withDefaults()
	r := &Room{
		eventID:    eventID,
		cfg:        cfg,
		log:        log,
		store:      store,
		registry:   NewRegistry(),
		heat:       NewHeatRing(cfg.HeatmapCapacity),
		incidents:  NewIncidentSet(),
		sos:        NewSOSSet(),
		alerts:     NewAlertHistory(),
		subs:       make(map[Channel]map[*Subscriber]struct{}),
		ops:        make(chan func(), cfg.QueueSize),
		closed:     make(chan struct{}),
		lastActive: time.Now(),
	}
	closed := r.closed
	var once bool
	r.closeOnce = func() {
		if !once {
			once = true
			close(closed)
		}
	}
	return r
}

// EventID возвращает идентификатор события комнаты
func (r *Room) EventID() string {
	return r.eventID
}

// run - единственная горутина, применяющая операции комнаты.
// Паника внутри операции гасится здесь и не роняет другие комнаты.
func (r *Room) run() {
	sweep := time.NewTicker(r.cfg.SweepInterval)
	defer sweep.Stop()
	for {
		select {
		case op := <-r.ops:
			r.safely(op)
		case now := <-sweep.C:
			r.safely(func() { r.sweepNow(now) })
		case <-r.closed:
			r.safely(r.shutdown)
			return
		}
	}
}

func (r *Room) safely(op func()) {
	defer func() {
		if p := recover(); p != nil {
			r.log.WithField("event_id", r.eventID).Errorf("Recovered from panic in room op: %v", p)
		}
	}()
	op()
}

// Close останавливает горутину комнаты и закрывает всех подписчиков.
// Висящие операции завершаются с ErrRoomClosed, недоставленные сообщения отбрасываются.
func (r *Room) Close() {
	select {
	case r.ops <- r.closeOnce:
	case <-r.closed:
	}
}

func (r *Room) shutdown() {
	for _, set := range r.subs {
		for sub := range set {
			close(sub.send)
		}
	}
	r.subs = make(map[Channel]map[*Subscriber]struct{})
}

// do ставит операцию в очередь комнаты и ждет ее выполнения.
// Очередь ограничена: при переполнении производитель ждет до отмены контекста.
func (r *Room) do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	select {
	case r.ops <- func() { defer close(done); fn() }:
	case <-r.closed:
		return ErrRoomClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-done:
		return nil
	case <-r.closed:
		return ErrRoomClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Room) fanout(ch Channel, payload any) {
	set := r.subs[ch]
	if len(set) == 0 {
		return
	}
	msg, err := json.Marshal(payload)
	if err != nil {
		r.log.WithError(err).WithField("event_id", r.eventID).Error("Failed to marshal fanout payload")
		return
	}
	for sub := range set {
		sub.push(msg)
	}
}

func (r *Room) sweepNow(now time.Time) {
	removed := r.registry.Sweep(now, r.cfg.StalenessWindow)
	expired := r.sos.ExpireBefore(now.Add(-r.cfg.SOSMaxLifetime))
	for _, sig := range expired {
		r.fanout(ChannelLiveMap, sosDelta(sig))
		if r.store != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			if err := r.store.DeactivateSignal(ctx, sig.ID, now); err != nil {
				r.log.WithError(err).WithField("signal_id", sig.ID).Error("Failed to persist expired SOS signal")
			}
			cancel()
		}
	}
	if removed > 0 || len(expired) > 0 {
		r.log.WithFields(logrus.Fields{
			"event_id":    r.eventID,
			"stale":       removed,
			"expired_sos": len(expired),
		}).Debug("Room sweep completed")
	}
}

// UpsertEntity вставляет или обновляет позицию участника.
// Устаревшее обновление молча игнорируется: ошибки наружу нет,
// клиент просто не увидит изменения.
func (r *Room) UpsertEntity(ctx context.Context, e models.Entity) error {
	return r.do(ctx, func() {
		now := time.Now()
		e.EventID = r.eventID
		if e.LastSeen.IsZero() {
			e.LastSeen = now
		}
		if r.registry.Upsert(e) {
			r.fanout(ChannelLiveMap, entityDelta(e))
		}
		r.lastActive = now
	})
}

// Track обрабатывает позиционный пинг канала track: обновляет позицию
// отправителя и добавляет точку плотности в тепловую карту.
func (r *Room) Track(ctx context.Context, e models.Entity, weight float64) error {
	return r.do(ctx, func() {
		now := time.Now()
		e.EventID = r.eventID
		e.LastSeen = now
		sample := models.HeatSample{Lat: e.Lat, Lng: e.Lng, Weight: weight, Timestamp: now}
		r.heat.Add(sample)
		r.fanout(ChannelHeatmap, heatmapDelta(sample))
		if r.registry.Upsert(e) {
			r.fanout(ChannelLiveMap, entityDelta(e))
		}
		r.lastActive = now
	})
}

// RemoveEntity удаляет позицию участника (например, при выходе с события)
func (r *Room) RemoveEntity(ctx context.Context, id string) error {
	return r.do(ctx, func() {
		r.registry.Remove(id)
		r.lastActive = time.Now()
	})
}

// AddSample добавляет точку плотности напрямую, минуя реестр позиций
func (r *Room) AddSample(ctx context.Context, sample models.HeatSample) error {
	return r.do(ctx, func() {
		if sample.Timestamp.IsZero() {
			sample.Timestamp = time.Now()
		}
		r.heat.Add(sample)
		r.fanout(ChannelHeatmap, heatmapDelta(sample))
		r.lastActive = time.Now()
	})
}

// MapSnapshot возвращает текущее состояние живой карты: свежие позиции,
// нетерминальные инциденты и активные SOS
func (r *Room) MapSnapshot(ctx context.Context) ([]MapEntity, error) {
	var out []MapEntity
	err := r.do(ctx, func() {
		out = r.mapSnapshotLocked(time.Now())
	})
	return out, err
}

func (r *Room) mapSnapshotLocked(now time.Time) []MapEntity {
	entities := r.registry.Snapshot(now, r.cfg.StalenessWindow)
	out := make([]MapEntity, 0, len(entities))
	for _, e := range entities {
		out = append(out, entityDelta(e))
	}
	for _, inc := range r.incidents.Open() {
		out = append(out, incidentDelta(inc))
	}
	for _, sig := range r.sos.Active() {
		out = append(out, sosDelta(&sig))
	}
	return out
}

// HeatSnapshot возвращает содержимое буфера тепловой карты
func (r *Room) HeatSnapshot(ctx context.Context) ([]models.HeatSample, error) {
	var out []models.HeatSample
	err := r.do(ctx, func() {
		out = r.heat.Snapshot()
	})
	return out, err
}

// ReportIncident регистрирует инцидент и рассылает его маркер на живую карту
func (r *Room) ReportIncident(ctx context.Context, inc *models.Incident) (models.Incident, error) {
	var out models.Incident
	err := r.do(ctx, func() {
		now := time.Now()
		inc.EventID = r.eventID
		if inc.ID == uuid.Nil {
			inc.ID = uuid.New()
		}
		r.incidents.Create(inc, now)
		r.fanout(ChannelLiveMap, incidentDelta(inc))
		r.lastActive = now
		out = *inc
	})
	return out, err
}

// UpdateIncidentStatus применяет переход машины состояний инцидента.
// Недопустимый переход возвращает ErrInvalidTransition, состояние не меняется.
func (r *Room) UpdateIncidentStatus(ctx context.Context, id uuid.UUID, next models.IncidentStatus, performedBy, notes string) (models.Incident, error) {
	var (
		out   models.Incident
		opErr error
	)
	err := r.do(ctx, func() {
		now := time.Now()
		inc, err := r.incidents.Transition(id, next, performedBy, notes, now)
		if err != nil {
			opErr = err
			return
		}
		r.fanout(ChannelLiveMap, incidentDelta(inc))
		r.lastActive = now
		out = *inc
	})
	if err != nil {
		return models.Incident{}, err
	}
	return out, opErr
}

// Incidents возвращает копии инцидентов события с учетом фильтра
func (r *Room) Incidents(ctx context.Context, filter IncidentFilter) ([]models.Incident, error) {
	var out []models.Incident
	err := r.do(ctx, func() {
		list := r.incidents.List(filter)
		out = make([]models.Incident, 0, len(list))
		for _, inc := range list {
			out = append(out, *inc)
		}
	})
	return out, err
}

// Incident возвращает один инцидент по id вместе с аудитом
func (r *Room) Incident(ctx context.Context, id uuid.UUID) (models.Incident, error) {
	var (
		out   models.Incident
		opErr error
	)
	err := r.do(ctx, func() {
		inc, ok := r.incidents.Get(id)
		if !ok {
			opErr = ErrIncidentNotFound
			return
		}
		out = *inc
	})
	if err != nil {
		return models.Incident{}, err
	}
	return out, opErr
}

// TriggerSOS регистрирует сигнал бедствия с дедупликацией по кулдауну.
// created=false означает, что вернулся уже существующий активный сигнал.
func (r *Room) TriggerSOS(ctx context.Context, sig *models.SOSSignal) (models.SOSSignal, bool, error) {
	var (
		out     models.SOSSignal
		created bool
	)
	err := r.do(ctx, func() {
		now := time.Now()
		sig.EventID = r.eventID
		if sig.ID == uuid.Nil {
			sig.ID = uuid.New()
		}
		stored, fresh := r.sos.Trigger(sig, r.cfg.SOSCooldown, now)
		if fresh {
			r.fanout(ChannelLiveMap, sosDelta(stored))
		}
		r.lastActive = now
		out = *stored
		created = fresh
	})
	return out, created, err
}

// AcknowledgeSOS гасит сигнал по подтверждению организатора
func (r *Room) AcknowledgeSOS(ctx context.Context, id uuid.UUID) (models.SOSSignal, error) {
	var (
		out   models.SOSSignal
		opErr error
	)
	err := r.do(ctx, func() {
		now := time.Now()
		sig, err := r.sos.Acknowledge(id, now)
		if err != nil {
			opErr = err
			return
		}
		r.fanout(ChannelLiveMap, sosDelta(sig))
		r.lastActive = now
		out = *sig
	})
	if err != nil {
		return models.SOSSignal{}, err
	}
	return out, opErr
}

// ActiveSignals возвращает активные сигналы бедствия события
func (r *Room) ActiveSignals(ctx context.Context) ([]models.SOSSignal, error) {
	var out []models.SOSSignal
	err := r.do(ctx, func() {
		out = r.sos.Active()
	})
	return out, err
}

// BroadcastAlert валидирует оповещение, пишет его в историю и рассылает
// всем подключенным подписчикам канала broadcast. Доставка best-effort:
// отключенные подписчики это оповещение не получат и на повторном
// подключении реплея не будет - история доступна отдельным запросом.
func (r *Room) BroadcastAlert(ctx context.Context, a *models.SafetyAlert) (models.SafetyAlert, error) {
	var (
		out   models.SafetyAlert
		opErr error
	)
	err := r.do(ctx, func() {
		if a.Title == "" || a.Message == "" {
			opErr = ErrEmptyAlert
			return
		}
		now := time.Now()
		a.EventID = r.eventID
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		a.CreatedAt = now
		if a.AudienceType == "" {
			a.AudienceType = "ALL"
		}
		r.alerts.Append(a)
		r.fanout(ChannelBroadcast, alertMessage(*a))
		r.lastActive = now
		out = *a
	})
	if err != nil {
		return models.SafetyAlert{}, err
	}
	return out, opErr
}

// Alerts возвращает историю оповещений события, свежие первыми
func (r *Room) Alerts(ctx context.Context) ([]models.SafetyAlert, error) {
	var out []models.SafetyAlert
	err := r.do(ctx, func() {
		out = r.alerts.All()
	})
	return out, err
}

// Stats возвращает живую сводку по событию
func (r *Room) Stats(ctx context.Context) (Stats, error) {
	var out Stats
	err := r.do(ctx, func() {
		now := time.Now()
		counts := r.registry.CountByKind(now, r.cfg.StalenessWindow)
		out = Stats{
			Attendees:         counts[models.EntityAttendee],
			Volunteers:        counts[models.EntityVolunteer],
			Organizers:        counts[models.EntityOrganizer],
			PendingIncidents:  r.incidents.PendingCount(),
			CriticalIncidents: r.incidents.CriticalCount(),
			ActiveSignals:     len(r.sos.Active()),
			AlertsSent:        r.alerts.Len(),
			Subscribers:       r.subCount(),
		}
	})
	return out, err
}

// Subscribe регистрирует подписчика канала. Для каналов live-map и heatmap
// перед живыми дельтами в буфер кладется снапшот текущего состояния,
// поэтому подписчик сначала видит все существующие сущности.
func (r *Room) Subscribe(ctx context.Context, ch Channel) (*Subscriber, error) {
	sub := &Subscriber{
		ID:      uuid.New(),
		Channel: ch,
		send:    make(chan []byte, r.cfg.SubscriberBuffer),
	}
	err := r.do(ctx, func() {
		now := time.Now()
		switch ch {
		case ChannelLiveMap:
			for _, entity := range r.mapSnapshotLocked(now) {
				if msg, err := json.Marshal(entity); err == nil {
					sub.push(msg)
				}
			}
		case ChannelHeatmap:
			if msg, err := json.Marshal(heatmapSnapshot(r.heat.Snapshot())); err == nil {
				sub.push(msg)
			}
		}
		if r.subs[ch] == nil {
			r.subs[ch] = make(map[*Subscriber]struct{})
		}
		r.subs[ch][sub] = struct{}{}
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// Unsubscribe убирает подписчика без побочных эффектов на состояние комнаты.
// Недоставленные сообщения отбрасываются.
func (r *Room) Unsubscribe(sub *Subscriber) {
	_ = r.do(context.Background(), func() {
		set := r.subs[sub.Channel]
		if _, ok := set[sub]; !ok {
			return
		}
		delete(set, sub)
		close(sub.send)
	})
}

// Idle сообщает, можно ли сносить комнату: подписчиков нет
// и производители молчат дольше grace-периода
func (r *Room) Idle(ctx context.Context, now time.Time) (bool, error) {
	var idle bool
	err := r.do(ctx, func() {
		idle = r.subCount() == 0 && now.Sub(r.lastActive) >= r.cfg.IdleGrace
	})
	return idle, err
}

func (r *Room) subCount() int {
	n := 0
	for _, set := range r.subs {
		n += len(set)
	}
	return n
}
