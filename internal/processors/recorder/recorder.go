package recorder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"asset-tracker/internal/cache"
	"asset-tracker/internal/db"
	"asset-tracker/internal/locate"
	"asset-tracker/internal/wake"
	"asset-tracker/internal/worker"

	k "asset-tracker/internal/kafka" // alias to avoid name conflict

	"github.com/segmentio/kafka-go"
)

var (
	ErrReadMessage    = errors.New("error reading message")
	ErrJSONParse      = errors.New("error parsing JSON")
	ErrStoreFailed    = errors.New("error storing status")
	ErrWriteMessage   = errors.New("error writing message")
	ErrUnorderedEvent = errors.New("out of order event")
	ErrDuplicateEvent = errors.New("duplicate event")
	ErrInvalidEvent   = errors.New("invalid event")
	ErrLookupFailed   = errors.New("error looking up celltower")
)

type repository interface {
	CreateStatus(ctx context.Context, s db.NewStatus) (int64, db.Device, error)
	SetNextWake(ctx context.Context, deviceID int64, nextWake int64) error
	DeviceUsers(ctx context.Context, deviceID int64) ([]int64, error)
	FindCelltower(ctx context.Context, mcc, mnc, lac, cid int) (db.Celltower, error)
}

type deviceCache interface {
	Get(deviceID string) (cache.DeviceState, bool)
	Set(deviceID string, state cache.DeviceState)
}

type Config struct {
	Brokers         string
	ConsumerGroupID string
	ConsumerTopic   string
	PublisherTopic  string
	Cache           deviceCache
	DB              repository
}

// Recorder stores tracker statuses and announces them on the update topic.
type Recorder struct {
	worker *worker.Worker
	reader k.Reader
	writer k.Writer
	cache  deviceCache
	db     repository
	now    func() time.Time
}

func New(cfg Config) *Recorder {
	recorder := &Recorder{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: []string{cfg.Brokers},
			GroupID: cfg.ConsumerGroupID,
			Topic:   cfg.ConsumerTopic,
		}),
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers: []string{cfg.Brokers},
			Topic:   cfg.PublisherTopic,
		}),
		cache: cfg.Cache,
		db:    cfg.DB,
		now:   time.Now,
	}

	recorder.worker = worker.New(worker.Config{
		Name:      "recorder-worker",
		Processor: recorder,
	})
	return recorder
}

func (r *Recorder) Run(ctx context.Context) {
	r.worker.Run(ctx)
}

func (r *Recorder) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing recorder resources...")
	r.reader.Close()
	r.writer.Close()
}

// Auto-commit active
func (r *Recorder) ProcessMessage(ctx context.Context) error {
	const fn = "Recorder:ProcessMessage"
	m, err := r.reader.ReadMessage(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrReadMessage, err)
	}
	var event k.StatusEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrJSONParse, err)
	}

	if err := r.validateEvent(event); err != nil {
		slog.InfoContext(ctx, "Invalid status, skipping",
			"error", err,
			"device_id", event.DeviceID,
			"timestamp", event.Timestamp,
		)
		return nil
	}

	cells, fixes, err := r.resolveCells(ctx, event.Cells)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrLookupFailed, err)
	}
	if event.Lat == 0 && event.Lon == 0 && event.Radius == 0 {
		if est, err := locate.Laterate(fixes); err == nil {
			event.Lat, event.Lon, event.Radius = est.Lat, est.Lon, est.Radius
		} else {
			slog.InfoContext(ctx, "Status without position", "device_id", event.DeviceID, "error", err)
		}
	}

	statusID, device, err := r.db.CreateStatus(ctx, db.NewStatus{
		SN:        event.DeviceID,
		Timestamp: event.Timestamp,
		Lat:       event.Lat,
		Lon:       event.Lon,
		Radius:    event.Radius,
		Voltage:   event.Voltage,
		Temp:      event.Temp,
		City:      event.City,
		Country:   event.Country,
		Cells:     cells,
	})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrStoreFailed, err)
	}

	next := wake.Next(r.now(), device.Sleeptime, device.SleeptimeUnit, time.Duration(device.WaketimeOffset)*time.Second)
	if err := r.db.SetNextWake(ctx, device.ID, next.Unix()); err != nil {
		slog.ErrorContext(ctx, "Error storing next wake", "device_id", event.DeviceID, "error", err)
	}

	users, err := r.db.DeviceUsers(ctx, device.ID)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrStoreFailed, err)
	}

	out, err := json.Marshal(k.StatusUpdate{
		DeviceID:  event.DeviceID,
		StatusID:  statusID,
		Timestamp: event.Timestamp,
		Users:     users,
	})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrJSONParse, err)
	}
	err = r.writer.WriteMessages(ctx, kafka.Message{Key: []byte(event.DeviceID), Value: out})
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrWriteMessage, err)
	}

	// Set cache only after successful write
	r.cache.Set(event.DeviceID, cache.DeviceState{
		LastStatusID:      statusID,
		LastTimestampSeen: event.Timestamp,
	})
	slog.InfoContext(ctx, "Recorded status", "device_id", event.DeviceID, "status_id", statusID)
	return nil
}

// resolveCells turns the reported cells into stored cell estimates and the
// fixes to locate the status from. Identified cells are deduplicated and
// looked up; unknown towers are skipped.
func (r *Recorder) resolveCells(ctx context.Context, reported []k.Cell) ([]db.Cell, []locate.Fix, error) {
	cells := make([]db.Cell, 0, len(reported))
	var fixes []locate.Fix
	var observations []locate.Observation
	for _, c := range reported {
		if c.Identified() {
			observations = append(observations, locate.Observation{
				Cell:  locate.CellID{MCC: c.MCC, MNC: c.MNC, LAC: c.LAC, CID: c.CID},
				Rxl:   c.Rxl,
				Arfcn: c.Arfcn,
			})
			continue
		}
		cells = append(cells, db.Cell{Lat: c.Lat, Lon: c.Lon, Radius: c.Radius, Rxl: c.Rxl})
		fixes = append(fixes, locate.Fix{Lat: c.Lat, Lon: c.Lon, Dist: c.Radius})
	}

	for _, o := range locate.Dedupe(observations) {
		tower, err := r.db.FindCelltower(ctx, o.Cell.MCC, o.Cell.MNC, o.Cell.LAC, o.Cell.CID)
		if errors.Is(err, db.ErrNotFound) {
			slog.DebugContext(ctx, "Unknown celltower", "mcc", o.Cell.MCC, "mnc", o.Cell.MNC, "lac", o.Cell.LAC, "cid", o.Cell.CID)
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		dist := locate.Distance(o.Rxl, o.Arfcn)
		cells = append(cells, db.Cell{Lat: tower.Lat, Lon: tower.Lon, Radius: dist, Rxl: o.Rxl})
		fixes = append(fixes, locate.Fix{Lat: tower.Lat, Lon: tower.Lon, Dist: dist})
	}
	return cells, fixes, nil
}

func (r *Recorder) validateEvent(event k.StatusEvent) error {
	if event.DeviceID == "" || event.Timestamp <= 0 {
		return ErrInvalidEvent
	}
	if event.Lat < -90 || event.Lat > 90 || event.Lon < -180 || event.Lon > 180 || event.Radius < 0 {
		return ErrInvalidEvent
	}
	state, exists := r.cache.Get(event.DeviceID)
	if exists {
		if event.Timestamp < state.LastTimestampSeen {
			return ErrUnorderedEvent
		}
		if event.Timestamp == state.LastTimestampSeen {
			return ErrDuplicateEvent
		}
	}
	return nil
}
