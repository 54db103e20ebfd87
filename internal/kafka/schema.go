package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
)

const (
	TopicTrackerStatuses = "tracker-statuses"
	TopicStatusUpdates   = "status-updates"
)

// Cell is a cell tower the tracker heard. Trackers either send the
// tower's identity, which the recorder resolves against the known
// celltowers, or an already resolved position and range.
type Cell struct {
	MCC    int     `json:"mcc,omitempty"`
	MNC    int     `json:"mnc,omitempty"`
	LAC    int     `json:"lac,omitempty"`
	CID    int     `json:"cellid,omitempty"`
	Arfcn  int     `json:"arfcn,omitempty"`
	Lat    float64 `json:"lat,omitempty"`
	Lon    float64 `json:"lon,omitempty"`
	Radius float64 `json:"radius,omitempty"`
	Rxl    int     `json:"rxl"`
}

// Identified reports whether the tracker sent the cell's identity rather
// than a position.
func (c Cell) Identified() bool {
	return c.MCC != 0 || c.MNC != 0 || c.LAC != 0 || c.CID != 0
}

// StatusEvent is a tracker report as it enters the pipeline. A report
// without a position (lat, lon and radius all 0) is located from its
// identified cells.
type StatusEvent struct {
	DeviceID  string   `json:"device_id"`
	Timestamp int64    `json:"timestamp"`
	Lat       float64  `json:"lat"`
	Lon       float64  `json:"lon"`
	Radius    float64  `json:"radius"`
	Voltage   float64  `json:"voltage"`
	Temp      *float64 `json:"temp,omitempty"`
	City      string   `json:"city,omitempty"`
	Country   string   `json:"country,omitempty"`
	Cells     []Cell   `json:"cells,omitempty"`
}

// StatusUpdate announces a stored status to everyone watching the device.
type StatusUpdate struct {
	DeviceID  string  `json:"device"`
	StatusID  int64   `json:"status"`
	Timestamp int64   `json:"timestamp"`
	Users     []int64 `json:"users"`
}

type Reader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Lag() int64
	Close() error
}

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}
