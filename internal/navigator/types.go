package navigator

import (
	"context"
	"time"
)

// TimeRange bounds a status query in unix seconds. Zero leaves a side open.
type TimeRange struct {
	Start int64
	End   int64
}

type Record struct {
	ID         int64
	Timestamp  time.Time
	Display    string
	DeviceID   string
	Country    string
	City       string
	Celltowers int
	Temp       string
	Battery    string
}

// Page is one server page of records. Index is zero based; Filtered is the
// number of records matching the filter across all pages.
type Page struct {
	Index    int
	Rows     []Record
	Total    int
	Filtered int
}

type Query struct {
	Device   string
	Range    TimeRange
	Search   string
	Page     int
	PageSize int
}

// Estimate is a contributing cell tower position.
type Estimate struct {
	Lat    float64
	Lon    float64
	Radius float64
}

// Detail locates one status. Radii are in metres.
type Detail struct {
	Lat    float64
	Lon    float64
	Radius float64
	Cells  []Estimate
}

// Source serves status pages and details.
type Source interface {
	Statuses(ctx context.Context, q Query) (Page, error)
	Detail(ctx context.Context, statusID int64) (Detail, error)
}

type MarkerKind int

const (
	MarkerPosition MarkerKind = iota
	MarkerCell
)

type Marker struct {
	Kind   MarkerKind
	Lat    float64
	Lon    float64
	Radius float64
}

// Layer holds the markers drawn for the current selection.
type Layer interface {
	Clear()
	Add(m Marker)
}

type discardLayer struct{}

func (discardLayer) Clear()     {}
func (discardLayer) Add(Marker) {}

type Kind int

const (
	KindPage Kind = iota
	KindDetail
)

// Request is a cancellable handle for one outstanding fetch.
type Request struct {
	Kind     Kind
	Seq      uint64
	Query    Query
	StatusID int64

	ctx    context.Context
	cancel context.CancelFunc
}

func (r *Request) Context() context.Context { return r.ctx }

func (r *Request) Cancel() {
	if r.cancel != nil {
		r.cancel()
	}
}

type Result struct {
	Request *Request
	Page    Page
	Detail  Detail
	Err     error
}
