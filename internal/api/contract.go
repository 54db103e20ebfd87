package api

const (
	TableTracker = "tracker"
	TableStatus  = "status"
)

type Search struct {
	Value string `json:"value"`
}

type ColumnOrder struct {
	Column int    `json:"column"`
	Dir    string `json:"dir"`
}

type Timespan struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// TableRequest asks for one page of the tracker or the status table.
// Start is the offset of the first row, Length the page size.
type TableRequest struct {
	Draw     int           `json:"draw"`
	Start    int           `json:"start"`
	Length   int           `json:"length"`
	Search   Search        `json:"search"`
	Order    []ColumnOrder `json:"order"`
	Type     string        `json:"type"`
	IMEI     string        `json:"imei"`
	Timespan Timespan      `json:"timespan"`
}

type TableResponse[T any] struct {
	Draw            int    `json:"draw"`
	RecordsTotal    int    `json:"recordsTotal"`
	RecordsFiltered int    `json:"recordsFiltered"`
	Data            []T    `json:"data"`
	Error           string `json:"error,omitempty"`
}

// Timestamp pairs the rendered time with the unix seconds it sorts by.
type Timestamp struct {
	Display   string `json:"display"`
	Timestamp int64  `json:"timestamp"`
}

type Battery struct {
	Voltage    *float64 `json:"voltage"`
	Percentage *float64 `json:"percentage"`
	Display    string   `json:"display"`
	Level      string   `json:"level"`
}

type TrackerRow struct {
	IMEI    string  `json:"imei"`
	Alias   string  `json:"alias"`
	Battery Battery `json:"battery"`
}

type StatusRow struct {
	ID        int64     `json:"id"`
	Timestamp Timestamp `json:"timestamp"`
	Battery   Battery   `json:"battery"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Radius    float64   `json:"radius"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Celltower int       `json:"celltower"`
	Temp      string    `json:"temp"`
}

type DetailRequest struct {
	Type string `json:"type"`
	ID   int64  `json:"id"`
}

type Cell struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Radius float64 `json:"radius"`
}

// DetailResponse locates a status. Radii are in metres.
type DetailResponse struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Radius float64 `json:"radius"`
	Cells  []Cell  `json:"cells,omitempty"`
}

type DeviceSettings struct {
	IMEI          string  `json:"imei"`
	Alias         string  `json:"alias"`
	Sleeptime     float64 `json:"sleeptime"`
	SleeptimeUnit int     `json:"sleeptime_unit"`
}
