package db

type Device struct {
	ID             int64   `db:"id"`
	SN             string  `db:"sn"`
	Alias          string  `db:"alias"`
	Sleeptime      float64 `db:"sleeptime"`
	SleeptimeUnit  int     `db:"sleeptime_unit"`
	WaketimeOffset int     `db:"waketime_offset"`
	NextWake       int64   `db:"next_wake"`
	VoltageOffset  float64 `db:"voltage_offset"`
}

// TrackerRow is a device as listed in the tracker table, with the voltage
// of its newest status.
type TrackerRow struct {
	ID            int64    `db:"id"`
	SN            string   `db:"sn"`
	Alias         string   `db:"alias"`
	VoltageOffset float64  `db:"voltage_offset"`
	LastVoltage   *float64 `db:"last_voltage"`
}

type StatusRow struct {
	ID         int64    `db:"id"`
	Timestamp  int64    `db:"timestamp"`
	Lat        float64  `db:"lat"`
	Lon        float64  `db:"lon"`
	Radius     float64  `db:"radius"`
	Voltage    float64  `db:"voltage"`
	Temp       *float64 `db:"temp"`
	City       *string  `db:"city"`
	Country    *string  `db:"country"`
	Celltowers int64    `db:"celltowers"`
}

type Cell struct {
	Lat    float64 `db:"lat"`
	Lon    float64 `db:"lon"`
	Radius float64 `db:"radius"`
	Rxl    int     `db:"rxl"`
}

// Celltower is a known cell site. Range is in meters, Created and Updated
// are unix seconds.
type Celltower struct {
	ID      int64   `db:"id"`
	Radio   string  `db:"radio"`
	MCC     int     `db:"mcc"`
	MNC     int     `db:"mnc"`
	LAC     int     `db:"lac"`
	CID     int     `db:"cid"`
	Lat     float64 `db:"lat"`
	Lon     float64 `db:"lon"`
	Range   float64 `db:"range"`
	Samples int     `db:"samples"`
	Created int64   `db:"created"`
	Updated int64   `db:"updated"`
}

// NewStatus is a located report to be stored for the device with serial SN.
type NewStatus struct {
	SN        string
	Timestamp int64
	Lat       float64
	Lon       float64
	Radius    float64
	Voltage   float64
	Temp      *float64
	City      string
	Country   string
	Cells     []Cell
}

// Order sorts by the column at index Column of a table's column list.
type Order struct {
	Column int
	Desc   bool
}

type TrackerQuery struct {
	UserID int64
	Search string
	Order  []Order
	Offset int
	Limit  int
}

type StatusQuery struct {
	DeviceID int64
	Start    int64
	End      int64
	Search   string
	Order    []Order
	Offset   int
	Limit    int
}

type Settings struct {
	Alias         string
	Sleeptime     float64
	SleeptimeUnit int
}
