package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"asset-tracker/internal/battery"
	"asset-tracker/internal/db"
	"asset-tracker/internal/wake"

	"github.com/go-chi/chi/v5"
)

const timeLayout = "02.01.2006 15:04:05"

type repository interface {
	ListTrackers(ctx context.Context, q db.TrackerQuery) ([]db.TrackerRow, error)
	CountTrackers(ctx context.Context, userID int64, search string) (int, int, error)
	ListStatuses(ctx context.Context, q db.StatusQuery) ([]db.StatusRow, error)
	CountStatuses(ctx context.Context, q db.StatusQuery) (int, int, error)
	GetDevice(ctx context.Context, sn string) (db.Device, error)
	IsDeviceUser(ctx context.Context, deviceID, userID int64) (bool, error)
	GetStatus(ctx context.Context, id, userID int64) (db.StatusRow, error)
	ListCells(ctx context.Context, statusID int64) ([]db.Cell, error)
	UpdateDeviceSettings(ctx context.Context, deviceID int64, s db.Settings) error
}

// socketServer upgrades a request into a push connection for a user.
type socketServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request, userID int64)
}

type API struct {
	DB        repository
	sockets   socketServer
	csrfToken string
	debug     bool
	location  *time.Location
	now       func() time.Time
}

type Config struct {
	DB        repository
	Sockets   socketServer
	CSRFToken string
	// Debug prepends the next expected update to status pages and adds
	// cell estimates to details.
	Debug    bool
	Location *time.Location
	Now      func() time.Time
}

func New(cfg Config) *API {
	a := &API{
		DB:        cfg.DB,
		sockets:   cfg.Sockets,
		csrfToken: cfg.CSRFToken,
		debug:     cfg.Debug,
		location:  cfg.Location,
		now:       cfg.Now,
	}
	if a.location == nil {
		a.location = time.Local
	}
	if a.now == nil {
		a.now = time.Now
	}
	return a
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func toOrders(in []ColumnOrder) []db.Order {
	out := make([]db.Order, 0, len(in))
	for _, o := range in {
		out = append(out, db.Order{Column: o.Column, Desc: o.Dir == "desc"})
	}
	return out
}

func batteryOf(voltage *float64, offset float64) Battery {
	if voltage == nil {
		display, level := battery.Display(nil)
		return Battery{Display: display, Level: string(level)}
	}
	v := *voltage + offset
	pct := battery.Percentage(v)
	display, level := battery.Display(&v)
	return Battery{Voltage: &v, Percentage: &pct, Display: display, Level: string(level)}
}

func orUnknown(s *string) string {
	if s == nil || *s == "" {
		return "???"
	}
	return *s
}

func (a *API) TableData(w http.ResponseWriter, r *http.Request) {
	var req TableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	switch req.Type {
	case TableTracker:
		a.trackerTable(w, r, req)
	case TableStatus:
		a.statusTable(w, r, req)
	default:
		http.Error(w, "unknown table type", http.StatusBadRequest)
	}
}

func (a *API) trackerTable(w http.ResponseWriter, r *http.Request, req TableRequest) {
	ctx := r.Context()
	userID, _ := UserID(ctx)

	rows, err := a.DB.ListTrackers(ctx, db.TrackerQuery{
		UserID: userID,
		Search: req.Search.Value,
		Order:  toOrders(req.Order),
		Offset: req.Start,
		Limit:  req.Length,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Error listing trackers", "user_id", userID, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	total, filtered, err := a.DB.CountTrackers(ctx, userID, req.Search.Value)
	if err != nil {
		slog.ErrorContext(ctx, "Error counting trackers", "user_id", userID, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := TableResponse[TrackerRow]{
		Draw:            req.Draw,
		RecordsTotal:    total,
		RecordsFiltered: filtered,
		Data:            make([]TrackerRow, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Data = append(resp.Data, TrackerRow{
			IMEI:    row.SN,
			Alias:   row.Alias,
			Battery: batteryOf(row.LastVoltage, row.VoltageOffset),
		})
	}
	writeJSON(w, resp)
}

func (a *API) statusTable(w http.ResponseWriter, r *http.Request, req TableRequest) {
	ctx := r.Context()
	resp := TableResponse[StatusRow]{Draw: req.Draw, Data: []StatusRow{}}

	if req.IMEI == "" || req.IMEI == "0" {
		writeJSON(w, resp)
		return
	}

	device, ok := a.ownedDevice(w, r, req.IMEI)
	if !ok {
		return
	}

	q := db.StatusQuery{
		DeviceID: device.ID,
		Start:    req.Timespan.Start,
		End:      req.Timespan.End,
		Search:   req.Search.Value,
		Order:    toOrders(req.Order),
		Offset:   req.Start,
		Limit:    req.Length,
	}
	rows, err := a.DB.ListStatuses(ctx, q)
	if err != nil {
		slog.ErrorContext(ctx, "Error listing statuses", "imei", req.IMEI, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	total, filtered, err := a.DB.CountStatuses(ctx, q)
	if err != nil {
		slog.ErrorContext(ctx, "Error counting statuses", "imei", req.IMEI, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	resp.RecordsTotal = total
	resp.RecordsFiltered = filtered

	if a.debug {
		resp.Data = append(resp.Data, a.expectedRow(device))
	}
	for _, row := range rows {
		temp := "???"
		if row.Temp != nil {
			temp = strconv.FormatFloat(*row.Temp, 'f', 1, 64)
		}
		voltage := row.Voltage
		resp.Data = append(resp.Data, StatusRow{
			ID: row.ID,
			Timestamp: Timestamp{
				Display:   time.Unix(row.Timestamp, 0).In(a.location).Format(timeLayout),
				Timestamp: row.Timestamp,
			},
			Battery:   batteryOf(&voltage, device.VoltageOffset),
			Lat:       row.Lat,
			Lon:       row.Lon,
			Radius:    row.Radius,
			City:      orUnknown(row.City),
			Country:   orUnknown(row.Country),
			Celltower: int(row.Celltowers),
			Temp:      temp,
		})
	}
	writeJSON(w, resp)
}

// expectedRow is the placeholder announcing when the device should report
// next. It always has id 0.
func (a *API) expectedRow(device db.Device) StatusRow {
	next := wake.Expected(
		time.Unix(device.NextWake, 0),
		time.Duration(device.WaketimeOffset)*time.Second,
		a.now(),
	)
	return StatusRow{
		Timestamp: Timestamp{
			Display:   next.In(a.location).Format(timeLayout),
			Timestamp: next.Unix(),
		},
		Battery: Battery{Display: "-", Level: string(battery.LevelUnknown)},
		City:    "...",
		Country: "...",
		Temp:    "...",
	}
}

// ownedDevice loads the device and checks the caller may see it, writing
// the error response otherwise.
func (a *API) ownedDevice(w http.ResponseWriter, r *http.Request, imei string) (db.Device, bool) {
	ctx := r.Context()
	userID, _ := UserID(ctx)

	device, err := a.DB.GetDevice(ctx, imei)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "unknown device", http.StatusNotFound)
			return db.Device{}, false
		}
		slog.ErrorContext(ctx, "Error loading device", "imei", imei, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return db.Device{}, false
	}
	owned, err := a.DB.IsDeviceUser(ctx, device.ID, userID)
	if err != nil {
		slog.ErrorContext(ctx, "Error checking device user", "imei", imei, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return db.Device{}, false
	}
	if !owned {
		http.Error(w, "forbidden", http.StatusForbidden)
		return db.Device{}, false
	}
	return device, true
}

func (a *API) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := UserID(ctx)

	var req DetailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Type != TableStatus {
		http.Error(w, "unknown detail type", http.StatusBadRequest)
		return
	}

	status, err := a.DB.GetStatus(ctx, req.ID, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "unknown status", http.StatusNotFound)
			return
		}
		slog.ErrorContext(ctx, "Error loading status", "status_id", req.ID, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := DetailResponse{Lat: status.Lat, Lon: status.Lon, Radius: status.Radius}
	if a.debug {
		cells, err := a.DB.ListCells(ctx, status.ID)
		if err != nil {
			slog.ErrorContext(ctx, "Error loading cells", "status_id", req.ID, "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		for _, c := range cells {
			resp.Cells = append(resp.Cells, Cell{Lat: c.Lat, Lon: c.Lon, Radius: c.Radius})
		}
	}
	writeJSON(w, resp)
}

func (a *API) GetSettings(w http.ResponseWriter, r *http.Request) {
	imei := chi.URLParam(r, "imei")
	device, ok := a.ownedDevice(w, r, imei)
	if !ok {
		return
	}
	writeJSON(w, DeviceSettings{
		IMEI:          device.SN,
		Alias:         device.Alias,
		Sleeptime:     device.Sleeptime,
		SleeptimeUnit: device.SleeptimeUnit,
	})
}

func (a *API) SaveSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	imei := chi.URLParam(r, "imei")

	var req DeviceSettings
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.IMEI != imei {
		http.Error(w, "imei mismatch", http.StatusForbidden)
		return
	}
	if req.Sleeptime <= 0 {
		http.Error(w, "invalid sleeptime", http.StatusBadRequest)
		return
	}

	device, ok := a.ownedDevice(w, r, imei)
	if !ok {
		return
	}
	unit := device.SleeptimeUnit
	if wake.ValidUnit(req.SleeptimeUnit) {
		unit = req.SleeptimeUnit
	}

	err := a.DB.UpdateDeviceSettings(ctx, device.ID, db.Settings{
		Alias:         req.Alias,
		Sleeptime:     req.Sleeptime,
		SleeptimeUnit: unit,
	})
	if err != nil {
		slog.ErrorContext(ctx, "Error saving settings", "imei", imei, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	slog.InfoContext(ctx, "Device settings saved", "imei", imei, "sleeptime", req.Sleeptime, "unit", unit)
	w.WriteHeader(http.StatusOK)
}

func (a *API) UserSocket(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())
	pathID, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}
	if pathID != userID {
		http.Error(w, fmt.Sprintf("user %d may not listen for user %d", userID, pathID), http.StatusForbidden)
		return
	}
	a.sockets.ServeWS(w, r, userID)
}
