package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/georgysavva/scany/pgxscan"
)

var (
	ErrInsertFailed           = errors.New("insert operation failed")
	ErrTransactionStartFailed = errors.New("transaction start failed")
	ErrSelectFailed           = errors.New("select operation failed")
	ErrUpdateFailed           = errors.New("update operation failed")
	ErrNotFound               = errors.New("not found")
)

// Sortable columns, indexed the way the dashboard tables number them.
var (
	trackerColumns = []string{"d.sn", "d.alias", "last_voltage"}
	statusColumns  = []string{"s.timestamp", "s.country", "s.city", "celltowers", "s.temp", "s.voltage"}
)

func orderBy(columns []string, orders []Order, fallback string) string {
	parts := make([]string, 0, len(orders))
	for _, o := range orders {
		if o.Column < 0 || o.Column >= len(columns) {
			continue
		}
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		parts = append(parts, columns[o.Column]+" "+dir+" NULLS LAST")
	}
	if len(parts) == 0 {
		return " ORDER BY " + fallback
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

// limit turns a non-positive page length into LIMIT NULL, i.e. no limit.
func limit(n int) any {
	if n <= 0 {
		return nil
	}
	return n
}

func like(search string) string {
	return "%" + search + "%"
}

func (db *DB) ListTrackers(ctx context.Context, q TrackerQuery) ([]TrackerRow, error) {
	const fn = "DB:ListTrackers"
	var rows []TrackerRow
	err := pgxscan.Select(ctx, db.pool, &rows, `
			SELECT
				d.id,
				d.sn,
				d.alias,
				d.voltage_offset,
				ls.voltage AS last_voltage
			FROM devices d
			JOIN device_users du ON du.device_id = d.id
			LEFT JOIN LATERAL (
				SELECT s.voltage
				FROM statuses s
				WHERE s.device_id = d.id
				ORDER BY s.timestamp DESC
				LIMIT 1
			) ls ON true
			WHERE du.user_id = $1
			AND (d.sn ILIKE $2 OR d.alias ILIKE $2)
		`+orderBy(trackerColumns, q.Order, "d.sn ASC")+`
			LIMIT $3 OFFSET $4
		`, q.UserID, like(q.Search), limit(q.Limit), q.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return rows, nil
}

// CountTrackers returns how many devices the user owns and how many of
// them match the search.
func (db *DB) CountTrackers(ctx context.Context, userID int64, search string) (int, int, error) {
	const fn = "DB:CountTrackers"
	var total, filtered int
	err := db.pool.QueryRow(ctx, `
			SELECT
				count(*),
				count(*) FILTER (WHERE d.sn ILIKE $2 OR d.alias ILIKE $2)
			FROM devices d
			JOIN device_users du ON du.device_id = d.id
			WHERE du.user_id = $1
		`, userID, like(search)).Scan(&total, &filtered)
	if err != nil {
		return 0, 0, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return total, filtered, nil
}

const statusFilter = `
			($2::bigint = 0 OR s.timestamp > $2)
			AND ($3::bigint = 0 OR s.timestamp < $3)
			AND ($4::text = '' OR s.city ILIKE $5 OR s.country ILIKE $5)`

func (db *DB) ListStatuses(ctx context.Context, q StatusQuery) ([]StatusRow, error) {
	const fn = "DB:ListStatuses"
	var rows []StatusRow
	err := pgxscan.Select(ctx, db.pool, &rows, `
			SELECT
				s.id,
				s.timestamp,
				s.lat,
				s.lon,
				s.radius,
				s.voltage,
				s.temp,
				s.city,
				s.country,
				(SELECT count(*) FROM status_cells c WHERE c.status_id = s.id) AS celltowers
			FROM statuses s
			WHERE s.device_id = $1
			AND `+statusFilter+
		orderBy(statusColumns, q.Order, "s.timestamp DESC")+`
			LIMIT $6 OFFSET $7
		`, q.DeviceID, q.Start, q.End, q.Search, like(q.Search), limit(q.Limit), q.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return rows, nil
}

// CountStatuses returns the number of statuses of the device and how many
// of them pass the query's filters.
func (db *DB) CountStatuses(ctx context.Context, q StatusQuery) (int, int, error) {
	const fn = "DB:CountStatuses"
	var total, filtered int
	err := db.pool.QueryRow(ctx, `
			SELECT
				count(*),
				count(*) FILTER (WHERE `+statusFilter+`)
			FROM statuses s
			WHERE s.device_id = $1
		`, q.DeviceID, q.Start, q.End, q.Search, like(q.Search)).Scan(&total, &filtered)
	if err != nil {
		return 0, 0, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return total, filtered, nil
}

func (db *DB) GetDevice(ctx context.Context, sn string) (Device, error) {
	const fn = "DB:GetDevice"
	var device Device
	err := pgxscan.Get(ctx, db.pool, &device, `
			SELECT id, sn, alias, sleeptime, sleeptime_unit, waketime_offset, next_wake, voltage_offset
			FROM devices
			WHERE sn = $1
		`, sn)
	if err != nil {
		if pgxscan.NotFound(err) {
			return Device{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return Device{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return device, nil
}

func (db *DB) IsDeviceUser(ctx context.Context, deviceID, userID int64) (bool, error) {
	const fn = "DB:IsDeviceUser"
	var exists bool
	err := db.pool.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM device_users WHERE device_id = $1 AND user_id = $2
			)
		`, deviceID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return exists, nil
}

func (db *DB) DeviceUsers(ctx context.Context, deviceID int64) ([]int64, error) {
	const fn = "DB:DeviceUsers"
	var users []int64
	err := pgxscan.Select(ctx, db.pool, &users, `
			SELECT user_id FROM device_users WHERE device_id = $1 ORDER BY user_id
		`, deviceID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return users, nil
}

func (db *DB) AddDeviceUser(ctx context.Context, deviceID, userID int64) error {
	const fn = "DB:AddDeviceUser"
	_, err := db.pool.Exec(ctx, `
			INSERT INTO device_users (device_id, user_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, deviceID, userID)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

// GetStatus loads a status of a device the user owns.
func (db *DB) GetStatus(ctx context.Context, id, userID int64) (StatusRow, error) {
	const fn = "DB:GetStatus"
	var row StatusRow
	err := pgxscan.Get(ctx, db.pool, &row, `
			SELECT
				s.id,
				s.timestamp,
				s.lat,
				s.lon,
				s.radius,
				s.voltage,
				s.temp,
				s.city,
				s.country,
				(SELECT count(*) FROM status_cells c WHERE c.status_id = s.id) AS celltowers
			FROM statuses s
			JOIN device_users du ON du.device_id = s.device_id
			WHERE s.id = $1 AND du.user_id = $2
		`, id, userID)
	if err != nil {
		if pgxscan.NotFound(err) {
			return StatusRow{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return StatusRow{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return row, nil
}

// ListCells returns the cell estimates of a status, strongest first.
func (db *DB) ListCells(ctx context.Context, statusID int64) ([]Cell, error) {
	const fn = "DB:ListCells"
	var cells []Cell
	err := pgxscan.Select(ctx, db.pool, &cells, `
			SELECT lat, lon, radius, rxl
			FROM status_cells
			WHERE status_id = $1
			ORDER BY rxl DESC, id ASC
		`, statusID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return cells, nil
}

func (db *DB) UpdateDeviceSettings(ctx context.Context, deviceID int64, s Settings) error {
	const fn = "DB:UpdateDeviceSettings"
	tag, err := db.pool.Exec(ctx, `
			UPDATE devices
			SET alias = $2, sleeptime = $3, sleeptime_unit = $4
			WHERE id = $1
		`, deviceID, s.Alias, s.Sleeptime, s.SleeptimeUnit)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpdateFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", fn, ErrNotFound)
	}
	return nil
}

func (db *DB) SetNextWake(ctx context.Context, deviceID int64, nextWake int64) error {
	const fn = "DB:SetNextWake"
	_, err := db.pool.Exec(ctx, `UPDATE devices SET next_wake = $2 WHERE id = $1`, deviceID, nextWake)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpdateFailed, err)
	}
	return nil
}

// CreateStatus stores a status and its cells, creating the device on its
// first report. It returns the new status id and the device.
func (db *DB) CreateStatus(ctx context.Context, s NewStatus) (statusID int64, device Device, err error) {
	const fn = "DB:CreateStatus"
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return 0, Device{}, fmt.Errorf("%s:%w:%w", fn, ErrTransactionStartFailed, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = pgxscan.Get(ctx, tx, &device, `
			INSERT INTO devices (sn) VALUES ($1)
			ON CONFLICT (sn) DO UPDATE SET sn = EXCLUDED.sn
			RETURNING id, sn, alias, sleeptime, sleeptime_unit, waketime_offset, next_wake, voltage_offset
		`, s.SN)
	if err != nil {
		return 0, Device{}, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}

	err = tx.QueryRow(ctx, `
			INSERT INTO statuses (
				device_id,
				timestamp,
				lat,
				lon,
				radius,
				voltage,
				temp,
				city,
				country
			) VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''))
			RETURNING id
		`, device.ID, s.Timestamp, s.Lat, s.Lon, s.Radius, s.Voltage, s.Temp, s.City, s.Country).Scan(&statusID)
	if err != nil {
		return 0, Device{}, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}

	for _, c := range s.Cells {
		_, err = tx.Exec(ctx, `
			INSERT INTO status_cells (status_id, lat, lon, radius, rxl)
			VALUES ($1, $2, $3, $4, $5)
		`, statusID, c.Lat, c.Lon, c.Radius, c.Rxl)
		if err != nil {
			return 0, Device{}, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
		}
	}
	return statusID, device, nil
}

func (db *DB) FindCelltower(ctx context.Context, mcc, mnc, lac, cid int) (Celltower, error) {
	const fn = "DB:FindCelltower"
	var tower Celltower
	err := pgxscan.Get(ctx, db.pool, &tower, `
			SELECT id, radio, mcc, mnc, lac, cid, lat, lon, range, samples, created, updated
			FROM celltowers
			WHERE mcc = $1 AND mnc = $2 AND lac = $3 AND cid = $4
		`, mcc, mnc, lac, cid)
	if err != nil {
		if pgxscan.NotFound(err) {
			return Celltower{}, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return Celltower{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return tower, nil
}

// UpsertCelltower inserts a cell site or replaces the known one with the
// same cell identity.
func (db *DB) UpsertCelltower(ctx context.Context, c Celltower) error {
	const fn = "DB:UpsertCelltower"
	_, err := db.pool.Exec(ctx, `
			INSERT INTO celltowers (
				radio,
				mcc,
				mnc,
				lac,
				cid,
				lat,
				lon,
				range,
				samples,
				created,
				updated
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (mcc, mnc, lac, cid) DO UPDATE SET
				radio = EXCLUDED.radio,
				lat = EXCLUDED.lat,
				lon = EXCLUDED.lon,
				range = EXCLUDED.range,
				samples = EXCLUDED.samples,
				created = EXCLUDED.created,
				updated = EXCLUDED.updated
		`, c.Radio, c.MCC, c.MNC, c.LAC, c.CID, c.Lat, c.Lon, c.Range, c.Samples, c.Created, c.Updated)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}
