package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

var DBPool *DB

// Setup the testcontainer DB before running any dbOps tests
func TestMain(m *testing.M) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		panic(err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic(err)
	}

	DBPool, err = Init(ctx, Config{
		ConnString:     connStr,
		MigrationsPath: "./migrations",
	})
	if err != nil {
		panic(err)
	}

	m.Run()

	DBPool.Close()
	pgContainer.Terminate(ctx)
}

func seedStatuses(t *testing.T, sn string, userID int64, timestamps ...int64) Device {
	t.Helper()
	ctx := context.Background()
	var device Device
	for i, ts := range timestamps {
		temp := 20.5
		_, d, err := DBPool.CreateStatus(ctx, NewStatus{
			SN:        sn,
			Timestamp: ts,
			Lat:       51.44,
			Lon:       7.27,
			Radius:    500,
			Voltage:   7.9,
			Temp:      &temp,
			City:      []string{"Bochum", "Essen"}[i%2],
			Country:   "DE",
			Cells: []Cell{
				{Lat: 51.45, Lon: 7.28, Radius: 800, Rxl: 20},
				{Lat: 51.43, Lon: 7.26, Radius: 1200, Rxl: 35},
			},
		})
		require.NoError(t, err)
		device = d
	}
	require.NoError(t, DBPool.AddDeviceUser(ctx, device.ID, userID))
	return device
}

func TestStatusOps(t *testing.T) {
	ctx := context.Background()
	device := seedStatuses(t, "350000000000001", 1, 100, 200, 300, 400)

	rows, err := DBPool.ListStatuses(ctx, StatusQuery{DeviceID: device.ID, Limit: 2})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(400), rows[0].Timestamp, "newest first by default")
	assert.Equal(t, int64(2), rows[0].Celltowers)

	rows, err = DBPool.ListStatuses(ctx, StatusQuery{DeviceID: device.ID, Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(200), rows[0].Timestamp)

	rows, err = DBPool.ListStatuses(ctx, StatusQuery{
		DeviceID: device.ID,
		Order:    []Order{{Column: 0, Desc: false}},
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, int64(100), rows[0].Timestamp)

	q := StatusQuery{DeviceID: device.ID, Start: 100, End: 400}
	rows, err = DBPool.ListStatuses(ctx, q)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "range bounds are exclusive")

	total, filtered, err := DBPool.CountStatuses(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Equal(t, 2, filtered)

	total, filtered, err = DBPool.CountStatuses(ctx, StatusQuery{DeviceID: device.ID, Search: "boch"})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Equal(t, 2, filtered)

	status, err := DBPool.GetStatus(ctx, rows[0].ID, 1)
	require.NoError(t, err)
	assert.Equal(t, rows[0].Timestamp, status.Timestamp)

	_, err = DBPool.GetStatus(ctx, rows[0].ID, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	cells, err := DBPool.ListCells(ctx, status.ID)
	require.NoError(t, err)
	require.Len(t, cells, 2)
	assert.Equal(t, 35, cells[0].Rxl, "strongest first")
}

func TestDeviceOps(t *testing.T) {
	ctx := context.Background()
	device := seedStatuses(t, "350000000000002", 7, 10)

	got, err := DBPool.GetDevice(ctx, "350000000000002")
	require.NoError(t, err)
	assert.Equal(t, device.ID, got.ID)
	assert.Equal(t, 3600, got.SleeptimeUnit)

	_, err = DBPool.GetDevice(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err := DBPool.IsDeviceUser(ctx, device.ID, 7)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = DBPool.IsDeviceUser(ctx, device.ID, 8)
	require.NoError(t, err)
	assert.False(t, ok)

	users, err := DBPool.DeviceUsers(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, users)

	err = DBPool.UpdateDeviceSettings(ctx, device.ID, Settings{Alias: "Van", Sleeptime: 30, SleeptimeUnit: 60})
	require.NoError(t, err)
	require.NoError(t, DBPool.SetNextWake(ctx, device.ID, 12345))

	got, err = DBPool.GetDevice(ctx, "350000000000002")
	require.NoError(t, err)
	assert.Equal(t, "Van", got.Alias)
	assert.Equal(t, 60, got.SleeptimeUnit)
	assert.Equal(t, int64(12345), got.NextWake)

	trackers, err := DBPool.ListTrackers(ctx, TrackerQuery{UserID: 7, Search: "van"})
	require.NoError(t, err)
	require.Len(t, trackers, 1)
	require.NotNil(t, trackers[0].LastVoltage)
	assert.InDelta(t, 7.9, *trackers[0].LastVoltage, 1e-9)

	total, filtered, err := DBPool.CountTrackers(ctx, 7, "nomatch")
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, 0, filtered)
}

func TestCelltowerOps(t *testing.T) {
	ctx := context.Background()

	_, err := DBPool.FindCelltower(ctx, 262, 2, 1101, 20511)
	assert.ErrorIs(t, err, ErrNotFound)

	tower := Celltower{
		Radio:   "GSM",
		MCC:     262,
		MNC:     2,
		LAC:     1101,
		CID:     20511,
		Lat:     51.4801,
		Lon:     7.2101,
		Range:   1450,
		Samples: 12,
		Created: 1459203405,
		Updated: 1611238811,
	}
	require.NoError(t, DBPool.UpsertCelltower(ctx, tower))

	got, err := DBPool.FindCelltower(ctx, 262, 2, 1101, 20511)
	require.NoError(t, err)
	assert.NotZero(t, got.ID)
	tower.ID = got.ID
	assert.Equal(t, tower, got)

	tower.Lat = 51.4811
	tower.Samples = 13
	require.NoError(t, DBPool.UpsertCelltower(ctx, tower))
	got, err = DBPool.FindCelltower(ctx, 262, 2, 1101, 20511)
	require.NoError(t, err)
	assert.Equal(t, tower, got)

	_, err = DBPool.FindCelltower(ctx, 262, 2, 1101, 20512)
	assert.ErrorIs(t, err, ErrNotFound)
}
