package navigator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	pageSize int
	total    int
	// rows prepended to every page, like the server's debug placeholder
	aux int

	mu      sync.Mutex
	queries []Query
}

func (s *fakeSource) Statuses(ctx context.Context, q Query) (Page, error) {
	s.mu.Lock()
	s.queries = append(s.queries, q)
	s.mu.Unlock()
	var rows []Record
	for i := 0; i < s.aux; i++ {
		rows = append(rows, Record{ID: 0, DeviceID: q.Device})
	}
	for i := q.Page * q.PageSize; i < (q.Page+1)*q.PageSize && i < s.total; i++ {
		rows = append(rows, Record{ID: int64(i + 1), DeviceID: q.Device})
	}
	return Page{Rows: rows, Total: s.total, Filtered: s.total}, nil
}

func (s *fakeSource) Detail(ctx context.Context, statusID int64) (Detail, error) {
	return Detail{
		Lat:    float64(statusID),
		Lon:    float64(statusID),
		Radius: 100,
		Cells:  []Estimate{{Lat: 1, Lon: 1, Radius: 50}},
	}, nil
}

func (s *fakeSource) pageQueries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queries)
}

type recordingLayer struct {
	ops     []string
	markers []Marker
}

func (l *recordingLayer) Clear() {
	l.ops = append(l.ops, "clear")
	l.markers = nil
}

func (l *recordingLayer) Add(m Marker) {
	l.ops = append(l.ops, fmt.Sprintf("add:%v", m.Lat))
	l.markers = append(l.markers, m)
}

// drive runs the request chain synchronously, the way the event loop does.
func drive(n *Navigator, req *Request) {
	for req != nil {
		req = n.Apply(n.Fetch(req))
	}
}

func newTestNavigator(total, pageSize, firstRow int) (*Navigator, *fakeSource, *recordingLayer) {
	src := &fakeSource{pageSize: pageSize, total: total, aux: firstRow}
	layer := &recordingLayer{}
	n := New(Config{Source: src, Layer: layer, PageSize: pageSize, FirstRow: firstRow})
	return n, src, layer
}

func Test_SelectNext_WithinPage(t *testing.T) {
	cases := []struct {
		name     string
		firstRow int
	}{
		{name: "no auxiliary row", firstRow: 0},
		{name: "auxiliary first row", firstRow: 1},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			n, _, _ := newTestNavigator(25, 10, tt.firstRow)
			drive(n, n.SelectDevice("dev1"))
			require.Equal(t, tt.firstRow, n.SelectedIndex())

			last := len(n.Page().Rows) - 1
			for want := tt.firstRow + 1; want <= last; want++ {
				drive(n, n.SelectNext())
				assert.Equal(t, want, n.SelectedIndex())
				assert.Equal(t, 0, n.Page().Index)
			}
		})
	}
}

func Test_SelectNext_CrossesPage(t *testing.T) {
	cases := []struct {
		name     string
		firstRow int
	}{
		{name: "no auxiliary row", firstRow: 0},
		{name: "auxiliary first row", firstRow: 1},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			n, src, _ := newTestNavigator(25, 10, tt.firstRow)
			drive(n, n.SelectDevice("dev1"))
			drive(n, n.SelectRow(len(n.Page().Rows)-1))
			before := src.pageQueries()

			req := n.SelectNext()
			require.NotNil(t, req)
			assert.Equal(t, KindPage, req.Kind)
			assert.Equal(t, 1, req.Query.Page)
			assert.Equal(t, -1, n.SelectedIndex())

			// further moves while the page is loading do not issue requests
			assert.Nil(t, n.SelectNext())
			assert.Nil(t, n.SelectPrevious())

			drive(n, req)
			assert.Equal(t, before+1, src.pageQueries())
			assert.Equal(t, 1, n.Page().Index)
			assert.Equal(t, tt.firstRow, n.SelectedIndex())
			rec, ok := n.Selected()
			require.True(t, ok)
			assert.Equal(t, int64(11), rec.ID)
		})
	}
}

func Test_SelectPrevious_CrossesPage(t *testing.T) {
	cases := []struct {
		name     string
		firstRow int
	}{
		{name: "no auxiliary row", firstRow: 0},
		{name: "auxiliary first row", firstRow: 1},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			n, src, _ := newTestNavigator(25, 10, tt.firstRow)
			drive(n, n.SelectDevice("dev1"))
			drive(n, n.GoToPage(1))
			require.Equal(t, 1, n.Page().Index)
			require.Equal(t, tt.firstRow, n.SelectedIndex())
			before := src.pageQueries()

			req := n.SelectPrevious()
			require.NotNil(t, req)
			assert.Equal(t, 0, req.Query.Page)

			drive(n, req)
			assert.Equal(t, before+1, src.pageQueries())
			assert.Equal(t, 0, n.Page().Index)
			assert.Equal(t, len(n.Page().Rows)-1, n.SelectedIndex())
			rec, _ := n.Selected()
			assert.Equal(t, int64(10), rec.ID)
		})
	}
}

func Test_SelectAtEdges(t *testing.T) {
	n, _, _ := newTestNavigator(15, 10, 0)
	drive(n, n.SelectDevice("dev1"))

	assert.Nil(t, n.SelectPrevious())
	assert.Equal(t, 0, n.SelectedIndex())

	drive(n, n.GoToPage(1))
	require.Equal(t, 1, n.Page().Index)
	drive(n, n.SelectRow(len(n.Page().Rows)-1))
	assert.Nil(t, n.SelectNext())
	assert.Equal(t, 4, n.SelectedIndex())
}

func Test_SelectRow_SkipsAuxiliaryRow(t *testing.T) {
	n, _, _ := newTestNavigator(5, 10, 1)
	drive(n, n.SelectDevice("dev1"))
	assert.Nil(t, n.SelectRow(0))
	assert.Nil(t, n.SelectRow(len(n.Page().Rows)))
	assert.Equal(t, 1, n.SelectedIndex())
}

func Test_Notify(t *testing.T) {
	n, _, _ := newTestNavigator(5, 10, 0)

	assert.False(t, n.Notify("dev1"), "no active device")
	drive(n, n.SelectDevice("dev1"))

	assert.False(t, n.Notify("dev2"))
	assert.False(t, n.Notify(""))
	assert.Equal(t, 0, n.Pending())
	assert.False(t, n.RefreshAvailable())

	assert.True(t, n.Notify("dev1"))
	assert.True(t, n.Notify("dev1"))
	assert.Equal(t, 2, n.Pending())
	assert.True(t, n.RefreshAvailable())

	req := n.Refresh()
	assert.Equal(t, 2, n.Pending(), "reset happens on completion")
	drive(n, req)
	assert.Equal(t, 0, n.Pending())
	assert.False(t, n.RefreshAvailable())
}

func Test_Notify_ResetOnPageTransition(t *testing.T) {
	n, _, _ := newTestNavigator(25, 10, 0)
	drive(n, n.SelectDevice("dev1"))
	n.Notify("dev1")
	drive(n, n.GoToPage(2))
	assert.Equal(t, 0, n.Pending())
}

type blockingSource struct {
	fakeSource
	release map[int]chan struct{}
}

func (s *blockingSource) Statuses(ctx context.Context, q Query) (Page, error) {
	ch := s.release[len(s.pageQueriesSnapshot())]
	page, _ := s.fakeSource.Statuses(ctx, q)
	select {
	case <-ch:
	case <-ctx.Done():
	}
	return page, nil
}

func (s *blockingSource) pageQueriesSnapshot() []Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Query(nil), s.queries...)
}

func Test_OverlappingRefreshes(t *testing.T) {
	src := &blockingSource{
		fakeSource: fakeSource{total: 30},
		release:    map[int]chan struct{}{0: make(chan struct{}), 1: make(chan struct{})},
	}
	n := New(Config{Source: src, PageSize: 10})

	first := n.SelectDevice("dev1")
	firstDone := make(chan Result, 1)
	go func() { firstDone <- n.Fetch(first) }()

	second := n.SetRange(TimeRange{Start: 100, End: 200})
	require.NotNil(t, second)
	assert.ErrorIs(t, first.Context().Err(), context.Canceled)

	close(src.release[1])
	close(src.release[0])
	secondRes := n.Fetch(second)
	firstRes := <-firstDone

	n.Apply(secondRes)
	n.Apply(firstRes)

	assert.Equal(t, TimeRange{Start: 100, End: 200}, n.Range())
	assert.False(t, n.Loading())
	assert.Len(t, n.Page().Rows, 10)
	assert.ErrorIs(t, firstRes.Err, context.Canceled)
}

func Test_SupersededResultDropped(t *testing.T) {
	src := &fakeSource{total: 30}
	n := New(Config{Source: src, PageSize: 10})

	first := n.SelectDevice("dev1")
	second := n.Refresh()

	older := Result{Request: first, Page: Page{Rows: []Record{{ID: 1}}, Filtered: 1}}
	newer := Result{Request: second, Page: Page{Rows: []Record{{ID: 2}, {ID: 3}}, Filtered: 2}}

	n.Apply(newer)
	n.Apply(older)

	require.Len(t, n.Page().Rows, 2)
	assert.Equal(t, int64(2), n.Page().Rows[0].ID)
	assert.Equal(t, 0, n.SelectedIndex())
}

func Test_FailedFetchKeepsRender(t *testing.T) {
	n, _, _ := newTestNavigator(30, 10, 0)
	drive(n, n.SelectDevice("dev1"))
	drive(n, n.SelectRow(3))
	before := n.Page()

	req := n.Refresh()
	n.Apply(Result{Request: req, Err: errors.New("boom")})

	assert.Equal(t, before, n.Page())
	assert.False(t, n.Loading())
}

func Test_SelectDevice_ClearsMarkersFirst(t *testing.T) {
	n, _, layer := newTestNavigator(30, 10, 0)
	drive(n, n.SelectDevice("dev1"))
	require.Len(t, layer.markers, 2)

	layer.ops = nil
	req := n.SelectDevice("dev2")
	assert.Empty(t, layer.markers)
	require.Equal(t, []string{"clear"}, layer.ops)

	drive(n, req)
	require.NotEmpty(t, layer.ops)
	assert.Equal(t, "clear", layer.ops[0])
	for _, op := range layer.ops[1:] {
		if op == "clear" {
			continue
		}
		assert.Contains(t, op, "add:")
	}
	assert.Len(t, layer.markers, 2)
	assert.Equal(t, MarkerPosition, layer.markers[0].Kind)
	assert.Equal(t, MarkerCell, layer.markers[1].Kind)
}

func Test_SelectDevice_CancelsOutstanding(t *testing.T) {
	n, _, _ := newTestNavigator(30, 10, 0)
	drive(n, n.SelectDevice("dev1"))
	detail := n.SelectRow(2)
	list := n.Refresh()

	n.SelectDevice("dev2")
	assert.ErrorIs(t, detail.Context().Err(), context.Canceled)
	assert.ErrorIs(t, list.Context().Err(), context.Canceled)
}

func Test_SingleSelection(t *testing.T) {
	n, _, layer := newTestNavigator(30, 10, 0)
	drive(n, n.SelectDevice("dev1"))
	drive(n, n.SelectRow(4))
	drive(n, n.SelectRow(6))

	assert.Equal(t, 6, n.SelectedIndex())
	require.Len(t, layer.markers, 2)
	assert.Equal(t, float64(7), layer.markers[0].Lat)
}

func Test_SetRangeUnchanged(t *testing.T) {
	n, _, _ := newTestNavigator(30, 10, 0)
	drive(n, n.SelectDevice("dev1"))
	assert.Nil(t, n.SetRange(TimeRange{}))
	assert.Nil(t, n.SetSearch(""))
	assert.NotNil(t, n.SetSearch("Bochum"))
}

func Test_SelectDevice_IgnoresMovesUntilLoaded(t *testing.T) {
	n, src, layer := newTestNavigator(30, 10, 0)
	drive(n, n.SelectDevice("dev1"))
	drive(n, n.SelectRow(3))
	before := src.pageQueries()

	req := n.SelectDevice("dev2")
	assert.Empty(t, n.Page().Rows)
	assert.Nil(t, n.SelectNext())
	assert.Nil(t, n.SelectPrevious())
	assert.Nil(t, n.SelectRow(3))
	assert.Empty(t, layer.markers)
	_, ok := n.Selected()
	assert.False(t, ok)

	drive(n, req)
	assert.Equal(t, before+1, src.pageQueries())
	rec, ok := n.Selected()
	require.True(t, ok)
	assert.Equal(t, "dev2", rec.DeviceID)
}

func Test_FirstRow_FromPlaceholder(t *testing.T) {
	cases := []struct {
		name     string
		firstRow int
		aux      int
		want     int
	}{
		{name: "plain page", firstRow: 0, aux: 0, want: 0},
		{name: "placeholder row", firstRow: 0, aux: 1, want: 1},
		{name: "configured offset", firstRow: 1, aux: 1, want: 1},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakeSource{total: 5, aux: tt.aux}
			n := New(Config{Source: src, PageSize: 10, FirstRow: tt.firstRow})
			drive(n, n.SelectDevice("dev1"))
			assert.Equal(t, tt.want, n.FirstRow())
			assert.Equal(t, tt.want, n.SelectedIndex())
			rec, ok := n.Selected()
			require.True(t, ok)
			assert.Equal(t, int64(1), rec.ID)
			if tt.want > 0 {
				assert.Nil(t, n.SelectRow(tt.want-1))
			}
		})
	}
}

func Test_GoToPage_IgnoredWhileCrossing(t *testing.T) {
	n, src, _ := newTestNavigator(30, 10, 0)
	drive(n, n.SelectDevice("dev1"))
	drive(n, n.SelectRow(9))
	before := src.pageQueries()

	req := n.SelectNext()
	require.NotNil(t, req)
	assert.Nil(t, n.GoToPage(1))
	assert.Nil(t, n.GoToPage(2))
	assert.NoError(t, req.Context().Err())

	drive(n, req)
	assert.Equal(t, before+1, src.pageQueries())
	assert.Equal(t, 1, n.Page().Index)
	assert.NotNil(t, n.GoToPage(2))
}

func Test_Apply_ReleasesRequests(t *testing.T) {
	n, _, _ := newTestNavigator(30, 10, 0)
	list := n.SelectDevice("dev1")
	detail := n.Apply(n.Fetch(list))
	require.NotNil(t, detail)
	assert.ErrorIs(t, list.Context().Err(), context.Canceled)

	n.Apply(n.Fetch(detail))
	assert.ErrorIs(t, detail.Context().Err(), context.Canceled)

	failed := n.Refresh()
	assert.NoError(t, failed.Context().Err())
	n.Apply(Result{Request: failed, Err: errors.New("boom")})
	assert.ErrorIs(t, failed.Context().Err(), context.Canceled)
}
