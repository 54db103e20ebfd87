// Package navigator keeps the selection state of a paged status table.
//
// A Navigator is owned by a single goroutine (the dashboard event loop).
// Every mutation that needs data returns a *Request; the caller runs
// Fetch for it, possibly on another goroutine, and hands the Result back
// to Apply on the owning goroutine. Issuing a list request cancels the
// previous one and Apply drops results of requests that are no longer
// current, so a superseded response is never rendered.
package navigator

import (
	"context"
	"log/slog"
)

type intent int

const (
	intentNone intent = iota
	intentReload
	intentFirst
	intentLast
)

// Config describes the table layout and collaborators.
type Config struct {
	Source   Source
	Layer    Layer
	PageSize int
	// FirstRow is the index of the first data row on every page. Rows
	// before it are auxiliary content and cannot be selected. Leading
	// placeholder rows (ID 0) of a loaded page are skipped on top of it.
	FirstRow int
}

type Navigator struct {
	source   Source
	layer    Layer
	pageSize int
	firstRow int

	device string
	span   TimeRange
	search string

	page     Page
	selected int
	pending  int

	list   *Request
	detail *Request
	after  intent
	seq    uint64
}

func New(cfg Config) *Navigator {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if cfg.FirstRow < 0 {
		cfg.FirstRow = 0
	}
	if cfg.Layer == nil {
		cfg.Layer = discardLayer{}
	}
	return &Navigator{
		source:   cfg.Source,
		layer:    cfg.Layer,
		pageSize: cfg.PageSize,
		firstRow: cfg.FirstRow,
		selected: -1,
	}
}

func (n *Navigator) Device() string   { return n.device }
func (n *Navigator) Range() TimeRange { return n.span }
func (n *Navigator) Search() string   { return n.search }
func (n *Navigator) Page() Page       { return n.page }
func (n *Navigator) PageSize() int    { return n.pageSize }

// FirstRow is the index of the first selectable row of the current page.
func (n *Navigator) FirstRow() int {
	first := n.firstRow
	for first < len(n.page.Rows) && n.page.Rows[first].ID == 0 {
		first++
	}
	return first
}
func (n *Navigator) SelectedIndex() int     { return n.selected }
func (n *Navigator) Pending() int           { return n.pending }
func (n *Navigator) RefreshAvailable() bool { return n.pending > 0 }

// Loading reports whether a list request is outstanding.
func (n *Navigator) Loading() bool { return n.list != nil }

// PageCount is the number of pages the current filter yields.
func (n *Navigator) PageCount() int {
	if n.page.Filtered <= 0 {
		return 0
	}
	return (n.page.Filtered + n.pageSize - 1) / n.pageSize
}

// Selected returns the selected record, if any.
func (n *Navigator) Selected() (Record, bool) {
	if n.selected < 0 || n.selected >= len(n.page.Rows) {
		return Record{}, false
	}
	return n.page.Rows[n.selected], true
}

// SelectDevice makes device the active one. Outstanding fetches for the
// previous device are cancelled and markers are cleared before page 0 of
// the new device is requested. The previous device's rows are dropped so
// nothing can be selected until the new page arrives.
func (n *Navigator) SelectDevice(device string) *Request {
	n.cancelDetail()
	n.layer.Clear()
	n.selected = -1
	n.page = Page{}
	n.pending = 0
	n.device = device
	return n.issueList(0, intentReload)
}

// SetRange changes the time filter and reloads from page 0.
func (n *Navigator) SetRange(span TimeRange) *Request {
	if span == n.span {
		return nil
	}
	n.span = span
	if n.device == "" {
		return nil
	}
	return n.issueList(0, intentReload)
}

// SetSearch changes the search filter and reloads from page 0.
func (n *Navigator) SetSearch(search string) *Request {
	if search == n.search {
		return nil
	}
	n.search = search
	if n.device == "" {
		return nil
	}
	return n.issueList(0, intentReload)
}

// Refresh reloads the current page of the active device.
func (n *Navigator) Refresh() *Request {
	if n.device == "" {
		return nil
	}
	return n.issueList(n.page.Index, intentReload)
}

// GoToPage requests page index and selects its first row once loaded.
func (n *Navigator) GoToPage(index int) *Request {
	if n.device == "" || index < 0 || index == n.page.Index {
		return nil
	}
	if n.after == intentFirst || n.after == intentLast {
		return nil
	}
	if count := n.PageCount(); count > 0 && index >= count {
		return nil
	}
	n.deselect()
	return n.issueList(index, intentFirst)
}

// SelectRow selects the row at the page-relative index, replacing any
// previous selection, and requests its detail.
func (n *Navigator) SelectRow(index int) *Request {
	if index < n.FirstRow() || index >= len(n.page.Rows) {
		return nil
	}
	n.deselect()
	n.selected = index
	n.seq++
	ctx, cancel := context.WithCancel(context.Background())
	n.detail = &Request{
		Kind:     KindDetail,
		Seq:      n.seq,
		StatusID: n.page.Rows[index].ID,
		ctx:      ctx,
		cancel:   cancel,
	}
	return n.detail
}

// SelectNext moves the selection one row down, advancing to the next page
// when it runs past the last row.
func (n *Navigator) SelectNext() *Request {
	if n.after == intentFirst || n.after == intentLast {
		return nil
	}
	if n.selected < 0 {
		return n.SelectRow(n.FirstRow())
	}
	next := n.selected + 1
	if next > len(n.page.Rows)-1 {
		if n.page.Index+1 >= n.PageCount() {
			return nil
		}
		n.deselect()
		return n.issueList(n.page.Index+1, intentFirst)
	}
	return n.SelectRow(next)
}

// SelectPrevious moves the selection one row up, retreating to the
// previous page when it runs before the first selectable row.
func (n *Navigator) SelectPrevious() *Request {
	if n.after == intentFirst || n.after == intentLast {
		return nil
	}
	if n.selected < 0 {
		return n.SelectRow(n.FirstRow())
	}
	prev := n.selected - 1
	if prev < n.FirstRow() {
		if n.page.Index == 0 {
			return nil
		}
		n.deselect()
		return n.issueList(n.page.Index-1, intentLast)
	}
	return n.SelectRow(prev)
}

// Notify records a push notification. It returns true when the device is
// the active one and the pending counter was incremented.
func (n *Navigator) Notify(device string) bool {
	if device == "" || device != n.device {
		return false
	}
	n.pending++
	return true
}

// Fetch performs the request against the source. It only reads immutable
// state and may run on any goroutine.
func (n *Navigator) Fetch(req *Request) Result {
	res := Result{Request: req}
	switch req.Kind {
	case KindPage:
		res.Page, res.Err = n.source.Statuses(req.ctx, req.Query)
		if res.Err == nil {
			res.Page.Index = req.Query.Page
		}
	case KindDetail:
		res.Detail, res.Err = n.source.Detail(req.ctx, req.StatusID)
	}
	if res.Err == nil && req.ctx.Err() != nil {
		res.Err = req.ctx.Err()
	}
	return res
}

// Apply renders a fetch result. Results of superseded requests are
// dropped. Either way the request is finished and its context released.
// The returned request, if any, is the detail fetch for the row selected
// as a consequence of the page load.
func (n *Navigator) Apply(res Result) *Request {
	if res.Request == nil {
		return nil
	}
	defer res.Request.Cancel()
	switch res.Request.Kind {
	case KindPage:
		return n.applyPage(res)
	case KindDetail:
		n.applyDetail(res)
	}
	return nil
}

func (n *Navigator) applyPage(res Result) *Request {
	if res.Request != n.list {
		slog.Debug("Dropping superseded status page", "seq", res.Request.Seq)
		return nil
	}
	n.list = nil
	after := n.after
	n.after = intentNone
	if res.Err != nil {
		slog.Debug("Status page fetch failed", "seq", res.Request.Seq, "error", res.Err)
		return nil
	}

	n.page = res.Page
	n.selected = -1
	n.pending = 0

	switch after {
	case intentReload:
		n.cancelDetail()
		n.layer.Clear()
		return n.SelectRow(n.FirstRow())
	case intentFirst:
		return n.SelectRow(n.FirstRow())
	case intentLast:
		return n.SelectRow(len(n.page.Rows) - 1)
	}
	return nil
}

func (n *Navigator) applyDetail(res Result) {
	if res.Request != n.detail {
		slog.Debug("Dropping superseded status detail", "seq", res.Request.Seq)
		return
	}
	n.detail = nil
	if res.Err != nil {
		slog.Debug("Status detail fetch failed", "status_id", res.Request.StatusID, "error", res.Err)
		return
	}
	d := res.Detail
	n.layer.Add(Marker{Kind: MarkerPosition, Lat: d.Lat, Lon: d.Lon, Radius: d.Radius})
	for _, c := range d.Cells {
		n.layer.Add(Marker{Kind: MarkerCell, Lat: c.Lat, Lon: c.Lon, Radius: c.Radius})
	}
}

func (n *Navigator) issueList(page int, after intent) *Request {
	if n.list != nil {
		n.list.Cancel()
	}
	n.seq++
	ctx, cancel := context.WithCancel(context.Background())
	n.list = &Request{
		Kind: KindPage,
		Seq:  n.seq,
		Query: Query{
			Device:   n.device,
			Range:    n.span,
			Search:   n.search,
			Page:     page,
			PageSize: n.pageSize,
		},
		ctx:    ctx,
		cancel: cancel,
	}
	n.after = after
	return n.list
}

// deselect drops the selection together with its markers and detail fetch.
func (n *Navigator) deselect() {
	n.cancelDetail()
	if n.selected >= 0 {
		n.layer.Clear()
	}
	n.selected = -1
}

func (n *Navigator) cancelDetail() {
	if n.detail != nil {
		n.detail.Cancel()
		n.detail = nil
	}
}
