package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"asset-tracker/internal/api"
	"asset-tracker/internal/navigator"
)

var (
	ErrRequestFailed    = errors.New("request failed")
	ErrDecodeFailed     = errors.New("response decoding failed")
	ErrBadRequest       = errors.New("bad request")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrUnexpectedStatus = errors.New("unexpected status")
)

type Config struct {
	BaseURL string
	// ExportBaseURL serves the CSV export. The tracker server does not,
	// so it usually points at a separate export service. Empty means
	// BaseURL.
	ExportBaseURL string
	UserID        int64
	CSRFToken     string
	HTTPClient    *http.Client
}

// Client talks to the tracker server on behalf of one user.
type Client struct {
	baseURL   string
	exportURL string
	userID    int64
	csrfToken string
	http      *http.Client
	draw      atomic.Int64
}

func New(cfg Config) *Client {
	c := &Client{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		exportURL: strings.TrimSuffix(cfg.ExportBaseURL, "/"),
		userID:    cfg.UserID,
		csrfToken: cfg.CSRFToken,
		http:      cfg.HTTPClient,
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 30 * time.Second}
	}
	if c.exportURL == "" {
		c.exportURL = c.baseURL
	}
	return c
}

// TableQuery selects a page of the tracker table.
type TableQuery struct {
	Search   string
	Order    []api.ColumnOrder
	Page     int
	PageSize int
}

type TrackerPage struct {
	Rows     []api.TrackerRow
	Total    int
	Filtered int
}

func statusError(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	}
	return ErrUnexpectedStatus
}

func (c *Client) newRequest(ctx context.Context, method, target string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set(api.HeaderUserID, strconv.FormatInt(c.userID, 10))
	if method != http.MethodGet {
		req.Header.Set(api.HeaderCSRF, c.csrfToken)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// send performs the request against target and checks the status. The
// caller closes the body.
func (c *Client) send(ctx context.Context, fn, method, target string, body any) (*http.Response, error) {
	req, err := c.newRequest(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrRequestFailed, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrRequestFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%s:%w: status %d", fn, statusError(resp.StatusCode), resp.StatusCode)
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, fn, method, path string, body, out any) error {
	resp, err := c.send(ctx, fn, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDecodeFailed, err)
	}
	return nil
}

func (c *Client) Trackers(ctx context.Context, q TableQuery) (TrackerPage, error) {
	const fn = "Client:Trackers"
	var resp api.TableResponse[api.TrackerRow]
	err := c.do(ctx, fn, http.MethodPost, "/map/tabledata", api.TableRequest{
		Draw:   int(c.draw.Add(1)),
		Start:  q.Page * q.PageSize,
		Length: q.PageSize,
		Search: api.Search{Value: q.Search},
		Order:  q.Order,
		Type:   api.TableTracker,
	}, &resp)
	if err != nil {
		return TrackerPage{}, err
	}
	return TrackerPage{Rows: resp.Data, Total: resp.RecordsTotal, Filtered: resp.RecordsFiltered}, nil
}

// Statuses loads one page of the device's statuses, newest first.
func (c *Client) Statuses(ctx context.Context, q navigator.Query) (navigator.Page, error) {
	const fn = "Client:Statuses"
	var resp api.TableResponse[api.StatusRow]
	err := c.do(ctx, fn, http.MethodPost, "/map/tabledata", api.TableRequest{
		Draw:     int(c.draw.Add(1)),
		Start:    q.Page * q.PageSize,
		Length:   q.PageSize,
		Search:   api.Search{Value: q.Search},
		Order:    []api.ColumnOrder{{Column: 0, Dir: "desc"}},
		Type:     api.TableStatus,
		IMEI:     q.Device,
		Timespan: api.Timespan{Start: q.Range.Start, End: q.Range.End},
	}, &resp)
	if err != nil {
		return navigator.Page{}, err
	}

	page := navigator.Page{
		Index:    q.Page,
		Rows:     make([]navigator.Record, 0, len(resp.Data)),
		Total:    resp.RecordsTotal,
		Filtered: resp.RecordsFiltered,
	}
	for _, row := range resp.Data {
		page.Rows = append(page.Rows, navigator.Record{
			ID:         row.ID,
			Timestamp:  time.Unix(row.Timestamp.Timestamp, 0),
			Display:    row.Timestamp.Display,
			DeviceID:   q.Device,
			Country:    row.Country,
			City:       row.City,
			Celltowers: row.Celltower,
			Temp:       row.Temp,
			Battery:    row.Battery.Display,
		})
	}
	return page, nil
}

func (c *Client) Detail(ctx context.Context, statusID int64) (navigator.Detail, error) {
	const fn = "Client:Detail"
	var resp api.DetailResponse
	err := c.do(ctx, fn, http.MethodPost, "/detail", api.DetailRequest{Type: api.TableStatus, ID: statusID}, &resp)
	if err != nil {
		return navigator.Detail{}, err
	}
	detail := navigator.Detail{Lat: resp.Lat, Lon: resp.Lon, Radius: resp.Radius}
	for _, cell := range resp.Cells {
		detail.Cells = append(detail.Cells, navigator.Estimate{Lat: cell.Lat, Lon: cell.Lon, Radius: cell.Radius})
	}
	return detail, nil
}

func (c *Client) Settings(ctx context.Context, imei string) (api.DeviceSettings, error) {
	const fn = "Client:Settings"
	var resp api.DeviceSettings
	if err := c.do(ctx, fn, http.MethodGet, "/tracker/"+url.PathEscape(imei), nil, &resp); err != nil {
		return api.DeviceSettings{}, err
	}
	return resp, nil
}

func (c *Client) SaveSettings(ctx context.Context, s api.DeviceSettings) error {
	const fn = "Client:SaveSettings"
	return c.do(ctx, fn, http.MethodPost, "/tracker/"+url.PathEscape(s.IMEI), s, nil)
}

func exportPath(imei string, span navigator.TimeRange) string {
	q := url.Values{}
	q.Set("start", strconv.FormatInt(span.Start, 10))
	q.Set("end", strconv.FormatInt(span.End, 10))
	return "/device/" + url.PathEscape(imei) + "/export/csv?" + q.Encode()
}

// ExportURL is where the CSV export of the device's statuses within span
// is served.
func (c *Client) ExportURL(imei string, span navigator.TimeRange) string {
	return c.exportURL + exportPath(imei, span)
}

// Export downloads the CSV export into w and returns the number of bytes
// written. The content is not interpreted.
func (c *Client) Export(ctx context.Context, imei string, span navigator.TimeRange, w io.Writer) (int64, error) {
	const fn = "Client:Export"
	resp, err := c.send(ctx, fn, http.MethodGet, c.ExportURL(imei, span), nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("%s:%w:%w", fn, ErrRequestFailed, err)
	}
	return n, nil
}
