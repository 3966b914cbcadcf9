package sheets

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/bookingproto/rategen/internal/cache"
	"github.com/bookingproto/rategen/internal/log"
)

// Client downloads published spreadsheet tabs as CSV. An optional byte cache
// keeps the downloaded payload for a TTL so repeated runs stay off the
// export endpoint.
type Client struct {
	http    *resty.Client
	baseURL string
	cache   *cache.Cache
	ttl     time.Duration
}

const defaultBaseURL = "https://docs.google.com"

// NewClient creates a sheet client. cch may be nil to disable caching.
func NewClient(timeout time.Duration, cch *cache.Cache, ttl time.Duration) *Client {
	httpClient := resty.New().
		SetTimeout(timeout).
		SetRetryCount(3).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Accept", "text/csv")

	return &Client{
		http:    httpClient,
		baseURL: defaultBaseURL,
		cache:   cch,
		ttl:     ttl,
	}
}

// exportURL builds the CSV export URL for one tab (gid) of a spreadsheet.
func (c *Client) exportURL(sheetID, gid string) string {
	return fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv&gid=%s", c.baseURL, sheetID, gid)
}

// FetchTab downloads one tab and returns its raw rows.
func (c *Client) FetchTab(ctx context.Context, sheetID, gid string) ([][]string, error) {
	data, err := c.fetchBytes(ctx, sheetID, gid)
	if err != nil {
		return nil, err
	}

	// exported CSV may begin with a UTF-8 BOM
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV for gid %s: %w", gid, err)
	}
	return rows, nil
}

func (c *Client) fetchBytes(ctx context.Context, sheetID, gid string) ([]byte, error) {
	key := fmt.Sprintf("sheet:%s:%s", sheetID, gid)

	if c.cache != nil {
		if data, err := c.cache.Get(ctx, key); err == nil {
			log.Debug(ctx, "sheet tab served from cache", zap.String("gid", gid))
			return data, nil
		} else if err != cache.ErrMiss {
			log.Warn(ctx, "sheet cache read failed", zap.String("gid", gid), zap.Error(err))
		}
	}

	resp, err := c.http.R().SetContext(ctx).Get(c.exportURL(sheetID, gid))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet gid %s: %w", gid, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("sheet export for gid %s returned status %d", gid, resp.StatusCode())
	}

	data := resp.Body()
	if c.cache != nil {
		if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
			log.Warn(ctx, "sheet cache write failed", zap.String("gid", gid), zap.Error(err))
		}
	}
	return data, nil
}
