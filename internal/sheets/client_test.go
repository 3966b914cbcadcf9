package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/bookingproto/rategen/internal/cache"
)

func TestFetchTab_ParsesCSVAndStripsBOM(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte("\xEF\xBB\xBFid,name\nstd,Standard\n"))
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, nil, 0)
	c.baseURL = srv.URL

	rows, err := c.FetchTab(context.Background(), "sheet123", "441408510")
	require.NoError(t, err)
	require.Equal(t, "format=csv&gid=441408510", gotQuery)
	require.Equal(t, [][]string{{"id", "name"}, {"std", "Standard"}}, rows)
}

func TestFetchTab_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(5*time.Second, nil, 0)
	c.http.SetRetryCount(0)
	c.baseURL = srv.URL

	_, err := c.FetchTab(context.Background(), "sheet123", "0")
	require.Error(t, err)
}

func TestFetchTab_SecondFetchServedFromCache(t *testing.T) {
	var hits int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		_, _ = w.Write([]byte("id\nstd\n"))
	}))
	defer srv.Close()

	mr := miniredis.RunT(t)
	cch, err := cache.NewCache(mr.Addr(), "", 0)
	require.NoError(t, err)
	defer cch.Close()

	c := NewClient(5*time.Second, cch, time.Minute)
	c.baseURL = srv.URL

	for i := 0; i < 2; i++ {
		rows, err := c.FetchTab(context.Background(), "sheet123", "0")
		require.NoError(t, err)
		require.Equal(t, [][]string{{"id"}, {"std"}}, rows)
	}
	require.EqualValues(t, 1, atomic.LoadInt64(&hits))
}
