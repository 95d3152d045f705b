package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func testConfig() Config {
	return Config{
		Timeout:        time.Second,
		MaxRetries:     2,
		RetryDelay:     time.Millisecond,
		Multiplier:     2,
		BreakerTimeout: time.Second,
	}
}

func TestFetchToFileWritesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Date,Time\n01/06/2006,09:00\n"))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "weather_data.csv")
	d := NewDownloader("test", testConfig(), zap.NewNop())

	if err := d.FetchToFile(context.Background(), server.URL, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading downloaded file: %v", err)
	}
	if string(data) != "Date,Time\n01/06/2006,09:00\n" {
		t.Fatalf("unexpected file contents: %q", data)
	}
}

func TestFetchToFileRetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "weather_data.csv")
	d := NewDownloader("test", testConfig(), zap.NewNop())

	if err := d.FetchToFile(context.Background(), server.URL, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
}

func TestFetchToFileDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "weather_data.csv")
	d := NewDownloader("test", testConfig(), zap.NewNop())

	if err := d.FetchToFile(context.Background(), server.URL, path); err == nil {
		t.Fatal("expected an error on 404")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected a single attempt on 404, got %d", got)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected no file to be written on failure")
	}
}
