package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/nzai/pubapi/astronomy"
	"github.com/nzai/pubapi/constants"
	"github.com/stretchr/testify/require"
)

func newAPOD(t *testing.T, mediaType string) *httptest.Server {
	t.Helper()

	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/apod":
			fmt.Fprintf(w, `{"title": "Andromeda", "explanation": "A spiral galaxy.", "media_type": %q, "url": "%s/image/M31.jpg"}`, mediaType, server.URL)
		case "/image/M31.jpg":
			io.WriteString(w, "jpeg bytes")
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

func TestDailyAstronomy(t *testing.T) {
	server := newAPOD(t, "image")
	dir := t.TempDir()

	var opened string
	stdout := new(bytes.Buffer)
	d := NewDailyAstronomy(stdout,
		astronomy.WithBaseURL(server.URL+"/apod"),
		astronomy.WithOpener(func(path string) error {
			opened = path
			return nil
		}))

	err := d.Command().Run(context.Background(), []string{"get_daily_astronomy", "--dir", dir})
	require.NoError(t, err)
	require.Equal(t, "Andromeda\nA spiral galaxy.\n", stdout.String())
	require.Equal(t, filepath.Join(dir, "M31.jpg"), opened)

	buffer, err := os.ReadFile(opened)
	require.NoError(t, err)
	require.Equal(t, "jpeg bytes", string(buffer))
}

func TestDailyAstronomy_Video(t *testing.T) {
	server := newAPOD(t, "video")
	dir := t.TempDir()

	stdout := new(bytes.Buffer)
	d := NewDailyAstronomy(stdout,
		astronomy.WithBaseURL(server.URL+"/apod"),
		astronomy.WithOpener(func(path string) error {
			t.Fatalf("viewer opened for %s", path)
			return nil
		}))

	err := d.Command().Run(context.Background(), []string{"get_daily_astronomy", "--dir", dir})
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "today's video: "+server.URL+"/image/M31.jpg")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestDailyAstronomy_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	stdout := new(bytes.Buffer)
	d := NewDailyAstronomy(stdout, astronomy.WithBaseURL(server.URL))

	err := d.Command().Run(context.Background(), []string{"get_daily_astronomy", "--no-show"})
	require.ErrorIs(t, err, constants.ErrUpstream)
	require.Empty(t, stdout.String())
}
