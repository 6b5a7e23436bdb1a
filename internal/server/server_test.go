package server

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastacheck-core/scan"
	"fastacheck/internal/config"
	"fastacheck/internal/jsonutil"
	"fastacheck/pkg/api"
)

var acgt60 = strings.Repeat("ACGT", 15)

func newTestServer(t *testing.T, mutate func(*config.Server)) *httptest.Server {
	t.Helper()
	cfg := config.Default().Server
	if mutate != nil {
		mutate(&cfg)
	}
	s := New(cfg, scan.DefaultOptions(), hclog.NewNullLogger())
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url string, body io.Reader, gz bool) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "text/plain")
	if gz {
		req.Header.Set("Content-Encoding", "gzip")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeReport(t *testing.T, resp *http.Response) api.ReportV1 {
	t.Helper()
	var v api.ReportV1
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var h healthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&h))
	assert.Equal(t, "ok", h.Status)
}

func TestValidateValid(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := post(t, ts.URL+"/api/v1/validate?source=upload.fa", strings.NewReader(">a\n"+acgt60+"\n"), false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, jsonutil.ContentType, resp.Header.Get("Content-Type"))

	v := decodeReport(t, resp)
	assert.True(t, v.Valid)
	assert.Equal(t, "upload.fa", v.Source)
	_, err := uuid.Parse(v.RunID)
	assert.NoError(t, err)
	require.Len(t, v.Records, 1)
	assert.Equal(t, "a", v.Records[0].SeqID)
	assert.Empty(t, v.Diagnostics)
	assert.Nil(t, v.Summary)
}

func TestValidateDiagnosticsAndSummary(t *testing.T) {
	ts := newTestServer(t, nil)
	body := ">seq1\nACGT\n>seq1\nNACGX" + acgt60 + "\n"
	resp := post(t, ts.URL+"/api/v1/validate?summary=true", strings.NewReader(body), false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	v := decodeReport(t, resp)
	assert.False(t, v.Valid)
	var rules []string
	for _, d := range v.Diagnostics {
		rules = append(rules, d.Rule)
	}
	assert.Equal(t, []string{"seq-length", "leading-n", "invalid-char", "duplicate-seqid"}, rules)
	require.NotNil(t, v.Summary)
	assert.Equal(t, 2, v.Summary.Records)
}

func TestValidateGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(">a\n" + acgt60 + "\n>b\n" + acgt60 + "\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	ts := newTestServer(t, nil)
	resp := post(t, ts.URL+"/api/v1/validate", &buf, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	v := decodeReport(t, resp)
	assert.Len(t, v.Records, 2)
	assert.True(t, v.Valid)
}

func TestValidateBadGzip(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := post(t, ts.URL+"/api/v1/validate", strings.NewReader(">a\nACGT\n"), true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var e errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Contains(t, e.Error, "gzip")
	assert.NotEmpty(t, e.RunID)
}

func TestValidateTooLarge(t *testing.T) {
	ts := newTestServer(t, func(c *config.Server) { c.MaxBodyBytes = 16 })
	resp := post(t, ts.URL+"/api/v1/validate", strings.NewReader(">a\n"+acgt60+"\n"), false)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestValidateGzipDecodedTooLarge(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(">a\n" + strings.Repeat("N", 1<<16) + "\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	limit := int64(4 << 10)
	require.Less(t, int64(buf.Len()), limit, "the compressed body fits")
	ts := newTestServer(t, func(c *config.Server) { c.MaxBodyBytes = limit })
	resp := post(t, ts.URL+"/api/v1/validate", &buf, true)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	var e errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.Contains(t, e.Error, "size limit")
}

func TestValidateWrongMethod(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/api/v1/validate")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	cfg := config.Default().Server
	s := New(cfg, scan.DefaultOptions(), hclog.NewNullLogger())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
