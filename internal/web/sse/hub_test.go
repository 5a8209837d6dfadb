package sse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/courtbot/internal/testutil"
)

func TestFormatSSEMessage(t *testing.T) {
	tests := []struct {
		name      string
		eventName string
		data      string
		expected  string
	}{
		{
			name:      "single line data",
			eventName: "status",
			data:      "hello world",
			expected:  "event: status\ndata: hello world\n\n",
		},
		{
			name:      "multi-line data",
			eventName: "status",
			data:      "*Current Status:*\n🏸 Courts: 1\n",
			expected:  "event: status\ndata: *Current Status:*\ndata: 🏸 Courts: 1\n\n",
		},
		{
			name:      "blank lines kept",
			eventName: "status",
			data:      "a\n\nb",
			expected:  "event: status\ndata: a\ndata: \ndata: b\n\n",
		},
		{
			name:      "empty data",
			eventName: "ping",
			data:      "",
			expected:  "event: ping\ndata: \n\n",
		},
		{
			name:      "data with carriage returns",
			eventName: "test",
			data:      "line1\r\nline2",
			expected:  "event: test\ndata: line1\ndata: line2\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(formatSSEMessage(tt.eventName, tt.data)))
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "single line", input: "hello", expected: []string{"hello"}},
		{name: "two lines", input: "line1\nline2", expected: []string{"line1", "line2"}},
		{name: "trailing newline", input: "line1\n", expected: []string{"line1"}},
		{name: "empty string", input: "", expected: []string{""}},
		{name: "crlf line endings", input: "line1\r\nline2\r\n", expected: []string{"line1", "line2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitLines(tt.input))
		})
	}
}

func newRunningHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(testutil.NopLogger())
	go hub.Run()
	t.Cleanup(hub.Close)
	return hub
}

func receive(t *testing.T, client *Client) string {
	t.Helper()
	select {
	case msg := <-client.send:
		return string(msg)
	case <-time.After(time.Second):
		t.Fatal("client did not receive message")
		return ""
	}
}

func TestHub_RegisterAndBroadcast(t *testing.T) {
	hub := newRunningHub(t)

	client := NewClient(hub, "client-1")
	require.True(t, hub.Register(client))

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.BroadcastEvent("status", "test data")
	assert.Equal(t, "event: status\ndata: test data\n\n", receive(t, client))
}

func TestHub_ReplaysLatestToNewClient(t *testing.T) {
	hub := newRunningHub(t)

	first := NewClient(hub, "client-1")
	hub.Register(first)
	hub.BroadcastEvent("status", "one")
	hub.BroadcastEvent("status", "two")
	receive(t, first)
	receive(t, first)

	late := NewClient(hub, "client-2")
	hub.Register(late)
	assert.Equal(t, "event: status\ndata: two\n\n", receive(t, late))
}

func TestHub_Unregister(t *testing.T) {
	hub := newRunningHub(t)

	client := NewClient(hub, "client-1")
	hub.Register(client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Unregister(client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)

	_, open := <-client.send
	assert.False(t, open)
}

func TestHub_BroadcastToMultipleClients(t *testing.T) {
	hub := newRunningHub(t)

	clients := []*Client{NewClient(hub, "c1"), NewClient(hub, "c2"), NewClient(hub, "c3")}
	for _, c := range clients {
		hub.Register(c)
	}
	require.Eventually(t, func() bool { return hub.ClientCount() == 3 }, time.Second, 5*time.Millisecond)

	hub.BroadcastEvent("update", "data")
	for _, c := range clients {
		assert.Equal(t, "event: update\ndata: data\n\n", receive(t, c))
	}
}

func TestHub_RegisterAfterClose(t *testing.T) {
	hub := NewHub(testutil.NopLogger())
	hub.Close()
	hub.Close()

	assert.False(t, hub.Register(NewClient(hub, "late")))
}

func TestServeSSE_StreamsStatus(t *testing.T) {
	hub := newRunningHub(t)
	hub.BroadcastEvent(EventStatus, "*Current Status:*")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ServeSSE(w, r, hub, r.RemoteAddr)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	var got strings.Builder
	buf := make([]byte, 1024)
	for !strings.Contains(got.String(), "data: *Current Status:*") {
		n, err := resp.Body.Read(buf)
		got.Write(buf[:n])
		require.NoError(t, err)
	}
	assert.Contains(t, got.String(), "event: connected")
	assert.Contains(t, got.String(), "event: status")
}
