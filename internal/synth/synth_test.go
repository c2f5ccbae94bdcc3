package synth

import (
	"encoding/json"
	"math/rand"
	"net"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(seed int64) *Generator {
	fixed := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	return NewWithSource(rand.New(rand.NewSource(seed)), func() time.Time { return fixed })
}

func TestRecord_FieldRanges(t *testing.T) {
	g := newTestGenerator(1)

	for i := 0; i < 50; i++ {
		rec := g.Record()

		_, err := uuid.Parse(rec.RequestID)
		require.NoError(t, err, "request_id must be a UUID")

		_, err = time.Parse(time.RFC3339Nano, rec.Timestamp)
		require.NoError(t, err, "timestamp must be RFC3339")

		assert.Regexp(t, regexp.MustCompile(`^server-[A-Za-z0-9]{6}$`), rec.ServerInfo.Hostname)
		assert.NotNil(t, net.ParseIP(rec.ServerInfo.IPAddress), "ip %q", rec.ServerInfo.IPAddress)
		_, err = net.ParseMAC(rec.ServerInfo.MACAddress)
		assert.NoError(t, err, "mac %q", rec.ServerInfo.MACAddress)
		assert.GreaterOrEqual(t, rec.ServerInfo.UptimeSeconds, 3600)
		assert.LessOrEqual(t, rec.ServerInfo.UptimeSeconds, 86400*30)

		assert.GreaterOrEqual(t, rec.Metrics.CPUUsagePercent, 5.0)
		assert.LessOrEqual(t, rec.Metrics.CPUUsagePercent, 95.0)
		assert.GreaterOrEqual(t, rec.Metrics.MemoryUsedMB, 512)
		assert.LessOrEqual(t, rec.Metrics.MemoryUsedMB, 16384)
		assert.Equal(t, 32768, rec.Metrics.MemoryTotalMB)

		assert.GreaterOrEqual(t, rec.ProcessInfo.PID, 1000)
		assert.LessOrEqual(t, rec.ProcessInfo.PID, 65535)
		assert.GreaterOrEqual(t, rec.ProcessInfo.Threads, 1)
		assert.LessOrEqual(t, rec.ProcessInfo.Threads, 64)

		assert.Contains(t, []string{"healthy", "degraded", "warning", "critical"}, rec.Status)

		assert.GreaterOrEqual(t, len(rec.Tags), 2)
		assert.LessOrEqual(t, len(rec.Tags), 5)
		for _, tag := range rec.Tags {
			assert.Len(t, tag, 4)
		}

		assert.Regexp(t, regexp.MustCompile(`^[1-5]\.\d{1,2}\.\d{1,3}$`), rec.Version)
	}
}

func TestRecord_JSONFieldNames(t *testing.T) {
	g := newTestGenerator(2)

	data, err := json.Marshal(g.Record())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))

	for _, key := range []string{
		"request_id", "timestamp", "server_info", "metrics",
		"process_info", "status", "tags", "version",
	} {
		assert.Contains(t, m, key)
	}

	metrics, ok := m["metrics"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{
		"cpu_usage_percent", "memory_used_mb", "memory_total_mb",
		"disk_io_read_mbps", "disk_io_write_mbps", "network_rx_mbps", "network_tx_mbps",
	} {
		assert.Contains(t, metrics, key)
	}
}

func TestRecords_Count(t *testing.T) {
	g := newTestGenerator(3)

	assert.Len(t, g.Records(1), 1)
	assert.Len(t, g.Records(10), 10)
	assert.Empty(t, g.Records(0))
	assert.Empty(t, g.Records(-3))
}

func TestRandomString_Deterministic(t *testing.T) {
	a := newTestGenerator(42)
	b := newTestGenerator(42)

	assert.Equal(t, a.RandomString(8), b.RandomString(8))
}
