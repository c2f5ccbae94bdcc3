// Package synth generates random structured technical data.
//
// The records are synthetic server telemetry (host identity, resource
// metrics, process counters) used purely as payload for stdio pipeline
// testing — nothing here reads real system state.
package synth

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// memoryTotalMB is reported as a constant so memory_used_mb always has
// a plausible ceiling.
const memoryTotalMB = 32768

// Record is one synthetic telemetry snapshot, roughly 10-15 fields.
type Record struct {
	RequestID   string      `json:"request_id"`
	Timestamp   string      `json:"timestamp"`
	ServerInfo  ServerInfo  `json:"server_info"`
	Metrics     Metrics     `json:"metrics"`
	ProcessInfo ProcessInfo `json:"process_info"`
	Status      string      `json:"status"`
	Tags        []string    `json:"tags"`
	Version     string      `json:"version"`
}

// ServerInfo identifies the fictional host the record describes.
type ServerInfo struct {
	Hostname      string `json:"hostname"`
	IPAddress     string `json:"ip_address"`
	MACAddress    string `json:"mac_address"`
	UptimeSeconds int    `json:"uptime_seconds"`
}

// Metrics holds resource utilization figures.
type Metrics struct {
	CPUUsagePercent float64 `json:"cpu_usage_percent"`
	MemoryUsedMB    int     `json:"memory_used_mb"`
	MemoryTotalMB   int     `json:"memory_total_mb"`
	DiskIOReadMbps  float64 `json:"disk_io_read_mbps"`
	DiskIOWriteMbps float64 `json:"disk_io_write_mbps"`
	NetworkRxMbps   float64 `json:"network_rx_mbps"`
	NetworkTxMbps   float64 `json:"network_tx_mbps"`
}

// ProcessInfo holds per-process counters.
type ProcessInfo struct {
	PID         int `json:"pid"`
	Threads     int `json:"threads"`
	OpenFiles   int `json:"open_files"`
	Connections int `json:"connections"`
}

// statuses a record can report. Random choice, not derived from metrics.
var statuses = []string{"healthy", "degraded", "warning", "critical"}

// Generator produces Records from an injectable random source, so tests
// can run deterministically with a fixed seed.
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

// New creates a Generator seeded from the current time.
func New() *Generator {
	return NewWithSource(rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// NewWithSource creates a Generator with an explicit random source and
// clock. Used by tests; now may be nil to use time.Now.
func NewWithSource(rnd *rand.Rand, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{rnd: rnd, now: now}
}

// Record builds one fully populated synthetic record.
func (g *Generator) Record() Record {
	return Record{
		RequestID: uuid.NewString(),
		Timestamp: g.now().UTC().Format(time.RFC3339Nano),
		ServerInfo: ServerInfo{
			Hostname:      "server-" + g.RandomString(6),
			IPAddress:     g.RandomIPv4(),
			MACAddress:    g.RandomMAC(),
			UptimeSeconds: g.intBetween(3600, 86400*30),
		},
		Metrics: Metrics{
			CPUUsagePercent: g.floatBetween(5.0, 95.0),
			MemoryUsedMB:    g.intBetween(512, 16384),
			MemoryTotalMB:   memoryTotalMB,
			DiskIOReadMbps:  g.floatBetween(0.1, 500.0),
			DiskIOWriteMbps: g.floatBetween(0.1, 300.0),
			NetworkRxMbps:   g.floatBetween(0.01, 1000.0),
			NetworkTxMbps:   g.floatBetween(0.01, 500.0),
		},
		ProcessInfo: ProcessInfo{
			PID:         g.intBetween(1000, 65535),
			Threads:     g.intBetween(1, 64),
			OpenFiles:   g.intBetween(10, 1000),
			Connections: g.intBetween(0, 500),
		},
		Status:  statuses[g.rnd.Intn(len(statuses))],
		Tags:    g.randomTags(),
		Version: fmt.Sprintf("%d.%d.%d", g.intBetween(1, 5), g.intBetween(0, 20), g.intBetween(0, 100)),
	}
}

// Records builds count records. Count must already be validated by the
// caller; values below 1 yield an empty slice.
func (g *Generator) Records(count int) []Record {
	records := make([]Record, 0, max(count, 0))
	for i := 0; i < count; i++ {
		records = append(records, g.Record())
	}
	return records
}

// RandomString returns a random alphanumeric string of the given length.
func (g *Generator) RandomString(length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(alphanumeric[g.rnd.Intn(len(alphanumeric))])
	}
	return sb.String()
}

// RandomIPv4 returns a random dotted-quad address. First and last
// octets avoid 0 so the result never looks like a network or broadcast
// address.
func (g *Generator) RandomIPv4() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		g.intBetween(1, 255),
		g.intBetween(0, 255),
		g.intBetween(0, 255),
		g.intBetween(1, 254),
	)
}

// RandomMAC returns a random colon-separated MAC address.
func (g *Generator) RandomMAC() string {
	parts := make([]string, 6)
	for i := range parts {
		parts[i] = fmt.Sprintf("%02x", g.rnd.Intn(256))
	}
	return strings.Join(parts, ":")
}

func (g *Generator) randomTags() []string {
	n := g.intBetween(2, 5)
	tags := make([]string, n)
	for i := range tags {
		tags[i] = g.RandomString(4)
	}
	return tags
}

// Delay returns a random duration in [lo, hi], used to simulate
// real API latency on request.
func (g *Generator) Delay(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(g.rnd.Int63n(int64(hi-lo)+1))
}

// intBetween returns a random int in [lo, hi] inclusive.
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rnd.Intn(hi-lo+1)
}

// floatBetween returns a random float in [lo, hi) rounded to two
// decimal places.
func (g *Generator) floatBetween(lo, hi float64) float64 {
	v := lo + g.rnd.Float64()*(hi-lo)
	return math.Round(v*100) / 100
}
