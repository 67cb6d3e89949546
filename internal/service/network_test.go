package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestCalculateSubnet(t *testing.T) {
	t.Run("class C /24", func(t *testing.T) {
		resp := CalculateSubnet("192.168.1.1", "24")
		assert.True(t, resp.Valid)
		assert.Equal(t, "255.255.255.0", resp.Mask)
		assert.Equal(t, "0.0.0.255", resp.Wildcard)
		assert.Equal(t, "192.168.1.0", resp.Network)
		assert.Equal(t, "192.168.1.255", resp.Broadcast)
		assert.Equal(t, "192.168.1.1", resp.FirstIP)
		assert.Equal(t, "192.168.1.254", resp.LastIP)
		assert.Equal(t, uint64(256), resp.TotalHosts)
		assert.Equal(t, uint64(254), resp.UsableHosts)
		assert.Equal(t, "192.168.1.0/24", resp.CIDR)
		assert.Equal(t, "C", resp.IPClass)
		assert.Equal(t, "Private", resp.IPType)
		assert.Equal(t, "11000000.10101000.00000001.00000001", resp.BinaryIP)
		assert.Equal(t, "11111111.11111111.11111111.00000000", resp.BinaryMask)
	})

	tests := []struct {
		name    string
		ip      string
		cidr    string
		total   uint64
		usable  uint64
		first   string
		last    string
		ipClass string
		ipType  string
	}{
		{"point to point /31", "10.0.0.1", "31", 2, 0, "10.0.0.0", "10.0.0.1", "A", "Private"},
		{"host /32", "8.8.8.8", "/32", 1, 0, "8.8.8.8", "8.8.8.8", "A", "Public"},
		{"whole space /0", "127.0.0.1", "0", 1 << 32, 1<<32 - 2, "0.0.0.1", "255.255.255.254", "A", "Loopback"},
		{"multicast", "224.0.0.5", "8", 1 << 24, 1<<24 - 2, "224.0.0.1", "224.255.255.254", "D (multicast)", "Multicast"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := CalculateSubnet(tc.ip, tc.cidr)
			assert.True(t, resp.Valid)
			assert.Equal(t, tc.total, resp.TotalHosts)
			assert.Equal(t, tc.usable, resp.UsableHosts)
			assert.Equal(t, tc.first, resp.FirstIP)
			assert.Equal(t, tc.last, resp.LastIP)
			assert.Equal(t, tc.ipClass, resp.IPClass)
			assert.Equal(t, tc.ipType, resp.IPType)
		})
	}

	for _, bad := range [][2]string{{"300.1.1.1", "24"}, {"::1", "64"}, {"10.0.0.1", "33"}, {"10.0.0.1", "x"}} {
		resp := CalculateSubnet(bad[0], bad[1])
		assert.False(t, resp.Valid, bad)
		assert.NotEmpty(t, resp.Error, bad)
	}
}

func TestCheckCron(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC))

	tests := []struct {
		name  string
		expr  string
		valid bool
	}{
		{"every minute", "* * * * *", true},
		{"steps and lists", "*/15 0,12 1-15 * 1-5", true},
		{"sunday as seven", "0 0 * * 7", true},
		{"minute out of range", "60 * * * *", false},
		{"month zero", "0 0 1 0 *", false},
		{"bad step", "*/0 * * * *", false},
		{"reversed range", "0 0 10-5 * *", false},
		{"too few fields", "* * * *", false},
		{"empty", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := CheckCron(tc.expr, clock.Now())
			assert.Equal(t, tc.valid, resp.Valid)
			if tc.valid {
				assert.Len(t, resp.NextRuns, 5)
				assert.Empty(t, resp.Error)
			} else {
				assert.Empty(t, resp.NextRuns)
				assert.NotNil(t, resp.NextRuns)
				assert.NotEmpty(t, resp.Error)
			}
		})
	}

	resp := CheckCron("* * * * *", clock.Now())
	assert.Equal(t, "2024-01-01 11:00:00 UTC", resp.NextRuns[0])
	assert.Equal(t, "2024-01-01 15:00:00 UTC", resp.NextRuns[4])

	pinned := CheckCron("45 * * * *", clock.Now())
	assert.Equal(t, "2024-01-01 11:45:00 UTC", pinned.NextRuns[0])
}

func TestWhoami(t *testing.T) {
	h := http.Header{}
	h.Set("User-Agent", "curl/8.0")
	h.Set("CF-IPCountry", "NL")

	resp := Whoami("10.1.2.3", h)
	assert.Equal(t, "10.1.2.3", resp.IP)
	assert.Equal(t, "NL", resp.Country)
	assert.Equal(t, "-", resp.City)
	assert.Equal(t, "curl/8.0", resp.UserAgent)
	assert.Equal(t, "curl/8.0", resp.Headers["user-agent"])

	h.Set("CF-Connecting-IP", "203.0.113.9")
	assert.Equal(t, "203.0.113.9", Whoami("10.1.2.3", h).IP)
}
