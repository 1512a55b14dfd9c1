package xnet

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIPv4Address(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"zero", "0.0.0.0", true},
		{"loopback", "127.0.0.1", true},
		{"private", "192.168.1.1", true},
		{"broadcast", "255.255.255.255", true},
		{"class A", "10.0.0.1", true},
		{"class B", "172.16.0.1", true},
		{"dns", "8.8.8.8", true},
		{"single digits", "1.2.3.4", true},

		{"empty", "", false},
		{"missing octet", "192.168.1", false},
		{"too many octets", "192.168.1.1.1", false},
		{"empty octet", "192.168..1", false},
		{"leading dot", ".192.168.1.1", false},
		{"trailing dot", "192.168.1.1.", false},
		{"trailing single dot short", "1.2.3.4.", false},
		{"double trailing dot", "192.168.1.1..", false},
		{"dots only", "...", false},
		{"too long", "1.2.3.4.5.6.7.8", false},

		{"first octet 256", "256.1.1.1", false},
		{"second octet 256", "1.256.1.1", false},
		{"third octet 256", "1.1.256.1", false},
		{"last octet 256", "1.1.1.256", false},
		{"all 999", "999.999.999.999", false},
		{"all 300", "300.300.300.300", false},
		{"four digits", "1000.1.1.1", false},

		{"letters", "abc.def.ghi.jkl", false},
		{"letter octet", "192.168.1.a", false},
		{"letter suffix", "192.168.1.1a", false},
		{"trailing space", "192.168.1.1 ", false},
		{"leading space", " 192.168.1.1", false},
		{"inner space", "192.168. 1.1", false},
		{"with port", "192.168.1.1:80", false},
		{"cidr", "192.168.1.1/24", false},
		{"hyphens", "192-168-1-1", false},
		{"plus sign", "1.2.3.+4", false},

		{"leading zeros all", "01.02.03.04", false},
		{"leading zero first", "01.1.1.1", false},
		{"leading zero last", "1.1.1.01", false},
		{"double zero", "1.1.1.00", false},
		{"padded", "192.168.001.001", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIPv4Address(tt.input))
			assert.Equal(t, tt.want, IsIPv4Address([]byte(tt.input)), "[]byte form")
		})
	}
}

// TestIsIPv4AddressOctetSweep 逐个校验 0~999 及其补零形式作为每个位置的八位段。
func TestIsIPv4AddressOctetSweep(t *testing.T) {
	for v := range 1000 {
		forms := []string{strconv.Itoa(v)}
		if v < 100 {
			forms = append(forms, "0"+strconv.Itoa(v))
		}
		if v < 10 {
			forms = append(forms, "00"+strconv.Itoa(v))
		}
		for i, octet := range forms {
			want := v <= 255 && i == 0
			for pos := range 4 {
				parts := []string{"1", "1", "1", "1"}
				parts[pos] = octet
				s := parts[0] + "." + parts[1] + "." + parts[2] + "." + parts[3]
				if got := IsIPv4Address(s); got != want {
					t.Fatalf("IsIPv4Address(%q) = %v, want %v", s, got, want)
				}
			}
		}
	}
}

func TestIsIPv4AddressIdempotent(t *testing.T) {
	for _, s := range []string{"10.0.0.1", "256.0.0.1", "", "1.2.3.4."} {
		first := IsIPv4Address(s)
		for range 3 {
			assert.Equal(t, first, IsIPv4Address(s), s)
		}
	}
}
