package xnet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIPv6Address(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		// 完整形式
		{"full form", "2001:0db8:85a3:0000:0000:8a2e:0370:7334", true},
		{"full zeros padded", "2001:0db8:0000:0000:0000:0000:0000:0001", true},
		{"full short groups", "2001:db8:0:0:0:0:0:1", true},
		{"uppercase", "2001:DB8:85A3:0:0:8A2E:370:7334", true},

		// 压缩形式
		{"unspecified", "::", true},
		{"loopback", "::1", true},
		{"compressed middle", "2001:db8::1", true},
		{"compressed tail", "2001:db8::", true},
		{"compressed seven groups", "1:2:3:4:5:6:7::", true},
		{"compressed leading seven", "::2:3:4:5:6:7:8", true},
		{"compressed mixed", "2001:db8:85a3::8a2e:370:7334", true},
		{"link local", "fe80::1", true},

		// 内嵌 IPv4
		{"ipv4 mapped", "::ffff:192.0.2.1", true},
		{"ipv4 compatible", "::1.2.3.4", true},
		{"ipv4 full form", "1:2:3:4:5:6:1.2.3.4", true},
		{"ipv4 after group", "1::2.3.4.5", true},
		{"ipv4 too many groups", "1:2:3:4:5:6:7:1.2.3.4", false},
		{"ipv4 six groups compressed", "1:2:3:4:5:6::1.2.3.4", false},
		{"ipv4 invalid octet", "::ffff:256.0.2.1", false},
		{"ipv4 leading zero", "::ffff:01.0.2.1", false},
		{"ipv4 short", "::ffff:1.2.3", false},
		{"ipv4 not terminal", "::1.2.3.4:5", false},
		{"ipv4 hex group", "::ab.1.2.3", false},
		{"bare ipv4", "1.2.3.4", false},

		// zone ID
		{"zone eth0", "fe80::1%eth0", true},
		{"zone lo0", "fe80::1%lo0", true},
		{"zone numeric", "fe80::1%1", true},
		{"zone on full form", "1:2:3:4:5:6:7:8%eth0", true},
		{"zone on unspecified", "::%eth0", true},
		{"zone with ipv4", "::ffff:1.2.3.4%eth0", true},
		{"zone opaque", "fe80::1%br-lan.0:x", true},
		{"zone empty", "fe80::1%", false},
		{"zone empty ipv4", "::ffff:1.2.3.4%", false},
		{"zone only", "%eth0", false},
		{"zone without compression", "1%eth0", false},

		// 格式错误
		{"empty", "", false},
		{"single colon", ":", false},
		{"triple colon", ":::", false},
		{"triple colon inner", "2001:db8:::1", false},
		{"two compressions", "2001:db8::1::2", false},
		{"invalid hex", "gggg::1", false},
		{"too many groups", "2001:db8:85a3::8a2e:370:7334:extra", false},
		{"nine groups", "1:2:3:4:5:6:7:8:9", false},
		{"seven groups", "1:2:3:4:5:6:7", false},
		{"seven groups with zone", "1:2:3:4:5:6:7%eth0", false},
		{"eight groups compressed", "1:2:3:4:5:6:7:8::", false},
		{"eight groups leading compression", "::1:2:3:4:5:6:7:8", false},
		{"leading single colon", ":1::", false},
		{"leading single colon full", ":1:2:3:4:5:6:7:8", false},
		{"trailing single colon", "1::2:", false},
		{"five digit group", "20011:db8::1", false},
		{"long group", "2001:db88888::1", false},
		{"trailing space", "2001:db8::1 ", false},
		{"leading space", " 2001:db8::1", false},
		{"invalid hex char", "2001:db8::g", false},
		{"prefix length", "2001:db8::1/64", false},
		{"brackets", "[2001:db8::1]", false},
		{"too long", "0000:0000:0000:0000:0000:0000:0000:0001%abcdefg", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIPv6Address(tt.input))
			assert.Equal(t, tt.want, IsIPv6Address([]byte(tt.input)), "[]byte form")
		})
	}
}

func TestIsIPv6AddressLengthBound(t *testing.T) {
	longest := "ffff:ffff:ffff:ffff:ffff:ffff:255.255.255.255"
	assert.Len(t, longest, maxIPv6Len)
	assert.True(t, IsIPv6Address(longest))

	zoned := "fe80::1%" + strings.Repeat("a", maxIPv6Len-len("fe80::1%"))
	assert.Len(t, zoned, maxIPv6Len)
	assert.True(t, IsIPv6Address(zoned))
	assert.False(t, IsIPv6Address(zoned+"a"))
}
