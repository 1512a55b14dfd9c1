package addrcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(" " + string(k) + " ")
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseKind("IPv6")
	require.NoError(t, err)
	assert.Equal(t, KindIPv6, got)

	for _, bad := range []string{"", "cidr", "invalid", "uri"} {
		_, err := ParseKind(bad)
		assert.ErrorIs(t, err, ErrUnknownKind, bad)
	}
}

func TestKinds_ReturnsCopy(t *testing.T) {
	a := Kinds()
	a[0] = "mutated"
	assert.Equal(t, KindIPv4, Kinds()[0])
}

func TestCheck(t *testing.T) {
	tests := []struct {
		kind  Kind
		input string
		want  bool
	}{
		{KindIPv4, "192.168.1.1", true},
		{KindIPv4, "01.1.1.1", false},
		{KindIPv6, "2001:db8::1", true},
		{KindIPv6, "1:::2", false},
		{KindIP, "10.0.0.1", true},
		{KindIP, "fe80::1%eth0", true},
		{KindIP, "example.com", false},
		{KindHostname, "localhost", true},
		{KindHostname, "-bad", false},
		{KindDomain, "example.com", true},
		{KindDomain, "localhost", false},
		{KindHost, "::1", true},
		{KindHost, "db-01", true},
		{KindHost, "1.2.3", false},
		{KindPort, "080", true},
		{KindPort, "65536", false},
		{KindEndpoint, "[::1]:443", true},
		{KindEndpoint, "example.com:80", true},
		{KindEndpoint, "::1:443", false},
		{Kind("bogus"), "anything", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Check(tt.kind, tt.input))
			assert.Equal(t, tt.want, Check(tt.kind, []byte(tt.input)))
		})
	}
}
