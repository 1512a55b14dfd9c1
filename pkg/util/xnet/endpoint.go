package xnet

import (
	"fmt"
	"net"
	"net/netip"
	"strconv"
)

// Endpoint 是 [ParseEndpoint] 的解析结果。
//
// Host 是输入字符串的子串（不含方括号），不发生拷贝。
type Endpoint struct {
	Host string
	Port uint16
	Kind HostKind
}

// String 返回 "host:port" 形式，IPv6 主机加方括号："[::1]:80"。
func (e Endpoint) String() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(int(e.Port)))
}

// AddrPort 将 IP 端点转换为 [netip.AddrPort]，zone ID 会被保留。
// 主机名端点返回 false。
func (e Endpoint) AddrPort() (netip.AddrPort, bool) {
	if e.Kind != KindIPv4 && e.Kind != KindIPv6 {
		return netip.AddrPort{}, false
	}
	addr, err := netip.ParseAddr(e.Host)
	if err != nil {
		return netip.AddrPort{}, false
	}
	return netip.AddrPortFrom(addr, e.Port), true
}

// endpointFault 记录端点解析失败的位置，用于生成错误信息。
type endpointFault uint8

const (
	faultNone endpointFault = iota
	faultEmpty
	faultNoBracket
	faultNoSeparator
	faultEmptyHost
	faultEmptyPort
	faultPort
	faultHost
)

// TryParseEndpoint 将 "host:port" 或 "[ipv6]:port" 拆分为主机和端口。
//
// 两种互斥形式：
//   - 以 '[' 开头：取到第一个 ']' 为止作为 IPv6 主机，']' 后必须紧跟 ':' 与非空端口
//   - 其他：按最后一个 ':' 拆分；两侧均不能为空。主机仅由数字和 '.' 组成时
//     必须是合法 IPv4，否则必须是合法主机名
//
// 未加方括号的 IPv6（如 "::1:80"）一律拒绝。
// 返回的 host 与 s 共享底层存储；解析失败时 host 为零值、port 为 0。
func TryParseEndpoint[T Text](s T) (host T, port uint16, ok bool) {
	h, p, _, fault := splitEndpoint(s)
	if fault != faultNone {
		var zero T
		return zero, 0, false
	}
	return h, p, true
}

// ParseEndpoint 与 [TryParseEndpoint] 语法相同，失败时返回描述原因的错误。
//
// 错误可用 errors.Is 判断：端点结构错误为 [ErrInvalidEndpoint]，
// 主机部分错误为 [ErrInvalidHost]，端口部分错误为 [ErrInvalidPort]。
func ParseEndpoint(s string) (Endpoint, error) {
	host, port, kind, fault := splitEndpoint(s)
	switch fault {
	case faultNone:
		return Endpoint{Host: host, Port: port, Kind: kind}, nil
	case faultEmpty:
		return Endpoint{}, fmt.Errorf("%w: empty input", ErrInvalidEndpoint)
	case faultNoBracket:
		return Endpoint{}, fmt.Errorf("%w: missing closing bracket: %q", ErrInvalidEndpoint, s)
	case faultNoSeparator:
		return Endpoint{}, fmt.Errorf("%w: missing port separator: %q", ErrInvalidEndpoint, s)
	case faultEmptyHost:
		return Endpoint{}, fmt.Errorf("%w: empty host: %q", ErrInvalidHost, s)
	case faultEmptyPort:
		return Endpoint{}, fmt.Errorf("%w: empty port: %q", ErrInvalidPort, s)
	case faultPort:
		return Endpoint{}, fmt.Errorf("%w: %q", ErrInvalidPort, s)
	default:
		return Endpoint{}, fmt.Errorf("%w: %q", ErrInvalidHost, s)
	}
}

// MustParseEndpoint 类似 [ParseEndpoint]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParseEndpoint(s string) Endpoint {
	e, err := ParseEndpoint(s)
	if err != nil {
		panic(fmt.Sprintf("xnet.MustParseEndpoint(%q): %v", s, err))
	}
	return e
}

func splitEndpoint[T Text](s T) (host T, port uint16, kind HostKind, fault endpointFault) {
	if len(s) == 0 {
		return host, 0, KindInvalid, faultEmpty
	}

	if s[0] == '[' {
		closing := indexByte(s, ']')
		if closing < 0 {
			return host, 0, KindInvalid, faultNoBracket
		}
		if closing+1 >= len(s) || s[closing+1] != ':' {
			return host, 0, KindInvalid, faultNoSeparator
		}
		portText := s[closing+2:]
		if len(portText) == 0 {
			return host, 0, KindInvalid, faultEmptyPort
		}
		p, ok := ParsePort(portText)
		if !ok {
			return host, 0, KindInvalid, faultPort
		}
		h := s[1:closing]
		if !IsIPv6Address(h) {
			return host, 0, KindInvalid, faultHost
		}
		return h, p, KindIPv6, faultNone
	}

	colon := lastIndexByte(s, ':')
	if colon < 0 {
		return host, 0, KindInvalid, faultNoSeparator
	}
	h, portText := s[:colon], s[colon+1:]
	if len(h) == 0 {
		return host, 0, KindInvalid, faultEmptyHost
	}
	if len(portText) == 0 {
		return host, 0, KindInvalid, faultEmptyPort
	}
	p, ok := ParsePort(portText)
	if !ok {
		return host, 0, KindInvalid, faultPort
	}

	// 未加方括号的主机不能含 ':'，因此 IPv6 必须使用方括号形式
	kind = ClassifyHost(h)
	if kind == KindInvalid || kind == KindIPv6 {
		return host, 0, KindInvalid, faultHost
	}
	return h, p, kind, faultNone
}

// looksLikeIPv4 报告 s 是否只由数字和 '.' 组成。
func looksLikeIPv4[T Text](s T) bool {
	for i := range len(s) {
		if c := s[i]; !isDigit(c) && c != '.' {
			return false
		}
	}
	return true
}
