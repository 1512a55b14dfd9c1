package addrcheck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/omeyang/xaddr/pkg/util/xnet"
)

// ErrUnknownKind 无法识别的校验类别
var ErrUnknownKind = errors.New("addrcheck: unknown kind")

// Kind 校验类别
type Kind string

const (
	KindIPv4     Kind = "ipv4"
	KindIPv6     Kind = "ipv6"
	KindIP       Kind = "ip"       // IPv4 或 IPv6
	KindHostname Kind = "hostname" // RFC 1123 主机名（含域名）
	KindDomain   Kind = "domain"   // 至少包含一个点的主机名
	KindHost     Kind = "host"     // 任意可作为端点主机的文本
	KindPort     Kind = "port"
	KindEndpoint Kind = "endpoint"
)

var kinds = []Kind{
	KindIPv4, KindIPv6, KindIP, KindHostname,
	KindDomain, KindHost, KindPort, KindEndpoint,
}

// Kinds 返回全部类别，顺序固定。
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind 解析类别名（大小写不敏感，去除首尾空白）。
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) String() string { return string(k) }

// Check 按类别校验文本。未知类别返回 false。
func Check[T xnet.Text](k Kind, s T) bool {
	switch k {
	case KindIPv4:
		return xnet.IsIPv4Address(s)
	case KindIPv6:
		return xnet.IsIPv6Address(s)
	case KindIP:
		return xnet.IsIPv4Address(s) || xnet.IsIPv6Address(s)
	case KindHostname:
		return xnet.IsValidHostname(s)
	case KindDomain:
		return xnet.IsDomainName(s)
	case KindHost:
		return xnet.ClassifyHost(s) != xnet.KindInvalid
	case KindPort:
		return xnet.IsValidPort(s)
	case KindEndpoint:
		_, _, ok := xnet.TryParseEndpoint(s)
		return ok
	default:
		return false
	}
}
