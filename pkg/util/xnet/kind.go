package xnet

import (
	"fmt"
	"strings"
)

// HostKind 表示主机文本所属的语法类别。
type HostKind uint8

const (
	// KindInvalid 不满足任何主机语法。
	KindInvalid HostKind = iota
	// KindIPv4 点分十进制 IPv4 地址。
	KindIPv4
	// KindIPv6 IPv6 地址（可含 zone ID，不含方括号）。
	KindIPv6
	// KindDomain 至少含一个 '.' 的主机名。
	KindDomain
	// KindHostname 不含 '.' 的单标签主机名，如 "localhost"。
	KindHostname
)

var kindNames = [...]string{
	KindInvalid:  "invalid",
	KindIPv4:     "ipv4",
	KindIPv6:     "ipv6",
	KindDomain:   "domain",
	KindHostname: "hostname",
}

// String 返回类别名称，与 [ParseHostKind] 互逆。
func (k HostKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("HostKind(%d)", uint8(k))
}

// IsIP 报告类别是否为 IP 地址。
func (k HostKind) IsIP() bool {
	return k == KindIPv4 || k == KindIPv6
}

// Version 返回类别对应的 IP 版本，非 IP 类别返回 V0。
func (k HostKind) Version() Version {
	switch k {
	case KindIPv4:
		return V4
	case KindIPv6:
		return V6
	default:
		return V0
	}
}

// MarshalText 实现 encoding.TextMarshaler。
func (k HostKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler，支持从配置文件直接反序列化。
func (k *HostKind) UnmarshalText(data []byte) error {
	parsed, err := ParseHostKind(string(data))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseHostKind 解析类别名称（大小写不敏感，自动去除首尾空白）。
// "invalid" 不是可解析的名称。
func ParseHostKind(s string) (HostKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k := KindIPv4; int(k) < len(kindNames); k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// ClassifyHost 返回 s 的主机类别。
//
// 只由数字和 '.' 组成的文本必须是合法 IPv4，否则归为 KindInvalid：
// "256.1.1.1"、"1.2.3"、"123" 都不会被当作主机名接受，与 [TryParseEndpoint] 的主机规则一致。
// 其余文本依次按 IPv6 → 域名 → 主机名判定。
func ClassifyHost[T Text](s T) HostKind {
	if looksLikeIPv4(s) {
		if IsIPv4Address(s) {
			return KindIPv4
		}
		return KindInvalid
	}
	if IsIPv6Address(s) {
		return KindIPv6
	}
	if !IsValidHostname(s) {
		return KindInvalid
	}
	if indexByte(s, '.') >= 0 {
		return KindDomain
	}
	return KindHostname
}
