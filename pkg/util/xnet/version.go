package xnet

// Version 表示 IP 协议版本。
type Version uint8

const (
	// V0 表示非 IP 或无效的主机。
	V0 Version = 0
	// V4 表示 IPv4。
	V4 Version = 4
	// V6 表示 IPv6。
	V6 Version = 6
)

// String 返回版本的字符串表示。
func (v Version) String() string {
	switch v {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// HostVersion 返回主机文本的 IP 版本；主机名与无效文本返回 V0。
func HostVersion[T Text](s T) Version {
	return ClassifyHost(s).Version()
}
