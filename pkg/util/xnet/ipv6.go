package xnet

const (
	// maxIPv6Len 为含 zone ID 的 IPv6 文本长度上限。
	// 最长的无 zone 形式 "ffff:ffff:ffff:ffff:ffff:ffff:255.255.255.255" 为 45 字节。
	maxIPv6Len = 45

	ipv6Groups = 8
)

// IsIPv6Address 报告 s 是否为 IPv6 地址文本（RFC 4291 §2.2，RFC 5952）。
//
// 支持的形式：
//   - 完整形式："2001:0db8:85a3:0000:0000:8a2e:0370:7334"
//   - "::" 压缩（全文至多一次）："2001:db8::1"、"::1"、"::"
//   - 内嵌 IPv4 尾部（计作 2 组，必须位于末尾）："::ffff:192.0.2.1"
//   - zone ID："fe80::1%eth0"，'%' 之后的内容视为不透明的接口名
//
// 不接受方括号、前缀长度（"/64"）及任何空白。
// 单次扫描，仅向前看一个字符识别 "::"，零分配。
func IsIPv6Address[T Text](s T) bool {
	if len(s) == 0 || len(s) > maxIPv6Len {
		return false
	}

	groups := 0
	digits := 0
	compressed := false
	prevColon := false
	groupStart := 0
	end := len(s) // 地址部分的结束位置（不含 zone）
	ipv4Tail := false

scan:
	for i := range len(s) {
		c := s[i]
		switch {
		case isHexDigit(c):
			digits++
			if digits > 4 {
				return false
			}
			prevColon = false
		case c == ':':
			if prevColon {
				// 第二个连续冒号为压缩标记；":::" 或第二处 "::" 均拒绝
				if compressed {
					return false
				}
				compressed = true
			} else if digits > 0 {
				groups++
			}
			digits = 0
			prevColon = true
			groupStart = i + 1
		case c == '.':
			tail := s[groupStart:]
			if pct := indexByte(tail, '%'); pct >= 0 {
				end = groupStart + pct
				tail = tail[:pct]
			}
			if !IsIPv4Address(tail) {
				return false
			}
			groups += 2
			ipv4Tail = true
			break scan
		case c == '%':
			end = i
			break scan
		default:
			return false
		}
	}

	if !ipv4Tail && digits > 0 {
		groups++
	}

	// '%' 位于末尾即 zone ID 为空
	if end == len(s)-1 && s[end] == '%' {
		return false
	}
	// 地址部分不能以单个冒号开头或结尾（"::" 除外）
	if end == 0 {
		return false
	}
	if s[0] == ':' && (end < 2 || s[1] != ':') {
		return false
	}
	if s[end-1] == ':' && (end < 2 || s[end-2] != ':') {
		return false
	}

	if compressed {
		return groups < ipv6Groups
	}
	return groups == ipv6Groups
}
