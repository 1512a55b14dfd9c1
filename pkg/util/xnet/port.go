package xnet

const (
	// MaxPort 端口号上限（RFC 6335）。
	MaxPort = 65535

	// maxPortLen 端口十进制文本的最大长度（"65535"）。
	maxPortLen = 5
)

// IsValidPort 报告 s 是否为 0~65535 范围内的十进制端口号。
//
// 只接受 ASCII 数字：不接受符号、空白、小数点。
// 允许前导零（"080" 视为 80），这一点与 IPv4 八位段不同。
func IsValidPort[T Text](s T) bool {
	_, ok := ParsePort(s)
	return ok
}

// ParsePort 按 [IsValidPort] 的规则解析端口号。
// 累加过程中一旦超过 [MaxPort] 立即返回，避免溢出。
func ParsePort[T Text](s T) (uint16, bool) {
	if len(s) == 0 || len(s) > maxPortLen {
		return 0, false
	}
	v := 0
	for i := range len(s) {
		c := s[i]
		if !isDigit(c) {
			return 0, false
		}
		v = v*10 + int(c-'0')
		if v > MaxPort {
			return 0, false
		}
	}
	return uint16(v), true
}

// IsValidPortNumber 报告整数 v 是否位于 [0, 65535]。
// 对任意宽度的有符号/无符号整数都不会发生溢出或截断。
func IsValidPortNumber[I Integer](v I) bool {
	if v < 0 {
		return false
	}
	return uint64(v) <= MaxPort
}
