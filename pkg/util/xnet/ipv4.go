package xnet

// IPv4 点分十进制文本长度范围："0.0.0.0" 至 "255.255.255.255"。
const (
	minIPv4Len = 7
	maxIPv4Len = 15
)

// IsIPv4Address 报告 s 是否为严格的点分十进制 IPv4 地址（RFC 791）。
//
// 规则：
//   - 恰好 4 个八位段，以 3 个 '.' 分隔，每段 1~3 位十进制数字，取值 0~255
//   - 不允许前导零（"01.1.1.1" 拒绝，单独的 "0" 允许）
//   - 不允许空白、符号、端口、CIDR 后缀等任何其他字符
//
// 单次扫描，不回溯，零分配。
func IsIPv4Address[T Text](s T) bool {
	if len(s) < minIPv4Len || len(s) > maxIPv4Len {
		return false
	}

	dots := 0
	octet := 0
	digits := 0
	for i := range len(s) {
		c := s[i]
		switch {
		case isDigit(c):
			// 首位为 '0' 的段不能再跟数字
			if digits == 1 && octet == 0 {
				return false
			}
			digits++
			if digits > 3 {
				return false
			}
			octet = octet*10 + int(c-'0')
			if octet > 255 {
				return false
			}
		case c == '.':
			if digits == 0 {
				return false
			}
			dots++
			if dots > 3 {
				return false
			}
			octet = 0
			digits = 0
		default:
			return false
		}
	}
	return dots == 3 && digits > 0
}
