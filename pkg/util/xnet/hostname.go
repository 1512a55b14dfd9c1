package xnet

const (
	// maxHostnameLen 主机名总长度上限（RFC 1035 §2.3.4，不含结尾的根点）。
	maxHostnameLen = 253

	// maxLabelLen 单个标签长度上限（RFC 1035 §2.3.4）。
	maxLabelLen = 63
)

// IsValidHostname 报告 s 是否为合法主机名（RFC 1123 §2.1）。
//
// 规则：
//   - 总长度 1~253 字节
//   - 由 '.' 分隔的标签组成，每个标签 1~63 字节
//   - 标签只含 ASCII 字母、数字和 '-'，且不能以 '-' 开头或结尾
//   - 不允许空标签，因此不接受首尾的 '.' 及连续的 '.'
//
// 标签按原始 ASCII 字节校验，不做 IDNA 转换；全数字标签（如 "192-168-1-1"、"123"）合法。
func IsValidHostname[T Text](s T) bool {
	if len(s) == 0 || len(s) > maxHostnameLen {
		return false
	}

	labelLen := 0
	prevDot := true // 字符串开头视作标签边界
	for i := range len(s) {
		c := s[i]
		switch {
		case c == '.':
			if prevDot || labelLen == 0 {
				return false
			}
			if s[i-1] == '-' {
				return false
			}
			labelLen = 0
			prevDot = true
		case isAlphaNumeric(c) || c == '-':
			if prevDot && c == '-' {
				return false
			}
			labelLen++
			if labelLen > maxLabelLen {
				return false
			}
			prevDot = false
		default:
			return false
		}
	}
	return !prevDot && labelLen > 0 && s[len(s)-1] != '-'
}

// IsDomainName 报告 s 是否为域名：合法主机名且至少包含一个 '.'。
//
//	IsDomainName("example.com") // true
//	IsDomainName("localhost")   // false，合法主机名但不含点
func IsDomainName[T Text](s T) bool {
	return IsValidHostname(s) && indexByte(s, '.') >= 0
}
