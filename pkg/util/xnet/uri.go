package xnet

// IsURIReserved 报告 c 是否为 RFC 3986 §2.2 的保留字符：
//
//	gen-delims: : / ? # [ ] @
//	sub-delims: ! $ & ' ( ) * + , ; =
func IsURIReserved(c byte) bool {
	switch c {
	case ':', '/', '?', '#', '[', ']', '@',
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	default:
		return false
	}
}

// IsURIUnreserved 报告 c 是否为 RFC 3986 §2.3 的非保留字符：ALPHA / DIGIT / "-" / "." / "_" / "~"。
func IsURIUnreserved(c byte) bool {
	return isAlphaNumeric(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// IsURIReservedText 报告 s 是否非空且每个字节都是保留字符。
func IsURIReservedText[T Text](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := range len(s) {
		if !IsURIReserved(s[i]) {
			return false
		}
	}
	return true
}

// IsURIUnreservedText 报告 s 是否非空且每个字节都是非保留字符。
func IsURIUnreservedText[T Text](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := range len(s) {
		if !IsURIUnreserved(s[i]) {
			return false
		}
	}
	return true
}
