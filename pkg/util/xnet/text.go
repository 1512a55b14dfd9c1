package xnet

// Text 约束识别器的输入类型：字符串或字节切片。
//
// 识别器只做索引和切片，不做拷贝；返回的子串（如 [TryParseEndpoint] 的 host）
// 与输入共享底层存储。对 []byte 输入，调用方修改或复用缓冲区后结果即失效。
type Text interface {
	~string | ~[]byte
}

// Integer 约束 [IsValidPortNumber] 的整数类型，覆盖全部有符号/无符号宽度。
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isAlphaNumeric(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// indexByte 返回 c 在 s 中首次出现的位置，不存在返回 -1。
func indexByte[T Text](s T, c byte) int {
	for i := range len(s) {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// lastIndexByte 返回 c 在 s 中最后一次出现的位置，不存在返回 -1。
func lastIndexByte[T Text](s T, c byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c {
			return i
		}
	}
	return -1
}
