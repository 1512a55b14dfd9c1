// Package xnet 提供网络地址文本的识别与端点解析。
//
// xnet 直接在调用方的字符串或字节切片上做单次扫描，判定文本是否属于
// RFC 定义的语法，并从 "host:port" 端点中拆出主机子串和端口号。
// 所有识别器都是纯函数：无全局状态、无锁、零堆分配，可在任意 goroutine 中并发调用。
//
// # 核心功能
//
//   - ipv4.go: [IsIPv4Address] 严格点分十进制（RFC 791），拒绝前导零
//   - ipv6.go: [IsIPv6Address] 冒号十六进制（RFC 4291/5952），支持 "::" 压缩、内嵌 IPv4、zone ID
//   - hostname.go: [IsValidHostname]（RFC 1123）、[IsDomainName]（主机名 + 至少一个点）
//   - port.go: [IsValidPort]、[ParsePort]、[IsValidPortNumber]（RFC 6335，0~65535）
//   - endpoint.go: [TryParseEndpoint]、[ParseEndpoint]，支持 "host:port" 与 "[ipv6]:port"
//   - uri.go: RFC 3986 保留/非保留字符分类
//   - kind.go: [ClassifyHost] 主机类别判定，[HostKind] 可用于配置反序列化
//
// # 快速示例
//
//	xnet.IsIPv4Address("192.168.1.1")      // true
//	xnet.IsIPv4Address("01.1.1.1")         // false，前导零
//	xnet.IsIPv6Address("fe80::1%eth0")     // true
//	xnet.IsDomainName("localhost")         // false，不含点
//
//	host, port, ok := xnet.TryParseEndpoint("[2001:db8::1]:443")
//	// host == "2001:db8::1", port == 443, ok == true
//
// 需要失败原因时使用 [ParseEndpoint]：
//
//	ep, err := xnet.ParseEndpoint("example.com:70000")
//	if errors.Is(err, xnet.ErrInvalidPort) {
//	    // 端口越界
//	}
//
// # 输入类型
//
// 识别器对 [Text]（~string | ~[]byte）泛型化。返回的子串与输入共享存储：
// 对字符串输入这与普通切片语义一致；对字节切片输入，调用方修改或复用缓冲区后
// 结果即失效，需要长期持有时请自行拷贝。
//
// # 设计决策
//
//   - 全部判定为"全有或全无"：要么属于语法，要么拒绝，没有部分合法的状态
//   - 布尔形式的识别器从不 panic，对任意长度的任意字节序列都会在线性时间内返回
//   - 数值累加带位数上限或越界即返回，不会发生整数溢出
//   - 端口允许前导零（"080" 即 80），IPv4 八位段不允许，保持与既有行为一致
//   - 未加方括号的端点按最后一个 ':' 拆分；此形式的主机不含 ':'，因此 IPv6 必须加方括号
//   - 只由数字和 '.' 组成的主机必须是合法 IPv4，"256.1.1.1:80" 不会被当作主机名接受
//
// # IPv6 细节
//
// 组计数规则：每个非空的十六进制组计 1，内嵌 IPv4 尾部计 2。
// 无 "::" 时必须恰好 8 组，有 "::" 时必须少于 8 组。额外约束：
//   - 地址部分不能以单个 ':' 开头或结尾（":1::"、"1::2:" 拒绝）
//   - zone ID 不能为空（"fe80::1%" 拒绝），其内容不做校验
//   - 含 zone ID 的总长度不超过 45 字节
//
// 识别器不接受方括号；端点中的 "[...]" 由 [TryParseEndpoint] 负责剥离。
//
// # 非目标
//
// 不做 DNS 解析或任何网络 I/O；不解析 CIDR 或完整 URI；
// 主机名按原始 ASCII 校验，不做 IDNA 转换。
//
// # 错误处理
//
// 布尔形式以 false 表示拒绝。[ParseEndpoint] 返回的错误包装预定义错误变量，
// 支持 errors.Is 判断：[ErrInvalidEndpoint]、[ErrInvalidHost]、[ErrInvalidPort]。
package xnet
