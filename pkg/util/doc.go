// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xnet: 网络地址文本识别，IPv4/IPv6、主机名、域名、端口与 host:port 端点，零分配
package util
