// Package addrcheck 将 xnet 的识别器组织为按类别的校验与逐行批量扫描，
// 供 xaddrctl 与其配置层共用。
//
// 类别：ipv4、ipv6、ip、hostname、domain、host、port、endpoint。
// 扫描直接把 bufio.Scanner 的行缓冲以 []byte 交给 xnet，不为合法行分配内存。
package addrcheck
