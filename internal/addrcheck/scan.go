package addrcheck

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// maxLineLen 行缓冲大小。更长的行计为一条被拒绝的输入，扫描继续。
const maxLineLen = 64 * 1024

// longLinePrefix 超长行在 Rejection.Input 中保留的前缀长度
const longLinePrefix = 64

// Rejection 一条未通过校验的输入
type Rejection struct {
	Line  int
	Input string
}

// Summary 扫描统计。空行与 # 开头的注释行不计入 Total。
type Summary struct {
	Total    int
	Valid    int
	Rejected int
}

// Add 合并另一份统计
func (s *Summary) Add(o Summary) {
	s.Total += o.Total
	s.Valid += o.Valid
	s.Rejected += o.Rejected
}

// Scan 逐行读取 r 并按 kind 校验，每条被拒绝的行回调 onReject。
//
// 行首尾空白会被去除；每行之前检查 ctx 取消。
// 不短于 maxLineLen 的行直接拒绝，Input 只保留前 longLinePrefix 字节并以 "..." 结尾。
// onReject 返回错误时扫描中止并返回该错误。
func Scan(ctx context.Context, r io.Reader, kind Kind, onReject func(Rejection) error) (Summary, error) {
	var sum Summary
	br := bufio.NewReaderSize(r, maxLineLen)

	reject := func(rej Rejection) error {
		sum.Rejected++
		if onReject == nil {
			return nil
		}
		return onReject(rej)
	}

	for line := 1; ; line++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		raw, err := br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			input := string(raw[:longLinePrefix]) + "..."
			for errors.Is(err, bufio.ErrBufferFull) {
				_, err = br.ReadSlice('\n')
			}
			if err != nil && !errors.Is(err, io.EOF) {
				return sum, fmt.Errorf("addrcheck: read line %d: %w", line, err)
			}
			sum.Total++
			if rerr := reject(Rejection{Line: line, Input: input}); rerr != nil {
				return sum, rerr
			}
			if err != nil {
				return sum, nil
			}
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return sum, fmt.Errorf("addrcheck: read line %d: %w", line, err)
		}
		eof := err != nil
		if eof && len(raw) == 0 {
			return sum, nil
		}

		text := bytes.TrimSpace(raw)
		if len(text) > 0 && text[0] != '#' {
			sum.Total++
			if Check(kind, text) {
				sum.Valid++
			} else if rerr := reject(Rejection{Line: line, Input: string(text)}); rerr != nil {
				return sum, rerr
			}
		}
		if eof {
			return sum, nil
		}
	}
}
