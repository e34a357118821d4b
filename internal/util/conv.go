package util

import (
	"strconv"
)

// MustParseUint 解析路径参数里的数字ID。
// 非法输入按 0 处理，交给后续查询返回未找到。
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}
