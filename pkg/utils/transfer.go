package utils

import (
	"errors"
	"strconv"
)

// Transfer JWT载荷中的用户ID可能是int64/float64/string 统一转换为int64
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if intValue, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intValue
		}
	}
	return -1
}

// ParseId 路径参数中的实体ID 必须是正整数
func ParseId(v string) (int64, error) {
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return -1, errors.New("invalid id")
	}
	return id, nil
}
