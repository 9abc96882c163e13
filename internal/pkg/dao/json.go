package dao

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONColumn 以 JSON 文本存储的列，Valid 为 false 的时候写入 NULL
type JSONColumn[T any] struct {
	Val   T
	Valid bool
}

func NewJSONColumn[T any](val T) JSONColumn[T] {
	return JSONColumn[T]{Val: val, Valid: true}
}

// Value 实现 driver.Valuer 接口
func (j JSONColumn[T]) Value() (driver.Value, error) {
	if !j.Valid {
		return nil, nil
	}
	data, err := json.Marshal(j.Val)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan 实现 sql.Scanner 接口
func (j *JSONColumn[T]) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		var zero T
		j.Val, j.Valid = zero, false
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("JSONColumn 不支持的类型 %T", src)
	}
	if err := json.Unmarshal(data, &j.Val); err != nil {
		return err
	}
	j.Valid = true
	return nil
}
