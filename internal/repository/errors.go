package repository

import "errors"

var (
	// 対象が存在しない
	ErrNotFound = errors.New("not found")
	// ユニーク制約違反（名前の重複）
	ErrDuplicate = errors.New("duplicate")
	// 数値がカラムの桁に収まらない
	ErrOutOfRange = errors.New("out of range")
)
