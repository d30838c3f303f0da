package model

import "strings"

// 数量の単位
type Unit string

const (
	UnitPiece Unit = "piece"
	UnitKg    Unit = "kg"
	UnitG     Unit = "g"
	UnitLtr   Unit = "ltr"
	UnitMl    Unit = "ml"
)

// 受け付ける単位の一覧
var Units = []Unit{UnitPiece, UnitKg, UnitG, UnitLtr, UnitMl}

// ParseUnit は入力文字列を単位に変換する。空ならpiece。
func ParseUnit(s string) (Unit, bool) {
	v := Unit(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return UnitPiece, true
	}
	if !v.Valid() {
		return "", false
	}
	return v, true
}

func (u Unit) Valid() bool {
	for _, x := range Units {
		if u == x {
			return true
		}
	}
	return false
}

// pieceだけは整数数量しか許さない
func (u Unit) RequiresWholeQuantity() bool {
	return u == UnitPiece || u == ""
}

// 単位が入っていない古いデータはpiece扱い
func (u Unit) OrDefault() Unit {
	if u == "" {
		return UnitPiece
	}
	return u
}
