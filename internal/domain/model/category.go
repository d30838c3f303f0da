package model

import (
	"strings"
	"time"
)

// カテゴリー
// 名前は大文字小文字を区別せずユニーク。
type Category struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

// カテゴリー名の比較キー（trim + 小文字）
func CategoryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// 同じカテゴリー名かどうか
func SameCategory(a, b string) bool {
	return CategoryKey(a) == CategoryKey(b)
}
