package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 販売アイテム（スイーツ）
// categoryはカテゴリーIDではなく名前の文字列で持つ。
type Item struct {
	ID        string          `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Category  string          `gorm:"type:varchar(255);not null;index" json:"category"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Quantity  decimal.Decimal `gorm:"type:numeric(14,3);not null" json:"quantity"`
	Unit      Unit            `gorm:"type:varchar(10);not null;default:'piece'" json:"unit"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// price / quantity カラムの桁（numeric(12,2) / numeric(14,3)）に合わせた上限
const (
	PriceScale    int32 = 2
	QuantityScale int32 = 3
)

var (
	// 未満であること
	PriceLimit    = decimal.New(1, 12-PriceScale)
	QuantityLimit = decimal.New(1, 14-QuantityScale)
)

// 小数点以下がscale桁以内か
func FitsScale(d decimal.Decimal, scale int32) bool {
	return d.Truncate(scale).Equal(d)
}

func (Item) TableName() string {
	return "items"
}
