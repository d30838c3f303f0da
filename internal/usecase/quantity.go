package usecase

import (
	"sweetshop/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 在庫数そのもののチェック（>= 0、桁、pieceなら整数）
func validateStock(qty decimal.Decimal, unit model.Unit) error {
	if qty.IsNegative() {
		return errValidation("quantity must be non-negative")
	}
	return validateGranularity(qty, unit)
}

// 数量の刻みと上限（pieceなら整数のみ、それ以外は小数3桁まで）
func validateGranularity(qty decimal.Decimal, unit model.Unit) error {
	if unit.RequiresWholeQuantity() && !qty.IsInteger() {
		return errValidation("quantity must be a whole number for unit piece")
	}
	if !model.FitsScale(qty, model.QuantityScale) {
		return errValidation("quantity must have at most 3 decimal places")
	}
	if qty.Abs().GreaterThanOrEqual(model.QuantityLimit) {
		return errValidation("quantity is too large")
	}
	return nil
}

// 価格（>= 0、小数2桁まで、上限あり）
func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errValidation("price must be non-negative")
	}
	if !model.FitsScale(price, model.PriceScale) {
		return errValidation("price must have at most 2 decimal places")
	}
	if price.GreaterThanOrEqual(model.PriceLimit) {
		return errValidation("price is too large")
	}
	return nil
}
