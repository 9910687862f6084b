package models

import (
	"github.com/shopspring/decimal"
)

var centsPerUnit = decimal.NewFromInt(100)

// CentsToDecimal 将整数分转换为以元为单位的 decimal
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(centsPerUnit)
}

// FormatCents 将整数分格式化为 2 位小数的金额字符串（如 4550 -> "45.50"）
func FormatCents(cents int64) string {
	return CentsToDecimal(cents).StringFixed(2)
}

// FormatCentsDecimal 将以分为单位的 decimal 格式化为 2 位小数的金额字符串。
// 精度只在格式化这一步收敛，之前的税额计算保留完整小数。
func FormatCentsDecimal(cents decimal.Decimal) string {
	return cents.Div(centsPerUnit).StringFixed(2)
}
