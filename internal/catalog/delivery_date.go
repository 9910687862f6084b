package catalog

import (
	"time"

	"github.com/checkout-next/internal/models"
)

// deliveryDateLayout 配送日期展示格式（如 "Monday, June 1"）
const deliveryDateLayout = "Monday, January 2"

// DateCalculator 配送日期计算器
type DateCalculator struct {
	skipWeekend bool
	now         func() time.Time
}

// NewDateCalculator 创建配送日期计算器
func NewDateCalculator(skipWeekend bool) *DateCalculator {
	return &DateCalculator{
		skipWeekend: skipWeekend,
		now:         time.Now,
	}
}

// NewDateCalculatorAt 创建使用固定时钟的计算器（测试用）
func NewDateCalculatorAt(skipWeekend bool, now func() time.Time) *DateCalculator {
	return &DateCalculator{
		skipWeekend: skipWeekend,
		now:         now,
	}
}

// CalculateDeliveryDate 从当前时间起累计配送天数，周末不消耗配送天数
func (c *DateCalculator) CalculateDeliveryDate(option *models.DeliveryOption) string {
	if option == nil {
		return ""
	}
	date := c.now()
	remaining := option.DeliveryDays
	for remaining > 0 {
		date = date.AddDate(0, 0, 1)
		if c.skipWeekend && isWeekend(date) {
			continue
		}
		remaining--
	}
	return date.Format(deliveryDateLayout)
}

func isWeekend(t time.Time) bool {
	weekday := t.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}
