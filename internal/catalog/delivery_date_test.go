package catalog

import (
	"testing"
	"time"

	"github.com/checkout-next/internal/models"
)

// 2026-06-01 是周一
func fixedMonday() time.Time {
	return time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
}

func TestCalculateDeliveryDateSkipsWeekend(t *testing.T) {
	calc := NewDateCalculatorAt(true, fixedMonday)

	// 周一 + 7 个工作日 = 下周三（6 月 10 日）
	got := calc.CalculateDeliveryDate(&models.DeliveryOption{ID: "1", DeliveryDays: 7})
	if got != "Wednesday, June 10" {
		t.Fatalf("unexpected delivery date: %s", got)
	}

	// 周一 + 1 个工作日 = 周二
	got = calc.CalculateDeliveryDate(&models.DeliveryOption{ID: "3", DeliveryDays: 1})
	if got != "Tuesday, June 2" {
		t.Fatalf("unexpected delivery date: %s", got)
	}
}

func TestCalculateDeliveryDateWithoutWeekendSkip(t *testing.T) {
	calc := NewDateCalculatorAt(false, fixedMonday)

	got := calc.CalculateDeliveryDate(&models.DeliveryOption{ID: "2", DeliveryDays: 3})
	if got != "Thursday, June 4" {
		t.Fatalf("unexpected delivery date: %s", got)
	}
}

func TestCalculateDeliveryDateNilOption(t *testing.T) {
	calc := NewDateCalculatorAt(true, fixedMonday)
	if got := calc.CalculateDeliveryDate(nil); got != "" {
		t.Fatalf("expected empty date for nil option, got %q", got)
	}
}
