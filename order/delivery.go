package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/storefront/locale"
)

// Delivery is a shipping method.
type Delivery string

const (
	Standard Delivery = "standard"
	Express  Delivery = "express"
	Pickup   Delivery = "pickup"
)

// DeliveryOption describes the fee and lead time of a method.
type DeliveryOption struct {
	Fee          decimal.Decimal
	Method       Delivery
	Label        locale.Key
	Time         locale.Key
	BusinessDays int
}

var deliveryOptions = []DeliveryOption{
	{Method: Standard, Fee: decimal.RequireFromString("4.90"), BusinessDays: 3, Label: locale.KeyDeliveryStandard, Time: locale.KeyDeliveryTimeStandard},
	{Method: Express, Fee: decimal.RequireFromString("8.90"), BusinessDays: 1, Label: locale.KeyDeliveryExpress, Time: locale.KeyDeliveryTimeExpress},
	{Method: Pickup, Fee: decimal.RequireFromString("2.90"), BusinessDays: 2, Label: locale.KeyDeliveryPickup, Time: locale.KeyDeliveryTimePickup},
}

// DeliveryOptions lists the methods in display order.
func DeliveryOptions() []DeliveryOption {
	out := make([]DeliveryOption, len(deliveryOptions))
	copy(out, deliveryOptions)
	return out
}

// ParseDelivery maps unknown values to Standard.
func ParseDelivery(s string) Delivery {
	switch d := Delivery(s); d {
	case Standard, Express, Pickup:
		return d
	default:
		return Standard
	}
}

// Option returns the option of d, Standard for unknown methods.
func (d Delivery) Option() DeliveryOption {
	for _, o := range deliveryOptions {
		if o.Method == d {
			return o
		}
	}
	return deliveryOptions[0]
}

// Fee is the shipping price of d.
func (d Delivery) Fee() decimal.Decimal { return d.Option().Fee }

// EstimateDelivery adds the business days of method to from, skipping
// Saturdays and Sundays. The time of day is kept.
func EstimateDelivery(method Delivery, from time.Time) time.Time {
	return AddBusinessDays(from, method.Option().BusinessDays)
}

// AddBusinessDays moves forward n weekdays from t.
func AddBusinessDays(t time.Time, n int) time.Time {
	for added := 0; added < n; {
		t = t.AddDate(0, 0, 1)
		if wd := t.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return t
}
