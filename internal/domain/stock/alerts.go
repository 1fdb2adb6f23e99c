// internal/domain/stock/alerts.go
package stock

// CalculateAlerts derives the low-stock alert list from the coffee catalog.
// One alert per coffee whose roast quantities sum to strictly less than
// LowStockThreshold; a coffee sitting exactly at the threshold does not
// alert. Output order follows catalog order.
func CalculateAlerts(coffees []Coffee) []StockAlert {
	alerts := []StockAlert{}

	for _, coffee := range coffees {
		total := coffee.TotalQuantity()
		if total < LowStockThreshold {
			alerts = append(alerts, StockAlert{
				CoffeeID:        coffee.ID,
				CoffeeName:      coffee.Name,
				CurrentQuantity: total,
				Threshold:       LowStockThreshold,
			})
		}
	}

	return alerts
}
