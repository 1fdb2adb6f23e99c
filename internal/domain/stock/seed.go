// internal/domain/stock/seed.go
package stock

import "time"

// SeedState returns the built-in starting catalog, written to storage once
// on first run. The movement ledger starts empty; seed quantities stand in
// for stock on hand before the ledger existed.
func SeedState(now time.Time) AppState {
	coffees := []Coffee{
		{
			ID:     "1",
			Name:   "JOSANE",
			Roasts: []Roast{{ID: "1", Date: "19/01/26", PR: "9140", Quantity: 1500}},
		},
		{
			ID:     "2",
			Name:   "RAYRA",
			Roasts: []Roast{{ID: "2", Date: "19/01/26", PR: "9146", Quantity: 197}},
		},
		{
			ID:     "3",
			Name:   "MANGABEIRA",
			Roasts: []Roast{{ID: "3", Date: "26/01/26", PR: "9193", Quantity: 1750}},
		},
		{
			ID:     "4",
			Name:   "GESHA SIDNEY",
			Roasts: []Roast{{ID: "4", Date: "26/01/26", PR: "9188", Quantity: 2672}},
		},
		{
			ID:     "5",
			Name:   "PACAMARA",
			Roasts: []Roast{{ID: "5", Date: "26/01/26", PR: "9187", Quantity: 1700}},
		},
		{
			ID:   "6",
			Name: "SAMUEL",
			Roasts: []Roast{
				{ID: "6", Date: "19/01/26", PR: "9141", Quantity: 370},
				{ID: "7", Date: "19/01/26", PR: "9147", Quantity: 1000},
				{ID: "8", Date: "26/01/26", PR: "9194", Quantity: 2300},
			},
		},
		{
			ID:     "7",
			Name:   "GABRIEL",
			Roasts: []Roast{{ID: "9", Date: "22/01/26", PR: "9166", Quantity: 540}},
		},
		{
			ID:     "8",
			Name:   "RENATO",
			Roasts: []Roast{{ID: "10", Date: "22/01/26", PR: "9167", Quantity: 1900}},
		},
		{
			ID:     "9",
			Name:   "ROMILDO",
			Roasts: []Roast{{ID: "11", Date: "26/01/26", PR: "9190", Quantity: 967}},
		},
		{
			ID:     "10",
			Name:   "SIVANIUS",
			Roasts: []Roast{{ID: "12", Date: "19/01/26", PR: "9171", Quantity: 2540}},
		},
		{
			ID:     "11",
			Name:   "VAVÁ",
			Roasts: []Roast{{ID: "13", Date: "22/01/26", PR: "9170", Quantity: 1280}},
		},
		{
			ID:   "12",
			Name: "MOKINHA",
			Roasts: []Roast{
				{ID: "14", Date: "26/01/26", PR: "9201", Quantity: 5200},
				{ID: "15", Date: "26/01/26", PR: "9198", Quantity: 3700},
			},
		},
		{
			ID:           "13",
			Name:         "BLEND DA CASA",
			Roasts:       []Roast{},
			Observations: "Sem estoque no momento",
		},
	}

	return AppState{
		Coffees:       coffees,
		Movements:     []Movement{},
		Alerts:        CalculateAlerts(coffees),
		LastUpdate:    now,
		LastUpdatedBy: "Sistema",
		Theme:         ThemeLight,
	}
}
