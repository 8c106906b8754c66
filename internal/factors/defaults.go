package factors

// Default returns the built-in emission factor table, based on EPA and
// DEFRA published data. It is used when no factor file exists on disk.
func Default() Table {
	return Table{
		Transportation: Nested{
			"car": {
				"petrol":   0.404, // kg CO2 per km
				"diesel":   0.448,
				"hybrid":   0.253,
				"electric": 0.089,
			},
			"motorcycle": {
				"petrol": 0.103,
			},
			"public_transport": {
				"bus":    0.089, // kg CO2 per km per passenger
				"train":  0.041,
				"subway": 0.038,
				"tram":   0.029,
			},
			"flight": {
				"domestic_short": 0.255, // kg CO2 per km
				"domestic_long":  0.195,
				"international":  0.150,
			},
			"other": {
				"walking": 0.0,
				"cycling": 0.0,
				"scooter": 0.02,
			},
		},
		Energy: Nested{
			"electricity": {
				"grid_average": 0.457, // kg CO2 per kWh
				"renewable":    0.024,
				"coal":         0.820,
				"natural_gas":  0.350,
			},
			"heating": {
				"natural_gas": 0.185,
				"heating_oil": 0.245,
				"propane":     0.214,
				"electric":    0.457,
			},
			"cooling": {
				"electric": 0.457,
			},
		},
		Food: Nested{
			"meat": {
				"beef":    27.0, // kg CO2 per kg food
				"lamb":    24.5,
				"pork":    7.6,
				"chicken": 9.9,
				"turkey":  12.1,
			},
			"dairy": {
				"milk":   3.2, // kg CO2 per liter
				"cheese": 13.5,
				"yogurt": 2.2,
				"butter": 23.8,
			},
			"seafood": {
				"fish_farmed": 13.6,
				"fish_wild":   5.4,
				"shellfish":   11.3,
			},
			"plant_based": {
				"vegetables": 2.0,
				"fruits":     1.1,
				"grains":     2.5,
				"legumes":    0.9,
				"nuts":       2.3,
			},
			"processed": {
				"bread":  0.9,
				"pasta":  1.4,
				"rice":   2.7,
				"coffee": 28.5, // kg CO2 per kg beans
				"tea":    6.3,
			},
		},
		Consumption: Nested{
			"clothing": {
				"cotton_shirt":      8.0, // kg CO2 per item
				"jeans":             33.4,
				"shoes":             12.5,
				"synthetic_garment": 5.5,
			},
			"electronics": {
				"smartphone": 70.0,
				"laptop":     300.0,
				"tablet":     130.0,
				"tv":         500.0,
			},
			"household": {
				"furniture_item":  150.0,
				"appliance_small": 45.0,
				"appliance_large": 200.0,
			},
		},
		Waste: Flat{
			"landfill":     0.57, // kg CO2 per kg waste
			"recycling":    0.21,
			"composting":   0.05,
			"incineration": 0.35,
		},
	}
}
