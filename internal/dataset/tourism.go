package dataset

// Foreign tourist visits by state, 2022, with national share.
// Source: India Tourism Statistics, Ministry of Tourism.
func foreignTourism() []ForeignTourismRow {
	return []ForeignTourismRow{
		{"Tamil Nadu", 436362, 18.25},
		{"Maharashtra", 360403, 15.07},
		{"Uttar Pradesh", 227277, 9.51},
		{"Delhi", 203694, 8.52},
		{"Rajasthan", 188245, 7.87},
		{"West Bengal", 156382, 6.54},
		{"Punjab", 117588, 4.92},
		{"Kerala", 103104, 4.31},
		{"Bihar", 93065, 3.89},
		{"Karnataka", 84031, 3.52},
		{"Goa", 59300, 2.48},
		{"Haryana", 41230, 1.72},
		{"Gujarat", 35914, 1.5},
		{"Uttarakhand", 28772, 1.2},
		{"Madhya Pradesh", 27291, 1.14},
		{"Himachal Pradesh", 21391, 0.89},
		{"Assam", 16964, 0.71},
		{"Odisha", 16785, 0.7},
		{"Telangana", 12045, 0.5},
		{"Andhra Pradesh", 5847, 0.24},
	}
}

// Domestic tourist visits by state, 2022, in millions.
func domesticTourism() []DomesticTourismRow {
	return []DomesticTourismRow{
		{"Uttar Pradesh", 318.58, 20.77},
		{"Tamil Nadu", 240.43, 15.67},
		{"Karnataka", 135.34, 8.82},
		{"Andhra Pradesh", 121.95, 7.95},
		{"Telangana", 113.33, 7.39},
		{"Maharashtra", 103.56, 6.75},
		{"Uttarakhand", 70.35, 4.59},
		{"Gujarat", 55.42, 3.61},
		{"Rajasthan", 54.56, 3.56},
		{"Madhya Pradesh", 51.93, 3.38},
		{"West Bengal", 38.48, 2.51},
		{"Kerala", 38.06, 2.48},
		{"Bihar", 37.24, 2.43},
		{"Himachal Pradesh", 15.23, 0.99},
		{"Odisha", 12.56, 0.82},
		{"Punjab", 11.35, 0.74},
		{"Jharkhand", 8.50, 0.55},
		{"Goa", 6.99, 0.46},
		{"Haryana", 6.65, 0.43},
		{"Delhi", 5.32, 0.35},
	}
}

// Centrally protected monuments per state (ASI).
func monuments() []MonumentRow {
	return []MonumentRow{
		{"Uttar Pradesh", 743},
		{"Karnataka", 506},
		{"Tamil Nadu", 413},
		{"Maharashtra", 285},
		{"Madhya Pradesh", 292},
		{"Delhi", 174},
		{"Gujarat", 202},
		{"Rajasthan", 163},
		{"Bihar", 70},
		{"Andhra Pradesh", 134},
		{"Punjab", 36},
		{"Haryana", 91},
		{"West Bengal", 134},
		{"Odisha", 80},
		{"Telangana", 27},
		{"Kerala", 29},
		{"Assam", 55},
		{"Jammu & Kashmir", 59},
		{"Uttarakhand", 41},
		{"Himachal Pradesh", 43},
	}
}

// Monthly tourism intensity per broad region, already melted to one row per
// month/region pair.
func seasonalIndex() []SeasonalIndexRow {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	regions := map[string][]int{
		"North India": {65, 75, 85, 70, 55, 40, 55, 60, 75, 90, 95, 85},
		"South India": {80, 85, 75, 60, 50, 65, 75, 80, 85, 90, 95, 90},
		"East India":  {70, 80, 85, 70, 50, 40, 30, 25, 45, 75, 90, 80},
		"West India":  {75, 80, 70, 65, 60, 50, 45, 50, 60, 85, 90, 85},
	}

	out := make([]SeasonalIndexRow, 0, len(months)*len(regions))
	for _, region := range []string{"North India", "South India", "East India", "West India"} {
		vals := regions[region]
		for i, m := range months {
			out = append(out, SeasonalIndexRow{Month: m, Region: region, Index: vals[i]})
		}
	}
	return out
}

func responsibleTourism() []ResponsibleTourismRow {
	return []ResponsibleTourismRow{
		{"Kerala", 92, 95, 90, 88, 91.25},
		{"Rajasthan", 85, 82, 78, 95, 85},
		{"Himachal Pradesh", 90, 84, 85, 82, 85.25},
		{"Uttarakhand", 88, 87, 86, 84, 86.25},
		{"Karnataka", 82, 80, 81, 86, 82.25},
		{"Madhya Pradesh", 78, 85, 82, 89, 83.5},
		{"Sikkim", 94, 90, 92, 85, 90.25},
		{"Goa", 76, 75, 70, 78, 74.75},
		{"Tamil Nadu", 80, 84, 79, 90, 83.25},
		{"Gujarat", 79, 78, 80, 85, 80.5},
	}
}
