package dataset

// Ministry of Culture scheme expenditure, crore rupees per fiscal year.
func culturalFunding() []FundingRow {
	return []FundingRow{
		{"Archaeological Survey of India", 974.56, 843.2, 1085.7, 1200.3},
		{"Museums", 362.8, 310.5, 395.4, 425.2},
		{"Archives and Records", 102.3, 85.6, 112.5, 125.6},
		{"Anthropological Survey", 51.4, 47.8, 55.9, 62.4},
		{"National Library", 82.7, 75.4, 88.1, 94.3},
		{"Public Libraries", 138.6, 120.3, 150.7, 165.8},
		{"IGNCA", 110.5, 95.6, 124.8, 135.2},
		{"Akademies", 155.8, 140.2, 172.3, 184.5},
		{"Centenaries & Anniversaries", 91.2, 82.5, 97.5, 102.6},
		{"Financial Assistance to Cultural Organizations", 285.7, 240.8, 310.8, 345.9},
	}
}

func handicraftExports() []ExportRow {
	rows := []ExportRow{
		{Year: 2017, HandmadeCarpets: 9000, ArtMetalwares: 6700, EmbroideredTextile: 5500, ShawlsArtifacts: 2200, Woodwares: 3800, ZariProducts: 1900, ImitationJewelry: 3200, Miscellaneous: 4700},
		{Year: 2018, HandmadeCarpets: 9300, ArtMetalwares: 7100, EmbroideredTextile: 5800, ShawlsArtifacts: 2400, Woodwares: 4000, ZariProducts: 2000, ImitationJewelry: 3400, Miscellaneous: 4900},
		{Year: 2019, HandmadeCarpets: 9700, ArtMetalwares: 7400, EmbroideredTextile: 6200, ShawlsArtifacts: 2600, Woodwares: 4200, ZariProducts: 2100, ImitationJewelry: 3600, Miscellaneous: 5200},
		{Year: 2020, HandmadeCarpets: 6800, ArtMetalwares: 5200, EmbroideredTextile: 4300, ShawlsArtifacts: 1800, Woodwares: 2900, ZariProducts: 1500, ImitationJewelry: 2500, Miscellaneous: 3600},
		{Year: 2021, HandmadeCarpets: 8200, ArtMetalwares: 6100, EmbroideredTextile: 5400, ShawlsArtifacts: 2200, Woodwares: 3600, ZariProducts: 1800, ImitationJewelry: 3000, Miscellaneous: 4400},
		{Year: 2022, HandmadeCarpets: 11500, ArtMetalwares: 8700, EmbroideredTextile: 7800, ShawlsArtifacts: 3200, Woodwares: 5100, ZariProducts: 2600, ImitationJewelry: 4300, Miscellaneous: 6300},
		{Year: 2023, HandmadeCarpets: 12800, ArtMetalwares: 9500, EmbroideredTextile: 8600, ShawlsArtifacts: 3600, Woodwares: 5700, ZariProducts: 2900, ImitationJewelry: 4800, Miscellaneous: 7000},
	}
	for i := range rows {
		r := &rows[i]
		r.Total = r.HandmadeCarpets + r.ArtMetalwares + r.EmbroideredTextile +
			r.ShawlsArtifacts + r.Woodwares + r.ZariProducts + r.ImitationJewelry + r.Miscellaneous
	}
	return rows
}
