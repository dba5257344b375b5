package dataset

// One notable heritage site per state or union territory.
func heritageSites() []HeritageSite {
	return []HeritageSite{
		{"Cellular Jail", "Andaman and Nicobar Islands", 2004, 100000, "Historical", 11.6744, 92.7384},
		{"Tirupati Temple", "Andhra Pradesh", 1987, 5000000, "Religious", 13.6833, 79.3470},
		{"Tawang Monastery", "Arunachal Pradesh", 2009, 150000, "Religious", 27.5860, 91.8592},
		{"Kamakhya Temple", "Assam", 1985, 2000000, "Religious", 26.1664, 91.7054},
		{"Mahabodhi Temple", "Bihar", 2002, 1000000, "Religious", 24.6959, 84.9913},
		{"Rock Garden", "Chandigarh", 2011, 300000, "Cultural", 30.7524, 76.8053},
		{"Chitrakoot Falls", "Chhattisgarh", 2010, 200000, "Natural", 19.2049, 81.7107},
		{"Diu Fort", "Dadra and Nagar Haveli and Daman and Diu", 2006, 150000, "Historical", 20.7151, 70.9962},
		{"Qutub Minar", "Delhi", 1993, 3000000, "Cultural", 28.6562, 77.1855},
		{"Basilica of Bom Jesus", "Goa", 1987, 500000, "Religious", 15.5009, 73.9116},
		{"Somnath Temple", "Gujarat", 1983, 600000, "Religious", 20.8880, 70.4011},
		{"Kurukshetra", "Haryana", 2008, 400000, "Historical", 29.9695, 76.8783},
		{"Kullu Valley", "Himachal Pradesh", 2010, 250000, "Natural", 31.9579, 77.1095},
		{"Vaishno Devi Temple", "Jammu and Kashmir", 1985, 2000000, "Religious", 33.0299, 74.9481},
		{"Betla National Park", "Jharkhand", 2009, 150000, "Natural", 23.9240, 84.2270},
		{"Hampi", "Karnataka", 1986, 550000, "Cultural", 15.3419, 76.4746},
		{"Periyar National Park", "Kerala", 2012, 800000, "Natural", 9.5824, 77.1780},
		{"Leh Palace", "Ladakh", 2009, 100000, "Historical", 34.1650, 77.5848},
		{"Agatti Island", "Lakshadweep", 2014, 50000, "Natural", 10.8571, 72.1964},
		{"Khajuraho Temples", "Madhya Pradesh", 1986, 600000, "Cultural", 24.8318, 79.9214},
		{"Ajanta Caves", "Maharashtra", 1983, 400000, "Cultural", 20.5519, 75.7033},
		{"Loktak Lake", "Manipur", 2010, 100000, "Natural", 24.5599, 93.9240},
		{"Living Root Bridges", "Meghalaya", 2014, 200000, "Cultural", 25.2478, 91.6807},
		{"Vantawng Falls", "Mizoram", 2010, 50000, "Natural", 23.2535, 92.7638},
		{"Kohima War Cemetery", "Nagaland", 2009, 100000, "Historical", 25.6651, 94.1003},
		{"Konark Sun Temple", "Odisha", 1987, 400000, "Cultural", 19.8874, 86.0945},
		{"Auroville", "Puducherry", 2006, 300000, "Cultural", 12.0054, 79.8106},
		{"Golden Temple", "Punjab", 1983, 2500000, "Religious", 31.6200, 74.8765},
		{"Amber Fort", "Rajasthan", 1986, 700000, "Historical", 26.9855, 75.8513},
		{"Rumtek Monastery", "Sikkim", 2009, 100000, "Religious", 27.2980, 88.5903},
		{"Meenakshi Temple", "Tamil Nadu", 1984, 450000, "Religious", 9.9195, 78.1193},
		{"Charminar", "Telangana", 2008, 600000, "Historical", 17.3616, 78.4747},
		{"Ujjayanta Palace", "Tripura", 2010, 150000, "Historical", 23.8361, 91.2794},
		{"Taj Mahal", "Uttar Pradesh", 1983, 7000000, "Cultural", 27.1751, 78.0421},
		{"Valley of Flowers", "Uttarakhand", 2005, 200000, "Natural", 30.7280, 79.6050},
		{"Victoria Memorial", "West Bengal", 2007, 2000000, "Cultural", 22.5448, 88.3426},
	}
}
