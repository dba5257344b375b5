package dataset

// Crafts carry no coordinates of their own; the explorer places them via the
// state lookup table.
func crafts() []Craft {
	return []Craft{
		{"Pashmina", "Jammu & Kashmir", 12500, 185},
		{"Chikankari", "Uttar Pradesh", 35000, 240},
		{"Blue Pottery", "Rajasthan", 7800, 95},
		{"Brass Work", "Uttar Pradesh", 15600, 120},
		{"Bidriware", "Karnataka", 5200, 78},
		{"Kanjivaram Silk", "Tamil Nadu", 18900, 350},
		{"Bandhani", "Gujarat", 28700, 210},
		{"Phulkari", "Punjab", 9500, 65},
		{"Terracotta", "West Bengal", 22000, 130},
		{"Dokra", "Chhattisgarh", 6300, 45},
		{"Chanderi", "Madhya Pradesh", 8700, 110},
		{"Zardozi", "Uttar Pradesh", 17500, 195},
		{"Meenakari", "Rajasthan", 4900, 85},
		{"Aari Work", "Jammu & Kashmir", 10800, 75},
		{"Kasuti", "Karnataka", 3500, 40},
		{"Bamboo Craft", "Assam", 15000, 90},
		{"Assam Silk", "Assam", 12000, 100},
		{"Stone Carving", "Odisha", 8000, 80},
		{"Kalamkari", "Telangana", 10000, 95},
		{"Puppetry", "Rajasthan", 4500, 50},
		{"Applique Work", "Gujarat", 7000, 60},
		{"Muga Silk", "Assam", 9000, 85},
		{"Wood Carving", "Kerala", 6000, 70},
		{"Thangka Painting", "Sikkim", 2000, 30},
		{"Kani Shawl", "Jammu & Kashmir", 11000, 120},
		{"Dhokra", "Odisha", 7500, 55},
		{"Bagh Print", "Madhya Pradesh", 8200, 75},
		{"Kashida", "Jammu & Kashmir", 9500, 65},
		{"Sujani", "Bihar", 4000, 35},
		{"Marble Inlay", "Rajasthan", 5000, 90},
		{"Kullu Shawl", "Himachal Pradesh", 6500, 80},
		{"Pithora Painting", "Gujarat", 3000, 40},
		{"Jute Craft", "West Bengal", 18000, 110},
		{"Shell Craft", "Goa", 2500, 25},
		{"Sohrai Painting", "Jharkhand", 3500, 30},
		{"Leather Craft", "Andhra Pradesh", 7000, 50},
	}
}
