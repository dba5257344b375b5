package dataset

// Month is free text on purpose: festivals span ranges ("Dec-Feb") or move
// with the lunar calendar ("Rotational"). The explorer matches it by
// substring, not token.
func culturalEvents() []CulturalEvent {
	return []CulturalEvent{
		{"Kumbh Mela", "Uttar Pradesh", "Rotational", 50000000, 10},
		{"Pushkar Camel Fair", "Rajasthan", "November", 250000, 8},
		{"Rann Utsav", "Gujarat", "Dec-Feb", 500000, 7},
		{"Hornbill Festival", "Nagaland", "December", 100000, 9},
		{"Onam", "Kerala", "Aug-Sep", 1000000, 8},
		{"Durga Puja", "West Bengal", "Sep-Oct", 5000000, 9},
		{"Diwali in Varanasi", "Uttar Pradesh", "Oct-Nov", 300000, 8},
		{"Hemis Festival", "Ladakh", "June-July", 20000, 7},
		{"Holi in Mathura", "Uttar Pradesh", "March", 200000, 9},
		{"Pongal", "Tamil Nadu", "January", 3000000, 8},
		{"Bihu", "Assam", "April", 500000, 8},
		{"Ganesh Chaturthi", "Maharashtra", "Aug-Sep", 1000000, 9},
		{"Navratri", "Gujarat", "Sep-Oct", 3000000, 9},
		{"Jaipur Literature Festival", "Rajasthan", "January", 400000, 7},
		{"Khajuraho Dance Festival", "Madhya Pradesh", "February", 30000, 8},
		{"Thrissur Pooram", "Kerala", "April", 500000, 8},
		{"Baisakhi", "Punjab", "April", 1000000, 8},
		{"Chhath Puja", "Bihar", "Nov-Dec", 2000000, 9},
		{"Teej", "Rajasthan", "August", 150000, 7},
		{"Losar", "Sikkim", "Feb-Mar", 10000, 7},
		{"Goa Carnival", "Goa", "February", 200000, 7},
		{"Torgya Festival", "Arunachal Pradesh", "January", 15000, 6},
		{"Sangai Festival", "Manipur", "November", 50000, 8},
		{"Konark Dance Festival", "Odisha", "December", 30000, 8},
		{"Makar Sankranti", "Gujarat", "January", 1000000, 8},
		{"Vishu", "Kerala", "April", 500000, 7},
		{"Bathukamma", "Telangana", "Sep-Oct", 400000, 7},
		{"Wangala Festival", "Meghalaya", "January", 20000, 7},
		{"Chapchar Kut", "Mizoram", "March", 15000, 7},
		{"Gudi Padwa", "Maharashtra", "March-April", 300000, 8},
		{"Ambubachi Mela", "Assam", "June-July", 100000, 8},
		{"Sankranti", "Karnataka", "January", 200000, 7},
		{"Lohri", "Punjab", "January", 500000, 8},
		{"Modhera Dance Festival", "Gujarat", "January", 25000, 7},
		{"Ladakh Festival", "Ladakh", "September", 20000, 7},
		{"Tansen Samaroh", "Madhya Pradesh", "December", 30000, 8},
		{"Lakshadweep Cultural Fest", "Lakshadweep", "January", 5000, 6},
	}
}
