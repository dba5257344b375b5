package dataset

// Traditional art forms with their home region and a representative point for
// the region (used directly by the map view).
func artForms() []ArtForm {
	return []ArtForm{
		{"Madhubani", "Painting", "Bihar", 85, 25.0961, 85.3131},
		{"Warli", "Painting", "Maharashtra", 78, 19.7515, 75.7139},
		{"Kalamkari", "Painting", "Andhra Pradesh", 82, 15.9129, 79.7400},
		{"Tanjore", "Painting", "Tamil Nadu", 80, 11.1271, 78.6569},
		{"Pattachitra", "Painting", "Odisha", 72, 20.9517, 85.0985},
		{"Kathakali", "Dance", "Kerala", 88, 10.8505, 76.2711},
		{"Bharatanatyam", "Dance", "Tamil Nadu", 92, 11.1271, 78.6569},
		{"Kathak", "Dance", "Uttar Pradesh", 89, 26.8467, 80.9462},
		{"Odissi", "Dance", "Odisha", 83, 20.9517, 85.0985},
		{"Kuchipudi", "Dance", "Andhra Pradesh", 79, 15.9129, 79.7400},
		{"Carnatic", "Music", "Tamil Nadu", 91, 11.1271, 78.6569},
		{"Hindustani", "Music", "Uttar Pradesh", 90, 26.8467, 80.9462},
		{"Gond", "Painting", "Madhya Pradesh", 70, 23.4735, 77.9471},
		{"Phad", "Painting", "Rajasthan", 68, 27.0238, 74.2179},
		{"Miniature", "Painting", "Rajasthan", 76, 27.0238, 74.2179},
		{"Bihu", "Dance", "Assam", 75, 26.2006, 92.9376},
		{"Ghoomar", "Dance", "Rajasthan", 80, 27.0238, 74.2179},
		{"Chhau", "Dance", "Jharkhand", 73, 23.3441, 85.2799},
		{"Garba", "Dance", "Gujarat", 85, 22.2587, 71.1924},
		{"Lavani", "Dance", "Maharashtra", 77, 19.7515, 75.7139},
		{"Bodo Dance", "Dance", "Tripura", 70, 23.8315, 91.6192},
		{"Sattriya", "Dance", "Assam", 82, 26.2006, 92.9376},
		{"Yakshagana", "Dance", "Karnataka", 78, 15.3173, 75.7139},
		{"Thang-Ta", "Dance", "Manipur", 74, 24.8170, 93.9442},
		{"Kalaripayattu", "Martial Art", "Kerala", 76, 10.8505, 76.2711},
		{"Bhangra", "Dance", "Punjab", 85, 31.1048, 75.7139},
		{"Giddha", "Dance", "Punjab", 80, 31.1048, 75.7139},
		{"Cheraw", "Dance", "Mizoram", 72, 23.6145, 91.8933},
		{"Fugdi", "Dance", "Goa", 70, 15.4989, 73.6918},
		{"Dalkhai", "Dance", "Odisha", 73, 20.9517, 85.0985},
		{"Theyyam", "Ritual Dance", "Kerala", 84, 10.8505, 76.2711},
		{"Tharu Folk", "Dance", "Uttarakhand", 71, 30.3165, 78.1624},
		{"Santhali Dance", "Dance", "Jharkhand", 74, 23.3441, 85.2799},
		{"Rabindra Sangeet", "Music", "West Bengal", 88, 22.9868, 87.8546},
		{"Pahari Painting", "Painting", "Himachal Pradesh", 75, 31.6360, 77.1025},
		{"Koli Dance", "Dance", "Dadra and Nagar Haveli", 70, 20.1809, 73.0169},
		{"Tusu Parab", "Dance", "Jharkhand", 68, 23.3441, 85.2799},
	}
}
