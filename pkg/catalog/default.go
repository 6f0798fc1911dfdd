package catalog

// Default returns the built-in snapshot for Showroom Mobil Sungkang. It is
// used when no catalog file is configured. Callers get a fresh value on
// every call, so mutating the result never affects other requests.
func Default() Snapshot {
	return Snapshot{
		Name:      "Showroom Mobil Sungkang",
		Address:   "Jl. Gatot Subroto No. 45, Semarang, Jawa Tengah 50123",
		City:      "Semarang",
		Province:  "Jawa Tengah",
		WhatsApp:  "+62 812-3456-7890",
		Instagram: "@sungkangmobil",
		Email:     "info@sungkangmobil.com",
		Website:   "www.sungkangmobil.com",
		Founded:   2010,

		Hours: []HoursEntry{
			{Days: "Senin-Jumat", Hours: "08:00 - 18:00"},
			{Days: "Sabtu", Hours: "08:00 - 14:00"},
			{Days: "Minggu", Hours: "Libur"},
			{Days: "Hari Libur Nasional", Hours: "Libur"},
		},

		Vehicles: []Vehicle{
			{ID: 1, Brand: "Toyota", Model: "Avanza 1.3 MT", Year: 2024, Category: "MPV", Price: 181000000, Installment: 5800000, Specs: "7 seater, Manual, AC, Power steering"},
			{ID: 2, Brand: "Daihatsu", Model: "Xenia 1.3 MT", Year: 2024, Category: "MPV", Price: 165000000, Installment: 5200000, Specs: "7 seater, Manual, AC, Power Window"},
			{ID: 3, Brand: "Honda", Model: "CR-V 1.5 Turbo", Year: 2024, Category: "SUV", Price: 425000000, Installment: 13500000, Specs: "SUV Premium, Turbo, Automatic, CVT"},
			{ID: 4, Brand: "Toyota", Model: "Rush 1.5 MT", Year: 2024, Category: "SUV", Price: 245000000, Installment: 7800000, Specs: "SUV Compact, Manual, AC, Power Window"},
			{ID: 5, Brand: "Honda", Model: "City 1.5 MT", Year: 2024, Category: "Sedan", Price: 290000000, Installment: 9200000, Specs: "Sedan Compact, Manual, AC, ABS"},
			{ID: 6, Brand: "Toyota", Model: "Corolla 1.6 Manual", Year: 2024, Category: "Sedan", Price: 312000000, Installment: 9900000, Specs: "Sedan Mid-size, Manual, AC, Power steering"},
			{ID: 7, Brand: "Isuzu", Model: "D-Max 2.5 Single Cabin", Year: 2024, Category: "Pickup", Price: 285000000, Installment: 9100000, Specs: "Pickup, Diesel, Manual, AC"},
			{ID: 8, Brand: "Datsun", Model: "GO 1.2 MT", Year: 2024, Category: "Hatchback", Price: 139000000, Installment: 4400000, Specs: "Hatchback, Manual, AC, Power Window"},
			{ID: 9, Brand: "Toyota", Model: "Innova 2.4 Diesel", Year: 2019, Category: "MPV Bekas", Price: 285000000, Installment: 9100000, Specs: "Sangat Baik, Kilometer rendah, Full Service Record"},
			{ID: 10, Brand: "Honda", Model: "Jazz 1.5 Automatic", Year: 2018, Category: "Hatchback Bekas", Price: 175000000, Installment: 5600000, Specs: "Baik, Terawat, Kilometer 75.000 km"},
			{ID: 11, Brand: "Mitsubishi", Model: "Pajero Sport 2.4 AT", Year: 2024, Category: "SUV", Price: 480000000, Installment: 15200000, Specs: "SUV Premium, Automatic, 4x4, All Power"},
			{ID: 12, Brand: "Suzuki", Model: "Ertiga 1.5 MT", Year: 2024, Category: "MPV", Price: 195000000, Installment: 6200000, Specs: "7 seater, Manual, AC, Power Window"},
			{ID: 13, Brand: "Hyundai", Model: "Creta 1.5 AT", Year: 2024, Category: "SUV", Price: 320000000, Installment: 10200000, Specs: "SUV Modern, Automatic, Warranty"},
			{ID: 14, Brand: "Kia", Model: "Sonet 1.5 MT", Year: 2024, Category: "SUV", Price: 280000000, Installment: 8900000, Specs: "SUV Compact, Manual, Modern Design"},
			{ID: 15, Brand: "Nissan", Model: "Grand Livina 1.5 MT", Year: 2024, Category: "MPV", Price: 210000000, Installment: 6700000, Specs: "MPV Spacious, 7 seater, Terpercaya"},
			{ID: 16, Brand: "Toyota", Model: "Fortuner 2.8 Diesel AT", Year: 2024, Category: "SUV", Price: 530000000, Installment: 16800000, Specs: "SUV Tangguh, Diesel, 7 seater, Premium"},
			{ID: 17, Brand: "Honda", Model: "Civic 1.5 Turbo AT", Year: 2024, Category: "Sedan", Price: 450000000, Installment: 14300000, Specs: "Sedan Sporty, Turbo, Full Power"},
			{ID: 18, Brand: "Mazda", Model: "CX-5 2.5 AT", Year: 2024, Category: "SUV", Price: 420000000, Installment: 13400000, Specs: "SUV Stylish, Automatic, Premium Interior"},
			{ID: 19, Brand: "Chevrolet", Model: "Trailblazer 2.0 AT", Year: 2024, Category: "SUV", Price: 390000000, Installment: 12400000, Specs: "SUV Powerful, Automatic, Turbo"},
			{ID: 20, Brand: "Wuling", Model: "Cortez 1.5 MT", Year: 2024, Category: "MPV", Price: 165000000, Installment: 5300000, Specs: "MPV Ekonomis, 7 seater, Terjangkau"},
		},

		Promotions: []Promotion{
			{ID: 1, Title: "Diskon Langsung", Description: "Diskon Rp 10.000.000 untuk Avanza, Xenia, Rush"},
			{ID: 2, Title: "Asuransi Gratis", Description: "Gratis Asuransi 1 Tahun untuk semua mobil baru"},
			{ID: 3, Title: "DP 0%", Description: "DP 0% untuk tenor 24 bulan (kredit minimal Rp 150 juta)"},
			{ID: 4, Title: "Trade-in Terbaik", Description: "Trade-in dengan nilai tukar tertinggi + Rp 5.000.000"},
			{ID: 5, Title: "Cicilan Spesial", Description: "Cicilan Spesial Rp 3.999.000 untuk Datsun GO (60 bulan)"},
		},

		Financing: []FinancingPlan{
			{Tenor: "12 Bulan", Interest: "3.5%", MinDownPayment: "20%", Notes: "Mobil baru"},
			{Tenor: "24 Bulan", Interest: "4.2%", MinDownPayment: "15%", Notes: "Mobil baru & bekas"},
			{Tenor: "36 Bulan", Interest: "4.8%", MinDownPayment: "10%", Notes: "Mobil baru & bekas"},
			{Tenor: "48 Bulan", Interest: "5.5%", MinDownPayment: "10%", Notes: "Mobil baru saja"},
			{Tenor: "60 Bulan", Interest: "6.2%", MinDownPayment: "15%", Notes: "Mobil baru saja"},
		},

		Services: []string{
			"Penjualan Mobil Baru",
			"Penjualan Mobil Bekas",
			"Layanan Test Drive (Gratis)",
			"Financing/Kredit",
			"Trade-in",
			"Konsultasi Gratis",
			"Layanan Purna Jual",
			"Asuransi",
		},

		Facilities: []string{
			"Ruang tunggu ber-AC dengan WiFi gratis",
			"Ruang konsultasi privat",
			"Toilet bersih & fasilitas wudhu",
			"Mushola",
			"Kantin/Kafe kecil",
			"Area display mobil indoor & outdoor",
			"Test drive track khusus",
			"Mesin ATM & transfer bank nearby",
			"Tempat bermain anak-anak",
		},

		Departments: []DepartmentContact{
			{Department: "Sales Manager", Name: "Bambang Sutrisno", WhatsApp: "+62 812-9876-5432"},
			{Department: "Sales Executive", Name: "Siti Nurhaliza", WhatsApp: "+62 813-5678-9012"},
			{Department: "Finance/Kredit", Name: "Ahmad Wijaya", WhatsApp: "+62 814-3456-7890"},
			{Department: "After Sales", Name: "Hendra Kusuma", WhatsApp: "+62 815-2345-6789"},
		},
	}
}
