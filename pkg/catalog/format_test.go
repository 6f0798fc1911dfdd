package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sungkangmobil/showroom-assistant/pkg/catalog"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{999, "Rp 999"},
		{1000, "Rp 1.000"},
		{150000, "Rp 150.000"},
		{5800000, "Rp 5.800.000"},
		{181000000, "Rp 181.000.000"},
		{1234567890, "Rp 1.234.567.890"},
		{-5000, "Rp -5.000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, catalog.FormatCurrency(tt.amount))
	}
}

func TestFormatVehicle(t *testing.T) {
	v := catalog.Vehicle{
		ID: 1, Brand: "Toyota", Model: "Avanza 1.3 MT", Year: 2024,
		Category: "MPV", Price: 181000000, Installment: 5800000,
		Specs: "7 seater, Manual, AC, Power steering",
	}

	got := catalog.FormatVehicle(v)

	assert.Contains(t, got, "**Toyota Avanza 1.3 MT** (2024)")
	assert.Contains(t, got, "Spesifikasi: 7 seater, Manual, AC, Power steering")
	assert.Contains(t, got, "Harga: Rp 181.000.000")
	assert.Contains(t, got, "Cicilan: Rp 5.800.000/bulan (36 bulan)")
}

func TestFormatVehicleList_GroupsByFirstSeenCategory(t *testing.T) {
	vehicles := []catalog.Vehicle{
		{ID: 1, Brand: "Honda", Model: "CR-V 1.5 Turbo", Year: 2024, Category: "SUV", Price: 425000000},
		{ID: 2, Brand: "Honda", Model: "City 1.5 MT", Year: 2024, Category: "Sedan", Price: 290000000},
		{ID: 3, Brand: "Toyota", Model: "Rush 1.5 MT", Year: 2024, Category: "SUV", Price: 245000000},
	}

	got := catalog.FormatVehicleList(vehicles)

	suvIdx := strings.Index(got, "**SUV:**")
	sedanIdx := strings.Index(got, "**Sedan:**")
	require.GreaterOrEqual(t, suvIdx, 0)
	require.GreaterOrEqual(t, sedanIdx, 0)
	assert.Less(t, suvIdx, sedanIdx, "SUV appeared first in the source list, so it must render first")

	assert.Contains(t, got, "1. Honda CR-V 1.5 Turbo (2024) - Rp 425.000.000")
	assert.Contains(t, got, "2. Toyota Rush 1.5 MT (2024) - Rp 245.000.000")
	assert.Contains(t, got, "1. Honda City 1.5 MT (2024) - Rp 290.000.000")
}

func TestFormatVehicleList_Empty(t *testing.T) {
	got := catalog.FormatVehicleList(nil)
	assert.Equal(t, "**DAFTAR MOBIL KAMI:**", got)
}

func TestFormatPromotions(t *testing.T) {
	got := catalog.FormatPromotions([]catalog.Promotion{
		{ID: 1, Title: "Diskon Langsung", Description: "Diskon Rp 10.000.000 untuk Avanza"},
		{ID: 2, Title: "DP 0%", Description: "DP 0% untuk tenor 24 bulan"},
	})

	assert.Contains(t, got, "**PROMOSI SPESIAL BULAN INI:**")
	assert.Contains(t, got, "1. **Diskon Langsung**")
	assert.Contains(t, got, "2. **DP 0%**")
	assert.Contains(t, got, "*Tawaran terbatas! Jangan lewatkan kesempatan ini.*")
}

func TestFormatHours_PreservesOrder(t *testing.T) {
	got := catalog.FormatHours([]catalog.HoursEntry{
		{Days: "Senin-Jumat", Hours: "08:00 - 18:00"},
		{Days: "Sabtu", Hours: "08:00 - 14:00"},
		{Days: "Minggu", Hours: "Libur"},
	})

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Senin-Jumat: 08:00 - 18:00", lines[2])
	assert.Equal(t, "Sabtu: 08:00 - 14:00", lines[3])
	assert.Equal(t, "Minggu: Libur", lines[4])
}

func TestFormatFinancing(t *testing.T) {
	got := catalog.FormatFinancing([]catalog.FinancingPlan{
		{Tenor: "12 Bulan", Interest: "3.5%", MinDownPayment: "20%", Notes: "Mobil baru"},
	})

	assert.Contains(t, got, "1. Tenor 12 Bulan - bunga 3.5%, DP minimum 20% (Mobil baru)")
}

func TestFormatServices(t *testing.T) {
	got := catalog.FormatServices([]string{"Penjualan Mobil Baru", "Trade-in"})
	assert.Equal(t, "Penjualan Mobil Baru, Trade-in", got)

	assert.Empty(t, catalog.FormatServices(nil))
}

func TestFormatContact(t *testing.T) {
	got := catalog.FormatContact(catalog.Default())

	assert.Contains(t, got, "Showroom Mobil Sungkang")
	assert.Contains(t, got, "WhatsApp: +62 812-3456-7890")
	assert.Contains(t, got, "Instagram: @sungkangmobil")
	assert.Contains(t, got, "Email: info@sungkangmobil.com")
}

func TestFormatContact_MissingOptionalFields(t *testing.T) {
	s := catalog.Default()
	s.Instagram = ""
	s.Website = ""

	got := catalog.FormatContact(s)

	assert.Contains(t, got, "Instagram: N/A")
	assert.Contains(t, got, "Website: N/A")
}
