package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sungkangmobil/showroom-assistant/pkg/catalog"
)

func TestDefault(t *testing.T) {
	s := catalog.Default()

	require.NoError(t, s.Validate())
	assert.Equal(t, "Showroom Mobil Sungkang", s.Name)
	assert.Equal(t, "+62 812-3456-7890", s.WhatsApp)
	assert.Len(t, s.Vehicles, 20)
	assert.Len(t, s.Promotions, 5)
	assert.Len(t, s.Financing, 5)
	assert.Len(t, s.Hours, 4)
	assert.NotEmpty(t, s.Services)
	assert.NotEmpty(t, s.Facilities)
	assert.Len(t, s.Departments, 4)
}

func TestDefault_FreshValue(t *testing.T) {
	a := catalog.Default()
	a.Vehicles[0].Price = 1

	b := catalog.Default()
	assert.Equal(t, int64(181000000), b.Vehicles[0].Price)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `
name: Showroom Uji
address: Jl. Contoh No. 1
whatsapp: "+62 800-0000-0000"
hours:
  - days: Senin-Jumat
    hours: 09:00 - 17:00
vehicles:
  - id: 1
    brand: Toyota
    model: Agya 1.2 MT
    year: 2024
    category: Hatchback
    price: 150000000
    installment: 4800000
    specs: Manual, AC
promotions:
  - id: 1
    title: Promo Uji
    description: Diskon uji coba
services:
  - Penjualan Mobil Baru
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	s, err := catalog.Load(path)
	require.NoError(t, err)
	require.NoError(t, s.Validate())

	assert.Equal(t, "Showroom Uji", s.Name)
	require.Len(t, s.Vehicles, 1)
	assert.Equal(t, "Agya 1.2 MT", s.Vehicles[0].Model)
	assert.Equal(t, int64(150000000), s.Vehicles[0].Price)
	assert.Equal(t, "Senin-Jumat", s.Hours[0].Days)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vehicles: {not: [a, list"), 0o600))

	_, err := catalog.Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*catalog.Snapshot)
		wantErr string
	}{
		{
			name:    "missing name",
			mutate:  func(s *catalog.Snapshot) { s.Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "missing whatsapp",
			mutate:  func(s *catalog.Snapshot) { s.WhatsApp = "" },
			wantErr: "whatsapp contact is required",
		},
		{
			name:    "duplicate vehicle id",
			mutate:  func(s *catalog.Snapshot) { s.Vehicles[1].ID = s.Vehicles[0].ID },
			wantErr: "duplicate vehicle id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := catalog.Default()
			tt.mutate(&s)

			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSearch(t *testing.T) {
	s := catalog.Default()

	byBrand := s.Search("toyota")
	require.NotEmpty(t, byBrand)
	for _, v := range byBrand {
		assert.Equal(t, "Toyota", v.Brand)
	}

	byModel := s.Search("avanza")
	require.Len(t, byModel, 1)
	assert.Equal(t, "Avanza 1.3 MT", byModel[0].Model)

	byCategory := s.Search("suv")
	assert.NotEmpty(t, byCategory)

	assert.Empty(t, s.Search("lamborghini"))
	assert.Nil(t, s.Search("   "))
}

func TestSearch_PreservesOrder(t *testing.T) {
	s := catalog.Default()

	got := s.Search("sedan")
	require.Len(t, got, 3)
	assert.Equal(t, "City 1.5 MT", got[0].Model)
	assert.Equal(t, "Corolla 1.6 Manual", got[1].Model)
	assert.Equal(t, "Civic 1.5 Turbo AT", got[2].Model)
}
