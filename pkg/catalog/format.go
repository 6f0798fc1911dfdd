package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// placeholder is rendered for optional contact fields that are not set.
const placeholder = "N/A"

// FormatCurrency renders a rupiah amount with a dot as the thousands
// separator, e.g. 181000000 becomes "Rp 181.000.000". The separator is
// fixed, not locale-dependent.
func FormatCurrency(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if neg {
		return "Rp -" + b.String()
	}
	return "Rp " + b.String()
}

// FormatVehicle renders one vehicle as a multi-line info block.
func FormatVehicle(v Vehicle) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**%s %s** (%d)\n\n", v.Brand, v.Model, v.Year)
	fmt.Fprintf(&b, "Spesifikasi: %s\n", v.Specs)
	fmt.Fprintf(&b, "Harga: %s\n", FormatCurrency(v.Price))
	fmt.Fprintf(&b, "Cicilan: %s/bulan (36 bulan)", FormatCurrency(v.Installment))

	return b.String()
}

// FormatVehicleList renders the inventory grouped by category. Categories
// appear in first-seen order and vehicles keep their snapshot order within
// each group, so the output is deterministic for a given snapshot.
func FormatVehicleList(vehicles []Vehicle) string {
	var b strings.Builder
	b.WriteString("**DAFTAR MOBIL KAMI:**\n\n")

	var categories []string
	grouped := make(map[string][]Vehicle)
	for _, v := range vehicles {
		if _, seen := grouped[v.Category]; !seen {
			categories = append(categories, v.Category)
		}
		grouped[v.Category] = append(grouped[v.Category], v)
	}

	for _, cat := range categories {
		fmt.Fprintf(&b, "**%s:**\n", cat)
		for i, v := range grouped[cat] {
			fmt.Fprintf(&b, "%d. %s %s (%d) - %s\n", i+1, v.Brand, v.Model, v.Year, FormatCurrency(v.Price))
		}
		b.WriteString("\n")
	}

	return strings.TrimSpace(b.String())
}

// FormatPromotions renders the active promotions as a numbered list.
func FormatPromotions(promos []Promotion) string {
	var b strings.Builder
	b.WriteString("**PROMOSI SPESIAL BULAN INI:**\n\n")

	for i, p := range promos {
		fmt.Fprintf(&b, "%d. **%s**\n   %s\n\n", i+1, p.Title, p.Description)
	}

	b.WriteString("*Tawaran terbatas! Jangan lewatkan kesempatan ini.*")

	return strings.TrimSpace(b.String())
}

// FormatHours renders the operating hours, one entry per line, in the
// snapshot's order.
func FormatHours(entries []HoursEntry) string {
	var b strings.Builder
	b.WriteString("**JAM OPERASIONAL:**\n\n")

	for _, e := range entries {
		fmt.Fprintf(&b, "%s: %s\n", e.Days, e.Hours)
	}

	return strings.TrimSpace(b.String())
}

// FormatFinancing renders the financing plans as a numbered list.
func FormatFinancing(plans []FinancingPlan) string {
	var b strings.Builder
	b.WriteString("**PAKET PEMBIAYAAN:**\n\n")

	for i, p := range plans {
		fmt.Fprintf(&b, "%d. Tenor %s - bunga %s, DP minimum %s (%s)\n", i+1, p.Tenor, p.Interest, p.MinDownPayment, p.Notes)
	}

	return strings.TrimSpace(b.String())
}

// FormatServices renders the service list as a single comma-joined line.
func FormatServices(services []string) string {
	return strings.Join(services, ", ")
}

// FormatContact renders the showroom's contact channels. Optional channels
// that are not set render as an explicit placeholder rather than being
// dropped, so the block shape is stable.
func FormatContact(s Snapshot) string {
	var b strings.Builder

	b.WriteString("**HUBUNGI KAMI:**\n\n")
	fmt.Fprintf(&b, "%s\n", s.Name)
	fmt.Fprintf(&b, "%s\n\n", s.Address)
	fmt.Fprintf(&b, "WhatsApp: %s\n", orPlaceholder(s.WhatsApp))
	fmt.Fprintf(&b, "Instagram: %s\n", orPlaceholder(s.Instagram))
	fmt.Fprintf(&b, "Email: %s\n", orPlaceholder(s.Email))
	fmt.Fprintf(&b, "Website: %s\n", orPlaceholder(s.Website))
	b.WriteString("\nTim kami siap membantu Anda 24/7!")

	return b.String()
}

func orPlaceholder(v string) string {
	if v == "" {
		return placeholder
	}
	return v
}
