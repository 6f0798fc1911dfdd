// Package prompt assembles the grounded instruction prompt sent to the
// generation API. The prompt is built from the catalog snapshot, a fixed
// behavioral policy, a bounded window of prior conversation turns, and the
// new user message.
package prompt

import (
	"fmt"
	"strings"

	"github.com/sungkangmobil/showroom-assistant/pkg/catalog"
	"github.com/sungkangmobil/showroom-assistant/pkg/chats"
)

// HistoryWindow is the number of most-recent conversation turns included in
// the prompt. Older turns are truncated, not summarized.
const HistoryWindow = 5

// roleLabel maps a conversation role to its prompt tag.
func roleLabel(r chats.Role) string {
	if r == chats.User {
		return "User"
	}
	return "Assistant"
}

// Compose builds the full prompt for one user turn. It is deterministic:
// the same inputs always produce byte-identical output, and it never fails
// for a well-formed snapshot.
func Compose(userMessage string, snap catalog.Snapshot, history chats.History) string {
	var b strings.Builder

	b.WriteString(systemPrompt(snap))
	b.WriteString("\n\n")

	for _, turn := range history.Window(HistoryWindow) {
		fmt.Fprintf(&b, "%s: %s\n", roleLabel(turn.Role), turn.Text)
	}

	fmt.Fprintf(&b, "User: %s\n\n", userMessage)
	b.WriteString("Jawab dalam Bahasa Indonesia dengan ramah dan profesional:")

	return b.String()
}

// systemPrompt renders the role framing, business facts, and behavioral
// policy that ground every answer.
func systemPrompt(snap catalog.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Anda adalah asisten customer service untuk %s.\n\n", snap.Name)

	b.WriteString("INFORMASI SHOWROOM:\n")
	fmt.Fprintf(&b, "- Nama: %s\n", snap.Name)
	fmt.Fprintf(&b, "- Alamat: %s\n", snap.Address)
	fmt.Fprintf(&b, "- WhatsApp: %s\n", field(snap.WhatsApp))
	fmt.Fprintf(&b, "- Instagram: %s\n", field(snap.Instagram))
	fmt.Fprintf(&b, "- Email: %s\n", field(snap.Email))
	fmt.Fprintf(&b, "- Website: %s\n\n", field(snap.Website))

	b.WriteString(catalog.FormatHours(snap.Hours))
	b.WriteString("\n\n")

	b.WriteString(catalog.FormatVehicleList(snap.Vehicles))
	b.WriteString("\n\n")

	b.WriteString("PROMOSI AKTIF:\n")
	b.WriteString(catalog.FormatPromotions(snap.Promotions))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "LAYANAN:\n%s\n\n", catalog.FormatServices(snap.Services))

	b.WriteString("PETUNJUK:\n")
	b.WriteString("1. Jawab pertanyaan customer dengan ramah dan profesional\n")
	b.WriteString("2. Gunakan informasi di atas sebagai referensi\n")
	b.WriteString("3. Tawarkan test drive gratis jika customer tertarik\n")
	b.WriteString("4. Jika ada pertanyaan khusus, sarankan customer untuk menghubungi showroom\n")
	b.WriteString("5. Selalu akhiri dengan ajakan untuk menghubungi atau berkunjung\n")
	b.WriteString("6. Gunakan Bahasa Indonesia yang baik dan sopan")

	return b.String()
}

func field(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
