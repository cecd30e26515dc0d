package confirmation

import (
	"fmt"
	"net/url"
	"strings"

	"panelstore/internal/domain"
)

const paymentMethodLabel = "QRIS Manual"

// Message renders the admin hand-off text for an order, percent-encoded for
// embedding in a wa.me link. A nil record or an empty item list yields an
// empty string: without complete data the link must simply not be offered.
func Message(rec *domain.OrderRecord, items []domain.CartLine) string {
	if rec == nil || len(items) == 0 {
		return ""
	}

	total := domain.CartTotal(items)

	var b strings.Builder
	b.WriteString("Halo Admin, saya telah melakukan pembayaran untuk order berikut:\n\n")
	b.WriteString("📋 *DETAIL ORDER*\n")
	fmt.Fprintf(&b, "Order ID: %s\n", orNA(rec.OrderID))
	fmt.Fprintf(&b, "Nama: %s\n", orNA(rec.Name))
	fmt.Fprintf(&b, "WhatsApp: %s\n", orNA(rec.WhatsApp))
	fmt.Fprintf(&b, "Email: %s\n\n", orNA(rec.Email))

	b.WriteString("🛒 *ITEM YANG DIPESAN:*\n")
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, item.Title, item.Spec)
		fmt.Fprintf(&b, "   Jumlah: %d x Rp %s\n", item.Quantity, formatRupiah(item.Price))
		fmt.Fprintf(&b, "   Subtotal: Rp %s\n\n", formatRupiah(item.Subtotal()))
	}

	fmt.Fprintf(&b, "💰 *TOTAL PEMBAYARAN:* Rp %s\n\n", formatRupiah(total))
	fmt.Fprintf(&b, "💳 *Metode Pembayaran:* %s\n", paymentMethodLabel)
	fmt.Fprintf(&b, "📅 *Tanggal Order:* %s\n\n", rec.Date.Format("2/1/2006, 15.04.05"))
	b.WriteString("⚠️ *BUKTI PEMBAYARAN TELAH SAYA UPLOAD*\n")
	b.WriteString("Mohon segera proses order saya. Terima kasih!")

	return encodeComponent(b.String())
}

// Link builds the full wa.me deep link for the admin handle, or an empty
// string when the message itself is empty.
func Link(adminWhatsApp string, rec *domain.OrderRecord, items []domain.CartLine) string {
	msg := Message(rec, items)
	if msg == "" {
		return ""
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", adminWhatsApp, msg)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

// formatRupiah groups digits with dots, the Indonesian thousands convention.
func formatRupiah(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ".")
	if neg {
		return "-" + out
	}
	return out
}

// encodeComponent percent-encodes like a browser's encodeURIComponent, so
// spaces become %20 rather than +.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
