package confirmation

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"panelstore/internal/domain"
)

func sampleRecord() *domain.OrderRecord {
	return &domain.OrderRecord{
		OrderID:  "ORDER-1700000000000-42",
		Name:     "Budi Santoso",
		WhatsApp: "6281228010210",
		Email:    "budi@example.com",
		Date:     time.Date(2026, 8, 30, 14, 30, 5, 0, time.UTC),
	}
}

func sampleItems() []domain.CartLine {
	return []domain.CartLine{
		{Offering: domain.Offering{ID: 1, Title: "Basic Panel", Price: 10000, Spec: "1 Core • 1GB RAM • 5GB SSD"}, Quantity: 2},
		{Offering: domain.Offering{ID: 4, Title: "Bot WhatsApp", Price: 15000, Spec: "Fitur Lengkap + Auto Update"}, Quantity: 1},
	}
}

func TestMessageGuardClauses(t *testing.T) {
	if got := Message(nil, sampleItems()); got != "" {
		t.Fatalf("nil record must yield empty message, got %q", got)
	}
	if got := Message(sampleRecord(), nil); got != "" {
		t.Fatalf("empty items must yield empty message, got %q", got)
	}
	if got := Link("6281228010210", sampleRecord(), nil); got != "" {
		t.Fatalf("empty message must yield empty link, got %q", got)
	}
}

func TestMessageContents(t *testing.T) {
	encoded := Message(sampleRecord(), sampleItems())
	decoded, err := url.QueryUnescape(encoded)
	if err != nil {
		t.Fatalf("message is not valid percent-encoding: %v", err)
	}

	for _, want := range []string{
		"Halo Admin",
		"Order ID: ORDER-1700000000000-42",
		"Nama: Budi Santoso",
		"WhatsApp: 6281228010210",
		"Email: budi@example.com",
		"1. Basic Panel (1 Core • 1GB RAM • 5GB SSD)",
		"Jumlah: 2 x Rp 10.000",
		"Subtotal: Rp 20.000",
		"2. Bot WhatsApp (Fitur Lengkap + Auto Update)",
		"*TOTAL PEMBAYARAN:* Rp 35.000",
		"*Metode Pembayaran:* QRIS Manual",
		"*Tanggal Order:* 30/8/2026, 14.30.05",
		"Terima kasih!",
	} {
		if !strings.Contains(decoded, want) {
			t.Fatalf("message missing %q:\n%s", want, decoded)
		}
	}
}

func TestMessageEncodesSpacesLikeABrowser(t *testing.T) {
	encoded := Message(sampleRecord(), sampleItems())
	if strings.Contains(encoded, "+") {
		t.Fatalf("spaces must be %%20-encoded, found '+': %s", encoded)
	}
	if !strings.Contains(encoded, "%20") {
		t.Fatalf("expected %%20 in encoded message: %s", encoded)
	}
}

func TestMessageFallsBackToNA(t *testing.T) {
	rec := sampleRecord()
	rec.Email = ""
	decoded, _ := url.QueryUnescape(Message(rec, sampleItems()))
	if !strings.Contains(decoded, "Email: N/A") {
		t.Fatalf("expected N/A fallback:\n%s", decoded)
	}
}

func TestLink(t *testing.T) {
	link := Link("6281228010210", sampleRecord(), sampleItems())
	if !strings.HasPrefix(link, "https://wa.me/6281228010210?text=") {
		t.Fatalf("unexpected link %q", link)
	}
}

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{10000, "10.000"},
		{1234567, "1.234.567"},
	}
	for _, tc := range cases {
		if got := formatRupiah(tc.in); got != tc.want {
			t.Fatalf("formatRupiah(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
