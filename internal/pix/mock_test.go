package pix

import (
	"strings"
	"testing"
	"time"
)

func TestMockPixCodeEmbedsFirstName(t *testing.T) {
	code := MockPixCode("Joana")

	if !strings.Contains(code, "Joana") {
		t.Fatalf("code should embed buyer first name: %q", code)
	}
	if !strings.HasPrefix(code, "00020126580014BR.GOV.BCB.PIX") {
		t.Fatalf("unexpected EMV prefix: %q", code)
	}
	// O template é fixo: o valor cobrado nunca entra no código mock.
	if MockPixCode("Joana") != code {
		t.Fatal("mock code should be deterministic")
	}
}

func TestQRImageURL(t *testing.T) {
	url := QRImageURL("abc/def?x=1")

	if !strings.HasPrefix(url, "https://chart.googleapis.com/chart?chs=200x200&cht=qr&chl=") {
		t.Fatalf("unexpected chart url: %q", url)
	}
	if strings.Contains(strings.TrimPrefix(url, "https://chart.googleapis.com/chart?chs=200x200&cht=qr&chl="), "?") {
		t.Fatalf("payload should be escaped: %q", url)
	}
}

func TestMockTxID(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	txid := MockTxID(now)

	if txid != "MOCK-TXID-1700000000000" {
		t.Fatalf("unexpected txid: %q", txid)
	}
}
