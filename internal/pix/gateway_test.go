package pix

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BruksfildServices01/estetica-agenda/internal/audit"
	"github.com/BruksfildServices01/estetica-agenda/internal/config"
	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
	infraRepo "github.com/BruksfildServices01/estetica-agenda/internal/infra/repository"
)

func testBuyer() Buyer {
	return Buyer{
		FirstName: "Ana",
		LastName:  "Souza",
		Email:     "ana@example.com",
		Document:  "123.456.789-09",
	}
}

func newTestGateway(t *testing.T, cfg *config.Config, client *Client) (*Gateway, domain.Store) {
	t.Helper()

	dir := t.TempDir()
	store := infraRepo.NewAppointmentFileStore(filepath.Join(dir, "appointments.json"))
	dispatcher := audit.NewDispatcher(audit.New(filepath.Join(dir, "audit.log")))

	return NewGateway(cfg, store, dispatcher, client), store
}

func TestGenerateChargeValidation(t *testing.T) {
	gw, store := newTestGateway(t, &config.Config{MockMode: true}, nil)
	ctx := context.Background()

	cases := []ChargeInput{
		{Value: 10, ReferenceID: "ref-1"},          // sem buyer
		{Buyer: testBuyer(), ReferenceID: "ref-1"}, // sem valor
		{Buyer: testBuyer(), Value: 10},            // sem referência
	}

	for _, in := range cases {
		if _, err := gw.GenerateCharge(ctx, in); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", in, err)
		}
	}

	aps, _ := store.LoadAll(ctx)
	if len(aps) != 0 {
		t.Fatalf("validation failure must not persist records, got %d", len(aps))
	}
}

func TestGenerateChargeMockMode(t *testing.T) {
	gw, store := newTestGateway(t, &config.Config{MockMode: true}, nil)
	ctx := context.Background()

	res, err := gw.GenerateCharge(ctx, ChargeInput{
		Buyer:       testBuyer(),
		Value:       99.9,
		ReferenceID: "ref-mock",
	})
	if err != nil {
		t.Fatalf("mock charge failed: %v", err)
	}

	if !strings.HasPrefix(res.TxID, "MOCK-TXID-") {
		t.Fatalf("expected MOCK-TXID- prefix, got %q", res.TxID)
	}
	if res.Provider != domain.ProviderInterMock {
		t.Fatalf("expected inter_mock provider, got %q", res.Provider)
	}
	if !strings.Contains(res.Code, "Ana") {
		t.Fatalf("mock code should embed first name: %q", res.Code)
	}
	if res.ImageURL != QRImageURL(res.Code) {
		t.Fatal("image url should be derived from the code")
	}

	aps, _ := store.LoadAll(ctx)
	if len(aps) != 1 {
		t.Fatalf("expected exactly one persisted record, got %d", len(aps))
	}
	ap := aps[0]
	if ap.ID != "ref-mock" || ap.Provider != "inter_mock" || ap.Status != "pending" {
		t.Fatalf("unexpected persisted record: %+v", ap)
	}
	if ap.Service != "Serviço (Mock)" {
		t.Fatalf("unexpected default service: %q", ap.Service)
	}
	if ap.ClientName != "Ana Souza" || ap.Value != 99.9 {
		t.Fatalf("buyer data not persisted: %+v", ap)
	}
}

func newInterTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/v2/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		if r.PostForm.Get("grant_type") != "client_credentials" {
			http.Error(w, "bad grant", http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "token-abc",
			"expires_in":   3600,
		})
	})
	mux.HandleFunc("/cob", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer token-abc" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var charge ChargeRequest
		if err := json.NewDecoder(r.Body).Decode(&charge); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		if charge.Devedor.CPF != "12345678909" {
			http.Error(w, "document not normalized", http.StatusBadRequest)
			return
		}
		if charge.Valor.Original != "120.50" {
			http.Error(w, "value not formatted", http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"txid":          "TX123",
			"pixCopiaECola": "00020101br.gov.bcb.pix-live-code",
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func liveConfig(srvURL string) *config.Config {
	return &config.Config{
		MockMode: false,
		Inter: config.InterConfig{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			PixKey:       "salon@pix.com",
			AuthURL:      srvURL + "/oauth/v2/token",
			APIURL:       srvURL,
		},
	}
}

func TestGenerateChargeLive(t *testing.T) {
	srv := newInterTestServer(t)
	cfg := liveConfig(srv.URL)

	client := NewClientWithHTTPClient(cfg.Inter, srv.Client(), NewMemoryTokenCache())
	gw, store := newTestGateway(t, cfg, client)
	ctx := context.Background()

	res, err := gw.GenerateCharge(ctx, ChargeInput{
		Buyer:       testBuyer(),
		Value:       120.5,
		ReferenceID: "ref-live",
		ServiceName: "Limpeza de Pele",
	})
	if err != nil {
		t.Fatalf("live charge failed: %v", err)
	}

	if res.TxID != "TX123" {
		t.Fatalf("unexpected txid: %q", res.TxID)
	}
	if res.Provider != domain.ProviderInter {
		t.Fatalf("expected inter provider, got %q", res.Provider)
	}
	if res.Code != "00020101br.gov.bcb.pix-live-code" {
		t.Fatalf("unexpected code: %q", res.Code)
	}

	aps, _ := store.LoadAll(ctx)
	if len(aps) != 1 {
		t.Fatalf("expected one persisted record, got %d", len(aps))
	}
	if aps[0].Provider != "inter" || aps[0].Status != "pending" || aps[0].TxID != "TX123" {
		t.Fatalf("unexpected persisted record: %+v", aps[0])
	}
	if aps[0].Service != "Limpeza de Pele" {
		t.Fatalf("service label not persisted: %q", aps[0].Service)
	}
}

func TestGenerateChargeLiveFailureFallsBackToMock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_client"}`, http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	cfg := liveConfig(srv.URL)
	client := NewClientWithHTTPClient(cfg.Inter, srv.Client(), nil)
	gw, store := newTestGateway(t, cfg, client)
	ctx := context.Background()

	res, err := gw.GenerateCharge(ctx, ChargeInput{
		Buyer:       testBuyer(),
		Value:       50,
		ReferenceID: "ref-fallback",
	})
	if err != nil {
		t.Fatalf("fallback should answer successfully, got %v", err)
	}
	if res.Provider != domain.ProviderInterMock {
		t.Fatalf("expected mock fallback, got provider %q", res.Provider)
	}
	if !strings.HasPrefix(res.TxID, "MOCK-TXID-") {
		t.Fatalf("expected mock txid, got %q", res.TxID)
	}

	aps, _ := store.LoadAll(ctx)
	if len(aps) != 1 || aps[0].Provider != "inter_mock" {
		t.Fatalf("expected one inter_mock record, got %+v", aps)
	}
}

func TestGenerateChargeMissingPixKeyFallsBackToMock(t *testing.T) {
	srv := newInterTestServer(t)
	cfg := liveConfig(srv.URL)
	cfg.Inter.PixKey = ""

	client := NewClientWithHTTPClient(cfg.Inter, srv.Client(), nil)
	gw, store := newTestGateway(t, cfg, client)

	res, err := gw.GenerateCharge(context.Background(), ChargeInput{
		Buyer:       testBuyer(),
		Value:       10,
		ReferenceID: "ref-nokey",
	})
	if err != nil {
		t.Fatalf("missing pix key should fall back, got %v", err)
	}
	if res.Provider != domain.ProviderInterMock {
		t.Fatalf("expected mock provider, got %q", res.Provider)
	}

	aps, _ := store.LoadAll(context.Background())
	if len(aps) != 1 || aps[0].Provider != "inter_mock" {
		t.Fatalf("expected one inter_mock record, got %+v", aps)
	}
}
