package pix

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/BruksfildServices01/estetica-agenda/internal/audit"
	"github.com/BruksfildServices01/estetica-agenda/internal/config"
	domain "github.com/BruksfildServices01/estetica-agenda/internal/domain/appointment"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
	"github.com/BruksfildServices01/estetica-agenda/internal/timezone"
	"github.com/BruksfildServices01/estetica-agenda/internal/validators"
)

// ErrValidation: campo obrigatório ausente. É o único erro que NÃO cai no
// fallback mock — nada é persistido e o handler devolve 400.
var ErrValidation = errors.New("missing required fields")

const chargeExpirationSeconds = 3600 // 1 hora

type Buyer struct {
	FirstName string
	LastName  string
	Email     string
	Document  string
}

func (b Buyer) FullName() string {
	return strings.TrimSpace(b.FirstName + " " + b.LastName)
}

type ChargeInput struct {
	Buyer       Buyer
	Value       float64
	ReferenceID string
	ServiceName string
}

type ChargeResult struct {
	Code     string
	ImageURL string
	TxID     string
	Provider domain.Provider
}

// Gateway orquestra a geração de cobrança: valida, decide o modo de
// operação, tenta o fluxo live e cai para o mock em qualquer falha.
// Toda chamada que passa da validação persiste exatamente um agendamento
// pendente, live ou mock.
type Gateway struct {
	cfg    *config.Config
	store  domain.Store
	audit  *audit.Dispatcher
	client *Client // nil quando o certificado não carregou
}

func NewGateway(
	cfg *config.Config,
	store domain.Store,
	auditDispatcher *audit.Dispatcher,
	client *Client,
) *Gateway {
	return &Gateway{
		cfg:    cfg,
		store:  store,
		audit:  auditDispatcher,
		client: client,
	}
}

func (g *Gateway) GenerateCharge(ctx context.Context, in ChargeInput) (*ChargeResult, error) {
	if in.ReferenceID == "" || in.Value == 0 || in.Buyer == (Buyer{}) {
		return nil, ErrValidation
	}

	log.Printf("Generating PIX (Inter) for %s - Value: %.2f", in.ReferenceID, in.Value)

	if g.cfg.MockMode || g.client == nil {
		log.Println("Using MOCK MODE (Inter)")
		return g.generateMock(ctx, in, "mock_mode")
	}

	result, err := g.generateLive(ctx, in)
	if err != nil {
		// Comportamento legado: qualquer falha no fluxo live vira uma
		// resposta mock bem-sucedida. A trilha de auditoria é o único
		// lugar onde a falha fica visível.
		log.Printf("Error generating PIX: %v", err)
		g.audit.Dispatch(audit.Event{
			Action:   "pix_mock_fallback",
			Entity:   "pix",
			EntityID: in.ReferenceID,
			Metadata: map[string]any{"error": err.Error()},
		})
		return g.generateMock(ctx, in, err.Error())
	}

	return result, nil
}

// --------------------------------------------------
// Fluxo live (OAuth + /cob)
// --------------------------------------------------

func (g *Gateway) generateLive(ctx context.Context, in ChargeInput) (*ChargeResult, error) {
	if g.cfg.Inter.PixKey == "" {
		return nil, fmt.Errorf("INTER_PIX_KEY not configured")
	}

	// O banco recusaria de qualquer forma; falhar aqui poupa a ida.
	if !validators.IsDocumentShapeValid(in.Buyer.Document) {
		return nil, fmt.Errorf("invalid buyer document")
	}

	token, err := g.client.Token(ctx)
	if err != nil {
		return nil, err
	}

	charge := ChargeRequest{
		Calendario: ChargeCalendar{Expiracao: chargeExpirationSeconds},
		Devedor: ChargeDebtor{
			CPF:  validators.NormalizeDocument(in.Buyer.Document),
			Nome: in.Buyer.FullName(),
		},
		Valor:              ChargeAmount{Original: fmt.Sprintf("%.2f", in.Value)},
		Chave:              g.cfg.Inter.PixKey,
		SolicitacaoPagador: "Pagamento " + in.ServiceName,
	}

	resp, err := g.client.CreateImmediateCharge(ctx, token, charge)
	if err != nil {
		return nil, err
	}

	service := in.ServiceName
	if service == "" {
		service = "Serviço Estética"
	}

	if err := g.persist(ctx, in, service, domain.ProviderInter, resp.TxID); err != nil {
		return nil, err
	}

	g.audit.Dispatch(audit.Event{
		Action:   "pix_generated",
		Entity:   "appointment",
		EntityID: in.ReferenceID,
		Metadata: map[string]any{"provider": domain.ProviderInter, "txid": resp.TxID},
	})

	return &ChargeResult{
		Code:     resp.PixCopiaECola,
		ImageURL: QRImageURL(resp.PixCopiaECola),
		TxID:     resp.TxID,
		Provider: domain.ProviderInter,
	}, nil
}

// --------------------------------------------------
// Fallback mock
// --------------------------------------------------

func (g *Gateway) generateMock(ctx context.Context, in ChargeInput, reason string) (*ChargeResult, error) {
	code := MockPixCode(in.Buyer.FirstName)
	txid := MockTxID(time.Now())

	service := in.ServiceName
	if service == "" {
		service = "Serviço (Mock)"
	}

	if err := g.persist(ctx, in, service, domain.ProviderInterMock, txid); err != nil {
		return nil, err
	}

	g.audit.Dispatch(audit.Event{
		Action:   "pix_generated",
		Entity:   "appointment",
		EntityID: in.ReferenceID,
		Metadata: map[string]any{
			"provider": domain.ProviderInterMock,
			"txid":     txid,
			"reason":   reason,
		},
	})

	return &ChargeResult{
		Code:     code,
		ImageURL: QRImageURL(code),
		TxID:     txid,
		Provider: domain.ProviderInterMock,
	}, nil
}

func (g *Gateway) persist(
	ctx context.Context,
	in ChargeInput,
	service string,
	provider domain.Provider,
	txid string,
) error {
	return g.store.Append(ctx, models.Appointment{
		ID:          in.ReferenceID,
		TxID:        txid,
		Date:        timezone.Now().Format(time.RFC3339),
		ClientName:  in.Buyer.FullName(),
		ClientEmail: in.Buyer.Email,
		Service:     service,
		Value:       in.Value,
		Status:      string(domain.StatusPending),
		Provider:    string(provider),
	})
}
