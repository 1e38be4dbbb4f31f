package pix

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BruksfildServices01/estetica-agenda/internal/config"
)

const oauthScope = "cob.write cob.read pix.write pix.read"

// Client fala com a API PIX do Banco Inter: OAuth client_credentials sobre
// canal mTLS e criação de cobrança imediata (/cob).
type Client struct {
	cfg   config.InterConfig
	http  *http.Client
	cache TokenCache
}

// NewClient monta o canal mTLS a partir do par certificado/chave. Erro aqui
// significa que o modo live está indisponível — o chamador cai para mock.
func NewClient(cfg config.InterConfig, cache TokenCache) (*Client, error) {
	cert, err := tls.LoadX509KeyPair(cfg.CertPath, cfg.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("load inter certificate: %w", err)
	}

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			Certificates: []tls.Certificate{cert},
			// A cadeia do sandbox do Inter nem sempre fecha; cuidado em prod.
			InsecureSkipVerify: true,
		},
	}

	return &Client{
		cfg:   cfg,
		http:  &http.Client{Transport: transport},
		cache: cache,
	}, nil
}

// NewClientWithHTTPClient injeta o transporte, usado nos testes.
func NewClientWithHTTPClient(cfg config.InterConfig, hc *http.Client, cache TokenCache) *Client {
	return &Client{cfg: cfg, http: hc, cache: cache}
}

// --------------------------------------------------
// OAuth
// --------------------------------------------------

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Token devolve um bearer válido, reaproveitando o cache enquanto não
// expira. A margem de 60s evita usar um token no fim da vida.
func (c *Client) Token(ctx context.Context) (string, error) {
	if c.cache != nil {
		if token, ok := c.cache.Get(ctx); ok {
			return token, nil
		}
	}

	form := url.Values{}
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("grant_type", "client_credentials")
	form.Set("scope", oauthScope)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.cfg.AuthURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("inter token request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("inter token request: status %d: %s", resp.StatusCode, body)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("inter token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("inter token response: empty access_token")
	}

	if c.cache != nil && tr.ExpiresIn > 60 {
		c.cache.Set(ctx, tr.AccessToken, time.Duration(tr.ExpiresIn-60)*time.Second)
	}

	return tr.AccessToken, nil
}

// --------------------------------------------------
// Cobrança imediata
// --------------------------------------------------

type ChargeCalendar struct {
	Expiracao int `json:"expiracao"`
}

type ChargeDebtor struct {
	CPF  string `json:"cpf"`
	Nome string `json:"nome"`
}

type ChargeAmount struct {
	Original string `json:"original"`
}

type ChargeRequest struct {
	Calendario         ChargeCalendar `json:"calendario"`
	Devedor            ChargeDebtor   `json:"devedor"`
	Valor              ChargeAmount   `json:"valor"`
	Chave              string         `json:"chave"`
	SolicitacaoPagador string         `json:"solicitacaoPagador"`
}

type ChargeResponse struct {
	TxID          string `json:"txid"`
	PixCopiaECola string `json:"pixCopiaECola"`
}

func (c *Client) CreateImmediateCharge(
	ctx context.Context,
	token string,
	charge ChargeRequest,
) (*ChargeResponse, error) {

	payload, err := json.Marshal(charge)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.cfg.APIURL+"/cob",
		strings.NewReader(string(payload)),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inter charge request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("inter charge request: status %d: %s", resp.StatusCode, body)
	}

	var cr ChargeResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return nil, fmt.Errorf("inter charge response: %w", err)
	}
	if cr.TxID == "" || cr.PixCopiaECola == "" {
		return nil, fmt.Errorf("inter charge response: missing txid or pixCopiaECola")
	}

	return &cr, nil
}
