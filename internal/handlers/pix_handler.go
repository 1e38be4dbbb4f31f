package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/estetica-agenda/internal/httperr"
	"github.com/BruksfildServices01/estetica-agenda/internal/pix"
)

type PixHandler struct {
	gateway *pix.Gateway
}

func NewPixHandler(gateway *pix.Gateway) *PixHandler {
	return &PixHandler{gateway: gateway}
}

// ======================================================
// REQUEST / RESPONSE
// ======================================================

type BuyerPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Document  string `json:"document"`
}

type GeneratePixRequest struct {
	Buyer       *BuyerPayload `json:"buyer"`
	Value       float64       `json:"value"`
	ReferenceID string        `json:"referenceId"`
	ServiceName string        `json:"serviceName"`
}

type QRCodePayload struct {
	Content string `json:"content"`
	Base64  string `json:"base64"`
}

type GeneratePixResponse struct {
	QRCode QRCodePayload `json:"qrcode"`
	TxID   string        `json:"txid"`
}

// ======================================================
// GENERATE
// ======================================================

func (h *PixHandler) Generate(c *gin.Context) {
	var req GeneratePixRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Buyer == nil {
		httperr.BadRequest(c, "Missing required fields")
		return
	}

	result, err := h.gateway.GenerateCharge(c.Request.Context(), pix.ChargeInput{
		Buyer: pix.Buyer{
			FirstName: req.Buyer.FirstName,
			LastName:  req.Buyer.LastName,
			Email:     req.Buyer.Email,
			Document:  req.Buyer.Document,
		},
		Value:       req.Value,
		ReferenceID: req.ReferenceID,
		ServiceName: req.ServiceName,
	})
	if err != nil {
		if errors.Is(err, pix.ErrValidation) {
			httperr.BadRequest(c, "Missing required fields")
			return
		}
		httperr.Internal(c, "Failed to generate PIX payment", err.Error())
		return
	}

	c.JSON(http.StatusOK, GeneratePixResponse{
		QRCode: QRCodePayload{
			Content: result.Code,
			Base64:  result.ImageURL,
		},
		TxID: result.TxID,
	})
}
