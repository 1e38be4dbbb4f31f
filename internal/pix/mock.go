package pix

import (
	"net/url"
	"strconv"
	"time"
)

const qrChartURL = "https://chart.googleapis.com/chart?chs=200x200&cht=qr&chl="

// MockPixCode monta um copia-e-cola EMV estruturalmente válido mas fixo:
// só o nome do recebedor varia. O valor cobrado NÃO entra no código — é a
// carga legada, mantida para o frontend renderizar algo escaneável.
func MockPixCode(firstName string) string {
	return "00020126580014BR.GOV.BCB.PIX0136123e4567-e89b-12d3-a456-426614174000520400005303986540510.005802BR5913" +
		firstName +
		"6008Brasilia62070503***6304E2CA"
}

// QRImageURL delega a renderização do QR a um serviço público de gráficos.
func QRImageURL(code string) string {
	return qrChartURL + url.QueryEscape(code)
}

func MockTxID(now time.Time) string {
	return "MOCK-TXID-" + strconv.FormatInt(now.UnixMilli(), 10)
}
