package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	// StatusPending: cobrança PIX emitida, pagamento ainda não confirmado.
	// Não existe webhook de confirmação — o registro permanece pendente.
	StatusPending Status = "pending"

	// StatusConfirmed: agendamento manual, pago no local ou já acertado.
	StatusConfirmed Status = "confirmed"
)

// ===============================
// Payment Provider
// ===============================

type Provider string

const (
	ProviderInter     Provider = "inter"
	ProviderInterMock Provider = "inter_mock"
)
