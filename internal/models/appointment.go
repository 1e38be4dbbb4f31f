package models

import "time"

// Appointment é o único registro persistido. Os nomes JSON seguem o contrato
// consumido pelo frontend (camelCase), então não mexer sem versionar a API.
type Appointment struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	Date        string  `gorm:"size:40" json:"date"`
	ClientName  string  `gorm:"size:100" json:"clientName"`
	ClientEmail string  `gorm:"size:100" json:"clientEmail"`
	Service     string  `gorm:"size:100" json:"service"`
	Value       float64 `json:"value"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Observation string `gorm:"size:255" json:"observation,omitempty"`

	// Presentes apenas em registros originados de cobrança PIX.
	Provider string `gorm:"size:20" json:"provider,omitempty"`
	TxID     string `gorm:"size:64" json:"txid,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
