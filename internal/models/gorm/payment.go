package gorm

import "time"

// PaymentMode maps the modepaiement table.
type PaymentMode struct {
	ID      int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Libelle string `gorm:"column:libelle;size:50;uniqueIndex;not null"`
}

func (PaymentMode) TableName() string {
	return "modepaiement"
}

// Payment maps the paiement table. A reservation can be paid at most once,
// enforced by the unique index on reservation_id.
type Payment struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Montant        float64   `gorm:"column:montant;type:numeric(10,2);not null;check:montant >= 0"`
	DatePaiement   time.Time `gorm:"column:date_paiement;autoCreateTime"`
	ReservationID  int64     `gorm:"column:reservation_id;uniqueIndex"`
	ModePaiementID int64     `gorm:"column:mode_paiement_id;not null"`
	PhoneNumber    *string   `gorm:"column:phone_number;size:20"`

	Reservation  *Reservation `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE"`
	ModePaiement *PaymentMode `gorm:"foreignKey:ModePaiementID"`
}

func (Payment) TableName() string {
	return "paiement"
}
