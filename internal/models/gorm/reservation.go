package gorm

import "time"

// Reservation maps the reservation table.
type Reservation struct {
	ID              int64     `gorm:"column:id;primaryKey;autoIncrement"`
	DateReservation time.Time `gorm:"column:date_reservation;autoCreateTime"`
	Statut          string    `gorm:"column:statut;size:20;not null;default:EN_ATTENTE"`
	UtilisateurID   int64     `gorm:"column:utilisateur_id;not null"`
	VolID           int64     `gorm:"column:vol_id;not null"`
	NombrePlace     int       `gorm:"column:nombre_place"`
	TotalPayer      float64   `gorm:"column:total_payer;type:numeric(10,2)"`

	Utilisateur *User   `gorm:"foreignKey:UtilisateurID;constraint:OnDelete:CASCADE"`
	Vol         *Flight `gorm:"foreignKey:VolID;constraint:OnDelete:CASCADE"`
}

func (Reservation) TableName() string {
	return "reservation"
}
