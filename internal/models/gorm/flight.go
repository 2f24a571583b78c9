package gorm

// Flight maps the vol table. Dates and times are kept as ISO strings
// ("2006-01-02" / "15:04") so the wire format matches the columns exactly
// and ordering stays lexicographic across SQL dialects.
type Flight struct {
	ID           int64   `gorm:"column:id;primaryKey;autoIncrement"`
	VilleDepart  string  `gorm:"column:ville_depart;size:100;not null"`
	VilleArrivee string  `gorm:"column:ville_arrivee;size:100;not null"`
	DateDepart   string  `gorm:"column:date_depart;size:10;not null"`
	HeureDepart  string  `gorm:"column:heure_depart;size:8;not null"`
	DateArrivee  *string `gorm:"column:date_arrivee;size:10"`
	HeureArrivee *string `gorm:"column:heure_arrivee;size:8"`
	Prix         float64 `gorm:"column:prix;type:numeric(10,2);not null;check:prix >= 0"`
	Statut       string  `gorm:"column:statut;size:20;not null;default:actif"`
	AvionID      int64   `gorm:"column:avion_id;not null"`

	Avion *Aircraft `gorm:"foreignKey:AvionID;constraint:OnDelete:CASCADE"`
}

func (Flight) TableName() string {
	return "vol"
}
