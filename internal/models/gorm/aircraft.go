package gorm

// Aircraft maps the avion table.
type Aircraft struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Modele    string  `gorm:"column:modele;size:100;not null"`
	Capacite  int     `gorm:"column:capacite;not null;check:capacite > 0"`
	Compagnie *string `gorm:"column:compagnie;size:100"`
	Statut    string  `gorm:"column:statut;size:20;not null;default:disponible"`
}

func (Aircraft) TableName() string {
	return "avion"
}
