package gorm

// User maps the utilisateur table. Column names stay in French to match
// the production schema.
type User struct {
	ID           int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Nom          string  `gorm:"column:nom;size:100;not null"`
	Email        string  `gorm:"column:email;size:100;uniqueIndex;not null"`
	PasswordHash string  `gorm:"column:mot_de_passe;size:255;not null"`
	Role         string  `gorm:"column:role;size:50;not null;default:client"`
	Status       *string `gorm:"column:status;size:50"`
	Avatar       []byte  `gorm:"column:avatar"`
	AvatarMime   *string `gorm:"column:avatar_mime;size:50"`
}

func (User) TableName() string {
	return "utilisateur"
}
