package entities

// User is a registered participant. L'email est l'unique identifiant de
// vérification; il est stocké normalisé (minuscules).
type User struct {
	ID     int64
	Email  string
	Role   string
	Status string
}
