package models

// User est un compte du magasin. Le mot de passe est stocké tel quel dans le
// slot Redis (aucun hachage) : c'est le comportement assumé de ce démonstrateur,
// à ne pas reproduire sur un vrai système.
type User struct {
	ID       string `json:"user_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
