package accounts

import (
	"errors"

	"github.com/google/uuid"

	"shopeasy_back_end/internal/models"
)

// Erreurs de validation utilisateur : toujours affichées, jamais fatales.
var (
	ErrDuplicateAccount   = errors.New("un compte existe déjà avec cet email ou ce téléphone")
	ErrInvalidCredentials = errors.New("identifiants de connexion invalides")
	ErrAccountNotFound    = errors.New("aucun compte trouvé")
)

// Signup ajoute un compte à la liste. Unicité vérifiée sur l'email OU le
// téléphone : deux comptes ne peuvent partager ni l'un ni l'autre. Le mot de
// passe est conservé tel quel. La persistance de la liste retournée reste à
// la charge de l'appelant.
func Signup(users []models.User, name, email, phone, password string) ([]models.User, error) {
	for _, u := range users {
		if u.Email == email || u.Phone == phone {
			return nil, ErrDuplicateAccount
		}
	}
	user := models.User{
		ID:       uuid.NewString(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: password,
	}
	return append(users, user), nil
}

// Login authentifie par email ou téléphone, mot de passe comparé à
// l'identique (aucune normalisation).
func Login(users []models.User, identifier, password string) (models.User, error) {
	for _, u := range users {
		if (u.Email == identifier || u.Phone == identifier) && u.Password == password {
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// ResetPassword remplace le mot de passe du compte correspondant à
// l'identifiant (email ou téléphone). Tous les autres champs et tous les
// autres comptes restent inchangés.
func ResetPassword(users []models.User, identifier, newPassword string) ([]models.User, error) {
	for i := range users {
		if users[i].Email == identifier || users[i].Phone == identifier {
			users[i].Password = newPassword
			return users, nil
		}
	}
	return nil, ErrAccountNotFound
}
