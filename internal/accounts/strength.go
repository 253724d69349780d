package accounts

import "regexp"

// Strength est la classification affichée sous le champ mot de passe,
// recalculée à chaque frappe côté client.
type Strength string

const (
	Weak   Strength = "Weak"
	Medium Strength = "Medium"
	Strong Strength = "Strong"
)

var (
	reUpper   = regexp.MustCompile(`[A-Z]`)
	reDigit   = regexp.MustCompile(`\d`)
	reSpecial = regexp.MustCompile(`\W`)
)

// PasswordStrength : Strong exige plus de 7 caractères, une majuscule, un
// chiffre et un caractère spécial ; Medium plus de 5 caractères, une
// majuscule et un chiffre ; sinon Weak.
func PasswordStrength(password string) Strength {
	hasUpper := reUpper.MatchString(password)
	hasDigit := reDigit.MatchString(password)

	if len(password) > 7 && hasUpper && hasDigit && reSpecial.MatchString(password) {
		return Strong
	}
	if len(password) > 5 && hasUpper && hasDigit {
		return Medium
	}
	return Weak
}
