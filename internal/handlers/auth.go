package handlers

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"shopeasy_back_end/internal/accounts"
	"shopeasy_back_end/internal/models"
)

// ================== AUTH LOCALE ==================

// Signup crée un compte. La confirmation du mot de passe est vérifiée ICI,
// avant tout appel au store : un mismatch ne touche jamais le slot.
func (h *Handler) Signup(c *gin.Context) {
	var input struct {
		Name            string `json:"name"`
		Email           string `json:"email"`
		Phone           string `json:"phone"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Password != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Les mots de passe ne correspondent pas"})
		return
	}

	ctx := context.Background()
	users, err := h.Accounts.Load(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture des comptes"})
		return
	}

	users, err = accounts.Signup(users, input.Name, input.Email, input.Phone, input.Password)
	if errors.Is(err, accounts.ErrDuplicateAccount) {
		c.JSON(http.StatusConflict, gin.H{"error": "⚠️ Un compte existe déjà avec cet email ou ce téléphone"})
		return
	}

	if err := h.Accounts.Save(ctx, users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde des comptes"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "✅ Inscription réussie ! Veuillez vous connecter"})
}

// Login authentifie par email OU téléphone et retourne le token de session.
func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	users, err := h.Accounts.Load(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture des comptes"})
		return
	}

	user, err := accounts.Login(users, input.Identifier, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "❌ Identifiants de connexion invalides"})
		return
	}

	token := generateJWT(user)
	c.JSON(http.StatusOK, gin.H{
		"message": "✅ Bienvenue, " + user.Name + " !",
		"token":   token,
		"userId":  user.ID,
		"name":    user.Name,
		"email":   user.Email,
	})
}

// ResetPassword remplace le mot de passe du compte identifié par email ou
// téléphone. Même règle que Signup : le mismatch est rejeté avant le store.
func (h *Handler) ResetPassword(c *gin.Context) {
	var input struct {
		Identifier      string `json:"identifier"`
		NewPassword     string `json:"newPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.NewPassword != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "❌ Les mots de passe ne correspondent pas"})
		return
	}

	ctx := context.Background()
	users, err := h.Accounts.Load(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture des comptes"})
		return
	}

	users, err = accounts.ResetPassword(users, input.Identifier, input.NewPassword)
	if errors.Is(err, accounts.ErrAccountNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "⚠️ Aucun compte trouvé"})
		return
	}

	if err := h.Accounts.Save(ctx, users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde des comptes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "✅ Mot de passe réinitialisé ! Veuillez vous connecter"})
}

// PasswordStrength évalue la force d'un mot de passe, appelée à chaque
// frappe par le client.
func (h *Handler) PasswordStrength(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"strength": accounts.PasswordStrength(input.Password)})
}

// Logout vide le panier, comme la page vitrine le faisait à la déconnexion.
// Le token de session est simplement oublié côté client.
func (h *Handler) Logout(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	ctx := context.Background()
	pipe := h.Redis.Pipeline()
	pipe.Del(ctx, "cart:"+userID)
	pipe.Publish(ctx, "cart:"+userID, "cleared")
	if _, err := pipe.Exec(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "✅ Déconnexion réussie"})
}

// ================== UTILITAIRES ==================

func generateJWT(user models.User) string {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"name":    user.Name,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, _ := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	return tokenString
}
