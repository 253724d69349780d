package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"shopeasy_back_end/internal/cart"
	"shopeasy_back_end/internal/models"
)

const CartTTL = 30 * 24 * time.Hour // 30 jours

// loadCart relit le panier JSON de l'utilisateur depuis Redis. Clé absente ou
// illisible = panier vide.
func (h *Handler) loadCart(ctx context.Context, userID string) []models.CartItem {
	data, err := h.Redis.Get(ctx, "cart:"+userID).Result()
	if err != nil || data == "" {
		return []models.CartItem{}
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return []models.CartItem{}
	}
	return items
}

// saveCart réécrit le panier et publie la notification pub/sub pour la
// synchronisation WebSocket. Panier vide = clé supprimée.
func (h *Handler) saveCart(ctx context.Context, userID string, items []models.CartItem) error {
	key := "cart:" + userID
	pipe := h.Redis.Pipeline()
	if len(items) == 0 {
		pipe.Del(ctx, key)
	} else {
		jsonData, _ := json.Marshal(items)
		pipe.Set(ctx, key, jsonData, CartTTL)
	}
	pipe.Publish(ctx, key, "updated")
	_, err := pipe.Exec(ctx)
	return err
}

func (h *Handler) cartResponse(items []models.CartItem) gin.H {
	totals := cart.ComputeTotals(items, h.Catalog)
	return gin.H{
		"items": items,
		"count": totals.ItemCount,
		"total": totals.AmountDue,
	}
}

// GetCart retourne les lignes et les totaux recalculés sur le prix courant
// du catalogue.
func (h *Handler) GetCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	items := h.loadCart(context.Background(), userID)
	c.JSON(http.StatusOK, h.cartResponse(items))
}

// AddToCart ajoute une unité du produit : incrémente la ligne existante ou en
// ajoute une nouvelle en fin de panier.
func (h *Handler) AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	var input struct {
		ProductID int `json:"productId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if _, ok := h.Catalog.FindByID(input.ProductID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	ctx := context.Background()
	items := cart.Add(h.loadCart(ctx, userID), input.ProductID)

	if err := h.saveCart(ctx, userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	resp := h.cartResponse(items)
	resp["message"] = "✅ Produit ajouté au panier"
	c.JSON(http.StatusOK, resp)
}

// UpdateCartQuantity applique un delta entier quelconque à la ligne du
// produit. Quantité résultante ≤ 0 : la ligne disparaît. Produit absent du
// panier : le panier est retourné inchangé.
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var input struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := context.Background()
	items := cart.ChangeQuantity(h.loadCart(ctx, userID), productID, input.Delta)

	if err := h.saveCart(ctx, userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	resp := h.cartResponse(items)
	resp["message"] = "✅ Quantité mise à jour"
	c.JSON(http.StatusOK, resp)
}

// RemoveFromCart supprime la ligne du produit si elle existe.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	ctx := context.Background()
	items := cart.Remove(h.loadCart(ctx, userID), productID)

	if err := h.saveCart(ctx, userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	resp := h.cartResponse(items)
	resp["message"] = "✅ Produit supprimé du panier"
	c.JSON(http.StatusOK, resp)
}

// ClearCart vide le panier.
func (h *Handler) ClearCart(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"message": "✅ Panier vidé avec succès"})
}

// Checkout confirme la commande et vide le panier. Pas de paiement réel :
// la page vitrine se contentait d'un message de confirmation.
func (h *Handler) Checkout(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	ctx := context.Background()
	items := h.loadCart(ctx, userID)
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}

	totals := cart.ComputeTotals(items, h.Catalog)

	pipe := h.Redis.Pipeline()
	pipe.Del(ctx, "cart:"+userID)
	pipe.Publish(ctx, "cart:"+userID, "cleared")
	if _, err := pipe.Exec(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la commande"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "✅ Commande passée avec succès !",
		"count":   totals.ItemCount,
		"total":   totals.AmountDue,
	})
}
