package cart

import (
	"math"

	"shopeasy_back_end/internal/catalog"
	"shopeasy_back_end/internal/models"
)

// Fonctions pures sur les lignes de panier : les handlers se chargent de la
// lecture/écriture Redis, ici on ne manipule que des slices.

// Add incrémente la quantité si une ligne existe déjà pour ce produit, sinon
// ajoute une nouvelle ligne en fin de panier. L'ordre des lignes existantes
// est préservé.
func Add(items []models.CartItem, productID int) []models.CartItem {
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity++
			return items
		}
	}
	return append(items, models.CartItem{ProductID: productID, Quantity: 1})
}

// ChangeQuantity applique un delta arbitraire à la ligne du produit. Si la
// quantité résultante tombe à 0 ou moins, la ligne est supprimée (jamais
// bornée à 0). Produit absent du panier : aucune modification.
func ChangeQuantity(items []models.CartItem, productID, delta int) []models.CartItem {
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += delta
			if items[i].Quantity <= 0 {
				return append(items[:i], items[i+1:]...)
			}
			return items
		}
	}
	return items
}

// Remove supprime la ligne du produit si elle existe.
func Remove(items []models.CartItem, productID int) []models.CartItem {
	filtered := []models.CartItem{}
	for _, item := range items {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Totals est le récapitulatif affiché dans l'en-tête du magasin.
type Totals struct {
	ItemCount int     `json:"count"`
	AmountDue float64 `json:"total"`
}

// ComputeTotals recalcule le total sur le prix COURANT du catalogue, jamais
// sur un prix copié dans le panier. L'accumulation se fait en centimes
// entiers pour éviter la dérive flottante sur beaucoup de lignes ; une ligne
// dont le produit a disparu du catalogue compte dans les quantités mais ne
// contribue rien au montant.
func ComputeTotals(items []models.CartItem, store *catalog.Store) Totals {
	var count int
	var cents int64
	for _, item := range items {
		count += item.Quantity
		if p, ok := store.FindByID(item.ProductID); ok {
			cents += int64(math.Round(p.Price*100)) * int64(item.Quantity)
		}
	}
	return Totals{ItemCount: count, AmountDue: float64(cents) / 100}
}
