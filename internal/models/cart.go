package models

// CartItem référence un produit par son identifiant : le prix n'est jamais
// copié dans le panier, les totaux sont recalculés sur le prix courant du
// catalogue. Invariant : au plus une ligne par produit, quantité ≥ 1.
type CartItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}
