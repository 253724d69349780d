package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopeasy_back_end/internal/catalog"
)

// GetProducts liste le catalogue, avec recherche par titre (?search=) et
// filtre par catégorie (?category=) composables, comme sur la page vitrine.
func (h *Handler) GetProducts(c *gin.Context) {
	if !h.Catalog.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "⚠️ Catalogue indisponible — relancez le serveur pour réessayer"})
		return
	}

	list := h.Catalog.Products()
	if term := c.Query("search"); term != "" {
		list = catalog.FilterByTitle(list, term)
	}
	if cat := c.Query("category"); cat != "" {
		list = catalog.FilterByCategory(list, cat)
	}

	c.JSON(http.StatusOK, list)
}

// GetProduct retourne la fiche détaillée d'un produit.
func (h *Handler) GetProduct(c *gin.Context) {
	if !h.Catalog.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "⚠️ Catalogue indisponible — relancez le serveur pour réessayer"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	product, ok := h.Catalog.FindByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// GetCategories retourne les catégories distinctes, "all" en tête, dans
// l'ordre de première apparition du catalogue.
func (h *Handler) GetCategories(c *gin.Context) {
	if !h.Catalog.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "⚠️ Catalogue indisponible — relancez le serveur pour réessayer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": catalog.Categories(h.Catalog.Products())})
}
