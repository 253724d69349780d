package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"shopeasy_back_end/internal/models"
)

// DefaultURL est l'endpoint public Fake Store : liste complète, sans
// authentification ni pagination.
const DefaultURL = "https://fakestoreapi.com/products"

// Store détient le catalogue en mémoire. Il est rempli une seule fois au
// démarrage, avant que le serveur n'accepte des requêtes, puis uniquement lu :
// pas de verrou nécessaire.
type Store struct {
	products []models.Product
	loaded   bool
}

func NewStore() *Store {
	return &Store{}
}

// NewStoreFromProducts construit un magasin déjà chargé, sans passer par
// l'API (tests, données de démonstration).
func NewStoreFromProducts(products []models.Product) *Store {
	return &Store{products: products, loaded: true}
}

// LoadFromAPI effectue l'unique fetch du catalogue. Pas de retry ni de
// timeout : un échec laisse le magasin en mode dégradé jusqu'au prochain
// redémarrage du serveur.
func (s *Store) LoadFromAPI(url string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("échec du chargement du catalogue: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("échec du chargement du catalogue: statut %d", resp.StatusCode)
	}

	var products []models.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return fmt.Errorf("échec du décodage du catalogue: %w", err)
	}

	s.products = products
	s.loaded = true
	return nil
}

// Ready indique si le catalogue a été chargé avec succès.
func (s *Store) Ready() bool {
	return s.loaded
}

// Products retourne la liste complète, dans l'ordre renvoyé par l'API.
func (s *Store) Products() []models.Product {
	return s.products
}

// FindByID cherche un produit par identifiant. Un id inconnu n'est jamais
// fatal : l'appelant décide (404, ligne de panier ignorée, etc.).
func (s *Store) FindByID(id int) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Categories retourne "all" suivi de chaque catégorie dans son ordre de
// première apparition, sans doublon.
func Categories(products []models.Product) []string {
	categories := []string{"all"}
	seen := make(map[string]bool)
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// FilterByTitle garde les produits dont le titre contient le terme, sans
// tenir compte de la casse.
func FilterByTitle(products []models.Product, term string) []models.Product {
	term = strings.ToLower(term)
	filtered := []models.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), term) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// FilterByCategory garde les produits de la catégorie exacte. La sentinelle
// "all" court-circuite le filtre et retourne la liste d'entrée telle quelle.
func FilterByCategory(products []models.Product, category string) []models.Product {
	if category == "all" {
		return products
	}
	filtered := []models.Product{}
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
