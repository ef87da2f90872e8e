package catalog_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"wander/internal/api/controllers"
	"wander/internal/infra"
	"wander/internal/repositories"
	"wander/internal/services"
)

var Module = fx.Provide(
	ProvideCatalogRepository,
	ProvideCatalogService,
	ProvideCatalogController)

// ProvideCatalogRepository selects the catalog backend from CATALOG_PROVIDER.
// The static in-memory tables are the default; "postgres" serves the same
// inventory from a seeded database.
func ProvideCatalogRepository() repositories.CatalogRepository {
	provider := getEnvWithDefault("CATALOG_PROVIDER", "static")

	log.Printf("Initializing %s catalog repository", provider)

	switch strings.ToLower(provider) {
	case "static":
		return repositories.NewStaticCatalogRepository()
	case "postgres":
		db := infra.InitPostgresql()
		repo, err := repositories.NewPostgresCatalogRepository(db)
		if err != nil {
			log.Fatalf("Failed to initialize postgres catalog: %v", err)
		}
		return repo
	default:
		log.Fatalf("Unsupported catalog provider: %s. Use 'static' or 'postgres'", provider)
		return nil
	}
}

func ProvideCatalogService(catalogRepo repositories.CatalogRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(catalogRepo)
}

func ProvideCatalogController(catalogService services.CatalogServiceInterface) *controllers.CatalogController {
	return controllers.NewCatalogController(catalogService)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
