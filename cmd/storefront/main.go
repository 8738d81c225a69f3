package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Juan171109/automation-task/internal/catalog"
	internalcli "github.com/Juan171109/automation-task/internal/cli"
	"github.com/Juan171109/automation-task/internal/config"
	"github.com/Juan171109/automation-task/internal/database"
	"github.com/Juan171109/automation-task/internal/guard"
	"github.com/Juan171109/automation-task/internal/handlers"
	"github.com/Juan171109/automation-task/internal/logging"
	"github.com/Juan171109/automation-task/internal/repository"
	"github.com/Juan171109/automation-task/internal/services"
	"github.com/Juan171109/automation-task/internal/storage"
)

var version = "0.1.0"

// loadCatalog returns the configured catalog or the built-in seed
func loadCatalog(shopConfig *config.ShopConfig) (*catalog.Catalog, error) {
	if shopConfig.CatalogFile == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(shopConfig.CatalogFile)
}

// openBackend opens the client storage backend selected by STORAGE_DRIVER
func openBackend(storageConfig *config.StorageConfig) (storage.Backend, func(), error) {
	switch storageConfig.Driver {
	case config.StorageMemory:
		backend := storage.NewMemoryBackend()
		return backend, func() { backend.Close() }, nil

	case config.StorageRedis:
		backend, err := storage.NewRedisBackend(storageConfig.RedisURL, storageConfig.RedisPrefix, storageConfig.RedisTTL)
		if err != nil {
			return nil, nil, err
		}
		return backend, func() { backend.Close() }, nil

	case config.StoragePostgres:
		pgConfig, err := config.LoadPostgresConfig(os.Getenv)
		if err != nil {
			return nil, nil, fmt.Errorf("missing required Postgres configuration: %w", err)
		}
		if err := database.Connect(pgConfig); err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		zap.S().Info("Connected to database successfully")

		if err := database.RunMigrations(); err != nil {
			database.Close()
			return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		return repository.NewClientStorageRepository(), func() { database.Close() }, nil

	default:
		backend, err := storage.OpenBolt(storageConfig.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return backend, func() { backend.Close() }, nil
	}
}

// buildServerDependencies creates all dependencies needed for the server
func buildServerDependencies(backend storage.Backend) (internalcli.ServerDependencies, error) {
	var deps internalcli.ServerDependencies

	deps.ServerConfig = config.LoadServerConfig(os.Getenv)

	authConfig, err := config.LoadAuthConfig(os.Getenv)
	if err != nil {
		return deps, fmt.Errorf("missing required auth configuration: %w", err)
	}

	shopConfig, err := config.LoadShopConfig(os.Getenv)
	if err != nil {
		return deps, err
	}

	products, err := loadCatalog(shopConfig)
	if err != nil {
		return deps, fmt.Errorf("failed to load catalog: %w", err)
	}

	// Create service layer
	credentials, err := services.NewStaticCredentialStore(authConfig.Users, bcrypt.DefaultCost)
	if err != nil {
		return deps, err
	}
	storefront := services.NewStorefront(backend, products, credentials, services.StorefrontOptions{
		ReAddPolicy:  shopConfig.ReAddPolicy,
		TrimUsername: authConfig.TrimUsername,
	})
	clients := handlers.NewClients(handlers.NewCookieStore([]byte(authConfig.SessionSecret), authConfig.SecureCookies), storefront)

	templates := deps.ServerConfig.TemplatesDir

	loginHandler, err := handlers.NewLoginHandler(filepath.Join(templates, "login.html"), clients)
	if err != nil {
		return deps, fmt.Errorf("failed to create login handler: %w", err)
	}
	deps.LoginHandler = loginHandler

	shopHandler, err := handlers.NewShopHandler(filepath.Join(templates, "shop.html"), products, clients)
	if err != nil {
		return deps, fmt.Errorf("failed to create shop handler: %w", err)
	}
	deps.ShopHandler = shopHandler

	basketHandler, err := handlers.NewBasketHandler(filepath.Join(templates, "basket.html"), clients)
	if err != nil {
		return deps, fmt.Errorf("failed to create basket handler: %w", err)
	}
	deps.BasketHandler = basketHandler

	deps.BasketAddHandler = handlers.NewBasketAddHandler(clients)
	deps.BasketClearHandler = handlers.NewBasketClearHandler(clients)
	deps.LogoutHandler = handlers.NewLogoutHandler(clients)
	deps.BasketAPIHandler = handlers.NewBasketAPIHandler(clients)

	deps.Guard = guard.New([]string{"/index.html", "/"}, "/shop.html",
		"/shop.html", "/basket.html", "/basket/add", "/basket/clear")
	deps.StateOf = clients.State

	zap.S().Infow("storefront configured",
		"products", products.Len(),
		"accounts", len(authConfig.Users),
		"readdPolicy", shopConfig.ReAddPolicy,
	)
	return deps, nil
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the storefront web server",
		Action: func(c *cli.Context) error {
			storageConfig, err := config.LoadStorageConfig(os.Getenv)
			if err != nil {
				return err
			}

			backend, closeBackend, err := openBackend(storageConfig)
			if err != nil {
				return fmt.Errorf("failed to open %s storage: %w", storageConfig.Driver, err)
			}
			defer closeBackend()
			zap.S().Infow("client storage ready", "driver", storageConfig.Driver)

			deps, err := buildServerDependencies(backend)
			if err != nil {
				return err
			}

			return internalcli.RunServe(deps)
		},
	}
}

// CatalogCommand returns the catalog command
func CatalogCommand() *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "List or search the product catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "search",
				Aliases: []string{"q"},
				Usage:   "filter by product code or description",
			},
			&cli.StringFlag{
				Name:  "format",
				Value: internalcli.FormatTable,
				Usage: "output format: table, json or yaml",
			},
		},
		Action: func(c *cli.Context) error {
			shopConfig, err := config.LoadShopConfig(os.Getenv)
			if err != nil {
				return err
			}
			products, err := loadCatalog(shopConfig)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}
			return internalcli.RunCatalog(c.App.Writer, products.Search(c.String("search")), c.String("format"))
		},
	}
}

func main() {
	// Load environment variables from .env file
	envErr := godotenv.Load()

	logConfig, err := config.LoadLogConfig(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	flush, err := logging.Setup(logConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer flush()

	if envErr != nil {
		zap.S().Debug(".env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "storefront",
		Usage:   "Demo storefront with session-gated catalog and basket",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(),
			CatalogCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		zap.S().Errorw("command failed", "error", err)
		flush()
		os.Exit(1)
	}
}
