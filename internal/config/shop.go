package config

import (
	"github.com/Juan171109/automation-task/internal/models"
)

// ShopConfig holds catalog and basket behaviour settings
type ShopConfig struct {
	CatalogFile string
	ReAddPolicy models.ReAddPolicy
}

// LoadShopConfig loads shop configuration from environment variables
func LoadShopConfig(getenv func(string) string) (*ShopConfig, error) {
	policy, err := models.ParseReAddPolicy(getenv("BASKET_READD_POLICY"))
	if err != nil {
		return nil, err
	}

	return &ShopConfig{
		CatalogFile: getenv("CATALOG_FILE"),
		ReAddPolicy: policy,
	}, nil
}
