package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Juan171109/automation-task/internal/models"
)

// productEntry is the on-disk shape of one catalog product
type productEntry struct {
	Code          string `yaml:"code"`
	Description   string `yaml:"description"`
	Price         string `yaml:"price"`
	UnitOfMeasure string `yaml:"unitOfMeasure"`
	AvailableQty  int    `yaml:"availableQty"`
	ImageRef      string `yaml:"imageRef"`
}

type catalogFile struct {
	Products []productEntry `yaml:"products"`
}

// LoadFile reads a YAML catalog seed from path
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads a YAML catalog seed
func Load(r io.Reader) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	products := make([]models.Product, 0, len(file.Products))
	for _, e := range file.Products {
		p, err := models.NewProduct(e.Code, e.Description, e.Price, e.UnitOfMeasure, e.AvailableQty, e.ImageRef)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return New(products)
}

// Default returns the built-in six product seed
func Default() *Catalog {
	seed := []struct {
		code, description, price, uom string
		qty                           int
	}{
		{"P001", "Fresh Apples", "5.99", "kg", 100},
		{"P002", "Organic Bananas", "3.49", "bunch", 80},
		{"P003", "Whole Milk", "2.49", "litre", 60},
		{"P004", "Free Range Eggs", "4.29", "dozen", 40},
		{"P005", "Sourdough Bread", "3.99", "loaf", 25},
		{"P006", "Cheddar Cheese", "6.75", "block", 30},
	}

	products := make([]models.Product, 0, len(seed))
	for _, s := range seed {
		p, err := models.NewProduct(s.code, s.description, s.price, s.uom, s.qty, "/static/images/product-placeholder.svg")
		if err != nil {
			panic(err)
		}
		products = append(products, p)
	}

	c, err := New(products)
	if err != nil {
		panic(err)
	}
	return c
}
