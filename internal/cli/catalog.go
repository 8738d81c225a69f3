package cli

import (
	"fmt"
	"io"
	"iter"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/Juan171109/automation-task/internal/models"
)

// Catalog output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

type catalogRow struct {
	Code          string `json:"code" yaml:"code"`
	Description   string `json:"description" yaml:"description"`
	Price         string `json:"price" yaml:"price"`
	UnitOfMeasure string `json:"unitOfMeasure" yaml:"unitOfMeasure"`
	AvailableQty  int    `json:"availableQty" yaml:"availableQty"`
	ImageRef      string `json:"imageRef" yaml:"imageRef"`
}

// RunCatalog writes the products yielded by a catalog search in the given
// format. The YAML output can be fed back as a CATALOG_FILE.
func RunCatalog(w io.Writer, products iter.Seq[models.Product], format string) error {
	rows := []catalogRow{}
	for p := range products {
		rows = append(rows, catalogRow{
			Code:          p.Code,
			Description:   p.Description,
			Price:         p.Price.StringFixed(2),
			UnitOfMeasure: p.UnitOfMeasure,
			AvailableQty:  p.AvailableQty,
			ImageRef:      p.ImageRef,
		})
	}

	switch format {
	case "", FormatTable:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CODE\tDESCRIPTION\tPRICE\tUOM\tQTY")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t$%s\t%s\t%d\n", r.Code, r.Description, r.Price, r.UnitOfMeasure, r.AvailableQty)
		}
		return tw.Flush()
	case FormatJSON:
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string][]catalogRow{"products": rows}); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
