// Package output validates and serializes converted documents.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/agegrader/agestd-go/pkg/agestd/models"
)

var validate = validator.New()

// ToJSON validates doc's metadata and renders the document as 2-space
// indented JSON.
func ToJSON(doc *models.Document) ([]byte, error) {
	if err := validate.Struct(doc.Meta); err != nil {
		return nil, fmt.Errorf("invalid document metadata: %w", err)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// WriteDocument writes doc to path as UTF-8 JSON text.
func WriteDocument(path string, doc *models.Document) error {
	data, err := ToJSON(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
