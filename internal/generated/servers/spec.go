package servers

import (
	_ "embed"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var rawSpec []byte

var (
	specOnce sync.Once
	specDoc  *openapi3.T
	specJSON []byte
	specErr  error
)

// GetSwagger returns the parsed OpenAPI document the routes were generated
// from. The document is loaded once and shared, so callers must not modify it.
func GetSwagger() (*openapi3.T, error) {
	specOnce.Do(func() {
		doc, err := openapi3.NewLoader().LoadFromData(rawSpec)
		if err != nil {
			specErr = err
			return
		}
		specJSON, specErr = doc.MarshalJSON()
		specDoc = doc
	})
	return specDoc, specErr
}

// RawSpec returns the embedded document as written.
func RawSpec() []byte {
	return rawSpec
}

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string {
	if _, err := GetSwagger(); err != nil {
		return "{}"
	}
	return string(specJSON)
}

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}
