// Package docs registra la especificación OpenAPI del gateway en swag y expone
// la ruta del swagger.json que sirve la UI en /docs.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

// FilePath ruta relativa al directorio de trabajo del binario.
const FilePath = "./docs/swagger.json"

//go:embed swagger.json
var docTemplate string

// SwaggerInfo metadatos exportados de la especificación.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "WMS Gateway API",
	Description:      "Adaptador HTTP sobre la API REST del WMS: consultas, reposición y KPIs de almacén.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
