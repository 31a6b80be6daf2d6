// Package docs registra el documento OpenAPI servido en /swagger/*.
// Regenerar con: swag init -g cmd/api/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/cats": {
            "get": {
                "tags": ["cats"],
                "summary": "Listar mis gatos",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/cats.catResponse"}}},
                    "303": {"description": "redirect a /accounts/login si no hay sesión"}
                }
            }
        },
        "/cats/create": {
            "post": {
                "tags": ["cats"],
                "summary": "Crear gato",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"type": "string", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "name": "breed", "in": "formData", "required": true},
                    {"type": "string", "name": "description", "in": "formData"},
                    {"type": "integer", "name": "age", "in": "formData"}
                ],
                "responses": {
                    "303": {"description": "redirect a /cats/{catID}"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/web.ErrorResponse"}}
                }
            }
        },
        "/cats/{catID}": {
            "get": {
                "tags": ["cats"],
                "summary": "Detalle de un gato",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "catID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "no existe o no es tuyo", "schema": {"$ref": "#/definitions/web.ErrorResponse"}}
                }
            }
        },
        "/cats/{catID}/update": {
            "post": {
                "tags": ["cats"],
                "summary": "Editar gato",
                "parameters": [{"type": "string", "name": "catID", "in": "path", "required": true}],
                "responses": {"303": {"description": "redirect a /cats/{catID}"}}
            }
        },
        "/cats/{catID}/delete": {
            "post": {
                "tags": ["cats"],
                "summary": "Borrar gato",
                "parameters": [{"type": "string", "name": "catID", "in": "path", "required": true}],
                "responses": {"303": {"description": "redirect a /cats"}}
            }
        },
        "/cats/{catID}/add_feeding": {
            "post": {
                "tags": ["feedings"],
                "summary": "Registrar una comida",
                "consumes": ["application/x-www-form-urlencoded"],
                "parameters": [
                    {"type": "string", "name": "catID", "in": "path", "required": true},
                    {"type": "string", "name": "date", "in": "formData", "required": true},
                    {"type": "string", "name": "meal", "in": "formData", "required": true, "enum": ["B", "L", "D"]}
                ],
                "responses": {
                    "303": {"description": "redirect a /cats/{catID}"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/web.ErrorResponse"}}
                }
            }
        },
        "/cats/{catID}/add_photo": {
            "post": {
                "tags": ["photos"],
                "summary": "Subir foto de un gato",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"type": "string", "name": "catID", "in": "path", "required": true},
                    {"type": "file", "name": "photo-file", "in": "formData"}
                ],
                "responses": {"303": {"description": "redirect a /cats/{catID}"}}
            }
        },
        "/cats/{catID}/assoc_toy/{toyID}": {
            "post": {
                "tags": ["associations"],
                "summary": "Dar un juguete a un gato",
                "parameters": [
                    {"type": "string", "name": "catID", "in": "path", "required": true},
                    {"type": "string", "name": "toyID", "in": "path", "required": true}
                ],
                "responses": {"303": {"description": "redirect a /cats/{catID}"}}
            }
        },
        "/cats/{catID}/assoc_toy/{toyID}/remove": {
            "post": {
                "tags": ["associations"],
                "summary": "Quitar un juguete a un gato",
                "parameters": [
                    {"type": "string", "name": "catID", "in": "path", "required": true},
                    {"type": "string", "name": "toyID", "in": "path", "required": true}
                ],
                "responses": {"303": {"description": "redirect a /cats/{catID}"}}
            }
        },
        "/toys": {
            "get": {
                "tags": ["toys"],
                "summary": "Listar juguetes",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/toys/create": {
            "post": {
                "tags": ["toys"],
                "summary": "Crear juguete",
                "parameters": [
                    {"type": "string", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "name": "color", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "redirect a /toys/{toyID}"}}
            }
        },
        "/toys/{toyID}/delete": {
            "post": {
                "tags": ["toys"],
                "summary": "Borrar juguete",
                "parameters": [{"type": "string", "name": "toyID", "in": "path", "required": true}],
                "responses": {"303": {"description": "redirect a /toys"}}
            }
        },
        "/accounts/signup": {
            "post": {
                "tags": ["accounts"],
                "summary": "Crear cuenta",
                "parameters": [
                    {"type": "string", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "name": "password1", "in": "formData", "required": true},
                    {"type": "string", "name": "password2", "in": "formData", "required": true}
                ],
                "responses": {"303": {"description": "redirect a /cats"}}
            }
        },
        "/accounts/login": {
            "post": {
                "tags": ["accounts"],
                "summary": "Iniciar sesión",
                "parameters": [
                    {"type": "string", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "name": "next", "in": "formData"}
                ],
                "responses": {"303": {"description": "redirect a next o /cats"}}
            }
        }
    },
    "definitions": {
        "cats.catResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "breed": {"type": "string"},
                "description": {"type": "string"},
                "age": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "web.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "field": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Cat Collector API",
	Description:      "Gatos, juguetes, comidas y fotos; cada gato pertenece a un usuario.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
