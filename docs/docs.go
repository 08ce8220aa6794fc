// Package docs registers the swagger spec. Regenerate with:
//
//	swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/admin/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Admin login",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/leads": {
            "post": {
                "tags": ["leads"],
                "summary": "Capture a storefront lead",
                "responses": {
                    "201": {"description": "Created"}
                }
            }
        },
        "/api/admin/leads": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["leads"],
                "summary": "List leads for the pipeline board",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/admin/leads/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["leads"],
                "summary": "Lead detail with notes",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["leads"],
                "summary": "Update lead status or assignment",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/admin/products": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "List products",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["products"],
                "summary": "Create a product",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Duplicate SKU"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Jewel CMS Admin API",
	Description:      "Back-office API for the jewelry storefront: lead pipeline, catalog and store settings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
