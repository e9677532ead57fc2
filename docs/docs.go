// Package docs holds the OpenAPI document served at /swagger.
//
// Maintained by hand; run `swag init` to regenerate it from the
// controller annotations when routes change.
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
        "/api/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new account",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/quizzes": {
            "get": {
                "tags": ["quizzes"],
                "summary": "List quizzes",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["quizzes"],
                "summary": "Create a quiz",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/quizzes/{id}": {
            "get": {
                "tags": ["quizzes"],
                "summary": "Get a quiz for taking",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["quizzes"],
                "summary": "Update a quiz",
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "tags": ["quizzes"],
                "summary": "Delete a quiz",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/quizzes/{id}/full": {
            "get": {
                "tags": ["quizzes"],
                "summary": "Get a quiz with answer key",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/quizzes/{id}/submissions": {
            "post": {
                "tags": ["submissions"],
                "summary": "Submit quiz answers",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/api/submissions": {
            "get": {
                "tags": ["submissions"],
                "summary": "List submissions",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/submissions/stats": {
            "get": {
                "tags": ["submissions"],
                "summary": "Per-quiz submission statistics",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/submissions/{id}": {
            "get": {
                "tags": ["submissions"],
                "summary": "Submission detail",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/export/submissions/{id}": {
            "get": {
                "tags": ["exports"],
                "summary": "Export one submission as CSV",
                "responses": {"200": {"description": "CSV file"}}
            }
        },
        "/api/export/quizzes/{id}": {
            "get": {
                "tags": ["exports"],
                "summary": "Export a quiz's results as CSV",
                "responses": {"200": {"description": "CSV file"}}
            }
        },
        "/api/export/all": {
            "get": {
                "tags": ["exports"],
                "summary": "Export all results as CSV",
                "responses": {"200": {"description": "CSV file"}}
            }
        },
        "/api/upload": {
            "post": {
                "tags": ["uploads"],
                "summary": "Upload an image",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/health": {
            "get": {
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
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

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "BizzTEST API",
	Description:      "Quiz authoring, taking and scoring backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
