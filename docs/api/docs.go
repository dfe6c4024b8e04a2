// Package api registers the OpenAPI description served at /swagger/*.
// Regenerate with: swag init -g cmd/server/main.go -o docs/api
package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/justicelink/justicelink"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/register": {
            "post": {
                "tags": ["Auth"],
                "summary": "Register a new account",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log in",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/logout": {
            "post": {
                "security": [{"CookieAuth": []}],
                "tags": ["Auth"],
                "summary": "Log out",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/session": {
            "get": {
                "security": [{"CookieAuth": []}],
                "tags": ["Auth"],
                "summary": "Current session",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/user/{id}": {
            "get": {
                "security": [{"CookieAuth": []}],
                "tags": ["Users"],
                "summary": "Get a user by id",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/users/search": {
            "get": {
                "security": [{"CookieAuth": []}],
                "tags": ["Users"],
                "summary": "Search users by email substring",
                "parameters": [{"type": "string", "name": "email", "in": "query", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/cases": {
            "get": {
                "security": [{"CookieAuth": []}],
                "tags": ["Cases"],
                "summary": "List visible cases",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"CookieAuth": []}],
                "tags": ["Cases"],
                "summary": "Create a case",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/case/{id}": {
            "get": {
                "security": [{"CookieAuth": []}],
                "tags": ["Cases"],
                "summary": "Get a case",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/case/{id}/status": {
            "put": {
                "security": [{"CookieAuth": []}],
                "tags": ["Cases"],
                "summary": "Update a case status",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/case/{id}/summary": {
            "get": {
                "security": [{"CookieAuth": []}],
                "tags": ["Cases"],
                "summary": "Summarize a case",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/case/{id}/permissions": {
            "get": {
                "security": [{"CookieAuth": []}],
                "tags": ["Permissions"],
                "summary": "List grants for a case",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/case/{id}/grant-access": {
            "post": {
                "security": [{"CookieAuth": []}],
                "tags": ["Permissions"],
                "summary": "Grant or update access for a user",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/case/{id}/documents": {
            "get": {
                "security": [{"CookieAuth": []}],
                "tags": ["Documents"],
                "summary": "List documents for a case",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/case/{id}/upload": {
            "post": {
                "security": [{"CookieAuth": []}],
                "tags": ["Documents"],
                "summary": "Upload a document to a case",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/document/{id}/download": {
            "get": {
                "security": [{"CookieAuth": []}],
                "tags": ["Documents"],
                "summary": "Download a document",
                "produces": ["application/octet-stream"],
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "securityDefinitions": {
        "CookieAuth": {
            "type": "apiKey",
            "name": "session_id",
            "in": "cookie"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:5001",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "JusticeLink API",
	Description:      "Case-management backend for legal professionals",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
