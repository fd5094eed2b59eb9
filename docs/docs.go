// Package docs registers the Swagger document served under /swagger/.
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
        "/contacts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "List contacts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Contact"}}
                    },
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errors.Problem"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Create contact",
                "parameters": [
                    {
                        "description": "Contact payload",
                        "name": "contact",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.CreateContactRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/model.Contact"},
                        "headers": {"Location": {"type": "string", "description": "URL of the created contact"}}
                    },
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.Problem"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.Problem"}}
                }
            }
        },
        "/contacts/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Get contact by id",
                "parameters": [
                    {"type": "integer", "description": "Contact ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Contact"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.Problem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.Problem"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contacts"],
                "summary": "Replace contact",
                "parameters": [
                    {"type": "integer", "description": "Contact ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Contact payload",
                        "name": "contact",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/service.UpdateContactRequest"}
                    }
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.Problem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.Problem"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/errors.Problem"}}
                }
            },
            "delete": {
                "tags": ["contacts"],
                "summary": "Delete contact",
                "parameters": [
                    {"type": "integer", "description": "Contact ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errors.Problem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errors.Problem"}}
                }
            }
        }
    },
    "definitions": {
        "errors.Problem": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "errors": {
                    "type": "object",
                    "additionalProperties": {"type": "array", "items": {"type": "string"}}
                },
                "status": {"type": "integer"},
                "title": {"type": "string"},
                "traceId": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "model.Contact": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "note": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "service.CreateContactRequest": {
            "type": "object",
            "required": ["email", "name"],
            "properties": {
                "email": {"type": "string", "maxLength": 100},
                "id": {"type": "integer"},
                "name": {"type": "string", "maxLength": 100},
                "note": {"type": "string", "maxLength": 200},
                "phone": {"type": "string", "maxLength": 15}
            }
        },
        "service.UpdateContactRequest": {
            "type": "object",
            "required": ["email", "name"],
            "properties": {
                "email": {"type": "string", "maxLength": 100},
                "id": {"type": "integer"},
                "name": {"type": "string", "maxLength": 100},
                "note": {"type": "string", "maxLength": 200},
                "phone": {"type": "string", "maxLength": 15}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Contacts API",
	Description:      "Contacts management API with email uniqueness and problem-details errors.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
