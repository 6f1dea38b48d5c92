// Package docs holds the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs
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
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Current user",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}
                }
            }
        },
        "/home": {
            "get": {"tags": ["content"], "summary": "Home page bundle", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}}
        },
        "/prayer-times": {
            "get": {"tags": ["content"], "summary": "Prayer schedule", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}}
        },
        "/programs": {
            "get": {"tags": ["content"], "summary": "Mosque programs", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}}
        },
        "/bank-accounts": {
            "get": {"tags": ["content"], "summary": "Donation accounts", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}}
        },
        "/gallery": {
            "get": {"tags": ["content"], "summary": "Photo and video gallery", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}}
        },
        "/profile": {
            "get": {"tags": ["profile"], "summary": "Mosque profile", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}}
        },
        "/profile/org-chart": {
            "get": {"tags": ["profile"], "summary": "Management chart", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Case-insensitive name/role filter", "name": "q", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}}
        },
        "/posts": {
            "get": {"tags": ["posts"], "summary": "List posts", "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Berita, Artikel or Pengumuman", "name": "category", "in": "query"},
                    {"type": "string", "description": "Search in title and excerpt", "name": "q", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}}
        },
        "/posts/{id}": {
            "get": {"tags": ["posts"], "summary": "Get a post", "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Post ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }}
        },
        "/finance": {
            "get": {"tags": ["finance"], "summary": "Finance report", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}}
        },
        "/finance/export.csv": {
            "get": {"tags": ["finance"], "summary": "Export transactions as CSV", "produces": ["text/csv"],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}}
        },
        "/finance/export.xlsx": {
            "get": {"tags": ["finance"], "summary": "Export the finance report as an Excel workbook",
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}}
        },
        "/consultations": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["consultations"], "summary": "List consultations",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["consultations"], "summary": "Ask a question",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"description": "Question", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.SubmitConsultationInput"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.Response"}}}}
        },
        "/consultations/{id}/answer": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["consultations"], "summary": "Answer a question",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Consultation ID", "name": "id", "in": "path", "required": true},
                    {"description": "Answer", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.AnswerConsultationInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }}
        },
        "/assistant/chat": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["assistant"], "summary": "Ask the AI ustadz",
                "consumes": ["application/json"], "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }}
        },
        "/admin/media": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Upload a gallery file",
                "consumes": ["multipart/form-data"], "produces": ["application/json"],
                "parameters": [
                    {"type": "file", "description": "File to upload (JPG, PNG or MP4)", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "Caption", "name": "title", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "File uploaded successfully", "schema": {"$ref": "#/definitions/handler.Response"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/handler.ErrorResponseBody"}}
                }}
        },
        "/admin/connect": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Connect via magic link",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "Script endpoint URL", "name": "apiUrl", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}}
        },
        "/admin/settings/content-source": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Current content endpoint",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Set the content endpoint",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"description": "Script endpoint", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ContentSourceRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["admin"], "summary": "Disconnect the content endpoint",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.Response"}}}}
        }
    },
    "definitions": {
        "handler.APIError": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "handler.ErrorResponseBody": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/handler.APIError"}, "success": {"type": "boolean", "example": false}}
        },
        "handler.Response": {
            "type": "object",
            "properties": {"data": {}, "meta": {"$ref": "#/definitions/handler.ListMeta"}, "success": {"type": "boolean", "example": true}}
        },
        "handler.ListMeta": {
            "type": "object",
            "properties": {"total": {"type": "integer"}}
        },
        "handler.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string", "example": "jamaah@masjid.id"}, "password": {"type": "string", "example": "jamaah123"}}
        },
        "handler.ContentSourceRequest": {
            "type": "object",
            "required": ["url"],
            "properties": {"url": {"type": "string", "example": "https://script.google.com/macros/s/AKfycb.../exec"}}
        },
        "service.SubmitConsultationInput": {
            "type": "object",
            "required": ["question"],
            "properties": {"question": {"type": "string"}}
        },
        "service.AnswerConsultationInput": {
            "type": "object",
            "required": ["answer"],
            "properties": {"answer": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"description": "Type \"Bearer\" followed by a space and the access token.", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Masjid Portal API",
	Description:      "Content, finance transparency, consultations and admin tools for the mosque portal.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
