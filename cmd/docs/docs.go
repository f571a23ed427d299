// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/ledger_backend/main.go -o cmd/docs
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
        "/accounts": {"get": {"tags": ["accounts"], "summary": "List active accounts", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid account type"}}}},
        "/accounts/{id}": {"get": {"tags": ["accounts"], "summary": "Get an account by ID", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Account not found"}}}},
        "/transactions": {
            "get": {"tags": ["transactions"], "summary": "List transactions", "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid query parameters"}}},
            "post": {"tags": ["transactions"], "summary": "Record a transaction", "consumes": ["application/json"], "responses": {"201": {"description": "Created"}, "422": {"description": "Transaction is invalid"}, "503": {"description": "Storage unavailable"}}}
        },
        "/transactions/validate": {"post": {"tags": ["transactions"], "summary": "Validate a transaction without recording it", "responses": {"200": {"description": "OK"}, "422": {"description": "Transaction is invalid"}}}},
        "/transactions/{id}": {
            "get": {"tags": ["transactions"], "summary": "Get a transaction by ID", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Transaction not found"}}},
            "delete": {"tags": ["transactions"], "summary": "Delete a transaction", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}, "409": {"description": "Transaction is part of a correction"}}}
        },
        "/transactions/{id}/corrections": {"post": {"tags": ["transactions"], "summary": "Correct a recorded transaction", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "409": {"description": "Transaction was already corrected"}, "422": {"description": "Correction is invalid"}}}},
        "/reports/summary": {"get": {"tags": ["reports"], "summary": "Income and expense summary", "responses": {"200": {"description": "OK"}}}},
        "/reports/monthly": {"get": {"tags": ["reports"], "summary": "Monthly income and expense", "responses": {"200": {"description": "OK"}}}},
        "/reports/accounts/{id}/balance": {"get": {"tags": ["reports"], "summary": "Account balance", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Account not found"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Simple Ledger API",
	Description:      "Double-entry ledger: chart of accounts, balanced transactions, corrections and income/expense reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
