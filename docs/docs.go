// Package docs registers the Swagger spec served at /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/groups": {
            "post": {
                "tags": ["groups"],
                "summary": "Create a group"
            }
        },
        "/groups/{id}": {
            "get": {
                "tags": ["groups"],
                "summary": "Get group by ID"
            }
        },
        "/users": {
            "post": {
                "tags": ["users"],
                "summary": "Register a user in a group"
            }
        },
        "/users/{id}": {
            "get": {
                "tags": ["users"],
                "summary": "Get user by ID"
            }
        },
        "/users/group/{groupId}": {
            "get": {
                "tags": ["users"],
                "summary": "List users in a group"
            }
        },
        "/expenses": {
            "post": {
                "tags": ["expenses"],
                "summary": "Record an expense"
            }
        },
        "/expenses/{id}": {
            "get": {
                "tags": ["expenses"],
                "summary": "Get expense by ID"
            },
            "patch": {
                "tags": ["expenses"],
                "summary": "Correct an expense"
            },
            "delete": {
                "tags": ["expenses"],
                "summary": "Delete an expense"
            }
        },
        "/expenses/{id}/resplit": {
            "post": {
                "tags": ["expenses"],
                "summary": "Re-split an expense"
            }
        },
        "/expenses/group/{groupId}": {
            "get": {
                "tags": ["expenses"],
                "summary": "List expenses in a group"
            }
        },
        "/settlements": {
            "post": {
                "tags": ["settlements"],
                "summary": "Record a settlement"
            }
        },
        "/settlements/group/{groupId}": {
            "get": {
                "tags": ["settlements"],
                "summary": "List settlements in a group"
            }
        },
        "/balances/group/{groupId}": {
            "get": {
                "tags": ["balances"],
                "summary": "Get group balances"
            }
        },
        "/balances/group/{groupId}/settle-options": {
            "get": {
                "tags": ["balances"],
                "summary": "Get settle options for the acting user"
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Tally API",
	Description:      "Group expense ledger with debt netting and settlements.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
