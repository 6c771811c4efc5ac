// Package docs registers the Swagger description of the insurance API.
package docs

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
            "url": "http://www.swagger.io/support",
            "email": "support@swagger.io"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a customer",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Exchange credentials for a bearer token",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "429": {"description": "Too Many Requests"}}
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["auth"],
                "summary": "Revoke the current token",
                "responses": {"204": {"description": "No Content"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/agents": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["auth"],
                "summary": "Create an agent account",
                "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}
            }
        },
        "/insurance-types": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["catalog"],
                "summary": "List insurance types",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["catalog"],
                "summary": "Create an insurance type",
                "responses": {"201": {"description": "Created"}, "403": {"description": "Forbidden"}}
            }
        },
        "/offers": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["offers"],
                "summary": "List offers visible to the caller",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["offers"],
                "summary": "Request an offer",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/offers/{id}": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["offers"],
                "summary": "Get an offer",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["offers"],
                "summary": "Price an offer",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/offers/{id}/approval": {
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["offers"],
                "summary": "Approve or decline a priced offer",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/offers/{id}/create-policy": {
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["offers"],
                "summary": "Pay for an approved offer and issue the policy",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "402": {"description": "Payment Required"}, "409": {"description": "Conflict"}}
            }
        },
        "/policies": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["policies"],
                "summary": "List policies",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/policies/{id}": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["policies"],
                "summary": "Get a policy",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["policies"],
                "summary": "Delete a policy",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/policies/{id}/document": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["documents"],
                "summary": "Download the policy document",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/payments/{id}/receipt": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["documents"],
                "summary": "Download a payment receipt",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/policies/{id}/claims": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["claims"],
                "summary": "List claims filed against a policy",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["claims"],
                "summary": "File a claim against an active policy",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/claims/{id}/status": {
            "patch": {
                "security": [{"Bearer": []}],
                "tags": ["claims"],
                "summary": "Review a claim",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Insurance Service API",
	Description:      "Offers, policy issuance, payments, documents and claims.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
