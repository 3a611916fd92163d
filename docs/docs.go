// Package docs holds the OpenAPI document served at /swagger/*.
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
        "/jwt": {
            "post": {
                "tags": ["auth"],
                "summary": "Issue a signed identity token",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "properties": {"token": {"type": "string"}}}}
                }
            }
        },
        "/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Email already exists"}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "Stored user record"},
                    "500": {"description": "Unknown email or wrong password"}
                }
            }
        },
        "/houses": {
            "get": {
                "tags": ["houses"],
                "summary": "Search listings",
                "parameters": [
                    {"name": "page", "in": "query", "type": "string"},
                    {"name": "city", "in": "query", "type": "string"},
                    {"name": "bedrooms", "in": "query", "type": "string"},
                    {"name": "bathrooms", "in": "query", "type": "string"},
                    {"name": "roomSize", "in": "query", "type": "string"},
                    {"name": "availabilityDate", "in": "query", "type": "string"},
                    {"name": "rentPerMonth", "in": "query", "type": "string"},
                    {"name": "houseName", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "One 10-item page plus totalHouse"}}
            }
        },
        "/house": {
            "post": {
                "tags": ["houses"],
                "security": [{"BearerAuth": []}],
                "summary": "Create a listing",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"200": {"description": "Insert acknowledgment"}}
            }
        },
        "/houses/{houseOwner}": {
            "get": {
                "tags": ["houses"],
                "security": [{"BearerAuth": []}],
                "summary": "List an owner's houses",
                "parameters": [{"name": "houseOwner", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Owner's houses plus totalHouse"}}
            }
        },
        "/houses/{houseId}": {
            "patch": {
                "tags": ["houses"],
                "security": [{"BearerAuth": []}],
                "summary": "Update a listing",
                "parameters": [
                    {"name": "houseId", "in": "path", "required": true, "type": "string"},
                    {"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "Update acknowledgment"}}
            },
            "delete": {
                "tags": ["houses"],
                "security": [{"BearerAuth": []}],
                "summary": "Delete a listing",
                "parameters": [{"name": "houseId", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Delete acknowledgment"},
                    "404": {"description": "House not found."}
                }
            }
        },
        "/booking": {
            "post": {
                "tags": ["bookings"],
                "security": [{"BearerAuth": []}],
                "summary": "Book a listing",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"200": {"description": "Insert acknowledgment"}}
            }
        },
        "/bookings/{houseRenter}": {
            "get": {
                "tags": ["bookings"],
                "security": [{"BearerAuth": []}],
                "summary": "List a renter's bookings joined with their houses",
                "parameters": [{"name": "houseRenter", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "Bookings plus totalBooking"}}
            }
        },
        "/bookings/{bookId}": {
            "delete": {
                "tags": ["bookings"],
                "security": [{"BearerAuth": []}],
                "summary": "Delete a booking",
                "parameters": [{"name": "bookId", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "Delete acknowledgment"},
                    "404": {"description": "Booking not found."}
                }
            }
        },
        "/users/{userEmail}": {
            "get": {
                "tags": ["users"],
                "summary": "Look up a user by email",
                "parameters": [{"name": "userEmail", "in": "path", "required": true, "type": "string"}],
                "responses": {"200": {"description": "User record, or null when unknown"}}
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

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "House Hunter Marketplace API",
	Description:      "Rental listing marketplace: accounts, listings, and bookings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
