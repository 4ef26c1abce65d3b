// Package docs registers the swagger description served at /swagger.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/login": {
            "post": {"tags": ["auth"], "summary": "Admin login", "responses": {"200": {"description": "token and user"}, "401": {"description": "invalid credentials"}}}
        },
        "/auth/me": {
            "get": {"tags": ["auth"], "summary": "Current admin user", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "admin user"}}}
        },
        "/courses": {
            "get": {"tags": ["courses"], "summary": "List courses", "responses": {"200": {"description": "courses"}}},
            "post": {"tags": ["courses"], "summary": "Create a course", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "created course"}}}
        },
        "/courses/{id}": {
            "get": {"tags": ["courses"], "summary": "Get a course", "responses": {"200": {"description": "course"}, "404": {"description": "not found"}}},
            "put": {"tags": ["courses"], "summary": "Update a course", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "updated course"}}},
            "delete": {"tags": ["courses"], "summary": "Delete a course", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "deleted"}}}
        },
        "/bookings": {
            "get": {"tags": ["bookings"], "summary": "List bookings", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "bookings"}}},
            "post": {"tags": ["bookings"], "summary": "Create a booking", "responses": {"201": {"description": "created booking"}, "409": {"description": "course not open for booking"}}}
        },
        "/bookings/{id}/status": {
            "patch": {"tags": ["bookings"], "summary": "Update booking status", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "updated booking"}, "422": {"description": "invalid transition"}}}
        },
        "/bookings/export": {
            "get": {"tags": ["bookings"], "summary": "Export bookings to Excel", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "xlsx file"}}}
        },
        "/testimonials": {
            "get": {"tags": ["testimonials"], "summary": "List approved testimonials", "responses": {"200": {"description": "testimonials"}}},
            "post": {"tags": ["testimonials"], "summary": "Submit a testimonial", "responses": {"201": {"description": "created testimonial"}}}
        },
        "/testimonials/pending": {
            "get": {"tags": ["testimonials"], "summary": "List unapproved testimonials", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "testimonials"}}}
        },
        "/testimonials/{id}/approve": {
            "patch": {"tags": ["testimonials"], "summary": "Approve a testimonial", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "approved testimonial"}}}
        },
        "/testimonials/{id}": {
            "delete": {"tags": ["testimonials"], "summary": "Delete a testimonial", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "deleted"}}}
        },
        "/contact": {
            "post": {"tags": ["contact"], "summary": "Submit a contact message", "responses": {"201": {"description": "created message"}}}
        },
        "/contact/messages": {
            "get": {"tags": ["contact"], "summary": "List contact messages", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "messages"}}}
        },
        "/contact/messages/{id}/read": {
            "patch": {"tags": ["contact"], "summary": "Mark a message as read", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "updated message"}}}
        },
        "/contact/messages/{id}": {
            "delete": {"tags": ["contact"], "summary": "Delete a message", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "deleted"}}}
        },
        "/teachers": {
            "get": {"tags": ["teachers"], "summary": "List teachers", "responses": {"200": {"description": "teachers"}}}
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "LinguaNest API",
	Description:      "Booking and back-office API for the LinguaNest tutoring site.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
