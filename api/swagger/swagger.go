package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "ExamDesk API",
        "description": "Multi-tenant exam results, queries and dashboards for schools.",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": ["http", "https"],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Dashboard", "description": "Role dashboards"},
        {"name": "Queries", "description": "Student queries and teacher responses"},
        {"name": "Exports", "description": "Result roster downloads"},
        {"name": "Site", "description": "Marketing and school content pages"},
        {"name": "Notifications", "description": "Realtime notification stream"},
        {"name": "Metrics", "description": "Operational metrics"}
    ],
    "paths": {
        "/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard for the caller's role",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/admin": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Admin dashboard",
                "description": "Sections that fail keep their previous values and are listed in stale_sections.",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AdminDashboard"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/teacher": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Teacher dashboard",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/student": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Student dashboard",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No student record", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/teacher/queries/{id}/response": {
            "post": {
                "tags": ["Queries"],
                "summary": "Answer a student query",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RespondQueryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Query not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/student/queries": {
            "post": {
                "tags": ["Queries"],
                "summary": "Raise a query about an exam result",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SubmitQueryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/admin/results/export": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download recent results",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf", "xlsx"]}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "404": {"description": "Exports disabled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard/teacher/results/export": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download the result roster",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf", "xlsx"]}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "404": {"description": "Exports disabled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/site/{page}": {
            "get": {
                "tags": ["Site"],
                "summary": "Public marketing page",
                "parameters": [
                    {"name": "page", "in": "path", "required": true, "type": "string", "enum": ["home", "about", "pricing"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown page", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schools/{id}/pages/{name}": {
            "get": {
                "tags": ["Site"],
                "summary": "School content page",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "name", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Other school", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Page not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/notifications/ws": {
            "get": {
                "tags": ["Notifications"],
                "summary": "Websocket stream of the caller's notifications",
                "description": "The token may be passed as access_token on the upgrade request.",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "access_token", "in": "query", "type": "string"}
                ],
                "responses": {
                    "101": {"description": "Switching protocols"},
                    "502": {"description": "Stream unavailable", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/metrics/summary": {
            "get": {
                "tags": ["Metrics"],
                "summary": "Process metrics summary",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "Notification": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "severity": {"type": "string", "enum": ["default", "destructive"]}
            }
        },
        "AdminStats": {
            "type": "object",
            "properties": {
                "totalSchools": {"type": "integer"},
                "totalUsers": {"type": "integer"},
                "totalStudents": {"type": "integer"},
                "totalTeachers": {"type": "integer"},
                "totalAdmins": {"type": "integer"},
                "totalResults": {"type": "integer"},
                "pendingQueries": {"type": "integer"}
            }
        },
        "AdminDashboard": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "properties": {
                        "stats": {"$ref": "#/definitions/AdminStats"},
                        "schools": {"type": "array", "items": {"type": "object"}},
                        "users": {"type": "array", "items": {"type": "object"}},
                        "recentResults": {"type": "array", "items": {"type": "object"}},
                        "stale_sections": {"type": "array", "items": {"type": "string"}}
                    }
                },
                "meta": {"type": "object"}
            }
        },
        "RespondQueryRequest": {
            "type": "object",
            "required": ["response_text"],
            "properties": {
                "response_text": {"type": "string", "maxLength": 5000}
            }
        },
        "SubmitQueryRequest": {
            "type": "object",
            "required": ["query_text"],
            "properties": {
                "query_text": {"type": "string", "maxLength": 5000},
                "exam_id": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {
                    "type": "object",
                    "properties": {
                        "processing_time_ms": {"type": "number"},
                        "notifications": {"type": "array", "items": {"$ref": "#/definitions/Notification"}}
                    }
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
