// Package docs registers the swagger document served on /swagger.
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
	"paths": {
		"/auth/login": {
			"post": {
				"tags": [
					"accounts"
				],
				"summary": "Exchange credentials for a bearer token",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				}
			}
		},
		"/customers": {
			"post": {
				"tags": [
					"accounts"
				],
				"summary": "Register a customer account",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				}
			}
		},
		"/accounts/me/request": {
			"delete": {
				"tags": [
					"accounts"
				],
				"summary": "Ask staff to delete the caller's own account",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/accounts/{role}/{id}": {
			"delete": {
				"tags": [
					"accounts"
				],
				"summary": "Delete an account",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "role",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/lockers": {
			"post": {
				"tags": [
					"lockers"
				],
				"summary": "Register a locker",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"tags": [
					"lockers"
				],
				"summary": "List lockers",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/lockers/{id}": {
			"get": {
				"tags": [
					"lockers"
				],
				"summary": "Get a locker",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"lockers"
				],
				"summary": "Remove a locker that is not occupied",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/lockers/{id}/book": {
			"post": {
				"tags": [
					"lockers"
				],
				"summary": "Book an available locker for the caller's latest order",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/lockers/{id}/unlock": {
			"post": {
				"tags": [
					"lockers"
				],
				"summary": "Open an occupied locker with its access code",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/lockers/{id}/lock": {
			"post": {
				"tags": [
					"lockers"
				],
				"summary": "Close an available locker again with the issued code",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/orders": {
			"post": {
				"tags": [
					"orders"
				],
				"summary": "Place a laundry order",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"tags": [
					"orders"
				],
				"summary": "List orders, the caller's own for customers",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/orders/{id}": {
			"get": {
				"tags": [
					"orders"
				],
				"summary": "Get an order",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"patch": {
				"tags": [
					"orders"
				],
				"summary": "Change the services or weight of an own order",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"orders"
				],
				"summary": "Delete an order",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/orders/{id}/request": {
			"delete": {
				"tags": [
					"orders"
				],
				"summary": "Ask staff to delete an own order",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/payments": {
			"post": {
				"tags": [
					"payments"
				],
				"summary": "Charge a card and link the payment to the latest order",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"tags": [
					"payments"
				],
				"summary": "List payments, the caller's own for customers",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/payments/{id}": {
			"get": {
				"tags": [
					"payments"
				],
				"summary": "Get a payment",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"patch": {
				"tags": [
					"payments"
				],
				"summary": "Correct the amount or date of an own payment",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"payments"
				],
				"summary": "Delete a payment record",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/payments/{id}/request": {
			"delete": {
				"tags": [
					"payments"
				],
				"summary": "Ask staff to delete an own payment record",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/deletion-requests": {
			"get": {
				"tags": [
					"deletion-requests"
				],
				"summary": "List deletion requests",
				"produces": [
					"application/json"
				],
				"responses": {
					"default": {
						"description": "error",
						"schema": {
							"$ref": "#/definitions/http.Error"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"http.Error": {
			"type": "object",
			"properties": {
				"code": {
					"type": "integer"
				},
				"message": {
					"type": "string"
				}
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Smart-laundry lockers API",
	Description:      "Locker booking and access codes for a laundry locker network.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
