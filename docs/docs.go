// Package docs holds the Swagger document for the solarcast API, in the layout
// produced by `swag init -g cmd/solarcast/docs.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "solarcast maintainers"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "Liveness message",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.RootResponse"}}
                }
            }
        },
        "/predict_date": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forecast"],
                "summary": "Forecast a single date",
                "parameters": [
                    {
                        "description": "Date (YYYY-MM-DD) and model selector",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.DateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.DateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/predict_year": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forecast"],
                "summary": "Forecast every day of a year",
                "parameters": [
                    {
                        "description": "Year and model selector",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/types.YearRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.YearResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.DateRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2023-06-15"},
                "model_type": {"type": "string", "example": "diffusion"}
            }
        },
        "types.DateResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "example": "2023-06-15"},
                "forecast": {"$ref": "#/definitions/types.ForecastRecord"},
                "model_type": {"type": "string", "example": "diffusion"}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string", "example": "Invalid model_type. Use 'global' or 'diffusion'."}
            }
        },
        "types.ForecastRecord": {
            "type": "object",
            "properties": {
                "Date": {"type": "string", "example": "2024-01-01"},
                "Forecast_Radiation": {"type": "number", "example": 4.82},
                "Lower_Bound": {"type": "number", "example": 3.91},
                "Upper_Bound": {"type": "number", "example": 5.73}
            }
        },
        "types.RootResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "API is working! Use /predict_year or /predict_date endpoints."}
            }
        },
        "types.YearRequest": {
            "type": "object",
            "properties": {
                "model_type": {"type": "string", "example": "global"},
                "year": {"type": "integer", "example": 2024}
            }
        },
        "types.YearResponse": {
            "type": "object",
            "properties": {
                "daily_forecasts": {"type": "array", "items": {"$ref": "#/definitions/types.ForecastRecord"}},
                "model_type": {"type": "string", "example": "global"},
                "year": {"type": "integer", "example": 2024}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "solarcast API",
	Description:      "Daily solar radiation forecasts from the global and diffusion models.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
