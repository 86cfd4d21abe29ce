// Package docs holds the OpenAPI description served by the router under /doc. keep it in sync
// with the annotations on router.API.Run and the controllers (swag init regenerates this file).
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Lintang Birda Saputra"
        },
        "license": {
            "name": "BSD License",
            "url": "https://opensource.org/license/bsd-2-clause"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/navigate": {
            "get": {
                "description": "turn-by-turn driving directions between two named attractions, names match ignoring case",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "navigation"
                ],
                "summary": "directions from one attraction to another",
                "parameters": [
                    {
                        "type": "string",
                        "description": "starting attraction",
                        "name": "start",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "destination attraction",
                        "name": "destination",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "$ref": "#/definitions/controllers.navigateResponse"
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.errorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.errorResponse"
                        }
                    }
                }
            }
        },
        "/attractions/nearby": {
            "get": {
                "description": "attractions within radius miles of a point, nearest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "attractions"
                ],
                "summary": "attractions near a coordinate",
                "parameters": [
                    {
                        "type": "number",
                        "description": "latitude",
                        "name": "lat",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "longitude",
                        "name": "lon",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "search radius in miles, default 0.5",
                        "name": "radius",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "data": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/definitions/controllers.nearbyAttraction"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.errorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "controllers.coordinate": {
            "type": "object",
            "properties": {
                "lat": {
                    "type": "number"
                },
                "lon": {
                    "type": "number"
                }
            }
        },
        "controllers.navInstruction": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "proceed",
                        "turn"
                    ]
                },
                "direction": {
                    "type": "string"
                },
                "street": {
                    "type": "string"
                },
                "distance": {
                    "type": "number"
                },
                "start": {
                    "$ref": "#/definitions/controllers.coordinate"
                },
                "end": {
                    "$ref": "#/definitions/controllers.coordinate"
                },
                "instruction": {
                    "type": "string"
                }
            }
        },
        "controllers.navigateResponse": {
            "type": "object",
            "properties": {
                "start": {
                    "type": "string"
                },
                "destination": {
                    "type": "string"
                },
                "distance": {
                    "type": "number"
                },
                "polyline": {
                    "type": "string"
                },
                "directions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.navInstruction"
                    }
                }
            }
        },
        "controllers.nearbyAttraction": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "location": {
                    "$ref": "#/definitions/controllers.coordinate"
                },
                "distance": {
                    "type": "number"
                }
            }
        },
        "controllers.errorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {
                            "type": "string"
                        },
                        "message": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:6060",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Attraction Navigator API",
	Description:      "Turn-by-turn driving directions between named attractions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
