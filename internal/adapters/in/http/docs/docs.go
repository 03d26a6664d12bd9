// Package docs holds the Swagger description of the planner API served
// under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "consumes": [
        "application/json"
    ],
    "produces": [
        "application/json"
    ],
    "paths": {
        "/orders": {
            "post": {
                "tags": [
                    "Orders"
                ],
                "summary": "Register an order imported from the ERP",
                "operationId": "createOrder",
                "responses": {
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateOrderRequest"
                        }
                    }
                ]
            }
        },
        "/orders/unplanned": {
            "get": {
                "tags": [
                    "Orders"
                ],
                "summary": "List orders that are not planned yet",
                "operationId": "getUnplannedOrders",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "query",
                        "name": "shipDate",
                        "required": false,
                        "type": "string",
                        "format": "date",
                        "description": "Only this ship date"
                    }
                ]
            }
        },
        "/orders/classify": {
            "post": {
                "tags": [
                    "Orders"
                ],
                "summary": "Classify every OPEN order",
                "operationId": "classifyAllOpen",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                }
            }
        },
        "/orders/{id}/classify": {
            "post": {
                "tags": [
                    "Orders"
                ],
                "summary": "Classify one order",
                "operationId": "classifyOrder",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "format": "uuid",
                        "description": "Order ID"
                    }
                ]
            }
        },
        "/orders/calculation/request": {
            "post": {
                "tags": [
                    "Calculation"
                ],
                "summary": "Request the pallet calculation",
                "operationId": "requestCalculation",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/OrderSelectionRequest"
                        }
                    }
                ]
            }
        },
        "/orders/calculation/complete": {
            "post": {
                "tags": [
                    "Calculation"
                ],
                "summary": "Complete the pallet calculation",
                "operationId": "completeCalculation",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/OrderSelectionRequest"
                        }
                    }
                ]
            }
        },
        "/orders/calculation/full": {
            "post": {
                "tags": [
                    "Calculation"
                ],
                "summary": "Request and complete the calculation at once",
                "operationId": "executeFullCalculation",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/OrderSelectionRequest"
                        }
                    }
                ]
            }
        },
        "/orders/plan/parcel": {
            "post": {
                "tags": [
                    "Planning"
                ],
                "summary": "Plan parcel orders",
                "operationId": "planParcel",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/OrderSelectionRequest"
                        }
                    }
                ]
            }
        },
        "/orders/plan/direct": {
            "post": {
                "tags": [
                    "Planning"
                ],
                "summary": "Plan direct orders",
                "operationId": "planDirect",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/OrderSelectionRequest"
                        }
                    }
                ]
            }
        },
        "/orders/unplan": {
            "post": {
                "tags": [
                    "Planning"
                ],
                "summary": "Take orders back to CALCULATED",
                "operationId": "unplanOrders",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/OrderSelectionRequest"
                        }
                    }
                ]
            }
        },
        "/orders/remix": {
            "post": {
                "tags": [
                    "Planning"
                ],
                "summary": "Recalculate selected orders as one consolidation",
                "operationId": "remixOrders",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/OrderSelectionRequest"
                        }
                    }
                ]
            }
        },
        "/orders/hold": {
            "post": {
                "tags": [
                    "Orders"
                ],
                "summary": "Put orders on hold",
                "operationId": "holdOrders",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/HoldOrdersRequest"
                        }
                    }
                ]
            }
        },
        "/orders/release": {
            "post": {
                "tags": [
                    "Orders"
                ],
                "summary": "Release held orders",
                "operationId": "releaseOrders",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/OrderSelectionRequest"
                        }
                    }
                ]
            }
        },
        "/orders/booking": {
            "post": {
                "tags": [
                    "Booking"
                ],
                "summary": "Advance the booking workflow",
                "operationId": "advanceBooking",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/AdvanceBookingRequest"
                        }
                    }
                ]
            }
        },
        "/grouping": {
            "post": {
                "tags": [
                    "Grouping"
                ],
                "summary": "Group calculated groupage orders",
                "operationId": "executeGrouping",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ExecuteGroupingRequest"
                        }
                    }
                ]
            }
        },
        "/groups": {
            "post": {
                "tags": [
                    "Grouping"
                ],
                "summary": "Group selected orders by consolidation key",
                "operationId": "groupOrders",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/OrderSelectionRequest"
                        }
                    }
                ]
            }
        },
        "/groups/{id}/orders": {
            "post": {
                "tags": [
                    "Grouping"
                ],
                "summary": "Add an order to a group",
                "operationId": "addOrderToGroup",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "format": "uuid",
                        "description": "Group ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/AddOrderToGroupRequest"
                        }
                    }
                ]
            }
        },
        "/groups/{id}/orders/{orderId}": {
            "delete": {
                "tags": [
                    "Grouping"
                ],
                "summary": "Remove an order from a group",
                "operationId": "removeOrderFromGroup",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "format": "uuid",
                        "description": "Group ID"
                    },
                    {
                        "in": "path",
                        "name": "orderId",
                        "required": true,
                        "type": "string",
                        "format": "uuid",
                        "description": "Order ID"
                    }
                ]
            }
        },
        "/groups/{id}": {
            "delete": {
                "tags": [
                    "Grouping"
                ],
                "summary": "Cancel a group and reclassify its orders",
                "operationId": "cancelGroup",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "format": "uuid",
                        "description": "Group ID"
                    }
                ]
            }
        },
        "/lanes/board": {
            "get": {
                "tags": [
                    "Lanes"
                ],
                "summary": "Summarize lanes per ship date",
                "operationId": "getLaneBoard",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "query",
                        "name": "from",
                        "required": false,
                        "type": "string",
                        "format": "date",
                        "description": "First ship date"
                    }
                ]
            }
        },
        "/lanes/{id}/trucks": {
            "post": {
                "tags": [
                    "Trucks"
                ],
                "summary": "Pack the groups of a lane into trucks",
                "operationId": "calculateTruckPlanning",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "format": "uuid",
                        "description": "Lane ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CalculateTrucksRequest"
                        }
                    }
                ]
            }
        },
        "/lanes/{id}/plan": {
            "post": {
                "tags": [
                    "Trucks"
                ],
                "summary": "Plan the trucks of a lane",
                "operationId": "executePlan",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "format": "uuid",
                        "description": "Lane ID"
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ExecutePlanRequest"
                        }
                    }
                ]
            }
        },
        "/trucks/{id}/plan": {
            "delete": {
                "tags": [
                    "Trucks"
                ],
                "summary": "Unplan a truck",
                "operationId": "unplanTruck",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "format": "uuid",
                        "description": "Truck ID"
                    }
                ]
            }
        },
        "/events/{id}": {
            "get": {
                "tags": [
                    "Events"
                ],
                "summary": "Audit trail of an order, group, truck or lane",
                "operationId": "getEntityEvents",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "409": {
                        "description": "Precondition failed",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {
                            "$ref": "#/definitions/Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string",
                        "format": "uuid",
                        "description": "Entity ID"
                    }
                ]
            }
        }
    },
    "definitions": {
        "Response": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                },
                "message": {
                    "type": "string"
                },
                "data": {
                    "type": "object"
                }
            }
        },
        "Destination": {
            "type": "object",
            "required": [
                "country",
                "zip",
                "city"
            ],
            "properties": {
                "country": {
                    "type": "string"
                },
                "zip": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                },
                "street": {
                    "type": "string"
                },
                "houseNumber": {
                    "type": "string"
                }
            }
        },
        "CreateOrderRequest": {
            "type": "object",
            "required": [
                "reference",
                "consignee",
                "destination",
                "shipDate"
            ],
            "properties": {
                "reference": {
                    "type": "string"
                },
                "customer": {
                    "type": "string"
                },
                "consignee": {
                    "type": "string"
                },
                "destination": {
                    "$ref": "#/definitions/Destination"
                },
                "shipDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2026-03-14"
                },
                "weight": {
                    "type": "number",
                    "description": "kg"
                },
                "volume": {
                    "type": "number",
                    "description": "m³"
                },
                "height": {
                    "type": "number",
                    "description": "m"
                },
                "consolidationAllowed": {
                    "type": "boolean"
                }
            }
        },
        "OrderSelectionRequest": {
            "type": "object",
            "properties": {
                "orderIds": {
                    "type": "array",
                    "items": {
                        "type": "string",
                        "format": "uuid"
                    }
                }
            }
        },
        "HoldOrdersRequest": {
            "type": "object",
            "required": [
                "orderIds",
                "reason"
            ],
            "properties": {
                "orderIds": {
                    "type": "array",
                    "items": {
                        "type": "string",
                        "format": "uuid"
                    }
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "AdvanceBookingRequest": {
            "type": "object",
            "required": [
                "orderIds",
                "action"
            ],
            "properties": {
                "orderIds": {
                    "type": "array",
                    "items": {
                        "type": "string",
                        "format": "uuid"
                    }
                },
                "action": {
                    "type": "string",
                    "enum": [
                        "REQUEST",
                        "ACCEPT",
                        "REJECT",
                        "REQUEST_CONSOLIDATION",
                        "RESERVE_APPOINTMENT",
                        "BOOK_APPOINTMENT",
                        "CLOSE"
                    ]
                }
            }
        },
        "ExecuteGroupingRequest": {
            "type": "object",
            "properties": {
                "shipDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2026-03-14"
                }
            }
        },
        "AddOrderToGroupRequest": {
            "type": "object",
            "required": [
                "orderId"
            ],
            "properties": {
                "orderId": {
                    "type": "string",
                    "format": "uuid"
                }
            }
        },
        "CalculateTrucksRequest": {
            "type": "object",
            "required": [
                "shipDate",
                "truckType"
            ],
            "properties": {
                "shipDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2026-03-14"
                },
                "truckType": {
                    "type": "string",
                    "enum": [
                        "STANDARD",
                        "COMBI_1",
                        "COMBI_2",
                        "LZV",
                        "CUSTOM"
                    ]
                },
                "capacity": {
                    "type": "number",
                    "description": "Loading metres of a CUSTOM truck"
                },
                "orderIds": {
                    "type": "array",
                    "items": {
                        "type": "string",
                        "format": "uuid"
                    }
                }
            }
        },
        "ExecutePlanRequest": {
            "type": "object",
            "required": [
                "shipDate"
            ],
            "properties": {
                "shipDate": {
                    "type": "string",
                    "format": "date",
                    "example": "2026-03-14"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Freight Planner API",
	Description:      "Shipment classification, consolidation and truck planning. Changes are attributed to the X-Actor request header.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
