// Package docs registers the OpenAPI description served at /swagger.
// It follows the annotations on the handlers in package handlers; routes
// mounted from generic handlers are described here directly.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
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
        "/api/auth/login": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Sign in and receive an access/refresh token pair",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.TokenPairResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Tokens are stateless; the client discards them.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Sign out",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.LogoutResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/auth/refresh": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Exchange a refresh token for a new access token",
                "parameters": [
                    {
                        "description": "Refresh token",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.RefreshRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.AccessTokenResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/addimages": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Send JSON {crop_id, image_url} for an already hosted image, or\nmultipart form data with crop_id and an \"image\" file to upload it.",
                "consumes": [
                    "application/json",
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Images"
                ],
                "summary": "Record a crop image",
                "parameters": [
                    {
                        "description": "Hosted image",
                        "name": "body",
                        "in": "body",
                        "schema": {
                            "$ref": "#/definitions/models.ImageRequest"
                        }
                    },
                    {
                        "type": "string",
                        "description": "Crop ID",
                        "name": "crop_id",
                        "in": "formData"
                    },
                    {
                        "type": "file",
                        "description": "Image file",
                        "name": "image",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Image"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/createdisease-analysis-results": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "Record a disease diagnosis",
                "parameters": [
                    {
                        "description": "Result",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.AnalysisRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.CreatedResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/creatediseases": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Diseases"
                ],
                "summary": "Create a disease",
                "parameters": [
                    {
                        "description": "Disease",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.DiseaseRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Disease"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/createremedies": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Remedies"
                ],
                "summary": "Create a remedy",
                "parameters": [
                    {
                        "description": "Remedy",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.RemedyRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.CreatedResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/deletediseases/{diseaseid}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Diseases"
                ],
                "summary": "Delete a disease",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Disease ID",
                        "name": "diseaseid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/deleteremedies/{remedyid}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Fails with 409 while the remedy is mapped to a disease.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Remedies"
                ],
                "summary": "Delete a remedy",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Remedy ID",
                        "name": "remedyid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/disease-analysis-results": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Filters are combined with AND; newest first.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "List disease analysis results",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "User",
                        "name": "user_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Plant",
                        "name": "plant_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Crop",
                        "name": "crop_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Image",
                        "name": "image_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Disease",
                        "name": "disease_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Remedy",
                        "name": "remedy_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.AnalysisResult"
                            }
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/disease-analysis-results/report": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/pdf"
                ],
                "tags": [
                    "Analysis"
                ],
                "summary": "Download analysis results as a PDF report",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "User",
                        "name": "user_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Disease",
                        "name": "disease_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/diseases": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Diseases"
                ],
                "summary": "List diseases",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Plant",
                        "name": "plant_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Disease"
                            }
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/diseases/{diseaseid}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Diseases"
                ],
                "summary": "Get a disease",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Disease ID",
                        "name": "diseaseid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Disease"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/diseases/{diseaseid}/remedies": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Remedies"
                ],
                "summary": "Remedies mapped to a disease",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Disease ID",
                        "name": "diseaseid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Remedy"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/images": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Images"
                ],
                "summary": "List crop images",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Crop",
                        "name": "crop_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Image"
                            }
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/remedies": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Remedies"
                ],
                "summary": "List remedies with the diseases each one treats",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Remedy"
                            }
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/remedies/map": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Remedies"
                ],
                "summary": "Link a remedy to a disease",
                "parameters": [
                    {
                        "description": "Mapping",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.MappingRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/remedies/unmap": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Remedies"
                ],
                "summary": "Remove a remedy from a disease",
                "parameters": [
                    {
                        "description": "Mapping",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.MappingRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/remedies/{remedyid}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Remedies"
                ],
                "summary": "Get a remedy",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Remedy ID",
                        "name": "remedyid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Remedy"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/updatediseases/{diseaseid}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Diseases"
                ],
                "summary": "Replace a disease",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Disease ID",
                        "name": "diseaseid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Disease",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.DiseaseRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Disease"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/diseaseRemedies/updateremedies/{remedyid}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Remedies"
                ],
                "summary": "Replace a remedy",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Remedy ID",
                        "name": "remedyid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Remedy",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.RemedyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/addcrops": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The plant is looked up by name and the duration is derived from the two dates.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Crops"
                ],
                "summary": "Plant a crop on a farm",
                "parameters": [
                    {
                        "description": "Crop",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CropRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Crop"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/addfarms": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Soil type, irrigation and water source are optional and written in the same transaction.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Farms"
                ],
                "summary": "Create a farm",
                "parameters": [
                    {
                        "description": "Farm",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CreateFarmRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.CreatedResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/crops": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Crops"
                ],
                "summary": "List crops",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Farm",
                        "name": "farm_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Plant",
                        "name": "plant_id",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Active only",
                        "name": "isactive",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Crop"
                            }
                        }
                    }
                }
            }
        },
        "/api/farmcrop/crops/export": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "Crops"
                ],
                "summary": "Download crops as an Excel workbook",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/crops/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Crops"
                ],
                "summary": "Get a crop",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Crop ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Crop"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/deletecrops/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Crops"
                ],
                "summary": "Delete a crop",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Crop ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/deletefarms/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Farms"
                ],
                "summary": "Delete a farm",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Farm ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/farms": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Filters are combined with AND.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Farms"
                ],
                "summary": "List farms",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Owner",
                        "name": "user_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Soil type",
                        "name": "soil_type_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Irrigation method",
                        "name": "irrigation_id",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Water source",
                        "name": "water_src_id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Pincode",
                        "name": "pincode",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Farm"
                            }
                        }
                    }
                }
            }
        },
        "/api/farmcrop/farms/export": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "Farms"
                ],
                "summary": "Download farms as an Excel workbook",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/farms/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Farms"
                ],
                "summary": "Get a farm with its soil, irrigation and water source",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Farm ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Farm"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/farms/{id}/qrcode": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "image/png"
                ],
                "tags": [
                    "Farms"
                ],
                "summary": "Printable QR label for a farm",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Farm ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "PNG image",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/masters/addcroptypes": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The id is allocated by the server and the name is normalised to title case.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Masters"
                ],
                "summary": "Add a crop type",
                "parameters": [
                    {
                        "description": "Crop type",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CropType"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.CropType"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/masters/addirrigations": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The id is allocated by the server and the name is normalised to title case.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Masters"
                ],
                "summary": "Add a irrigation method",
                "parameters": [
                    {
                        "description": "Irrigation method",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.Irrigation"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Irrigation"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/masters/addplants": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The id is allocated by the server and the name is normalised to title case.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Masters"
                ],
                "summary": "Add a plant",
                "parameters": [
                    {
                        "description": "Plant",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.Plant"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.Plant"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/masters/addsoiltypes": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The id is allocated by the server and the name is normalised to title case.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Masters"
                ],
                "summary": "Add a soil type",
                "parameters": [
                    {
                        "description": "Soil type",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.SoilType"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.SoilType"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/masters/addwatersources": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The id is allocated by the server and the name is normalised to title case.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Masters"
                ],
                "summary": "Add a water source",
                "parameters": [
                    {
                        "description": "Water source",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.WaterSource"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.WaterSource"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/masters/croptypes": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Masters"
                ],
                "summary": "List crop types",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.CropType"
                            }
                        }
                    }
                }
            }
        },
        "/api/farmcrop/masters/deletecroptypes/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Fails with 409 while other rows still reference it.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Masters"
                ],
                "summary": "Delete a crop type",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Crop type ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/masters/deleteirrigations/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Fails with 409 while other rows still reference it.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Masters"
                ],
                "summary": "Delete a irrigation method",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Irrigation method ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/masters/deleteplants/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Fails with 409 while other rows still reference it.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Masters"
                ],
                "summary": "Delete a plant",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Plant ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/masters/deletesoiltypes/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Fails with 409 while other rows still reference it.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Masters"
                ],
                "summary": "Delete a soil type",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Soil type ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/masters/deletewatersources/{id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Fails with 409 while other rows still reference it.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Masters"
                ],
                "summary": "Delete a water source",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Water source ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/masters/irrigations": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Masters"
                ],
                "summary": "List irrigation methods",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Irrigation"
                            }
                        }
                    }
                }
            }
        },
        "/api/farmcrop/masters/plants": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Masters"
                ],
                "summary": "List plants",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Plant"
                            }
                        }
                    }
                }
            }
        },
        "/api/farmcrop/masters/soiltypes": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Masters"
                ],
                "summary": "List soil types",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.SoilType"
                            }
                        }
                    }
                }
            }
        },
        "/api/farmcrop/masters/watersources": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Masters"
                ],
                "summary": "List water sources",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.WaterSource"
                            }
                        }
                    }
                }
            }
        },
        "/api/farmcrop/updatecrops/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Crops"
                ],
                "summary": "Replace a crop",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Crop ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Crop",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CropRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Crop"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/farmcrop/updatefarms/{id}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Farm columns are overwritten; omitted associations keep their current value.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Farms"
                ],
                "summary": "Update a farm",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Farm ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Farm",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.UpdateFarmRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/login": {
            "post": {
                "description": "Returns a long-lived session token. Web sign-in is limited to admins.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Sign in with phone number and password",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.LoginResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/ping": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Health"
                ],
                "summary": "Liveness check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    }
                }
            }
        },
        "/api/subsidies/deleteSubsidy/{subsidyid}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Subsidies"
                ],
                "summary": "Delete a subsidy",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Subsidy ID",
                        "name": "subsidyid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/subsidies/getSubsidy": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Subsidies"
                ],
                "summary": "List subsidies",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Filter by state",
                        "name": "state_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Subsidy"
                            }
                        }
                    }
                }
            }
        },
        "/api/subsidies/getSubsidy/{subsidyid}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Subsidies"
                ],
                "summary": "Get a subsidy",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Subsidy ID",
                        "name": "subsidyid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Subsidy"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/subsidies/postSubsidy": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Subsidies"
                ],
                "summary": "Create a subsidy",
                "parameters": [
                    {
                        "description": "Subsidy",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.SubsidyRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.CreatedResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/subsidies/putSubsidy/{subsidyid}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Subsidies"
                ],
                "summary": "Replace a subsidy",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Subsidy ID",
                        "name": "subsidyid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Subsidy",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.SubsidyRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/subsidies/states": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Subsidies"
                ],
                "summary": "List states",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.State"
                            }
                        }
                    }
                }
            }
        },
        "/api/users/categories": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "List user categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.UserCategory"
                            }
                        }
                    }
                }
            }
        },
        "/api/users/deleteUser/{userid}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Delete a user",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "User ID",
                        "name": "userid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/users/export": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Download users as an Excel workbook",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Filter by category",
                        "name": "category_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    }
                }
            }
        },
        "/api/users/getUser": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "List users",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Filter by category",
                        "name": "category_id",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.User"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/users/getUser/{userid}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Get a user",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "User ID",
                        "name": "userid",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.User"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/users/postUser": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Allocates a six-digit user id and stores auth and profile rows together.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Create a user",
                "parameters": [
                    {
                        "description": "User",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.CreateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/models.CreatedResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/users/putUser/{userid}": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Replace a user's details",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "User ID",
                        "name": "userid",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "User",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.UpdateUserRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/models.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "models.AccessTokenResponse": {
            "type": "object",
            "properties": {
                "accessToken": {
                    "type": "string"
                }
            }
        },
        "models.AnalysisRequest": {
            "type": "object",
            "required": [
                "confidence",
                "crop_id",
                "disease_id",
                "image_id",
                "remedy_id",
                "user_id"
            ],
            "properties": {
                "confidence": {
                    "type": "number",
                    "example": 92.5
                },
                "crop_id": {
                    "type": "string"
                },
                "disease_id": {
                    "type": "integer"
                },
                "image_id": {
                    "type": "integer"
                },
                "remedy_id": {
                    "type": "integer"
                },
                "user_id": {
                    "type": "integer"
                }
            }
        },
        "models.AnalysisResult": {
            "type": "object",
            "properties": {
                "confidence": {
                    "type": "number",
                    "example": 92.5
                },
                "created_at": {
                    "type": "string"
                },
                "crop_id": {
                    "type": "string",
                    "example": "004512"
                },
                "disease_id": {
                    "type": "integer",
                    "example": 20451
                },
                "disease_name": {
                    "type": "string",
                    "example": "Early Blight"
                },
                "id": {
                    "type": "integer",
                    "example": 77310
                },
                "image_id": {
                    "type": "integer",
                    "example": 55120
                },
                "image_url": {
                    "type": "string"
                },
                "plant_id": {
                    "type": "integer",
                    "example": 10452
                },
                "plant_name": {
                    "type": "string",
                    "example": "Tomato"
                },
                "remedy": {
                    "type": "string",
                    "example": "Copper fungicide spray"
                },
                "remedy_id": {
                    "type": "integer",
                    "example": 31877
                },
                "user_id": {
                    "type": "integer",
                    "example": 482913
                }
            }
        },
        "models.CreateFarmRequest": {
            "type": "object",
            "required": [
                "user_id"
            ],
            "properties": {
                "farm_size": {
                    "type": "number",
                    "example": 2.5
                },
                "irrigation_id": {
                    "type": "integer"
                },
                "pincode": {
                    "type": "string",
                    "example": "560001"
                },
                "soil_type_id": {
                    "type": "integer"
                },
                "survey_number": {
                    "type": "string",
                    "example": "112/4B"
                },
                "user_id": {
                    "type": "integer",
                    "example": 482913
                },
                "water_src_id": {
                    "type": "integer"
                }
            }
        },
        "models.CreateUserRequest": {
            "type": "object",
            "required": [
                "category_id",
                "name",
                "password",
                "phone_number"
            ],
            "properties": {
                "address": {
                    "type": "string"
                },
                "category_id": {
                    "type": "integer",
                    "example": 1
                },
                "dob": {
                    "type": "string",
                    "example": "1985-06-21"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string",
                    "example": "Ravi Kumar"
                },
                "password": {
                    "type": "string",
                    "example": "secret123"
                },
                "phone_number": {
                    "type": "string",
                    "example": "9876543210"
                },
                "pincode": {
                    "type": "string",
                    "example": "560001"
                }
            }
        },
        "models.CreatedResponse": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "example": "000123"
                },
                "message": {
                    "type": "string",
                    "example": "Farm added successfully"
                }
            }
        },
        "models.Crop": {
            "type": "object",
            "properties": {
                "duration": {
                    "type": "integer",
                    "example": 30
                },
                "farm_id": {
                    "type": "string",
                    "example": "000123"
                },
                "field_size": {
                    "type": "number",
                    "example": 1.2
                },
                "harvest_date": {
                    "type": "string",
                    "example": "2024-01-31"
                },
                "isactive": {
                    "type": "boolean",
                    "example": true
                },
                "plant_id": {
                    "type": "integer",
                    "example": 10452
                },
                "plant_name": {
                    "type": "string",
                    "example": "Tomato"
                },
                "planting_date": {
                    "type": "string",
                    "example": "2024-01-01"
                },
                "soil_type_id": {
                    "type": "integer"
                },
                "soil_type_name": {
                    "type": "string",
                    "example": "Red Soil"
                },
                "status": {
                    "type": "string",
                    "example": "Growing"
                },
                "user_crop_id": {
                    "type": "string",
                    "example": "004512"
                },
                "water_requirement": {
                    "type": "string",
                    "example": "Medium"
                }
            }
        },
        "models.CropRequest": {
            "type": "object",
            "required": [
                "farm_id",
                "harvest_date",
                "plant_name",
                "planting_date"
            ],
            "properties": {
                "farm_id": {
                    "type": "string",
                    "example": "000123"
                },
                "field_size": {
                    "type": "number"
                },
                "harvest_date": {
                    "type": "string",
                    "example": "2024-01-31"
                },
                "isactive": {
                    "type": "boolean"
                },
                "plant_name": {
                    "type": "string",
                    "example": "Tomato"
                },
                "planting_date": {
                    "type": "string",
                    "example": "2024-01-01"
                },
                "soil_type_name": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "water_requirement": {
                    "type": "string"
                }
            }
        },
        "models.CropType": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "croptype_id": {
                    "type": "integer",
                    "example": 10012
                },
                "name": {
                    "type": "string",
                    "example": "Vegetable"
                }
            }
        },
        "models.Disease": {
            "type": "object",
            "properties": {
                "disease_id": {
                    "type": "integer",
                    "example": 20451
                },
                "name": {
                    "type": "string",
                    "example": "Early Blight"
                },
                "plant_id": {
                    "type": "integer",
                    "example": 10452
                },
                "plant_name": {
                    "type": "string",
                    "example": "Tomato"
                },
                "severity": {
                    "type": "string",
                    "example": "High"
                }
            }
        },
        "models.DiseaseRequest": {
            "type": "object",
            "required": [
                "name",
                "plant_id"
            ],
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Early Blight"
                },
                "plant_id": {
                    "type": "integer",
                    "example": 10452
                },
                "severity": {
                    "type": "string",
                    "example": "High"
                }
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "not found: farm 000123"
                },
                "message": {
                    "type": "string",
                    "example": "Farm not found"
                }
            }
        },
        "models.Farm": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "farm_id": {
                    "type": "string",
                    "example": "000123"
                },
                "farm_size": {
                    "type": "number",
                    "example": 2.5
                },
                "irrigation": {
                    "type": "string",
                    "example": "Drip"
                },
                "irrigation_id": {
                    "type": "integer"
                },
                "owner_name": {
                    "type": "string",
                    "example": "Ravi Kumar"
                },
                "pincode": {
                    "type": "string",
                    "example": "560001"
                },
                "soil_type": {
                    "type": "string",
                    "example": "Red Soil"
                },
                "soil_type_id": {
                    "type": "integer",
                    "example": 10231
                },
                "survey_number": {
                    "type": "string",
                    "example": "112/4B"
                },
                "user_id": {
                    "type": "integer",
                    "example": 482913
                },
                "water_source": {
                    "type": "string",
                    "example": "Borewell"
                },
                "water_src_id": {
                    "type": "integer"
                }
            }
        },
        "models.Image": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "crop_id": {
                    "type": "string",
                    "example": "004512"
                },
                "image_id": {
                    "type": "integer",
                    "example": 55120
                },
                "image_url": {
                    "type": "string",
                    "example": "https://cdn.example.com/crops/004512/leaf.jpg"
                }
            }
        },
        "models.ImageRequest": {
            "type": "object",
            "required": [
                "crop_id"
            ],
            "properties": {
                "crop_id": {
                    "type": "string",
                    "example": "004512"
                },
                "image_url": {
                    "type": "string"
                }
            }
        },
        "models.Irrigation": {
            "type": "object",
            "required": [
                "method_name"
            ],
            "properties": {
                "irrigation_id": {
                    "type": "integer",
                    "example": 10877
                },
                "method_name": {
                    "type": "string",
                    "example": "Drip"
                }
            }
        },
        "models.LoginRequest": {
            "type": "object",
            "required": [
                "password",
                "phone_number"
            ],
            "properties": {
                "password": {
                    "type": "string",
                    "example": "secret123"
                },
                "phone_number": {
                    "type": "string",
                    "example": "9876543210"
                },
                "platform": {
                    "type": "string",
                    "example": "web"
                }
            }
        },
        "models.LoginResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Login successful"
                },
                "token": {
                    "type": "string"
                }
            }
        },
        "models.LogoutResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Logged out"
                },
                "success": {
                    "type": "boolean",
                    "example": true
                }
            }
        },
        "models.MappingRequest": {
            "type": "object",
            "required": [
                "disease_id",
                "remedy_id"
            ],
            "properties": {
                "disease_id": {
                    "type": "integer",
                    "example": 20451
                },
                "remedy_id": {
                    "type": "integer",
                    "example": 31877
                }
            }
        },
        "models.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string",
                    "example": "Farm deleted successfully"
                }
            }
        },
        "models.Plant": {
            "type": "object",
            "required": [
                "plant_name"
            ],
            "properties": {
                "crop_type": {
                    "type": "string",
                    "example": "Vegetable"
                },
                "crop_type_id": {
                    "type": "integer",
                    "example": 10012
                },
                "plant_id": {
                    "type": "integer",
                    "example": 10452
                },
                "plant_name": {
                    "type": "string",
                    "example": "Tomato"
                },
                "water_requirement": {
                    "type": "string",
                    "example": "Medium"
                }
            }
        },
        "models.RefreshRequest": {
            "type": "object",
            "required": [
                "refreshToken"
            ],
            "properties": {
                "refreshToken": {
                    "type": "string"
                }
            }
        },
        "models.Remedy": {
            "type": "object",
            "properties": {
                "mapped_diseases": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "prevention": {
                    "type": "string",
                    "example": "Rotate crops yearly"
                },
                "remedy": {
                    "type": "string",
                    "example": "Copper fungicide spray"
                },
                "remedy_id": {
                    "type": "integer",
                    "example": 31877
                }
            }
        },
        "models.RemedyRequest": {
            "type": "object",
            "required": [
                "remedy"
            ],
            "properties": {
                "prevention": {
                    "type": "string"
                },
                "remedy": {
                    "type": "string",
                    "example": "Copper fungicide spray"
                }
            }
        },
        "models.SoilType": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Red Soil"
                },
                "soil_type_id": {
                    "type": "integer",
                    "example": 10231
                }
            }
        },
        "models.State": {
            "type": "object",
            "required": [
                "state_name"
            ],
            "properties": {
                "state_id": {
                    "type": "integer",
                    "example": 10029
                },
                "state_name": {
                    "type": "string",
                    "example": "Karnataka"
                }
            }
        },
        "models.Subsidy": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "description": {
                    "type": "string",
                    "example": "Income support of Rs 6000 per year"
                },
                "id": {
                    "type": "integer",
                    "example": 40218
                },
                "link": {
                    "type": "string",
                    "example": "https://pmkisan.gov.in"
                },
                "state_id": {
                    "type": "integer",
                    "example": 10029
                },
                "state_name": {
                    "type": "string",
                    "example": "Karnataka"
                },
                "title": {
                    "type": "string",
                    "example": "PM-KISAN"
                }
            }
        },
        "models.SubsidyRequest": {
            "type": "object",
            "required": [
                "title"
            ],
            "properties": {
                "description": {
                    "type": "string"
                },
                "link": {
                    "type": "string"
                },
                "state_id": {
                    "type": "integer"
                },
                "title": {
                    "type": "string",
                    "example": "PM-KISAN"
                }
            }
        },
        "models.TokenPairResponse": {
            "type": "object",
            "properties": {
                "accessToken": {
                    "type": "string"
                },
                "refreshToken": {
                    "type": "string"
                }
            }
        },
        "models.UpdateFarmRequest": {
            "type": "object",
            "properties": {
                "farm_size": {
                    "type": "number",
                    "example": 2.5
                },
                "irrigation_id": {
                    "type": "integer"
                },
                "pincode": {
                    "type": "string",
                    "example": "560001"
                },
                "soil_type_id": {
                    "type": "integer"
                },
                "survey_number": {
                    "type": "string",
                    "example": "112/4B"
                },
                "water_src_id": {
                    "type": "integer"
                }
            }
        },
        "models.UpdateUserRequest": {
            "type": "object",
            "required": [
                "category_id",
                "name",
                "phone_number"
            ],
            "properties": {
                "address": {
                    "type": "string"
                },
                "category_id": {
                    "type": "integer",
                    "example": 1
                },
                "dob": {
                    "type": "string",
                    "example": "1985-06-21"
                },
                "email": {
                    "type": "string"
                },
                "name": {
                    "type": "string",
                    "example": "Ravi Kumar"
                },
                "password": {
                    "type": "string"
                },
                "phone_number": {
                    "type": "string",
                    "example": "9876543210"
                },
                "pincode": {
                    "type": "string",
                    "example": "560001"
                }
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "category": {
                    "type": "string",
                    "example": "Farmer"
                },
                "category_id": {
                    "type": "integer",
                    "example": 1
                },
                "created_at": {
                    "type": "string"
                },
                "dob": {
                    "type": "string",
                    "example": "1985-06-21"
                },
                "email": {
                    "type": "string",
                    "example": "farmer@example.com"
                },
                "name": {
                    "type": "string",
                    "example": "Ravi Kumar"
                },
                "phone_number": {
                    "type": "string",
                    "example": "9876543210"
                },
                "pincode": {
                    "type": "string",
                    "example": "560001"
                },
                "user_id": {
                    "type": "integer",
                    "example": 482913
                }
            }
        },
        "models.UserCategory": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string",
                    "example": "Admin"
                },
                "category_id": {
                    "type": "integer",
                    "example": 3
                }
            }
        },
        "models.WaterSource": {
            "type": "object",
            "required": [
                "source"
            ],
            "properties": {
                "source": {
                    "type": "string",
                    "example": "Borewell"
                },
                "water_src_id": {
                    "type": "integer",
                    "example": 10390
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

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Agri Admin API",
	Description:      "Administration backend for farms, crops, plant diseases, remedies and subsidies.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
