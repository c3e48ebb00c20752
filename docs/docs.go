// Package docs holds the OpenAPI document served under /swagger/. Keep it
// in step with the @Router annotations in internal/handler.
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
        "/api/countries": {
            "get": {
                "produces": ["application/json"],
                "tags": ["taxonomy"],
                "summary": "Countries",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.APIResponse"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/models.Taxonomy"}}}}
                            ]
                        }
                    }
                }
            }
        },
        "/api/genres": {
            "get": {
                "produces": ["application/json"],
                "tags": ["taxonomy"],
                "summary": "Genres",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.APIResponse"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/models.Taxonomy"}}}}
                            ]
                        }
                    }
                }
            }
        },
        "/api/movies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Search / list movies (paged)",
                "parameters": [
                    {"type": "string", "description": "search in name and originName", "name": "q", "in": "query"},
                    {"type": "string", "description": "single | series | hoathinh | tvshows", "name": "type", "in": "query"},
                    {"type": "string", "description": "genre slug", "name": "genre", "in": "query"},
                    {"type": "string", "description": "country slug", "name": "country", "in": "query"},
                    {"type": "integer", "description": "release year", "name": "year", "in": "query"},
                    {"type": "integer", "description": "page (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "page size (default 24, max 50)", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.Page-models_Movie"}}}
                            ]
                        }
                    },
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.APIResponse"}}
                }
            }
        },
        "/api/movies/country/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Movies by country",
                "parameters": [
                    {"type": "string", "description": "country slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}
                }
            }
        },
        "/api/movies/genre/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Movies by genre",
                "parameters": [
                    {"type": "string", "description": "genre slug", "name": "slug", "in": "path", "required": true},
                    {"type": "integer", "description": "page (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "page size (default 24, max 50)", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}
                }
            }
        },
        "/api/movies/latest": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Latest updated movies",
                "parameters": [
                    {"type": "integer", "description": "page (default 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "page size (default 24, max 50)", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}
                }
            }
        },
        "/api/movies/slug/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Movie detail",
                "parameters": [
                    {"type": "string", "description": "movie slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.MovieDetail"}}}
                            ]
                        }
                    },
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.APIResponse"}}
                }
            }
        },
        "/api/movies/type/{type}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Movies by type",
                "parameters": [
                    {"type": "string", "description": "single | series | hoathinh | tvshows", "name": "type", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}}
                }
            }
        },
        "/api/movies/year/{year}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Movies by year",
                "parameters": [
                    {"type": "integer", "description": "release year", "name": "year", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.APIResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.APIResponse"}}
                }
            }
        },
        "/api/stats/coverage": {
            "get": {
                "description": "Counts of movies with and without episodes, plus genres and countries.",
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Import coverage",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.ImportCoverage"}}}
                            ]
                        }
                    },
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.APIResponse"}}
                }
            }
        },
        "/api/stats/pending": {
            "get": {
                "description": "Lists movies imported from a listing that still have no episodes.",
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Movies pending detail import",
                "parameters": [
                    {"type": "integer", "description": "max movies (default 50, max 500)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.PendingDetails"}}}
                            ]
                        }
                    },
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.APIResponse"}}
                }
            }
        },
        "/api/years": {
            "get": {
                "produces": ["application/json"],
                "tags": ["taxonomy"],
                "summary": "Available years",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/handler.APIResponse"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"type": "integer"}}}}
                            ]
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Healthcheck",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handler.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "models.Episode": {
            "type": "object",
            "properties": {
                "isAi": {"type": "boolean"},
                "serverData": {"type": "array", "items": {"$ref": "#/definitions/models.ServerData"}},
                "serverName": {"type": "string"}
            }
        },
        "models.IMDBInfo": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "voteAverage": {"type": "number"},
                "voteCount": {"type": "integer"}
            }
        },
        "models.ImportCoverage": {
            "type": "object",
            "properties": {
                "countries": {"type": "integer"},
                "genres": {"type": "integer"},
                "totalMovies": {"type": "integer"},
                "withEpisodes": {"type": "integer"},
                "withoutEpisodes": {"type": "integer"}
            }
        },
        "models.Movie": {
            "type": "object",
            "properties": {
                "accessType": {"type": "string"},
                "category": {"type": "array", "items": {"$ref": "#/definitions/models.Ref"}},
                "chieuRap": {"type": "boolean"},
                "country": {"type": "array", "items": {"$ref": "#/definitions/models.Ref"}},
                "episodeCurrent": {"type": "string"},
                "episodeTotal": {"type": "string"},
                "externalId": {"type": "string"},
                "id": {"type": "string"},
                "imdb": {"$ref": "#/definitions/models.IMDBInfo"},
                "importedAt": {"type": "string"},
                "lang": {"type": "string"},
                "langKey": {"type": "array", "items": {"type": "string"}},
                "modifiedAt": {"type": "string"},
                "name": {"type": "string"},
                "originName": {"type": "string"},
                "posterUrl": {"type": "string"},
                "quality": {"type": "string"},
                "slug": {"type": "string"},
                "source": {"type": "string"},
                "subDocquyen": {"type": "boolean"},
                "thumbUrl": {"type": "string"},
                "time": {"type": "string"},
                "tmdb": {"$ref": "#/definitions/models.TMDBInfo"},
                "type": {"type": "string"},
                "year": {"type": "integer"}
            }
        },
        "models.MovieDetail": {
            "type": "object",
            "allOf": [
                {"$ref": "#/definitions/models.Movie"},
                {
                    "type": "object",
                    "properties": {
                        "actor": {"type": "array", "items": {"type": "string"}},
                        "alternativeNames": {"type": "array", "items": {"type": "string"}},
                        "content": {"type": "string"},
                        "director": {"type": "array", "items": {"type": "string"}},
                        "episodes": {"type": "array", "items": {"$ref": "#/definitions/models.Episode"}},
                        "isCopyright": {"type": "boolean"},
                        "notify": {"type": "string"},
                        "showtimes": {"type": "string"},
                        "status": {"type": "string"},
                        "trailerUrl": {"type": "string"},
                        "view": {"type": "integer"}
                    }
                }
            ]
        },
        "models.Page-models_Movie": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.Movie"}},
                "page": {"type": "integer"},
                "size": {"type": "integer"},
                "totalItems": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        },
        "models.PendingDetails": {
            "type": "object",
            "properties": {
                "limit": {"type": "integer"},
                "movies": {"type": "array", "items": {"$ref": "#/definitions/models.PendingMovie"}}
            }
        },
        "models.PendingMovie": {
            "type": "object",
            "properties": {
                "importedAt": {"type": "string"},
                "name": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "models.Ref": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "models.ServerData": {
            "type": "object",
            "properties": {
                "filename": {"type": "string"},
                "linkEmbed": {"type": "string"},
                "linkM3u8": {"type": "string"},
                "name": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "models.TMDBInfo": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "season": {"type": "integer"},
                "type": {"type": "string"},
                "voteAverage": {"type": "number"},
                "voteCount": {"type": "integer"}
            }
        },
        "models.Taxonomy": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "importedAt": {"type": "string"},
                "name": {"type": "string"},
                "slug": {"type": "string"},
                "source": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Movie Catalog API",
	Description:      "Read-only API over the movie catalog imported from OPhim (Mongo, Redis).",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
