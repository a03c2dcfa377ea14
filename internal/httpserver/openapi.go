package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// The OpenAPI document is assembled from the same canonical shapes the
// handlers serialize, so documentation cannot drift from behavior
// without a code change here.

type oaSchema struct {
	Type       string               `json:"type,omitempty"`
	Format     string               `json:"format,omitempty"`
	Pattern    string               `json:"pattern,omitempty"`
	MinLength  int                  `json:"minLength,omitempty"`
	MaxLength  int                  `json:"maxLength,omitempty"`
	Properties map[string]*oaSchema `json:"properties,omitempty"`
	Items      *oaSchema            `json:"items,omitempty"`
	Required   []string             `json:"required,omitempty"`
	Ref        string               `json:"$ref,omitempty"`
}

type oaContent struct {
	Schema *oaSchema `json:"schema"`
}

type oaBody struct {
	Required bool                 `json:"required,omitempty"`
	Content  map[string]oaContent `json:"content"`
}

type oaResponse struct {
	Description string               `json:"description"`
	Content     map[string]oaContent `json:"content,omitempty"`
}

type oaOperation struct {
	Summary     string                `json:"summary"`
	Tags        []string              `json:"tags,omitempty"`
	Security    []map[string][]string `json:"security,omitempty"`
	RequestBody *oaBody               `json:"requestBody,omitempty"`
	Responses   map[string]oaResponse `json:"responses"`
}

type oaDocument struct {
	OpenAPI    string                            `json:"openapi"`
	Info       map[string]string                 `json:"info"`
	Paths      map[string]map[string]oaOperation `json:"paths"`
	Components map[string]interface{}            `json:"components"`
}

func ref(name string) *oaSchema { return &oaSchema{Ref: "#/components/schemas/" + name} }

func jsonContent(s *oaSchema) map[string]oaContent {
	return map[string]oaContent{"application/json": {Schema: s}}
}

var bearerSecurity = []map[string][]string{{"BearerAuth": {}}}

func errorResponse(description string) oaResponse {
	return oaResponse{Description: description, Content: jsonContent(ref("Error"))}
}

func buildOpenAPIDocument() *oaDocument {
	schemas := map[string]*oaSchema{
		"User": {
			Type: "object",
			Properties: map[string]*oaSchema{
				"id":       {Type: "string", Format: "uuid"},
				"username": {Type: "string"},
				"email":    {Type: "string", Format: "email"},
			},
			Required: []string{"id", "username", "email"},
		},
		"Post": {
			Type: "object",
			Properties: map[string]*oaSchema{
				"id":       {Type: "string", Format: "uuid"},
				"title":    {Type: "string"},
				"content":  {Type: "string"},
				"authorId": {Type: "string", Format: "uuid"},
			},
			Required: []string{"id", "title", "content", "authorId"},
		},
		"LoginRequest": {
			Type: "object",
			Properties: map[string]*oaSchema{
				"username": {Type: "string"},
				"password": {Type: "string", Format: "password"},
			},
			Required: []string{"username", "password"},
		},
		"SignupRequest": {
			Type: "object",
			Properties: map[string]*oaSchema{
				"username": {Type: "string", MinLength: 3, MaxLength: 50},
				"email":    {Type: "string", Format: "email"},
				"password": {Type: "string", Format: "password", MinLength: 8},
			},
			Required: []string{"username", "email", "password"},
		},
		"PostRequest": {
			Type: "object",
			Properties: map[string]*oaSchema{
				"title":   {Type: "string", MaxLength: 256},
				"content": {Type: "string", MaxLength: 256},
			},
			Required: []string{"title", "content"},
		},
		"AuthResponse": {
			Type: "object",
			Properties: map[string]*oaSchema{
				"token": {Type: "string"},
				"user":  ref("User"),
			},
			Required: []string{"token", "user"},
		},
		"HealthResponse": {
			Type: "object",
			Properties: map[string]*oaSchema{
				"status":      {Type: "string"},
				"environment": {Type: "string"},
				"timestamp":   {Type: "string", Format: "date-time"},
				"inMemory":    {Type: "boolean"},
			},
			Required: []string{"status", "environment", "timestamp", "inMemory"},
		},
		"Error": {
			Type: "object",
			Properties: map[string]*oaSchema{
				"code":    {Type: "string"},
				"message": {Type: "string"},
				"details": {Type: "array", Items: &oaSchema{
					Type: "object",
					Properties: map[string]*oaSchema{
						"field":   {Type: "string"},
						"message": {Type: "string"},
					},
				}},
			},
			Required: []string{"code", "message"},
		},
	}

	paths := map[string]map[string]oaOperation{
		"/api/health": {
			"get": {
				Summary: "Get the health status of the API",
				Tags:    []string{"Health"},
				Responses: map[string]oaResponse{
					"200": {Description: "Health report", Content: jsonContent(ref("HealthResponse"))},
				},
			},
		},
		"/api/login": {
			"post": {
				Summary:     "Login a user",
				Tags:        []string{"Auth"},
				RequestBody: &oaBody{Required: true, Content: jsonContent(ref("LoginRequest"))},
				Responses: map[string]oaResponse{
					"200": {Description: "Successful login", Content: jsonContent(ref("AuthResponse"))},
					"401": errorResponse("Invalid credentials"),
				},
			},
		},
		"/api/signup": {
			"post": {
				Summary:     "Register a new user",
				Tags:        []string{"Auth"},
				RequestBody: &oaBody{Required: true, Content: jsonContent(ref("SignupRequest"))},
				Responses: map[string]oaResponse{
					"201": {Description: "Successful registration", Content: jsonContent(ref("AuthResponse"))},
					"400": errorResponse("Validation failed"),
					"409": errorResponse("Username or email already exists"),
				},
			},
		},
		"/api/profile": {
			"get": {
				Summary:  "Get the authenticated user",
				Tags:     []string{"Auth"},
				Security: bearerSecurity,
				Responses: map[string]oaResponse{
					"200": {Description: "Current user", Content: jsonContent(ref("User"))},
					"401": errorResponse("Missing or invalid token"),
					"404": errorResponse("User not found"),
				},
			},
		},
		"/api/posts": {
			"get": {
				Summary:  "Get all posts of the caller",
				Tags:     []string{"Posts"},
				Security: bearerSecurity,
				Responses: map[string]oaResponse{
					"200": {Description: "Posts", Content: jsonContent(&oaSchema{Type: "array", Items: ref("Post")})},
					"401": errorResponse("Missing or invalid token"),
				},
			},
			"post": {
				Summary:     "Create a new post",
				Tags:        []string{"Posts"},
				Security:    bearerSecurity,
				RequestBody: &oaBody{Required: true, Content: jsonContent(ref("PostRequest"))},
				Responses: map[string]oaResponse{
					"201": {Description: "Created post", Content: jsonContent(ref("Post"))},
					"400": errorResponse("Validation failed"),
					"401": errorResponse("Missing or invalid token"),
				},
			},
		},
		"/api/posts/{id}": {
			"get": {
				Summary:  "Get a single post by ID",
				Tags:     []string{"Posts"},
				Security: bearerSecurity,
				Responses: map[string]oaResponse{
					"200": {Description: "Post", Content: jsonContent(ref("Post"))},
					"401": errorResponse("Missing or invalid token"),
					"404": errorResponse("Post not found"),
				},
			},
			"put": {
				Summary:     "Update a post by ID",
				Tags:        []string{"Posts"},
				Security:    bearerSecurity,
				RequestBody: &oaBody{Required: true, Content: jsonContent(ref("PostRequest"))},
				Responses: map[string]oaResponse{
					"200": {Description: "Updated post", Content: jsonContent(ref("Post"))},
					"400": errorResponse("Validation failed"),
					"401": errorResponse("Missing or invalid token"),
					"404": errorResponse("Post not found"),
				},
			},
			"delete": {
				Summary:  "Delete a post by ID",
				Tags:     []string{"Posts"},
				Security: bearerSecurity,
				Responses: map[string]oaResponse{
					"204": {Description: "Deleted"},
					"401": errorResponse("Missing or invalid token"),
					"404": errorResponse("Post not found"),
				},
			},
		},
	}

	return &oaDocument{
		OpenAPI: "3.0.3",
		Info: map[string]string{
			"title":   "Blog API",
			"version": "1.0.0",
		},
		Paths: paths,
		Components: map[string]interface{}{
			"schemas": schemas,
			"securitySchemes": map[string]interface{}{
				"BearerAuth": map[string]string{
					"type":         "http",
					"scheme":       "bearer",
					"bearerFormat": "JWT",
				},
			},
		},
	}
}

func (s *Server) handleOpenAPIDocument(c echo.Context) error {
	return c.JSON(http.StatusOK, buildOpenAPIDocument())
}

const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8"/>
  <title>Blog API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css"/>
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
  SwaggerUIBundle({ url: "/api/openapi.json", dom_id: "#swagger-ui" });
</script>
</body>
</html>`

func (s *Server) handleOpenAPIUI(c echo.Context) error {
	return c.HTML(http.StatusOK, swaggerUIPage)
}
