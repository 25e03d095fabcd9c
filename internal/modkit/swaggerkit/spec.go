package swaggerkit

import (
	"net/http"
	"strconv"
	"strings"
)

const oasVersion = "3.0.3"

// sharedErrors are attached to every operation that does not document them itself
var sharedErrors = []struct {
	status  int
	name    string
	message string
}{
	{http.StatusBadRequest, "VALIDATION_ERROR", "page must be 1 or greater"},
	{http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer token"},
	{http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"},
}

// normalize pins the document to OAS 3.0 for the UI, sets a default server
// and documents the error envelope every route can return
func normalize(spec map[string]any, server string) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = oasVersion
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": server}}
	}

	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = errorEnvelopeSchema()
	}

	paths, _ := spec["paths"].(map[string]any)
	for _, item := range paths {
		ops, _ := item.(map[string]any)
		for _, op := range ops {
			o, ok := op.(map[string]any)
			if !ok {
				continue
			}
			responses := child(o, "responses")
			for _, e := range sharedErrors {
				key := strconv.Itoa(e.status)
				if _, ok := responses[key]; !ok {
					responses[key] = errorResponse(e.status, e.name, e.message)
				}
			}
		}
	}
}

// child returns m[key] as a map, creating it when missing or of another type
func child(m map[string]any, key string) map[string]any {
	c, ok := m[key].(map[string]any)
	if !ok {
		c = map[string]any{}
		m[key] = c
	}
	return c
}

func errorEnvelopeSchema() map[string]any {
	str := map[string]any{"type": "string"}
	num := map[string]any{"type": "integer", "format": "int32"}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status_code": num,
			"status":      str,
			"request_id":  str,
			"error": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"code":       num,
					"name":       str,
					"httpStatus": num,
					"message":    str,
					"field":      str,
				},
				"required": []any{"name", "httpStatus", "message"},
			},
		},
		"required": []any{"status_code", "status", "error"},
	}
}

func errorResponse(status int, name, message string) map[string]any {
	return map[string]any{
		"description": http.StatusText(status),
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      http.StatusText(status),
					"error":       map[string]any{"name": name, "httpStatus": status, "message": message},
				},
			},
		},
	}
}
