// Package platform is a static registry of hosting-platform error codes.
// Every code maps to exactly one HTTP status, category and message; lookups
// are total and fall back to a fixed unknown-error descriptor, so callers can
// format any failure without a second error path.
package platform

// Category groups error codes by the platform subsystem that raises them.
type Category string

const (
	CategoryFunction   Category = "Function"
	CategoryDeployment Category = "Deployment"
	CategoryRuntime    Category = "Runtime"
	CategoryDNS        Category = "DNS"
	CategoryRouting    Category = "Routing"
	CategoryRequest    Category = "Request"
	CategoryImage      Category = "Image"
	CategoryCache      Category = "Cache"
	CategoryInternal   Category = "Internal"
)

// Descriptor is an immutable record describing one platform error code.
type Descriptor struct {
	Code       string   `json:"code"`
	StatusCode int      `json:"statusCode"`
	Category   Category `json:"category"`
	Message    string   `json:"message"`
}

// Fallback is returned by Lookup for any code not present in the registry.
var Fallback = Descriptor{
	Code:       "UNKNOWN_ERROR",
	StatusCode: 500,
	Category:   CategoryInternal,
	Message:    "Unknown error occurred",
}

// registry holds every known descriptor in registration order. It is
// populated once at package load and never mutated afterwards.
var registry = []Descriptor{
	// Function errors
	{"BODY_NOT_A_STRING_FROM_FUNCTION", 502, CategoryFunction, "The function response body is not a valid string"},
	{"MIDDLEWARE_INVOCATION_FAILED", 500, CategoryFunction, "Middleware function invocation failed"},
	{"MIDDLEWARE_INVOCATION_TIMEOUT", 504, CategoryFunction, "Middleware function invocation timed out"},
	{"EDGE_FUNCTION_INVOCATION_FAILED", 500, CategoryFunction, "Edge function invocation failed"},
	{"EDGE_FUNCTION_INVOCATION_TIMEOUT", 504, CategoryFunction, "Edge function invocation timed out"},
	{"FUNCTION_INVOCATION_FAILED", 500, CategoryFunction, "Function invocation failed"},
	{"FUNCTION_INVOCATION_TIMEOUT", 504, CategoryFunction, "Function invocation timed out"},
	{"FUNCTION_PAYLOAD_TOO_LARGE", 413, CategoryFunction, "Function payload is too large"},
	{"FUNCTION_RESPONSE_PAYLOAD_TOO_LARGE", 500, CategoryFunction, "Function response payload is too large"},
	{"FUNCTION_THROTTLED", 503, CategoryFunction, "Function is being throttled"},
	{"NO_RESPONSE_FROM_FUNCTION", 502, CategoryFunction, "No response received from function"},

	// Deployment errors
	{"DEPLOYMENT_BLOCKED", 403, CategoryDeployment, "Deployment is blocked"},
	{"DEPLOYMENT_PAUSED", 503, CategoryDeployment, "Deployment is paused"},
	{"DEPLOYMENT_DISABLED", 402, CategoryDeployment, "Deployment is disabled"},
	{"DEPLOYMENT_NOT_FOUND", 404, CategoryDeployment, "Deployment not found"},
	{"NOT_FOUND", 404, CategoryDeployment, "Resource not found"},
	{"DEPLOYMENT_DELETED", 410, CategoryDeployment, "Deployment has been deleted"},
	{"DEPLOYMENT_NOT_READY_REDIRECTING", 303, CategoryDeployment, "Deployment is not ready, redirecting"},

	// Runtime errors
	{"INFINITE_LOOP_DETECTED", 508, CategoryRuntime, "Infinite loop detected in runtime"},

	// DNS errors
	{"DNS_HOSTNAME_EMPTY", 502, CategoryDNS, "DNS hostname is empty"},
	{"DNS_HOSTNAME_NOT_FOUND", 502, CategoryDNS, "DNS hostname not found"},
	{"DNS_HOSTNAME_RESOLVE_FAILED", 502, CategoryDNS, "DNS hostname resolution failed"},
	{"DNS_HOSTNAME_RESOLVED_PRIVATE", 404, CategoryDNS, "DNS hostname resolved to private IP"},
	{"DNS_HOSTNAME_SERVER_ERROR", 502, CategoryDNS, "DNS server error"},

	// Routing errors
	{"TOO_MANY_FORKS", 502, CategoryRouting, "Too many routing forks"},
	{"TOO_MANY_FILESYSTEM_CHECKS", 502, CategoryRouting, "Too many filesystem checks"},
	{"ROUTER_CANNOT_MATCH", 502, CategoryRouting, "Router cannot match the request"},
	{"ROUTER_EXTERNAL_TARGET_CONNECTION_ERROR", 502, CategoryRouting, "External target connection error"},
	{"ROUTER_EXTERNAL_TARGET_ERROR", 502, CategoryRouting, "External target error"},
	{"ROUTER_TOO_MANY_HAS_SELECTIONS", 502, CategoryRouting, "Too many has selections in router"},
	{"ROUTER_EXTERNAL_TARGET_HANDSHAKE_ERROR", 502, CategoryRouting, "External target handshake error"},

	// Request errors
	{"INVALID_REQUEST_METHOD", 405, CategoryRequest, "Invalid request method"},
	{"MALFORMED_REQUEST_HEADER", 400, CategoryRequest, "Malformed request header"},
	{"REQUEST_HEADER_TOO_LARGE", 431, CategoryRequest, "Request header too large"},
	{"RESOURCE_NOT_FOUND", 404, CategoryRequest, "Resource not found"},
	{"URL_TOO_LONG", 414, CategoryRequest, "URL too long"},

	// Image errors
	{"INVALID_IMAGE_OPTIMIZE_REQUEST", 400, CategoryImage, "Invalid image optimization request"},
	{"OPTIMIZED_EXTERNAL_IMAGE_REQUEST_FAILED", 502, CategoryImage, "External image optimization request failed"},
	{"OPTIMIZED_EXTERNAL_IMAGE_REQUEST_INVALID", 502, CategoryImage, "Invalid external image optimization request"},
	{"OPTIMIZED_EXTERNAL_IMAGE_REQUEST_UNAUTHORIZED", 502, CategoryImage, "Unauthorized external image optimization request"},
	{"OPTIMIZED_EXTERNAL_IMAGE_TOO_MANY_REDIRECTS", 502, CategoryImage, "Too many redirects for external image optimization"},

	// Cache errors
	{"FALLBACK_BODY_TOO_LARGE", 502, CategoryCache, "Fallback body is too large"},

	// Internal platform errors
	{"INTERNAL_EDGE_FUNCTION_INVOCATION_FAILED", 500, CategoryInternal, "Internal edge function invocation failed"},
	{"INTERNAL_EDGE_FUNCTION_INVOCATION_TIMEOUT", 500, CategoryInternal, "Internal edge function invocation timed out"},
	{"INTERNAL_FUNCTION_INVOCATION_FAILED", 500, CategoryInternal, "Internal function invocation failed"},
	{"INTERNAL_FUNCTION_INVOCATION_TIMEOUT", 500, CategoryInternal, "Internal function invocation timed out"},
	{"INTERNAL_FUNCTION_NOT_FOUND", 500, CategoryInternal, "Internal function not found"},
	{"INTERNAL_FUNCTION_NOT_READY", 500, CategoryInternal, "Internal function not ready"},
	{"INTERNAL_DEPLOYMENT_FETCH_FAILED", 500, CategoryInternal, "Internal deployment fetch failed"},
	{"INTERNAL_UNARCHIVE_FAILED", 500, CategoryInternal, "Internal unarchive operation failed"},
	{"INTERNAL_UNEXPECTED_ERROR", 500, CategoryInternal, "Internal unexpected error occurred"},
	{"INTERNAL_ROUTER_CANNOT_PARSE_PATH", 500, CategoryInternal, "Internal router cannot parse path"},
	{"INTERNAL_STATIC_REQUEST_FAILED", 500, CategoryInternal, "Internal static request failed"},
	{"INTERNAL_OPTIMIZED_IMAGE_REQUEST_FAILED", 500, CategoryInternal, "Internal optimized image request failed"},
	{"INTERNAL_CACHE_ERROR", 500, CategoryInternal, "Internal cache error"},
	{"INTERNAL_CACHE_KEY_TOO_LONG", 500, CategoryInternal, "Internal cache key too long"},
	{"INTERNAL_CACHE_LOCK_FULL", 500, CategoryInternal, "Internal cache lock is full"},
	{"INTERNAL_CACHE_LOCK_TIMEOUT", 500, CategoryInternal, "Internal cache lock timeout"},
	{"INTERNAL_MISSING_RESPONSE_FROM_CACHE", 500, CategoryInternal, "Internal missing response from cache"},
	{"INTERNAL_FUNCTION_SERVICE_UNAVAILABLE", 500, CategoryInternal, "Internal function service unavailable"},
	{"INTERNAL_MICROFRONTENDS_INVALID_CONFIGURATION_ERROR", 500, CategoryInternal, "Internal microfrontends invalid configuration error"},
	{"INTERNAL_MICROFRONTENDS_BUILD_ERROR", 500, CategoryInternal, "Internal microfrontends build error"},
	{"INTERNAL_MICROFRONTENDS_MIDDLEWARE_ERROR", 500, CategoryInternal, "Internal microfrontends middleware error"},
	{"INTERNAL_MICROFRONTENDS_UNEXPECTED_ERROR", 500, CategoryInternal, "Internal microfrontends unexpected error"},
}

var byCode = func() map[string]Descriptor {
	m := make(map[string]Descriptor, len(registry))
	for _, d := range registry {
		m[d.Code] = d
	}
	return m
}()

// Lookup resolves a code to its descriptor. It is total: unknown codes yield
// Fallback, never an error.
func Lookup(code string) Descriptor {
	if d, ok := byCode[code]; ok {
		return d
	}
	return Fallback
}

// IsKnown reports whether code is present in the registry.
func IsKnown(code string) bool {
	_, ok := byCode[code]
	return ok
}

// All returns every registered descriptor in registration order.
func All() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry)
	return out
}

// ByStatus returns all descriptors registered with the given HTTP status,
// in registration order.
func ByStatus(status int) []Descriptor {
	var out []Descriptor
	for _, d := range registry {
		if d.StatusCode == status {
			out = append(out, d)
		}
	}
	return out
}

// ByCategory returns all descriptors in the given category, in registration
// order.
func ByCategory(c Category) []Descriptor {
	var out []Descriptor
	for _, d := range registry {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}
