// Package saleor holds the platform-side contracts: webhook payload and
// response shapes, per-tenant auth data, and the GraphQL calls this app
// makes against the platform. The platform schema itself is a given
// interface, not something this app defines.
package saleor

// AuthData is the per-tenant auth context supplied by the platform.
// Read-only input to every use case.
type AuthData struct {
	APIURL string
	Token  string
	AppID  string
}

// MetadataEntry is one key/value pair from the platform metadata store.
type MetadataEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// MetadataValue returns the value for key, or "" when absent.
func MetadataValue(entries []MetadataEntry, key string) string {
	for _, e := range entries {
		if e.Key == key {
			return e.Value
		}
	}
	return ""
}
