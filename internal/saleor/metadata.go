package saleor

import "context"

type recipientMetadataContextKey struct{}

// WithRecipientMetadata stores the payload's recipient private metadata in
// the request context. The handler sets it once per request; downstream
// config lookups read it instead of re-fetching from the platform. The
// value dies with the request, so nothing is shared across requests and
// tests need no reset logic.
func WithRecipientMetadata(ctx context.Context, entries []MetadataEntry) context.Context {
	return context.WithValue(ctx, recipientMetadataContextKey{}, entries)
}

// RecipientMetadataFromContext returns the metadata stored by the handler.
func RecipientMetadataFromContext(ctx context.Context) ([]MetadataEntry, bool) {
	entries, ok := ctx.Value(recipientMetadataContextKey{}).([]MetadataEntry)
	return entries, ok
}
