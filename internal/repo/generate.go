// Package repo holds the ent-generated data access layer. Run go generate
// to (re)build it from the schemas in internal/schema.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert ../schema
