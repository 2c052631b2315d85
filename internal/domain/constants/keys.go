// Package constants holds shared domain-level constant values.
package constants

// Keyspace keys. Every slice of application state is one flat key mapped to a
// JSON value; all keys are optional and absent keys mean "use defaults".
const (
	KeyPosters   = "posters"
	KeyCart      = "cart"
	KeyFavorites = "favorites"
	KeyProfile   = "userProfile"
	KeyOrders    = "orders"
	KeyUserRole  = "userRole"
)

// Store driver names for the keyspace backend.
const (
	StoreDriverMemory = "memory"
	StoreDriverSQLite = "sqlite"
	StoreDriverBlob   = "blob"
)
