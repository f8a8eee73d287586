package model

// Product describes a purchasable catalog entry. Price is stored in minor
// currency units. Stock is the only mutable field.
type Product struct {
	ID    int64
	Name  string
	Price int64
	Stock int
}
