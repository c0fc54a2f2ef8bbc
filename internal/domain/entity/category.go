package entity

// Category agrupa produtos por nome. Os produtos guardam o nome (não o ID) da categoria.
type Category struct {
	ID   string
	Name string
}
