package entity

// Category agrupa productos; Product.Category guarda el nombre.
type Category struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
}

// CategoryPatch actualización parcial de una categoría.
type CategoryPatch struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// Apply copia en c los campos presentes en el patch.
func (patch CategoryPatch) Apply(c *Category) {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.IsActive != nil {
		c.IsActive = *patch.IsActive
	}
}
