package dto

// CreateProductRequest entrada para registrar un producto. La validación
// (nombre/sku no vacíos, stocks no negativos) es responsabilidad de la capa
// de presentación; el caso de uso persiste lo que reciba.
type CreateProductRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=200"`
	SKU          string `json:"sku" validate:"required,min=1,max=100"`
	CurrentStock int    `json:"currentStock" validate:"min=0"`
	MinStock     int    `json:"minStock" validate:"min=0"`
}

// UpdateProductRequest entrada para editar un producto. Los campos nil se
// dejan como están; LastUpdated se sella siempre.
type UpdateProductRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	SKU          *string `json:"sku" validate:"omitempty,min=1,max=100"`
	CurrentStock *int    `json:"currentStock" validate:"omitempty,min=0"`
	MinStock     *int    `json:"minStock" validate:"omitempty,min=0"`
}
