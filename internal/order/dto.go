package order

// Fields is the replaceable part of an order. executor_id may be null or
// omitted; every other field is required.
type Fields struct {
	Name        *string  `json:"name"        binding:"required" example:"Fix sink"`
	Description *string  `json:"description" binding:"required" example:"leaky"`
	StartDate   *string  `json:"start_date"  binding:"required" example:"2024-01-01"`
	EndDate     *string  `json:"end_date"    binding:"required" example:"2024-01-05"`
	Address     *string  `json:"address"     binding:"required" example:"1 Main St"`
	Price       *float64 `json:"price"       binding:"required" example:"120.5"`
	CustomerID  *int64   `json:"customer_id" binding:"required" example:"1"`
	ExecutorID  *int64   `json:"executor_id" example:"2"`
}

// CreateOrderRequest payload of order creation; the caller chooses the id.
type CreateOrderRequest struct {
	ID *int64 `json:"id" binding:"required" example:"10"`
	Fields
}

func (f Fields) Apply(id int64) Order {
	o := Order{
		ID:          id,
		Name:        *f.Name,
		Description: *f.Description,
		StartDate:   *f.StartDate,
		EndDate:     *f.EndDate,
		Address:     *f.Address,
		Price:       *f.Price,
		CustomerID:  *f.CustomerID,
	}
	if f.ExecutorID != nil {
		v := *f.ExecutorID
		o.ExecutorID = &v
	}
	return o
}

func (r CreateOrderRequest) Order() Order { return r.Fields.Apply(*r.ID) }
