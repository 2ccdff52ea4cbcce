package offer

// Offer is a bid by a user (executor) to carry out an order.
type Offer struct {
	ID         int64 `json:"id" yaml:"id"`
	OrderID    int64 `json:"order_id" yaml:"order_id"`
	ExecutorID int64 `json:"executor_id" yaml:"executor_id"`
}

type Fields struct {
	OrderID    *int64 `json:"order_id"    binding:"required" example:"1"`
	ExecutorID *int64 `json:"executor_id" binding:"required" example:"2"`
}

type CreateOfferRequest struct {
	ID *int64 `json:"id" binding:"required" example:"3"`
	Fields
}

func (f Fields) Apply(id int64) Offer {
	return Offer{ID: id, OrderID: *f.OrderID, ExecutorID: *f.ExecutorID}
}

func (r CreateOfferRequest) Offer() Offer { return r.Fields.Apply(*r.ID) }
