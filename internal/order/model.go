package order

// Order is a unit of work requested by a customer. Dates are opaque strings.
// CustomerID and ExecutorID are plain user ids and may not resolve.
type Order struct {
	ID          int64   `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	StartDate   string  `json:"start_date" yaml:"start_date"`
	EndDate     string  `json:"end_date" yaml:"end_date"`
	Address     string  `json:"address" yaml:"address"`
	Price       float64 `json:"price" yaml:"price"`
	CustomerID  int64   `json:"customer_id" yaml:"customer_id"`
	ExecutorID  *int64  `json:"executor_id" yaml:"executor_id"`
}
