package request

type MaterialRequest struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Quantity *int   `json:"quantity" binding:"required"`
}

func (r MaterialRequest) ResolveQuantity() int {
	if r.Quantity == nil {
		return 0
	}
	return *r.Quantity
}
