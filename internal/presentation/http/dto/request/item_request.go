package request

// ItemRequest is a raw line-item submission. Price and quantity arrive as
// strings, exactly as a form would post them.
type ItemRequest struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Quantity    string `json:"quantity"`
	Description string `json:"description"`
}
