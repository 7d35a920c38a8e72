package cart

// BlouseOption is a saree sub-variant choice carried on a line item. The
// option price is added on top of the product price per unit.
type BlouseOption struct {
	Id    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Price int    `json:"price"`
}

// LineItem snapshots the product display data at add time; it is not
// re-synced if the catalog changes afterwards.
type LineItem struct {
	Id            string        `json:"id"`
	ProductId     string        `json:"productId"`
	Name          string        `json:"name,omitempty"`
	Price         int           `json:"price"`
	OriginalPrice int           `json:"originalPrice,omitempty"`
	Image         string        `json:"image,omitempty"`
	Quantity      int           `json:"quantity"`
	BlouseOption  *BlouseOption `json:"blouseOption,omitempty"`
}

// UnitPrice is the per-unit price including the blouse option.
func (l *LineItem) UnitPrice() int {
	if l.BlouseOption != nil {
		return l.Price + l.BlouseOption.Price
	}
	return l.Price
}

// NewItem carries everything a line item needs except its id, which is
// assigned when the item is added.
type NewItem struct {
	ProductId     string        `json:"productId"`
	Name          string        `json:"name,omitempty"`
	Price         int           `json:"price"`
	OriginalPrice int           `json:"originalPrice,omitempty"`
	Image         string        `json:"image,omitempty"`
	Quantity      int           `json:"quantity"`
	BlouseOption  *BlouseOption `json:"blouseOption,omitempty"`
}

// State is the cart contents plus the panel visibility flag. IsOpen is a
// UI concern and is never persisted.
type State struct {
	Items  []LineItem `json:"items"`
	IsOpen bool       `json:"isOpen"`
}

func (s State) ItemCount() int {
	count := 0
	for _, line := range s.Items {
		count += line.Quantity
	}
	return count
}

func (s State) Subtotal() int {
	total := 0
	for _, line := range s.Items {
		total += line.UnitPrice() * line.Quantity
	}
	return total
}

func variantId(option *BlouseOption) string {
	if option == nil {
		return ""
	}
	return option.Id
}
