package catalog

// Product is one entry in the static catalog. The catalog is loaded once at
// startup and never mutated; listing and cart code only ever read it.
type Product struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Subcategory   string   `json:"subcategory"`
	Fabric        string   `json:"fabric"`
	Occasion      string   `json:"occasion"`
	Color         string   `json:"color"`
	Sizes         []string `json:"sizes,omitempty"`
	Price         int      `json:"price"`
	OriginalPrice int      `json:"originalPrice,omitempty"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	IsNew         bool     `json:"isNew,omitempty"`
	IsBestseller  bool     `json:"isBestseller,omitempty"`
	Image         string   `json:"image,omitempty"`
}

type Catalog struct {
	Products []Product
	byId     map[string]int
}

func New(products []Product) *Catalog {
	byId := make(map[string]int, len(products))
	for i, p := range products {
		byId[p.Id] = i
	}
	return &Catalog{Products: products, byId: byId}
}

func (c *Catalog) Get(id string) (*Product, bool) {
	i, ok := c.byId[id]
	if !ok {
		return nil, false
	}
	return &c.Products[i], true
}

func (c *Catalog) Len() int {
	return len(c.Products)
}
