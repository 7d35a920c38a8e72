package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/zariwear/zari-store/pkg/catalog"
)

var out = flag.String("out", "data/catalog.json", "output file")
var count = flag.Int("count", 120, "number of products to generate")
var seed = flag.Uint64("seed", 0, "faker seed, 0 for random")

var subcategories = map[string][]string{
	"sarees":       {"Banarasi", "Kanjivaram", "Chiffon Sarees", "Printed Sarees"},
	"lehengas":     {"Bridal Lehengas", "Party Lehengas", "Festive Lehengas"},
	"kurtas":       {"Anarkali", "Straight Kurtas", "A-Line Kurtas"},
	"salwar-suits": {"Palazzo Suits", "Patiala Suits", "Sharara Suits"},
}

var fabrics = []string{"Silk", "Cotton", "Georgette", "Chiffon", "Banarasi Silk", "Linen", "Velvet"}
var occasions = []string{"Wedding", "Festive", "Casual", "Party", "Office"}
var colors = []string{"Red", "Maroon", "Green", "Blue", "Pink", "Yellow", "Black", "Gold", "Ivory"}
var sizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

func makeProduct(i int) catalog.Product {
	category := gofakeit.RandomString([]string{"sarees", "lehengas", "kurtas", "salwar-suits"})
	sub := gofakeit.RandomString(subcategories[category])
	fabric := gofakeit.RandomString(fabrics)
	color := gofakeit.RandomString(colors)
	price := gofakeit.Number(499, 24999)
	original := price
	if gofakeit.Bool() {
		original = price + gofakeit.Number(200, 5000)
	}
	p := catalog.Product{
		Id:            fmt.Sprintf("p%04d", i+1),
		Name:          fmt.Sprintf("%s %s %s", color, fabric, sub),
		Category:      category,
		Subcategory:   sub,
		Fabric:        fabric,
		Occasion:      gofakeit.RandomString(occasions),
		Color:         color,
		Price:         price,
		OriginalPrice: original,
		Rating:        float64(gofakeit.Number(30, 50)) / 10,
		ReviewCount:   gofakeit.Number(0, 900),
		IsNew:         gofakeit.Number(0, 4) == 0,
		IsBestseller:  gofakeit.Number(0, 5) == 0,
		Image:         fmt.Sprintf("/images/p%04d.jpg", i+1),
	}
	if category != "sarees" {
		n := gofakeit.Number(2, len(sizes))
		p.Sizes = sizes[:n]
	}
	return p
}

func main() {
	flag.Parse()
	if *seed != 0 {
		if err := gofakeit.Seed(*seed); err != nil {
			log.Fatalf("Failed to seed faker: %v", err)
		}
	}

	products := make([]catalog.Product, *count)
	for i := range products {
		products[i] = makeProduct(i)
	}

	file, err := os.Create(*out)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}
	defer file.Close()
	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(products); err != nil {
		log.Fatalf("Failed to write catalog: %v", err)
	}
	log.Printf("Wrote %d products to %s", len(products), *out)
}
