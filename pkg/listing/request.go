package listing

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

const DefaultPageSize = 24

type Request struct {
	Category  string          `json:"category" schema:"category"`
	Sort      string          `json:"sort" schema:"sort,default:popular"`
	Page      int             `json:"page" schema:"page,default:1"`
	PageSize  int             `json:"pageSize" schema:"size,default:24"`
	Selection FilterSelection `json:"filters" schema:"-"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

func clamp[T int | float64](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

var validSorts = map[string]struct{}{
	PopularSort:   {},
	PriceSort:     {},
	PriceDescSort: {},
	RatingSort:    {},
	NewsSort:      {},
}

func (r *Request) Sanitize() {
	r.Page = clamp(r.Page, 1, 10000)
	r.PageSize = clamp(r.PageSize, 1, 100)
	if _, ok := validSorts[r.Sort]; !ok {
		r.Sort = PopularSort
	}
}

// CacheKey is a stable string for the normalized request, used to key the
// listing response cache.
func (r *Request) CacheKey() string {
	return fmt.Sprintf("listing:%s:%s:%d:%d:%s|%s|%s|%s|%s|%d-%d",
		r.Category, r.Sort, r.Page, r.PageSize,
		strings.Join(r.Selection.Types, ","),
		strings.Join(r.Selection.Fabrics, ","),
		strings.Join(r.Selection.Occasions, ","),
		strings.Join(r.Selection.Colors, ","),
		strings.Join(r.Selection.Sizes, ","),
		r.Selection.Price.Min, r.Selection.Price.Max)
}

func makeBaseRequest() *Request {
	return &Request{
		Sort:     PopularSort,
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// FromRequest decodes a listing request from the query string on GET, or
// from a JSON body otherwise.
func FromRequest(r *http.Request) (*Request, error) {
	result := makeBaseRequest()
	var err error
	if r.Method == http.MethodGet {
		err = fromQuery(r.URL.Query(), result)
	} else {
		err = json.NewDecoder(r.Body).Decode(result)
	}
	result.Sanitize()
	return result, err
}

func fromQuery(query url.Values, result *Request) error {
	if err := decoder.Decode(result, query); err != nil {
		return err
	}
	result.Selection = FilterSelection{
		Types:     facetValues(query["type"]),
		Fabrics:   facetValues(query["fabric"]),
		Occasions: facetValues(query["occasion"]),
		Colors:    facetValues(query["color"]),
		Sizes:     facetValues(query["size"]),
	}
	if v := query.Get("price"); v != "" {
		var rng PriceRange
		if _, err := fmt.Sscanf(v, "%d-%d", &rng.Min, &rng.Max); err == nil {
			result.Selection.Price = rng
		}
	}
	return nil
}

// facetValues accepts repeated params as well as the "a||b" multi-value
// convention within one param.
func facetValues(params []string) []string {
	values := make([]string, 0, len(params))
	for _, param := range params {
		for _, v := range strings.Split(param, "||") {
			v = strings.TrimSpace(v)
			if v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}
