package cart

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// handleCartCookie resolves the cart id from the cartid cookie, minting a
// new id when create is set and no cookie is present.
func handleCartCookie(w http.ResponseWriter, r *http.Request, create bool) (string, error) {
	c, err := r.Cookie("cartid")
	if err == nil && c.Value != "" {
		return c.Value, nil
	}
	if !create {
		return "", errors.New("no cart session")
	}
	cartId := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     "cartid",
		Value:    cartId,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   2592000,
	})
	return cartId, nil
}
