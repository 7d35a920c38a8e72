package tracking

import (
	"net/http"
)

// Tracking receives shopper behaviour events. Implementations log and
// swallow their own delivery errors; a nil Tracking disables tracking.
type Tracking interface {
	TrackSession(sessionId int, r *http.Request)
	TrackListing(sessionId int, category string, query string, results int)
	TrackAddToCart(sessionId int, productId string, quantity int)
	TrackRemoveFromCart(sessionId int, productId string)
}
