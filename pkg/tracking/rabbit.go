package tracking

import (
	"log"
	"net/http"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/zariwear/zari-store/pkg/messaging"
)

const trackingTopic = messaging.Topic("tracking")

// RabbitTracking publishes tracking events as JSON to a durable topic.
type RabbitTracking struct {
	country    string
	connection *amqp.Connection
}

func NewRabbitTracking(url, country string) (*RabbitTracking, error) {
	ret := RabbitTracking{
		connection: nil,
		country:    country,
	}
	err := ret.connect(url)
	if err != nil {
		return nil, err
	}
	return &ret, nil
}

func (t *RabbitTracking) connect(url string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	t.connection = conn
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return messaging.DefineTopic(ch, "global", trackingTopic)
}

func (t *RabbitTracking) Close() error {
	return t.connection.Close()
}

func (t *RabbitTracking) send(data any) error {
	return messaging.Send(t.connection, "global", trackingTopic, data)
}

type BaseEvent struct {
	SessionId int    `json:"session_id"`
	Country   string `json:"country,omitempty"`
	Event     uint16 `json:"event"`
}

type Session struct {
	*BaseEvent
	UserAgent string `json:"user_agent,omitempty"`
	Ip        string `json:"ip,omitempty"`
	Language  string `json:"language,omitempty"`
}

func (rt *RabbitTracking) TrackSession(sessionId int, r *http.Request) {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}

	err := rt.send(Session{
		BaseEvent: &BaseEvent{Event: 0, SessionId: sessionId, Country: rt.country},
		Language:  r.Header.Get("Accept-Language"),
		UserAgent: r.UserAgent(),
		Ip:        ip,
	})
	if err != nil {
		log.Println("Error sending session event: ", err)
	}
}

type ListingEvent struct {
	*BaseEvent
	Category string `json:"category,omitempty"`
	Query    string `json:"query,omitempty"`
	Results  int    `json:"noi"`
}

func (rt *RabbitTracking) TrackListing(sessionId int, category string, query string, results int) {
	err := rt.send(ListingEvent{
		BaseEvent: &BaseEvent{Event: 1, SessionId: sessionId, Country: rt.country},
		Category:  category,
		Query:     query,
		Results:   results,
	})
	if err != nil {
		log.Println("Error sending listing event: ", err)
	}
}

type CartEvent struct {
	*BaseEvent
	ProductId string `json:"item"`
	Quantity  int    `json:"quantity"`
}

func (rt *RabbitTracking) TrackAddToCart(sessionId int, productId string, quantity int) {
	err := rt.send(CartEvent{
		BaseEvent: &BaseEvent{Event: 4, SessionId: sessionId, Country: rt.country},
		ProductId: productId,
		Quantity:  quantity,
	})
	if err != nil {
		log.Println("Error sending add to cart event: ", err)
	}
}

func (rt *RabbitTracking) TrackRemoveFromCart(sessionId int, productId string) {
	err := rt.send(CartEvent{
		BaseEvent: &BaseEvent{Event: 5, SessionId: sessionId, Country: rt.country},
		ProductId: productId,
	})
	if err != nil {
		log.Println("Error sending remove from cart event: ", err)
	}
}
