package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"pulsebite/feed"
	"pulsebite/repository"
	"pulsebite/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"
)

const (
	StreamAdmin   = "admin"
	StreamKitchen = "kitchen"
	tablePrefix   = "table:"
)

// LiveHub fans projector snapshots out to websocket clients. Each stream
// is a room: "admin" and "kitchen" are fed by projectors that run for the
// lifetime of the process, while a "table:<id>" room lazily starts a
// guest projector on its first subscriber and stops it when the room
// empties.
type LiveHub struct {
	clients    map[string]map[*websocket.Conn]bool // stream -> set of clients
	last       map[string][]byte                   // most recent payload per stream
	broadcast  chan streamPayload
	register   chan subscription
	unregister chan subscription

	guests map[string]*services.GuestProjector

	db      *gorm.DB
	feed    *feed.Feed
	tables  *repository.TableRepository
	admin   *services.AdminProjector
	kitchen *services.KitchenProjector
	taxRate float64
}

type subscription struct {
	Conn   *websocket.Conn
	Stream string
}

type streamPayload struct {
	Stream  string
	Payload []byte
}

func NewLiveHub(db *gorm.DB, f *feed.Feed, tables *repository.TableRepository, admin *services.AdminProjector, kitchen *services.KitchenProjector, taxRate float64) *LiveHub {
	return &LiveHub{
		clients:    make(map[string]map[*websocket.Conn]bool),
		last:       make(map[string][]byte),
		broadcast:  make(chan streamPayload),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		guests:     make(map[string]*services.GuestProjector),
		db:         db,
		feed:       f,
		tables:     tables,
		admin:      admin,
		kitchen:    kitchen,
		taxRate:    taxRate,
	}
}

// Run owns all hub state. Call it once, in its own goroutine.
func (h *LiveHub) Run() {
	go h.pumpAdmin()
	go h.pumpKitchen()

	for {
		select {
		case sub := <-h.register:
			if h.clients[sub.Stream] == nil {
				h.clients[sub.Stream] = make(map[*websocket.Conn]bool)
				h.startGuest(sub.Stream)
			}
			h.clients[sub.Stream][sub.Conn] = true
			if payload := h.openingPayload(sub.Stream); payload != nil {
				if err := sub.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					log.Printf("ws write error: %v", err)
				}
			}

		case sub := <-h.unregister:
			if _, ok := h.clients[sub.Stream][sub.Conn]; ok {
				delete(h.clients[sub.Stream], sub.Conn)
				sub.Conn.Close()
			}
			if len(h.clients[sub.Stream]) == 0 {
				delete(h.clients, sub.Stream)
				h.stopGuest(sub.Stream)
			}

		case msg := <-h.broadcast:
			h.last[msg.Stream] = msg.Payload
			for conn := range h.clients[msg.Stream] {
				if err := conn.WriteMessage(websocket.TextMessage, msg.Payload); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[msg.Stream], conn)
				}
			}
		}
	}
}

// openingPayload is what a freshly registered client sees before the next
// recompute lands.
func (h *LiveHub) openingPayload(stream string) []byte {
	if payload, ok := h.last[stream]; ok {
		return payload
	}
	switch stream {
	case StreamAdmin:
		return marshal(stream, h.admin.Snapshot())
	case StreamKitchen:
		return marshal(stream, h.kitchen.Snapshot())
	}
	// table streams: the projector just started, its first compute
	// will be broadcast within moments
	return nil
}

func (h *LiveHub) startGuest(stream string) {
	tableID, ok := parseTableStream(stream)
	if !ok {
		return
	}
	p := services.NewGuestProjector(h.db, h.feed, tableID, h.taxRate)
	h.guests[stream] = p
	go func() {
		for v := range p.Updates() {
			h.broadcast <- streamPayload{Stream: stream, Payload: marshal(stream, v)}
		}
	}()
}

func (h *LiveHub) stopGuest(stream string) {
	delete(h.last, stream)
	if p, ok := h.guests[stream]; ok {
		delete(h.guests, stream)
		p.Close()
	}
}

func (h *LiveHub) pumpAdmin() {
	for v := range h.admin.Updates() {
		h.broadcast <- streamPayload{Stream: StreamAdmin, Payload: marshal(StreamAdmin, v)}
	}
}

func (h *LiveHub) pumpKitchen() {
	for v := range h.kitchen.Updates() {
		h.broadcast <- streamPayload{Stream: StreamKitchen, Payload: marshal(StreamKitchen, v)}
	}
}

func marshal(stream string, view any) []byte {
	payload, err := json.Marshal(gin.H{"stream": stream, "data": view})
	if err != nil {
		log.Printf("ws marshal error: %v", err)
		return nil
	}
	return payload
}

func parseTableStream(stream string) (uint, bool) {
	if len(stream) <= len(tablePrefix) || stream[:len(tablePrefix)] != tablePrefix {
		return 0, false
	}
	id, err := strconv.ParseUint(stream[len(tablePrefix):], 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/admin
func (h *LiveHub) HandleAdmin(c *gin.Context) {
	h.serve(c, StreamAdmin)
}

// WS route: /ws/kitchen
func (h *LiveHub) HandleKitchen(c *gin.Context) {
	h.serve(c, StreamKitchen)
}

// WS route: /ws/tables/:id
func (h *LiveHub) HandleTable(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad table id"})
		return
	}
	exists, err := h.tables.Exists(uint(id))
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "table not found"})
		return
	}
	h.serve(c, tablePrefix+strconv.Itoa(id))
}

func (h *LiveHub) serve(c *gin.Context, stream string) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	sub := subscription{Conn: conn, Stream: stream}
	h.register <- sub
	go h.drain(sub)
}

// drain keeps reading until the client goes away. Inbound frames carry
// nothing; writes happen over HTTP.
func (h *LiveHub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
