package ws

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"pairup/contract"
	"pairup/errors"
	"pairup/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  maxMessageSize,
	WriteBufferSize: maxMessageSize,
	// Browsers connect from the app origin; tighten this when the frontend
	// domain is fixed.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades authenticated HTTP requests to websocket connections and
// binds them into the registry.
type Handler struct {
	identities     contract.IIdentityProvider
	registry       contract.IRegistry
	relay          contract.IRelay
	matcher        services.IMatchService
	sendBufferSize int
	reclaimGrace   time.Duration
	log            *slog.Logger
}

func NewHandler(identities contract.IIdentityProvider, registry contract.IRegistry,
	relay contract.IRelay, matcher services.IMatchService,
	sendBufferSize int, reclaimGrace time.Duration, log *slog.Logger) *Handler {
	return &Handler{
		identities:     identities,
		registry:       registry,
		relay:          relay,
		matcher:        matcher,
		sendBufferSize: sendBufferSize,
		reclaimGrace:   reclaimGrace,
		log:            log,
	}
}

// Serve authenticates the bearer credential, upgrades the connection, and
// starts the read/write pumps. Auth failure refuses the transport before
// any core state is touched.
func (h *Handler) Serve(c echo.Context) error {
	identity, err := h.identities.Authenticate(bearerToken(c))
	if err != nil {
		return errors.MapToHTTPError(err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "error", err)
		return nil
	}

	client := NewClient(conn, identity, h.registry, h.relay, h.matcher,
		h.sendBufferSize, h.reclaimGrace, h.log)

	stale, _ := h.registry.Lookup(identity.ID)
	superseded := h.registry.Register(identity.ID, client.HandleID(), client)
	if superseded != "" {
		h.log.Info("connection superseded",
			"identity", string(identity.ID), "old_handle", superseded)
		// The registry only drops the mapping; closing the old transport is
		// this layer's job, otherwise its pumps keep the stale socket alive.
		if old, ok := stale.(*Client); ok {
			old.Close()
		}
	}

	// A websocket arriving after an HTTP enqueue late-binds its handle to the
	// waiting entries.
	h.matcher.BindTransport(identity.ID, client.HandleID())

	go client.WritePump()
	go client.ReadPump()
	return nil
}

// bearerToken accepts the credential either as an Authorization header or,
// for browser WebSocket clients that cannot set headers, a query parameter.
func bearerToken(c echo.Context) string {
	if header := c.Request().Header.Get("Authorization"); header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.QueryParam("token")
}
