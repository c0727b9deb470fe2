package ws

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"pairup/domain"
	"pairup/mocks"
	"pairup/runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Supersede_Closes_Old_Transport(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	identities := mocks.NewMockIIdentityProvider(ctrl)
	store := mocks.NewMockISessionStore(ctrl)
	registry := runtime.NewRegistry()
	relay := runtime.NewRelay(registry, store, slog.Default())
	identity := domain.Identity{ID: domain.IdentityID(uuid.NewString()), DisplayName: "Alice"}
	identities.EXPECT().Authenticate("tok").Return(identity, nil).Times(2)

	handler := NewHandler(identities, registry, relay, stubMatcher{}, 8, time.Minute, slog.Default())
	e := echo.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = handler.Serve(e.NewContext(r, w))
	}))
	defer server.Close()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/?token=tok"

	// Given a connected identity
	first, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	req.NoError(err)
	defer first.Close()

	// When the same identity connects again
	second, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	req.NoError(err)
	defer second.Close()

	// Then the superseded transport is closed by the server
	_ = first.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = first.ReadMessage()
	req.Error(err)

	// And the newer connection still serves the identity
	req.NoError(second.WriteJSON(Frame{Kind: "bogus"}))
	_ = second.SetReadDeadline(time.Now().Add(2 * time.Second))
	var reply Frame
	req.NoError(second.ReadJSON(&reply))
	req.Equal(frameError, reply.Kind)
}
