package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"pairup/auth"
	"pairup/contract"
	"pairup/domain"
	"pairup/errors"
	"pairup/services"
)

type Handlers struct {
	matcher services.IMatchService
	catalog contract.ITopicCatalog
	tokens  *auth.TokenService
	log     *slog.Logger
}

func NewHandlers(matcher services.IMatchService, catalog contract.ITopicCatalog,
	tokens *auth.TokenService, log *slog.Logger) *Handlers {
	return &Handlers{matcher: matcher, catalog: catalog, tokens: tokens, log: log}
}

func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// MintToken issues a bearer token for a fresh identity. In production the
// identity provider sits in front of this service; this endpoint covers
// development and the probe CLI.
func (h *Handlers) MintToken(c echo.Context) error {
	var req auth.TokenRequest
	if err := c.Bind(&req); err != nil {
		return errors.MapToHTTPError(errors.ErrBadPayload)
	}
	if err := auth.ValidateStruct(req); err != nil {
		return errors.MapToHTTPError(errors.ErrBadPayload)
	}

	identity := domain.Identity{
		ID:          domain.IdentityID(uuid.NewString()),
		DisplayName: req.DisplayName,
	}
	token, err := h.tokens.Generate(identity)
	if err != nil {
		return errors.MapToHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"identity_id": string(identity.ID),
		"token":       token,
	})
}

type joinResponse struct {
	Matched   bool       `json:"matched"`
	SessionID string     `json:"session_id,omitempty"`
	Room      string     `json:"room,omitempty"`
	Partner   string     `json:"partner,omitempty"`
	Name      string     `json:"partner_name,omitempty"`
	Topic     string     `json:"topic"`
	Since     *time.Time `json:"waiting_since,omitempty"`
}

func (h *Handlers) Join(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	var req auth.JoinRequest
	if err := c.Bind(&req); err != nil {
		return errors.MapToHTTPError(errors.ErrBadPayload)
	}
	if err := auth.ValidateStruct(req); err != nil {
		return errors.MapToHTTPError(errors.ErrBadPayload)
	}

	outcome, err := h.matcher.Join(identity, domain.TopicID(req.TopicID), "")
	if err != nil {
		return errors.MapToHTTPError(err)
	}
	if !outcome.Matched() {
		return c.JSON(http.StatusAccepted, joinResponse{
			Matched: false,
			Topic:   req.TopicID,
			Since:   lo.ToPtr(outcome.Waiting.EnqueuedAt),
		})
	}
	return c.JSON(http.StatusOK, joinResponse{
		Matched:   true,
		SessionID: outcome.Session.ID.String(),
		Room:      string(outcome.Session.Room),
		Partner:   string(outcome.Partner.Identity),
		Name:      outcome.Partner.DisplayName,
		Topic:     req.TopicID,
	})
}

func (h *Handlers) Leave(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	var topic *domain.TopicID
	if t := c.QueryParam("topic_id"); t != "" {
		topic = lo.ToPtr(domain.TopicID(t))
	}
	removed := h.matcher.Leave(identity.ID, topic)
	return c.JSON(http.StatusOK, map[string]int{"removed": removed})
}

func (h *Handlers) Status(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	view, err := h.matcher.Status(identity.ID)
	if err != nil {
		return errors.MapToHTTPError(err)
	}
	return c.JSON(http.StatusOK, view)
}

type historyResponse struct {
	Sessions []domain.Session `json:"sessions"`
	Cursor   *string          `json:"cursor,omitempty"`
}

func (h *Handlers) History(c echo.Context) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	var cursor *string
	if q := c.QueryParam("cursor"); q != "" {
		cursor = &q
	}
	sessions, next, err := h.matcher.History(identity.ID, cursor)
	if err != nil {
		return errors.MapToHTTPError(err)
	}
	return c.JSON(http.StatusOK, historyResponse{Sessions: sessions, Cursor: next})
}

func (h *Handlers) End(c echo.Context) error {
	return h.terminate(c, h.matcher.End)
}

func (h *Handlers) Cancel(c echo.Context) error {
	return h.terminate(c, h.matcher.Cancel)
}

func (h *Handlers) terminate(c echo.Context,
	op func(domain.IdentityID, uuid.UUID) (*domain.Session, error)) error {
	identity, err := identityFrom(c)
	if err != nil {
		return err
	}
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.MapToHTTPError(errors.ErrBadPayload)
	}
	session, err := op(identity.ID, sessionID)
	if err != nil {
		return errors.MapToHTTPError(err)
	}
	return c.JSON(http.StatusOK, session)
}

func (h *Handlers) ListTopics(c echo.Context) error {
	topics, err := h.catalog.List()
	if err != nil {
		return errors.MapToHTTPError(err)
	}
	return c.JSON(http.StatusOK, topics)
}

func (h *Handlers) PutTopic(c echo.Context) error {
	var req auth.TopicRequest
	if err := c.Bind(&req); err != nil {
		return errors.MapToHTTPError(errors.ErrBadPayload)
	}
	if err := auth.ValidateStruct(req); err != nil {
		return errors.MapToHTTPError(errors.ErrBadPayload)
	}
	topic := domain.Topic{
		ID:        domain.TopicID(req.ID),
		Title:     req.Title,
		Active:    req.Active,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.catalog.Put(topic); err != nil {
		return errors.MapToHTTPError(err)
	}
	return c.JSON(http.StatusCreated, topic)
}

// identityFrom extracts the authenticated identity the JWT middleware left
// on the context.
func identityFrom(c echo.Context) (domain.Identity, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return domain.Identity{}, errors.MapToHTTPError(errors.ErrInvalidToken)
	}
	claims, ok := token.Claims.(*auth.CustomClaims)
	if !ok || claims.IdentityID == "" {
		return domain.Identity{}, errors.MapToHTTPError(errors.ErrInvalidToken)
	}
	return domain.Identity{
		ID:          domain.IdentityID(claims.IdentityID),
		DisplayName: claims.DisplayName,
	}, nil
}
