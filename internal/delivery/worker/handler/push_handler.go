// Package handler contains the Pub/Sub push handler of the geo worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"foodcart/config"
	deliverycontext "foodcart/internal/delivery/context"
	"foodcart/internal/domain/constants"
	"foodcart/internal/domain/entity"
	"foodcart/internal/domain/service"
	"foodcart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage is the body of a push request.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Push subscriptions redeliver on any status outside 2xx.
const (
	statusAck   = http.StatusOK
	statusRetry = http.StatusServiceUnavailable
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// tokenVerifier checks the bearer token of a push request.
type tokenVerifier func(req *http.Request) error

// PushHandler resolves addresses delivered as geocode request events.
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    tokenVerifier
	logger         *slog.Logger
	resolver       usecase.CoordinateResolver
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Resolver usecase.CoordinateResolver
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only real Google pushes carry an OIDC token
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		logger:         params.Logger,
		resolver:       params.Resolver,
	}
}

// HandlePush resolves the address carried by one push message.
// Only failures that may pass on redelivery are answered with 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	pushMsg, event, err := decodePush(c)
	if err != nil {
		h.logger.Error("[Worker] Malformed push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx := c.Request().Context()
	requestID := h.extractRequestID(ctx, pushMsg, event)
	logger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("event_id", event.EventID),
	)
	ctx = deliverycontext.WithLogger(deliverycontext.WithRequestID(ctx, requestID), logger)

	// The cache is keyed by the literal address, so the event value is used as is.
	address := entity.Address(event.Address)
	if strings.TrimSpace(event.Address) == "" {
		logger.Warn("[Worker] Dropping geocode request without address")

		return c.NoContent(statusAck)
	}

	coords, err := h.resolver.EnsureResolved(ctx, address)
	if err != nil {
		retry := shouldRetry(err)
		logger.Error("[Worker] Failed to resolve address",
			slog.String("address", address.String()),
			slog.Bool("retry", retry),
			slog.Any("error", err),
		)
		if retry {
			return c.NoContent(statusRetry)
		}

		return c.NoContent(statusAck)
	}

	logger.Info("[Worker] Address resolved",
		slog.String("address", address.String()),
		slog.Float64("lat", coords.Lat),
		slog.Float64("lng", coords.Lng),
	)

	return c.NoContent(statusAck)
}

func decodePush(c echo.Context) (*PubSubMessage, *service.GeocodeRequestEvent, error) {
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		return nil, nil, errors.Wrap(err, "bind push body")
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode message data")
	}

	var event service.GeocodeRequestEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, errors.Wrap(err, "parse geocode request")
	}

	return &pushMsg, &event, nil
}

// extractRequestID prefers the message attribute, then the event, then the X-Request-Id of the push.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.GeocodeRequestEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

// shouldRetry is true for provider failures and for anything that is not a geocoding error,
// such as the database being unavailable. Unknown or garbled addresses stay that way.
func shouldRetry(err error) bool {
	kind, ok := service.GeocodeErrorKindOf(err)

	return !ok || kind == service.GeocodeProviderFailure
}

// verifyPubSubToken validates the Google-signed OIDC token of a push request.
// The expected audience is the URL the push was sent to.
func verifyPubSubToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if !googleIssuers[payload.Issuer] {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
