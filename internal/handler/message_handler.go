package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"chatterbox/internal/domain/message"
	"chatterbox/internal/services"
	"chatterbox/internal/transport/httpdto"
	chatterbox_errors "chatterbox/pkg/errors"
	"chatterbox/pkg/logger"

	"github.com/gin-gonic/gin"
)

// MessagesPath is matched anywhere in the request path.
const MessagesPath = "/classes/messages"

// MessageHandler dispatches every request to one of four behaviours and
// writes exactly one response for each.
type MessageHandler struct {
	service      *services.MessageService
	logger       *logger.Logger
	maxBodyBytes int64
}

func NewMessageHandler(service *services.MessageService, l *logger.Logger, maxBodyBytes int64) *MessageHandler {
	if l == nil {
		l = logger.NewNop()
	}
	return &MessageHandler{service: service, logger: l, maxBodyBytes: maxBodyBytes}
}

func (h *MessageHandler) Dispatch(c *gin.Context) {
	h.logger.WithContext(c.Request.Context()).Debugf("Serving request type %s for url %s", c.Request.Method, c.Request.URL.String())

	onMessages := strings.Contains(c.Request.URL.Path, MessagesPath)
	switch {
	case c.Request.Method == http.MethodOptions:
		h.Preflight(c)
	case c.Request.Method == http.MethodGet && onMessages:
		h.List(c)
	case c.Request.Method == http.MethodPost && onMessages:
		h.Post(c)
	default:
		h.NotFound(c)
	}
}

// Preflight acknowledges a CORS preflight. The body is plain text with no Content-Type.
func (h *MessageHandler) Preflight(c *gin.Context) {
	c.Writer.Header()["Content-Type"] = nil
	c.Status(http.StatusOK)
	_, _ = c.Writer.WriteString("OK")
}

func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	h.respond(c, http.StatusOK, messages)
}

func (h *MessageHandler) Post(c *gin.Context) {
	body, err := h.readBody(c)
	if err != nil {
		_ = c.Error(err)
		messages, listErr := h.service.List(c.Request.Context())
		if listErr != nil {
			return
		}
		h.respond(c, statusFor(err), messages)
		return
	}

	messages, err := h.service.Post(c.Request.Context(), body)
	if err != nil {
		_ = c.Error(err)
		if messages == nil {
			return
		}
		h.respond(c, statusFor(err), messages)
		return
	}
	h.respond(c, http.StatusCreated, messages)
}

func (h *MessageHandler) NotFound(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	_ = c.Error(fmt.Errorf("%s %s: %w", c.Request.Method, c.Request.URL.Path, chatterbox_errors.ErrNotFound))
	h.respond(c, http.StatusNotFound, messages)
}

func (h *MessageHandler) readBody(c *gin.Context) ([]byte, error) {
	reader := io.Reader(c.Request.Body)
	if h.maxBodyBytes > 0 {
		reader = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, chatterbox_errors.ErrTooLarge
		}
		return nil, errors.Join(chatterbox_errors.ErrMalformedBody, err)
	}
	return body, nil
}

func (h *MessageHandler) respond(c *gin.Context, status int, messages []message.Message) {
	body, err := httpdto.NewEnvelope(messages).Encode()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Data(status, httpdto.ContentTypeJSON, body)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, chatterbox_errors.ErrRejectedPayload), errors.Is(err, chatterbox_errors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, chatterbox_errors.ErrMalformedBody):
		return http.StatusBadRequest
	case errors.Is(err, chatterbox_errors.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
