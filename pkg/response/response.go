package response

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"spyglass-srv/pkg/discord"
	"spyglass-srv/pkg/errors"
	"spyglass-srv/pkg/locale"

	"github.com/gin-gonic/gin"
)

// OK answers 200 with data wrapped in Resp.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: ErrorCodeSuccess,
		Message:   locale.T(c.Request.Context(), messageSuccess),
		Data:      data,
	})
}

// Unauthorized answers 401.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   locale.T(c.Request.Context(), messageUnauthorized),
	})
}

// Error answers with the status carried by err. Errors that are not HTTPError
// are reported as 500 and forwarded to Discord when a client is configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	ctx := c.Request.Context()

	var httpErr *errors.HTTPError
	if stderrors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   locale.T(ctx, httpErr.Message),
		})
		return
	}

	var vErrs errors.ValidationErrors
	if stderrors.As(err, &vErrs) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: http.StatusBadRequest,
			Message:   locale.T(ctx, messageBadRequest),
			Errors:    vErrs,
		})
		return
	}

	reportToDiscord(ctx, d, c, err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   locale.T(ctx, messageInternalError),
	})
}

// PanicError answers 500 for a recovered panic.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	err := fmt.Errorf("panic: %v\n%s", recovered, debug.Stack())
	reportToDiscord(c.Request.Context(), d, c, err)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   locale.T(c.Request.Context(), messageInternalError),
	})
}

func reportToDiscord(ctx context.Context, d discord.IDiscord, c *gin.Context, err error) {
	if d == nil {
		return
	}
	title := fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path)
	go func() {
		_ = d.SendError(context.WithoutCancel(ctx), title, "unhandled error", err)
	}()
}
