package echoapi

import (
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mwenda/classtrack/core"
)

var (
	errUnauthorized         = echo.NewHTTPError(http.StatusUnauthorized, "user not authenticated")
	errAuthenticationFailed = echo.NewHTTPError(http.StatusBadRequest, "incorrect credentials")
	errHTTPForbidden        = echo.NewHTTPError(http.StatusForbidden, "not authorized")
	errHTTPNotFound         = echo.NewHTTPError(http.StatusNotFound, "assignment not found")
)

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler that knows how
// to handle our errors. Anything unanticipated is logged and rendered as a
// generic 500 without internal detail.
func newAppHTTPErrorHandler(logger *zap.Logger, translator ut.Translator) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		var code int
		var detail interface{}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			detail = origErr.Message
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(translator)
			}
			code = http.StatusBadRequest
			detail = fldErrs
		case *core.ValidationError:
			if origErr.Fields != nil {
				fldErrs := make(map[string]string, len(origErr.Fields))
				for _, fErr := range origErr.Fields {
					fldErrs[fErr.Field] = fErr.Error
				}
				detail = fldErrs
			} else {
				detail = origErr.Error()
			}
			code = http.StatusBadRequest
		default: // any other error is a server error
			code = http.StatusInternalServerError
			detail = http.StatusText(http.StatusInternalServerError)
			logger.Error("request failed",
				zap.Error(err),
				zap.String("method", ctx.Request().Method),
				zap.String("path", ctx.Request().URL.Path),
				zap.String("request_id", ctx.Response().Header().Get(echo.HeaderXRequestID)),
			)
		}

		if ctx.Echo().Debug && code == http.StatusInternalServerError {
			detail = err.Error()
		}

		if !ctx.Response().Committed {
			if ctx.Request().Method == http.MethodHead {
				err = ctx.NoContent(code)
			} else {
				err = ctx.JSON(code, echo.Map{"detail": detail})
			}
			if err != nil {
				logger.Error("writing error response", zap.Error(err))
			}
		}
	}
}
