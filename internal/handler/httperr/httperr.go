package httperr

import (
	"net/http"

	"pass-config-engine/internal/pkg/errs"
	"pass-config-engine/internal/usecase/commands"

	cr "github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// IncompleteDetail is returned with a refused promotion.
type IncompleteDetail struct {
	Missing []string `json:"missing"`
}

// FromError aborts with the status matching the error's category.
// Validation and conflict messages come from the error itself; storage
// failures are reported generically.
func FromError(c *gin.Context, err error) {
	status, msg := Status(err)

	var detail any
	var incomplete *commands.IncompleteError
	if cr.As(err, &incomplete) {
		names := make([]string, len(incomplete.Missing))
		for i, d := range incomplete.Missing {
			names[i] = d.String()
		}
		detail = IncompleteDetail{Missing: names}
	}
	AbortWithError(c, status, err, msg, detail)
}

func Status(err error) (int, string) {
	switch errs.Category(err) {
	case errs.ErrValidation:
		return http.StatusBadRequest, rootMessage(err)
	case errs.ErrNotFound:
		return http.StatusNotFound, rootMessage(err)
	case errs.ErrConflict:
		return http.StatusConflict, rootMessage(err)
	case errs.ErrPersistence:
		return http.StatusServiceUnavailable, "Storage is temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}

// rootMessage drops the taxonomy prefix so clients see the rule that failed.
func rootMessage(err error) string {
	var incomplete *commands.IncompleteError
	if cr.As(err, &incomplete) {
		return incomplete.Error()
	}
	return cr.UnwrapAll(err).Error()
}
