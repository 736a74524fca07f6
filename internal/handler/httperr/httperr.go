package httperr

import (
	"errors"
	"net/http"

	"hotelcore/internal/pkg/errs"

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

// StatusOf maps a use case error onto its HTTP status. Missing entities and
// rates are 404; booking conflicts, duplicates and lifecycle collisions
// are 409; state machine refusals and validation failures are 422. Anything
// the taxonomy does not recognize is a 500.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotFound), errors.Is(err, errs.ErrRateNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrDuplicateEntity),
		errors.Is(err, errs.ErrDuplicateInvoice),
		errors.Is(err, errs.ErrAlreadyPaid),
		errors.Is(err, errs.ErrInUse):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInvoiceClosed),
		errors.Is(err, errs.ErrValidation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// detailOf surfaces the structured payload of typed booking errors so
// clients can act on them without parsing the message.
func detailOf(err error) any {
	var conflict *errs.ConflictError
	if errors.As(err, &conflict) {
		return gin.H{"roomId": conflict.RoomID, "checkIn": conflict.CheckIn, "checkOut": conflict.CheckOut}
	}
	var transition *errs.InvalidTransitionError
	if errors.As(err, &transition) {
		return gin.H{"entity": transition.Entity, "id": transition.ID, "from": transition.From}
	}
	var validation *errs.ValidationError
	if errors.As(err, &validation) {
		return gin.H{"field": validation.Field, "reason": validation.Reason}
	}
	var rate *errs.RateNotFoundError
	if errors.As(err, &rate) {
		return gin.H{"ratePlanId": rate.RatePlanID, "categoryId": rate.CategoryID}
	}
	var inUse *errs.InUseError
	if errors.As(err, &inUse) {
		return gin.H{"entity": inUse.Entity, "id": inUse.ID, "referrers": inUse.Referrers}
	}
	return nil
}

// Domain renders a use case error with its taxonomy status and detail.
func Domain(c *gin.Context, err error) {
	status := StatusOf(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	AbortWithError(c, status, err, msg, detailOf(err))
}

func BadRequest(c *gin.Context, err error, msg string) {
	AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
