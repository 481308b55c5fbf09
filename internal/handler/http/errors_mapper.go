package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-phone-auth/internal/app"
	"github.com/MKhiriev/go-phone-auth/internal/service"
	"github.com/MKhiriev/go-phone-auth/internal/store"
)

// errorResponse is the status and user-facing message an error is reported
// with.
type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	ErrInvalidJSON:                 {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrInvalidDataProvided: {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrInvalidCredentials:  {http.StatusBadRequest, app.MsgInvalidCredentials},
	store.ErrPhoneAlreadyExists:    {http.StatusBadRequest, app.MsgPhoneAlreadyExists},

	ErrEmptyAuthorizationHeader:        {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	ErrInvalidAuthorizationHeader:      {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrTokenIsExpired:          {http.StatusUnauthorized, app.MsgTokenIsExpired},
	service.ErrTokenIsMalformed:        {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrTokenSignatureInvalid:   {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
}

var internalErrorResponse = errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return internalErrorResponse
}

func statusFromError(err error) int {
	return responseFromError(err).status
}
