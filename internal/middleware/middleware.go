package middleware

import (
	"net/http"
	"strconv"

	"github.com/ajinkya1806/Data-Diggers/internal/handlers"
	"github.com/ajinkya1806/Data-Diggers/internal/metrics"
	"github.com/ajinkya1806/Data-Diggers/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

var GetHandler = WrapPublic(handlers.GetHandler)
var SignupHandler = WrapPublic(handlers.SignupHandler)
var SigninHandler = WrapPublic(handlers.SigninHandler)

var ProfileHandler = Wrap(handlers.ProfileHandler)
var UploadHandler = Wrap(handlers.UploadHandler)
var UpdateFieldsHandler = Wrap(handlers.UpdateFieldsHandler)

// Wrap guards an authenticated route; WrapPublic skips the token check
// (signin, signup, health).
func Wrap(next http.HandlerFunc) http.HandlerFunc {
	return wrap(next, true)
}

func WrapPublic(next http.HandlerFunc) http.HandlerFunc {
	return wrap(next, false)
}

func wrap(next http.HandlerFunc, requireAuth bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: 200} //metrics
		re := processRequest(requestResponseStruct{req: r, writer: rec}, requireAuth)

		if re.badRequest.isBadRequest {
			handleBadRequest(re)
			return
		}
		next(rec, re.req)

		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

func processRequest(re requestResponseStruct, requireAuth bool) requestResponseStruct {
	re.logger = logger_i.NewLogger("middleware")
	re.logger.Info("New request received")

	re = injectTrace(re)
	if re.badRequest.isBadRequest {
		return re
	}
	re = rateLimiter(re)
	if re.badRequest.isBadRequest {
		return re //stop here if rate limit fails
	}
	if requireAuth {
		re = authenticate(re)
	}
	return re
}
