package problems

import "net/http"

// Problem is the JSON error body returned by every failing endpoint. It follows
// RFC 7807 except that the human readable detail is carried under "error".
type Problem struct {
	Type     string       `json:"type,omitempty"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"error"`
	Instance string       `json:"instance,omitempty"`
	TraceID  string       `json:"traceId,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (p *Problem) Error() string {
	return p.Detail
}

// New creates a Problem with the given status and detail.
func New(status int, detail string) *Problem {
	return &Problem{
		Type:   "about:blank",
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
}

func BadRequest(detail string, errs ...FieldError) *Problem {
	p := New(http.StatusBadRequest, detail)
	p.Errors = errs
	return p
}

func NotFound(detail string) *Problem {
	return New(http.StatusNotFound, detail)
}

func InternalServerError() *Problem {
	return New(http.StatusInternalServerError, "internal server error")
}

func TooManyRequests(detail string) *Problem {
	return New(http.StatusTooManyRequests, detail)
}

func ServiceUnavailable(detail string) *Problem {
	return New(http.StatusServiceUnavailable, detail)
}

func GatewayTimeout(detail string) *Problem {
	return New(http.StatusGatewayTimeout, detail)
}
