package planner

import (
	"encoding/json"
	"fmt"

	"saigon-foodtour/internal/schedule"
)

// UserError is a planning failure meant to be shown to the user verbatim
// (missing radius, nothing found). Anything else returned by the
// orchestrator is an internal fault.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// ErrNoRadius is returned when the request carries no usable radius.
var ErrNoRadius = &UserError{Message: "Vui lòng chọn bán kính tìm kiếm trước khi lập lịch trình."}

func errNoMatch(radiusKM float64) *UserError {
	return &UserError{Message: fmt.Sprintf(
		"Không tìm thấy địa điểm phù hợp nào trong bán kính %.1f km. Hãy thử mở rộng bán kính hoặc đổi chủ đề.",
		radiusKM)}
}

// Response is the envelope handed to the presentation layer: either an
// error message or a plan, never both.
type Response struct {
	Error   bool           `json:"error"`
	Message string         `json:"message,omitempty"`
	Plan    *schedule.Plan `json:"plan,omitempty"`
}

// NewResponse wraps an orchestrator result into the wire envelope.
func NewResponse(plan *schedule.Plan, err error) Response {
	if err != nil {
		return Response{Error: true, Message: err.Error()}
	}
	return Response{Plan: plan}
}

// MarshalJSON flattens a successful response to the bare plan shape so
// that a saved response can be fed back in as a plan.
func (r Response) MarshalJSON() ([]byte, error) {
	if r.Error {
		type errEnvelope struct {
			Error   bool   `json:"error"`
			Message string `json:"message"`
		}
		return json.Marshal(errEnvelope{Error: true, Message: r.Message})
	}
	return json.Marshal(r.Plan)
}
