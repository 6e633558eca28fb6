package dto

// Status is the coarse outcome carried by every response envelope.
// Domain outcomes always ride inside the body with HTTP 200; the status
// field is the only signal clients are expected to branch on.
type Status string

const (
	StatusOK              Status = "ok"
	StatusNotFound        Status = "not_found"
	StatusValidationError Status = "validation_error"
	StatusInternalError   Status = "internal_error"
)

// StatusResponse is the uniform JSON envelope. Message carries a human
// readable diagnostic; detailed driver errors stay in the logs and are
// never interpolated here.
type StatusResponse struct {
	Status    Status      `json:"status"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	ChapterID *int64      `json:"chapterID,omitempty"`
}

// OK builds a bare success envelope.
func OK() StatusResponse {
	return StatusResponse{Status: StatusOK}
}

// OKWithData builds a success envelope wrapping an entity payload.
func OKWithData(data interface{}) StatusResponse {
	return StatusResponse{Status: StatusOK, Data: data}
}

// OKWithChapterID builds a success envelope echoing a chapter id.
func OKWithChapterID(id int64) StatusResponse {
	return StatusResponse{Status: StatusOK, ChapterID: &id}
}

// Error builds a failure envelope with the given status and message.
func Error(status Status, message string) StatusResponse {
	return StatusResponse{Status: status, Message: message}
}
