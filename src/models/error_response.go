package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Status    int      `json:"status"`              // HTTP Status Code
	Message   string   `json:"message"`             // รายละเอียดของ Error
	RequestID string   `json:"requestId,omitempty"` // correlation id ของ request
	Missing   []string `json:"missing,omitempty"`   // field ที่ขาด (400 เท่านั้น)
}
