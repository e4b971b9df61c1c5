package models

// ControlStatusOK is the only status value treated as a successful push.
const ControlStatusOK = "OK"

// ControlResult is the device reply to GET /api/gpio/push/{pin}.
type ControlResult struct {
	Status string `json:"status"` // OK | NG | anything else
}

// Succeeded reports whether the device accepted the command.
func (r ControlResult) Succeeded() bool {
	return r.Status == ControlStatusOK
}
