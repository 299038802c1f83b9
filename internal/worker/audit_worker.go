package worker

import (
	"github.com/spec-kit/support-portal/internal/service"
)

// StartAuditRecorder registers audit event handlers.
func StartAuditRecorder(recorder *service.AuditRecorder) {
	if recorder == nil {
		return
	}
	recorder.RegisterHandlers()
}
