package services

// EventRecorder receives domain events for metrics. Labels are plain strings
// so recorders do not depend on the health package.
type EventRecorder interface {
	UserRegistered()
	VitalsLogged()
	RiskEvaluated(level string)
	AlertRaised(alertType string, severity string)
}

type noopRecorder struct{}

func (noopRecorder) UserRegistered()            {}
func (noopRecorder) VitalsLogged()              {}
func (noopRecorder) RiskEvaluated(string)       {}
func (noopRecorder) AlertRaised(string, string) {}

func recorderOrNoop(events EventRecorder) EventRecorder {
	if events == nil {
		return noopRecorder{}
	}
	return events
}
