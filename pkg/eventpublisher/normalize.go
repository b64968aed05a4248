package eventpublisher

import "strings"

const (
	typePipelineRunStarted  = "pipelinerun.started"
	typePipelineRunFinished = "pipelinerun.finished"
	typeTaskRunStarted      = "taskrun.started"
	typeTaskRunFinished     = "taskrun.finished"
)

// normalizeType accepts short names and full CDEvents type strings.
func normalizeType(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	v = strings.TrimPrefix(v, "dev.cdevents.")
	parts := strings.Split(v, ".")
	if len(parts) < 2 {
		return v
	}
	return parts[0] + "." + parts[1]
}

func normalizeOutcome(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "success", "succeeded", "ok":
		return "success"
	case "error", "errored":
		return "error"
	default:
		return "failure"
	}
}
