package provision

// Stage is a step of the provisioning workflow.
type Stage int

// Stages in execution order. A run ends in StageDone or StageFailed.
const (
	StageCheckingExistence Stage = iota
	StageResolvingIdentity
	StageResolvingGateway
	StageCreating
	StageAttachingPolicy
	StageDone
	StageFailed
)

var stageNames = map[Stage]string{
	StageCheckingExistence: "checking-existence",
	StageResolvingIdentity: "resolving-identity",
	StageResolvingGateway:  "resolving-gateway",
	StageCreating:          "creating",
	StageAttachingPolicy:   "attaching-policy",
	StageDone:              "done",
	StageFailed:            "failed",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "unknown"
}
