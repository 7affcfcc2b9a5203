package agent

// SharingState names the publisher's lifecycle phase
type SharingState string

// Sharing session states
const (
	StateIdle              SharingState = "idle"
	StatePermissionPending SharingState = "permission_pending"
	StateSharing           SharingState = "sharing"
)
