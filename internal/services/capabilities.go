package services

// Capability tags every write surface of the API. The platform has no role
// system: any authenticated member holds every known capability. Unknown
// tags are always denied, keeping the set closed.
type Capability string

const (
	CapPostForum      Capability = "forum:post"
	CapPostJob        Capability = "jobs:post"
	CapUploadResource Capability = "resources:upload"
	CapCreateEvent    Capability = "events:create"
	CapRegisterEvent  Capability = "events:register"
	CapSendMessage    Capability = "messages:send"
)

var knownCapabilities = map[Capability]bool{
	CapPostForum:      true,
	CapPostJob:        true,
	CapUploadResource: true,
	CapCreateEvent:    true,
	CapRegisterEvent:  true,
	CapSendMessage:    true,
}

// Allowed reports whether the authenticated identity holds the capability.
func Allowed(id Identity, cap Capability) bool {
	if id.UserID <= 0 {
		return false
	}
	return knownCapabilities[cap]
}
