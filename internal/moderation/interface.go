package moderation

// Checker runs the content safety pass for project submissions.
// Implementations are safe for concurrent use.
type Checker interface {
	Check(content Content) SafetyCheck
}
