package response

const (
	MessageMethodNotAllowed = "Method not allowed"
	MessageUnauthorized     = "Unauthorized"
	MessageForbidden        = "Forbidden"
	MessageRateLimited      = "Rate limit exceeded"
	MessageNotFound         = "Not found"
	DefaultErrorMessage     = "Internal server error"
)
