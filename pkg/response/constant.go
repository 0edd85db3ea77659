package response

const (
	MessageSuccess     = "Success"
	MessageUnavailable = "Service unavailable"
)
