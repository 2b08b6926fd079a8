package response

const (
	// ErrorCodeSuccess is returned with every successful answer.
	ErrorCodeSuccess = 0

	messageSuccess       = "common.success"
	messageUnauthorized  = "common.unauthorized"
	messageInternalError = "common.internal_error"
	messageBadRequest    = "common.bad_request"
)
