package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Internal server error"

	NotFoundErrorCode       = 404
	InternalServerErrorCode = 500
)
