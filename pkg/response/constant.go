package response

// Response messages and codes.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong, please try again later"

	InternalServerErrorCode = 500
)

// DateTimeFormat is the wire format for DateTime.
const DateTimeFormat = "2006-01-02 15:04:05"
