package userservice

const (
	// Error messages for user service operations
	MsgFailedToHashPassword = "failed to hash password" // #nosec G101
	MsgFailedToCreateUser   = "failed to create user"
	MsgRetrievingUser       = "error retrieving user"
	MsgUserNotFound         = "user not found"
	MsgInvalidPassword      = "invalid password"
	MsgMissingFields        = "username and password are required"
)
