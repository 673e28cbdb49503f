package messages

const (
	ChampionCreated     = "Champion created successfully"
	ChampionDeleted     = "Champion deleted successfully"
	ChampionExists      = "champion already exists"
	ChampionNotFound    = "Champion not found"
	ChampionUpdated     = "Champion updated successfully"
	CredentialsRequired = "Email and password are required"
	FileTooLarge        = "File is too large"
	ImageRequired       = "Image is required"
	InvalidCredentials  = "Invalid email or password"
	InvalidFileType     = "Invalid file type"
	InvalidRequest      = "Invalid request"
	InvalidRoles        = "Invalid role(s) provided"
	InvalidToken        = "missing or invalid token"
	NameRequired        = "Name is required"
	OperationInProgress = "operation already in progress, please wait"
	PasswordTooLong     = "Password is too long"
	UserCreated         = "User created successfully"
	UserExists          = "user already exists"

	FailedToCreateChampion = "Failed to upload file or save data"
	FailedToDeleteChampion = "Failed to delete champion"
	FailedToFetchChampion  = "Failed to fetch champion"
	FailedToFetchChampions = "Failed to fetch champions"
	FailedToUpdateChampion = "Failed to update champion"
	FailedToCreateUser     = "Failed to create user"
	FailedToFetchUsers     = "Failed to fetch users"
	FailedToLogin          = "Failed to login"
)
