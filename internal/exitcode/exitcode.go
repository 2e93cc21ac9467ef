package exitcode

const (
	Success        = 0
	UsageError     = 1
	InvalidPath    = 2
	CollisionError = 3
	RenameError    = 4
	PartialSuccess = 5
)
