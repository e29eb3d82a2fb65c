package models

// Launch statuses persisted to the history database
const (
	StatusQueued    = "queued"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusCrashed   = "crashed"
	StatusFailed    = "failed"
)

type Launch struct {
	UUID         string `gorm:"primaryKey;type:varchar(36)" json:"uuid"`
	Platform     string `json:"platform"`
	GameTitle    string `json:"game_title"`
	RomPath      string `json:"rom_path"`
	Command      string `json:"command"`
	Status       string `json:"status"`
	ExitCode     int    `json:"exit_code"`
	ErrorKind    string `json:"error_kind"`
	ErrorMessage string `json:"error_message"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}
