package handlers

// LaunchRequest is the payload for starting a game launch
type LaunchRequest struct {
	Platform string `json:"platform"`
	RomPath  string `json:"rom_path"`
}

// LaunchResponse carries the id of a started launch attempt
type LaunchResponse struct {
	LaunchID string `json:"launch_id"`
}
