package models

// Game is a launchable file discovered in a platform's rom directories
type Game struct {
	Title    string `json:"title"`
	RomPath  string `json:"rom_path"`
	Platform string `json:"platform"`
}
