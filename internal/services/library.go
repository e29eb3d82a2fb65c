package services

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/SylleoYr/pegasus-frontend/internal/config"
	"github.com/SylleoYr/pegasus-frontend/internal/models"
	"github.com/SylleoYr/pegasus-frontend/pkg/launcher"
	"github.com/SylleoYr/pegasus-frontend/pkg/logger"
)

// Library indexes the games found in the configured platform rom
// directories. The index is rebuilt on demand and kept fresh by a
// filesystem watcher while the server runs.
type Library struct {
	platforms []config.Platform
	logger    *logger.Logger
	mu        sync.RWMutex
	games     map[string][]models.Game
	dirty     bool
}

func NewLibrary(platforms []config.Platform, log *logger.Logger) *Library {
	return &Library{
		platforms: platforms,
		logger:    log,
		games:     make(map[string][]models.Game),
	}
}

// Scan rebuilds the game index from the platform rom directories. Missing
// directories are skipped with a warning, not treated as errors.
func (l *Library) Scan() {
	index := make(map[string][]models.Game)

	for _, platform := range l.platforms {
		var games []models.Game
		for _, dir := range platform.RomDirs {
			entries, err := os.ReadDir(dir)
			if err != nil {
				l.logger.Warn("Skipping unreadable rom directory", logger.Fields{
					"platform": platform.Name,
					"dir":      dir,
					"error":    err,
				})
				continue
			}
			for _, entry := range entries {
				if entry.IsDir() || !platform.HasExtension(entry.Name()) {
					continue
				}
				romPath := filepath.Join(dir, entry.Name())
				games = append(games, models.Game{
					Title:    launcher.Basename(romPath),
					RomPath:  romPath,
					Platform: platform.Name,
				})
			}
		}
		index[platform.Name] = games
		l.logger.Info("Platform scanned", logger.Fields{
			"platform": platform.Name,
			"games":    len(games),
		})
	}

	l.mu.Lock()
	l.games = index
	l.dirty = false
	l.mu.Unlock()
}

// Games returns the indexed games for one platform
func (l *Library) Games(platform string) []models.Game {
	l.mu.RLock()
	defer l.mu.RUnlock()
	games := make([]models.Game, len(l.games[platform]))
	copy(games, l.games[platform])
	return games
}

// Platforms returns the configured platform definitions
func (l *Library) Platforms() []config.Platform {
	return l.platforms
}

func (l *Library) markDirty() {
	l.mu.Lock()
	l.dirty = true
	l.mu.Unlock()
}

func (l *Library) isDirty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.dirty
}

// Watch keeps the index fresh by watching the rom directories for changes
// until the context is cancelled. Rescans are batched on a short ticker so a
// burst of file events triggers a single rescan.
func (l *Library) Watch(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		l.logger.Error("Failed to create rom directory watcher", logger.Fields{"error": err})
		return
	}
	defer watcher.Close()

	watched := 0
	for _, platform := range l.platforms {
		for _, dir := range platform.RomDirs {
			if err := watcher.Add(dir); err != nil {
				l.logger.Warn("Error adding rom directory to watcher", logger.Fields{
					"dir":   dir,
					"error": err,
				})
				continue
			}
			watched++
		}
	}
	if watched == 0 {
		l.logger.Warn("No rom directories available to watch")
		return
	}

	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				l.markDirty()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			l.logger.Warn("Rom directory watcher error", logger.Fields{"error": err})
		case <-ticker.C:
			if l.isDirty() {
				l.Scan()
			}
		}
	}
}
