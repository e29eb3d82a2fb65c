package services_test

import (
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/SylleoYr/pegasus-frontend/internal/config"
	"github.com/SylleoYr/pegasus-frontend/internal/services"
	"github.com/SylleoYr/pegasus-frontend/pkg/logger"
	"github.com/SylleoYr/pegasus-frontend/pkg/testutil"
)

func TestLibraryScan(t *testing.T) {
	dir, cleanup := testutil.TempDir(t, "roms")
	defer cleanup()

	testutil.CreateTestFile(t, dir, "zelda.sfc", "")
	testutil.CreateTestFile(t, dir, "mario.SMC", "")
	testutil.CreateTestFile(t, dir, "notes.txt", "")

	platforms := []config.Platform{
		{
			Name:          "snes",
			LaunchCommand: `retroarch "%ROM%"`,
			RomDirs:       []string{dir},
			Extensions:    []string{".sfc", ".smc"},
		},
	}

	library := services.NewLibrary(platforms, logger.NewLogger(logrus.WarnLevel))
	library.Scan()

	games := library.Games("snes")
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d: %v", len(games), games)
	}

	titles := map[string]bool{}
	for _, game := range games {
		titles[game.Title] = true
		if game.Platform != "snes" {
			t.Errorf("unexpected platform %q", game.Platform)
		}
	}
	if !titles["zelda"] || !titles["mario"] {
		t.Errorf("unexpected titles %v", titles)
	}
}

func TestLibraryScan_MissingDirectory(t *testing.T) {
	platforms := []config.Platform{
		{
			Name:          "snes",
			LaunchCommand: `retroarch "%ROM%"`,
			RomDirs:       []string{"/definitely/not/a/real/dir"},
		},
	}

	library := services.NewLibrary(platforms, logger.NewLogger(logrus.WarnLevel))
	library.Scan()

	if games := library.Games("snes"); len(games) != 0 {
		t.Errorf("expected no games for missing directory, got %v", games)
	}
}

func TestLibraryGames_UnknownPlatform(t *testing.T) {
	library := services.NewLibrary(nil, logger.NewLogger(logrus.WarnLevel))
	library.Scan()

	if games := library.Games("psx"); len(games) != 0 {
		t.Errorf("expected no games, got %v", games)
	}
}
