package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"trackr/list"
)

var (
	buildOnce sync.Once
	binPath   string
	buildErr  error
)

// BuildTrackr builds the trackr binary once and returns its path.
func BuildTrackr(t testing.TB) string {
	t.Helper()

	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		binDir, err := os.MkdirTemp("", "trackr-bin-")
		if err != nil {
			buildErr = err
			return
		}

		binPath = filepath.Join(binDir, "trackr")
		cmd := exec.Command("go", "build", "-o", binPath, "./cmd/trackr")
		cmd.Dir = moduleRoot
		output, err := cmd.CombinedOutput()
		if err != nil {
			buildErr = fmt.Errorf("build trackr: %w: %s", err, strings.TrimSpace(string(output)))
		}
	})

	if buildErr != nil {
		t.Fatalf("%v", buildErr)
	}

	return binPath
}

// SetupScriptEnv configures common environment variables for testscript.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	env.Setenv("TRACKR", BuildTrackr(t))

	homeDir := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(homeDir); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("TRACKR_STATE_DIR", filepath.Join(homeDir, ".local", "state", "trackr"))
	env.Setenv("NO_COLOR", "1")
	return nil
}

// CmdListID finds a list by title in a state file and stores its ID in an env var.
func CmdListID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("listid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: listid FILE TITLE VAR")
	}

	var lists []list.List
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &lists); err != nil {
		ts.Fatalf("parse list state: %v", err)
	}

	title := args[1]
	for _, l := range lists {
		if l.Title == title {
			ts.Setenv(args[2], l.ID)
			return
		}
	}

	ts.Fatalf("list with title %q not found", title)
}

// CmdItemID finds an item by title across all lists and stores its ID in an env var.
func CmdItemID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("itemid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: itemid FILE TITLE VAR")
	}

	var lists []list.List
	data := ts.ReadFile(args[0])
	if err := json.Unmarshal([]byte(data), &lists); err != nil {
		ts.Fatalf("parse list state: %v", err)
	}

	title := args[1]
	for _, l := range lists {
		for _, item := range l.Items {
			if item.Title == title {
				ts.Setenv(args[2], item.ID)
				return
			}
		}
	}

	ts.Fatalf("item with title %q not found", title)
}

func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find module root (go.mod)")
		}
		dir = parent
	}
}
