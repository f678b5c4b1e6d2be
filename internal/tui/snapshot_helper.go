package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// SnapshotHelper manages golden files of rendered screens
type SnapshotHelper struct {
	t           *testing.T
	updateMode  bool
	snapshotDir string
}

// NewSnapshotHelper creates a new snapshot helper
func NewSnapshotHelper(t *testing.T) *SnapshotHelper {
	return &SnapshotHelper{
		t:           t,
		updateMode:  os.Getenv("UPDATE_SNAPSHOTS") == "1",
		snapshotDir: filepath.Join("testdata", "snapshots"),
	}
}

// normalizeScreen drops colours and trailing blanks so snapshots only
// capture geometry and text.
func normalizeScreen(screen string) string {
	lines := strings.Split(ansi.Strip(screen), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n") + "\n"
}

// Compare compares a rendered screen against a golden file
// If UPDATE_SNAPSHOTS=1, updates the golden file instead of comparing
func (sh *SnapshotHelper) Compare(name, screen string) {
	sh.t.Helper()
	output := normalizeScreen(screen)

	// Ensure snapshot directory exists
	if err := os.MkdirAll(sh.snapshotDir, 0o755); err != nil {
		sh.t.Fatalf("Failed to create snapshot directory: %v", err)
	}

	snapshotPath := filepath.Join(sh.snapshotDir, name+".golden")

	if sh.updateMode {
		if err := os.WriteFile(snapshotPath, []byte(output), 0o644); err != nil {
			sh.t.Fatalf("Failed to write snapshot file: %v", err)
		}
		sh.t.Logf("Updated snapshot: %s", snapshotPath)
		return
	}

	golden, err := os.ReadFile(snapshotPath)
	if err != nil {
		if os.IsNotExist(err) {
			sh.t.Fatalf("Snapshot file does not exist: %s\nRun UPDATE_SNAPSHOTS=1 to create it", snapshotPath)
		}
		sh.t.Fatalf("Failed to read snapshot file: %v", err)
	}

	if string(golden) != output {
		sh.t.Errorf("Snapshot mismatch for %s\n\nExpected:\n%s\n\nGot:\n%s\n\nRun UPDATE_SNAPSHOTS=1 to update",
			name, string(golden), output)
	}
}
