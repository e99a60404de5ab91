package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/framedata/internal/diag"
	"github.com/vovakirdan/framedata/internal/frames"
	"github.com/vovakirdan/framedata/internal/hitbox"
	"github.com/vovakirdan/framedata/internal/report"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRun(mod, marker string) *report.ModReport {
	return &report.ModReport{
		Name: mod,
		Fighters: []report.FighterReport{
			{
				Name: "Mario",
				Subactions: []report.SubactionReport{
					{
						Fighter:    "Mario",
						Name:       "AttackS4S",
						Index:      3,
						Attributes: []report.Attribute{{Label: "IASA", Value: marker}},
						HitboxTables: []hitbox.Table{{
							Frames: "Frames: 2-3",
							Range:  frames.Range{Start: 2, End: 3},
							Header: []string{"Set", "ID"},
							Rows:   []hitbox.Row{{Kind: hitbox.HitRow, Cells: []string{"0", "1"}}},
						}},
						ScriptMain: "<ol></ol>",
						Diagnostics: []diag.Entry{{
							Kind:    diag.LookupMiss,
							Fighter: "Mario",
							Subject: "AttackS4S",
							Message: "goto target 0x99 not found",
						}},
					},
					{Fighter: "Mario", Name: "Wait1", Index: 4},
				},
				Scripts: []report.ScriptReport{{Scope: "Mario", Offset: 0x100, Name: "Function 0x100", Markup: marker}},
			},
		},
		CommonScripts: []report.ScriptReport{{Scope: "common", Offset: 0x900, Name: "Function 0x900"}},
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created along with its directory
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(sampleRun("Brawl", "1")); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.Runs(10)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("Expected 1 run after reopen, got %d", len(runs))
	}
}

func TestStoreSaveRunAndHistory(t *testing.T) {
	store := openTestStore(t)

	first, err := store.SaveRun(sampleRun("Brawl", "1"))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	second, err := store.SaveRun(sampleRun("ProjectM", "2"))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if second <= first {
		t.Errorf("Expected increasing run IDs, got %d then %d", first, second)
	}

	runs, err := store.Runs(10)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Mod != "ProjectM" || runs[1].Mod != "Brawl" {
		t.Errorf("Unexpected run order: %q, %q", runs[0].Mod, runs[1].Mod)
	}

	r := runs[1]
	if r.Fighters != 1 || r.Subactions != 2 || r.Scripts != 2 || r.Diagnostics != 1 {
		t.Errorf("Unexpected run counts: %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}

	limited, err := store.Runs(1)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 run with limit, got %d", len(limited))
	}
}

func TestStoreLatestSubaction(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(sampleRun("Brawl", "1")); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(sampleRun("Brawl", "2")); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	sub, err := store.LatestSubaction("Mario", "AttackS4S")
	if err != nil {
		t.Fatalf("LatestSubaction() failed: %v", err)
	}
	if sub == nil {
		t.Fatal("Expected a stored subaction")
	}

	if sub.Attributes[0].Value != "2" {
		t.Errorf("Expected the latest run's payload, got IASA %q", sub.Attributes[0].Value)
	}
	if sub.Index != 3 {
		t.Errorf("Expected index 3, got %d", sub.Index)
	}
	if len(sub.HitboxTables) != 1 || sub.HitboxTables[0].Range.End != 3 {
		t.Errorf("Hitbox tables not restored: %+v", sub.HitboxTables)
	}
	if len(sub.Diagnostics) != 1 || sub.Diagnostics[0].Kind != diag.LookupMiss {
		t.Errorf("Diagnostics not restored: %+v", sub.Diagnostics)
	}

	missing, err := store.LatestSubaction("Luigi", "AttackS4S")
	if err != nil {
		t.Fatalf("LatestSubaction() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown subaction, got %+v", missing)
	}
}

func TestStoreLatestScript(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(sampleRun("Brawl", "<ol><li>x</li></ol>")); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	sr, err := store.LatestScript("Mario", 0x100)
	if err != nil {
		t.Fatalf("LatestScript() failed: %v", err)
	}
	if sr == nil || sr.Markup != "<ol><li>x</li></ol>" {
		t.Errorf("Unexpected script: %+v", sr)
	}

	common, err := store.LatestScript("common", 0x900)
	if err != nil {
		t.Fatalf("LatestScript() failed: %v", err)
	}
	if common == nil || common.Name != "Function 0x900" {
		t.Errorf("Unexpected common script: %+v", common)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(sampleRun("Brawl", "1")); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, err := store.Runs(10)
	if err != nil {
		t.Fatalf("Runs() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("Expected no runs after clear, got %d", len(runs))
	}

	sub, err := store.LatestSubaction("Mario", "AttackS4S")
	if err != nil {
		t.Fatalf("LatestSubaction() failed: %v", err)
	}
	if sub != nil {
		t.Error("Expected no subaction after clear")
	}
}
