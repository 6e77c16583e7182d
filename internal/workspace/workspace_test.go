package workspace_test

import (
	"errors"
	"testing"

	"github.com/KaramelBytes/chartloom-cli/internal/store"
	"github.com/KaramelBytes/chartloom-cli/internal/table"
	"github.com/KaramelBytes/chartloom-cli/internal/workspace"
)

func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New(
		[]string{"Date", "Sales"},
		[][]string{{"2023-01-01", "1200"}, {"2023-02-01", "1350"}},
	)
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	return tbl
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ws := workspace.New(t.TempDir())
	orig := sampleTable(t)

	m, err := ws.SaveDataset("sales", "sales.csv", orig)
	if err != nil {
		t.Fatalf("SaveDataset: %v", err)
	}
	if m.ID == "" {
		t.Errorf("manifest missing id")
	}
	if m.Rows != 2 || len(m.Columns) != 2 {
		t.Errorf("manifest shape = %d rows / %d cols", m.Rows, len(m.Columns))
	}

	got, gm, err := ws.LoadDataset("sales")
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if gm.ID != m.ID || gm.Source != "sales.csv" {
		t.Errorf("manifest round trip: got %q/%q", gm.ID, gm.Source)
	}
	if got.RowCount() != orig.RowCount() {
		t.Fatalf("RowCount = %d, want %d", got.RowCount(), orig.RowCount())
	}
	for i := 0; i < orig.RowCount(); i++ {
		origRow, gotRow := orig.Row(i), got.Row(i)
		for j := range origRow {
			if origRow[j] != gotRow[j] {
				t.Errorf("row %d col %d = %q, want %q", i, j, gotRow[j], origRow[j])
			}
		}
	}
	sales, err := got.Column("Sales")
	if err != nil {
		t.Fatalf("Column: %v", err)
	}
	if sales.Kind != table.KindNumeric {
		t.Errorf("Sales kind = %v, want numeric after reload", sales.Kind)
	}
}

func TestLoadMissingDataset(t *testing.T) {
	ws := workspace.New(t.TempDir())
	_, _, err := ws.LoadDataset("ghost")
	var nf *store.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
	if nf.Name != "ghost" {
		t.Errorf("error carries %q, want %q", nf.Name, "ghost")
	}
}

func TestSaveReplacesExisting(t *testing.T) {
	ws := workspace.New(t.TempDir())
	if _, err := ws.SaveDataset("d", "one.csv", sampleTable(t)); err != nil {
		t.Fatalf("first save: %v", err)
	}
	bigger, err := table.New([]string{"A"}, [][]string{{"1"}, {"2"}, {"3"}})
	if err != nil {
		t.Fatalf("table.New: %v", err)
	}
	if _, err := ws.SaveDataset("d", "two.csv", bigger); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, m, err := ws.LoadDataset("d")
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if m.Source != "two.csv" || got.RowCount() != 3 {
		t.Errorf("got %q with %d rows, want last write", m.Source, got.RowCount())
	}
}

func TestListSortedByName(t *testing.T) {
	ws := workspace.New(t.TempDir())
	for _, name := range []string{"zeta", "alpha"} {
		if _, err := ws.SaveDataset(name, name+".csv", sampleTable(t)); err != nil {
			t.Fatalf("SaveDataset %s: %v", name, err)
		}
	}
	list, err := ws.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Name != "alpha" || list[1].Name != "zeta" {
		t.Fatalf("list = %+v, want alphabetical pair", list)
	}
}

func TestListEmptyWorkspace(t *testing.T) {
	ws := workspace.New(t.TempDir() + "/never-created")
	list, err := ws.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("list = %+v, want empty", list)
	}
}

func TestInvalidNames(t *testing.T) {
	ws := workspace.New(t.TempDir())
	for _, name := range []string{"", "a/b", `a\b`, ".", ".."} {
		if _, err := ws.SaveDataset(name, "x.csv", sampleTable(t)); err == nil {
			t.Errorf("SaveDataset(%q) accepted an invalid name", name)
		}
	}
}
