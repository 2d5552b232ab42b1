package staff

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestImporter(t *testing.T) (*Importer, *MemStore) {
	t.Helper()
	ms := NewMemStore()
	return NewImporter(ms, NewMemPending(), time.Minute), ms
}

func TestImportCleanFilePersistsImmediately(t *testing.T) {
	im, ms := newTestImporter(t)
	res, err := im.Import(context.Background(), []Record{
		{Name: "Alice", BatchNo: "A1"},
		{Name: "Bob"},
	}, false)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 2 || res.Token != "" || len(res.Duplicates) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	all, _ := ms.List(context.Background())
	if len(all) != 2 || all[0].SL != 1 || all[1].SL != 2 {
		t.Fatalf("rows not persisted with sequential sl: %+v", all)
	}
}

func TestImportSkipsDuplicateRowAfterConfirm(t *testing.T) {
	im, ms := newTestImporter(t)
	seed := Record{ID: "seed", SL: 1, Name: "Seed", BatchNo: "B2", Status: StatusWorking}
	if err := ms.Insert(context.Background(), seed); err != nil {
		t.Fatal(err)
	}

	rows := []Record{
		{Name: "Row1", BatchNo: "B1"},
		{Name: "Row2", BatchNo: "b2"}, // duplicates the seeded record, case-insensitively
		{Name: "Row3", BatchNo: "B3"},
	}
	res, err := im.Import(context.Background(), rows, false)
	if err != nil {
		t.Fatalf("phase one: %v", err)
	}
	if res.Token == "" || res.Pending != 2 {
		t.Fatalf("expected a pending hold for 2 rows, got %+v", res)
	}
	if len(res.Duplicates) != 1 || res.Duplicates[0] != "b2" {
		t.Fatalf("duplicate not reported by value: %v", res.Duplicates)
	}
	if all, _ := ms.List(context.Background()); len(all) != 1 {
		t.Fatalf("store mutated before confirmation: %d records", len(all))
	}

	confirmed, err := im.Confirm(context.Background(), res.Token)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Imported != 2 {
		t.Fatalf("want 2 imported after confirm, got %d", confirmed.Imported)
	}
	all, _ := ms.List(context.Background())
	if len(all) != 3 {
		t.Fatalf("want 3 records total, got %d", len(all))
	}
}

func TestImportConfirmTrueSkipsHold(t *testing.T) {
	im, ms := newTestImporter(t)
	_ = ms.Insert(context.Background(), Record{ID: "seed", SL: 5, Name: "Seed", BatchNo: "DUP"})

	res, err := im.Import(context.Background(), []Record{
		{Name: "Keep", BatchNo: "K1"},
		{Name: "Drop", BatchNo: "dup"},
	}, true)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 1 || res.Token != "" {
		t.Fatalf("confirm=true should persist the valid subset directly: %+v", res)
	}
	if all, _ := ms.List(context.Background()); len(all) != 2 || all[1].SL != 6 {
		t.Fatalf("sl not continued from existing max: %+v", all)
	}
}

func TestImportAllDuplicatesAborts(t *testing.T) {
	im, ms := newTestImporter(t)
	_ = ms.Insert(context.Background(), Record{ID: "seed", SL: 1, Name: "Seed", BatchNo: "X1"})

	res, err := im.Import(context.Background(), []Record{
		{Name: "A", BatchNo: "x1"},
		{Name: "B", BatchNo: "X1"},
	}, false)
	if !errors.Is(err, ErrAllDuplicates) {
		t.Fatalf("want ErrAllDuplicates, got %v", err)
	}
	if len(res.Duplicates) != 2 {
		t.Fatalf("both rows should be reported: %v", res.Duplicates)
	}
	if all, _ := ms.List(context.Background()); len(all) != 1 {
		t.Fatalf("store mutated on aborted import: %d records", len(all))
	}
}

func TestImportDetectsDuplicatesWithinBatch(t *testing.T) {
	im, _ := newTestImporter(t)
	res, err := im.Import(context.Background(), []Record{
		{Name: "First", BatchNo: "N1"},
		{Name: "Second", BatchNo: "n1"},
	}, true)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 1 || len(res.Duplicates) != 1 {
		t.Fatalf("in-batch duplicate not handled: %+v", res)
	}
}

func TestImportEmptyBatchNumbersNeverCollide(t *testing.T) {
	im, _ := newTestImporter(t)
	res, err := im.Import(context.Background(), []Record{
		{Name: "A"}, {Name: "B"}, {Name: "C"},
	}, false)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if res.Imported != 3 {
		t.Fatalf("want 3 imported, got %d", res.Imported)
	}
}

func TestConfirmUnknownToken(t *testing.T) {
	im, _ := newTestImporter(t)
	if _, err := im.Confirm(context.Background(), "nope"); !errors.Is(err, ErrImportExpired) {
		t.Fatalf("want ErrImportExpired, got %v", err)
	}
}
