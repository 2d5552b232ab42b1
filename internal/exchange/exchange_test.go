package exchange

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/MdRaihanAli/staff-management-system-sub000/internal/staff"
)

func exportSample() []staff.Record {
	return []staff.Record{
		{
			ID: "id-1", SL: 1, BatchNo: "A1", Name: "Alice", Designation: "Chef",
			Department: "Kitchen", Hotel: "Grand Plaza", Company: "Acme",
			VisaType: staff.VisaEmployment, Status: staff.StatusWorking,
			CardNo: "CARD-1", Phone: "0501234567", Photo: "https://cdn.example/p1.jpg",
			Remark:    "senior",
			IssueDate: staff.NewDate(2024, time.March, 5), ExpireDate: staff.NewDate(2026, time.March, 4),
			PassportExpireDate: staff.NewDate(2030, time.January, 1), Salary: 2500.50,
		},
		{
			ID: "id-2", SL: 2, Name: "Bob", Status: staff.StatusJobless,
		},
	}
}

// exported fields only: identity and sequence are reassigned on import.
func sameExportedFields(t *testing.T, got, want staff.Record) {
	t.Helper()
	got.ID, got.SL = want.ID, want.SL
	// Designation is not part of the export column set.
	got.Designation = want.Designation
	if got != want {
		t.Fatalf("round-trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	records := exportSample()
	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(back) != len(records) {
		t.Fatalf("row count: got %d want %d", len(back), len(records))
	}
	for i := range back {
		sameExportedFields(t, back[i], records[i])
	}
}

func TestXLSXRoundTrip(t *testing.T) {
	records := exportSample()
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, records); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := ReadXLSX(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(back) != len(records) {
		t.Fatalf("row count: got %d want %d", len(back), len(records))
	}
	for i := range back {
		sameExportedFields(t, back[i], records[i])
	}
}

func TestJSONRoundTrip(t *testing.T) {
	records := exportSample()
	var buf bytes.Buffer
	if err := WriteJSON(&buf, records); err != nil {
		t.Fatalf("write: %v", err)
	}
	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(back) != len(records) {
		t.Fatalf("row count: got %d want %d", len(back), len(records))
	}
	// JSON carries every field including designation, so compare whole
	// records modulo identity.
	for i := range back {
		back[i].ID, back[i].SL = records[i].ID, records[i].SL
		if back[i] != records[i] {
			t.Fatalf("row %d mismatch:\n got  %+v\n want %+v", i, back[i], records[i])
		}
	}
}

func TestTabularHeaderTolerance(t *testing.T) {
	cases := []struct {
		name   string
		header []string
	}{
		{"export headers", []string{"Batch No", "Name", "Status", "Salary"}},
		{"field names", []string{"batchNo", "name", "status", "salary"}},
		{"mixed and shouty", []string{"BATCH_NO", "Name", "STATUS", " salary "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows := [][]string{tc.header, {"B1", "Alice", "", "1200"}}
			records, err := RowsToRecords(rows)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if len(records) != 1 {
				t.Fatalf("want 1 record, got %d", len(records))
			}
			r := records[0]
			if r.BatchNo != "B1" || r.Name != "Alice" || r.Salary != 1200 {
				t.Fatalf("fields not bound: %+v", r)
			}
			if r.Status != staff.StatusWorking {
				t.Fatalf("empty status should default to Working, got %q", r.Status)
			}
		})
	}
}

func TestRowsToRecordsErrors(t *testing.T) {
	cases := []struct {
		name string
		rows [][]string
	}{
		{"no rows", nil},
		{"unknown header only", [][]string{{"Favourite Color"}, {"blue"}}},
		{"bad status", [][]string{{"Name", "Status"}, {"Alice", "Retired"}}},
		{"bad visa", [][]string{{"Name", "Visa Type"}, {"Alice", "Tourist"}}},
		{"bad salary", [][]string{{"Name", "Salary"}, {"Alice", "lots"}}},
		{"bad date", [][]string{{"Name", "Expire Date"}, {"Alice", "soon"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := RowsToRecords(tc.rows); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestRowsToRecordsSkipsBlankRowsAndDateFormats(t *testing.T) {
	rows := [][]string{
		{"Name", "Expire Date"},
		{"", ""},
		{"Alice", "2026-03-04"},
		{"Bob", "01/02/2026"},
	}
	records, err := RowsToRecords(rows)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("blank row not skipped: %d records", len(records))
	}
	if records[0].ExpireDate.String() != "2026-03-04" {
		t.Fatalf("iso date: %s", records[0].ExpireDate)
	}
	if records[1].ExpireDate.String() != "2026-01-02" {
		t.Fatalf("us date: %s", records[1].ExpireDate)
	}
}

func TestWriteDOCXEmbedsReportData(t *testing.T) {
	records := []staff.Record{
		{SL: 1, Name: "Tom & Jerry", BatchNo: "T<1>", Status: staff.StatusWorking},
	}
	var buf bytes.Buffer
	generated := time.Date(2025, time.June, 1, 9, 30, 0, 0, time.UTC)
	if err := WriteDOCX(&buf, records, generated); err != nil {
		t.Fatalf("write: %v", err)
	}

	doc := readZipPart(t, buf.Bytes(), "word/document.xml")
	for _, want := range []string{
		"Staff Report",
		"Generated: 2025-06-01 09:30:00",
		"Tom &amp; Jerry",
		"T&lt;1&gt;",
		"Batch No",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("document.xml missing %q", want)
		}
	}
	for _, part := range []string{"[Content_Types].xml", "_rels/.rels"} {
		if readZipPart(t, buf.Bytes(), part) == "" {
			t.Fatalf("missing part %s", part)
		}
	}
}

func TestReadJSONRejectsUnknownEnums(t *testing.T) {
	in := `[{"name":"Alice","status":"Retired"}]`
	if _, err := ReadJSON(strings.NewReader(in)); err == nil {
		t.Fatal("unknown status should be rejected")
	}
	in = `[{"name":"Alice","visaType":"Tourist"}]`
	if _, err := ReadJSON(strings.NewReader(in)); err == nil {
		t.Fatal("unknown visa type should be rejected")
	}
}

func TestReadJSONAppliesDefaults(t *testing.T) {
	in := `[{"name":"  Alice  "}]`
	records, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if records[0].Name != "Alice" || records[0].Status != staff.StatusWorking || records[0].Salary != 0 {
		t.Fatalf("defaults not applied: %+v", records[0])
	}
}
