package staff

import (
	"testing"
	"time"
)

var filterNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func sampleRecords() []Record {
	return []Record{
		{ID: "a", SL: 1, Name: "Alice", BatchNo: "A1", Hotel: "H1", Status: StatusWorking, ExpireDate: DateOf(filterNow.Add(10 * 24 * time.Hour))},
		{ID: "b", SL: 2, Name: "Bob", BatchNo: "B2", Hotel: "H2", Status: StatusJobless, Department: "Kitchen", Salary: 1200},
		{ID: "c", SL: 3, Name: "Carol", BatchNo: "C3", Hotel: "H1", Status: StatusExited, VisaType: VisaEmployment},
		{ID: "d", SL: 4, Name: "Dave", Phone: "0501234567", Status: StatusWorking, VisaType: VisaVisit, Salary: 800, ExpireDate: DateOf(filterNow.Add(90 * 24 * time.Hour))},
		{ID: "e", SL: 5, Name: "Erin", CardNo: "CARD-77", Status: StatusWorking, ExpireDate: DateOf(filterNow.Add(-5 * 24 * time.Hour))},
	}
}

func ids(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterEmptySpecReturnsActiveInOrder(t *testing.T) {
	got := Filter{}.Apply(sampleRecords(), filterNow)
	if !equalIDs(ids(got), "a", "b", "d", "e") {
		t.Fatalf("expected active records in input order, got %v", ids(got))
	}
}

func TestFilterArchiveView(t *testing.T) {
	got := Filter{View: ViewArchive}.Apply(sampleRecords(), filterNow)
	if !equalIDs(ids(got), "c") {
		t.Fatalf("archive view should return only exited records, got %v", ids(got))
	}
}

func TestFilterIsStableSubset(t *testing.T) {
	records := sampleRecords()
	got := Filter{Search: "a"}.Apply(records, filterNow)

	// Every result must come from the input, in the input's relative order.
	pos := -1
	for _, r := range got {
		found := -1
		for i, in := range records {
			if in.ID == r.ID {
				found = i
				break
			}
		}
		if found < 0 {
			t.Fatalf("record %q not in input", r.ID)
		}
		if found <= pos {
			t.Fatalf("order not preserved at %q", r.ID)
		}
		pos = found
	}
}

func TestFilterSearch(t *testing.T) {
	cases := []struct {
		name string
		term string
		want []string
	}{
		{"name match", "alice", []string{"a"}},
		{"phone match", "050123", []string{"d"}},
		{"batch match", "b2", []string{"b"}},
		{"no match", "zzz", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Filter{Search: tc.term}.Apply(sampleRecords(), filterNow))
			if !equalIDs(got, tc.want...) {
				t.Fatalf("search %q: got %v want %v", tc.term, got, tc.want)
			}
		})
	}
}

func TestFilterExpireBuckets(t *testing.T) {
	cases := []struct {
		bucket string
		want   []string
	}{
		{BucketExpiring, []string{"a"}},
		{BucketExpired, []string{"e"}},
		{BucketValid, []string{"d"}},
	}
	for _, tc := range cases {
		t.Run(tc.bucket, func(t *testing.T) {
			got := ids(Filter{Expire: tc.bucket}.Apply(sampleRecords(), filterNow))
			if !equalIDs(got, tc.want...) {
				t.Fatalf("bucket %s: got %v want %v", tc.bucket, got, tc.want)
			}
		})
	}
}

func TestFilterExpireScenario(t *testing.T) {
	l := []Record{{Name: "Alice", BatchNo: "A1", Hotel: "H1", Status: StatusWorking,
		ExpireDate: DateOf(filterNow.Add(10 * 24 * time.Hour))}}

	expiring := Filter{Expire: BucketExpiring}.Apply(l, filterNow)
	if len(expiring) != 1 || expiring[0].Name != "Alice" {
		t.Fatalf("expiring filter should return Alice, got %v", expiring)
	}
	expired := Filter{Expire: BucketExpired}.Apply(l, filterNow)
	if len(expired) != 0 {
		t.Fatalf("expired filter should return nothing, got %v", expired)
	}
}

func TestFilterRecordsWithoutExpireDateNeverMatchBucket(t *testing.T) {
	for _, bucket := range []string{BucketExpired, BucketExpiring, BucketValid} {
		got := Filter{Expire: bucket}.Apply([]Record{{Name: "NoDate", Status: StatusWorking}}, filterNow)
		if len(got) != 0 {
			t.Fatalf("bucket %s matched a record with no expire date", bucket)
		}
	}
}

func TestFilterAdvanced(t *testing.T) {
	min, max := 1000.0, 1500.0
	cases := []struct {
		name string
		f    Filter
		want []string
	}{
		{"department substring", Filter{Department: "kitch"}, []string{"b"}},
		{"salary range", Filter{SalaryMin: &min, SalaryMax: &max}, []string{"b"}},
		{"salary min only", Filter{SalaryMin: &min}, []string{"b"}},
		{"card substring", Filter{CardNo: "card-77"}, []string{"e"}},
		{"hotel exact", Filter{Hotel: "H1"}, []string{"a"}},
		{"visa exact", Filter{VisaType: VisaVisit}, []string{"d"}},
		{"combined", Filter{Hotel: "H2", Department: "Kitchen"}, []string{"b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(tc.f.Apply(sampleRecords(), filterNow))
			if !equalIDs(got, tc.want...) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	before := ids(records)
	Filter{Search: "a", Hotel: "H1"}.Apply(records, filterNow)
	if !equalIDs(ids(records), before...) {
		t.Fatal("input slice was reordered")
	}
}
