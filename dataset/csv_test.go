package dataset

import (
	"strings"
	"testing"
)

func TestParseCSV(t *testing.T) {
	input := `EID,Title,Year
A1,"Deep Learning, Revisited",2022
A2,Shallow Learning
A3,Wide Learning,2021,extra`

	ds, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}

	if len(ds.Columns) != 3 {
		t.Errorf("Columns = %v, want 3 headers", ds.Columns)
	}
	if ds.Len() != 3 {
		t.Fatalf("Len = %d, want 3", ds.Len())
	}

	if got, _ := ds.Rows[0].Get("Title"); got != "Deep Learning, Revisited" {
		t.Errorf("row 0 Title = %q", got)
	}

	// Short rows leave trailing columns without cells.
	if _, ok := ds.Rows[1].Get("Year"); ok {
		t.Error("row 1 Year should be absent")
	}

	// Extra cells beyond the header are dropped.
	if got, _ := ds.Rows[2].Get("Year"); got != "2021" {
		t.Errorf("row 2 Year = %q", got)
	}

	// A column absent from the dataset is simply absent.
	if _, ok := ds.Rows[0].Get("DOI"); ok {
		t.Error("unknown column should be absent")
	}
}

func TestParseCSVEmpty(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if ds.Len() != 0 {
		t.Errorf("Len = %d, want 0", ds.Len())
	}
}

func TestParseCSVHeaderOnly(t *testing.T) {
	ds, err := ParseCSV(strings.NewReader("EID,Title\n"))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if ds.Len() != 0 {
		t.Errorf("Len = %d, want 0", ds.Len())
	}
	if len(ds.Columns) != 2 {
		t.Errorf("Columns = %v, want 2 headers", ds.Columns)
	}
}

func TestRowGetOr(t *testing.T) {
	row := NewRow(map[string]string{"EID": "A1", "Title": ""})

	if got := row.GetOr("EID", "fallback"); got != "A1" {
		t.Errorf("GetOr(EID) = %q", got)
	}
	// An empty cell is present, not absent.
	if got := row.GetOr("Title", "fallback"); got != "" {
		t.Errorf("GetOr(Title) = %q, want empty string", got)
	}
	if got := row.GetOr("DOI", "fallback"); got != "fallback" {
		t.Errorf("GetOr(DOI) = %q, want fallback", got)
	}
}
