package table

import (
	"testing"
)

func TestParseCSV_NumericCoercion(t *testing.T) {
	data := []byte("MatchID,MatchRA,Target\n1,187.706,M87\n2,187.710,M87\n")

	tbl, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tbl.NumCols() != 3 || tbl.NumRows() != 2 {
		t.Fatalf("shape = %dx%d", tbl.NumRows(), tbl.NumCols())
	}
	if tbl.Columns[0] != "MatchID" {
		t.Fatalf("columns = %v", tbl.Columns)
	}

	if v, ok := tbl.Rows[0][0].(float64); !ok || v != 1 {
		t.Fatalf("MatchID cell = %#v", tbl.Rows[0][0])
	}
	if v, ok := tbl.Rows[1][1].(float64); !ok || v != 187.710 {
		t.Fatalf("MatchRA cell = %#v", tbl.Rows[1][1])
	}
	if v, ok := tbl.Rows[0][2].(string); !ok || v != "M87" {
		t.Fatalf("Target cell = %#v", tbl.Rows[0][2])
	}
}

func TestParseCSV_MixedColumnStaysString(t *testing.T) {
	data := []byte("a\n1\nx\n")

	tbl, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// one non-numeric value keeps the whole column as strings
	if _, ok := tbl.Rows[0][0].(string); !ok {
		t.Fatalf("cell = %#v, want string", tbl.Rows[0][0])
	}
}

func TestParseCSV_EmptyAndHeaderOnly(t *testing.T) {
	tbl, err := ParseCSV(nil)
	if err != nil || tbl.NumRows() != 0 || tbl.NumCols() != 0 {
		t.Fatalf("empty: %+v %v", tbl, err)
	}

	tbl, err = ParseCSV([]byte("MatchID,MatchRA\n"))
	if err != nil {
		t.Fatalf("header only: %v", err)
	}
	if tbl.NumCols() != 2 || tbl.NumRows() != 0 {
		t.Fatalf("header only shape = %dx%d", tbl.NumRows(), tbl.NumCols())
	}
}

func TestParseCSV_RaggedFails(t *testing.T) {
	if _, err := ParseCSV([]byte("a,b\n1\n")); err == nil {
		t.Fatal("expected error for ragged rows")
	}
}

func TestCol(t *testing.T) {
	tbl, err := ParseCSV([]byte("MatchID,MatchRA\n1,2\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tbl.Col("MatchRA") != 1 {
		t.Fatalf("Col(MatchRA) = %d", tbl.Col("MatchRA"))
	}
	if tbl.Col("nope") != -1 {
		t.Fatalf("Col(nope) = %d", tbl.Col("nope"))
	}
}
