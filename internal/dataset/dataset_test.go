package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/j-veylop/bikeshare-dashboard-tui/internal/models"
)

const dayCSV = `instant,dteday,season,yr,casual,registered,count_cr
3,2011-01-03,Spring,0,120,1229,1349
1,2011-01-01,Spring,0,331,654,985
2,2011-01-02,Spring,0,131,670,801
`

const hourCSV = `dteday,season,hours,count_cr
2011-01-02,Spring,0,17
2011-01-01,Spring,0,16
2011-01-01,Spring,1,40
2011-01-02,Spring,1,17
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func newSource(t *testing.T, day, hour string) *CSVSource {
	t.Helper()
	dir := t.TempDir()
	return NewCSVSource(writeFile(t, dir, "day.csv", day), writeFile(t, dir, "hour.csv", hour))
}

func TestLoad_SortsByDate(t *testing.T) {
	ds, err := Load(newSource(t, dayCSV, hourCSV))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(ds.Days) != 3 {
		t.Fatalf("len(Days) = %d, want 3", len(ds.Days))
	}
	for i, want := range []string{"2011-01-01", "2011-01-02", "2011-01-03"} {
		if got := ds.Days[i].Date.Format(models.DateLayout); got != want {
			t.Errorf("Days[%d].Date = %s, want %s", i, got, want)
		}
	}
	if ds.Days[0].Casual != 331 || ds.Days[0].Registered != 654 || ds.Days[0].Total != 985 {
		t.Errorf("Days[0] = %+v", ds.Days[0])
	}
	if ds.Days[0].Attrs["instant"] != "1" || ds.Days[0].Attrs["yr"] != "0" {
		t.Errorf("passthrough attributes lost: %v", ds.Days[0].Attrs)
	}
}

func TestLoad_StableSortKeepsFileOrder(t *testing.T) {
	ds, err := Load(newSource(t, dayCSV, hourCSV))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Within 2011-01-01 the file lists hour 0 then hour 1; within 2011-01-02, hour 0
	// appears before hour 1 as well.
	want := []struct {
		date string
		hour int
	}{
		{"2011-01-01", 0}, {"2011-01-01", 1}, {"2011-01-02", 0}, {"2011-01-02", 1},
	}
	for i, w := range want {
		got := ds.Hours[i]
		if got.Date.Format(models.DateLayout) != w.date || got.Hour != w.hour {
			t.Errorf("Hours[%d] = (%s, %d), want (%s, %d)",
				i, got.Date.Format(models.DateLayout), got.Hour, w.date, w.hour)
		}
	}
}

func TestDataset_Bounds(t *testing.T) {
	ds, err := Load(newSource(t, dayCSV, hourCSV))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	b := ds.Bounds()
	if b.Start != time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("Bounds.Start = %v", b.Start)
	}
	if b.End != time.Date(2011, 1, 3, 0, 0, 0, 0, time.UTC) {
		t.Errorf("Bounds.End = %v", b.End)
	}

	hb := ds.HourBounds()
	if hb.Days() != 2 {
		t.Errorf("HourBounds.Days = %d, want 2", hb.Days())
	}

	if !(&Dataset{}).Bounds().Start.IsZero() {
		t.Error("empty dataset bounds should be zero")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	src := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"), "also-missing.csv")

	_, err := Load(src)
	var missing *MissingFileError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFileError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("MissingFileError should unwrap to os.ErrNotExist")
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	noSeason := "dteday,casual,registered,count_cr\n2011-01-01,1,2,3\n"

	_, err := Load(newSource(t, noSeason, hourCSV))
	var missing *MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
	if missing.Column != ColSeason {
		t.Errorf("Column = %q, want %q", missing.Column, ColSeason)
	}
}

func TestLoad_HourFileNeedsHourColumn(t *testing.T) {
	noHour := "dteday,season,count_cr\n2011-01-01,1,3\n"

	_, err := Load(newSource(t, dayCSV, noHour))
	var missing *MissingColumnError
	if !errors.As(err, &missing) || missing.Column != ColHour {
		t.Fatalf("expected missing hour column, got %v", err)
	}
}

func TestLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		day     string
		hour    string
		wantRow int
		wantCol string
	}{
		{
			name:    "BadDate",
			day:     "dteday,season,casual,registered,count_cr\n2011-01-01,1,1,2,3\n2011-13-45,1,1,2,3\n",
			hour:    hourCSV,
			wantRow: 2,
			wantCol: "dteday",
		},
		{
			name:    "BadCount",
			day:     "dteday,season,casual,registered,count_cr\n2011-01-01,1,lots,2,3\n",
			hour:    hourCSV,
			wantRow: 1,
			wantCol: "casual",
		},
		{
			name:    "NegativeCount",
			day:     "dteday,season,casual,registered,count_cr\n2011-01-01,1,1,-2,3\n",
			hour:    hourCSV,
			wantRow: 1,
			wantCol: "registered",
		},
		{
			name:    "BadSeason",
			day:     "dteday,season,casual,registered,count_cr\n2011-01-01,monsoon,1,2,3\n",
			hour:    hourCSV,
			wantRow: 1,
			wantCol: "season",
		},
		{
			name:    "HourOutOfRange",
			day:     dayCSV,
			hour:    "dteday,season,hr,cnt\n2011-01-01,1,24,3\n",
			wantRow: 1,
			wantCol: "hr",
		},
		{
			name:    "FieldCount",
			day:     dayCSV,
			hour:    "dteday,season,hr,cnt\n2011-01-01,1,2\n",
			wantRow: 1,
			wantCol: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newSource(t, tt.day, tt.hour))
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if perr.Row != tt.wantRow {
				t.Errorf("Row = %d, want %d", perr.Row, tt.wantRow)
			}
			if perr.Column != tt.wantCol {
				t.Errorf("Column = %q, want %q", perr.Column, tt.wantCol)
			}
			if perr.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}

func TestLoad_EmptyDayFile(t *testing.T) {
	_, err := Load(newSource(t, "dteday,season,casual,registered,count_cr\n", hourCSV))
	if !errors.Is(err, ErrNoDays) {
		t.Fatalf("expected ErrNoDays, got %v", err)
	}

	_, err = Load(newSource(t, "", hourCSV))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError for a file without header, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2012, 2, 29, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{
		"2012-02-29",
		" 2012-02-29 ",
		"2012-02-29 13:45:00",
		"2012-02-29T13:45:00",
		"2012-02-29T13:45:00Z",
		"2012-02-29T13:45:00.123456789+00:00",
	} {
		got, err := ParseDate(in)
		if err != nil {
			t.Errorf("ParseDate(%q) failed: %v", in, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %v, want %v", in, got, want)
		}
	}

	for _, in := range []string{"", "01/02/2011", "2011-02-30", "yesterday"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) should fail", in)
		}
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"985", 985, false},
		{" 12 ", 12, false},
		{"985.0", 985, false},
		{"985.5", 0, true},
		{"-1", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseCount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseCount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHeaderAliasesAndBOM(t *testing.T) {
	day := "\ufeffDate,Season,Casual,Registered,cnt\n2011-01-01,4,1,2,3\n"
	hour := "date,season,hr,cnt\n2011-01-01,winter,23,3\n"

	ds, err := Load(newSource(t, day, hour))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if ds.Days[0].Season != models.SeasonWinter || ds.Days[0].Total != 3 {
		t.Errorf("Days[0] = %+v", ds.Days[0])
	}
	if ds.Hours[0].Hour != 23 {
		t.Errorf("Hours[0].Hour = %d, want 23", ds.Hours[0].Hour)
	}
	if ds.Days[0].Attrs != nil {
		t.Errorf("no passthrough columns expected, got %v", ds.Days[0].Attrs)
	}
}

func TestCSVSource_Semicolon(t *testing.T) {
	src := newSource(t,
		"dteday;season;casual;registered;count_cr\n2011-01-01;1;1;2;3\n",
		"dteday;season;hours;count_cr\n2011-01-01;1;5;3\n",
	)
	src.Comma = ';'

	ds, err := Load(src)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if ds.Hours[0].Hour != 5 {
		t.Errorf("Hours[0].Hour = %d, want 5", ds.Hours[0].Hour)
	}
	if ds.Source == "" {
		t.Error("Source description should be set")
	}
}
