package catalog

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNormalizeSkills(t *testing.T) {
	got := NormalizeSkills("Python, SQL ,  Machine Learning,,python")
	want := []string{"python", "sql", "machine learning"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNewPosting_DropsIncomplete(t *testing.T) {
	if _, ok := NewPosting("", "Acme", "Go"); ok {
		t.Fatalf("expected posting without title to be dropped")
	}
	if _, ok := NewPosting("Engineer", "Acme", "  "); ok {
		t.Fatalf("expected posting without skills to be dropped")
	}
	p, ok := NewPosting("Engineer", "Acme", "Go, SQL")
	if !ok {
		t.Fatalf("expected valid posting to be kept")
	}
	if !reflect.DeepEqual(p.RequiredSkills, []string{"go", "sql"}) {
		t.Fatalf("unexpected skills: %v", p.RequiredSkills)
	}
}

func TestCSVSource_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.csv")
	csv := "Job Title,Company,Required Skills\n" +
		"Data Scientist,TechCorp,\"Python, SQL, Machine Learning\"\n" +
		",NoTitleCo,Python\n" +
		"No Skills Role,EmptyCo,\n" +
		"Frontend Developer,WebDesign,\"JavaScript, React, CSS\"\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	postings, err := NewCSVSource(path).Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(postings) != 2 {
		t.Fatalf("expected 2 postings after filtering, got %d", len(postings))
	}
	if postings[0].Title != "Data Scientist" || postings[1].Title != "Frontend Developer" {
		t.Fatalf("unexpected postings: %+v", postings)
	}
	if postings[0].RequiredSkills[2] != "machine learning" {
		t.Fatalf("unexpected normalized skills: %v", postings[0].RequiredSkills)
	}
}

func TestCSVSource_MissingColumns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(path, []byte("A,B\n1,2\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := NewCSVSource(path).Load(context.Background()); err == nil {
		t.Fatalf("expected error for missing columns")
	}
}
