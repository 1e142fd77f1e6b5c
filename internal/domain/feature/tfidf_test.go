package feature

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	got := Tokenize("The Data Scientist and SQL")
	want := []string{"data", "scientist", "sql"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNGrams(t *testing.T) {
	got := NGrams([]string{"machine", "learning", "engineer"})
	want := []string{"machine", "learning", "engineer", "machine learning", "learning engineer"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFitText_BigramsInVocabulary(t *testing.T) {
	v := FitText([]string{
		"Data Scientist Python Machine Learning",
		"Machine Learning Engineer Python",
	})
	found := false
	for _, term := range v.Terms() {
		if term == "machine learning" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected bigram 'machine learning' in vocabulary: %v", v.Terms())
	}
}

func TestFitText_Deterministic(t *testing.T) {
	docs := []string{"python sql statistics", "javascript react css", "python django docker"}
	a := FitText(docs)
	b := FitText(docs)
	if !reflect.DeepEqual(a.Terms(), b.Terms()) {
		t.Fatalf("vocabularies differ across fits")
	}
	if !reflect.DeepEqual(a.IDF(), b.IDF()) {
		t.Fatalf("idf weights differ across fits")
	}
}

func TestTransform_UnitNorm(t *testing.T) {
	v := FitText([]string{"python sql machine learning", "javascript react"})
	vec := v.Transform("python sql")
	if math.Abs(vec.Norm()-1) > 1e-12 {
		t.Fatalf("transform norm = %v, want 1", vec.Norm())
	}
}

func TestTransform_OutOfVocabulary(t *testing.T) {
	v := FitText([]string{"python sql", "javascript react"})
	vec := v.Transform("quantum computing")
	if len(vec.Indices) != 0 || vec.Norm() != 0 {
		t.Fatalf("expected zero vector for OOV document, got %+v", vec)
	}
}

func TestSkillEncoder(t *testing.T) {
	e := FitSkills([][]string{{"python", "sql"}, {"react", "css"}})
	if e.Dim() != 4 {
		t.Fatalf("dim = %d, want 4", e.Dim())
	}
	vec := e.Transform([]string{"sql", "quantum computing", "python"})
	if len(vec.Indices) != 2 {
		t.Fatalf("expected 2 active skill axes, got %v", vec.Indices)
	}
	for _, val := range vec.Values {
		if val != 1 {
			t.Fatalf("skill axis value = %v, want 1", val)
		}
	}
}
