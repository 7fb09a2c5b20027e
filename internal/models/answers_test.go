package models

import (
	"encoding/json"
	"testing"
)

func TestAnswerMapUnmarshal(t *testing.T) {
	var m AnswerMap
	if err := json.Unmarshal([]byte(`{"1": "F = ma", "3": "Newton"}`), &m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(m) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(m))
	}
	if m[1] != "F = ma" || m[3] != "Newton" {
		t.Errorf("Unexpected entries: %v", m)
	}
}

func TestAnswerMapDropsNulls(t *testing.T) {
	var m AnswerMap
	if err := json.Unmarshal([]byte(`{"1": "A", "2": null}`), &m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(m) != 1 {
		t.Fatalf("Expected null entry dropped, got %v", m)
	}
	if m.Get(2) != nil {
		t.Error("Question 2 should read as unanswered")
	}
}

func TestAnswerMapRejectsNonNumericKey(t *testing.T) {
	var m AnswerMap
	if err := json.Unmarshal([]byte(`{"one": "A"}`), &m); err == nil {
		t.Error("Expected error for non-numeric key")
	}
}

func TestAnswerMapMarshal(t *testing.T) {
	data, err := json.Marshal(AnswerMap{2: "B"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"2":"B"}` {
		t.Errorf("Unexpected JSON %s", data)
	}
}

func TestAnswerMapGet(t *testing.T) {
	m := AnswerMap{1: "A"}
	if got := m.Get(1); got == nil || *got != "A" {
		t.Errorf("Expected pointer to A, got %v", got)
	}
	if m.Get(5) != nil {
		t.Error("Expected nil for missing question")
	}
}
