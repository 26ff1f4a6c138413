package repository

import (
	"strings"
	"testing"
)

func TestBuildActiveJobsQuery_NoFilters(t *testing.T) {
	query, args := buildActiveJobsQuery(ActiveJobFilter{})
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
	if !strings.Contains(query, "j.is_active") {
		t.Fatalf("expected is_active filter, got %q", query)
	}
	if !strings.Contains(query, "ORDER BY j.created_at DESC") {
		t.Fatalf("expected newest-first ordering, got %q", query)
	}
	if strings.Contains(query, "ILIKE") {
		t.Fatalf("no ILIKE expected without filters, got %q", query)
	}
}

func TestBuildActiveJobsQuery_TitleOnly(t *testing.T) {
	query, args := buildActiveJobsQuery(ActiveJobFilter{Title: "engineer"})
	if len(args) != 1 || args[0] != "%engineer%" {
		t.Fatalf("expected single substring arg, got %v", args)
	}
	if !strings.Contains(query, "j.title ILIKE $1") {
		t.Fatalf("expected title ILIKE, got %q", query)
	}
}

func TestBuildActiveJobsQuery_BothFiltersConjunctive(t *testing.T) {
	query, args := buildActiveJobsQuery(ActiveJobFilter{Title: "engineer", Location: "remote"})
	if len(args) != 2 || args[0] != "%engineer%" || args[1] != "%remote%" {
		t.Fatalf("unexpected args: %v", args)
	}
	if !strings.Contains(query, "j.title ILIKE $1") || !strings.Contains(query, "j.location ILIKE $2") {
		t.Fatalf("expected both ILIKE predicates, got %q", query)
	}
	if strings.Count(query, " AND ") < 2 {
		t.Fatalf("filters must be conjunctive, got %q", query)
	}
}
