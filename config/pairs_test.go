package config

import "testing"

func TestPairsToNamespaces(t *testing.T) {
	pairs := []NamespacePair{
		{Prefix: "schema", URI: "http://schema.org/"},
		{Prefix: "", URI: "http://dropped.example/"},
		{Prefix: "dropped", URI: ""},
		{Prefix: "schema", URI: "https://schema.org/"},
		{Prefix: "skos", URI: "http://www.w3.org/2004/02/skos/core#"},
	}

	got := PairsToNamespaces(pairs)
	if len(got) != 2 {
		t.Fatalf("map size = %d, want 2: %v", len(got), got)
	}
	// Last duplicate prefix wins.
	if got["schema"] != "https://schema.org/" {
		t.Errorf("schema = %q, want last pair to win", got["schema"])
	}
	if got["skos"] != "http://www.w3.org/2004/02/skos/core#" {
		t.Errorf("skos = %q", got["skos"])
	}
}

func TestNamespacesToPairsSorted(t *testing.T) {
	pairs := NamespacesToPairs(map[string]string{
		"skos":   "http://www.w3.org/2004/02/skos/core#",
		"dct":    "http://purl.org/dc/terms/",
		"schema": "http://schema.org/",
	})

	want := []string{"dct", "schema", "skos"}
	if len(pairs) != len(want) {
		t.Fatalf("pairs length = %d, want %d", len(pairs), len(want))
	}
	for i, prefix := range want {
		if pairs[i].Prefix != prefix {
			t.Errorf("pairs[%d].Prefix = %q, want %q", i, pairs[i].Prefix, prefix)
		}
	}
}

func TestPairsRoundTrip(t *testing.T) {
	original := map[string]string{
		"schema": "http://schema.org/",
		"dct":    "http://purl.org/dc/terms/",
	}

	got := PairsToNamespaces(NamespacesToPairs(original))
	if len(got) != len(original) {
		t.Fatalf("round-trip size = %d, want %d", len(got), len(original))
	}
	for prefix, uri := range original {
		if got[prefix] != uri {
			t.Errorf("round-trip %s = %q, want %q", prefix, got[prefix], uri)
		}
	}
}
