package tokens

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSchemaFor(t *testing.T) {
	tests := []struct {
		kind  string
		wants []string
	}{
		{kind: SchemaDocument, wants: []string{`"light"`, `"dark"`, "wex token source"}},
		{kind: SchemaOverrides, wants: []string{`"tokens"`, `"ramps"`, `"base"`, "wex theme overrides"}},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			data, err := SchemaFor(tt.kind)
			if err != nil {
				t.Fatalf("SchemaFor() error = %v", err)
			}
			if !json.Valid(data) {
				t.Fatal("SchemaFor() returned invalid JSON")
			}
			for _, want := range tt.wants {
				if !strings.Contains(string(data), want) {
					t.Errorf("schema missing %s", want)
				}
			}
		})
	}

	if _, err := SchemaFor("bogus"); err == nil {
		t.Error("SchemaFor() accepted an unknown kind")
	}
}
