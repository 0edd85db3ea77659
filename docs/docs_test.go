package docs

import (
	"encoding/json"
	"testing"

	"github.com/swaggo/swag"
)

func TestRegisteredDoc(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	if err != nil {
		t.Fatalf("ReadDoc: %v", err)
	}

	var doc struct {
		Info  map[string]any `json:"info"`
		Host  string         `json:"host"`
		Paths map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("rendered doc is not JSON: %v", err)
	}
	if doc.Info["title"] != "Catalog Assistant API" {
		t.Errorf("unexpected title %v", doc.Info["title"])
	}
	if doc.Host != "localhost:5000" {
		t.Errorf("unexpected host %q", doc.Host)
	}
	if _, ok := doc.Paths["/api/ask"]; !ok {
		t.Error("expected /api/ask path")
	}
}
