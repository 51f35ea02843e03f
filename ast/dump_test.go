package ast

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func dumpStmts() []Stmt {
	return []Stmt{
		VarStmt{Name: tok(TokenIdentifier, "a"), Initializer: LiteralExpr{Value: 1.0}},
		IfStmt{
			Condition:  variable("a"),
			ThenBranch: PrintStmt{Expr: LiteralExpr{Value: "yes"}},
		},
	}
}

func TestFprintJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FprintJSON(&buf, dumpStmts()); err != nil {
		t.Fatal(err)
	}

	var got []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d trees, expected 2", len(got))
	}
	if got[0]["type"] != "Var" || got[0]["name"] != "a" {
		t.Errorf("got %v, expected a Var named a", got[0])
	}
	if init, _ := got[0]["initializer"].(map[string]interface{}); init["value"] != 1.0 {
		t.Errorf("got initializer %v, expected literal 1", got[0]["initializer"])
	}
	if got[1]["type"] != "If" {
		t.Errorf("got %v, expected an If", got[1])
	}
	if _, ok := got[1]["else"]; ok {
		t.Errorf("got an else branch in %v, expected none", got[1])
	}
}

func TestFprintYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := FprintYAML(&buf, dumpStmts()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "type: Print") {
		t.Errorf("got %q, expected it to contain a Print node", buf.String())
	}

	var got []map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML %q: %v", buf.String(), err)
	}
	then, _ := got[1]["then"].(map[string]interface{})
	printed, _ := then["expression"].(map[string]interface{})
	if printed["value"] != "yes" {
		t.Errorf("got %v, expected the literal yes", then)
	}
}
