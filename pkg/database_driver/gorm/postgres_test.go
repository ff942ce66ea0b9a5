package gorm

import (
	"strings"
	"testing"
)

// TestConnectionStringSSLMode func
func TestConnectionStringSSLMode(t *testing.T) {
	got := ConnectionString("db", "5432", "postgres", "secret", "meal_order", true)
	if !strings.Contains(got, "sslmode=require") {
		t.Errorf("expected sslmode=require, got %s", got)
	}
	got = ConnectionString("db", "5432", "postgres", "secret", "meal_order", false)
	if !strings.Contains(got, "sslmode=disable") || !strings.Contains(got, "dbname=meal_order") {
		t.Errorf("unexpected connection string %s", got)
	}
}

// TestConnectToPostgreSQLRequiresTarget func
func TestConnectToPostgreSQLRequiresTarget(t *testing.T) {
	if _, err := ConnectToPostgreSQL("", "", "postgres", "", "", false); err == nil {
		t.Error("expected error when host, port and dbname are all empty")
	}
}
