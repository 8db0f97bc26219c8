package domain

import "testing"

func TestNewCustomer(t *testing.T) {
	c := NewCustomer(42, "Ada", "ada@example.com")

	if c.ID != 42 {
		t.Fatalf("expected ID 42, got %d", c.ID)
	}
	if c.Name != "Ada" {
		t.Fatalf("expected Name 'Ada', got %q", c.Name)
	}
	if c.Email != "ada@example.com" {
		t.Fatalf("expected Email 'ada@example.com', got %q", c.Email)
	}
}

func TestNewCustomer_NoInvariants(t *testing.T) {
	c := NewCustomer(0, "", "")
	if c == nil {
		t.Fatal("expected customer, got nil")
	}
}
