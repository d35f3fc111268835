package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/cartinhas/pkg/validate"
)

type registerInput struct {
	Name                 string `json:"name" validate:"required,min=2"`
	Email                string `json:"email" validate:"required,email"`
	Phone                string `json:"phone" validate:"nullable,min=8"`
	Password             string `json:"password" validate:"required,min=6,confirmed"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:                 "Ana Souza",
		Email:                "ana@example.com",
		Phone:                "",
		Password:             "secret123",
		PasswordConfirmation: "secret123",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(registerInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"name", "email", "password"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
}

func TestConfirmedMismatchOnBaseField(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:                 "Ana",
		Email:                "ana@example.com",
		Password:             "secret123",
		PasswordConfirmation: "totally-different",
	})
	if _, ok := errs["password"]; !ok {
		t.Errorf("expected confirmation mismatch error, got: %v", errs)
	}
}

func TestConfirmedOnConfirmationField(t *testing.T) {
	type in struct {
		Password             string `json:"password" validate:"required"`
		PasswordConfirmation string `json:"password_confirmation" validate:"confirmed"`
	}
	if errs := validate.Struct(in{Password: "secret123", PasswordConfirmation: "nope"}); !validate.HasErrors(errs) {
		t.Error("expected mismatch to fail")
	}
	if errs := validate.Struct(in{Password: "secret123", PasswordConfirmation: "secret123"}); validate.HasErrors(errs) {
		t.Errorf("expected match to pass, got: %v", errs)
	}
}

func TestPriceMustBePositive(t *testing.T) {
	type in struct {
		Price float64 `json:"price" validate:"required,gt=0"`
	}
	if errs := validate.Struct(in{Price: -1}); !validate.HasErrors(errs) {
		t.Error("expected negative price to fail")
	}
	if errs := validate.Struct(in{Price: 24.9}); validate.HasErrors(errs) {
		t.Errorf("expected positive price to pass, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"required,in=completed,cancelled"`
	}
	if errs := validate.Struct(in{Status: "shipped"}); !validate.HasErrors(errs) {
		t.Error("expected unknown status to fail")
	}
	if errs := validate.Struct(in{Status: "completed"}); validate.HasErrors(errs) {
		t.Errorf("expected completed to pass, got: %v", errs)
	}
}

func TestNullableURL(t *testing.T) {
	type in struct {
		Image string `json:"image" validate:"nullable,url"`
	}
	if errs := validate.Struct(in{}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable field to pass, got: %v", errs)
	}
	if errs := validate.Struct(in{Image: "not a url"}); !validate.HasErrors(errs) {
		t.Error("expected bad url to fail")
	}
	if errs := validate.Struct(in{Image: "https://cards.example/bolt.jpg"}); validate.HasErrors(errs) {
		t.Errorf("expected valid url to pass, got: %v", errs)
	}
}
