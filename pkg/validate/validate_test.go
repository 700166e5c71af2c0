package validate_test

import (
	"testing"

	"github.com/turboost/store/pkg/validate"
)

type loginInput struct {
	Username string `json:"username" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(loginInput{Username: "admin", Password: "secret123"})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(loginInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	if _, ok := errs["username"]; !ok {
		t.Error("expected username to be required")
	}
	if _, ok := errs["password"]; !ok {
		t.Error("expected password to be required")
	}
}

func TestRequiredTrimsWhitespace(t *testing.T) {
	errs := validate.Struct(loginInput{Username: "   ", Password: "secret123"})
	if _, ok := errs["username"]; !ok {
		t.Error("expected whitespace-only username to fail required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	if errs := validate.Struct(in{Email: "not-an-email"}); !validate.HasErrors(errs) {
		t.Error("expected email validation error")
	}
	if errs := validate.Struct(in{Email: "ana@example.com"}); validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestMinRuleOnStrings(t *testing.T) {
	errs := validate.Struct(loginInput{Username: "admin", Password: "short"})
	if _, ok := errs["password"]; !ok {
		t.Error("expected short password to fail min=6")
	}
}

func TestMinMaxOnNumbers(t *testing.T) {
	type in struct {
		Qty int `json:"qty" validate:"required,min=1,max=99"`
	}
	if errs := validate.Struct(in{Qty: 100}); !validate.HasErrors(errs) {
		t.Error("expected qty > 99 to fail")
	}
	if errs := validate.Struct(in{Qty: 5}); validate.HasErrors(errs) {
		t.Errorf("expected qty 5 to pass, got: %v", errs)
	}
}

func TestPointerInput(t *testing.T) {
	errs := validate.Struct(&loginInput{Username: "admin", Password: "secret123"})
	if validate.HasErrors(errs) {
		t.Errorf("expected pointer input to validate, got: %v", errs)
	}
}

func TestFirstFailingRuleWins(t *testing.T) {
	errs := validate.Struct(loginInput{})
	if errs["password"] != "The password field is required." {
		t.Errorf("expected the required message, got %q", errs["password"])
	}
}
