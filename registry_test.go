package lazycalc_test

import (
	"testing"

	"github.com/annkamsk/lazycalc"
)

func TestRegistryBindings(t *testing.T) {
	reg := lazycalc.NewRegistry()
	if err := reg.RegisterLiteral('x', lazycalc.Const(3)); err != nil {
		t.Fatalf("RegisterLiteral failed: %v", err)
	}
	if err := reg.RegisterOperator('y', lazycalc.Seq); err != nil {
		t.Fatalf("RegisterOperator failed: %v", err)
	}
	cases := []struct {
		name string
		tok  byte
		want lazycalc.Binding
	}{
		{"literal", 'x', lazycalc.Literal},
		{"operator", 'y', lazycalc.Operator},
		{"unbound", 'z', lazycalc.Unbound},
		{"out-of-domain", 0xC3, lazycalc.Unbound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := reg.Lookup(c.tok); got != c.want {
				t.Errorf("Lookup(%q) = %v, want %v", c.tok, got, c.want)
			}
		})
	}
}

func TestRegistryRedefined(t *testing.T) {
	reg := lazycalc.NewRegistry()
	if err := reg.RegisterLiteral('l', lazycalc.Const(1)); err != nil {
		t.Fatalf("RegisterLiteral failed: %v", err)
	}
	if err := reg.RegisterOperator('o', lazycalc.Seq); err != nil {
		t.Fatalf("RegisterOperator failed: %v", err)
	}
	cases := []struct {
		name string
		tok  byte
		as   lazycalc.Binding
	}{
		{"literal-as-literal", 'l', lazycalc.Literal},
		{"literal-as-operator", 'l', lazycalc.Literal},
		{"operator-as-literal", 'o', lazycalc.Operator},
		{"operator-as-operator", 'o', lazycalc.Operator},
	}
	for i, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var err error
			if i%2 == 0 {
				err = reg.RegisterLiteral(c.tok, lazycalc.Const(99))
			} else {
				err = reg.RegisterOperator(c.tok, lazycalc.Digits)
			}
			if err == nil {
				t.Fatal("rebinding succeeded")
			}
			re, ok := err.(*lazycalc.RedefinedError)
			if !ok {
				t.Fatalf("error was %#v, not *RedefinedError", err)
			}
			if re.Token != c.tok {
				t.Errorf("wrong token: want %q, got %q", c.tok, re.Token)
			}
			if re.Binding != c.as {
				t.Errorf("wrong binding: want %v, got %v", c.as, re.Binding)
			}
		})
	}
	// A failed rebinding must not disturb the original binding.
	c := lazycalc.New(lazycalc.WithRegistry(reg))
	if r, err := c.Calculate("l"); err != nil || r != 1 {
		t.Errorf("binding changed after failed rebind: got %d, %v", r, err)
	}
}

func TestRegisterOutOfDomainPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering token 128 did not panic")
		}
	}()
	lazycalc.NewRegistry().RegisterLiteral(128, lazycalc.Const(0))
}
