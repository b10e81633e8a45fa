//go:build go1.18
// +build go1.18

package lazycalc_test

import (
	"testing"

	"github.com/annkamsk/lazycalc"
)

func FuzzCalculate(f *testing.F) {
	f.Add("42+")
	f.Add("22+2-2*0-")
	f.Add("424+")
	f.Add("")
	f.Fuzz(func(t *testing.T, s string) {
		// Total operators only: the default '/' faults on a zero divisor.
		reg := lazycalc.NewRegistry()
		for d := byte('0'); d <= '9'; d++ {
			reg.RegisterLiteral(d, lazycalc.Const(int(d-'0')))
		}
		reg.RegisterOperator('+', func(a, b lazycalc.Thunk) int { return a.Force() + b.Force() })
		reg.RegisterOperator('-', func(a, b lazycalc.Thunk) int { return a.Force() - b.Force() })
		reg.RegisterOperator('*', func(a, b lazycalc.Thunk) int { return a.Force() * b.Force() })
		reg.RegisterOperator(',', lazycalc.Seq)
		reg.RegisterOperator('?', lazycalc.If)
		lazycalc.New(lazycalc.WithRegistry(reg)).Calculate(s)
	})
}
