package calcx_test

import (
	"testing"

	. "github.com/comalice/calcx"
)

func BenchmarkAddDigit(b *testing.B) {
	s := Initial()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s = AddDigit(s, Digits[i%len(Digits)])
		if len(s.CurrentOperand) == MaxOperandLength {
			s = Initial()
		}
	}
}

func BenchmarkEvaluate(b *testing.B) {
	s := State{PreviousOperand: "1234.5678", CurrentOperand: "98.76", Operation: Divide}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, ok := Evaluate(s); !ok {
			b.Fatal("not computable")
		}
	}
}

func BenchmarkStoreUpdate(b *testing.B) {
	store := NewStore(Initial())
	store.Subscribe(func(State) {})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		store.Update(RemoveDigit)
	}
}
