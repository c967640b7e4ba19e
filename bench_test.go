package lex

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/turmeric-lang/lex/token"
)

var benchSrc = func() []byte {
	var b bytes.Buffer
	rnd := rand.New(rand.NewSource(123456))
	words := []string{"let", "accept", "reject", "state", "'a'", "' '", "255", "0", "<", ">", "#", "[", "]", "{", "}", "|", "@", "="}
	for b.Len() < 1<<20 {
		b.WriteString(words[rnd.Intn(len(words))])
		if rnd.Intn(8) == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	return b.Bytes()
}()

func BenchmarkLex(b *testing.B) {
	b.SetBytes(int64(len(benchSrc)))
	for i := 0; i < b.N; i++ {
		if _, err := Lex(benchSrc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkState(b *testing.B) {
	s := newState(token.NewFile("", benchSrc), newOptions(nil))
	rnd := rand.New(rand.NewSource(123456))

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if rnd.Intn(3) == 0 && !s.undone && s.r > 0 {
			s.backup()
		} else if s.next() == EOF {
			s = newState(token.NewFile("", benchSrc), newOptions(nil))
		}
	}
}
