package parser

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func BenchmarkParse(b *testing.B) {
	l := zerolog.Nop()
	p := New(&l)

	var sb strings.Builder
	for i := 0; i < 100; i++ {
		sb.WriteString("cpu,worker,app,prod,dom,util,42.5\n")
	}
	text := sb.String()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := p.Parse(text); len(got) != 100 {
			b.Fatalf("parsed %d samples", len(got))
		}
	}
}
