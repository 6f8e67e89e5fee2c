package internal

import "testing"

type discardPrinter struct{}

func (discardPrinter) Println(a ...interface{}) (n int, err error) { return 0, nil }
func (discardPrinter) Print(a ...interface{}) (n int, err error)   { return 0, nil }

func benchmarkSource(b *testing.B, source string) {
	for n := 0; n < b.N; n++ {
		if errs := RunSourceWithPrinter(source, discardPrinter{}); len(errs) > 0 {
			b.Fatal(errs)
		}
	}
}

func BenchmarkLoop(b *testing.B) {
	benchmarkSource(b, `
let a = 1;
for ; a < 100000; {
    a = a + 1;
}
`)
}

func BenchmarkFib(b *testing.B) {
	benchmarkSource(b, `
fun fib(n) {
    if n < 2 { return n; }
    return fib(n - 1) + fib(n - 2);
}
fib(18);
`)
}

func BenchmarkMethodCalls(b *testing.B) {
	benchmarkSource(b, `
class Counter {
    constructor() { this.n = 0; }
    inc() { this.n = this.n + 1; }
}
let c = Counter();
for let i = 0; i < 10000; i = i + 1 {
    c.inc();
}
`)
}
