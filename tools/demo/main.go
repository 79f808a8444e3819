// Command demo walks the public contract of vec.Array end to end:
// sized construction, growth, positional insert, append, in-order
// enumeration, erase, pop and an unchecked read past the live range.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gernest/vec"
)

func main() {
	size := flag.Int("size", 1, "initial length of the array")
	flag.Parse()

	a := vec.WithLen[int](*size)
	slog.Info("constructed", "len", a.Len(), "cap", a.Cap(), "empty", a.IsEmpty())

	a.Resize(20)
	slog.Info("resized", "len", a.Len(), "cap", a.Cap())

	pos := a.Insert(3, 8)
	slog.Info("inserted", "pos", pos, "value", a.Get(pos), "len", a.Len())

	a.PushBack(3)
	slog.Info("pushed", "last", a.Get(a.Len()-1), "len", a.Len())

	for i, v := range a.All() {
		if v != 0 {
			fmt.Fprintf(os.Stdout, "[%d] = %d\n", i, v)
		}
	}

	a.Erase(3)
	a.PopBack()
	slog.Info("erased and popped", "len", a.Len(), "cap", a.Cap())

	// Past the live range but inside capacity. Unchecked by contract:
	// the value read here is meaningless.
	slog.Info("unchecked read", "slot", 22, "residual", a.Get(22))
}
