package jsonlutil

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

type wire struct {
	N int `json:"n"`
}

func never(error) bool { return false }

func TestWriteOneLinePerItem(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []int{1, 2, 3}, func(i int) wire { return wire{N: i} }, never)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	sc := bufio.NewScanner(&buf)
	n := 0
	for sc.Scan() {
		n++
		var w wire
		if err := json.Unmarshal(sc.Bytes(), &w); err != nil || w.N != n {
			t.Fatalf("line %d: %q (%v)", n, sc.Text(), err)
		}
	}
	if n != 3 {
		t.Fatalf("want 3 lines, got %d", n)
	}
}

var errPipe = errors.New("pipe")

type failing struct{}

func (failing) Write([]byte) (int, error) { return 0, errPipe }

func TestWriteBrokenPipeSuppressed(t *testing.T) {
	conv := func(i int) wire { return wire{N: i} }
	if err := Write(failing{}, []int{1}, conv, func(err error) bool { return errors.Is(err, errPipe) }); err != nil {
		t.Fatalf("broken pipe should be suppressed, got %v", err)
	}
	if err := Write(failing{}, []int{1}, conv, never); !errors.Is(err, errPipe) {
		t.Fatalf("want errPipe, got %v", err)
	}
}
