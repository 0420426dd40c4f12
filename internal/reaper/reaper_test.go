package reaper

import (
	"testing"
	"time"
)

func TestReap_NoChildren(t *testing.T) {
	done := make(chan int, 1)
	go func() { done <- Reap() }()

	select {
	case n := <-done:
		if n < 0 {
			t.Fatalf("negative reap count %d", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Reap blocked with no children")
	}
}

func TestReap_Repeated(t *testing.T) {
	for i := 0; i < 3; i++ {
		if n := Reap(); n < 0 {
			t.Fatalf("negative reap count %d", n)
		}
	}
}
