package engine

import "testing"

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[string]
	var got []string
	e.AddListener(func(s string) { got = append(got, "a:"+s) })
	e.AddListener(nil)
	e.AddListener(func(s string) { got = append(got, "b:"+s) })

	e.Invoke("open")
	e.Invoke("closed")

	want := []string{"a:open", "b:open", "a:closed", "b:closed"}
	if len(got) != len(want) {
		t.Fatalf("Unexpected payloads %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestEventWithoutListeners(t *testing.T) {
	var e EventWithArg[int]
	e.Invoke(1)
}
