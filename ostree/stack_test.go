package ostree

import "testing"

func TestStackOverflowsIntoSlice(t *testing.T) {
	var st stack[int]
	const n = 3*stackDepth + 5
	for i := range n {
		st.push(i)
	}
	if st.len() != n {
		t.Fatalf("expected len %d, have %d", n, st.len())
	}
	for i := n - 1; i >= 0; i-- {
		if e := st.pop(); e != i {
			t.Fatalf("expected %d, popped %d", i, e)
		}
	}
	if st.len() != 0 {
		t.Fatalf("expected empty stack, have len %d", st.len())
	}
	st.push(7)
	st.reset()
	if st.len() != 0 {
		t.Fatalf("reset did not empty the stack")
	}
}
