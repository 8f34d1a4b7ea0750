package ostree

// stack is a LIFO of path elements collected while descending the tree.
// Mutators stack the links they pass, iterators the ancestors still to be
// visited. As the tree is balanced, stacks rarely outgrow the inline array.
type stack[E any] struct {
	a    [stackDepth]E
	aLen int // -1 when using s
	s    []E
}

// An AVL tree of height 32 holds more than three million keys.
const stackDepth = 32

func (st *stack[E]) push(e E) {
	if st.aLen == -1 {
		st.s = append(st.s, e)
	} else if st.aLen == len(st.a) {
		st.s = make([]E, st.aLen+1, 2*st.aLen)
		copy(st.s, st.a[:])
		st.s[st.aLen] = e
		st.aLen = -1
	} else {
		st.a[st.aLen] = e
		st.aLen++
	}
}

func (st *stack[E]) pop() E {
	if st.aLen == -1 {
		e := st.s[len(st.s)-1]
		st.s = st.s[:len(st.s)-1]
		return e
	}
	st.aLen--
	return st.a[st.aLen]
}

func (st *stack[E]) len() int {
	if st.aLen == -1 {
		return len(st.s)
	}
	return st.aLen
}

func (st *stack[E]) reset() {
	if st.aLen == -1 {
		st.s = st.s[:0]
	} else {
		st.aLen = 0
	}
}
