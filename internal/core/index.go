package core

// ByteAt returns the byte at offset i, which must satisfy 0 <= i < n.Len().
// The walk is iterative: concat descent and repeat reduction are both tail
// steps, so even a pathological spine costs no stack.
func ByteAt(n Node, i int) byte {
	for {
		switch v := n.(type) {
		case *Literal:
			return v.buf[i]
		case *Concat:
			if l := v.Left.Len(); i < l {
				n = v.Left
			} else {
				i -= l
				n = v.Right
			}
		case *Repeat:
			i %= v.Child.Len()
			n = v.Child
		}
	}
}
