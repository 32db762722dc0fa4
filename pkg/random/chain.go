package random

// Chain hands out RotateHash(root, 0), RotateHash(root, 1), ... so that a
// sequence of draws hangs off a single committed root hash.
// A Chain must not be shared between goroutines.
type Chain struct {
	root  string
	nonce int
}

func NewChain(root string) *Chain {
	return NewChainFrom(root, 0)
}

// NewChainFrom resumes a chain whose next draw uses nonce.
func NewChainFrom(root string, nonce int) *Chain {
	return &Chain{
		root:  root,
		nonce: nonce,
	}
}

func (c *Chain) Root() string {
	return c.root
}

func (c *Chain) Nonce() int {
	return c.nonce
}

// Next returns the next digest and the nonce it was derived with.
func (c *Chain) Next() (string, int) {
	nonce := c.nonce
	c.nonce++
	return RotateHash(c.root, nonce), nonce
}

// Int draws 0..n-1 from the next digest. The nonce is only consumed on success.
func (c *Chain) Int(n int) (int, error) {
	v, err := Rand(RotateHash(c.root, c.nonce), n)
	if err != nil {
		return 0, err
	}

	c.nonce++
	return v, nil
}

// Long is Int for 64-bit bounds.
func (c *Chain) Long(n int64) (int64, error) {
	v, err := RandLong(RotateHash(c.root, c.nonce), n)
	if err != nil {
		return 0, err
	}

	c.nonce++
	return v, nil
}
