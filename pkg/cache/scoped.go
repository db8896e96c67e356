package cache

// ScopedKeyer prefixes every key of an inner Keyer, so that several
// processes can share one backend without colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "api:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer
// falls back to [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

func (k *ScopedKeyer) CountKey(layoutHash string, moves []uint) string {
	return k.prefix + k.inner.CountKey(layoutHash, moves)
}

func (k *ScopedKeyer) PathKey(layoutHash string, moves []uint, rank string) string {
	return k.prefix + k.inner.PathKey(layoutHash, moves, rank)
}
