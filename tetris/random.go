package tetris

import "math/rand/v2"

// Source is the random number source a Randomizer draws from.
// *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSeededSource returns a deterministic source for reproducible piece sequences.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Randomizer picks the kind of the next piece.
type Randomizer interface {
	Next() Kind
}

// Uniform draws every kind with equal probability; repeats are allowed.
type Uniform struct {
	src Source
}

func NewUniform(src Source) *Uniform {
	return &Uniform{src: src}
}

func (u *Uniform) Next() Kind {
	return Kind(u.src.IntN(kindCount))
}

// Bag deals all seven kinds in a shuffled order before refilling.
type Bag struct {
	src  Source
	next []Kind
}

func NewBag(src Source) *Bag {
	return &Bag{src: src}
}

func (b *Bag) Next() Kind {
	if len(b.next) == 0 {
		bag := Kinds()
		for i := len(bag) - 1; i > 0; i-- {
			j := b.src.IntN(i + 1)
			bag[i], bag[j] = bag[j], bag[i]
		}
		b.next = bag
	}

	kind := b.next[0]
	b.next = b.next[1:]
	return kind
}

// Sequence replays a fixed list of kinds, cycling when exhausted.
type Sequence struct {
	kinds []Kind
	pos   int
}

func NewSequence(kinds ...Kind) *Sequence {
	if len(kinds) == 0 {
		kinds = Kinds()
	}
	return &Sequence{kinds: kinds}
}

func (s *Sequence) Next() Kind {
	kind := s.kinds[s.pos%len(s.kinds)]
	s.pos++
	return kind
}
