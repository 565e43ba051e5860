package keyqueue_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/replan/keyqueue"
)

// QueueSuite exercises the indexed heap operations one by one.
type QueueSuite struct {
	suite.Suite
	q *keyqueue.Queue[string]
}

func (s *QueueSuite) SetupTest() {
	s.q = keyqueue.New[string](8)
}

func (s *QueueSuite) TestEmpty() {
	_, ok := s.q.Top()
	s.False(ok)
	s.Equal(keyqueue.InfKey, s.q.TopKey())
	_, k, ok := s.q.Pop()
	s.False(ok)
	s.Equal(keyqueue.InfKey, k)
	s.q.Remove("ghost") // no-op
	s.Equal(0, s.q.Len())
}

func (s *QueueSuite) TestInsertRejectsDuplicate() {
	require.NoError(s.T(), s.q.Insert("A", keyqueue.Key{K1: 1}))
	err := s.q.Insert("A", keyqueue.Key{K1: 0})
	s.ErrorIs(err, keyqueue.ErrDuplicate)
	s.Equal(1, s.q.Len())
	k, ok := s.q.Key("A")
	s.True(ok)
	s.Equal(keyqueue.Key{K1: 1}, k, "failed insert must not touch the existing key")
}

func (s *QueueSuite) TestLexicographicOrder() {
	require.NoError(s.T(), s.q.Insert("A", keyqueue.Key{K1: 2, K2: 0}))
	require.NoError(s.T(), s.q.Insert("B", keyqueue.Key{K1: 1, K2: 9}))
	require.NoError(s.T(), s.q.Insert("C", keyqueue.Key{K1: 1, K2: 3}))

	want := []string{"C", "B", "A"}
	for _, w := range want {
		v, _, ok := s.q.Pop()
		s.True(ok)
		s.Equal(w, v)
	}
}

func (s *QueueSuite) TestUpdateBothDirections() {
	require.NoError(s.T(), s.q.Insert("A", keyqueue.Key{K1: 1}))
	require.NoError(s.T(), s.q.Insert("B", keyqueue.Key{K1: 2}))

	s.q.Update("A", keyqueue.Key{K1: 5}) // increase
	top, _ := s.q.Top()
	s.Equal("B", top)

	s.q.Update("A", keyqueue.Key{K1: 0}) // decrease
	top, _ = s.q.Top()
	s.Equal("A", top)
	s.Equal(keyqueue.Key{K1: 0}, s.q.TopKey())

	s.q.Update("C", keyqueue.Key{K1: -1}) // absent: inserted
	top, _ = s.q.Top()
	s.Equal("C", top)
	s.Equal(3, s.q.Len())
}

func (s *QueueSuite) TestRemoveKeepsHeapValid() {
	for i, v := range []string{"A", "B", "C", "D", "E"} {
		require.NoError(s.T(), s.q.Insert(v, keyqueue.Key{K1: float64(i)}))
	}
	s.q.Remove("A")
	s.q.Remove("C")
	s.False(s.q.Contains("A"))
	s.True(s.q.Contains("B"))

	var got []string
	for s.q.Len() > 0 {
		v, _, _ := s.q.Pop()
		got = append(got, v)
	}
	s.Equal([]string{"B", "D", "E"}, got)
}

func (s *QueueSuite) TestClear() {
	require.NoError(s.T(), s.q.Insert("A", keyqueue.Key{}))
	s.q.Clear()
	s.Equal(0, s.q.Len())
	s.False(s.q.Contains("A"))
	require.NoError(s.T(), s.q.Insert("A", keyqueue.Key{}))
}

func TestQueueSuite(t *testing.T) {
	suite.Run(t, new(QueueSuite))
}

// TestTopIsMinimumAfterRandomOps checks the queue law against a brute-force
// model: after any mix of Insert/Update/Remove/Pop, TopKey is the smallest
// key among present vertices and Top holds that key.
func TestTopIsMinimumAfterRandomOps(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	q := keyqueue.New[int](0)
	model := map[int]keyqueue.Key{}

	randKey := func() keyqueue.Key {
		// small domain on purpose so ties in K1 are common
		return keyqueue.Key{K1: float64(r.Intn(6)), K2: float64(r.Intn(6))}
	}

	for step := 0; step < 5000; step++ {
		v := r.Intn(40)
		switch op := r.Intn(4); op {
		case 0:
			k := randKey()
			err := q.Insert(v, k)
			if _, present := model[v]; present {
				require.ErrorIs(t, err, keyqueue.ErrDuplicate)
			} else {
				require.NoError(t, err)
				model[v] = k
			}
		case 1:
			k := randKey()
			q.Update(v, k)
			model[v] = k
		case 2:
			q.Remove(v)
			delete(model, v)
		case 3:
			top, k, ok := q.Pop()
			if len(model) == 0 {
				require.False(t, ok)
				continue
			}
			require.True(t, ok)
			require.Equal(t, model[top], k)
			delete(model, top)
		}

		require.Equal(t, len(model), q.Len(), "step %d", step)
		if len(model) == 0 {
			require.Equal(t, keyqueue.InfKey, q.TopKey())
			continue
		}
		min := keyqueue.InfKey
		for _, k := range model {
			if k.Less(min) {
				min = k
			}
		}
		require.Equal(t, min, q.TopKey(), "step %d", step)
		top, ok := q.Top()
		require.True(t, ok)
		require.Equal(t, min, model[top], "step %d", step)
	}
}

func TestKeyLess(t *testing.T) {
	a := keyqueue.Key{K1: 1, K2: 5}
	b := keyqueue.Key{K1: 1, K2: 6}
	c := keyqueue.Key{K1: 2, K2: 0}
	require.True(t, a.Less(b))
	require.True(t, b.Less(c))
	require.False(t, a.Less(a))
	require.True(t, c.Less(keyqueue.InfKey))
	require.False(t, keyqueue.InfKey.Less(keyqueue.InfKey))
	require.Equal(t, "[1, 5]", a.String())
}
