package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewModel(t *testing.T) {
	t.Run("english defaults", func(t *testing.T) {
		m, err := NewModel(Cross, 3)
		require.NoError(t, err)

		require.Equal(t, 7, m.Length())
		require.Equal(t, 32, m.Score())
		c, err := m.Cell(Position{3, 3})
		require.NoError(t, err)
		require.Equal(t, Empty, c)
		require.Equal(t, englishStart, m.Render())
		require.False(t, m.IsGameOver())
	})

	t.Run("english with a custom hole", func(t *testing.T) {
		m, err := NewModel(Cross, 3, WithEmpty(Position{2, 3}))
		require.NoError(t, err)

		require.Equal(t, 32, m.Score())
		require.Equal(t, "    O O O\n    O O O\nO O O _ O O O\nO O O O O O O\nO O O O O O O\n    O O O\n    O O O", m.Render())
	})

	t.Run("english hole on a corner", func(t *testing.T) {
		_, err := NewModel(Cross, 3, WithEmpty(Position{0, 0}))

		var posErr *InvalidPositionError
		require.ErrorAs(t, err, &posErr)
		require.Equal(t, Position{0, 0}, posErr.Position)
		require.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("hole off the board", func(t *testing.T) {
		_, err := NewModel(Cross, 3, WithEmpty(Position{7, 3}))

		var posErr *InvalidPositionError
		require.ErrorAs(t, err, &posErr)
		require.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("triangle defaults to an empty apex", func(t *testing.T) {
		m, err := NewModel(Triangle, 5)
		require.NoError(t, err)

		require.Equal(t, 14, m.Score())
		require.Equal(t, triangleStart, m.Render())
	})

	t.Run("triangle with a side hole refills the apex", func(t *testing.T) {
		m, err := NewModel(Triangle, 5, WithEmpty(Position{2, 1}))
		require.NoError(t, err)

		apex, err := m.Cell(Position{0, 0})
		require.NoError(t, err)
		require.Equal(t, Peg, apex)
		hole, err := m.Cell(Position{2, 1})
		require.NoError(t, err)
		require.Equal(t, Empty, hole)
		require.Equal(t, 14, m.Score())
		require.Equal(t, "O\nO O\nO _ O\nO O O O\nO O O O O", m.Render())
	})

	t.Run("triangle hole chosen at the apex", func(t *testing.T) {
		m, err := NewModel(Triangle, 5, WithEmpty(Position{0, 0}))
		require.NoError(t, err)
		require.Equal(t, triangleStart, m.Render())
	})

	t.Run("triangle hole outside the triangle", func(t *testing.T) {
		_, err := NewModel(Triangle, 5, WithEmpty(Position{0, 4}))
		require.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("arm too small", func(t *testing.T) {
		_, err := NewModel(Triangle, 3)
		var cfgErr *ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		require.Equal(t, Triangle, cfgErr.Shape)

		_, err = NewModel(Cross, 0, WithEmpty(Position{0, 0}))
		require.ErrorAs(t, err, &cfgErr, "Arm should be checked before the hole")
	})
}

func TestModelMove(t *testing.T) {
	t.Run("legal move", func(t *testing.T) {
		m, err := NewModel(Cross, 3)
		require.NoError(t, err)

		require.NoError(t, m.Move(Position{3, 1}, Position{3, 3}))
		require.Equal(t, 31, m.Score())
		require.Equal(t, englishAfterJump, m.Render())
	})

	t.Run("illegal move", func(t *testing.T) {
		m, err := NewModel(Cross, 3)
		require.NoError(t, err)
		render, hash := m.Render(), m.Hash()

		err = m.Move(Position{3, 0}, Position{3, 3})
		var moveErr *InvalidMoveError
		require.ErrorAs(t, err, &moveErr)
		require.Equal(t, BadDirectionOrDistance, moveErr.Reason)
		require.Equal(t, 32, m.Score(), "Score should not change")
		require.Equal(t, render, m.Render())
		require.Equal(t, hash, m.Hash())
	})

	t.Run("score tracks the peg count", func(t *testing.T) {
		m, err := NewModel(Triangle, 6, WithEmpty(Position{2, 1}))
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(42))

		for !m.IsGameOver() {
			moves := m.LegalMoves()
			require.NotEmpty(t, moves)
			before := m.Score()
			require.NoError(t, m.Play(moves[rng.Intn(len(moves))]))
			require.Equal(t, before-1, m.Score())
			require.Equal(t, m.board.CountPegs(), m.Score())
		}
		require.Empty(t, m.LegalMoves())
	})
}

func TestModelCopy(t *testing.T) {
	m, err := NewModel(Cross, 3)
	require.NoError(t, err)

	c := m.Copy()
	require.NoError(t, c.Move(Position{1, 3}, Position{3, 3}))
	require.Equal(t, 32, m.Score())
	require.Equal(t, englishStart, m.Render())
	require.NotEqual(t, m.Hash(), c.Hash())

	b := m.Board()
	require.NoError(t, b.SetCell(Position{3, 3}, Peg))
	require.Equal(t, englishStart, m.Render(), "Board should hand out a copy")
}

func TestModelAsState(t *testing.T) {
	var s State
	s, err := NewModel(Cross, 3)
	require.NoError(t, err)

	require.NoError(t, s.Move(Position{5, 3}, Position{3, 3}))
	require.Equal(t, 31, s.Score())
	require.False(t, s.IsGameOver())
}
