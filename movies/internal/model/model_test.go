package model_test

import (
	"testing"

	"github.com/alexkharrod/webapps/movies/internal/model"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	t.Parallel()

	t.Run("dense 1..N over rating order", func(t *testing.T) {
		t.Parallel()
		movies := []model.Movie{
			{ID: 3, Title: "Heat", Rating: 9.1},
			{ID: 1, Title: "Alien", Rating: 8.5},
			{ID: 2, Title: "Tenet", Rating: 7.3},
		}
		ranked := model.Rank(movies)

		require.Len(t, ranked, 3)
		seen := make(map[int]bool, len(ranked))
		for i, m := range ranked {
			require.Equal(t, i+1, m.Ranking)
			seen[m.Ranking] = true
		}
		require.Len(t, seen, 3)
		require.Equal(t, "Heat", ranked[0].Title)
	})

	t.Run("ties keep store order", func(t *testing.T) {
		t.Parallel()
		// insertion order for equal ratings, as the store returns them
		movies := []model.Movie{
			{ID: 1, Title: "First In", Rating: 8.0},
			{ID: 2, Title: "Second In", Rating: 8.0},
			{ID: 3, Title: "Third In", Rating: 8.0},
		}
		ranked := model.Rank(movies)

		require.Equal(t, 1, ranked[0].Ranking)
		require.Equal(t, "First In", ranked[0].Title)
		require.Equal(t, 2, ranked[1].Ranking)
		require.Equal(t, "Second In", ranked[1].Title)
		require.Equal(t, 3, ranked[2].Ranking)
		require.Equal(t, "Third In", ranked[2].Title)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, model.Rank(nil))
	})
}
