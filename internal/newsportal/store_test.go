package newsportal

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddArticlePrepends(t *testing.T) {
	s := NewStore(State{Articles: articlesWithIDs("old")})

	s.AddArticle(Article{ID: "new"})

	assert.Equal(t, []string{"new", "old"}, ids(s.Articles()))
}

func TestStore_EditArticle(t *testing.T) {
	s := NewStore(State{Articles: articlesWithIDs("a", "b")})

	t.Run("ReplacesMatchingRecord", func(t *testing.T) {
		s.EditArticle(Article{ID: "b", Title: "changed"})

		got := s.Articles()
		require.Len(t, got, 2)
		assert.Equal(t, "title a", got[0].Title)
		assert.Equal(t, "changed", got[1].Title)
	})

	t.Run("UnknownIDIsNoOp", func(t *testing.T) {
		before := s.Articles()
		s.EditArticle(Article{ID: "missing", Title: "x"})
		assert.Equal(t, before, s.Articles())
	})
}

func TestStore_ReadersReturnCopies(t *testing.T) {
	s := NewStore(State{Articles: articlesWithIDs("a"), NavCategories: []string{"기술"}})

	arts := s.Articles()
	arts[0].Title = "mutated"
	cats := s.NavCategories()
	cats[0] = "mutated"

	assert.Equal(t, "title a", s.Articles()[0].Title)
	assert.Equal(t, []string{"기술"}, s.NavCategories())
}

func TestStore_Collections(t *testing.T) {
	s := NewStore(State{})

	s.AddReport(Report{ID: "r1"})
	s.AddReport(Report{ID: "r2"})
	assert.Equal(t, []string{"r2", "r1"}, ids(s.Reports()))

	s.AddVideo(Video{ID: "v1"})
	s.AddVideo(Video{ID: "v2"})
	assert.Equal(t, []string{"v2", "v1"}, ids(s.Videos()))
	s.DeleteVideo("v2")
	assert.Equal(t, []string{"v1"}, ids(s.Videos()))

	s.UpdateVideos([]Video{{ID: "v3"}})
	assert.Equal(t, []string{"v3"}, ids(s.Videos()))

	s.UpdateAds([]AdConfig{{ID: "ad1", Type: AdTop}})
	assert.Equal(t, []string{"ad1"}, ids(s.Ads()))

	s.UpdateReporters([]Reporter{{ID: "rep"}})
	assert.Equal(t, []string{"rep"}, ids(s.Reporters()))

	s.UpdateNavCategories([]string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, s.NavCategories())

	s.UpdateAdminPassword("secret")
	assert.Equal(t, "secret", s.AdminPassword())

	s.SetAdmin(true)
	assert.True(t, s.IsAdmin())
	assert.True(t, s.Snapshot().IsAdmin)
}

func TestStore_DeletingReporterKeepsArticle(t *testing.T) {
	s := NewStore(State{
		Articles:  []Article{{ID: "a1", ReporterID: "rep1"}},
		Reporters: []Reporter{{ID: "rep1", Name: "김이노"}},
	})

	s.UpdateReporters(RemoveByID(s.Reporters(), "rep1"))

	arts := s.Articles()
	require.Len(t, arts, 1)
	assert.Equal(t, "rep1", arts[0].ReporterID)

	b := FindByline(arts[0], s.Reporters())
	assert.False(t, b.Found)
	assert.Equal(t, DefaultReporterEmail, b.Email())
}

func TestStore_Mutate(t *testing.T) {
	t.Run("StoresResult", func(t *testing.T) {
		s := NewStore(State{Articles: articlesWithIDs("a", "b")})

		err := s.MutateArticles(func(list []Article) ([]Article, error) {
			return Swap(list, 0, 1), nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, ids(s.Articles()))
	})

	t.Run("ErrorKeepsState", func(t *testing.T) {
		s := NewStore(State{
			Ads:    []AdConfig{{ID: "x", IsVisible: true}},
			Videos: []Video{{ID: "v"}},
		})
		boom := errors.New("boom")

		err := s.MutateAds(func(ads []AdConfig) ([]AdConfig, error) {
			ads[0].IsVisible = false
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)
		assert.True(t, s.Ads()[0].IsVisible)

		err = s.MutateVideos(func(videos []Video) ([]Video, error) {
			videos[0].Title = "changed"
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, s.Videos()[0].Title)
	})

	t.Run("ConcurrentWithAdd", func(t *testing.T) {
		s := NewStore(State{Articles: articlesWithIDs("a", "b", "c")})

		var wg sync.WaitGroup
		for range 50 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				s.AddArticle(Article{ID: "n"})
			}()
			go func() {
				defer wg.Done()
				_ = s.MutateArticles(func(list []Article) ([]Article, error) {
					return SwapAdjacent(list, len(list)-1, Up), nil
				})
			}()
		}
		wg.Wait()

		assert.Len(t, s.Articles(), 53)
	})
}
