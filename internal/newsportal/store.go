package newsportal

import "sync"

// Store holds all mutable content in memory. Every write goes through one of
// its mutators; readers get copies. Nothing is persisted.
type Store struct {
	mu sync.RWMutex

	articles      []Article
	videos        []Video
	ads           []AdConfig
	reporters     []Reporter
	reports       []Report
	navCategories []string
	adminPassword string
	isAdmin       bool
}

func NewStore(initial State) *Store {
	return &Store{
		articles:      clone(initial.Articles),
		videos:        clone(initial.Videos),
		ads:           clone(initial.Ads),
		reporters:     clone(initial.Reporters),
		reports:       clone(initial.Reports),
		navCategories: clone(initial.NavCategories),
		adminPassword: initial.AdminPassword,
		isAdmin:       initial.IsAdmin,
	}
}

func (s *Store) Articles() []Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.articles)
}

func (s *Store) Videos() []Video {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.videos)
}

func (s *Store) Ads() []AdConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.ads)
}

func (s *Store) Reporters() []Reporter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.reporters)
}

func (s *Store) Reports() []Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.reports)
}

func (s *Store) NavCategories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.navCategories)
}

func (s *Store) AdminPassword() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adminPassword
}

func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAdmin
}

// Snapshot copies the whole state under a single read lock.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Articles:      clone(s.articles),
		Videos:        clone(s.videos),
		Ads:           clone(s.ads),
		Reporters:     clone(s.reporters),
		Reports:       clone(s.reports),
		NavCategories: clone(s.navCategories),
		AdminPassword: s.adminPassword,
		IsAdmin:       s.isAdmin,
	}
}

// AddArticle puts a at the head of the list, making it the lead story.
func (s *Store) AddArticle(a Article) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles = InsertAt(s.articles, 0, a)
}

// UpdateArticles replaces the ordered article list.
func (s *Store) UpdateArticles(list []Article) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles = clone(list)
}

// EditArticle replaces the article with a matching id. Unknown ids are ignored.
func (s *Store) EditArticle(a Article) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := IndexByID(s.articles, a.ID); i >= 0 {
		s.articles[i] = a
	}
}

// MutateArticles runs fn on a copy of the article list under the write lock
// and stores the result. When fn fails the list is left as it was.
func (s *Store) MutateArticles(fn func([]Article) ([]Article, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := fn(clone(s.articles))
	if err != nil {
		return err
	}
	s.articles = list
	return nil
}

func (s *Store) UpdateAds(list []AdConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ads = clone(list)
}

func (s *Store) MutateAds(fn func([]AdConfig) ([]AdConfig, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := fn(clone(s.ads))
	if err != nil {
		return err
	}
	s.ads = list
	return nil
}

func (s *Store) UpdateVideos(list []Video) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos = clone(list)
}

func (s *Store) MutateVideos(fn func([]Video) ([]Video, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := fn(clone(s.videos))
	if err != nil {
		return err
	}
	s.videos = list
	return nil
}

func (s *Store) AddVideo(v Video) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos = InsertAt(s.videos, 0, v)
}

func (s *Store) DeleteVideo(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos = RemoveByID(s.videos, id)
}

// UpdateReporters replaces the reporter list. Articles pointing at removed
// reporters are left as they are.
func (s *Store) UpdateReporters(list []Reporter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reporters = clone(list)
}

// AddReport prepends r. Reports cannot be edited or removed afterwards.
func (s *Store) AddReport(r Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports = InsertAt(s.reports, 0, r)
}

func (s *Store) UpdateAdminPassword(pw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adminPassword = pw
}

func (s *Store) UpdateNavCategories(list []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.navCategories = clone(list)
}

func (s *Store) SetAdmin(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isAdmin = v
}
