package newsportal

import (
	"context"
	"crypto/subtle"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Config struct {
	// MaxAdsPerType caps new ads per placement; 0 disables the cap.
	MaxAdsPerType int
	UrgentMailbox string
	SiteName      string
}

// ArticleDetail is an article page: the article and its reporter box.
type ArticleDetail struct {
	Article Article
	Byline  Byline
}

// ReportReceipt is returned after a tip is stored. MailtoURL is set only
// for urgent tips the visitor chose to mail.
type ReportReceipt struct {
	Report    Report
	MailtoURL string
}

type Manager struct {
	store    *Store
	popups   *Popups
	validate *validator.Validate
	cfg      Config

	now   func() time.Time
	newID func() string
	rnd   *rand.Rand

	mu       sync.Mutex
	sessions map[string]struct{}
}

func NewNewsManager(store *Store, popups *Popups, cfg Config) *Manager {
	return &Manager{
		store:    store,
		popups:   popups,
		validate: validator.New(),
		cfg:      cfg,
		now:      time.Now,
		newID:    uuid.NewString,
		sessions: map[string]struct{}{},
	}
}

// WithClock replaces the time source, for tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// WithRand makes ad rotation deterministic.
func (m *Manager) WithRand(rnd *rand.Rand) *Manager {
	m.rnd = rnd
	return m
}

func (m *Manager) Store() *Store {
	return m.store
}

func (m *Manager) HomeLayout() HomeLayout {
	return Layout(m.store.Articles())
}

func (m *Manager) Categories() []string {
	return m.store.NavCategories()
}

func (m *Manager) ArticlesByCategory(label string) (CategoryFilter, []Article) {
	f := ParseCategoryFilter(label)
	return f, FilterByCategory(m.store.Articles(), f)
}

// ArticleByID returns nil when there is no article with that id.
func (m *Manager) ArticleByID(id string) *ArticleDetail {
	snap := m.store.Snapshot()
	i := IndexByID(snap.Articles, id)
	if i < 0 {
		return nil
	}

	a := snap.Articles[i]
	return &ArticleDetail{Article: a, Byline: FindByline(a, snap.Reporters)}
}

func (m *Manager) Search(q string) SearchResult {
	snap := m.store.Snapshot()
	return Search(snap.Articles, snap.Videos, q)
}

func (m *Manager) Videos() []Video {
	return m.store.Videos()
}

func (m *Manager) VideoByID(id string) *Video {
	videos := m.store.Videos()
	if i := IndexByID(videos, id); i >= 0 {
		return &videos[i]
	}
	return nil
}

// Ad picks the banner shown for a placement.
func (m *Manager) Ad(t AdType) (AdConfig, bool) {
	return PickAd(m.store.Ads(), t, m.rnd)
}

func (m *Manager) Popups(ctx context.Context, visitor string) ([]AdConfig, error) {
	ads, err := m.popups.Eligible(ctx, visitor, m.store.Ads())
	if err != nil {
		return nil, fmt.Errorf("eligible popups: %w", err)
	}
	return ads, nil
}

func (m *Manager) DismissPopup(ctx context.Context, visitor, adID string, hideWeek bool) (DismissResult, error) {
	ads := m.store.Ads()
	i := IndexByID(ads, adID)
	if i < 0 || ads[i].Type != AdPopup {
		return DismissResult{}, fmt.Errorf("popup %q: %w", adID, ErrNotFound)
	}

	res, err := m.popups.Dismiss(ctx, visitor, adID, hideWeek, ads)
	if err != nil {
		return DismissResult{}, fmt.Errorf("dismiss popup: %w", err)
	}
	return res, nil
}

// SubmitReport validates and stores a tip.
func (m *Manager) SubmitReport(in ReportInput) (ReportReceipt, error) {
	if err := m.validate.Struct(in); err != nil {
		return ReportReceipt{}, newValidationError(err)
	}

	r := NewReport(m.newID(), in, m.now())
	m.store.AddReport(r)

	receipt := ReportReceipt{Report: r}
	if in.IsUrgent && in.SendMail {
		receipt.MailtoURL = MailtoURL(m.cfg.UrgentMailbox, m.cfg.SiteName, r)
	}
	return receipt, nil
}

// Login checks pw against the admin password and opens a session.
func (m *Manager) Login(pw string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(pw), []byte(m.store.AdminPassword())) == 0 {
		return "", ErrWrongPassword
	}

	token := m.newID()
	m.mu.Lock()
	m.sessions[token] = struct{}{}
	m.mu.Unlock()

	m.store.SetAdmin(true)
	return token, nil
}

func (m *Manager) Logout(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	left := len(m.sessions)
	m.mu.Unlock()

	if left == 0 {
		m.store.SetAdmin(false)
	}
}

func (m *Manager) IsAdminSession(token string) bool {
	if token == "" {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[token]
	return ok
}

func (m *Manager) Articles() []Article {
	return m.store.Articles()
}

// validateArticle checks the form and that the category is on the menu.
func (m *Manager) validateArticle(in ArticleInput) error {
	if err := m.validate.Struct(in); err != nil {
		return newValidationError(err)
	}
	if !slices.Contains(m.store.NavCategories(), in.Category) {
		return &ValidationError{Fields: []FieldError{{Field: "Category", Rule: "oneof"}}}
	}
	return nil
}

func (m *Manager) PublishArticle(in ArticleInput) (Article, error) {
	if err := m.validateArticle(in); err != nil {
		return Article{}, err
	}

	a := NewArticle(m.newID(), in, m.now())
	m.store.AddArticle(a)
	return a, nil
}

func (m *Manager) EditArticle(id string, in ArticleInput) (Article, error) {
	if err := m.validateArticle(in); err != nil {
		return Article{}, err
	}

	var a Article
	err := m.store.MutateArticles(func(list []Article) ([]Article, error) {
		i := IndexByID(list, id)
		if i < 0 {
			return nil, fmt.Errorf("article %q: %w", id, ErrNotFound)
		}
		a = MergeArticle(list[i], in, m.now())
		list[i] = a
		return list, nil
	})
	if err != nil {
		return Article{}, err
	}
	return a, nil
}

func (m *Manager) DeleteArticle(id string) error {
	return m.store.MutateArticles(func(list []Article) ([]Article, error) {
		if IndexByID(list, id) < 0 {
			return nil, fmt.Errorf("article %q: %w", id, ErrNotFound)
		}
		return RemoveByID(list, id), nil
	})
}

// MoveArticle swaps the article with its upper or lower neighbour.
func (m *Manager) MoveArticle(id string, dir Direction) ([]Article, error) {
	return m.reorderArticle(id, func(list []Article, i int) []Article {
		return SwapAdjacent(list, i, dir)
	})
}

// MoveArticleTo places the article at index, shifting the others.
func (m *Manager) MoveArticleTo(id string, index int) ([]Article, error) {
	return m.reorderArticle(id, func(list []Article, i int) []Article {
		return MoveTo(list, i, index)
	})
}

func (m *Manager) reorderArticle(id string, reorder func([]Article, int) []Article) ([]Article, error) {
	var moved []Article
	err := m.store.MutateArticles(func(list []Article) ([]Article, error) {
		i := IndexByID(list, id)
		if i < 0 {
			return nil, fmt.Errorf("article %q: %w", id, ErrNotFound)
		}
		moved = reorder(list, i)
		return moved, nil
	})
	if err != nil {
		return nil, err
	}
	return clone(moved), nil
}

func (m *Manager) OrphanedArticles() []Article {
	snap := m.store.Snapshot()
	return OrphanedArticles(snap.Articles, snap.NavCategories)
}

// Ads lists every ad, or only one placement when t is set.
func (m *Manager) Ads(t AdType) []AdConfig {
	ads := m.store.Ads()
	if t == "" {
		return ads
	}

	out := make([]AdConfig, 0)
	for _, ad := range ads {
		if ad.Type == t {
			out = append(out, ad)
		}
	}
	return out
}

// SaveAd creates an ad when id is empty, otherwise edits it. The per-type cap
// only applies to new ads.
func (m *Manager) SaveAd(id string, in AdInput) (AdConfig, error) {
	if err := m.validate.Struct(in); err != nil {
		return AdConfig{}, newValidationError(err)
	}

	var ad AdConfig
	err := m.store.MutateAds(func(ads []AdConfig) ([]AdConfig, error) {
		if id == "" {
			if m.cfg.MaxAdsPerType > 0 && CountAds(ads, in.Type) >= m.cfg.MaxAdsPerType {
				return nil, fmt.Errorf("%s: %w", in.Type, ErrAdLimit)
			}
			ad = NewAd(m.newID(), in)
			return append(ads, ad), nil
		}

		i := IndexByID(ads, id)
		if i < 0 {
			return nil, fmt.Errorf("ad %q: %w", id, ErrNotFound)
		}
		ads[i] = MergeAd(ads[i], in)
		ad = ads[i]
		return ads, nil
	})
	if err != nil {
		return AdConfig{}, err
	}
	return ad, nil
}

func (m *Manager) DeleteAd(id string) error {
	return m.store.MutateAds(func(ads []AdConfig) ([]AdConfig, error) {
		if IndexByID(ads, id) < 0 {
			return nil, fmt.Errorf("ad %q: %w", id, ErrNotFound)
		}
		return RemoveByID(ads, id), nil
	})
}

func (m *Manager) ToggleAd(id string) (AdConfig, error) {
	var ad AdConfig
	err := m.store.MutateAds(func(ads []AdConfig) ([]AdConfig, error) {
		i := IndexByID(ads, id)
		if i < 0 {
			return nil, fmt.Errorf("ad %q: %w", id, ErrNotFound)
		}
		ads[i].IsVisible = !ads[i].IsVisible
		ad = ads[i]
		return ads, nil
	})
	if err != nil {
		return AdConfig{}, err
	}
	return ad, nil
}

func (m *Manager) Reports() []Report {
	return m.store.Reports()
}

func (m *Manager) ChangePassword(current, next, confirm string) error {
	if subtle.ConstantTimeCompare([]byte(current), []byte(m.store.AdminPassword())) == 0 {
		return ErrWrongPassword
	}
	if next != confirm {
		return ErrPasswordMismatch
	}
	if next == "" {
		return &ValidationError{Fields: []FieldError{{Field: "Next", Rule: "required"}}}
	}

	m.store.UpdateAdminPassword(next)
	return nil
}

// UpdateNavCategories saves the menu, dropping blank entries.
func (m *Manager) UpdateNavCategories(list []string) []string {
	cats := make([]string, 0, len(list))
	for _, c := range list {
		if strings.TrimSpace(c) != "" {
			cats = append(cats, c)
		}
	}

	m.store.UpdateNavCategories(cats)
	return cats
}

// SaveVideo adds a video at the top of the list when id is empty, otherwise
// edits it in place.
func (m *Manager) SaveVideo(id string, in VideoInput) (Video, error) {
	if err := m.validate.Struct(in); err != nil {
		return Video{}, newValidationError(err)
	}

	if id == "" {
		v := NewVideo(m.newID(), in)
		m.store.AddVideo(v)
		return v, nil
	}

	var v Video
	err := m.store.MutateVideos(func(videos []Video) ([]Video, error) {
		i := IndexByID(videos, id)
		if i < 0 {
			return nil, fmt.Errorf("video %q: %w", id, ErrNotFound)
		}
		videos[i] = MergeVideo(videos[i], in)
		v = videos[i]
		return videos, nil
	})
	if err != nil {
		return Video{}, err
	}
	return v, nil
}

func (m *Manager) DeleteVideo(id string) error {
	return m.store.MutateVideos(func(videos []Video) ([]Video, error) {
		if IndexByID(videos, id) < 0 {
			return nil, fmt.Errorf("video %q: %w", id, ErrNotFound)
		}
		return RemoveByID(videos, id), nil
	})
}

func (m *Manager) Reporters() []Reporter {
	return m.store.Reporters()
}

// UpdateReporters replaces the reporter list, giving new entries an id.
// Articles of removed reporters keep their dangling reporter id.
func (m *Manager) UpdateReporters(list []Reporter) []Reporter {
	out := clone(list)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = m.newID()
		}
	}

	m.store.UpdateReporters(out)
	return out
}
