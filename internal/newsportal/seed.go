package newsportal

import "time"

var seedTime = time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)

const DefaultAdminPassword = "pw"

// DefaultNavCategories is the menu shipped with a fresh site.
func DefaultNavCategories() []string {
	return []string{"오피니언", LatestCategory, "기술", "경영", "사회", "문화"}
}

// DefaultState is the demo content a new site starts with.
func DefaultState() State {
	return State{
		AdminPassword: DefaultAdminPassword,
		NavCategories: DefaultNavCategories(),
		Articles: []Article{
			{
				ID:         "1",
				Title:      "한국프로세스혁신협회, 차세대 디지털 전환 로드맵 발표",
				Category:   "기술",
				Content:    "한국프로세스혁신협회는 오늘 서울에서 열린 세미나에서 국내 기업들의 글로벌 경쟁력 강화를 위한 2025 디지털 전환 로드맵을 발표했습니다. 이번 로드맵은 AI와 클라우드 프로세스를 중심으로...",
				Image:      "https://picsum.photos/seed/tech1/800/500",
				CreatedAt:  seedTime,
				UpdatedAt:  seedTime.Add(5*time.Hour + 30*time.Minute),
				ReporterID: "rep1",
			},
			{
				ID:         "2",
				Title:      "경영 효율성 극대화를 위한 스마트 오피스 도입 현황",
				Category:   "경영",
				Content:    "대기업들을 중심으로 불고 있는 스마트 오피스 열풍은 단순한 공간 변화를 넘어 업무 프로세스의 근본적인 혁신을 요구하고 있습니다. 최근 조사에 따르면 스마트 오피스 도입 후 업무 만족도가...",
				Image:      "https://picsum.photos/seed/biz1/800/500",
				CreatedAt:  seedTime.Add(-22*time.Hour - 40*time.Minute),
				UpdatedAt:  seedTime.Add(-22 * time.Hour),
				ReporterID: "rep2",
			},
		},
		Videos: []Video{
			{
				ID:            "v1",
				Title:         "이노뉴스 창간 기념 대담 - 미래의 프로세스",
				Description:   "이노뉴스 창간을 기념하여 국내 최고의 전문가들과 함께 미래 프로세스 혁신에 대해 이야기 나누었습니다. 자세한 내용은 공식 홈페이지 https://innonews.co.kr 에서 확인하세요.",
				YoutubeURL:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				ThumbnailType: ThumbnailDefault,
			},
		},
		Ads: []AdConfig{
			{ID: "ad-side-1", Type: AdSidebar, ImageURL: "https://picsum.photos/seed/ad1/160/600", LinkURL: "https://askinno.com", IsVisible: true},
			{ID: "ad-top-1", Type: AdTop, ImageURL: "https://picsum.photos/seed/ad2/728/90", LinkURL: "https://www.google.com", IsVisible: true},
			{ID: "ad-pop-1", Type: AdPopup, ImageURL: "https://i.pinimg.com/736x/23/72/7d/23727dffcc8b9ab9f954992d13c6eeb6.jpg", LinkURL: "#", IsVisible: true},
			{ID: "ad-pop-2", Type: AdPopup, ImageURL: "https://picsum.photos/seed/pop2/500/500", LinkURL: "#", IsVisible: true},
		},
		Reporters: []Reporter{
			{ID: "rep1", Name: "김이노", Photo: "https://picsum.photos/seed/p1/100/100", Role: "기술과학부 전문기자"},
			{ID: "rep2", Name: "이혁신", Photo: "https://picsum.photos/seed/p2/100/100", Role: "경영혁신부 기자"},
		},
	}
}

// EmptyState is a site with the default menu and password and no content.
func EmptyState() State {
	return State{
		AdminPassword: DefaultAdminPassword,
		NavCategories: DefaultNavCategories(),
	}
}
