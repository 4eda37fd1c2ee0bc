package content

import (
	webi18n "github.com/fromvivianmusic/fvm-web/internal/services/web/i18n"
	"github.com/fromvivianmusic/fvm-web/internal/services/web/routepath"
)

// Service is one lesson offering and its detail page.
type Service struct {
	Slug    string
	Path    string
	NameKey webi18n.Key
	DescKey webi18n.Key
	// Highlights and Target are shown on the services overview card.
	Highlights []Text
	Target     Text
	Detail     ServiceDetail
}

// ServiceDetail is the body of one service page.
type ServiceDetail struct {
	MetaTitleKey       webi18n.Key
	MetaDescriptionKey webi18n.Key
	FeaturesTitleKey   webi18n.Key
	SideTitleKey       webi18n.Key
	CtaTitleKey        webi18n.Key
	CtaDescKey         webi18n.Key
	EyebrowKey         webi18n.Key
	PriceKey           webi18n.Key
	Features           []Text
	Side               []Item
	Kids               bool
}

var services = []Service{
	{
		Slug:    "private",
		Path:    routepath.ServicesPrivate,
		NameKey: webi18n.KeyServicePrivate,
		DescKey: webi18n.KeyServicePrivateDesc,
		Highlights: []Text{
			{KO: "개인 맞춤형 커리큘럼", EN: "Personalized curriculum"},
			{KO: "원하는 시간 예약", EN: "Flexible scheduling"},
			{KO: "1:1 집중 피드백", EN: "1:1 focused feedback"},
		},
		Target: Text{KO: "성인, 직장인, 입시생", EN: "Adults, professionals, exam students"},
		Detail: ServiceDetail{
			MetaTitleKey:       webi18n.KeyMetaPrivateTitle,
			MetaDescriptionKey: webi18n.KeyMetaPrivateDescription,
			FeaturesTitleKey:   webi18n.KeyServiceDetailPrivateFeaturesTitle,
			SideTitleKey:       webi18n.KeyServiceDetailPrivateSideTitle,
			CtaTitleKey:        webi18n.KeyServiceDetailPrivateCtaTitle,
			CtaDescKey:         webi18n.KeyServiceDetailCtaDesc,
			Features: []Text{
				{KO: "개인 맞춤형 커리큘럼 설계", EN: "Personalized curriculum design"},
				{KO: "발성, 호흡, 음정, 리듬 체계적 트레이닝", EN: "Systematic training: breathing, pitch, rhythm"},
				{KO: "원하는 곡 집중 연습", EN: "Focus on songs you want to learn"},
				{KO: "녹음 및 피드백 제공", EN: "Recording and feedback provided"},
				{KO: "레슨 시간 유연하게 조정", EN: "Flexible lesson scheduling"},
			},
			Side: []Item{
				{Label: Same("01"), Title: Text{KO: "상담", EN: "Consultation"}, Desc: Text{KO: "목표와 현재 실력 파악", EN: "Understand goals and current level"}},
				{Label: Same("02"), Title: Text{KO: "레벨 테스트", EN: "Level Test"}, Desc: Text{KO: "맞춤 커리큘럼 설계", EN: "Design custom curriculum"}},
				{Label: Same("03"), Title: Text{KO: "정규 레슨", EN: "Regular Lessons"}, Desc: Text{KO: "주 1-2회 1:1 트레이닝", EN: "1-2 times per week training"}},
				{Label: Same("04"), Title: Text{KO: "피드백", EN: "Feedback"}, Desc: Text{KO: "월별 성장 리포트 제공", EN: "Monthly progress report"}},
			},
		},
	},
	{
		Slug:    "online",
		Path:    routepath.ServicesOnline,
		NameKey: webi18n.KeyServiceOnline,
		DescKey: webi18n.KeyServiceOnlineDesc,
		Highlights: []Text{
			{KO: "언제 어디서나 가능", EN: "Anytime, anywhere"},
			{KO: "녹화 복습 제공", EN: "Recording for review"},
			{KO: "실시간 화면 공유", EN: "Real-time screen sharing"},
		},
		Target: Text{KO: "해외 거주자, 바쁜 직장인", EN: "Overseas residents, busy professionals"},
		Detail: ServiceDetail{
			MetaTitleKey:       webi18n.KeyMetaOnlineTitle,
			MetaDescriptionKey: webi18n.KeyMetaOnlineDescription,
			FeaturesTitleKey:   webi18n.KeyServiceDetailOnlineFeaturesTitle,
			SideTitleKey:       webi18n.KeyServiceDetailOnlineSideTitle,
			CtaTitleKey:        webi18n.KeyServiceDetailOnlineCtaTitle,
			CtaDescKey:         webi18n.KeyServiceDetailCtaDesc,
			Features: []Text{
				{KO: "고화질 화상 수업 (Zoom/Google Meet)", EN: "HD video lessons (Zoom/Google Meet)"},
				{KO: "실시간 음성 피드백", EN: "Real-time voice feedback"},
				{KO: "수업 녹화본 제공", EN: "Lesson recordings provided"},
				{KO: "해외 거주자도 수강 가능", EN: "Available for overseas residents"},
				{KO: "대면 수업과 동일한 커리큘럼", EN: "Same curriculum as in-person"},
			},
			Side: []Item{
				{Title: Text{KO: "안정적인 인터넷 연결", EN: "Stable internet connection"}},
				{Title: Text{KO: "웹캠 및 마이크", EN: "Webcam and microphone"}},
				{Title: Text{KO: "조용한 수업 환경", EN: "Quiet lesson environment"}},
				{Title: Text{KO: "이어폰 또는 헤드셋", EN: "Earphones or headset"}},
			},
		},
	},
	{
		Slug:    "group",
		Path:    routepath.ServicesGroup,
		NameKey: webi18n.KeyServiceGroup,
		DescKey: webi18n.KeyServiceGroupDesc,
		Highlights: []Text{
			{KO: "소규모 3-5명 구성", EN: "Small groups of 3-5"},
			{KO: "합리적인 수강료", EN: "Affordable tuition"},
			{KO: "함께 성장하는 분위기", EN: "Collaborative atmosphere"},
		},
		Target: Text{KO: "친구와 함께, 취미반", EN: "With friends, hobby class"},
		Detail: ServiceDetail{
			MetaTitleKey:       webi18n.KeyMetaGroupTitle,
			MetaDescriptionKey: webi18n.KeyMetaGroupDescription,
			FeaturesTitleKey:   webi18n.KeyServiceDetailGroupFeaturesTitle,
			SideTitleKey:       webi18n.KeyServiceDetailGroupSideTitle,
			CtaTitleKey:        webi18n.KeyServiceDetailGroupCtaTitle,
			CtaDescKey:         webi18n.KeyServiceDetailCtaDesc,
			Features: []Text{
				{KO: "소규모 3-5명 그룹 구성", EN: "Small groups of 3-5 people"},
				{KO: "합리적인 수강료", EN: "Affordable tuition"},
				{KO: "함께 성장하는 분위기", EN: "Collaborative learning atmosphere"},
				{KO: "하모니 및 합창 연습", EN: "Harmony and chorus practice"},
				{KO: "친구와 함께 신청 가능", EN: "Apply with friends"},
			},
			Side: []Item{
				{Title: Text{KO: "취미반", EN: "Hobby Class"}, Desc: Text{KO: "노래를 즐기고 싶은 분들을 위한 편안한 클래스", EN: "Relaxed class for those who want to enjoy singing"}},
				{Title: Text{KO: "실력 향상반", EN: "Skill Improvement"}, Desc: Text{KO: "기초부터 탄탄하게 실력을 쌓고 싶은 분들", EN: "For those who want to build solid fundamentals"}},
				{Title: Text{KO: "오디션 준비반", EN: "Audition Prep"}, Desc: Text{KO: "오디션을 준비하는 분들을 위한 집중 클래스", EN: "Intensive class for audition preparation"}},
			},
		},
	},
	{
		Slug:    "global",
		Path:    routepath.ServicesGlobal,
		NameKey: webi18n.KeyServiceGlobal,
		DescKey: webi18n.KeyServiceGlobalDesc,
		Highlights: []Text{
			{KO: "영어로 진행", EN: "Conducted in English"},
			{KO: "한국 K-POP 보컬 스타일", EN: "K-POP vocal style"},
			{KO: "문화적 맥락 이해", EN: "Cultural context understanding"},
		},
		Target: Text{KO: "외국인, 해외 거주자", EN: "Foreigners, overseas residents"},
		Detail: ServiceDetail{
			MetaTitleKey:       webi18n.KeyMetaGlobalTitle,
			MetaDescriptionKey: webi18n.KeyMetaGlobalDescription,
			FeaturesTitleKey:   webi18n.KeyServiceDetailGlobalFeaturesTitle,
			SideTitleKey:       webi18n.KeyServiceDetailGlobalSideTitle,
			CtaTitleKey:        webi18n.KeyServiceDetailGlobalCtaTitle,
			CtaDescKey:         webi18n.KeyServiceDetailGlobalCtaDesc,
			Features: []Text{
				{KO: "모든 수업 영어로 진행", EN: "All lessons conducted in English"},
				{KO: "K-POP 보컬 테크닉과 스타일", EN: "K-POP vocal techniques & style"},
				{KO: "한국 음악 문화 이해", EN: "Understanding Korean music culture"},
				{KO: "온라인 및 대면 수업 선택 가능", EN: "Online & in-person options"},
				{KO: "시차를 고려한 유연한 스케줄", EN: "Flexible scheduling for different time zones"},
			},
			Side: []Item{
				{Title: Text{KO: "한국 거주 외국인", EN: "Foreigners in Korea"}, Desc: Text{KO: "한국에 살면서 K-POP 보컬 테크닉을 배워보세요", EN: "Learn K-POP vocal techniques while living in Korea"}},
				{Title: Text{KO: "해외 K-POP 팬", EN: "K-POP Enthusiasts Abroad"}, Desc: Text{KO: "해외 K-POP 팬을 위한 온라인 레슨", EN: "Online lessons for international K-POP fans"}},
				{Title: Text{KO: "한국계 학습자", EN: "Korean Heritage Learners"}, Desc: Text{KO: "음악으로 한국 문화와 가까워지세요", EN: "Connect with Korean culture through music"}},
			},
		},
	},
	{
		Slug:    "kids",
		Path:    routepath.ServicesKids,
		NameKey: webi18n.KeyServiceKids,
		DescKey: webi18n.KeyServiceKidsDesc,
		Highlights: []Text{
			{KO: "가정 방문 수업", EN: "Home visit lessons"},
			{KO: "아이 눈높이 커리큘럼", EN: "Child-friendly curriculum"},
			{KO: "재미있는 음악 교육", EN: "Fun music education"},
		},
		Target: Text{KO: "5-13세 아동", EN: "Children aged 5-13"},
		Detail: ServiceDetail{
			MetaTitleKey:       webi18n.KeyMetaKidsTitle,
			MetaDescriptionKey: webi18n.KeyMetaKidsDescription,
			FeaturesTitleKey:   webi18n.KeyServiceDetailKidsFeaturesTitle,
			SideTitleKey:       webi18n.KeyServiceDetailKidsSideTitle,
			CtaTitleKey:        webi18n.KeyServiceDetailKidsCtaTitle,
			CtaDescKey:         webi18n.KeyServiceDetailCtaDesc,
			EyebrowKey:         webi18n.KeyServiceDetailKidsEyebrow,
			PriceKey:           webi18n.KeyServiceDetailKidsPrice,
			Kids:               true,
			Features: []Text{
				{KO: "정서 발달과 자신감 향상", EN: "Emotional development and confidence building"},
				{KO: "아이 눈높이에 맞춘 안정적인 수업 진행", EN: "Stable lessons tailored to children's level"},
				{KO: "집에서 받는 방문레슨으로 안전한 환경과 높은 집중도 향상", EN: "Safe environment and high focus with home visit lessons"},
				{KO: "대표가 직접 설계한 키즈 전용 커리큘럼", EN: "Kids-only curriculum designed by the director"},
			},
			Side: []Item{
				{Label: Text{KO: "8~10세", EN: "8-10 yrs"}, Title: Text{KO: "기초 보컬반", EN: "Basic Vocal Class"}, Desc: Text{KO: "기본 발성 / 음정을 위주로 즐겁게 시작해요!", EN: "Start with basic vocalization and pitch in a fun way!"}},
				{Label: Text{KO: "11~17세", EN: "11-17 yrs"}, Title: Text{KO: "주니어 보컬반", EN: "Junior Vocal Class"}, Desc: Text{KO: "본격적인 보컬 트레이닝을 시작으로 원하는 장르별로 진행합니다.", EN: "Begin serious vocal training with your preferred genre."}},
			},
		},
	},
}

// Services returns every lesson offering in display order.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// ServiceBySlug returns the offering with slug.
func ServiceBySlug(slug string) (Service, bool) {
	for _, service := range services {
		if service.Slug == slug {
			return service, true
		}
	}
	return Service{}, false
}
