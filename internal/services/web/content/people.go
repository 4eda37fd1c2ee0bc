package content

// Instructor is one member of the teaching staff.
type Instructor struct {
	Name        Text
	Role        Text
	Specialties []Text
	Experience  Text
}

// Instructors lists the teaching staff.
var Instructors = []Instructor{
	{
		Name: Text{KO: "비비안", EN: "Vivian"},
		Role: Text{KO: "대표 / 수석 보컬 트레이너", EN: "Founder / Head Vocal Trainer"},
		Specialties: []Text{
			{KO: "발성 교정", EN: "Vocal Correction"},
			{KO: "K-POP 보컬", EN: "K-POP Vocals"},
			{KO: "입시 보컬", EN: "Audition Prep"},
		},
		Experience: Text{KO: "10년+ 보컬 트레이닝 경력", EN: "10+ years vocal training experience"},
	},
	{
		Name: Text{KO: "수진", EN: "Sujin"},
		Role: Text{KO: "보컬 트레이너", EN: "Vocal Trainer"},
		Specialties: []Text{
			{KO: "팝 보컬", EN: "Pop Vocals"},
			{KO: "재즈 보컬", EN: "Jazz Vocals"},
			{KO: "음정 교정", EN: "Pitch Correction"},
		},
		Experience: Text{KO: "7년 보컬 트레이닝 경력", EN: "7 years vocal training experience"},
	},
	{
		Name: Text{KO: "민준", EN: "Minjun"},
		Role: Text{KO: "보컬 트레이너", EN: "Vocal Trainer"},
		Specialties: []Text{
			Same("R&B"),
			{KO: "소울", EN: "Soul"},
			{KO: "남성 보컬", EN: "Male Vocals"},
		},
		Experience: Text{KO: "5년 보컬 트레이닝 경력", EN: "5 years vocal training experience"},
	},
	{
		Name: Text{KO: "하늘", EN: "Haneul"},
		Role: Text{KO: "키즈 보컬 전문 트레이너", EN: "Kids Vocal Specialist"},
		Specialties: []Text{
			{KO: "아동 음악 교육", EN: "Children Music Education"},
			{KO: "동요", EN: "Nursery Songs"},
			{KO: "뮤지컬", EN: "Musical"},
		},
		Experience: Text{KO: "6년 아동 음악 교육 경력", EN: "6 years children music education"},
	},
}

// Review is one testimonial.
type Review struct {
	Name    Text
	Service string
	Body    Text
}

// HomeReviews are the short testimonials on the home page.
var HomeReviews = []Review{
	{
		Name:    Text{KO: "김서연", EN: "Seoyeon Kim"},
		Service: "private",
		Body: Text{
			KO: "3개월 동안 꾸준히 레슨을 받으면서 고음이 편해지고, 노래에 감정을 담는 법을 배웠어요. 선생님이 정말 체계적으로 가르쳐 주세요!",
			EN: "After 3 months of consistent lessons, high notes became easier and I learned how to put emotion into my singing. The teacher is very systematic!",
		},
	},
	{
		Name:    Text{KO: "이준호", EN: "Junho Lee"},
		Service: "online",
		Body: Text{
			KO: "해외에서 온라인으로 수업 받고 있는데, 대면 못지않게 꼼꼼한 피드백을 받을 수 있어서 만족해요.",
			EN: "Taking online classes from abroad, and I'm satisfied with the detailed feedback that rivals in-person lessons.",
		},
	},
	{
		Name:    Text{KO: "박지민 (학부모)", EN: "Jimin Park (Parent)"},
		Service: "kids",
		Body: Text{
			KO: "아이가 방문 수업을 너무 좋아해요! 집에서 편하게 배울 수 있어서 부모로서도 만족스럽습니다.",
			EN: "My child loves the home visit lessons! As a parent, I'm satisfied that they can learn comfortably at home.",
		},
	},
}

// Reviews are the testimonials on the reviews page, published as written.
var Reviews = []Review{
	{
		Name: Same("이**"),
		Body: Same("지인 축가를 앞두고 여러 선생님들을 찾아본 결과 너무 좋았습니다. 개인 음역과 발성, 습관 그리고 연습을 어떻게 해야할지 잘 집어주어서 당장 노래가 밋밋하지 않게 되는 변화를 수업중에 체감할 수 있었습니다. 아주 만족입니다!"),
	},
	{
		Name: Same("권**"),
		Body: Same("보컬레슨 처음 받았는데 생각보다 훨씬 체계적이였습니다. 문제점을 잘 짚어주시고 호흡, 발성, 공명 하나씩 교정해주셔서 감을 잡는데 좋았습니다. 특히 제 목소리에 맞는 발성을 알려주셔서 좋았고 수업 분위기도 편해서 긴장 안하고 자연스럽게 노래를 부를 수 있었습니다. 앞으로 얼마나 달라질지 기대됩니다."),
	},
	{
		Name: Same("C*****"),
		Body: Same("I was so nervous to start vocal lessons but I wanted a new hobby and to push myself out of my comfort zone. It was one of the best decisions I made Mona made me feel so comfortable and explained everything in an easy to understand way with no judgement. I can already feel a difference and feel like I'm learning so much, I can't wait to continue and keep growing. I would recommend anyone who's thinking about it to just do it you will definitely enjoy it."),
	},
	{
		Name: Same("박**"),
		Body: Same("저희 아이가 미국에서 줌레슨으로 보컬레슨을 받고 있습니다. 시간대도 잘 맞춰주시고, 줌레슨이어도 꼼꼼하게 잘 봐주셔서 아이가 프로패셔널하게 느껴서 만족입니다. 이제 아이돌 오디션을 앞두고 있는데 좋은 결과가 있기를 기대합니다."),
	},
	{
		Name: Same("엄**"),
		Body: Same("하는 일 특성상 노래 부를 일이 많습니다. 위축되고 자신감을 잃어가고 있는 중에 선생님을 만났습니다. 시원 시원하게 잘 가르쳐주시고 낯가리는 성격임에도 수업 중에 너무 즐겁고 유쾌합니다. 한시간이 너무 빨리 지나가는 것 같습니다. 앞으로의 수업들도 기대가 됩니다."),
	},
}

// FAQ is one frequently asked question.
type FAQ struct {
	Question Text
	Answer   Text
}

// FAQs are shown on the contact page.
var FAQs = []FAQ{
	{
		Question: Text{KO: "레슨은 어떻게 예약하나요?", EN: "How do I book a lesson?"},
		Answer:   Text{KO: "카카오톡 채널로 문의해 주시면 상담 후 레슨 일정을 조율해 드립니다.", EN: "Contact us via KakaoTalk channel, and we'll arrange your lesson schedule after consultation."},
	},
	{
		Question: Text{KO: "완전 초보자도 수강할 수 있나요?", EN: "Can complete beginners take lessons?"},
		Answer:   Text{KO: "물론입니다! FVM은 초보자부터 전문가까지 모든 레벨에 맞춤형 커리큘럼을 제공합니다.", EN: "Absolutely! FVM provides customized curriculum for all levels, from beginners to professionals."},
	},
	{
		Question: Text{KO: "레슨 비용은 얼마인가요?", EN: "How much do lessons cost?"},
		Answer:   Text{KO: "레슨 종류와 패키지에 따라 다양한 옵션이 있습니다. 카카오톡으로 문의해 주시면 상세히 안내해 드립니다.", EN: "We have various options depending on lesson type and package. Contact us via KakaoTalk for details."},
	},
	{
		Question: Text{KO: "온라인 레슨은 어떻게 진행되나요?", EN: "How are online lessons conducted?"},
		Answer:   Text{KO: "Zoom 또는 Google Meet을 통해 실시간으로 진행됩니다. 수업 녹화본도 제공해 드려서 복습이 가능합니다.", EN: "Lessons are conducted in real-time via Zoom or Google Meet. We also provide lesson recordings for review."},
	},
	{
		Question: Text{KO: "키즈 보컬은 몇 살부터 가능한가요?", EN: "What age can children start Kids Vocal?"},
		Answer:   Text{KO: "만 5세부터 수강 가능합니다. 연령대에 맞는 맞춤 커리큘럼으로 즐겁게 음악을 배울 수 있어요.", EN: "Children from age 5 can start. They can enjoy learning music with age-appropriate curriculum."},
	},
}
