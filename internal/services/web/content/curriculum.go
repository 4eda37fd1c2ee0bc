package content

// Phases are the curriculum steps in order.
var Phases = []Item{
	{Label: Same("01"), Title: Text{KO: "기초 발성", EN: "Basic Vocalization"}, Desc: Text{KO: "호흡, 발성, 발음, 공명 등의 기본기를 다집니다.", EN: "Build fundamentals of breathing, vocalization, pronunciation, and resonance."}},
	{Label: Same("02"), Title: Text{KO: "음정과 리듬", EN: "Pitch & Rhythm"}, Desc: Text{KO: "정확한 음정과 리듬 감각을 훈련합니다.", EN: "Train accurate pitch and rhythm sense."}},
	{Label: Same("03"), Title: Text{KO: "테크닉", EN: "Techniques"}, Desc: Text{KO: "비브라토, 믹스보이스, 멜리즈마 등 다양한 테크닉 훈련을 진행합니다.", EN: "Practice various techniques like vibrato, mix voice, and melisma."}},
	{Label: Same("04"), Title: Text{KO: "감정표현 및 실전", EN: "Expression & Performance"}, Desc: Text{KO: "노래에 표현되는 감정과 스토리를 담는 법을 익힙니다.", EN: "Learn to convey emotion and story through singing."}},
}

// SystemFeatures describe how lessons are run.
var SystemFeatures = []Item{
	{Title: Text{KO: "맞춤형 커리큘럼", EN: "Custom Curriculum"}, Desc: Text{KO: "각자의 목소리와 방향에 맞춘 개인별 레슨 설계", EN: "Personalized lesson design tailored to your voice and goals"}},
	{Title: Text{KO: "대표 설계 프로그램", EN: "Expert-Designed Program"}, Desc: Text{KO: "현장 경험을 기반으로 검증된 레슨 시스템", EN: "Proven lesson system based on real-world experience"}},
	{Title: Text{KO: "트레이닝된 강사진", EN: "Trained Instructors"}, Desc: Text{KO: "대표 트레이닝을 거친 일관된 퀄리티의 강사진", EN: "Consistent quality instructors trained by our founder"}},
	{Title: Text{KO: "체계적인 운영 시스템", EN: "Systematic Operations"}, Desc: Text{KO: "수업에만 집중할 수 있도록 설계된 관리 시스템", EN: "Management system designed for focused learning"}},
}
