package i18n

// Key identifies one translatable message in the site catalogs.
type Key string

const (
	// core
	KeyHeaderTagline      Key = "header.tagline"
	KeyNavHome            Key = "nav.home"
	KeyNavServices        Key = "nav.services"
	KeyNavCurriculum      Key = "nav.curriculum"
	KeyNavInstructors     Key = "nav.instructors"
	KeyNavReviews         Key = "nav.reviews"
	KeyNavBlog            Key = "nav.blog"
	KeyNavContact         Key = "nav.contact"
	KeyNavMenu            Key = "nav.menu"
	KeyLangToggle         Key = "lang.toggle"
	KeyLangSwitch         Key = "lang.switch"
	KeyServicePrivate     Key = "service.private"
	KeyServiceOnline      Key = "service.online"
	KeyServiceGroup       Key = "service.group"
	KeyServiceGlobal      Key = "service.global"
	KeyServiceKids        Key = "service.kids"
	KeyServicePrivateDesc Key = "service.private.desc"
	KeyServiceOnlineDesc  Key = "service.online.desc"
	KeyServiceGroupDesc   Key = "service.group.desc"
	KeyServiceGlobalDesc  Key = "service.global.desc"
	KeyServiceKidsDesc    Key = "service.kids.desc"
	KeyServicesViewAll    Key = "services.viewAll"
	KeyServicesLearnMore  Key = "services.learnMore"
	KeyCtaKakao           Key = "cta.kakao"
	KeyCtaConsult         Key = "cta.consult"
	KeyFooterBrand        Key = "footer.brand"
	KeyFooterDescription  Key = "footer.description"
	KeyFooterQuickLinks   Key = "footer.quickLinks"
	KeyFooterServices     Key = "footer.services"
	KeyFooterContact      Key = "footer.contact"
	KeyFooterKakaoTalk    Key = "footer.kakaoTalk"
	KeyFooterCopyright    Key = "footer.copyright"
	KeyCommonViewMore     Key = "common.viewMore"
	KeyCommonGoBack       Key = "common.goBack"

	// home
	KeyHeroTitle                  Key = "hero.title"
	KeyHeroSubtitle               Key = "hero.subtitle"
	KeyHeroDescription            Key = "hero.description"
	KeyHeroCta                    Key = "hero.cta"
	KeyPhilosophyTitle            Key = "philosophy.title"
	KeyPhilosophyCurriculumTitle  Key = "philosophy.curriculum.title"
	KeyPhilosophyCurriculumDesc   Key = "philosophy.curriculum.desc"
	KeyPhilosophyInstructorsTitle Key = "philosophy.instructors.title"
	KeyPhilosophyInstructorsDesc  Key = "philosophy.instructors.desc"
	KeyPhilosophySystemTitle      Key = "philosophy.system.title"
	KeyPhilosophySystemDesc       Key = "philosophy.system.desc"
	KeyHomeCtaTitle               Key = "home.cta.title"
	KeyHomeCtaDesc                Key = "home.cta.desc"

	// services
	KeyServicesTitle                     Key = "services.title"
	KeyServicesSubtitle                  Key = "services.subtitle"
	KeyServicesTarget                    Key = "services.target"
	KeyServicesCtaTitle                  Key = "services.cta.title"
	KeyServicesCtaDesc                   Key = "services.cta.desc"
	KeyServiceDetailCtaDesc              Key = "serviceDetail.ctaDesc"
	KeyServiceDetailPrivateFeaturesTitle Key = "serviceDetail.private.featuresTitle"
	KeyServiceDetailPrivateSideTitle     Key = "serviceDetail.private.sideTitle"
	KeyServiceDetailPrivateCtaTitle      Key = "serviceDetail.private.ctaTitle"
	KeyServiceDetailOnlineFeaturesTitle  Key = "serviceDetail.online.featuresTitle"
	KeyServiceDetailOnlineSideTitle      Key = "serviceDetail.online.sideTitle"
	KeyServiceDetailOnlineCtaTitle       Key = "serviceDetail.online.ctaTitle"
	KeyServiceDetailGroupFeaturesTitle   Key = "serviceDetail.group.featuresTitle"
	KeyServiceDetailGroupSideTitle       Key = "serviceDetail.group.sideTitle"
	KeyServiceDetailGroupCtaTitle        Key = "serviceDetail.group.ctaTitle"
	KeyServiceDetailGlobalFeaturesTitle  Key = "serviceDetail.global.featuresTitle"
	KeyServiceDetailGlobalSideTitle      Key = "serviceDetail.global.sideTitle"
	KeyServiceDetailGlobalCtaTitle       Key = "serviceDetail.global.ctaTitle"
	KeyServiceDetailGlobalCtaDesc        Key = "serviceDetail.global.ctaDesc"
	KeyServiceDetailKidsEyebrow          Key = "serviceDetail.kids.eyebrow"
	KeyServiceDetailKidsPrice            Key = "serviceDetail.kids.price"
	KeyServiceDetailKidsFeaturesTitle    Key = "serviceDetail.kids.featuresTitle"
	KeyServiceDetailKidsSideTitle        Key = "serviceDetail.kids.sideTitle"
	KeyServiceDetailKidsCtaTitle         Key = "serviceDetail.kids.ctaTitle"

	// curriculum
	KeyCurriculumEyebrow       Key = "curriculum.eyebrow"
	KeyCurriculumSubtitle      Key = "curriculum.subtitle"
	KeyCurriculumPhasesTitle   Key = "curriculum.phasesTitle"
	KeyCurriculumSystemEyebrow Key = "curriculum.systemEyebrow"
	KeyCurriculumSystemTitle   Key = "curriculum.systemTitle"
	KeyCurriculumCtaTitle      Key = "curriculum.cta.title"
	KeyCurriculumCtaDesc       Key = "curriculum.cta.desc"

	// instructors
	KeyInstructorsSubtitle      Key = "instructors.subtitle"
	KeyInstructorsSpecialties   Key = "instructors.specialties"
	KeyInstructorsTrainingTitle Key = "instructors.training.title"
	KeyInstructorsTrainingDesc  Key = "instructors.training.desc"

	// reviews
	KeyReviewsTitle              Key = "reviews.title"
	KeyReviewsSubtitle           Key = "reviews.subtitle"
	KeyReviewsEyebrow            Key = "reviews.eyebrow"
	KeyReviewsPageTitle          Key = "reviews.page.title"
	KeyReviewsPageSubtitle       Key = "reviews.page.subtitle"
	KeyReviewsGalleryEyebrow     Key = "reviews.gallery.eyebrow"
	KeyReviewsGalleryTitle       Key = "reviews.gallery.title"
	KeyReviewsGalleryPlaceholder Key = "reviews.gallery.placeholder"
	KeyReviewsCtaTitle           Key = "reviews.cta.title"
	KeyReviewsCtaDesc            Key = "reviews.cta.desc"

	// blog
	KeyBlogSubtitle   Key = "blog.subtitle"
	KeyBlogCount      Key = "blog.count"
	KeyBlogBackToList Key = "blog.backToList"
	KeyBlogCtaTitle   Key = "blog.cta.title"
	KeyBlogCtaDesc    Key = "blog.cta.desc"

	// contact
	KeyContactSubtitle    Key = "contact.subtitle"
	KeyContactKakaoTitle  Key = "contact.kakao.title"
	KeyContactKakaoDesc   Key = "contact.kakao.desc"
	KeyContactKakaoButton Key = "contact.kakao.button"
	KeyContactFaqTitle    Key = "contact.faq.title"

	// error
	KeyNotFoundCode  Key = "notFound.code"
	KeyNotFoundTitle Key = "notFound.title"
	KeyNotFoundDesc  Key = "notFound.desc"
	KeyNotFoundHome  Key = "notFound.home"

	// meta
	KeyMetaHomeTitle              Key = "meta.home.title"
	KeyMetaHomeDescription        Key = "meta.home.description"
	KeyMetaServicesTitle          Key = "meta.services.title"
	KeyMetaServicesDescription    Key = "meta.services.description"
	KeyMetaPrivateTitle           Key = "meta.private.title"
	KeyMetaPrivateDescription     Key = "meta.private.description"
	KeyMetaOnlineTitle            Key = "meta.online.title"
	KeyMetaOnlineDescription      Key = "meta.online.description"
	KeyMetaGroupTitle             Key = "meta.group.title"
	KeyMetaGroupDescription       Key = "meta.group.description"
	KeyMetaGlobalTitle            Key = "meta.global.title"
	KeyMetaGlobalDescription      Key = "meta.global.description"
	KeyMetaKidsTitle              Key = "meta.kids.title"
	KeyMetaKidsDescription        Key = "meta.kids.description"
	KeyMetaCurriculumTitle        Key = "meta.curriculum.title"
	KeyMetaCurriculumDescription  Key = "meta.curriculum.description"
	KeyMetaInstructorsTitle       Key = "meta.instructors.title"
	KeyMetaInstructorsDescription Key = "meta.instructors.description"
	KeyMetaReviewsTitle           Key = "meta.reviews.title"
	KeyMetaReviewsDescription     Key = "meta.reviews.description"
	KeyMetaBlogTitle              Key = "meta.blog.title"
	KeyMetaBlogDescription        Key = "meta.blog.description"
	KeyMetaContactTitle           Key = "meta.contact.title"
	KeyMetaContactDescription     Key = "meta.contact.description"
	KeyMetaNotFoundTitle          Key = "meta.notFound.title"
	KeyMetaNotFoundDescription    Key = "meta.notFound.description"
)

var allKeys = []Key{
	KeyHeaderTagline,
	KeyNavHome,
	KeyNavServices,
	KeyNavCurriculum,
	KeyNavInstructors,
	KeyNavReviews,
	KeyNavBlog,
	KeyNavContact,
	KeyNavMenu,
	KeyLangToggle,
	KeyLangSwitch,
	KeyServicePrivate,
	KeyServiceOnline,
	KeyServiceGroup,
	KeyServiceGlobal,
	KeyServiceKids,
	KeyServicePrivateDesc,
	KeyServiceOnlineDesc,
	KeyServiceGroupDesc,
	KeyServiceGlobalDesc,
	KeyServiceKidsDesc,
	KeyServicesViewAll,
	KeyServicesLearnMore,
	KeyCtaKakao,
	KeyCtaConsult,
	KeyFooterBrand,
	KeyFooterDescription,
	KeyFooterQuickLinks,
	KeyFooterServices,
	KeyFooterContact,
	KeyFooterKakaoTalk,
	KeyFooterCopyright,
	KeyCommonViewMore,
	KeyCommonGoBack,
	KeyHeroTitle,
	KeyHeroSubtitle,
	KeyHeroDescription,
	KeyHeroCta,
	KeyPhilosophyTitle,
	KeyPhilosophyCurriculumTitle,
	KeyPhilosophyCurriculumDesc,
	KeyPhilosophyInstructorsTitle,
	KeyPhilosophyInstructorsDesc,
	KeyPhilosophySystemTitle,
	KeyPhilosophySystemDesc,
	KeyHomeCtaTitle,
	KeyHomeCtaDesc,
	KeyServicesTitle,
	KeyServicesSubtitle,
	KeyServicesTarget,
	KeyServicesCtaTitle,
	KeyServicesCtaDesc,
	KeyServiceDetailCtaDesc,
	KeyServiceDetailPrivateFeaturesTitle,
	KeyServiceDetailPrivateSideTitle,
	KeyServiceDetailPrivateCtaTitle,
	KeyServiceDetailOnlineFeaturesTitle,
	KeyServiceDetailOnlineSideTitle,
	KeyServiceDetailOnlineCtaTitle,
	KeyServiceDetailGroupFeaturesTitle,
	KeyServiceDetailGroupSideTitle,
	KeyServiceDetailGroupCtaTitle,
	KeyServiceDetailGlobalFeaturesTitle,
	KeyServiceDetailGlobalSideTitle,
	KeyServiceDetailGlobalCtaTitle,
	KeyServiceDetailGlobalCtaDesc,
	KeyServiceDetailKidsEyebrow,
	KeyServiceDetailKidsPrice,
	KeyServiceDetailKidsFeaturesTitle,
	KeyServiceDetailKidsSideTitle,
	KeyServiceDetailKidsCtaTitle,
	KeyCurriculumEyebrow,
	KeyCurriculumSubtitle,
	KeyCurriculumPhasesTitle,
	KeyCurriculumSystemEyebrow,
	KeyCurriculumSystemTitle,
	KeyCurriculumCtaTitle,
	KeyCurriculumCtaDesc,
	KeyInstructorsSubtitle,
	KeyInstructorsSpecialties,
	KeyInstructorsTrainingTitle,
	KeyInstructorsTrainingDesc,
	KeyReviewsTitle,
	KeyReviewsSubtitle,
	KeyReviewsEyebrow,
	KeyReviewsPageTitle,
	KeyReviewsPageSubtitle,
	KeyReviewsGalleryEyebrow,
	KeyReviewsGalleryTitle,
	KeyReviewsGalleryPlaceholder,
	KeyReviewsCtaTitle,
	KeyReviewsCtaDesc,
	KeyBlogSubtitle,
	KeyBlogCount,
	KeyBlogBackToList,
	KeyBlogCtaTitle,
	KeyBlogCtaDesc,
	KeyContactSubtitle,
	KeyContactKakaoTitle,
	KeyContactKakaoDesc,
	KeyContactKakaoButton,
	KeyContactFaqTitle,
	KeyNotFoundCode,
	KeyNotFoundTitle,
	KeyNotFoundDesc,
	KeyNotFoundHome,
	KeyMetaHomeTitle,
	KeyMetaHomeDescription,
	KeyMetaServicesTitle,
	KeyMetaServicesDescription,
	KeyMetaPrivateTitle,
	KeyMetaPrivateDescription,
	KeyMetaOnlineTitle,
	KeyMetaOnlineDescription,
	KeyMetaGroupTitle,
	KeyMetaGroupDescription,
	KeyMetaGlobalTitle,
	KeyMetaGlobalDescription,
	KeyMetaKidsTitle,
	KeyMetaKidsDescription,
	KeyMetaCurriculumTitle,
	KeyMetaCurriculumDescription,
	KeyMetaInstructorsTitle,
	KeyMetaInstructorsDescription,
	KeyMetaReviewsTitle,
	KeyMetaReviewsDescription,
	KeyMetaBlogTitle,
	KeyMetaBlogDescription,
	KeyMetaContactTitle,
	KeyMetaContactDescription,
	KeyMetaNotFoundTitle,
	KeyMetaNotFoundDescription,
}

// AllKeys returns every key the site references, in catalog order.
func AllKeys() []Key {
	out := make([]Key, len(allKeys))
	copy(out, allKeys)
	return out
}

// String returns the catalog key.
func (k Key) String() string {
	return string(k)
}
