package catalog

import (
	"github.com/matjar-app/matjar/internal/section"
	"github.com/matjar-app/matjar/internal/theme"
)

// Template is a curated storefront preset: a theme plus an ordered
// section layout for a given store type.
type Template struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	NameEn      string           `json:"name_en"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Thumbnail   string           `json:"thumbnail"`
	StoreType   string           `json:"store_type"`
	Features    []string         `json:"features"`
	Theme       theme.Theme      `json:"theme"`
	Sections    []section.Config `json:"sections"`
}

var storeTemplates = []Template{
	{
		ID:          "fashion-luxury",
		Name:        "أناقَة",
		NameEn:      "Elegance",
		Category:    "أزياء",
		Description: "قالب فاخر للمتاجر الراقية — تصميم ملكي مع ألوان ذهبية وخلفية داكنة أنيقة",
		Thumbnail:   "linear-gradient(135deg, #1a0a2e 0%, #2d1b69 30%, #d4af37 100%)",
		StoreType:   "fashion",
		Features:    []string{"عرض منتجات شبكي فاخر", "فلتر ألوان/مقاسات", "عربة تسوق ذكية", "معرض صور 360°"},
		Theme: theme.Theme{
			Primary: "#d4af37", PrimaryDark: "#b8960c", Accent: "#e8c547",
			Background: "#fafaf8", Surface: "#f5f3ef", SurfaceAlt: "#ece8e0",
			Text: "#1a1a2e", TextSecondary: "#6b6b7b", CardBackground: "#ffffff",
			BorderColor: "#e0ddd5", FontFamily: "Tajawal", Radius: "16px",
			HeroGradient: "linear-gradient(135deg, #1a0a2e 0%, #2d1b69 50%, #0f0520 100%)",
			Style:        theme.StyleLuxury,
		},
		Sections: []section.Config{
			{ID: "s1", Type: section.TypeNavbar, Props: map[string]any{"links": []string{"الرئيسية", "مجموعات", "جديدنا", "العروض", "الدار"}}},
			{ID: "s2", Type: section.TypeHero, Props: map[string]any{"title": "أناقة تتجاوز الزمن", "subtitle": "مجموعة حصرية من أرقى الأزياء العالمية — تصاميم فاخرة تليق بذوقك الرفيع", "badge": "✨ مجموعة ربيع 2026", "cta": "تسوق المجموعة", "cta2": "شاهد الكتالوج", "height": "560px"}},
			{ID: "s3", Type: section.TypeTrustBadges},
			{ID: "s4", Type: section.TypeCategories, Props: map[string]any{"title": "تسوق حسب القسم", "subtitle": "اختر من مجموعاتنا المتنوعة"}},
			{ID: "s5", Type: section.TypeProducts, Props: map[string]any{"title": "أحدث الوصولات", "subtitle": "تشكيلة حصرية مختارة بعناية فائقة", "count": 8}},
			{ID: "s6", Type: section.TypeProductsFeatured, Props: map[string]any{"title": "قطعة الموسم", "subtitle": "اختيارنا الأول لهذا الموسم"}},
			{ID: "s7", Type: section.TypeOffers},
			{ID: "s8", Type: section.TypeTestimonials},
			{ID: "s9", Type: section.TypeNewsletter, Props: map[string]any{"title": "انضم لعالم الأناقة", "subtitle": "اشترك واحصل على عروض حصرية وكود خصم 15%"}},
			{ID: "s10", Type: section.TypeFooter},
		},
	},
	{
		ID:          "electronics-modern",
		Name:        "تِك ماكس",
		NameEn:      "TechMax",
		Category:    "إلكترونيات",
		Description: "قالب عصري للأجهزة والإلكترونيات — تصميم نظيف داكن مع تدرجات سيان",
		Thumbnail:   "linear-gradient(135deg, #0c0c1d 0%, #1e3a5f 50%, #00cec9 100%)",
		StoreType:   "electronics",
		Features:    []string{"مقارنة منتجات", "مواصفات تقنية مفصلة", "تقييمات مع صور", "فلتر ذكي"},
		Theme: theme.Theme{
			Primary: "#00cec9", PrimaryDark: "#00a8a3", Accent: "#0984e3",
			Background: "#f4f7fa", Surface: "#edf1f7", SurfaceAlt: "#e2e8f0",
			Text: "#0c0c1d", TextSecondary: "#5a6a7a", CardBackground: "#ffffff",
			BorderColor: "#dde3ed", FontFamily: "Tajawal", Radius: "14px",
			HeroGradient: "linear-gradient(135deg, #0c0c1d 0%, #1e3a5f 50%, #0a1628 100%)",
			Style:        theme.StyleModern,
		},
		Sections: []section.Config{
			{ID: "s1", Type: section.TypeNavbar, Props: map[string]any{"links": []string{"الرئيسية", "هواتف", "لابتوبات", "إكسسوارات", "العروض", "الدعم"}}},
			{ID: "s2", Type: section.TypeHero, Props: map[string]any{"title": "أحدث التقنيات في مكان واحد", "subtitle": "اكتشف عالم الإلكترونيات مع أقوى العروض — أجهزة أصلية بضمان حقيقي وتوصيل سريع", "badge": "🚀 آيفون 16 برو — متوفر الآن", "cta": "تسوق الآن", "cta2": "قارن الأسعار", "height": "520px"}},
			{ID: "s3", Type: section.TypeBanner, Props: map[string]any{"text": "🔥 خصم 500 ر.س على الماك بوك — استخدم كود: TECH500", "emoji": "💻"}},
			{ID: "s4", Type: section.TypeCategories},
			{ID: "s5", Type: section.TypeProducts, Props: map[string]any{"count": 8}},
			{ID: "s6", Type: section.TypeFeatures},
			{ID: "s7", Type: section.TypeCountdown, Props: map[string]any{"title": "تخفيضات التقنية الكبرى", "subtitle": "خصومات تصل حتى 40% على أقوى الأجهزة"}},
			{ID: "s8", Type: section.TypeStats},
			{ID: "s9", Type: section.TypeTestimonials},
			{ID: "s10", Type: section.TypeBrands, Props: map[string]any{"brands": []string{"Apple", "Samsung", "Sony", "Dell", "HP", "Lenovo", "Logitech", "JBL"}}},
			{ID: "s11", Type: section.TypeFAQ},
			{ID: "s12", Type: section.TypeNewsletter},
			{ID: "s13", Type: section.TypeFooter},
		},
	},
	{
		ID:          "beauty-glow",
		Name:        "بيوتي جلو",
		NameEn:      "BeautyGlow",
		Category:    "تجميل",
		Description: "قالب أنيق لمتاجر العطور والتجميل — ألوان وردية ناعمة وتصميم عصري",
		Thumbnail:   "linear-gradient(135deg, #2d1f3d 0%, #1a1a2e 40%, #e84393 100%)",
		StoreType:   "beauty",
		Features:    []string{"عرض 360°", "نصائح جمال", "برنامج ولاء", "عينات مجانية"},
		Theme: theme.Theme{
			Primary: "#e84393", PrimaryDark: "#c0287a", Accent: "#fd79a8",
			Background: "#fef7fa", Surface: "#fdf0f5", SurfaceAlt: "#fbe4ed",
			Text: "#2d1f3d", TextSecondary: "#7a6187", CardBackground: "#ffffff",
			BorderColor: "#f0dce5", FontFamily: "Tajawal", Radius: "20px",
			HeroGradient: "linear-gradient(135deg, #2d1f3d 0%, #6c2c6e 50%, #e84393 100%)",
			Style:        theme.StyleModern,
		},
		Sections: []section.Config{
			{ID: "s1", Type: section.TypeNavbar, Props: map[string]any{"links": []string{"الرئيسية", "العطور", "المكياج", "العناية", "العروض"}, "cta": "اطلبي الآن"}},
			{ID: "s2", Type: section.TypeHero, Props: map[string]any{"title": "جمالك يبدأ من هنا", "subtitle": "أفخم العطور ومنتجات التجميل العالمية — مكونات طبيعية وجودة فائقة لتتألقي كل يوم", "badge": "🌸 وصلت مجموعة الربيع — عينات مجانية", "cta": "تسوقي الآن", "cta2": "اكتشفي العطور", "height": "520px"}},
			{ID: "s3", Type: section.TypeTrustBadges},
			{ID: "s4", Type: section.TypeCategories},
			{ID: "s5", Type: section.TypeProductsFeatured, Props: map[string]any{"title": "⭐ منتج الشهر", "subtitle": "اختيار خبيرات التجميل"}},
			{ID: "s6", Type: section.TypeProducts, Props: map[string]any{"title": "الأكثر مبيعاً", "subtitle": "المنتجات المفضلة لعملائنا", "count": 8}},
			{ID: "s7", Type: section.TypeFeatures},
			{ID: "s8", Type: section.TypeGallery, Props: map[string]any{"title": "📸 أجواء بيوتي جلو", "subtitle": "لمحات من عالم الجمال"}},
			{ID: "s9", Type: section.TypeTestimonials},
			{ID: "s10", Type: section.TypeNewsletter, Props: map[string]any{"title": "💌 نصائح جمال مجانية", "subtitle": "اشتركي واحصلي على كود خصم 10% + نصائح أسبوعية"}},
			{ID: "s11", Type: section.TypeFooter},
		},
	},
	{
		ID:          "food-gourmet",
		Name:        "ذَواقة",
		NameEn:      "Gourmet",
		Category:    "أغذية",
		Description: "قالب دافئ لمتاجر الأغذية والمطاعم — ألوان طبيعية دفيئة وتصميم شهي",
		Thumbnail:   "linear-gradient(135deg, #1a1209 0%, #2d1f0e 50%, #e17055 100%)",
		StoreType:   "food",
		Features:    []string{"قائمة طعام تفاعلية", "طلب أونلاين", "توصيل ≤30 دقيقة", "تتبع الطلب"},
		Theme: theme.Theme{
			Primary: "#e17055", PrimaryDark: "#c0503a", Accent: "#fdcb6e",
			Background: "#fdfaf6", Surface: "#f9f3eb", SurfaceAlt: "#f0e8dd",
			Text: "#2c1a0e", TextSecondary: "#7a6554", CardBackground: "#ffffff",
			BorderColor: "#e8ddd0", FontFamily: "Tajawal", Radius: "16px",
			HeroGradient: "linear-gradient(135deg, #2c1a0e 0%, #5a3520 50%, #e17055 100%)",
			Style:        theme.StyleClassic,
		},
		Sections: []section.Config{
			{ID: "s1", Type: section.TypeNavbar, Props: map[string]any{"links": []string{"الرئيسية", "القائمة", "عن المطعم", "العروض", "اتصل بنا"}, "cta": "اطلب الآن"}},
			{ID: "s2", Type: section.TypeHero, Props: map[string]any{"title": "نكهات تأسر الحواس", "subtitle": "أشهى المأكولات من أيدي أمهر الطهاة — مكونات طازجة يومياً وتوصيل سريع لبابك", "badge": "🍔 عرض اليوم — وجبة عائلية بـ 99 ر.س فقط", "cta": "اطلب الآن", "cta2": "تصفح القائمة", "height": "500px"}},
			{ID: "s3", Type: section.TypeBanner, Props: map[string]any{"text": "🎉 توصيل مجاني لأول طلب — استخدم كود: FIRST", "emoji": "🚚"}},
			{ID: "s4", Type: section.TypeCategories, Props: map[string]any{"title": "قائمتنا", "subtitle": "اختر من أقسامنا المتنوعة"}},
			{ID: "s5", Type: section.TypeProducts, Props: map[string]any{"title": "الأكثر طلباً", "subtitle": "وجبات يعشقها عملاؤنا", "count": 8}},
			{ID: "s6", Type: section.TypeFeatures},
			{ID: "s7", Type: section.TypeOffers, Props: map[string]any{"title": "🔥 عروض اليوم", "subtitle": "خصومات حصرية لفترة محدودة"}},
			{ID: "s8", Type: section.TypeTestimonials},
			{ID: "s9", Type: section.TypeContact, Props: map[string]any{"title": "موقعنا وتواصل", "subtitle": "نسعد بزيارتكم أو تواصلكم"}},
			{ID: "s10", Type: section.TypeFooter},
		},
	},
	{
		ID:          "simple-shop",
		Name:        "سِمبل شوب",
		NameEn:      "SimpleShop",
		Category:    "عام",
		Description: "قالب بسيط ونظيف يناسب أي نوع متجر — مثالي للمبتدئين، سهل التخصيص",
		Thumbnail:   "linear-gradient(135deg, #0a0a1a 0%, #1a1a2e 50%, #6c5ce7 100%)",
		StoreType:   "general",
		Features:    []string{"سهل التخصيص", "سريع التحميل", "متوافق مع الجوال", "SEO محسّن"},
		Theme: theme.Theme{
			Primary: "#6c5ce7", PrimaryDark: "#4834d4", Accent: "#a29bfe",
			Background: "#f8f9fc", Surface: "#f0f2f8", SurfaceAlt: "#e6e9f2",
			Text: "#1a1a2e", TextSecondary: "#6b6b8a", CardBackground: "#ffffff",
			BorderColor: "#dfe2ec", FontFamily: "Tajawal", Radius: "14px",
			HeroGradient: "linear-gradient(135deg, #1a1a2e 0%, #2d2b55 50%, #6c5ce7 100%)",
			Style:        theme.StyleMinimal,
		},
		Sections: []section.Config{
			{ID: "s1", Type: section.TypeNavbar},
			{ID: "s2", Type: section.TypeHero, Props: map[string]any{"title": "مرحباً بكم في متجرنا", "subtitle": "أفضل المنتجات بأفضل الأسعار — تسوق بثقة واستمتع بتجربة شراء سلسة وسهلة", "height": "480px"}},
			{ID: "s3", Type: section.TypeTrustBadges},
			{ID: "s4", Type: section.TypeProducts, Props: map[string]any{"count": 8}},
			{ID: "s5", Type: section.TypeFeatures},
			{ID: "s6", Type: section.TypeStats},
			{ID: "s7", Type: section.TypeTestimonials},
			{ID: "s8", Type: section.TypeFAQ},
			{ID: "s9", Type: section.TypeNewsletter},
			{ID: "s10", Type: section.TypeFooter},
		},
	},
	{
		ID:          "jewelry-royal",
		Name:        "جواهر روايال",
		NameEn:      "Royal Jewels",
		Category:    "مجوهرات",
		Description: "قالب فاخر للمجوهرات والساعات — لمسة ملكية ذهبية مع خلفية سوداء",
		Thumbnail:   "linear-gradient(135deg, #0a0510 0%, #1a0a2e 40%, #ffd700 100%)",
		StoreType:   "jewelry",
		Features:    []string{"عرض 3D", "شهادات أصالة", "تغليف فاخر", "دفع آمن"},
		Theme: theme.Theme{
			Primary: "#ffd700", PrimaryDark: "#b8960c", Accent: "#c9a227",
			Background: "#0a0510", Surface: "#12081c", SurfaceAlt: "#1c0f2e",
			Text: "#f0e8d8", TextSecondary: "#a09880", CardBackground: "#16102a",
			BorderColor: "#2a1f42", FontFamily: "Tajawal", Radius: "16px",
			HeroGradient: "linear-gradient(135deg, #0a0510 0%, #1a0a2e 50%, #2d1b45 100%)",
			Style:        theme.StyleLuxury,
		},
		Sections: []section.Config{
			{ID: "s1", Type: section.TypeNavbar, Props: map[string]any{"links": []string{"الرئيسية", "المجوهرات", "الساعات", "الهدايا", "عن الدار"}}},
			{ID: "s2", Type: section.TypeHero, Props: map[string]any{"title": "روعة تليق بك", "subtitle": "مجوهرات استثنائية تحكي قصص الأناقة والتميز — كل قطعة تحفة فنية فريدة من نوعها", "badge": "💎 مجموعة حصرية — إصدار محدود 2026", "cta": "اكتشف المجموعة", "cta2": "شاهد الكتالوج", "height": "560px"}},
			{ID: "s3", Type: section.TypeCategories, Props: map[string]any{"title": "مجموعاتنا", "subtitle": "كل قطعة تحفة فنية فريدة"}},
			{ID: "s4", Type: section.TypeProductsFeatured, Props: map[string]any{"title": "💎 قطعة الموسم", "subtitle": "اختيار خبراء المجوهرات"}},
			{ID: "s5", Type: section.TypeProducts, Props: map[string]any{"title": "أحدث الإصدارات", "subtitle": "تشكيلة حصرية من أرقى المجوهرات", "count": 8}},
			{ID: "s6", Type: section.TypeFeatures},
			{ID: "s7", Type: section.TypeTestimonials},
			{ID: "s8", Type: section.TypeBrands, Props: map[string]any{"brands": []string{"Cartier", "Tiffany", "Bvlgari", "Van Cleef", "Chopard", "Rolex", "Piaget", "IWC"}, "title": "علاماتنا الفاخرة"}},
			{ID: "s9", Type: section.TypeCTA, Props: map[string]any{"title": "اكتشف أناقة لا تُضاهى", "subtitle": "زر أقرب فرع أو تسوق أونلاين — توصيل مؤمّن لباب بيتك", "cta": "تسوق الآن", "cta2": "فروعنا"}},
			{ID: "s10", Type: section.TypeFooter},
		},
	},
	{
		ID:          "sports-zone",
		Name:        "سبورتي",
		NameEn:      "Sporty",
		Category:    "رياضة",
		Description: "قالب حيوي للمتاجر الرياضية — تصميم ديناميكي بألوان خضراء نشيطة",
		Thumbnail:   "linear-gradient(135deg, #0d1117 0%, #1b4332 50%, #2ecc71 100%)",
		StoreType:   "sports",
		Features:    []string{"فلتر حسب الرياضة", "مقاسات دقيقة", "مقارنة منتجات", "تقييمات رياضيين"},
		Theme: theme.Theme{
			Primary: "#2ecc71", PrimaryDark: "#27ae60", Accent: "#00b894",
			Background: "#f4f9f6", Surface: "#ebf5f0", SurfaceAlt: "#d5ede2",
			Text: "#0d1117", TextSecondary: "#4a6a5a", CardBackground: "#ffffff",
			BorderColor: "#d0e4d8", FontFamily: "Tajawal", Radius: "14px",
			HeroGradient: "linear-gradient(135deg, #0d1117 0%, #1b4332 50%, #0d2818 100%)",
			Style:        theme.StyleBold,
		},
		Sections: []section.Config{
			{ID: "s1", Type: section.TypeNavbar, Props: map[string]any{"links": []string{"الرئيسية", "أحذية", "ملابس", "معدات", "مكملات", "العروض"}}},
			{ID: "s2", Type: section.TypeHeroSplit, Props: map[string]any{"title": "جهّز. انطلق. انتصر.", "subtitle": "أفضل المعدات والملابس الرياضية من أقوى العلامات العالمية — ابدأ رحلتك الرياضية معنا", "emoji": "🏃"}},
			{ID: "s3", Type: section.TypeBanner, Props: map[string]any{"text": "⚡ خصم 25% على جميع أحذية الجري — هذا الأسبوع فقط", "emoji": "👟"}},
			{ID: "s4", Type: section.TypeCategories},
			{ID: "s5", Type: section.TypeProducts, Props: map[string]any{"count": 8, "title": "الأكثر طلباً", "subtitle": "المنتجات الرياضية الأكثر شعبية"}},
			{ID: "s6", Type: section.TypeCountdown, Props: map[string]any{"title": "ماراثون التخفيضات", "subtitle": "خصومات تصل حتى 60% على أقوى المنتجات الرياضية"}},
			{ID: "s7", Type: section.TypeFeatures},
			{ID: "s8", Type: section.TypeStats},
			{ID: "s9", Type: section.TypeTestimonials},
			{ID: "s10", Type: section.TypeBrands, Props: map[string]any{"brands": []string{"Nike", "Adidas", "Under Armour", "Puma", "Reebok", "New Balance", "Asics", "Columbia"}}},
			{ID: "s11", Type: section.TypeNewsletter, Props: map[string]any{"title": "🏋️ انضم لمجتمعنا الرياضي", "subtitle": "نصائح رياضية + عروض حصرية + كود خصم 10%"}},
			{ID: "s12", Type: section.TypeFooter},
		},
	},
	{
		ID:          "kids-world",
		Name:        "كيدز لاند",
		NameEn:      "KidsLand",
		Category:    "أطفال",
		Description: "قالب مرح وملون للأطفال والألعاب — ألوان زاهية وتصميم مبهج",
		Thumbnail:   "linear-gradient(135deg, #6c5ce7 0%, #a29bfe 30%, #fd79a8 60%, #fdcb6e 100%)",
		StoreType:   "kids",
		Features:    []string{"فلتر حسب العمر", "منتجات آمنة", "تغليف هدايا", "ألعاب تعليمية"},
		Theme: theme.Theme{
			Primary: "#6c5ce7", PrimaryDark: "#5a4bd1", Accent: "#fd79a8",
			Background: "#fef9ff", Surface: "#f8f0ff", SurfaceAlt: "#efe5ff",
			Text: "#2d2252", TextSecondary: "#7a6b94", CardBackground: "#ffffff",
			BorderColor: "#e8ddf5", FontFamily: "Tajawal", Radius: "24px",
			HeroGradient: "linear-gradient(135deg, #6c5ce7 0%, #a29bfe 50%, #fd79a8 100%)",
			Style:        theme.StylePlayful,
		},
		Sections: []section.Config{
			{ID: "s1", Type: section.TypeNavbar, Props: map[string]any{"links": []string{"الرئيسية", "ألعاب", "تعليمية", "ملابس", "هدايا"}, "cta": "تسوق الآن 🎁"}},
			{ID: "s2", Type: section.TypeHero, Props: map[string]any{"title": "عالم المرح والتعلم! 🎊", "subtitle": "ألعاب آمنة وتعليمية تنمّي مهارات طفلك وتملأ عالمه بالسعادة والإبداع", "badge": "🧸 مجموعة العيد وصلت!", "cta": "اكتشف الألعاب", "cta2": "هدايا مميزة", "height": "500px"}},
			{ID: "s3", Type: section.TypeTrustBadges},
			{ID: "s4", Type: section.TypeCategories, Props: map[string]any{"title": "🎨 اختر القسم", "subtitle": "ألعاب لكل عمر واهتمام"}},
			{ID: "s5", Type: section.TypeProducts, Props: map[string]any{"count": 8, "title": "⭐ الأكثر شعبية", "subtitle": "الألعاب التي يحبها الأطفال"}},
			{ID: "s6", Type: section.TypeOffers, Props: map[string]any{"title": "🎉 عروض مبهجة", "subtitle": "خصومات كبيرة على ألعاب مختارة"}},
			{ID: "s7", Type: section.TypeFeatures},
			{ID: "s8", Type: section.TypeTestimonials},
			{ID: "s9", Type: section.TypeNewsletter, Props: map[string]any{"title": "🎈 احصل على عروض حصرية", "subtitle": "اشترك واحصل على خصم 15% + أفكار هدايا أسبوعية"}},
			{ID: "s10", Type: section.TypeFooter},
		},
	},
	{
		ID:          "home-decor",
		Name:        "هوم ديكور",
		NameEn:      "HomeDecor",
		Category:    "ديكور",
		Description: "قالب أنيق للديكور والأثاث — ألوان أرضية دافئة وتصميم مريح",
		Thumbnail:   "linear-gradient(135deg, #2c2013 0%, #4a3728 50%, #8d6e63 100%)",
		StoreType:   "home",
		Features:    []string{"معاينة الغرفة", "تنسيق ديكور", "استشارات تصميم", "خدمة تركيب"},
		Theme: theme.Theme{
			Primary: "#8d6e63", PrimaryDark: "#6d4c41", Accent: "#a1887f",
			Background: "#faf8f5", Surface: "#f5f0ea", SurfaceAlt: "#ebe3d8",
			Text: "#2c2013", TextSecondary: "#7a6a5a", CardBackground: "#ffffff",
			BorderColor: "#e0d5c8", FontFamily: "Tajawal", Radius: "12px",
			HeroGradient: "linear-gradient(135deg, #2c2013 0%, #4a3728 60%, #6d4c41 100%)",
			Style:        theme.StyleClassic,
		},
		Sections: []section.Config{
			{ID: "s1", Type: section.TypeNavbar, Props: map[string]any{"links": []string{"الرئيسية", "الأثاث", "الإضاءة", "إكسسوارات", "الحدائق", "عنا"}}},
			{ID: "s2", Type: section.TypeHeroSplit, Props: map[string]any{"title": "صمّم مساحتك المثالية", "subtitle": "أثاث وديكورات حصرية تحوّل منزلك إلى تحفة فنية — جودة عالمية وتصاميم عربية أصيلة", "emoji": "🛋️"}},
			{ID: "s3", Type: section.TypeCategories, Props: map[string]any{"title": "أقسامنا", "subtitle": "كل ما يحتاجه منزلك في مكان واحد"}},
			{ID: "s4", Type: section.TypeProducts, Props: map[string]any{"count": 8, "title": "منتجات مختارة", "subtitle": "أثاث وديكور بلمسة فنية"}},
			{ID: "s5", Type: section.TypeProductsFeatured, Props: map[string]any{"title": "✨ قطعة الموسم", "subtitle": "اختيار مصممي الديكور"}},
			{ID: "s6", Type: section.TypeFeatures},
			{ID: "s7", Type: section.TypeGallery, Props: map[string]any{"title": "📸 إلهام ديكور", "subtitle": "أفكار وتنسيقات لتستلهم منها"}},
			{ID: "s8", Type: section.TypeTestimonials},
			{ID: "s9", Type: section.TypeCTA, Props: map[string]any{"title": "جاهز تجدد ديكور بيتك؟", "subtitle": "تواصل مع مصممينا أو تسوق أونلاين — توصيل وتركيب مجاني"}},
			{ID: "s10", Type: section.TypeFooter},
		},
	},
	{
		ID:          "perfume-attar",
		Name:        "عَطر",
		NameEn:      "Attar",
		Category:    "عطور",
		Description: "قالب فخم للعطور والبخور — أجواء شرقية فاخرة مع تدرجات بنفسجية عميقة",
		Thumbnail:   "linear-gradient(135deg, #0a0515 0%, #1a0a3a 40%, #9b59b6 100%)",
		StoreType:   "perfume",
		Features:    []string{"كتالوج عطور", "عينات مصغرة", "تغليف فاخر", "نقش الأسماء"},
		Theme: theme.Theme{
			Primary: "#9b59b6", PrimaryDark: "#7d3c98", Accent: "#d4a0e8",
			Background: "#0f081a", Surface: "#160e24", SurfaceAlt: "#1f1435",
			Text: "#e8ddf0", TextSecondary: "#9a88a8", CardBackground: "#1a1030",
			BorderColor: "#2e1f45", FontFamily: "Tajawal", Radius: "16px",
			HeroGradient: "linear-gradient(135deg, #0f081a 0%, #2a1050 50%, #4a1a7a 100%)",
			Style:        theme.StyleLuxury,
		},
		Sections: []section.Config{
			{ID: "s1", Type: section.TypeNavbar, Props: map[string]any{"links": []string{"الرئيسية", "العطور", "البخور", "الدخون", "المجموعات", "الدار"}}},
			{ID: "s2", Type: section.TypeHero, Props: map[string]any{"title": "عطور تحكي قصتك", "subtitle": "عود كمبودي أصيل، مسك طبيعي، وروائح شرقية فاخرة — كل عطر رحلة حسية لا تُنسى", "badge": "🌹 إصدار محدود — عود ملكي 2026", "cta": "اكتشف العطور", "cta2": "مجموعة الهدايا", "height": "560px"}},
			{ID: "s3", Type: section.TypeCategories, Props: map[string]any{"title": "عوالمنا العطرية", "subtitle": "كل قسم عالم من الروائح الساحرة"}},
			{ID: "s4", Type: section.TypeProductsFeatured, Props: map[string]any{"title": "🌹 عطر الموسم", "subtitle": "اختيار خبراء العطور"}},
			{ID: "s5", Type: section.TypeProducts, Props: map[string]any{"title": "تشكيلتنا الفاخرة", "subtitle": "عطور مختارة بعناية من أجود المكونات", "count": 8}},
			{ID: "s6", Type: section.TypeOffers, Props: map[string]any{"title": "✨ عروض حصرية", "subtitle": "فرص ذهبية على أفخم العطور"}},
			{ID: "s7", Type: section.TypeFeatures},
			{ID: "s8", Type: section.TypeTestimonials},
			{ID: "s9", Type: section.TypeNewsletter, Props: map[string]any{"title": "🌸 انضم لعشاق العطور", "subtitle": "عروض حصرية + إصدارات محدودة + نصائح عطرية"}},
			{ID: "s10", Type: section.TypeFooter},
		},
	},
	{
		ID:          "health-wellness",
		Name:        "صِحتك",
		NameEn:      "HealthPlus",
		Category:    "صحة",
		Description: "قالب طبيعي لمتاجر الصحة والعافية — ألوان خضراء هادئة وتصميم نظيف",
		Thumbnail:   "linear-gradient(135deg, #0a1a0f 0%, #1b5e20 50%, #66bb6a 100%)",
		StoreType:   "health",
		Features:    []string{"فلتر عضوي/طبيعي", "معلومات غذائية", "اشتراكات شهرية", "استشارات صحية"},
		Theme: theme.Theme{
			Primary: "#43a047", PrimaryDark: "#2e7d32", Accent: "#66bb6a",
			Background: "#f5faf6", Surface: "#edf5ef", SurfaceAlt: "#dceee0",
			Text: "#0a1a0f", TextSecondary: "#4a6a50", CardBackground: "#ffffff",
			BorderColor: "#cfe2d3", FontFamily: "Tajawal", Radius: "14px",
			HeroGradient: "linear-gradient(135deg, #0a1a0f 0%, #1b5e20 50%, #0d3012 100%)",
			Style:        theme.StyleMinimal,
		},
		Sections: []section.Config{
			{ID: "s1", Type: section.TypeNavbar, Props: map[string]any{"links": []string{"الرئيسية", "مكملات", "عناية طبيعية", "أغذية عضوية", "المدونة"}, "cta": "تسوق صحي"}},
			{ID: "s2", Type: section.TypeHero, Props: map[string]any{"title": "صحتك أولاً", "subtitle": "مكملات غذائية طبيعية 100% ومنتجات عضوية معتمدة — ابدأ رحلتك نحو حياة أصح اليوم", "badge": "🌿 منتجات عضوية معتمدة — شحن مبرّد", "cta": "تسوق الآن", "cta2": "استشارة مجانية", "height": "500px"}},
			{ID: "s3", Type: section.TypeTrustBadges},
			{ID: "s4", Type: section.TypeCategories, Props: map[string]any{"title": "🌿 أقسامنا", "subtitle": "كل ما تحتاجه لحياة صحية"}},
			{ID: "s5", Type: section.TypeProducts, Props: map[string]any{"count": 8, "title": "أكثر المنتجات طلباً", "subtitle": "منتجات اختارها عملاؤنا"}},
			{ID: "s6", Type: section.TypeFeatures},
			{ID: "s7", Type: section.TypeStats},
			{ID: "s8", Type: section.TypeTestimonials},
			{ID: "s9", Type: section.TypeFAQ},
			{ID: "s10", Type: section.TypeNewsletter, Props: map[string]any{"title": "🥑 نصائح صحية أسبوعية", "subtitle": "اشترك واحصل على نصائح تغذية + كود خصم 10%"}},
			{ID: "s11", Type: section.TypeFooter},
		},
	},
	{
		ID:          "auto-parts",
		Name:        "أوتو بارتس",
		NameEn:      "AutoParts",
		Category:    "سيارات",
		Description: "قالب احترافي لقطع غيار السيارات — تصميم داكن صناعي مع لمسات حمراء",
		Thumbnail:   "linear-gradient(135deg, #0a0a0f 0%, #1a1a2e 40%, #e74c3c 100%)",
		StoreType:   "auto",
		Features:    []string{"البحث بموديل السيارة", "كتالوج قطع", "فلتر متقدم", "ضمان القطع"},
		Theme: theme.Theme{
			Primary: "#e74c3c", PrimaryDark: "#c0392b", Accent: "#ff6b6b",
			Background: "#0a0a0f", Surface: "#111118", SurfaceAlt: "#1a1a25",
			Text: "#e8e8f0", TextSecondary: "#8888a8", CardBackground: "#14141f",
			BorderColor: "#2a2a3e", FontFamily: "Tajawal", Radius: "12px",
			HeroGradient: "linear-gradient(135deg, #0a0a0f 0%, #1a0a0f 50%, #2a0a0f 100%)",
			Style:        theme.StyleBold,
		},
		Sections: []section.Config{
			{ID: "s1", Type: section.TypeNavbar, Props: map[string]any{"links": []string{"الرئيسية", "قطع غيار", "زيوت", "إطارات", "إكسسوارات", "الضمان"}, "cta": "اطلب الآن"}},
			{ID: "s2", Type: section.TypeHero, Props: map[string]any{"title": "قطع غيار أصلية — أداء لا يتوقف", "subtitle": "أكبر تشكيلة من قطع غيار السيارات الأصلية والبديلة — ابحث بموديل سيارتك واطلب الآن", "badge": "🔧 أكثر من 50,000 قطعة غيار", "cta": "ابحث عن قطعتك", "cta2": "تصفح العروض", "height": "500px"}},
			{ID: "s3", Type: section.TypeBanner, Props: map[string]any{"text": "🔥 خصم 20% على جميع الزيوت الأصلية هذا الأسبوع — الكمية محدودة", "emoji": "🛢️"}},
			{ID: "s4", Type: section.TypeCategories, Props: map[string]any{"title": "🔧 أقسامنا", "subtitle": "كل ما تحتاجه سيارتك في مكان واحد"}},
			{ID: "s5", Type: section.TypeProducts, Props: map[string]any{"count": 8, "title": "الأكثر طلباً", "subtitle": "قطع غيار بأعلى جودة وأفضل سعر"}},
			{ID: "s6", Type: section.TypeFeatures},
			{ID: "s7", Type: section.TypeCountdown, Props: map[string]any{"title": "⚡ عروض نهاية الشهر", "subtitle": "خصومات حصرية على الإطارات والزيوت"}},
			{ID: "s8", Type: section.TypeStats},
			{ID: "s9", Type: section.TypeTestimonials},
			{ID: "s10", Type: section.TypeFAQ},
			{ID: "s11", Type: section.TypeFooter},
		},
	},
}
