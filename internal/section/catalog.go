package section

// Built-in catalog data used when a section has no explicit content.
// Keyed by store type with "general" as the fallback, so every store
// type renders meaningful Arabic defaults.

// Product is a showcase product card.
type Product struct {
	Name     string
	Price    string
	OldPrice string
	Emoji    string
	Badge    string
	Gradient string
}

// Category is a shop-by-category card.
type Category struct {
	Name     string
	Emoji    string
	Count    string
	Gradient string
}

// Feature is a selling-point card.
type Feature struct {
	Icon  string
	Title string
	Desc  string
}

// Testimonial is a customer review card.
type Testimonial struct {
	Name     string
	Role     string
	Text     string
	Rating   int
	Initials string
}

// ProductsFor returns the default product set for a store type.
func ProductsFor(storeType string) []Product {
	if ps, ok := productSets[storeType]; ok {
		return ps
	}
	return productSets["general"]
}

// CategoriesFor returns the default category set for a store type.
func CategoriesFor(storeType string) []Category {
	if cs, ok := categorySets[storeType]; ok {
		return cs
	}
	return categorySets["general"]
}

// FeaturesFor returns the default feature set for a store type.
func FeaturesFor(storeType string) []Feature {
	if fs, ok := featureSets[storeType]; ok {
		return fs
	}
	return featureSets["default"]
}

// Testimonials returns the default review cards.
func Testimonials() []Testimonial {
	return testimonialsData
}

var productSets = map[string][]Product{
	"fashion": {
		{Name: "فستان سهرة أنيق", Price: "899", OldPrice: "1,199", Emoji: "👗", Badge: "خصم 25%", Gradient: "linear-gradient(135deg, #fce4ec 0%, #f8bbd0 100%)"},
		{Name: "جاكيت جلد طبيعي", Price: "1,499", Emoji: "🧥", Badge: "جديد", Gradient: "linear-gradient(135deg, #efebe9 0%, #d7ccc8 100%)"},
		{Name: "حقيبة يد كلاسيكية", Price: "699", Emoji: "👜", Gradient: "linear-gradient(135deg, #fff3e0 0%, #ffe0b2 100%)"},
		{Name: "حذاء رياضي فاخر", Price: "459", Emoji: "👟", Badge: "الأكثر مبيعاً", Gradient: "linear-gradient(135deg, #e8eaf6 0%, #c5cae9 100%)"},
		{Name: "ساعة كلاسيكية ذهبية", Price: "2,999", Emoji: "⌚", Gradient: "linear-gradient(135deg, #fff8e1 0%, #ffecb3 100%)"},
		{Name: "نظارة شمسية ريبان", Price: "349", Emoji: "🕶️", Gradient: "linear-gradient(135deg, #e0e0e0 0%, #bdbdbd 100%)"},
		{Name: "وشاح حرير إيطالي", Price: "299", Emoji: "🧣", Badge: "حصري", Gradient: "linear-gradient(135deg, #f3e5f5 0%, #e1bee7 100%)"},
		{Name: "حزام جلد طبيعي", Price: "199", Emoji: "👔", Gradient: "linear-gradient(135deg, #efebe9 0%, #bcaaa4 100%)"},
	},
	"electronics": {
		{Name: "آيفون 16 برو ماكس", Price: "5,499", Emoji: "📱", Badge: "جديد", Gradient: "linear-gradient(135deg, #e3f2fd 0%, #bbdefb 100%)"},
		{Name: "ماك بوك إير M4", Price: "4,999", Emoji: "💻", Gradient: "linear-gradient(135deg, #eceff1 0%, #cfd8dc 100%)"},
		{Name: "AirPods Pro 3", Price: "1,099", Emoji: "🎧", Badge: "الأكثر مبيعاً", Gradient: "linear-gradient(135deg, #fafafa 0%, #eeeeee 100%)"},
		{Name: "آيباد برو 13 إنش", Price: "3,999", Emoji: "📱", Gradient: "linear-gradient(135deg, #e8eaf6 0%, #c5cae9 100%)"},
		{Name: "شاشة سامسونج 4K", Price: "2,799", OldPrice: "3,499", Emoji: "🖥️", Badge: "خصم 20%", Gradient: "linear-gradient(135deg, #e0e0e0 0%, #bdbdbd 100%)"},
		{Name: "كيبورد ميكانيكي RGB", Price: "449", Emoji: "⌨️", Gradient: "linear-gradient(135deg, #263238 0%, #37474f 100%)"},
		{Name: "كاميرا سوني ألفا 7", Price: "6,999", Emoji: "📷", Badge: "احترافي", Gradient: "linear-gradient(135deg, #212121 0%, #424242 100%)"},
		{Name: "شاحن لاسلكي MagSafe", Price: "199", Emoji: "🔋", Gradient: "linear-gradient(135deg, #e8f5e9 0%, #c8e6c9 100%)"},
	},
	"beauty": {
		{Name: "عطر عود ملكي", Price: "799", Emoji: "🌹", Badge: "الأكثر مبيعاً", Gradient: "linear-gradient(135deg, #4a148c 0%, #7b1fa2 100%)"},
		{Name: "سيروم فيتامين سي", Price: "189", Emoji: "✨", Badge: "جديد", Gradient: "linear-gradient(135deg, #fff8e1 0%, #ffecb3 100%)"},
		{Name: "طقم مكياج احترافي", Price: "459", Emoji: "💄", Gradient: "linear-gradient(135deg, #fce4ec 0%, #f48fb1 100%)"},
		{Name: "كريم مرطب هيالورونيك", Price: "149", Emoji: "🧴", Gradient: "linear-gradient(135deg, #e0f7fa 0%, #b2ebf2 100%)"},
		{Name: "مجموعة عناية بالشعر", Price: "299", Emoji: "💆", Gradient: "linear-gradient(135deg, #f3e5f5 0%, #ce93d8 100%)"},
		{Name: "ماسك وجه ذهبي 24K", Price: "99", OldPrice: "149", Emoji: "🪞", Badge: "خصم", Gradient: "linear-gradient(135deg, #fff8e1 0%, #ffd54f 100%)"},
		{Name: "باليت ظلال عيون", Price: "279", Emoji: "🎨", Gradient: "linear-gradient(135deg, #fce4ec 0%, #f8bbd0 100%)"},
		{Name: "عطر مسك أبيض", Price: "599", Emoji: "🌸", Badge: "حصري", Gradient: "linear-gradient(135deg, #fafafa 0%, #f5f5f5 100%)"},
	},
	"food": {
		{Name: "برجر واغيو مميز", Price: "89", Emoji: "🍔", Badge: "الأكثر طلباً", Gradient: "linear-gradient(135deg, #fff3e0 0%, #ffe0b2 100%)"},
		{Name: "بيتزا مارغريتا إيطالية", Price: "49", Emoji: "🍕", Gradient: "linear-gradient(135deg, #ffecb3 0%, #ffe082 100%)"},
		{Name: "سلطة سيزر بالدجاج", Price: "39", Emoji: "🥗", Badge: "صحي", Gradient: "linear-gradient(135deg, #e8f5e9 0%, #c8e6c9 100%)"},
		{Name: "ستيك مشوي على الفحم", Price: "129", Emoji: "🥩", Gradient: "linear-gradient(135deg, #efebe9 0%, #d7ccc8 100%)"},
		{Name: "تشيز كيك توت", Price: "45", Emoji: "🍰", Badge: "جديد", Gradient: "linear-gradient(135deg, #fce4ec 0%, #f8bbd0 100%)"},
		{Name: "عصير فواكه طبيعي", Price: "25", Emoji: "🥤", Gradient: "linear-gradient(135deg, #fff9c4 0%, #fff176 100%)"},
		{Name: "سوشي رول مشكل", Price: "79", Emoji: "🍣", Gradient: "linear-gradient(135deg, #e0e0e0 0%, #f5f5f5 100%)"},
		{Name: "موكا لاتيه", Price: "28", Emoji: "☕", Gradient: "linear-gradient(135deg, #efebe9 0%, #bcaaa4 100%)"},
	},
	"general": {
		{Name: "منتج مميز أول", Price: "199", Emoji: "⭐", Badge: "الأكثر مبيعاً", Gradient: "linear-gradient(135deg, #e8eaf6 0%, #c5cae9 100%)"},
		{Name: "منتج راقي ثاني", Price: "349", Emoji: "💎", Badge: "جديد", Gradient: "linear-gradient(135deg, #e0f2f1 0%, #b2dfdb 100%)"},
		{Name: "منتج عصري ثالث", Price: "149", Emoji: "🔥", Gradient: "linear-gradient(135deg, #fff3e0 0%, #ffcc80 100%)"},
		{Name: "منتج حصري رابع", Price: "599", Emoji: "🎁", Badge: "حصري", Gradient: "linear-gradient(135deg, #fce4ec 0%, #f8bbd0 100%)"},
		{Name: "منتج كلاسيكي خامس", Price: "249", Emoji: "🏷️", Gradient: "linear-gradient(135deg, #f3e5f5 0%, #e1bee7 100%)"},
		{Name: "منتج عملي سادس", Price: "89", OldPrice: "129", Emoji: "📦", Badge: "خصم 30%", Gradient: "linear-gradient(135deg, #e0e0e0 0%, #bdbdbd 100%)"},
		{Name: "منتج فريد سابع", Price: "449", Emoji: "🎯", Gradient: "linear-gradient(135deg, #e8f5e9 0%, #a5d6a7 100%)"},
		{Name: "منتج مبتكر ثامن", Price: "699", Emoji: "✨", Gradient: "linear-gradient(135deg, #fff8e1 0%, #ffecb3 100%)"},
	},
	"jewelry": {
		{Name: "خاتم ألماس سوليتير", Price: "12,999", Emoji: "💍", Badge: "فاخر", Gradient: "linear-gradient(135deg, #fff8e1 0%, #ffd54f 100%)"},
		{Name: "عقد ذهب عيار 21", Price: "4,599", Emoji: "📿", Gradient: "linear-gradient(135deg, #fff3e0 0%, #ffcc80 100%)"},
		{Name: "أسوارة كارتييه", Price: "8,999", Emoji: "💎", Badge: "الأكثر مبيعاً", Gradient: "linear-gradient(135deg, #fafafa 0%, #e0e0e0 100%)"},
		{Name: "أقراط لؤلؤ طبيعي", Price: "2,999", Emoji: "✨", Gradient: "linear-gradient(135deg, #fce4ec 0%, #f8bbd0 100%)"},
		{Name: "ساعة رولكس ديت جست", Price: "45,000", Emoji: "⌚", Badge: "حصري", Gradient: "linear-gradient(135deg, #212121 0%, #424242 100%)"},
		{Name: "طقم مجوهرات عروس", Price: "18,999", Emoji: "👑", Gradient: "linear-gradient(135deg, #fff8e1 0%, #ffe082 100%)"},
		{Name: "بروش ذهبي فاخر", Price: "3,499", Emoji: "🏅", Gradient: "linear-gradient(135deg, #efebe9 0%, #d7ccc8 100%)"},
		{Name: "خلخال ذهب ناعم", Price: "1,899", Emoji: "💫", Badge: "جديد", Gradient: "linear-gradient(135deg, #fff9c4 0%, #fff176 100%)"},
	},
	"sports": {
		{Name: "حذاء جري نايك إير", Price: "699", Emoji: "👟", Badge: "الأكثر مبيعاً", Gradient: "linear-gradient(135deg, #e8f5e9 0%, #a5d6a7 100%)"},
		{Name: "طقم تمارين كامل", Price: "349", Emoji: "🏋️", Gradient: "linear-gradient(135deg, #e3f2fd 0%, #90caf9 100%)"},
		{Name: "ساعة رياضية ذكية", Price: "1,299", Emoji: "⌚", Badge: "جديد", Gradient: "linear-gradient(135deg, #263238 0%, #455a64 100%)"},
		{Name: "شنطة رياضية أديداس", Price: "249", Emoji: "🎒", Gradient: "linear-gradient(135deg, #212121 0%, #616161 100%)"},
		{Name: "مضرب تنس ويلسون", Price: "899", Emoji: "🎾", Gradient: "linear-gradient(135deg, #fff3e0 0%, #ffcc80 100%)"},
		{Name: "سجادة يوغا بريميوم", Price: "149", Emoji: "🧘", Badge: "صحي", Gradient: "linear-gradient(135deg, #f3e5f5 0%, #ce93d8 100%)"},
		{Name: "دراجة هوائية احترافية", Price: "3,499", Emoji: "🚴", Gradient: "linear-gradient(135deg, #e0e0e0 0%, #9e9e9e 100%)"},
		{Name: "بروتين واي 2 كيلو", Price: "199", Emoji: "💪", Gradient: "linear-gradient(135deg, #efebe9 0%, #bcaaa4 100%)"},
	},
	"kids": {
		{Name: "دمية دب عملاقة", Price: "149", Emoji: "🧸", Badge: "الأكثر مبيعاً", Gradient: "linear-gradient(135deg, #fff9c4 0%, #fff176 100%)"},
		{Name: "ليقو سفينة فضائية", Price: "299", Emoji: "🧩", Badge: "جديد", Gradient: "linear-gradient(135deg, #e3f2fd 0%, #90caf9 100%)"},
		{Name: "كتب أطفال تعليمية", Price: "89", Emoji: "📚", Gradient: "linear-gradient(135deg, #e8f5e9 0%, #a5d6a7 100%)"},
		{Name: "طقم ألوان وأقلام", Price: "59", Emoji: "🎨", Gradient: "linear-gradient(135deg, #fce4ec 0%, #f48fb1 100%)"},
		{Name: "سيارة ريموت كنترول", Price: "199", Emoji: "🚗", Badge: "عرض", Gradient: "linear-gradient(135deg, #fff3e0 0%, #ffcc80 100%)"},
		{Name: "بازل 500 قطعة", Price: "79", Emoji: "🧩", Gradient: "linear-gradient(135deg, #f3e5f5 0%, #ce93d8 100%)"},
		{Name: "خيمة أطفال داخلية", Price: "249", Emoji: "⛺", Gradient: "linear-gradient(135deg, #e0f2f1 0%, #80cbc4 100%)"},
		{Name: "لعبة طبخ مصغرة", Price: "129", Emoji: "🍳", Gradient: "linear-gradient(135deg, #fff8e1 0%, #ffecb3 100%)"},
	},
	"home": {
		{Name: "أريكة مخملية فاخرة", Price: "4,999", Emoji: "🛋️", Badge: "جديد", Gradient: "linear-gradient(135deg, #efebe9 0%, #d7ccc8 100%)"},
		{Name: "مصباح أرضي إسكندنافي", Price: "699", Emoji: "💡", Gradient: "linear-gradient(135deg, #fff8e1 0%, #ffecb3 100%)"},
		{Name: "لوحة جدارية فنية", Price: "349", Emoji: "🖼️", Badge: "حصري", Gradient: "linear-gradient(135deg, #e8eaf6 0%, #c5cae9 100%)"},
		{Name: "نبتة زينة داخلية", Price: "89", Emoji: "🌱", Gradient: "linear-gradient(135deg, #e8f5e9 0%, #a5d6a7 100%)"},
		{Name: "شمعة عطرية فاخرة", Price: "149", Emoji: "🕯️", Badge: "الأكثر مبيعاً", Gradient: "linear-gradient(135deg, #fff3e0 0%, #ffe0b2 100%)"},
		{Name: "سجادة بيرسيان", Price: "2,499", Emoji: "🏠", Gradient: "linear-gradient(135deg, #efebe9 0%, #bcaaa4 100%)"},
		{Name: "مرآة حائط ذهبية", Price: "599", Emoji: "🪞", Gradient: "linear-gradient(135deg, #fff8e1 0%, #ffd54f 100%)"},
		{Name: "مزهرية سيراميك", Price: "199", Emoji: "🏺", Badge: "فن يدوي", Gradient: "linear-gradient(135deg, #e0f2f1 0%, #80cbc4 100%)"},
	},
	"perfume": {
		{Name: "عود كمبودي فاخر", Price: "1,299", Emoji: "🌹", Badge: "فاخر", Gradient: "linear-gradient(135deg, #311b92 0%, #4527a0 100%)"},
		{Name: "عطر مسك طبيعي", Price: "599", Emoji: "🌸", Badge: "الأكثر مبيعاً", Gradient: "linear-gradient(135deg, #fce4ec 0%, #f48fb1 100%)"},
		{Name: "بخور عربي أصيل", Price: "249", Emoji: "✨", Gradient: "linear-gradient(135deg, #4e342e 0%, #6d4c41 100%)"},
		{Name: "دخون ملكي", Price: "349", Emoji: "🔮", Badge: "حصري", Gradient: "linear-gradient(135deg, #1a237e 0%, #283593 100%)"},
		{Name: "عطر ورد طائفي", Price: "899", Emoji: "🌺", Gradient: "linear-gradient(135deg, #880e4f 0%, #ad1457 100%)"},
		{Name: "مجموعة عطور سفر", Price: "399", Emoji: "🎀", Badge: "هدية مثالية", Gradient: "linear-gradient(135deg, #fff3e0 0%, #ffe0b2 100%)"},
		{Name: "عطر عنبر خالص", Price: "1,899", Emoji: "💎", Gradient: "linear-gradient(135deg, #3e2723 0%, #5d4037 100%)"},
		{Name: "زيت عود هندي", Price: "2,499", Emoji: "🫧", Badge: "نادر", Gradient: "linear-gradient(135deg, #263238 0%, #37474f 100%)"},
	},
	"health": {
		{Name: "فيتامين D3 + K2", Price: "89", Emoji: "💊", Badge: "الأكثر مبيعاً", Gradient: "linear-gradient(135deg, #e8f5e9 0%, #a5d6a7 100%)"},
		{Name: "بروتين نباتي عضوي", Price: "199", Emoji: "🌿", Badge: "عضوي", Gradient: "linear-gradient(135deg, #f1f8e9 0%, #aed581 100%)"},
		{Name: "زيت جوز الهند البكر", Price: "59", Emoji: "🥥", Gradient: "linear-gradient(135deg, #efebe9 0%, #d7ccc8 100%)"},
		{Name: "عسل مانوكا نيوزلندي", Price: "349", Emoji: "🍯", Badge: "طبيعي 100%", Gradient: "linear-gradient(135deg, #fff8e1 0%, #ffcc80 100%)"},
		{Name: "شاي أعشاب مهدئ", Price: "39", Emoji: "🍵", Gradient: "linear-gradient(135deg, #e0f2f1 0%, #80cbc4 100%)"},
		{Name: "كولاجين بحري", Price: "249", Emoji: "✨", Badge: "جديد", Gradient: "linear-gradient(135deg, #e3f2fd 0%, #90caf9 100%)"},
		{Name: "مكمل أوميغا 3", Price: "129", Emoji: "🐟", Gradient: "linear-gradient(135deg, #e8eaf6 0%, #9fa8da 100%)"},
		{Name: "سوبر فود مكس", Price: "179", Emoji: "🥑", Badge: "نباتي", Gradient: "linear-gradient(135deg, #e8f5e9 0%, #66bb6a 100%)"},
	},
	"auto": {
		{Name: "زيت محرك سينثتك 5W-30", Price: "149", Emoji: "🛢️", Badge: "الأكثر مبيعاً", Gradient: "linear-gradient(135deg, #212121 0%, #424242 100%)"},
		{Name: "بطارية سيارة AGM", Price: "699", Emoji: "🔋", Gradient: "linear-gradient(135deg, #263238 0%, #455a64 100%)"},
		{Name: "إطارات ميشلان 4 قطع", Price: "2,499", Emoji: "🛞", Badge: "عرض خاص", Gradient: "linear-gradient(135deg, #37474f 0%, #546e7a 100%)"},
		{Name: "كاميرا سيارة أمامية", Price: "349", Emoji: "📷", Badge: "جديد", Gradient: "linear-gradient(135deg, #1a237e 0%, #283593 100%)"},
		{Name: "طقم عدة إصلاح 120 قطعة", Price: "499", Emoji: "🔧", Gradient: "linear-gradient(135deg, #b71c1c 0%, #c62828 100%)"},
		{Name: "منظف داخلي سيراميك", Price: "89", Emoji: "✨", Gradient: "linear-gradient(135deg, #1b5e20 0%, #2e7d32 100%)"},
		{Name: "شاحن سيارة سريع", Price: "129", Emoji: "⚡", Gradient: "linear-gradient(135deg, #f57f17 0%, #ff8f00 100%)"},
		{Name: "مسّاحات ممتازة زوج", Price: "79", Emoji: "🚗", Gradient: "linear-gradient(135deg, #0d47a1 0%, #1565c0 100%)"},
	},
}

var categorySets = map[string][]Category{
	"fashion": {
		{Name: "أزياء نسائية", Emoji: "👗", Count: "120+", Gradient: "linear-gradient(135deg, #e91e63, #ad1457)"},
		{Name: "أزياء رجالية", Emoji: "👔", Count: "85+", Gradient: "linear-gradient(135deg, #2196f3, #1565c0)"},
		{Name: "أحذية", Emoji: "👠", Count: "60+", Gradient: "linear-gradient(135deg, #ff9800, #ef6c00)"},
		{Name: "إكسسوارات", Emoji: "💎", Count: "45+", Gradient: "linear-gradient(135deg, #9c27b0, #6a1b9a)"},
		{Name: "حقائب", Emoji: "👜", Count: "35+", Gradient: "linear-gradient(135deg, #795548, #4e342e)"},
		{Name: "ساعات", Emoji: "⌚", Count: "30+", Gradient: "linear-gradient(135deg, #ffd700, #b8860b)"},
	},
	"electronics": {
		{Name: "هواتف ذكية", Emoji: "📱", Count: "50+", Gradient: "linear-gradient(135deg, #2196f3, #0d47a1)"},
		{Name: "لابتوبات", Emoji: "💻", Count: "35+", Gradient: "linear-gradient(135deg, #607d8b, #37474f)"},
		{Name: "سماعات", Emoji: "🎧", Count: "40+", Gradient: "linear-gradient(135deg, #9c27b0, #4a148c)"},
		{Name: "شاشات", Emoji: "🖥️", Count: "25+", Gradient: "linear-gradient(135deg, #212121, #424242)"},
		{Name: "ألعاب", Emoji: "🎮", Count: "60+", Gradient: "linear-gradient(135deg, #4caf50, #1b5e20)"},
		{Name: "كاميرات", Emoji: "📷", Count: "20+", Gradient: "linear-gradient(135deg, #ff5722, #bf360c)"},
	},
	"beauty": {
		{Name: "عطور", Emoji: "🌹", Count: "80+", Gradient: "linear-gradient(135deg, #9c27b0, #4a148c)"},
		{Name: "مكياج", Emoji: "💄", Count: "120+", Gradient: "linear-gradient(135deg, #e91e63, #880e4f)"},
		{Name: "عناية بالبشرة", Emoji: "✨", Count: "60+", Gradient: "linear-gradient(135deg, #00bcd4, #006064)"},
		{Name: "عناية بالشعر", Emoji: "💆", Count: "45+", Gradient: "linear-gradient(135deg, #ff9800, #e65100)"},
		{Name: "أدوات تجميل", Emoji: "🪞", Count: "35+", Gradient: "linear-gradient(135deg, #f06292, #c2185b)"},
		{Name: "هدايا", Emoji: "🎁", Count: "25+", Gradient: "linear-gradient(135deg, #ffd54f, #f9a825)"},
	},
	"food": {
		{Name: "برجر", Emoji: "🍔", Count: "15+", Gradient: "linear-gradient(135deg, #ff9800, #e65100)"},
		{Name: "بيتزا", Emoji: "🍕", Count: "12+", Gradient: "linear-gradient(135deg, #f44336, #c62828)"},
		{Name: "سلطات", Emoji: "🥗", Count: "10+", Gradient: "linear-gradient(135deg, #4caf50, #2e7d32)"},
		{Name: "مشويات", Emoji: "🥩", Count: "8+", Gradient: "linear-gradient(135deg, #795548, #3e2723)"},
		{Name: "حلويات", Emoji: "🍰", Count: "20+", Gradient: "linear-gradient(135deg, #e91e63, #ad1457)"},
		{Name: "مشروبات", Emoji: "☕", Count: "15+", Gradient: "linear-gradient(135deg, #6d4c41, #3e2723)"},
	},
	"general": {
		{Name: "الأكثر مبيعاً", Emoji: "🔥", Count: "50+", Gradient: "linear-gradient(135deg, #ff5722, #d84315)"},
		{Name: "وصل حديثاً", Emoji: "⭐", Count: "30+", Gradient: "linear-gradient(135deg, #ffc107, #ff8f00)"},
		{Name: "عروض خاصة", Emoji: "🏷️", Count: "25+", Gradient: "linear-gradient(135deg, #4caf50, #2e7d32)"},
		{Name: "إلكترونيات", Emoji: "📱", Count: "40+", Gradient: "linear-gradient(135deg, #2196f3, #1565c0)"},
		{Name: "أزياء", Emoji: "👗", Count: "35+", Gradient: "linear-gradient(135deg, #e91e63, #ad1457)"},
		{Name: "منزل", Emoji: "🏠", Count: "20+", Gradient: "linear-gradient(135deg, #795548, #4e342e)"},
	},
}

var featureSets = map[string][]Feature{
	"fashion": {
		{Icon: "🚚", Title: "شحن مجاني", Desc: "توصيل مجاني لجميع الطلبات فوق 200 ر.س في المملكة"},
		{Icon: "↩️", Title: "إرجاع سهل", Desc: "إرجاع مجاني خلال 14 يوم بدون أي أسئلة"},
		{Icon: "✅", Title: "أصلية 100%", Desc: "جميع منتجاتنا أصلية مع شهادة ضمان معتمدة"},
		{Icon: "💳", Title: "دفع مرن", Desc: "ادفع بالبطاقة أو مدى أو أبل باي أو تقسيط"},
	},
	"electronics": {
		{Icon: "🔧", Title: "ضمان سنتين", Desc: "ضمان شامل على جميع الأجهزة مع صيانة مجانية"},
		{Icon: "💬", Title: "دعم فني 24/7", Desc: "فريق دعم متخصص يساعدك في أي وقت"},
		{Icon: "🚀", Title: "توصيل سريع", Desc: "توصيل خلال 24 ساعة داخل المدن الرئيسية"},
		{Icon: "💰", Title: "أقساط بدون فوائد", Desc: "تقسيط مريح حتى 12 شهر بدون أي فوائد"},
	},
	"beauty": {
		{Icon: "🌿", Title: "مكونات طبيعية", Desc: "منتجات مصنوعة من أجود المكونات الطبيعية"},
		{Icon: "🎁", Title: "عينات مجانية", Desc: "احصلي على عينات مجانية مع كل طلب"},
		{Icon: "👩‍⚕️", Title: "نصائح خبراء", Desc: "استشارات مجانية من خبراء التجميل والعناية"},
		{Icon: "📦", Title: "تغليف فاخر", Desc: "تغليف احترافي يليق بجمال منتجاتنا"},
	},
	"food": {
		{Icon: "🕐", Title: "توصيل 30 دقيقة", Desc: "طلبك يوصلك خلال 30 دقيقة أو أقل"},
		{Icon: "🌿", Title: "مكونات طازجة", Desc: "نستخدم أفضل المكونات الطازجة يومياً"},
		{Icon: "👨‍🍳", Title: "طهاة محترفون", Desc: "طهاة بخبرة عالمية يعدون وجباتك بعناية"},
		{Icon: "♻️", Title: "تغليف صديق للبيئة", Desc: "عبوات قابلة لإعادة التدوير بنسبة 100%"},
	},
	"default": {
		{Icon: "🚚", Title: "شحن سريع", Desc: "توصيل سريع لجميع المناطق في المملكة"},
		{Icon: "🔒", Title: "دفع آمن", Desc: "حماية كاملة لبياناتك المالية مع أحدث تقنيات التشفير"},
		{Icon: "↩️", Title: "استرجاع مجاني", Desc: "إرجاع مجاني خلال 14 يوم بدون أي شروط"},
		{Icon: "💬", Title: "دعم متواصل", Desc: "فريق خدمة عملاء متاح على مدار الساعة"},
	},
}

var testimonialsData = []Testimonial{
	{Name: "سارة المالكي", Role: "عميلة مميزة", Text: "تجربة تسوق رائعة! المنتجات أصلية 100% والتوصيل وصلني في نفس اليوم. أنصح الجميع بالتعامل معهم.", Rating: 5, Initials: "سم"},
	{Name: "محمد العتيبي", Role: "عميل دائم", Text: "أفضل متجر تعاملت معه في السعودية. خدمة العملاء ممتازة والمنتجات بجودة عالية. شكراً لكم!", Rating: 5, Initials: "مع"},
	{Name: "نورة القحطاني", Role: "مشترية معتمدة", Text: "جودة عالية وأسعار منافسة جداً. التغليف كان فاخر والمنتج مطابق للوصف تماماً. سأعود بالتأكيد!", Rating: 5, Initials: "نق"},
	{Name: "عبدالله الشمري", Role: "عميل VIP", Text: "من أضخم المتاجر الإلكترونية المحلية. تشكيلة واسعة وعروض مستمرة. التوصيل سريع ومجاني.", Rating: 4, Initials: "عش"},
	{Name: "ريم الحربي", Role: "عميلة جديدة", Text: "أول مرة أتعامل معهم وكانت تجربة مذهلة. سرعة في المعالجة والشحن. أكيد بكرر التجربة.", Rating: 5, Initials: "رح"},
	{Name: "فيصل الدوسري", Role: "عميل منتظم", Text: "ما لقيت متجر إلكتروني بهالمستوى من الاحترافية. الدفع سهل وآمن والمنتجات ممتازة.", Rating: 5, Initials: "فد"},
}

var galleryEmojiSets = map[string][]string{
	"fashion": {"👗", "👠", "👜", "💍", "⌚", "🧥", "👔", "🕶️"},
	"beauty":  {"🌹", "💄", "✨", "🌸", "🧴", "🎀", "💅", "🪞"},
	"food":    {"🍔", "🍕", "🥗", "🍰", "☕", "🍣", "🥤", "🍝"},
	"default": {"📸", "🎨", "🌟", "💫", "🎪", "🌈", "🎭", "✨"},
}

var galleryGradients = []string{
	"linear-gradient(135deg, #667eea, #764ba2)",
	"linear-gradient(135deg, #f093fb, #f5576c)",
	"linear-gradient(135deg, #4facfe, #00f2fe)",
	"linear-gradient(135deg, #43e97b, #38f9d7)",
	"linear-gradient(135deg, #fa709a, #fee140)",
	"linear-gradient(135deg, #a18cd1, #fbc2eb)",
	"linear-gradient(135deg, #fccb90, #d57eeb)",
	"linear-gradient(135deg, #e0c3fc, #8ec5fc)",
}
