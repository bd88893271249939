package mutate

// QuickAction is one suggested chat prompt shown in the builder.
type QuickAction struct {
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

// QuickActions are the suggested edits surfaced next to the chat input.
var QuickActions = []QuickAction{
	{Label: "🎨 غيّر الألوان", Prompt: "غيّر ألوان المتجر"},
	{Label: "📦 أضف منتجات", Prompt: "أضف 4 منتجات جديدة بأسماء وأسعار حقيقية"},
	{Label: "🔥 أضف عروض", Prompt: "أضف قسم عروض خاصة مع بطاقات ملونة وخصومات"},
	{Label: "💬 تقييمات عملاء", Prompt: "أضف قسم آراء العملاء مع 3 تقييمات بنجوم"},
	{Label: "📧 نشرة بريدية", Prompt: "أضف قسم اشتراك بريد إلكتروني احترافي"},
	{Label: "❓ أسئلة شائعة", Prompt: "أضف قسم أسئلة شائعة تفاعلي (أكورديون)"},
	{Label: "📞 تواصل معنا", Prompt: "أضف قسم تواصل معنا مع نموذج ومعلومات الاتصال"},
	{Label: "⏰ عداد تنازلي", Prompt: "أضف عداد تنازلي لعرض محدود المدة بتصميم جميل"},
	{Label: "📊 إحصائيات", Prompt: "أضف قسم إحصائيات (عملاء، منتجات، طلبات، تقييم)"},
	{Label: "🖼️ معرض صور", Prompt: "أضف معرض صور بشبكة ملونة جميلة مع hover effects"},
	{Label: "✨ خلّه فاخر", Prompt: "حوّل التصميم لستايل فاخر وملكي مع ألوان ذهبية وخلفية داكنة"},
	{Label: "🌙 وضع داكن", Prompt: "حوّل المتجر للوضع الداكن مع ألوان أنيقة"},
}
