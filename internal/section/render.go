package section

import (
	"fmt"
	"strings"
)

// Render produces the HTML fragment for one section. Unknown types
// degrade to an inert placeholder comment so a page with a stale or
// future section kind still assembles.
func Render(s Config, rctx Context) string {
	p := s.Props
	if p == nil {
		p = map[string]any{}
	}
	switch s.Type {
	case TypeNavbar:
		return renderNavbar(p, rctx.StoreName)
	case TypeHero:
		return renderHero(p, rctx.StoreName)
	case TypeHeroSplit:
		return renderHeroSplit(p, rctx.StoreName)
	case TypeTrustBadges:
		return renderTrustBadges()
	case TypeCategories:
		return renderCategories(p, rctx.StoreType)
	case TypeProducts:
		return renderProducts(p, rctx.StoreType)
	case TypeProductsFeatured:
		return renderProductsFeatured(p, rctx.StoreType)
	case TypeFeatures:
		return renderFeatures(p, rctx.StoreType)
	case TypeTestimonials:
		return renderTestimonials(p)
	case TypeNewsletter:
		return renderNewsletter(p)
	case TypeBanner:
		return renderBanner(p)
	case TypeStats:
		return renderStats()
	case TypeBrands:
		return renderBrands(p)
	case TypeOffers:
		return renderOffers(p)
	case TypeCountdown:
		return renderCountdown(p)
	case TypeGallery:
		return renderGallery(p, rctx.StoreType)
	case TypeCTA:
		return renderCTA(p)
	case TypeFAQ:
		return renderFAQ(p)
	case TypeContact:
		return renderContact(p, rctx.StoreName)
	case TypeFooter, TypeFooterRich:
		return renderFooter(rctx.StoreName)
	case TypeSpacer:
		return renderSpacer()
	default:
		return fmt.Sprintf("<!-- Unknown section: %s -->", s.Type)
	}
}

func renderNavbar(p map[string]any, storeName string) string {
	links := propStrings(p, "links")
	if len(links) == 0 {
		links = []string{"الرئيسية", "المنتجات", "العروض", "من نحن", "تواصل معنا"}
	}
	cta := propString(p, "cta", "تسوق الآن")

	var nav strings.Builder
	for _, l := range links {
		fmt.Fprintf(&nav, `<a href="#">%s</a>`, l)
	}
	return fmt.Sprintf(`
  <nav class="navbar" data-section-type="navbar">
    <div class="navbar-inner">
      <span class="logo">%s</span>
      <div class="nav-links">
        %s
      </div>
      <div class="nav-icons">
        <button class="nav-icon" title="بحث">🔍</button>
        <button class="nav-icon" title="المفضلة">♡</button>
        <button class="nav-icon" title="السلة">🛒</button>
        <a href="#" class="btn btn-p btn-sm" style="margin-right:8px">%s</a>
      </div>
    </div>
  </nav>`, storeName, nav.String(), cta)
}

func renderHero(p map[string]any, storeName string) string {
	title := propString(p, "title", "مرحباً بكم في "+storeName)
	subtitle := propString(p, "subtitle", "اكتشفوا تشكيلتنا الفريدة من أفضل المنتجات بأسعار لا تُقاوم")
	cta := propString(p, "cta", "تسوق الآن")
	cta2 := propString(p, "cta2", "اكتشف المزيد")
	height := propString(p, "height", "500px")
	badge := propString(p, "badge", "وصل حديثاً — مجموعة 2026")
	return fmt.Sprintf(`
  <section class="hero" style="background:var(--hg);padding:0" data-section-type="hero" data-anim>
    <div class="hero-shapes">
      <div class="hero-circle" style="width:300px;height:300px;top:-80px;left:-80px"></div>
      <div class="hero-circle" style="width:200px;height:200px;bottom:-50px;right:10%%"></div>
      <div class="hero-circle" style="width:150px;height:150px;top:30%%;right:5%%"></div>
    </div>
    <div class="hero-content" style="min-height:%s;display:flex;align-items:center">
      <div class="container" style="width:100%%">
        <div style="max-width:700px">
          <div class="badge badge-p mb-16" style="background:rgba(255,255,255,.15);backdrop-filter:blur(10px);color:#fff">✨ %s</div>
          <h1 class="text-5xl font-black mb-24" style="color:#fff">%s</h1>
          <p class="text-lg mb-32" style="color:rgba(255,255,255,.85);max-width:540px;line-height:1.8">%s</p>
          <div class="flex gap-16 flex-wrap">
            <a href="#products" class="btn btn-w btn-lg">%s ←</a>
            <a href="#features" class="btn btn-lg" style="background:rgba(255,255,255,.1);color:#fff;border:1px solid rgba(255,255,255,.25);backdrop-filter:blur(10px)">%s</a>
          </div>
        </div>
      </div>
    </div>
  </section>`, height, badge, title, subtitle, cta, cta2)
}

func renderHeroSplit(p map[string]any, storeName string) string {
	title := propString(p, "title", "اكتشف "+storeName)
	subtitle := propString(p, "subtitle", "تشكيلة حصرية تجمع بين الأناقة والجودة العالية")
	emoji := propString(p, "emoji", "🛍️")
	return fmt.Sprintf(`
  <section class="section" style="background:var(--sf)" data-section-type="hero-split" data-anim>
    <div class="container">
      <div class="grid grid-2 items-center" style="min-height:400px">
        <div>
          <div class="badge badge-a mb-16">🔥 عرض محدود</div>
          <h1 class="text-4xl font-black mb-16 leading-tight">%s</h1>
          <p class="text-lg text-sec mb-32 leading-relaxed" style="max-width:460px">%s</p>
          <div class="flex gap-12">
            <a href="#" class="btn btn-p">تسوق الآن ←</a>
            <a href="#" class="btn btn-o">شاهد الفيديو ▶</a>
          </div>
          <div class="trust-badges" style="justify-content:flex-start;padding:32px 0 0;gap:24px">
            <span class="trust-badge"><span class="trust-badge-icon">🚚</span> شحن مجاني</span>
            <span class="trust-badge"><span class="trust-badge-icon">🔒</span> دفع آمن</span>
            <span class="trust-badge"><span class="trust-badge-icon">↩️</span> إرجاع سهل</span>
          </div>
        </div>
        <div style="display:flex;align-items:center;justify-content:center">
          <div style="width:380px;height:380px;border-radius:50%%;background:var(--hg);display:flex;align-items:center;justify-content:center;font-size:8rem;box-shadow:0 40px 80px rgba(0,0,0,.15)">
            %s
          </div>
        </div>
      </div>
    </div>
  </section>`, title, subtitle, emoji)
}

func renderTrustBadges() string {
	return `
  <section style="background:var(--sf);border-bottom:1px solid var(--br)" data-section-type="trust-badges" data-anim>
    <div class="container">
      <div class="trust-badges">
        <span class="trust-badge"><span class="trust-badge-icon">🚚</span> شحن مجاني للطلبات فوق 200 ر.س</span>
        <span class="trust-badge"><span class="trust-badge-icon">🔒</span> دفع آمن 100%</span>
        <span class="trust-badge"><span class="trust-badge-icon">↩️</span> إرجاع خلال 14 يوم</span>
        <span class="trust-badge"><span class="trust-badge-icon">💬</span> دعم فني 24/7</span>
        <span class="trust-badge"><span class="trust-badge-icon">✅</span> منتجات أصلية</span>
      </div>
    </div>
  </section>`
}

func renderCategories(p map[string]any, storeType string) string {
	cats := categoriesFromProps(p)
	if len(cats) == 0 {
		cats = CategoriesFor(storeType)
	}
	var cards strings.Builder
	for _, c := range cats {
		fmt.Fprintf(&cards, `
          <div class="cat-card" style="background:%s">
            <div class="cat-inner">
              <span class="cat-emoji">%s</span>
              <div class="cat-name">%s</div>
              <div class="cat-count">%s منتج</div>
            </div>
          </div>`, c.Gradient, c.Emoji, c.Name, c.Count)
	}
	return fmt.Sprintf(`
  <section class="section" id="categories" data-section-type="categories" data-anim>
    <div class="container">
      <div class="section-header">
        <h2>%s</h2>
        <p>%s</p>
        <div class="line"></div>
      </div>
      <div class="grid grid-6 gap-16">%s
      </div>
    </div>
  </section>`,
		propString(p, "title", "تسوق حسب القسم"),
		propString(p, "subtitle", "اختر من تشكيلتنا المتنوعة"),
		cards.String())
}

func renderProducts(p map[string]any, storeType string) string {
	products := productsFromProps(p)
	if len(products) == 0 {
		products = ProductsFor(storeType)
	}
	count := propInt(p, "count", 8)
	if count < 0 {
		count = 0
	}
	if count < len(products) {
		products = products[:count]
	}
	var cards strings.Builder
	for _, pr := range products {
		badge := ""
		if pr.Badge != "" {
			bg := "var(--a)"
			if strings.Contains(pr.Badge, "خصم") {
				bg = "#ff4757"
			}
			badge = fmt.Sprintf(`<span class="product-badge" style="background:%s">%s</span>`, bg, pr.Badge)
		}
		oldPrice := ""
		if pr.OldPrice != "" {
			oldPrice = fmt.Sprintf(`<span class="product-old-price">%s ر.س</span>`, pr.OldPrice)
		}
		fmt.Fprintf(&cards, `
          <div class="product-card">
            %s
            <div class="product-img" style="background:%s">
              %s
              <div class="product-actions">
                <button class="product-action-btn" title="أضف للسلة">🛒</button>
                <button class="product-action-btn" title="المفضلة">♡</button>
                <button class="product-action-btn" title="معاينة">👁</button>
              </div>
            </div>
            <div class="product-info">
              <div class="product-name">%s</div>
              <div class="flex items-center gap-8">
                <span class="product-price">%s ر.س</span>
                %s
              </div>
            </div>
          </div>`, badge, pr.Gradient, pr.Emoji, pr.Name, pr.Price, oldPrice)
	}
	return fmt.Sprintf(`
  <section class="section" id="products" data-section-type="products" data-anim>
    <div class="container">
      <div class="section-header">
        <h2>%s</h2>
        <p>%s</p>
        <div class="line"></div>
      </div>
      <div class="grid grid-4">%s
      </div>
      <div class="text-center mt-32">
        <a href="#" class="btn btn-o">عرض جميع المنتجات ←</a>
      </div>
    </div>
  </section>`,
		propString(p, "title", "منتجات مميزة"),
		propString(p, "subtitle", "اكتشف أحدث المنتجات المختارة بعناية"),
		cards.String())
}

func renderProductsFeatured(p map[string]any, storeType string) string {
	products := productsFromProps(p)
	if len(products) == 0 {
		products = ProductsFor(storeType)
	}
	main := products[0]
	side := products[1:]
	if len(side) > 3 {
		side = side[:3]
	}

	mainBadge := ""
	if main.Badge != "" {
		mainBadge = fmt.Sprintf(`<span class="product-badge" style="background:var(--a)">%s</span>`, main.Badge)
	}
	editorBadge := main.Badge
	if editorBadge == "" {
		editorBadge = "⭐ اختيار المحرر"
	}
	oldPrice := ""
	if main.OldPrice != "" {
		oldPrice = fmt.Sprintf(`<span class="text-xl text-sec" style="text-decoration:line-through">%s ر.س</span>`, main.OldPrice)
	}
	var sideCards strings.Builder
	for _, pr := range side {
		fmt.Fprintf(&sideCards, `
              <div class="card" style="cursor:pointer">
                <div style="height:100px;background:%s;display:flex;align-items:center;justify-content:center;font-size:2rem">%s</div>
                <div class="p-16">
                  <div style="font-size:.85rem;font-weight:600;margin-bottom:4px">%s</div>
                  <div class="text-primary font-bold">%s ر.س</div>
                </div>
              </div>`, pr.Gradient, pr.Emoji, pr.Name, pr.Price)
	}
	return fmt.Sprintf(`
  <section class="section" data-section-type="products-featured" data-anim>
    <div class="container">
      <div class="section-header">
        <h2>%s</h2>
        <p>%s</p>
        <div class="line"></div>
      </div>
      <div class="grid grid-2 items-center" style="gap:40px">
        <div class="card" style="padding:0;overflow:hidden">
          <div style="height:400px;background:%s;display:flex;align-items:center;justify-content:center;font-size:6rem;position:relative">
            %s
            %s
          </div>
        </div>
        <div>
          <div class="badge badge-a mb-16">%s</div>
          <h3 class="text-3xl font-black mb-12">%s</h3>
          <p class="text-sec mb-24 leading-relaxed" style="font-size:1.05rem">منتج استثنائي بجودة فائقة. مصمم بعناية لتلبية أعلى المعايير وتجاوز توقعاتك. احصل عليه الآن واستمتع بتجربة فريدة.</p>
          <div class="flex items-center gap-16 mb-24">
            <span class="text-3xl font-black text-primary">%s ر.س</span>
            %s
          </div>
          <a href="#" class="btn btn-p btn-lg">أضف للسلة 🛒</a>
          <div class="grid grid-3 mt-32" style="gap:16px">%s
          </div>
        </div>
      </div>
    </div>
  </section>`,
		propString(p, "title", "منتج مميز"),
		propString(p, "subtitle", "اختيارنا لهذا الأسبوع"),
		main.Gradient, main.Emoji, mainBadge, editorBadge, main.Name, main.Price, oldPrice, sideCards.String())
}

func renderFeatures(p map[string]any, storeType string) string {
	features := featuresFromProps(p)
	if len(features) == 0 {
		features = FeaturesFor(storeType)
	}
	var cards strings.Builder
	for _, f := range features {
		fmt.Fprintf(&cards, `
          <div class="feature-card">
            <div class="feature-icon">%s</div>
            <div class="feature-title">%s</div>
            <div class="feature-desc">%s</div>
          </div>`, f.Icon, f.Title, f.Desc)
	}
	return fmt.Sprintf(`
  <section class="section" id="features" style="background:var(--sf)" data-section-type="features" data-anim>
    <div class="container">
      <div class="section-header">
        <h2>%s</h2>
        <p>%s</p>
        <div class="line"></div>
      </div>
      <div class="grid grid-4">%s
      </div>
    </div>
  </section>`,
		propString(p, "title", "لماذا تختارنا؟"),
		propString(p, "subtitle", "نقدم لك تجربة تسوق لا مثيل لها"),
		cards.String())
}

func renderTestimonials(p map[string]any) string {
	testimonials := testimonialsFromProps(p)
	if len(testimonials) == 0 {
		testimonials = Testimonials()[:3]
	}
	var cards strings.Builder
	for _, t := range testimonials {
		stars := strings.Repeat("★", t.Rating) + strings.Repeat("☆", 5-t.Rating)
		fmt.Fprintf(&cards, `
          <div class="testimonial-card">
            <div class="stars">%s</div>
            <div class="testimonial-text">%s</div>
            <div class="testimonial-author">
              <div class="testimonial-avatar">%s</div>
              <div>
                <div class="testimonial-name">%s</div>
                <div class="testimonial-role">%s</div>
              </div>
            </div>
          </div>`, stars, t.Text, t.Initials, t.Name, t.Role)
	}
	return fmt.Sprintf(`
  <section class="section" data-section-type="testimonials" data-anim>
    <div class="container">
      <div class="section-header">
        <h2>%s</h2>
        <p>%s</p>
        <div class="line"></div>
      </div>
      <div class="grid grid-3">%s
      </div>
    </div>
  </section>`,
		propString(p, "title", "آراء عملائنا"),
		propString(p, "subtitle", "ثقة أكثر من 10,000 عميل سعيد"),
		cards.String())
}

func renderNewsletter(p map[string]any) string {
	return fmt.Sprintf(`
  <section class="section-sm" data-section-type="newsletter" data-anim>
    <div class="container">
      <div class="newsletter-box">
        <h3>%s</h3>
        <p>%s</p>
        <div class="newsletter-form">
          <input type="email" class="newsletter-input" placeholder="أدخل بريدك الإلكتروني" dir="rtl">
          <button class="newsletter-btn btn-w">%s</button>
        </div>
      </div>
    </div>
  </section>`,
		propString(p, "title", "اشترك في نشرتنا البريدية"),
		propString(p, "subtitle", "احصل على أحدث العروض والمنتجات الجديدة مباشرة في بريدك"),
		propString(p, "btnText", "اشترك الآن"))
}

func renderBanner(p map[string]any) string {
	return fmt.Sprintf(`
  <div class="promo-banner" data-section-type="banner">
    %s %s
    <a href="#">تسوق الآن</a>
  </div>`,
		propString(p, "emoji", "🎉"),
		propString(p, "text", "خصم 30% على جميع المنتجات — استخدم كود: SAVE30"))
}

type stat struct {
	value, label string
}

func renderStats() string {
	stats := []stat{
		{"+10K", "عميل سعيد"},
		{"+500", "منتج متوفر"},
		{"+50K", "طلب منجز"},
		{"4.9", "تقييم العملاء"},
	}
	var items strings.Builder
	for _, s := range stats {
		fmt.Fprintf(&items, `
          <div class="stat-item">
            <div class="stat-value">%s</div>
            <div class="stat-label">%s</div>
          </div>`, s.value, s.label)
	}
	return fmt.Sprintf(`
  <section class="section-sm" style="background:var(--sf)" data-section-type="stats" data-anim>
    <div class="container">
      <div class="grid grid-4">%s
      </div>
    </div>
  </section>`, items.String())
}

func renderBrands(p map[string]any) string {
	brands := propStrings(p, "brands")
	if len(brands) == 0 {
		brands = []string{"Apple", "Samsung", "Nike", "Adidas", "Chanel", "Dior", "Gucci", "Louis Vuitton"}
	}
	var row strings.Builder
	for _, b := range brands {
		fmt.Fprintf(&row, `<span class="brand-item">%s</span>`, b)
	}
	return fmt.Sprintf(`
  <section class="section-sm" data-section-type="brands" data-anim>
    <div class="container">
      <div class="section-header">
        <h2>%s</h2>
        <div class="line"></div>
      </div>
      <div class="brands-row">
        %s
      </div>
    </div>
  </section>`, propString(p, "title", "علاماتنا التجارية"), row.String())
}

type offer struct {
	emoji, title, desc, tag, price, gradient string
}

func renderOffers(p map[string]any) string {
	offers := []offer{
		{"🔥", "تخفيضات الموسم", "خصومات تصل حتى 50% على آخر مجموعة", "عرض محدود", "يبدأ من 99 ر.س", "linear-gradient(135deg, #e74c3c, #c0392b)"},
		{"⭐", "منتجات VIP", "منتجات حصرية لأعضاء النادي فقط", "حصري", "يبدأ من 199 ر.س", "linear-gradient(135deg, #8e44ad, #6c3483)"},
		{"🎁", "اشترِ 2 واحصل على 1", "عرض خاص على منتجات مختارة", "أكثر توفيراً", "وفر حتى 300 ر.س", "linear-gradient(135deg, #27ae60, #1e8449)"},
	}
	var cards strings.Builder
	for _, o := range offers {
		fmt.Fprintf(&cards, `
          <div class="offer-card" style="background:%s">
            <span class="offer-tag">%s</span>
            <span class="offer-emoji">%s</span>
            <div class="offer-title">%s</div>
            <div class="offer-desc">%s</div>
            <div class="offer-price">%s</div>
            <a href="#" class="btn btn-w btn-sm mt-16">اكتشف العرض ←</a>
          </div>`, o.gradient, o.tag, o.emoji, o.title, o.desc, o.price)
	}
	return fmt.Sprintf(`
  <section class="section" data-section-type="offers" data-anim>
    <div class="container">
      <div class="section-header">
        <h2>%s</h2>
        <p>%s</p>
        <div class="line"></div>
      </div>
      <div class="grid grid-3">%s
      </div>
    </div>
  </section>`,
		propString(p, "title", "🔥 عروض لا تفوّت"),
		propString(p, "subtitle", "عروض محدودة — اغتنم الفرصة قبل النفاد"),
		cards.String())
}

func renderCountdown(p map[string]any) string {
	return fmt.Sprintf(`
  <section class="section-sm" data-section-type="countdown" data-anim>
    <div class="container">
      <div class="countdown-section">
        <div class="badge" style="background:rgba(255,255,255,.15);color:#fff;backdrop-filter:blur(10px);margin-bottom:16px;display:inline-block">⏰ عرض لفترة محدودة</div>
        <h2 class="text-3xl font-black mb-8">%s</h2>
        <p class="opacity-80">%s</p>
        <div class="countdown-grid">
          <div class="countdown-item"><span class="countdown-value">03</span><span class="countdown-label">أيام</span></div>
          <div class="countdown-item"><span class="countdown-value">12</span><span class="countdown-label">ساعة</span></div>
          <div class="countdown-item"><span class="countdown-value">45</span><span class="countdown-label">دقيقة</span></div>
          <div class="countdown-item"><span class="countdown-value">28</span><span class="countdown-label">ثانية</span></div>
        </div>
        <a href="#" class="btn btn-w btn-lg">تسوق العروض الآن ←</a>
      </div>
    </div>
  </section>`,
		propString(p, "title", "تخفيضات نهاية الموسم"),
		propString(p, "subtitle", "خصم يصل إلى 70% — ينتهي قريباً!"))
}

func renderGallery(p map[string]any, storeType string) string {
	icons, ok := galleryEmojiSets[storeType]
	if !ok {
		icons = galleryEmojiSets["default"]
	}
	var items strings.Builder
	for i, icon := range icons {
		fmt.Fprintf(&items, `
          <div class="gallery-item" style="background:%s">
            %s
          </div>`, galleryGradients[i%len(galleryGradients)], icon)
	}
	return fmt.Sprintf(`
  <section class="section" data-section-type="gallery" data-anim>
    <div class="container">
      <div class="section-header">
        <h2>%s</h2>
        <p>%s</p>
        <div class="line"></div>
      </div>
      <div class="gallery-grid">%s
      </div>
    </div>
  </section>`,
		propString(p, "title", "📸 معرض الصور"),
		propString(p, "subtitle", "لمحات من أجمل منتجاتنا"),
		items.String())
}

func renderCTA(p map[string]any) string {
	return fmt.Sprintf(`
  <section class="section-sm" data-section-type="cta" data-anim>
    <div class="container">
      <div class="cta-section">
        <h2>%s</h2>
        <p>%s</p>
        <div class="flex justify-center gap-16" style="position:relative;z-index:1">
          <a href="#" class="btn btn-w btn-lg">%s ←</a>
          <a href="#" class="btn btn-lg" style="background:rgba(255,255,255,.15);color:#fff;border:1px solid rgba(255,255,255,.3)">%s</a>
        </div>
      </div>
    </div>
  </section>`,
		propString(p, "title", "جاهز تبدأ التسوق؟"),
		propString(p, "subtitle", "آلاف المنتجات بانتظارك — ابدأ الآن واستمتع بعروض حصرية"),
		propString(p, "cta", "تسوق الآن"),
		propString(p, "cta2", "تواصل معنا"))
}

type faqEntry struct {
	q, a string
}

func renderFAQ(p map[string]any) string {
	faqs := []faqEntry{
		{"كم مدة التوصيل؟", "التوصيل داخل المدن الرئيسية خلال 24 ساعة، وباقي المناطق خلال 2-5 أيام عمل. نوفر أيضاً خيار التوصيل السريع."},
		{"هل يمكنني إرجاع المنتج؟", "نعم، يمكنك إرجاع أي منتج خلال 14 يوم من تاريخ الاستلام بدون أي شروط. سنقوم بإرسال مندوب لاستلام المنتج."},
		{"ما طرق الدفع المتاحة؟", "نقبل الدفع بالبطاقات البنكية (فيزا/ماستركارد)، مدى، أبل باي، تحويل بنكي، والدفع عند الاستلام في بعض المناطق."},
		{"هل المنتجات أصلية؟", "جميع منتجاتنا أصلية 100% ومستوردة مباشرة من الشركات المصنعة. نقدم شهادة أصالة مع كل منتج."},
		{"كيف أتابع طلبي؟", `بعد تأكيد طلبك، ستصلك رسالة على الإيميل والجوال تحتوي رقم التتبع. يمكنك متابعة حالة طلبك من صفحة "طلباتي" أو عبر رابط التتبع.`},
	}
	var items strings.Builder
	for _, f := range faqs {
		fmt.Fprintf(&items, `
        <div class="faq-item">
          <div class="faq-q">
            <span>%s</span>
            <span class="faq-icon">+</span>
          </div>
          <div class="faq-a">%s</div>
        </div>`, f.q, f.a)
	}
	return fmt.Sprintf(`
  <section class="section" style="background:var(--sf)" data-section-type="faq" data-anim>
    <div class="container" style="max-width:800px">
      <div class="section-header">
        <h2>%s</h2>
        <p>%s</p>
        <div class="line"></div>
      </div>%s
    </div>
  </section>`,
		propString(p, "title", "الأسئلة الشائعة"),
		propString(p, "subtitle", "إجابات لأكثر الأسئلة شيوعاً"),
		items.String())
}

func renderContact(p map[string]any, storeName string) string {
	domain := strings.ToLower(strings.Join(strings.Fields(storeName), ""))
	return fmt.Sprintf(`
  <section class="section" data-section-type="contact" data-anim>
    <div class="container">
      <div class="section-header">
        <h2>%s</h2>
        <p>%s</p>
        <div class="line"></div>
      </div>
      <div class="contact-grid">
        <div>
          <div class="contact-info-item">
            <div class="contact-icon">📍</div>
            <div><strong>العنوان</strong><br><span class="text-sec">الرياض، المملكة العربية السعودية</span></div>
          </div>
          <div class="contact-info-item">
            <div class="contact-icon">📧</div>
            <div><strong>البريد الإلكتروني</strong><br><span class="text-sec">info@%s.com</span></div>
          </div>
          <div class="contact-info-item">
            <div class="contact-icon">📞</div>
            <div><strong>الهاتف</strong><br><span class="text-sec" dir="ltr">+966 50 000 0000</span></div>
          </div>
          <div class="contact-info-item">
            <div class="contact-icon">⏰</div>
            <div><strong>أوقات العمل</strong><br><span class="text-sec">السبت - الخميس: 9 صباحاً - 10 مساءً</span></div>
          </div>
        </div>
        <div class="contact-form">
          <div class="grid grid-2" style="gap:12px">
            <input type="text" placeholder="الاسم الكامل" dir="rtl">
            <input type="email" placeholder="البريد الإلكتروني" dir="rtl">
          </div>
          <input type="text" placeholder="الموضوع" dir="rtl">
          <textarea placeholder="رسالتك..." dir="rtl"></textarea>
          <button class="btn btn-p" style="width:100%%">إرسال الرسالة ✉️</button>
        </div>
      </div>
    </div>
  </section>`,
		propString(p, "title", "تواصل معنا"),
		propString(p, "subtitle", "نسعد بخدمتك — تواصل معنا في أي وقت"),
		domain)
}

func renderFooter(storeName string) string {
	return fmt.Sprintf(`
  <footer class="store-footer" data-section-type="footer">
    <div class="container">
      <div class="footer-grid">
        <div class="footer-brand">
          <span class="logo">%s</span>
          <p>نسعى لتقديم أفضل تجربة تسوق إلكتروني في المملكة العربية السعودية. نختار لكم أجود المنتجات بعناية فائقة.</p>
          <div class="footer-social">
            <span class="social-icon">𝕏</span>
            <span class="social-icon">📷</span>
            <span class="social-icon">📘</span>
            <span class="social-icon">▶</span>
            <span class="social-icon">💬</span>
          </div>
        </div>
        <div class="footer-col">
          <h4>المتجر</h4>
          <a href="#">جميع المنتجات</a>
          <a href="#">المجموعات</a>
          <a href="#">العروض</a>
          <a href="#">وصل حديثاً</a>
          <a href="#">الأكثر مبيعاً</a>
        </div>
        <div class="footer-col">
          <h4>خدمة العملاء</h4>
          <a href="#">تتبع الطلب</a>
          <a href="#">سياسة الإرجاع</a>
          <a href="#">الشحن والتوصيل</a>
          <a href="#">الأسئلة الشائعة</a>
          <a href="#">تواصل معنا</a>
        </div>
        <div class="footer-col">
          <h4>عن المتجر</h4>
          <a href="#">من نحن</a>
          <a href="#">سياسة الخصوصية</a>
          <a href="#">الشروط والأحكام</a>
          <a href="#">وظائف</a>
          <a href="#">المدونة</a>
        </div>
      </div>
      <div class="footer-bottom">
        <p>© 2026 %s — جميع الحقوق محفوظة ❤️</p>
        <div class="payment-icons">
          <span class="payment-icon">💳 Visa</span>
          <span class="payment-icon">💳 Mastercard</span>
          <span class="payment-icon">🏦 مدى</span>
          <span class="payment-icon">🍎 Apple Pay</span>
          <span class="payment-icon">💵 كاش</span>
        </div>
      </div>
    </div>
  </footer>`, storeName, storeName)
}

func renderSpacer() string {
	return `<div style="height:40px" data-section-type="spacer"></div>`
}
