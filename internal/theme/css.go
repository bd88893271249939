package theme

// baseCSS is the page stylesheet with token placeholders. The layout
// system (grids, buttons, cards, navbar, product cards, footer) is
// shared by every template; only the custom properties change.
const baseCSS = `
    :root {
      --p: {primary};
      --pd: {primary-dark};
      --a: {accent};
      --bg: {bg};
      --sf: {surface};
      --sfa: {surface-alt};
      --tx: {text};
      --ts: {text-secondary};
      --cb: {card-bg};
      --br: {border};
      --r: {radius};
      --hg: {hero-gradient};
    }
    *{margin:0;padding:0;box-sizing:border-box}
    html{scroll-behavior:smooth}
    body{font-family:'Tajawal',sans-serif;background:var(--bg);color:var(--tx);line-height:1.7;-webkit-font-smoothing:antialiased}
    img{max-width:100%;display:block}
    a{text-decoration:none;color:inherit;transition:color .3s}
    .container{max-width:1200px;margin:0 auto;padding:0 24px}
    .section{padding:80px 0}
    .section-sm{padding:50px 0}

    /* Grid System */
    .grid{display:grid;gap:24px}
    .grid-2{grid-template-columns:repeat(2,1fr)}
    .grid-3{grid-template-columns:repeat(3,1fr)}
    .grid-4{grid-template-columns:repeat(4,1fr)}
    .grid-6{grid-template-columns:repeat(6,1fr)}
    .grid-auto{grid-template-columns:repeat(auto-fill,minmax(260px,1fr))}

    /* Flex */
    .flex{display:flex}.flex-col{flex-direction:column}
    .items-center{align-items:center}.justify-center{justify-content:center}
    .justify-between{justify-content:space-between}.gap-8{gap:8px}
    .gap-12{gap:12px}.gap-16{gap:16px}.gap-20{gap:20px}.gap-24{gap:24px}.gap-32{gap:32px}
    .flex-wrap{flex-wrap:wrap}

    /* Typography */
    .text-center{text-align:center}
    .text-xs{font-size:.75rem}.text-sm{font-size:.875rem}.text-base{font-size:1rem}
    .text-lg{font-size:1.125rem}.text-xl{font-size:1.25rem}.text-2xl{font-size:1.5rem}
    .text-3xl{font-size:2rem}.text-4xl{font-size:2.5rem}.text-5xl{font-size:3.5rem}
    .font-light{font-weight:300}.font-normal{font-weight:400}.font-medium{font-weight:500}
    .font-semibold{font-weight:600}.font-bold{font-weight:700}.font-black{font-weight:900}
    .leading-tight{line-height:1.3}.leading-relaxed{line-height:1.8}
    .uppercase{text-transform:uppercase}.tracking-wide{letter-spacing:.05em}

    /* Colors */
    .text-primary{color:var(--p)}.text-accent{color:var(--a)}
    .text-white{color:#fff}.text-sec{color:var(--ts)}
    .bg-primary{background:var(--p)}.bg-accent{background:var(--a)}.bg-surface{background:var(--sf)}
    .bg-surface-alt{background:var(--sfa)}
    .opacity-80{opacity:.8}.opacity-60{opacity:.6}.opacity-50{opacity:.5}

    /* Spacing */
    .mb-4{margin-bottom:4px}.mb-8{margin-bottom:8px}.mb-12{margin-bottom:12px}
    .mb-16{margin-bottom:16px}.mb-24{margin-bottom:24px}.mb-32{margin-bottom:32px}
    .mb-40{margin-bottom:40px}.mb-48{margin-bottom:48px}
    .mt-16{margin-top:16px}.mt-24{margin-top:24px}.mt-32{margin-top:32px}
    .p-16{padding:16px}.p-24{padding:24px}.p-32{padding:32px}
    .py-8{padding-top:8px;padding-bottom:8px}.py-16{padding-top:16px;padding-bottom:16px}
    .py-24{padding-top:24px;padding-bottom:24px}.px-16{padding-left:16px;padding-right:16px}
    .px-24{padding-left:24px;padding-right:24px}.px-32{padding-left:32px;padding-right:32px}

    /* Components */
    .btn{display:inline-flex;align-items:center;gap:8px;padding:14px 32px;border-radius:var(--r);font-weight:700;font-size:1rem;cursor:pointer;border:none;transition:all .3s;font-family:'Tajawal',sans-serif;text-decoration:none}
    .btn:hover{transform:translateY(-2px)}
    .btn-p{background:var(--p);color:#fff;box-shadow:0 4px 15px rgba(0,0,0,.15)}
    .btn-p:hover{background:var(--pd);box-shadow:0 8px 25px rgba(0,0,0,.25)}
    .btn-o{background:transparent;border:2px solid var(--p);color:var(--p)}
    .btn-o:hover{background:var(--p);color:#fff}
    .btn-w{background:#fff;color:var(--p);box-shadow:0 4px 15px rgba(0,0,0,.1)}
    .btn-w:hover{box-shadow:0 8px 25px rgba(0,0,0,.2)}
    .btn-a{background:var(--a);color:#fff;box-shadow:0 4px 15px rgba(0,0,0,.15)}
    .btn-a:hover{box-shadow:0 8px 25px rgba(0,0,0,.25)}
    .btn-sm{padding:10px 24px;font-size:.875rem}
    .btn-lg{padding:18px 40px;font-size:1.125rem}

    /* Cards */
    .card{background:var(--cb);border-radius:var(--r);overflow:hidden;transition:all .4s cubic-bezier(.4,0,.2,1);border:1px solid var(--br)}
    .card:hover{transform:translateY(-8px);box-shadow:0 20px 40px rgba(0,0,0,.12)}

    /* Badge */
    .badge{display:inline-block;padding:4px 12px;border-radius:50px;font-size:.75rem;font-weight:600}
    .badge-p{background:var(--p);color:#fff}
    .badge-a{background:var(--a);color:#fff}
    .badge-sale{background:#ff4757;color:#fff}
    .badge-new{background:var(--a);color:#fff}

    /* Navbar */
    .navbar{position:sticky;top:0;z-index:100;background:var(--cb);border-bottom:1px solid var(--br);backdrop-filter:blur(20px);-webkit-backdrop-filter:blur(20px)}
    .navbar-inner{display:flex;align-items:center;justify-content:space-between;padding:16px 24px;max-width:1200px;margin:0 auto}
    .navbar .logo{font-size:1.5rem;font-weight:900;color:var(--p);letter-spacing:-.02em}
    .nav-links{display:flex;gap:32px;align-items:center}
    .nav-links a{color:var(--ts);font-weight:500;font-size:.925rem;transition:color .3s;position:relative}
    .nav-links a:hover{color:var(--p)}
    .nav-links a::after{content:'';position:absolute;bottom:-4px;right:0;width:0;height:2px;background:var(--p);transition:width .3s}
    .nav-links a:hover::after{width:100%}
    .nav-icons{display:flex;gap:16px;align-items:center}
    .nav-icon{width:40px;height:40px;border-radius:50%;display:flex;align-items:center;justify-content:center;background:var(--sfa);color:var(--ts);transition:all .3s;cursor:pointer;border:none;font-size:1.1rem}
    .nav-icon:hover{background:var(--p);color:#fff;transform:scale(1.05)}

    /* Product Card */
    .product-card{background:var(--cb);border-radius:var(--r);overflow:hidden;transition:all .4s cubic-bezier(.4,0,.2,1);border:1px solid var(--br);position:relative}
    .product-card:hover{transform:translateY(-8px);box-shadow:0 20px 40px rgba(0,0,0,.12)}
    .product-img{height:250px;display:flex;align-items:center;justify-content:center;font-size:4rem;position:relative;overflow:hidden}
    .product-img::after{content:'';position:absolute;inset:0;background:linear-gradient(to top,rgba(0,0,0,.03),transparent);pointer-events:none}
    .product-info{padding:20px}
    .product-name{font-weight:600;font-size:1rem;margin-bottom:8px;color:var(--tx)}
    .product-price{font-weight:800;font-size:1.2rem;color:var(--p)}
    .product-old-price{font-size:.875rem;color:var(--ts);text-decoration:line-through;margin-right:8px}
    .product-badge{position:absolute;top:12px;right:12px;padding:6px 14px;border-radius:50px;font-size:.75rem;font-weight:700;color:#fff;z-index:1}
    .product-actions{position:absolute;bottom:0;left:0;right:0;padding:12px;display:flex;gap:8px;justify-content:center;opacity:0;transform:translateY(10px);transition:all .3s}
    .product-card:hover .product-actions{opacity:1;transform:translateY(0)}
    .product-action-btn{width:40px;height:40px;border-radius:50%;background:var(--cb);border:1px solid var(--br);display:flex;align-items:center;justify-content:center;cursor:pointer;transition:all .3s;font-size:1rem;color:var(--tx)}
    .product-action-btn:hover{background:var(--p);color:#fff;border-color:var(--p)}

    /* Category Card */
    .cat-card{border-radius:var(--r);overflow:hidden;position:relative;cursor:pointer;transition:all .4s}
    .cat-card:hover{transform:translateY(-6px) scale(1.02)}
    .cat-inner{padding:32px 20px;text-align:center;color:#fff;position:relative;z-index:1}
    .cat-emoji{font-size:2.5rem;margin-bottom:12px;display:block}
    .cat-name{font-weight:700;font-size:1.1rem;margin-bottom:4px}
    .cat-count{font-size:.8rem;opacity:.8}

    /* Feature */
    .feature-card{text-align:center;padding:40px 24px;border-radius:var(--r);transition:all .3s;background:var(--cb);border:1px solid var(--br)}
    .feature-card:hover{border-color:var(--p);transform:translateY(-4px)}
    .feature-icon{width:64px;height:64px;border-radius:16px;display:flex;align-items:center;justify-content:center;margin:0 auto 20px;font-size:1.8rem;background:var(--sfa)}
    .feature-title{font-weight:700;font-size:1.1rem;margin-bottom:8px}
    .feature-desc{color:var(--ts);font-size:.9rem;line-height:1.7}

    /* Testimonial */
    .testimonial-card{background:var(--cb);border:1px solid var(--br);border-radius:var(--r);padding:32px;position:relative;transition:all .3s}
    .testimonial-card:hover{border-color:var(--p);transform:translateY(-4px)}
    .testimonial-card::before{content:'"';position:absolute;top:16px;left:24px;font-size:4rem;color:var(--p);opacity:.15;font-family:serif;line-height:1}
    .testimonial-text{font-size:.95rem;line-height:1.8;color:var(--ts);margin-bottom:20px;padding-right:8px}
    .testimonial-author{display:flex;align-items:center;gap:12px}
    .testimonial-avatar{width:44px;height:44px;border-radius:50%;background:var(--p);color:#fff;display:flex;align-items:center;justify-content:center;font-weight:700;font-size:.85rem}
    .testimonial-name{font-weight:700;font-size:.925rem}
    .testimonial-role{font-size:.8rem;color:var(--ts)}
    .stars{color:#ffc107;font-size:.9rem;margin-bottom:12px;letter-spacing:2px}

    /* Newsletter */
    .newsletter-box{background:var(--hg);padding:60px 40px;border-radius:var(--r);text-align:center;color:#fff;position:relative;overflow:hidden}
    .newsletter-box::before{content:'';position:absolute;top:-50%;right:-30%;width:60%;height:200%;background:rgba(255,255,255,.05);border-radius:50%;transform:rotate(-15deg)}
    .newsletter-box h3{font-size:1.75rem;font-weight:800;margin-bottom:12px;position:relative;z-index:1}
    .newsletter-box p{opacity:.85;margin-bottom:24px;position:relative;z-index:1}
    .newsletter-form{display:flex;gap:12px;max-width:480px;margin:0 auto;position:relative;z-index:1}
    .newsletter-input{flex:1;padding:14px 20px;border-radius:var(--r);border:none;font-size:1rem;font-family:'Tajawal',sans-serif;outline:none}
    .newsletter-btn{padding:14px 32px;border-radius:var(--r);border:none;font-weight:700;cursor:pointer;font-family:'Tajawal',sans-serif;transition:all .3s}

    /* Stats */
    .stat-item{text-align:center;padding:32px 16px}
    .stat-value{font-size:2.5rem;font-weight:900;color:var(--p);margin-bottom:4px;letter-spacing:-.02em}
    .stat-label{font-size:.9rem;color:var(--ts);font-weight:500}

    /* Hero */
    .hero{position:relative;overflow:hidden}
    .hero-overlay{position:absolute;inset:0;z-index:0}
    .hero-content{position:relative;z-index:1}
    .hero-shapes{position:absolute;inset:0;pointer-events:none;z-index:0;overflow:hidden}
    .hero-circle{position:absolute;border-radius:50%;opacity:.08;background:#fff}
    .hero h1{line-height:1.2;letter-spacing:-.02em}

    /* Banner */
    .promo-banner{background:var(--p);color:#fff;padding:16px 24px;text-align:center;font-weight:600;font-size:.95rem}
    .promo-banner a{color:#fff;text-decoration:underline;margin-right:12px;font-weight:700}

    /* Footer */
    .store-footer{background:var(--sf);border-top:1px solid var(--br);padding:60px 0 24px}
    .footer-grid{display:grid;grid-template-columns:2fr 1fr 1fr 1fr;gap:40px;padding-bottom:40px;border-bottom:1px solid var(--br)}
    .footer-brand .logo{font-size:1.5rem;font-weight:900;color:var(--p);margin-bottom:12px;display:block}
    .footer-brand p{color:var(--ts);font-size:.9rem;line-height:1.8;margin-bottom:20px}
    .footer-col h4{font-weight:700;margin-bottom:16px;color:var(--tx)}
    .footer-col a{display:block;color:var(--ts);font-size:.9rem;margin-bottom:10px;transition:color .3s}
    .footer-col a:hover{color:var(--p)}
    .footer-social{display:flex;gap:12px;margin-top:8px}
    .social-icon{width:40px;height:40px;border-radius:50%;background:var(--sfa);display:flex;align-items:center;justify-content:center;transition:all .3s;cursor:pointer;font-size:1.1rem;color:var(--ts)}
    .social-icon:hover{background:var(--p);color:#fff;transform:translateY(-2px)}
    .footer-bottom{padding-top:24px;display:flex;justify-content:space-between;align-items:center;flex-wrap:wrap;gap:16px}
    .footer-bottom p{color:var(--ts);font-size:.85rem}
    .payment-icons{display:flex;gap:12px;align-items:center}
    .payment-icon{padding:6px 14px;border-radius:8px;background:var(--sfa);font-size:.8rem;font-weight:600;color:var(--ts)}

    /* CTA Section */
    .cta-section{background:var(--hg);padding:80px 40px;text-align:center;color:#fff;position:relative;overflow:hidden;border-radius:var(--r)}
    .cta-section::before{content:'';position:absolute;top:-50%;left:-30%;width:60%;height:200%;background:rgba(255,255,255,.04);border-radius:50%}
    .cta-section h2{font-size:2.25rem;font-weight:800;margin-bottom:16px;position:relative;z-index:1}
    .cta-section p{font-size:1.1rem;opacity:.85;margin-bottom:32px;position:relative;z-index:1}

    /* Offers */
    .offer-card{border-radius:var(--r);padding:32px;position:relative;overflow:hidden;color:#fff;transition:all .4s}
    .offer-card:hover{transform:translateY(-6px);box-shadow:0 20px 40px rgba(0,0,0,.2)}
    .offer-tag{position:absolute;top:16px;left:16px;background:rgba(255,255,255,.2);backdrop-filter:blur(10px);padding:6px 16px;border-radius:50px;font-size:.8rem;font-weight:700}
    .offer-emoji{font-size:3rem;margin-bottom:16px;display:block}
    .offer-title{font-size:1.25rem;font-weight:800;margin-bottom:8px}
    .offer-desc{font-size:.9rem;opacity:.85;margin-bottom:20px}
    .offer-price{font-size:1.8rem;font-weight:900;margin-bottom:4px}

    /* Countdown */
    .countdown-section{background:var(--hg);padding:60px;border-radius:var(--r);text-align:center;color:#fff;position:relative;overflow:hidden}
    .countdown-grid{display:flex;justify-content:center;gap:24px;margin:32px 0}
    .countdown-item{background:rgba(255,255,255,.15);backdrop-filter:blur(10px);padding:20px 28px;border-radius:16px;min-width:90px}
    .countdown-value{font-size:2.5rem;font-weight:900;display:block;line-height:1}
    .countdown-label{font-size:.8rem;opacity:.7;margin-top:4px}

    /* FAQ */
    .faq-item{border:1px solid var(--br);border-radius:var(--r);overflow:hidden;margin-bottom:12px;transition:all .3s}
    .faq-item:hover{border-color:var(--p)}
    .faq-q{padding:20px 24px;font-weight:700;cursor:pointer;display:flex;justify-content:space-between;align-items:center;background:var(--cb)}
    .faq-a{padding:0 24px 20px;color:var(--ts);line-height:1.8;display:block}
    .faq-icon{transition:transform .3s;font-size:1.2rem;color:var(--p)}

    /* Trust Badges */
    .trust-badges{display:flex;justify-content:center;gap:40px;padding:24px;flex-wrap:wrap}
    .trust-badge{display:flex;align-items:center;gap:10px;color:var(--ts);font-size:.9rem;font-weight:500}
    .trust-badge-icon{font-size:1.5rem}

    /* Gallery  */
    .gallery-grid{display:grid;grid-template-columns:repeat(4,1fr);gap:12px}
    .gallery-item{border-radius:var(--r);overflow:hidden;aspect-ratio:1;display:flex;align-items:center;justify-content:center;font-size:3rem;transition:all .4s;cursor:pointer}
    .gallery-item:hover{transform:scale(1.05);box-shadow:0 12px 30px rgba(0,0,0,.15)}

    /* Brands */
    .brands-row{display:flex;justify-content:center;align-items:center;gap:48px;flex-wrap:wrap;padding:40px 0}
    .brand-item{padding:16px 32px;border-radius:12px;background:var(--sfa);font-weight:700;font-size:1.1rem;color:var(--ts);transition:all .3s;white-space:nowrap}
    .brand-item:hover{color:var(--p);transform:translateY(-2px)}

    /* Contact */
    .contact-grid{display:grid;grid-template-columns:1fr 1fr;gap:40px}
    .contact-info-item{display:flex;align-items:flex-start;gap:16px;margin-bottom:24px}
    .contact-icon{width:48px;height:48px;border-radius:12px;background:var(--sfa);display:flex;align-items:center;justify-content:center;font-size:1.3rem;flex-shrink:0}
    .contact-form input,.contact-form textarea{width:100%;padding:14px 20px;border-radius:var(--r);border:1px solid var(--br);background:var(--cb);color:var(--tx);font-family:'Tajawal',sans-serif;font-size:1rem;margin-bottom:12px;outline:none;transition:border-color .3s}
    .contact-form input:focus,.contact-form textarea:focus{border-color:var(--p)}
    .contact-form textarea{height:120px;resize:vertical}

    /* Scroll Animations */
    [data-anim]{opacity:0;transform:translateY(30px);transition:all .7s cubic-bezier(.4,0,.2,1)}
    [data-anim].visible{opacity:1;transform:translateY(0)}

    /* Section Title */
    .section-header{text-align:center;margin-bottom:48px}
    .section-header h2{font-size:2rem;font-weight:800;margin-bottom:12px;letter-spacing:-.01em}
    .section-header p{color:var(--ts);font-size:1.05rem;max-width:600px;margin:0 auto}
    .section-header .line{width:60px;height:4px;background:var(--p);border-radius:2px;margin:16px auto 0}

    /* Responsive */
    @media(max-width:1024px){
      .grid-4{grid-template-columns:repeat(2,1fr)}
      .grid-6{grid-template-columns:repeat(3,1fr)}
      .footer-grid{grid-template-columns:1fr 1fr}
      .contact-grid{grid-template-columns:1fr}
      .text-5xl{font-size:2.5rem}
      .text-4xl{font-size:2rem}
    }
    @media(max-width:768px){
      .section{padding:50px 0}
      .grid-2,.grid-3,.grid-4{grid-template-columns:1fr}
      .grid-6{grid-template-columns:repeat(2,1fr)}
      .nav-links{display:none}
      .newsletter-form{flex-direction:column}
      .hero{padding:60px 0!important}
      .footer-grid{grid-template-columns:1fr}
      .gallery-grid{grid-template-columns:repeat(2,1fr)}
      .countdown-grid{gap:12px}
      .countdown-item{padding:14px 18px;min-width:60px}
      .countdown-value{font-size:1.8rem}
      .trust-badges{gap:20px}
      .brands-row{gap:20px}
      .flex-mobile-col{flex-direction:column}
    }
    @media(max-width:480px){
      .grid-6{grid-template-columns:1fr 1fr}
      .container{padding:0 16px}
      .text-4xl{font-size:1.75rem}
      .text-3xl{font-size:1.5rem}
    }
`
