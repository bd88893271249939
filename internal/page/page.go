// Package page assembles a complete standalone storefront document
// from a theme and an ordered list of sections.
package page

import (
	"fmt"
	"strings"

	"github.com/matjar-app/matjar/internal/section"
	"github.com/matjar-app/matjar/internal/theme"
)

// behaviorScript drives the scroll-reveal animation and the FAQ
// accordion. It is embedded verbatim in every document.
const behaviorScript = `<script>
  // Scroll animation observer
  const observer = new IntersectionObserver((entries) => {
    entries.forEach(entry => {
      if (entry.isIntersecting) {
        entry.target.classList.add('visible');
        observer.unobserve(entry.target);
      }
    });
  }, { threshold: 0.1 });
  document.querySelectorAll('[data-anim]').forEach(el => observer.observe(el));

  // FAQ toggle
  document.querySelectorAll('.faq-q').forEach(q => {
    q.addEventListener('click', () => {
      const item = q.parentElement;
      const answer = item.querySelector('.faq-a');
      const icon = q.querySelector('.faq-icon');
      const isOpen = answer.style.display !== 'none';
      document.querySelectorAll('.faq-a').forEach(a => a.style.display = 'none');
      document.querySelectorAll('.faq-icon').forEach(i => i.textContent = '+');
      if (!isOpen) {
        answer.style.display = 'block';
        icon.textContent = '−';
      } else {
        answer.style.display = 'none';
        icon.textContent = '+';
      }
    });
  });
  // Initialize FAQ: hide all answers
  document.querySelectorAll('.faq-a').forEach(a => a.style.display = 'none');
</script>`

// BuildDocument renders a full RTL Arabic HTML page: head with the
// Tajawal font and the inline stylesheet, the section fragments in
// input order, and the fixed behavior script. The output is a pure
// function of its inputs.
func BuildDocument(storeName, storeType string, th theme.Theme, sections []section.Config) string {
	css := theme.Stylesheet(th)
	rctx := section.Context{StoreName: storeName, StoreType: storeType}

	fragments := make([]string, len(sections))
	for i, s := range sections {
		fragments[i] = section.Render(s, rctx)
	}
	body := strings.Join(fragments, "\n")

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="ar" dir="rtl">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>%s</title>
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
  <link href="https://fonts.googleapis.com/css2?family=Tajawal:wght@300;400;500;700;800;900&display=swap" rel="stylesheet">
  <style>%s</style>
</head>
<body>
%s
%s
</body>
</html>`, storeName, css, body, behaviorScript)
}
