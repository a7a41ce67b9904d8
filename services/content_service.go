package services

import (
	"oporun-backend/content"

	"github.com/gofiber/fiber/v2"
)

// ContentService serves the static bilingual marketing content. Locale comes
// from the ?locale query parameter when present, otherwise from the same
// Accept-Language resolution the email pipeline uses.
type ContentService struct{}

func NewContentService() *ContentService {
	return &ContentService{}
}

func (s *ContentService) resolveLocale(c *fiber.Ctx) string {
	if locale := c.Query("locale"); locale == "pt" || locale == "en" {
		return locale
	}
	return ResolveLocale(c.Get(fiber.HeaderAcceptLanguage))
}

// ListBlogPosts returns all posts in the requested locale, excerpts only.
func (s *ContentService) ListBlogPosts(c *fiber.Ctx) error {
	locale := s.resolveLocale(c)

	posts := content.Posts()
	res := make([]content.LocalizedPost, len(posts))
	for i, p := range posts {
		res[i] = p.Localize(locale, false)
	}

	return c.JSON(fiber.Map{
		"locale": locale,
		"posts":  res,
	})
}

// GetBlogPost returns one post, with full content, by slug.
func (s *ContentService) GetBlogPost(c *fiber.Ctx) error {
	post, ok := content.PostBySlug(c.Params("slug"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "post not found",
		})
	}

	locale := s.resolveLocale(c)
	return c.JSON(post.Localize(locale, true))
}
