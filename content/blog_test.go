package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostsHaveSlugs(t *testing.T) {
	posts := Posts()
	require.NotEmpty(t, posts)

	seen := map[string]bool{}
	for _, p := range posts {
		assert.NotEmpty(t, p.Slug, "post %d has no slug", p.ID)
		assert.False(t, seen[p.Slug], "duplicate slug %s", p.Slug)
		seen[p.Slug] = true
	}
}

func TestPostBySlug(t *testing.T) {
	post, ok := PostBySlug("como-melhorar-a-tua-tecnica-de-corrida")
	require.True(t, ok)
	assert.Equal(t, 1, post.ID)

	_, ok = PostBySlug("does-not-exist")
	assert.False(t, ok)
}

func TestLocalize(t *testing.T) {
	post, ok := PostBySlug("como-melhorar-a-tua-tecnica-de-corrida")
	require.True(t, ok)

	pt := post.Localize("pt", true)
	assert.Equal(t, "Como Melhorar a Tua Técnica de Corrida", pt.Title)
	assert.NotEmpty(t, pt.Content)

	en := post.Localize("en", false)
	assert.Equal(t, "How to Improve Your Running Technique", en.Title)
	assert.Empty(t, en.Content, "list view must not ship full content")
}
