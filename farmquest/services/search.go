package services

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/farmquest-india/farmquest/farmquest/config"
	"github.com/farmquest-india/farmquest/farmquest/models"
	"github.com/farmquest-india/farmquest/farmquest/store"
)

// SearchService fuzzy-matches quests and learning articles. Matching runs
// over title plus category plus tags, so "water" hits both the drip
// irrigation quest and the water management article.
type SearchService struct {
	store *store.Store
}

type SearchResults struct {
	Quests   []models.Quest   `json:"quests"`
	Articles []models.Article `json:"articles"`
}

func NewSearchService(st *store.Store) *SearchService {
	return &SearchService{store: st}
}

// Search returns matches ranked by fuzzy score, best first. An empty query
// returns empty results rather than everything.
func (s *SearchService) Search(query string) SearchResults {
	query = strings.TrimSpace(query)
	if query == "" {
		return SearchResults{
			Quests:   []models.Quest{},
			Articles: []models.Article{},
		}
	}

	state := s.store.State()
	results := SearchResults{
		Quests:   matchQuests(query, state.Quests),
		Articles: matchArticles(query, state.Articles),
	}
	return results
}

func matchQuests(query string, quests []models.Quest) []models.Quest {
	haystack := make([]string, len(quests))
	for i, q := range quests {
		haystack[i] = questSearchText(q)
	}

	matches := fuzzy.Find(query, haystack)
	out := make([]models.Quest, 0, len(matches))
	for _, m := range matches {
		if len(out) == config.MaxSearchResults {
			break
		}
		out = append(out, quests[m.Index].Clone())
	}
	return out
}

func matchArticles(query string, articles []models.Article) []models.Article {
	haystack := make([]string, len(articles))
	for i, a := range articles {
		haystack[i] = articleSearchText(a)
	}

	matches := fuzzy.Find(query, haystack)
	out := make([]models.Article, 0, len(matches))
	for _, m := range matches {
		if len(out) == config.MaxSearchResults {
			break
		}
		out = append(out, articles[m.Index].Clone())
	}
	return out
}

func questSearchText(q models.Quest) string {
	return strings.ToLower(strings.Join([]string{
		q.Title, string(q.Category), string(q.Difficulty), q.Description,
	}, " "))
}

func articleSearchText(a models.Article) string {
	parts := []string{a.Title, a.Category, a.Author, a.Excerpt}
	parts = append(parts, a.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}
