// Package service contains the service layer for the Aethelgard Community API
package service

import (
	"strings"
	"time"

	"github.com/aethelgard/aethelgardapi/internal/models"
	"github.com/aethelgard/aethelgardapi/internal/repository"
	"github.com/aethelgard/aethelgardapi/pkg/utils/zaplogger"
)

const policyThreadTitle = "Política de Bom Comportamento"

var policyThreadContent = strings.Join([]string{
	"Mantenha a comunidade acolhedora e respeitosa. Ao participar do fórum e do chat, siga estas diretrizes:",
	"",
	"• Respeite todos os membros; nada de ofensas, assédio ou discriminação.",
	"• Evite spam, flood e conteúdo fora de tópico.",
	"• Não compartilhe conteúdo ilegal, sexualmente explícito ou de ódio.",
	"• Use linguagem apropriada e mantenha discussões construtivas.",
	"• Marque spoilers e evite revelar conteúdo sem aviso.",
	"• Denuncie comportamentos inadequados aos moderadores.",
	"",
	"Importante: O descumprimento desta política poderá resultar em sanções, incluindo banimento do servidor.",
}, "\n")

// ForumService implements the community forum: thread listing and creation
// plus append-only replies
type ForumService struct {
	forum *repository.ForumRepository
}

// NewForumService creates a new forum service
func NewForumService(forum *repository.ForumRepository) *ForumService {
	return &ForumService{forum: forum}
}

// EnsurePolicyThread seeds the community policy thread. Idempotent: matched
// by stable id or by title, so running it twice never duplicates the thread.
func (s *ForumService) EnsurePolicyThread() error {
	return s.forum.Update(func(doc *models.ForumDocument) error {
		for i := range doc.Threads {
			if doc.Threads[i].ID == models.PolicyThreadID ||
				strings.Contains(strings.ToLower(doc.Threads[i].Title), strings.ToLower(policyThreadTitle)) {
				return nil
			}
		}
		thread := models.ForumThread{
			ID:         models.PolicyThreadID,
			Title:      policyThreadTitle,
			Content:    policyThreadContent,
			AuthorID:   "admin",
			AuthorName: "Admin",
			CreatedAt:  time.Now().UTC(),
			Replies:    []models.ForumReply{},
		}
		doc.Threads = append([]models.ForumThread{thread}, doc.Threads...)
		zaplogger.Info("Forum policy thread ensured")
		return nil
	})
}

// ListThreads returns summaries of all threads, newest first
func (s *ForumService) ListThreads() ([]models.ThreadSummary, error) {
	summaries := []models.ThreadSummary{}
	err := s.forum.View(func(doc *models.ForumDocument) error {
		for i := range doc.Threads {
			summaries = append(summaries, doc.Threads[i].Summary())
		}
		return nil
	})
	return summaries, err
}

// GetThread returns a full thread with its replies
func (s *ForumService) GetThread(id string) (*models.ForumThread, error) {
	var found *models.ForumThread
	err := s.forum.View(func(doc *models.ForumDocument) error {
		for i := range doc.Threads {
			if doc.Threads[i].ID == id {
				t := doc.Threads[i]
				found = &t
				return nil
			}
		}
		return ErrThreadNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// CreateThread creates a new thread authored by the claims identity
func (s *ForumService) CreateThread(claims *Claims, title, content string) (*models.ForumThread, error) {
	thread := models.ForumThread{
		ID:         newID("t"),
		Title:      title,
		Content:    content,
		AuthorID:   claims.Subject,
		AuthorName: claims.Name,
		CreatedAt:  time.Now().UTC(),
		Replies:    []models.ForumReply{},
	}
	err := s.forum.Update(func(doc *models.ForumDocument) error {
		doc.Threads = append([]models.ForumThread{thread}, doc.Threads...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

// AddReply appends a reply to the thread
func (s *ForumService) AddReply(claims *Claims, threadID, content string) (*models.ForumReply, error) {
	reply := models.ForumReply{
		ID:         newID("r"),
		Content:    content,
		AuthorID:   claims.Subject,
		AuthorName: claims.Name,
		CreatedAt:  time.Now().UTC(),
	}
	err := s.forum.Update(func(doc *models.ForumDocument) error {
		for i := range doc.Threads {
			if doc.Threads[i].ID == threadID {
				doc.Threads[i].Replies = append(doc.Threads[i].Replies, reply)
				return nil
			}
		}
		return ErrThreadNotFound
	})
	if err != nil {
		return nil, err
	}
	return &reply, nil
}
